package models

// ChartsConfig holds presentation settings for the sensor history charts.
type ChartsConfig struct {
	// MaxDataPoints caps the number of samples drawn per series.
	// Older samples are decimated beyond this limit.
	MaxDataPoints int `json:"maxDataPoints"`

	// DefaultTimespanHours is the initial visible window of a chart.
	DefaultTimespanHours int `json:"defaultTimespanHours"`

	// Smoothing toggles moving-average smoothing of drawn series.
	Smoothing bool `json:"smoothing"`

	// Palette lists the series colors in draw order.
	Palette []string `json:"palette"`
}
