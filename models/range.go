package models

// Range is an inclusive numeric interval used for sensor thresholds
// and gauge scales.
type Range struct {
	// Min is the lower inclusive bound.
	Min float64 `json:"min"`

	// Max is the upper inclusive bound.
	Max float64 `json:"max"`
}

// Contains reports whether value lies inside the interval, bounds included.
func (r Range) Contains(value float64) bool {
	return value >= r.Min && value <= r.Max
}

// Width returns the size of the interval.
func (r Range) Width() float64 {
	return r.Max - r.Min
}
