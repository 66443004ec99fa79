package models

import "time"

// IntervalsConfig holds the polling and refresh periods of the dashboard,
// in milliseconds.
type IntervalsConfig struct {
	// SensorPollMs is the period between sensor reading fetches.
	SensorPollMs int `json:"sensorPollMs"`

	// ChartRefreshMs is the period between chart data reloads.
	ChartRefreshMs int `json:"chartRefreshMs"`

	// StatusCheckMs is the period between equipment status checks.
	StatusCheckMs int `json:"statusCheckMs"`

	// FullSyncMs is the period between full state resynchronizations.
	FullSyncMs int `json:"fullSyncMs"`
}

// SensorPollDuration returns the sensor polling period as a time.Duration.
func (i IntervalsConfig) SensorPollDuration() time.Duration {
	return time.Duration(i.SensorPollMs) * time.Millisecond
}

// FullSyncDuration returns the resynchronization period as a time.Duration.
func (i IntervalsConfig) FullSyncDuration() time.Duration {
	return time.Duration(i.FullSyncMs) * time.Millisecond
}
