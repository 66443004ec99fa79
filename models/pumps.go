package models

import "time"

// PumpsConfig holds dosing pump operation settings.
type PumpsConfig struct {
	// Defaults are applied to pumps without an individual profile.
	Defaults PumpDefaults `json:"defaults"`

	// CalibrationIntervalDays is how often a pump must be recalibrated.
	CalibrationIntervalDays int `json:"calibrationIntervalDays"`

	// MaxRuntimeSeconds is the safety cutoff for a single dosing run.
	MaxRuntimeSeconds int `json:"maxRuntimeSeconds"`
}

// PumpDefaults describes the fallback operating profile of a dosing pump.
type PumpDefaults struct {
	// FlowRatePercent is the default flow rate as a percentage of
	// the pump's rated maximum.
	FlowRatePercent int `json:"flowRatePercent"`

	// RampSeconds is the soft-start duration.
	RampSeconds int `json:"rampSeconds"`
}

// MaxRuntimeDuration returns the dosing-run cutoff as a time.Duration.
func (p PumpsConfig) MaxRuntimeDuration() time.Duration {
	return time.Duration(p.MaxRuntimeSeconds) * time.Second
}
