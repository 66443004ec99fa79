// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ValidationRules holds input limits applied to user-entered data before
// it is sent to the backend.
type ValidationRules struct {
	// MaxNameLength caps the length of user-assigned names
	// (tanks, probes, pumps).
	MaxNameLength int `json:"maxNameLength"`

	// MaxNoteLength caps the length of free-form note fields.
	MaxNoteLength int `json:"maxNoteLength"`

	// AllowedProbeTypes lists the probe type identifiers accepted
	// when registering a sensor.
	AllowedProbeTypes []string `json:"allowedProbeTypes"`
}

// ProbeTypeAllowed reports whether the given probe type identifier is in
// the accepted list.
func (v ValidationRules) ProbeTypeAllowed(probeType string) bool {
	for _, allowed := range v.AllowedProbeTypes {
		if allowed == probeType {
			return true
		}
	}
	return false
}
