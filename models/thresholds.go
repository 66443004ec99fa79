// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ThresholdBlock defines the acceptable and preferred bounds for one
// monitored water parameter.
//
// Min and Max are the absolute alarm bounds. TargetMin and TargetMax
// describe the narrower preferred band and are optional: parameters
// without a meaningful target (e.g. ORP) omit them, and consumers fall
// back to the absolute bound on that side.
type ThresholdBlock struct {
	// Min is the absolute lower alarm bound.
	Min float64 `json:"min"`

	// Max is the absolute upper alarm bound.
	Max float64 `json:"max"`

	// TargetMin is the preferred lower bound, if defined.
	TargetMin *float64 `json:"targetMin,omitempty"`

	// TargetMax is the preferred upper bound, if defined.
	TargetMax *float64 `json:"targetMax,omitempty"`
}

// Absolute returns the alarm interval [Min, Max].
func (t ThresholdBlock) Absolute() Range {
	return Range{Min: t.Min, Max: t.Max}
}

// Target returns the preferred interval, substituting the absolute bound
// on each side where no target is defined.
func (t ThresholdBlock) Target() Range {
	r := t.Absolute()
	if t.TargetMin != nil {
		r.Min = *t.TargetMin
	}
	if t.TargetMax != nil {
		r.Max = *t.TargetMax
	}
	return r
}
