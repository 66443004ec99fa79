package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestThresholdBlock_Target verifies the per-bound fallback: each missing
// target bound is substituted by the absolute bound on the same side.
func TestThresholdBlock_Target(t *testing.T) {
	targetMin, targetMax := 7.2, 7.6

	tests := []struct {
		name  string
		block ThresholdBlock
		want  Range
	}{
		{
			name:  "both targets present",
			block: ThresholdBlock{Min: 6.8, Max: 8.0, TargetMin: &targetMin, TargetMax: &targetMax},
			want:  Range{Min: 7.2, Max: 7.6},
		},
		{
			name:  "no targets falls back to absolute",
			block: ThresholdBlock{Min: 300, Max: 450},
			want:  Range{Min: 300, Max: 450},
		},
		{
			name:  "only lower target",
			block: ThresholdBlock{Min: 6.8, Max: 8.0, TargetMin: &targetMin},
			want:  Range{Min: 7.2, Max: 8.0},
		},
		{
			name:  "only upper target",
			block: ThresholdBlock{Min: 6.8, Max: 8.0, TargetMax: &targetMax},
			want:  Range{Min: 6.8, Max: 7.6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.block.Target())
		})
	}
}

// TestThresholdBlock_Absolute verifies that the alarm interval ignores
// target bounds entirely.
func TestThresholdBlock_Absolute(t *testing.T) {
	targetMin := 7.2
	block := ThresholdBlock{Min: 6.8, Max: 8.0, TargetMin: &targetMin}

	assert.Equal(t, Range{Min: 6.8, Max: 8.0}, block.Absolute())
}

// TestRange_Contains verifies inclusive bound handling.
func TestRange_Contains(t *testing.T) {
	r := Range{Min: 6.8, Max: 8.0}

	assert.True(t, r.Contains(6.8))
	assert.True(t, r.Contains(7.4))
	assert.True(t, r.Contains(8.0))
	assert.False(t, r.Contains(6.79))
	assert.False(t, r.Contains(8.01))
}
