// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── deepMerge ─────────────────────────────────────────────────────────────────

// TestDeepMerge_EmptyOverrideIsIdentity verifies that merging an empty
// override leaves the tree unchanged.
func TestDeepMerge_EmptyOverrideIsIdentity(t *testing.T) {
	tree := map[string]any{
		"api":      map[string]any{"timeoutMs": float64(10000)},
		"features": map[string]any{"enableWebSocket": true},
	}

	got := deepMerge(tree, map[string]any{})

	assert.Equal(t, map[string]any{
		"api":      map[string]any{"timeoutMs": float64(10000)},
		"features": map[string]any{"enableWebSocket": true},
	}, got)
}

// TestDeepMerge_ScalarOverwrite verifies that a scalar override replaces the
// base scalar at the same path.
func TestDeepMerge_ScalarOverwrite(t *testing.T) {
	got := deepMerge(
		map[string]any{"theme": "dark", "locale": "en-US"},
		map[string]any{"theme": "light"},
	)

	assert.Equal(t, map[string]any{"theme": "light", "locale": "en-US"}, got)
}

// TestDeepMerge_ArrayConcatenation verifies the sequence policy: base
// elements first, override elements appended, never replaced.
func TestDeepMerge_ArrayConcatenation(t *testing.T) {
	got := deepMerge(
		map[string]any{"a": []any{float64(1), float64(2)}},
		map[string]any{"a": []any{float64(3)}},
	)

	assert.Equal(t, map[string]any{"a": []any{float64(1), float64(2), float64(3)}}, got)
}

// TestDeepMerge_TypeMismatchOverwrite verifies that mismatched types at the
// same path mean wholesale replacement, with no partial merge.
func TestDeepMerge_TypeMismatchOverwrite(t *testing.T) {
	got := deepMerge(
		map[string]any{"a": map[string]any{"x": float64(1)}},
		map[string]any{"a": float64(5)},
	)

	assert.Equal(t, map[string]any{"a": float64(5)}, got)
}

// TestDeepMerge_SequenceReplacedByScalar verifies the mismatch policy in the
// other direction: a scalar override wipes a base sequence.
func TestDeepMerge_SequenceReplacedByScalar(t *testing.T) {
	got := deepMerge(
		map[string]any{"palette": []any{"#111111"}},
		map[string]any{"palette": "none"},
	)

	assert.Equal(t, map[string]any{"palette": "none"}, got)
}

// TestDeepMerge_RecursesIntoMappings verifies that sibling keys of a nested
// mapping survive a partial override.
func TestDeepMerge_RecursesIntoMappings(t *testing.T) {
	base := map[string]any{
		"api": map[string]any{
			"baseUrl":   "http://localhost:8080/api",
			"timeoutMs": float64(10000),
		},
	}

	got := deepMerge(base, map[string]any{
		"api": map[string]any{"timeoutMs": float64(30000)},
	})

	assert.Equal(t, map[string]any{
		"api": map[string]any{
			"baseUrl":   "http://localhost:8080/api",
			"timeoutMs": float64(30000),
		},
	}, got)
}

// TestDeepMerge_BaseOnlyKeysSurvive verifies that keys absent from the
// override are never removed at any depth.
func TestDeepMerge_BaseOnlyKeysSurvive(t *testing.T) {
	got := deepMerge(
		map[string]any{
			"keep":   "untouched",
			"nested": map[string]any{"keepToo": true, "change": float64(1)},
		},
		map[string]any{
			"nested": map[string]any{"change": float64(2)},
		},
	)

	assert.Equal(t, "untouched", got["keep"])
	nested := got["nested"].(map[string]any)
	assert.Equal(t, true, nested["keepToo"])
	assert.Equal(t, float64(2), nested["change"])
}

// TestDeepMerge_DoesNotMutateSource verifies that the override mapping is
// read-only for the merge at every depth.
func TestDeepMerge_DoesNotMutateSource(t *testing.T) {
	src := map[string]any{
		"nested": map[string]any{"value": float64(1)},
		"list":   []any{float64(1)},
	}

	deepMerge(map[string]any{
		"nested": map[string]any{"other": true},
		"list":   []any{float64(0)},
	}, src)

	assert.Equal(t, map[string]any{
		"nested": map[string]any{"value": float64(1)},
		"list":   []any{float64(1)},
	}, src)
}

// TestDeepMerge_ResultDoesNotAliasSource verifies the copy-on-write
// guarantee: mutating the merge result never leaks into the override that
// produced it.
func TestDeepMerge_ResultDoesNotAliasSource(t *testing.T) {
	src := map[string]any{
		"section": map[string]any{"value": float64(1)},
		"items":   []any{map[string]any{"id": float64(1)}},
	}

	got := deepMerge(map[string]any{"items": []any{}}, src)

	got["section"].(map[string]any)["value"] = float64(99)
	got["items"].([]any)[0].(map[string]any)["id"] = float64(99)

	assert.Equal(t, float64(1), src["section"].(map[string]any)["value"])
	assert.Equal(t, float64(1), src["items"].([]any)[0].(map[string]any)["id"])
}

// TestDeepMerge_SequentialApplication verifies that applying two overrides
// in order resolves scalar conflicts in favor of the later one and
// accumulates sequences in application order.
func TestDeepMerge_SequentialApplication(t *testing.T) {
	tree := map[string]any{
		"scalar": "base",
		"list":   []any{"base"},
	}

	tree = deepMerge(tree, map[string]any{
		"scalar": "first",
		"list":   []any{"first"},
	})
	tree = deepMerge(tree, map[string]any{
		"scalar": "second",
		"list":   []any{"second"},
	})

	assert.Equal(t, "second", tree["scalar"])
	assert.Equal(t, []any{"base", "first", "second"}, tree["list"])
}

// TestDeepMerge_NewKeysAdded verifies that override keys unknown to the base
// are inserted.
func TestDeepMerge_NewKeysAdded(t *testing.T) {
	got := deepMerge(
		map[string]any{"existing": true},
		map[string]any{"added": map[string]any{"deep": []any{float64(1)}}},
	)

	assert.Equal(t, true, got["existing"])
	assert.Equal(t, map[string]any{"deep": []any{float64(1)}}, got["added"])
}

// ── normalizeTree ─────────────────────────────────────────────────────────────

// TestNormalizeTree_Nil verifies that a nil mapping becomes an empty tree.
func TestNormalizeTree_Nil(t *testing.T) {
	got, err := normalizeTree(nil)

	require.NoError(t, err)
	assert.Equal(t, ConfigTree{}, got)
	assert.NotNil(t, got)
}

// TestNormalizeTree_AlignsNumericTypes verifies that Go ints come out as
// canonical float64 values.
func TestNormalizeTree_AlignsNumericTypes(t *testing.T) {
	got, err := normalizeTree(map[string]any{
		"int":    42,
		"nested": map[string]any{"int64": int64(7)},
	})

	require.NoError(t, err)
	assert.Equal(t, float64(42), got["int"])
	assert.Equal(t, float64(7), got["nested"].(map[string]any)["int64"])
}

// TestNormalizeTree_AlignsSequenceTypes verifies that typed slices come out
// as canonical []any values.
func TestNormalizeTree_AlignsSequenceTypes(t *testing.T) {
	got, err := normalizeTree(map[string]any{
		"strings": []string{"a", "b"},
		"ints":    []int{1, 2},
	})

	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, got["strings"])
	assert.Equal(t, []any{float64(1), float64(2)}, got["ints"])
}

// TestNormalizeTree_CopiesInput verifies that the normalized tree shares no
// containers with the input.
func TestNormalizeTree_CopiesInput(t *testing.T) {
	input := map[string]any{"nested": map[string]any{"value": "original"}}

	got, err := normalizeTree(input)
	require.NoError(t, err)

	got["nested"].(map[string]any)["value"] = "changed"
	assert.Equal(t, "original", input["nested"].(map[string]any)["value"])
}

// TestNormalizeTree_RejectsUnmarshalableValues verifies that values outside
// the JSON value set produce an error.
func TestNormalizeTree_RejectsUnmarshalableValues(t *testing.T) {
	got, err := normalizeTree(map[string]any{"bad": make(chan int)})

	require.Error(t, err)
	assert.Nil(t, got)
}

// ── defaultTree ───────────────────────────────────────────────────────────────

// TestDefaultTree_EnvironmentsDifferOnlyInEndpoints verifies that the
// compiled-in trees share everything except addresses.
func TestDefaultTree_EnvironmentsDifferOnlyInEndpoints(t *testing.T) {
	dev := defaultTree(EnvDevelopment)
	prod := defaultTree(EnvProduction)

	assert.NotEqual(t, dev["api"].(map[string]any)["baseUrl"], prod["api"].(map[string]any)["baseUrl"])
	assert.NotEqual(t, dev["socket"].(map[string]any)["url"], prod["socket"].(map[string]any)["url"])

	assert.Equal(t, dev["thresholds"], prod["thresholds"])
	assert.Equal(t, dev["features"], prod["features"])
	assert.Equal(t, dev["intervals"], prod["intervals"])
}

// TestDefaultTree_IsNormalizable verifies that the compiled-in tree survives
// canonicalization, which NewStore relies on.
func TestDefaultTree_IsNormalizable(t *testing.T) {
	for _, env := range []Environment{EnvDevelopment, EnvProduction} {
		got, err := normalizeTree(defaultTree(env))

		require.NoError(t, err)
		require.Contains(t, got, "thresholds")
		require.Contains(t, got, "features")
	}
}
