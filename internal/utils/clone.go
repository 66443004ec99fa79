// Package utils provides general-purpose helper utilities used across
// different parts of the application.
// Includes tools for deep-cloning configuration trees, timer-based rate
// limiting (debounce/throttle), safe JSON parsing, HTML escaping, and other
// common operations.
package utils

// CloneTree returns a deep, independent copy of a JSON-shaped tree.
// Nested mappings and sequences are copied recursively; scalar values
// (nil, bool, float64, string) are immutable and carried over as-is.
//
// A nil input yields nil, so the result always mirrors the input shape.
func CloneTree(tree map[string]any) map[string]any {
	if tree == nil {
		return nil
	}

	out := make(map[string]any, len(tree))
	for key, value := range tree {
		out[key] = CloneValue(value)
	}

	return out
}

// CloneValue returns a deep copy of a single JSON-shaped value.
//
// The function is total over the canonical JSON value set produced by
// encoding/json (nil | bool | float64 | string | []any | map[string]any).
// Values outside that set are returned unchanged; callers that need full
// isolation must normalize their data through a JSON round-trip first.
func CloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return CloneTree(typed)
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = CloneValue(item)
		}
		return out
	default:
		return value
	}
}
