// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-reef-monitor/internal/utils"
)

// ConfigTree is the full nested configuration of the dashboard in canonical
// JSON form: every value is nil, bool, float64, string, []any, or a nested
// map[string]any. Trees handed out by the [Store] are deep copies and may be
// mutated freely by the caller.
type ConfigTree = map[string]any

// Override is a partial configuration patch with the same canonical shape as
// [ConfigTree]. Any subset of keys at any depth is valid.
type Override = map[string]any

// normalizeTree brings an arbitrary mapping into canonical JSON form by
// round-tripping it through encoding/json. This aligns value types (ints
// become float64, typed slices become []any, named map types become plain
// maps) and guarantees the result shares no containers with the input.
//
// A nil mapping normalizes to an empty tree. Values that cannot be
// marshaled (channels, functions, cycles) produce an error.
func normalizeTree(tree map[string]any) (ConfigTree, error) {
	if len(tree) == 0 {
		return ConfigTree{}, nil
	}

	raw, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("error normalizing configuration tree: %w", err)
	}

	normalized, err := utils.ParseJSONObject(raw)
	if err != nil {
		return nil, fmt.Errorf("error normalizing configuration tree: %w", err)
	}

	return normalized, nil
}

// deepMerge merges src into dst and returns dst.
//
// Per-key policy:
//   - both values are sequences: dst elements followed by cloned src
//     elements (concatenation, never replacement);
//   - both values are mappings: recurse into a copy of the dst mapping;
//   - anything else, including type mismatches: a deep clone of the src
//     value replaces the dst value outright.
//
// Keys present only in dst are never removed. src is never mutated and the
// result shares no container references with src. Per-key resolution is
// independent, so traversal order does not affect the outcome.
func deepMerge(dst, src map[string]any) map[string]any {
	for key, srcVal := range src {
		dstVal, exists := dst[key]
		if exists {
			if dstSeq, ok := dstVal.([]any); ok {
				if srcSeq, ok := srcVal.([]any); ok {
					merged := make([]any, 0, len(dstSeq)+len(srcSeq))
					merged = append(merged, dstSeq...)
					for _, item := range srcSeq {
						merged = append(merged, utils.CloneValue(item))
					}
					dst[key] = merged
					continue
				}
			}
			if dstMap, ok := dstVal.(map[string]any); ok {
				if srcMap, ok := srcVal.(map[string]any); ok {
					copied := make(map[string]any, len(dstMap))
					for k, v := range dstMap {
						copied[k] = v
					}
					dst[key] = deepMerge(copied, srcMap)
					continue
				}
			}
		}

		dst[key] = utils.CloneValue(srcVal)
	}

	return dst
}
