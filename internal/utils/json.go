package utils

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotAnObject is returned by ParseJSONObject when the input is valid
// JSON but its top-level value is not an object (e.g. an array, a string,
// or a bare number). Callers should use [errors.Is] to match against it.
var ErrNotAnObject = errors.New("json value is not an object")

// ParseJSONObject parses data and requires the top-level value to be a
// JSON object. It is the "safe parse" used for persisted configuration
// overrides: malformed input never panics, it simply yields an error the
// caller can log and ignore.
//
// Returns the decoded object, or nil and an error when the input is not
// valid JSON or not an object.
func ParseJSONObject(data []byte) (map[string]any, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("error parsing json object: %w", err)
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, ErrNotAnObject
	}

	return obj, nil
}
