package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnexpectedShape means the response body was neither a bare JSON
// array nor an object wrapping one under the expected field. The API is
// inconsistent about which it sends, so both are accepted everywhere.
// Anything else is an error, never silently an empty list.
var ErrUnexpectedShape = errors.New("services: unexpected response shape")

// decodeList accepts either `[...]` or `{"<key>": [...]}`.
func decodeList[T any](raw []byte, key string) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrUnexpectedShape)
	}

	if trimmed[0] == '[' {
		var out []T
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
		}
		return out, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}

	inner, ok := wrapper[key]
	if !ok {
		return nil, fmt.Errorf("%w: no %q field", ErrUnexpectedShape, key)
	}
	inner = bytes.TrimSpace(inner)
	if len(inner) == 0 || inner[0] != '[' {
		return nil, fmt.Errorf("%w: %q is not a list", ErrUnexpectedShape, key)
	}

	var out []T
	if err := json.Unmarshal(inner, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	return out, nil
}

// decodeOne accepts either a bare entity or `{"<key>": {...}}`. Write
// responses use it to pull the server's canonical record back out, so
// server-computed fields reconcile into local state.
func decodeOne[T any](raw []byte, key string) (T, error) {
	var zero T

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return zero, fmt.Errorf("%w: not an object", ErrUnexpectedShape)
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}

	if inner, ok := wrapper[key]; ok {
		var out T
		if err := json.Unmarshal(inner, &out); err != nil {
			return zero, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
		}
		return out, nil
	}

	var out T
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	return out, nil
}
