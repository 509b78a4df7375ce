// Package validation checks candidate product bodies against the fixed
// product schema, either as a full record or as a partial update.
package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Error messages returned by Validate. Validation is exhaustive, not
// fail-fast, so a caller can fix every problem in one round trip.
const (
	errNotObject = "Body must be a JSON object"
	errName      = "Field 'name' must be a non-empty string"
	errPrice     = "Field 'price' must be a non-negative number"
	errInStock   = "Field 'inStock' must be a boolean"
)

var knownFields = map[string]bool{
	"name":    true,
	"price":   true,
	"inStock": true,
}

// Validate checks a raw JSON request body against the product schema and
// returns the ordered list of problems found (empty means valid).
//
// Unknown-field errors come first, in the order the keys appear in the body,
// followed by name, price and inStock errors in that fixed order. In full
// mode every field is required and an absent field fails the same check as a
// wrong-typed one; in partial mode only keys present in the body are checked.
func Validate(body []byte, partial bool) []string {
	keys, fields, err := decodeObject(body)
	if err != nil {
		return []string{errNotObject}
	}

	var errs []string
	for _, key := range keys {
		if !knownFields[key] {
			errs = append(errs, fmt.Sprintf("Unknown field: %s", key))
		}
	}

	if value, present := fields["name"]; present || !partial {
		if s, ok := value.(string); !ok || strings.TrimSpace(s) == "" {
			errs = append(errs, errName)
		}
	}
	if value, present := fields["price"]; present || !partial {
		if n, ok := value.(float64); !ok || n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
			errs = append(errs, errPrice)
		}
	}
	if value, present := fields["inStock"]; present || !partial {
		if _, ok := value.(bool); !ok {
			errs = append(errs, errInStock)
		}
	}

	return errs
}

// decodeObject decodes a top-level JSON object into its values while also
// recording key order, which a plain map would lose.
func decodeObject(body []byte) ([]string, map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	keys := make([]string, 0, len(knownFields))
	fields := make(map[string]any, len(knownFields))
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("expected an object key, got %v", tok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, nil, err
		}
		if _, seen := fields[key]; !seen {
			keys = append(keys, key)
		}
		fields[key] = value
	}
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}

	return keys, fields, nil
}
