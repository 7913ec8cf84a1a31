// Package source decodes JSON and YAML documents into the plain Go values
// the contract tree checks (map[string]any, []any, string, bool, int64,
// float64, nil).
//
// Numbers are normalized so the Int/Float contracts behave naturally on
// decoded documents: integral JSON/YAML numbers decode to int64, everything
// else to float64. The normalization is a decoder concern, not value
// coercion by the contracts themselves.
package source

import (
	"bytes"
	"context"
	"fmt"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	contract "github.com/contractkit/contract"
)

// JSONBytes decodes a single JSON document.
func JSONBytes(data []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("source: decode json: %w", err)
	}
	return normalize(v), nil
}

// YAMLBytes decodes a single YAML document.
func YAMLBytes(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("source: decode yaml: %w", err)
	}
	return normalize(v), nil
}

// CheckJSON decodes data as JSON and checks it against c. Decode errors are
// reported as a path-less parse failure; validation failures pass through
// with their paths intact.
func CheckJSON(ctx context.Context, c contract.Contract, data []byte) error {
	v, err := JSONBytes(data)
	if err != nil {
		return parseFailure(err)
	}
	return c.Check(ctx, v)
}

// CheckYAML decodes data as YAML and checks it against c.
func CheckYAML(ctx context.Context, c contract.Contract, data []byte) error {
	v, err := YAMLBytes(data)
	if err != nil {
		return parseFailure(err)
	}
	return c.Check(ctx, v)
}

func parseFailure(err error) error {
	f := contract.Failf(contract.CodeParseError, "%s", err.Error())
	f.Cause = err
	return f
}

// normalize rewrites decoder artifacts into the canonical checked shapes:
// json.Number becomes int64 when integral (float64 otherwise), ints widen
// to int64, and map[any]any mappings (YAML corner cases) become
// map[string]any when every key is a string.
func normalize(v any) any {
	switch t := v.(type) {
	case gojson.Number:
		return normalizeNumber(t)
	case map[string]any:
		for k, e := range t {
			t[k] = normalize(e)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			ks, ok := k.(string)
			if !ok {
				return normalizeAnyMap(t)
			}
			out[ks] = normalize(e)
		}
		return out
	case []any:
		for i, e := range t {
			t[i] = normalize(e)
		}
		return t
	case int:
		return int64(t)
	default:
		return v
	}
}

// normalizeAnyMap keeps non-string keys (Mapping contracts handle them) but
// still normalizes the values.
func normalizeAnyMap(m map[any]any) map[any]any {
	for k, e := range m {
		m[k] = normalize(e)
	}
	return m
}

func normalizeNumber(n gojson.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	return f
}
