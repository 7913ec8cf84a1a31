// Package profile builds contract trees from compact schema profiles
// written in YAML or JSON. A profile is a nested mapping of the form
//
//	type: dict
//	fields:
//	  name: {type: string}
//	  age:  {type: int, gte: 0}
//	  tags: {type: list, of: {type: string}, min: 1}
//	optional: [tags]
//	extra: ["*"]
//
// The special type "self" refers back to the profile root, enabling
// recursive schemas.
package profile

import (
	"fmt"

	contract "github.com/contractkit/contract"
	"github.com/contractkit/contract/dsl"
	"github.com/contractkit/contract/source"
)

// FromYAML decodes a YAML profile and builds its contract.
func FromYAML(data []byte) (contract.Contract, error) {
	spec, err := source.YAMLBytes(data)
	if err != nil {
		return nil, err
	}
	return Build(spec)
}

// FromJSON decodes a JSON profile and builds its contract.
func FromJSON(data []byte) (contract.Contract, error) {
	spec, err := source.JSONBytes(data)
	if err != nil {
		return nil, err
	}
	return Build(spec)
}

// Build constructs a contract from a decoded profile value.
func Build(spec any) (contract.Contract, error) {
	b := &builder{root: dsl.Forward()}
	c, err := b.build(spec)
	if err != nil {
		return nil, err
	}
	if b.usedSelf {
		if err := b.root.Bind(c); err != nil {
			return nil, err
		}
		return b.root, nil
	}
	return c, nil
}

type builder struct {
	root     *dsl.ForwardCell
	usedSelf bool
}

func (b *builder) build(spec any) (contract.Contract, error) {
	m, ok := spec.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("profile: schema node must be a mapping, got %T", spec)
	}
	typ, _ := m["type"].(string)
	switch typ {
	case "any":
		return dsl.Any(), nil
	case "null":
		return dsl.Null(), nil
	case "bool":
		return dsl.Bool(), nil
	case "string":
		s := dsl.String()
		if allow, _ := m["allow_blank"].(bool); allow {
			s = s.AllowBlank()
		}
		return s, nil
	case "int":
		return b.buildInt(m)
	case "float":
		return b.buildFloat(m)
	case "email":
		return dsl.Email(), nil
	case "isodate":
		return dsl.ISODate(), nil
	case "uuid":
		return dsl.UUID(), nil
	case "digit":
		return dsl.DigitString(), nil
	case "enum":
		variants, ok := m["of"].([]any)
		if !ok || len(variants) == 0 {
			return nil, fmt.Errorf("profile: enum requires a non-empty 'of' list")
		}
		return dsl.Enum(variants...), nil
	case "list":
		return b.buildList(m)
	case "dict":
		return b.buildDict(m)
	case "mapping":
		return b.buildMapping(m)
	case "or":
		return b.buildOr(m)
	case "self":
		b.usedSelf = true
		return b.root, nil
	case "":
		return nil, fmt.Errorf("profile: schema node is missing 'type'")
	default:
		return nil, fmt.Errorf("profile: unknown type %q", typ)
	}
}

func (b *builder) buildInt(m map[string]any) (contract.Contract, error) {
	c := dsl.Int()
	for key, set := range map[string]func(int64) *dsl.IntBuilder{
		"gte": c.Gte, "lte": c.Lte, "gt": c.Gt, "lt": c.Lt,
	} {
		raw, present := m[key]
		if !present {
			continue
		}
		n, ok := intBound(raw)
		if !ok {
			return nil, fmt.Errorf("profile: int bound %q must be an integer, got %T", key, raw)
		}
		set(n)
	}
	return c, nil
}

func (b *builder) buildFloat(m map[string]any) (contract.Contract, error) {
	c := dsl.Float()
	for key, set := range map[string]func(float64) *dsl.FloatBuilder{
		"gte": c.Gte, "lte": c.Lte, "gt": c.Gt, "lt": c.Lt,
	} {
		raw, present := m[key]
		if !present {
			continue
		}
		f, ok := floatBound(raw)
		if !ok {
			return nil, fmt.Errorf("profile: float bound %q must be a number, got %T", key, raw)
		}
		set(f)
	}
	return c, nil
}

func (b *builder) buildList(m map[string]any) (contract.Contract, error) {
	elemSpec, ok := m["of"]
	if !ok {
		return nil, fmt.Errorf("profile: list requires 'of'")
	}
	elem, err := b.build(elemSpec)
	if err != nil {
		return nil, err
	}
	l := dsl.List(elem)
	if raw, present := m["min"]; present {
		n, ok := intBound(raw)
		if !ok {
			return nil, fmt.Errorf("profile: list 'min' must be an integer, got %T", raw)
		}
		l = l.MinLen(int(n))
	}
	if raw, present := m["max"]; present {
		n, ok := intBound(raw)
		if !ok {
			return nil, fmt.Errorf("profile: list 'max' must be an integer, got %T", raw)
		}
		l = l.MaxLen(int(n))
	}
	return l, nil
}

func (b *builder) buildDict(m map[string]any) (contract.Contract, error) {
	rawFields, ok := m["fields"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("profile: dict requires a 'fields' mapping")
	}
	fields := make(map[string]any, len(rawFields))
	for k, fs := range rawFields {
		c, err := b.build(fs)
		if err != nil {
			return nil, fmt.Errorf("profile: field %q: %w", k, err)
		}
		fields[k] = c
	}
	d := dsl.Dict(fields)
	names, err := nameList(m["optional"])
	if err != nil {
		return nil, fmt.Errorf("profile: dict 'optional': %w", err)
	}
	d.AllowOptionals(names...)
	names, err = nameList(m["extra"])
	if err != nil {
		return nil, fmt.Errorf("profile: dict 'extra': %w", err)
	}
	d.AllowExtra(names...)
	return d, nil
}

func (b *builder) buildMapping(m map[string]any) (contract.Contract, error) {
	keySpec, ok := m["key"]
	if !ok {
		return nil, fmt.Errorf("profile: mapping requires 'key'")
	}
	valSpec, ok := m["value"]
	if !ok {
		return nil, fmt.Errorf("profile: mapping requires 'value'")
	}
	keyC, err := b.build(keySpec)
	if err != nil {
		return nil, err
	}
	valC, err := b.build(valSpec)
	if err != nil {
		return nil, err
	}
	return dsl.Mapping(keyC, valC), nil
}

func (b *builder) buildOr(m map[string]any) (contract.Contract, error) {
	alts, ok := m["of"].([]any)
	if !ok || len(alts) == 0 {
		return nil, fmt.Errorf("profile: or requires a non-empty 'of' list")
	}
	built := make([]any, 0, len(alts))
	for _, alt := range alts {
		c, err := b.build(alt)
		if err != nil {
			return nil, err
		}
		built = append(built, c)
	}
	return dsl.Or(built...), nil
}

// nameList accepts a list of strings or a single string (including "*").
func nameList(v any) ([]string, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{t}, nil
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("expected string, got %T", e)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected string or list of strings, got %T", v)
	}
}

func intBound(v any) (int64, bool) {
	switch t := v.(type) {
	case int64:
		return t, true
	case int:
		return int64(t), true
	case float64:
		if t == float64(int64(t)) {
			return int64(t), true
		}
	}
	return 0, false
}

func floatBound(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	case int:
		return float64(t), true
	}
	return 0, false
}
