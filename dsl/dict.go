package dsl

import (
	"context"
	"reflect"
	"sort"
	"strings"

	contract "github.com/contractkit/contract"
)

// Wildcard extends AllowExtra to any key and AllowOptionals to every
// declared key.
const Wildcard = "*"

// DictBuilder is the keyed-mapping composite: a fixed per-key contract set
// with an extensible required/optional/extra-key policy.
type DictBuilder struct {
	fields     map[string]contract.Contract
	optional   map[string]struct{}
	extra      map[string]struct{}
	allowAny bool
	// sortedKeys is the ascending declared-key order the presence pass
	// follows; fixed at construction so concurrent checks share it safely.
	sortedKeys []string
}

// Dict returns a contract over string-keyed mappings. Every declared key is
// required and undeclared keys are rejected until the policy is extended via
// AllowOptionals/AllowExtra. Field contracts are normalized through
// contract.Of.
func Dict(fields map[string]any) *DictBuilder {
	d := &DictBuilder{
		fields:   make(map[string]contract.Contract, len(fields)),
		optional: map[string]struct{}{},
		extra:    map[string]struct{}{},
	}
	for k, f := range fields {
		d.fields[k] = contract.MustOf(f)
	}
	// Declared keys are fixed here, so the sorted order used by the
	// presence pass is too. Checking never writes builder state.
	d.sortedKeys = make([]string, 0, len(d.fields))
	for k := range d.fields {
		d.sortedKeys = append(d.sortedKeys, k)
	}
	sort.Strings(d.sortedKeys)
	return d
}

// AllowExtra permits the named undeclared keys; the Wildcard permits any
// undeclared key.
func (d *DictBuilder) AllowExtra(names ...string) *DictBuilder {
	for _, n := range names {
		if n == Wildcard {
			d.allowAny = true
			continue
		}
		d.extra[n] = struct{}{}
	}
	return d
}

// AllowOptionals marks the named declared keys as allowed to be absent; the
// Wildcard marks all declared keys optional.
func (d *DictBuilder) AllowOptionals(names ...string) *DictBuilder {
	for _, n := range names {
		if n == Wildcard {
			for k := range d.fields {
				d.optional[k] = struct{}{}
			}
			continue
		}
		d.optional[n] = struct{}{}
	}
	return d
}

// FieldContracts returns a copy of the declared key/contract set, for
// integrations that document or introspect a schema (guard help text).
func (d *DictBuilder) FieldContracts() map[string]contract.Contract {
	out := make(map[string]contract.Contract, len(d.fields))
	for k, c := range d.fields {
		out[k] = c
	}
	return out
}

// Check runs the presence pass over declared keys, then validates every
// present entry, rebasing child failures under the entry's key. Undeclared
// keys outside the extra policy are rejected.
func (d *DictBuilder) Check(ctx context.Context, v any) error {
	m, ok := stringMap(v)
	if !ok {
		return contract.Fail(contract.CodeInvalidType, map[string]any{"expected": "map"})
	}
	for _, k := range d.sortedKeys {
		if _, opt := d.optional[k]; opt {
			continue
		}
		if _, present := m[k]; !present {
			return contract.Fail(contract.CodeRequired, map[string]any{"key": k})
		}
	}
	present := make([]string, 0, len(m))
	for k := range m {
		present = append(present, k)
	}
	sort.Strings(present)
	for _, k := range present {
		c, declared := d.fields[k]
		if !declared {
			if _, allowed := d.extra[k]; !allowed && !d.allowAny {
				return contract.Fail(contract.CodeUnknownKey, map[string]any{"key": k})
			}
			continue
		}
		if err := c.Check(ctx, m[k]); err != nil {
			return contract.Located(k, err)
		}
	}
	return nil
}

func (d *DictBuilder) String() string {
	var b strings.Builder
	b.WriteString("<Dict(")
	var policy []string
	if d.allowAny {
		policy = append(policy, "any")
	}
	if len(d.extra) > 0 {
		policy = append(policy, "extras=("+strings.Join(sortedSet(d.extra), ", ")+")")
	}
	if len(d.optional) > 0 {
		policy = append(policy, "optionals=("+strings.Join(sortedSet(d.optional), ", ")+")")
	}
	b.WriteString(strings.Join(policy, ", "))
	if len(policy) > 0 {
		b.WriteString(" | ")
	}
	fields := make([]string, 0, len(d.fields))
	for _, k := range d.sortedKeys {
		fields = append(fields, k+"="+d.fields[k].String())
	}
	b.WriteString(strings.Join(fields, ", "))
	b.WriteString(")>")
	return b.String()
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// stringMap views v as a string-keyed map. map[string]any is the fast path;
// other map kinds with string keys go through reflection.
func stringMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}
