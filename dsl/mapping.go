package dsl

import (
	"context"
	"reflect"
	"sort"

	contract "github.com/contractkit/contract"
)

// MappingBuilder is the homogeneous-mapping composite: one contract for
// every key and one for every value. There are no length or presence
// constraints.
type MappingBuilder struct {
	key contract.Contract
	val contract.Contract
}

// Mapping returns a contract applying keyC to every key and valC to every
// value of a map. Both are normalized through contract.Of.
func Mapping(keyC, valC any) *MappingBuilder {
	return &MappingBuilder{key: contract.MustOf(keyC), val: contract.MustOf(valC)}
}

// Check validates entries in a deterministic (repr-sorted) key order. Key
// failures are located at "(key <repr>)", value failures at
// "(value for key <repr>)".
func (m *MappingBuilder) Check(ctx context.Context, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return contract.Fail(contract.CodeInvalidType, map[string]any{"expected": "map"})
	}
	type entry struct {
		repr string
		key  any
		val  any
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key().Interface()
		entries = append(entries, entry{repr: repr(k), key: k, val: iter.Value().Interface()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].repr < entries[j].repr })
	for _, e := range entries {
		if err := m.key.Check(ctx, e.key); err != nil {
			return contract.Located("(key "+e.repr+")", err)
		}
		if err := m.val.Check(ctx, e.val); err != nil {
			return contract.Located("(value for key "+e.repr+")", err)
		}
	}
	return nil
}

func (m *MappingBuilder) String() string {
	return "<" + m.key.String() + " => " + m.val.String() + ">"
}
