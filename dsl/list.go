package dsl

import (
	"context"
	"reflect"
	"strconv"
	"strings"

	contract "github.com/contractkit/contract"
)

// ListBuilder is the list composite: a homogeneous element contract plus
// optional length bounds.
type ListBuilder struct {
	elem   contract.Contract
	minLen int
	maxLen int // -1 when unset
}

// List returns a contract accepting sequences whose every element matches
// elem. Length is unconstrained until MinLen/MaxLen are set.
func List(elem any) *ListBuilder {
	return &ListBuilder{elem: contract.MustOf(elem), maxLen: -1}
}

// MinLen sets the minimum length (default 0).
func (l *ListBuilder) MinLen(n int) *ListBuilder { l.minLen = n; return l }

// MaxLen sets the maximum length.
func (l *ListBuilder) MaxLen(n int) *ListBuilder { l.maxLen = n; return l }

// Check validates length bounds first, then elements in index order,
// stopping at the first failing element. Element failures are re-signaled
// with the index prefixed to their path.
func (l *ListBuilder) Check(ctx context.Context, v any) error {
	items, ok := sequence(v)
	if !ok {
		return contract.Fail(contract.CodeInvalidType, map[string]any{"expected": "list"})
	}
	if len(items) < l.minLen {
		return contract.Fail(contract.CodeTooShort, map[string]any{"min": l.minLen})
	}
	if l.maxLen >= 0 && len(items) > l.maxLen {
		return contract.Fail(contract.CodeTooLong, map[string]any{"max": l.maxLen})
	}
	for i, item := range items {
		if err := l.elem.Check(ctx, item); err != nil {
			return contract.Located(strconv.Itoa(i), err)
		}
	}
	return nil
}

func (l *ListBuilder) String() string {
	r := "List of " + l.elem.String()
	var opts []string
	if l.minLen > 0 {
		opts = append(opts, "minimum length of "+strconv.Itoa(l.minLen))
	}
	if l.maxLen >= 0 {
		opts = append(opts, "maximum length of "+strconv.Itoa(l.maxLen))
	}
	if len(opts) > 0 {
		r += " (" + strings.Join(opts, ", ") + ")"
	}
	return r
}

// sequence views v as an ordered slice of elements. []any is the fast path;
// other slice and array kinds go through reflection. Strings and byte
// slices are not sequences here.
func sequence(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return items, true
	default:
		return nil, false
	}
}
