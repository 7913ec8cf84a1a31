package dsl

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"runtime"
	"strconv"
	"strings"

	contract "github.com/contractkit/contract"
)

// Any returns a contract that accepts every value.
func Any() contract.Contract { return anyContract{} }

type anyContract struct{}

func (anyContract) Check(ctx context.Context, v any) error { return nil }
func (anyContract) String() string                         { return "Any" }

// Null returns a contract that accepts only nil (decoded JSON/YAML null).
func Null() contract.Contract { return nullContract{} }

type nullContract struct{}

func (nullContract) Check(ctx context.Context, v any) error {
	if v != nil {
		return contract.Fail(contract.CodeInvalidType, map[string]any{"expected": "null"})
	}
	return nil
}

func (nullContract) String() string { return "Null" }

// Bool returns a contract that accepts only bool values.
func Bool() contract.Contract { return boolContract{} }

type boolContract struct{}

func (boolContract) Check(ctx context.Context, v any) error {
	if _, ok := v.(bool); !ok {
		return contract.Fail(contract.CodeInvalidType, map[string]any{"expected": "bool"})
	}
	return nil
}

func (boolContract) String() string { return "Boolean" }

// StringBuilder exposes chaining options for the string contract.
type StringBuilder struct{ allowBlank bool }

// String returns a contract accepting non-blank strings. Use AllowBlank to
// accept the empty string as well.
func String() *StringBuilder { return &StringBuilder{} }

// AllowBlank permits the empty string.
func (s *StringBuilder) AllowBlank() *StringBuilder { s.allowBlank = true; return s }

func (s *StringBuilder) Check(ctx context.Context, v any) error {
	sv, ok := v.(string)
	if !ok {
		return contract.Fail(contract.CodeInvalidType, map[string]any{"expected": "string"})
	}
	if !s.allowBlank && len(sv) == 0 {
		return contract.Fail(contract.CodeBlank, nil)
	}
	return nil
}

func (s *StringBuilder) String() string {
	if s.allowBlank {
		return "String (could be blank)"
	}
	return "String"
}

// bound is an optional numeric bound; nil means unset.
type bound[N int64 | float64] struct {
	gte, lte, gt, lt *N
}

// check runs the bound comparisons in the fixed order gte, lte, lt, gt and
// reports the first violation.
func (b bound[N]) check(v N) error {
	if b.gte != nil && v < *b.gte {
		return contract.Fail(contract.CodeTooSmall, map[string]any{"min": *b.gte})
	}
	if b.lte != nil && v > *b.lte {
		return contract.Fail(contract.CodeTooBig, map[string]any{"max": *b.lte})
	}
	if b.lt != nil && v >= *b.lt {
		return contract.Fail(contract.CodeTooBig, map[string]any{"lt": *b.lt})
	}
	if b.gt != nil && v <= *b.gt {
		return contract.Fail(contract.CodeTooSmall, map[string]any{"gt": *b.gt})
	}
	return nil
}

// describe renders the bound options in repr order.
func (b bound[N]) describe() string {
	var opts []string
	if b.gte != nil {
		opts = append(opts, "greater or equal than "+formatNum(*b.gte))
	}
	if b.lte != nil {
		opts = append(opts, "less or equal than "+formatNum(*b.lte))
	}
	if b.gt != nil {
		opts = append(opts, "greater than "+formatNum(*b.gt))
	}
	if b.lt != nil {
		opts = append(opts, "less than "+formatNum(*b.lt))
	}
	if len(opts) == 0 {
		return ""
	}
	return " (" + strings.Join(opts, ", ") + ")"
}

func formatNum[N int64 | float64](n N) string {
	switch v := any(n).(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return ""
}

// IntBuilder exposes chaining bounds for the integer contract.
type IntBuilder struct{ b bound[int64] }

// Int returns a contract accepting values of any Go integer kind. Floats are
// rejected even when integral. Bounds are checked in the fixed order
// gte, lte, lt, gt.
func Int() *IntBuilder { return &IntBuilder{} }

// Gte requires v >= n.
func (c *IntBuilder) Gte(n int64) *IntBuilder { c.b.gte = &n; return c }

// Lte requires v <= n.
func (c *IntBuilder) Lte(n int64) *IntBuilder { c.b.lte = &n; return c }

// Gt requires v > n.
func (c *IntBuilder) Gt(n int64) *IntBuilder { c.b.gt = &n; return c }

// Lt requires v < n.
func (c *IntBuilder) Lt(n int64) *IntBuilder { c.b.lt = &n; return c }

func (c *IntBuilder) Check(ctx context.Context, v any) error {
	i, ok := intValue(v)
	if !ok {
		return contract.Fail(contract.CodeInvalidType, map[string]any{"expected": "int"})
	}
	return c.b.check(i)
}

func (c *IntBuilder) String() string { return "Integer" + c.b.describe() }

// intValue extracts an int64 from any Go integer kind. Unsigned values above
// MaxInt64 do not fit and are rejected rather than clamped, so bound checks
// never see a truncated value.
func intValue(v any) (int64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	default:
		return 0, false
	}
}

// FloatBuilder exposes chaining bounds for the float contract.
type FloatBuilder struct{ b bound[float64] }

// Float returns a contract accepting float32/float64 values. Integers are
// rejected; use Or(Int, Float) when either kind is acceptable.
func Float() *FloatBuilder { return &FloatBuilder{} }

// Gte requires v >= n.
func (c *FloatBuilder) Gte(n float64) *FloatBuilder { c.b.gte = &n; return c }

// Lte requires v <= n.
func (c *FloatBuilder) Lte(n float64) *FloatBuilder { c.b.lte = &n; return c }

// Gt requires v > n.
func (c *FloatBuilder) Gt(n float64) *FloatBuilder { c.b.gt = &n; return c }

// Lt requires v < n.
func (c *FloatBuilder) Lt(n float64) *FloatBuilder { c.b.lt = &n; return c }

func (c *FloatBuilder) Check(ctx context.Context, v any) error {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	default:
		return contract.Fail(contract.CodeInvalidType, map[string]any{"expected": "float"})
	}
	return c.b.check(f)
}

func (c *FloatBuilder) String() string { return "Float" + c.b.describe() }

// TypeOf returns a contract accepting values assignable to the given runtime
// type.
func TypeOf(t reflect.Type) contract.Contract { return contract.TypeOf(t) }

// Type returns a contract accepting values assignable to T.
func Type[T any]() contract.Contract { return contract.Type[T]() }

// Enum returns a contract accepting only the listed literal values, compared
// by value (reflect.DeepEqual), not identity.
func Enum(variants ...any) contract.Contract {
	return enumContract{variants: append([]any(nil), variants...)}
}

type enumContract struct{ variants []any }

func (e enumContract) Check(ctx context.Context, v any) error {
	for _, variant := range e.variants {
		if reflect.DeepEqual(v, variant) {
			return nil
		}
	}
	return contract.Fail(contract.CodeInvalidEnum, nil)
}

func (e enumContract) String() string {
	parts := make([]string, 0, len(e.variants))
	for _, v := range e.variants {
		parts = append(parts, repr(v))
	}
	return strings.Join(parts, " or ")
}

// Callable returns a contract accepting invocable values (func kinds).
func Callable() contract.Contract { return callableContract{} }

type callableContract struct{}

func (callableContract) Check(ctx context.Context, v any) error {
	if v == nil || reflect.ValueOf(v).Kind() != reflect.Func {
		return contract.Fail(contract.CodeNotCallable, nil)
	}
	return nil
}

func (callableContract) String() string { return "<callable>" }

// Call wraps a one-argument predicate: fn returns nil to accept the value or
// an error describing the violation. A nil fn is a configuration error.
func Call(fn func(v any) error) contract.Contract {
	if fn == nil {
		panic(contract.NewConfigError("Call", "predicate function must not be nil"))
	}
	return callContract{fn: fn, name: funcName(fn)}
}

type callContract struct {
	fn   func(v any) error
	name string
}

func (c callContract) Check(ctx context.Context, v any) error {
	err := c.fn(v)
	if err == nil {
		return nil
	}
	if f, ok := contract.AsFailure(err); ok {
		return f
	}
	f := contract.Failf(contract.CodeCustom, "%s", err.Error())
	f.Cause = err
	return f
}

func (c callContract) String() string { return "<call(" + c.name + ")>" }

func funcName(fn any) string {
	pc := reflect.ValueOf(fn).Pointer()
	f := runtime.FuncForPC(pc)
	if f == nil {
		return "func"
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// repr renders a literal the way descriptions quote it: strings in single
// quotes, everything else via reflect formatting.
func repr(v any) string {
	if s, ok := v.(string); ok {
		return "'" + s + "'"
	}
	if v == nil {
		return "null"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	default:
		return fmt.Sprint(v)
	}
}
