package contract

import (
	"context"
	"fmt"
	"reflect"
)

// Contract is the base capability: anything that can check a value and
// describe itself. Check returns nil when the value is accepted, a *Failure
// when it is not, and a *ConfigError when the contract tree itself is
// malformed (unbound Forward cell). String returns a stable human-readable
// description used for guard documentation and debugging.
type Contract interface {
	Check(ctx context.Context, v any) error
	fmt.Stringer
}

// Of normalizes anything accepted as "a contract" into a Contract instance:
//
//   - a Contract is returned as-is;
//   - a zero-argument function returning a Contract implementation (the
//     constructor shorthand, e.g. dsl.Int) is invoked once;
//   - a reflect.Type is wrapped in a runtime type contract.
//
// Anything else is a configuration error. Composites call Of on every
// sub-contract argument, so call sites may mix shorthand with full
// instances. Resolution happens once, at tree construction.
func Of(v any) (Contract, error) {
	switch c := v.(type) {
	case nil:
		return nil, NewConfigError("Of", "nil is not a contract")
	case Contract:
		return c, nil
	case reflect.Type:
		return TypeOf(c), nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Func && rv.Type().NumIn() == 0 && rv.Type().NumOut() == 1 {
		out := rv.Call(nil)[0]
		if c, ok := out.Interface().(Contract); ok {
			return c, nil
		}
	}
	return nil, NewConfigError("Of", fmt.Sprintf("%T is not a contract, contract constructor, or reflect.Type", v))
}

// MustOf is like Of but panics on configuration error.
func MustOf(v any) Contract {
	c, err := Of(v)
	if err != nil {
		panic(err)
	}
	return c
}

// typeContract accepts values whose runtime type matches (or implements,
// for interface targets) the configured type.
type typeContract struct{ typ reflect.Type }

// TypeOf returns a contract accepting values assignable to the given
// runtime type. Interface targets accept any implementation.
func TypeOf(t reflect.Type) Contract {
	if t == nil {
		panic(NewConfigError("TypeOf", "nil reflect.Type"))
	}
	return typeContract{typ: t}
}

// Type returns a contract accepting values assignable to T.
func Type[T any]() Contract {
	return typeContract{typ: reflect.TypeOf((*T)(nil)).Elem()}
}

func (c typeContract) Check(ctx context.Context, v any) error {
	rt := reflect.TypeOf(v)
	if rt != nil && rt.AssignableTo(c.typ) {
		return nil
	}
	return Fail(CodeInvalidType, map[string]any{"expected": c.typ.String()})
}

func (c typeContract) String() string { return "<type(" + c.typ.String() + ")>" }
