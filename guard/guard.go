// Package guard validates named-argument maps against a keyed-mapping
// contract before a function runs. It builds the gate once, at wrap time;
// each call merges defaults for omitted arguments, checks the merged map,
// and only invokes the wrapped function when the check passes. Validation
// failures surface as *guard.Error so callers can tell bad arguments to a
// guarded call apart from validation failures inside business logic.
package guard

import (
	"context"
	"sort"
	"strings"

	contract "github.com/contractkit/contract"
	"github.com/contractkit/contract/dsl"
)

// Args is the named-argument map a guarded function receives.
type Args map[string]any

// Func is the guarded callable shape.
type Func func(ctx context.Context, args Args) (any, error)

// Error wraps the underlying contract failure for a rejected call.
type Error struct{ Failure *contract.Failure }

func (e *Error) Error() string { return "guard: " + e.Failure.Error() }

// Unwrap exposes the contract failure to errors.Is/As chains.
func (e *Error) Unwrap() error { return e.Failure }

// Guard holds the argument gate for one or more wrapped functions.
type Guard struct{ gate contract.Contract }

// New builds a guard around an argument gate. The gate must be a Dict or a
// Forward contract; anything else cannot describe a named-argument map and
// is a configuration error.
func New(gate contract.Contract) (*Guard, error) {
	switch gate.(type) {
	case *dsl.DictBuilder, *dsl.ForwardCell:
		return &Guard{gate: gate}, nil
	default:
		return nil, contract.NewConfigError("guard.New", "contract should be a Dict or Forward contract")
	}
}

// MustNew is like New but panics on configuration error.
func MustNew(gate contract.Contract) *Guard {
	g, err := New(gate)
	if err != nil {
		panic(err)
	}
	return g
}

// Fields is a convenience constructor building the Dict gate from a field
// map (values normalized through contract.Of).
func Fields(fields map[string]any) *Guard { return &Guard{gate: dsl.Dict(fields)} }

// Apply wraps fn. At each call the defaults are merged in for omitted
// arguments, the merged map is checked against the gate, and on failure a
// *guard.Error is returned with fn left uncalled.
func (g *Guard) Apply(fn Func, defaults Args) Func {
	return func(ctx context.Context, args Args) (any, error) {
		merged := make(Args, len(args)+len(defaults))
		for k, v := range args {
			merged[k] = v
		}
		for k, v := range defaults {
			if _, ok := merged[k]; !ok {
				merged[k] = v
			}
		}
		if err := g.gate.Check(ctx, map[string]any(merged)); err != nil {
			if f, ok := contract.AsFailure(err); ok {
				return nil, &Error{Failure: f}
			}
			return nil, err
		}
		return fn(ctx, merged)
	}
}

// Doc renders help text for a guarded function: a "Guarded with:" block
// listing each argument's contract description, followed by the summary.
func (g *Guard) Doc(summary string) string {
	var b strings.Builder
	b.WriteString("Guarded with:\n\n")
	gate := g.gate
	if f, ok := gate.(*dsl.ForwardCell); ok {
		if t := f.Target(); t != nil {
			gate = t
		}
	}
	if d, ok := gate.(*dsl.DictBuilder); ok {
		fields := d.FieldContracts()
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString("- ``" + k + "``: " + fields[k].String() + "\n")
		}
		if len(keys) > 0 {
			b.WriteString("\n")
		}
	} else {
		b.WriteString("- " + gate.String() + "\n\n")
	}
	b.WriteString(summary)
	return b.String()
}
