package dsl

import (
	"context"

	contract "github.com/contractkit/contract"
)

// ForwardCell is a contract cell that can be referenced before its target
// is bound, enabling recursive schemas (a node contract whose children are
// lists of the same cell). The target is assigned exactly once; rebinding is
// a configuration error. Binding is part of tree construction and must
// complete before the tree is shared for checking: after Bind the cell is
// immutable and safe for concurrent use.
type ForwardCell struct {
	target contract.Contract
	// described is rendered once, inside Bind, so later String calls are
	// plain reads. describing breaks the cycle the cell deliberately
	// introduces into the contract graph while that rendering runs.
	described  string
	describing bool
}

// Forward returns an unbound cell.
func Forward() *ForwardCell { return &ForwardCell{} }

// Bind attaches the target contract (normalized through contract.Of).
// Binding twice is a configuration error.
func (f *ForwardCell) Bind(target any) error {
	if f.target != nil {
		return contract.NewConfigError("Forward.Bind", "contract for Forward is already specified")
	}
	c, err := contract.Of(target)
	if err != nil {
		return err
	}
	f.target = c
	f.describing = true
	f.described = "<Forward(" + c.String() + ")>"
	f.describing = false
	return nil
}

// MustBind is like Bind but panics on configuration error.
func (f *ForwardCell) MustBind(target any) *ForwardCell {
	if err := f.Bind(target); err != nil {
		panic(err)
	}
	return f
}

// Target returns the bound contract, or nil while the cell is unbound.
func (f *ForwardCell) Target() contract.Contract { return f.target }

// Check delegates to the bound target. Checking before binding is a
// configuration error, not a validation failure.
func (f *ForwardCell) Check(ctx context.Context, v any) error {
	if f.target == nil {
		return contract.NewConfigError("Forward.Check", "unbound Forward used")
	}
	return f.target.Check(ctx, v)
}

// String returns the description rendered at bind time. While that rendering
// is re-entered through the cell's own target, a recursion marker stands in
// for the cell.
func (f *ForwardCell) String() string {
	if f.describing {
		return "<recur>"
	}
	if f.target == nil {
		return "<Forward(unbound)>"
	}
	return f.described
}
