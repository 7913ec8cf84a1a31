package dsl

import (
	"context"
	"strings"

	contract "github.com/contractkit/contract"
)

// OrBuilder is the alternation composite: an ordered list of sub-contracts
// tried in order, first match wins.
type OrBuilder struct{ alts []contract.Contract }

// Or returns a contract accepting values matched by any of the alternatives.
// Alternatives are normalized through contract.Of.
func Or(alts ...any) *OrBuilder {
	o := &OrBuilder{alts: make([]contract.Contract, 0, len(alts))}
	for _, a := range alts {
		o.alts = append(o.alts, contract.MustOf(a))
	}
	return o
}

// Else appends one more alternative after construction.
func (o *OrBuilder) Else(alt any) *OrBuilder {
	o.alts = append(o.alts, contract.MustOf(alt))
	return o
}

// Check tries each alternative independently on the same value; the first
// acceptance wins. When all fail, the individual failures are not aggregated
// into the message but remain available under Params["causes"].
func (o *OrBuilder) Check(ctx context.Context, v any) error {
	causes := make([]error, 0, len(o.alts))
	for _, alt := range o.alts {
		err := alt.Check(ctx, v)
		if err == nil {
			return nil
		}
		if _, ok := contract.AsFailure(err); !ok {
			return err // configuration error, not a validation outcome
		}
		causes = append(causes, err)
	}
	f := contract.Fail(contract.CodeNoMatch, nil)
	if len(causes) > 0 {
		f.Params = map[string]any{"causes": causes}
	}
	return f
}

func (o *OrBuilder) String() string {
	parts := make([]string, 0, len(o.alts))
	for _, alt := range o.alts {
		parts = append(parts, alt.String())
	}
	return strings.Join(parts, " or ")
}
