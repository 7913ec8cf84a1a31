package dsl_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	contract "github.com/contractkit/contract"
	"github.com/contractkit/contract/dsl"
)

// nodeSchema builds the canonical recursive shape: a node with a name and a
// list of child nodes.
func nodeSchema() *dsl.ForwardCell {
	node := dsl.Forward()
	node.MustBind(dsl.Dict(map[string]any{
		"name":     dsl.String,
		"children": dsl.List(node),
	}))
	return node
}

func TestForward_RecursiveSchema(t *testing.T) {
	ctx := context.Background()
	node := nodeSchema()
	doc := map[string]any{
		"name": "root",
		"children": []any{
			map[string]any{"name": "leaf", "children": []any{}},
		},
	}
	if err := node.Check(ctx, doc); err != nil {
		t.Fatalf("recursive schema rejected valid tree: %v", err)
	}
	bad := map[string]any{
		"name": "root",
		"children": []any{
			map[string]any{"name": 7, "children": []any{}},
		},
	}
	f := mustFailure(t, node.Check(ctx, bad))
	if f.Path != "children.0.name" {
		t.Fatalf("path = %q, want %q", f.Path, "children.0.name")
	}
}

func TestForward_RebindFails(t *testing.T) {
	node := dsl.Forward()
	if err := node.Bind(dsl.Int); err != nil {
		t.Fatalf("first bind failed: %v", err)
	}
	err := node.Bind(dsl.String)
	var ce *contract.ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected config error, got %v", err)
	}
	if !strings.Contains(ce.Error(), "already specified") {
		t.Fatalf("unexpected reason: %v", ce)
	}
}

func TestForward_MustBindPanicsOnRebind(t *testing.T) {
	node := dsl.Forward().MustBind(dsl.Int)
	defer func() {
		if _, ok := recover().(*contract.ConfigError); !ok {
			t.Fatalf("expected ConfigError panic")
		}
	}()
	node.MustBind(dsl.String)
}

func TestForward_UnboundCheckIsConfigError(t *testing.T) {
	err := dsl.Forward().Check(context.Background(), 1)
	var ce *contract.ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected config error, got %v", err)
	}
	if _, isFailure := contract.AsFailure(err); isFailure {
		t.Fatalf("config errors must not double as validation failures")
	}
}

func TestForward_DescriptionTerminates(t *testing.T) {
	node := nodeSchema()
	got := node.String()
	if !strings.Contains(got, "<recur>") {
		t.Fatalf("recursive description should contain the recursion marker: %q", got)
	}
	if got := dsl.Forward().String(); got != "<Forward(unbound)>" {
		t.Fatalf("unbound description = %q", got)
	}
}

func TestForward_ConcurrentDescriptionsAgree(t *testing.T) {
	// The description is rendered at bind time; once the cell is shared,
	// String is a plain read and never reports the top level as recursive.
	node := nodeSchema()
	want := node.String()
	if strings.HasPrefix(want, "<recur>") {
		t.Fatalf("top-level description must not be the recursion marker: %q", want)
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if got := node.String(); got != want {
					t.Errorf("description changed under concurrency: %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestForward_BindRejectsGarbage(t *testing.T) {
	err := dsl.Forward().Bind(42)
	var ce *contract.ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected config error, got %v", err)
	}
}
