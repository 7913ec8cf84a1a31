package dsl_test

import (
	"context"
	"testing"

	contract "github.com/contractkit/contract"
	"github.com/contractkit/contract/dsl"
)

func TestMapping_AcceptsHomogeneousEntries(t *testing.T) {
	c := dsl.Mapping(dsl.String, dsl.Int)
	doc := map[string]any{"a": 1, "b": 2}
	if err := c.Check(context.Background(), doc); err != nil {
		t.Fatalf("Mapping rejected valid entries: %v", err)
	}
}

func TestMapping_KeyFailurePath(t *testing.T) {
	c := dsl.Mapping(dsl.Int, dsl.String)
	f := mustFailure(t, c.Check(context.Background(), map[any]any{"oops": "v"}))
	if f.Path != "(key 'oops')" {
		t.Fatalf("path = %q, want %q", f.Path, "(key 'oops')")
	}
	if f.Message != "value is not int" {
		t.Fatalf("unexpected message: %q", f.Message)
	}
}

func TestMapping_ValueFailurePath(t *testing.T) {
	c := dsl.Mapping(dsl.String, dsl.Int)
	f := mustFailure(t, c.Check(context.Background(), map[string]any{"a": "not int"}))
	if f.Path != "(value for key 'a')" {
		t.Fatalf("path = %q, want %q", f.Path, "(value for key 'a')")
	}
}

func TestMapping_DeterministicEntryOrder(t *testing.T) {
	c := dsl.Mapping(dsl.String, dsl.Int)
	doc := map[string]any{"b": "x", "a": "y", "c": "z"}
	for i := 0; i < 20; i++ {
		f := mustFailure(t, c.Check(context.Background(), doc))
		if f.Path != "(value for key 'a')" {
			t.Fatalf("entries should be visited in sorted order, got %q", f.Path)
		}
	}
}

func TestMapping_NonMap(t *testing.T) {
	f := mustFailure(t, dsl.Mapping(dsl.String, dsl.Int).Check(context.Background(), []any{}))
	if f.Code != contract.CodeInvalidType {
		t.Fatalf("unexpected failure: %v", f)
	}
}

func TestMapping_Description(t *testing.T) {
	got := dsl.Mapping(dsl.String, dsl.Int).String()
	if got != "<String => Integer>" {
		t.Fatalf("description = %q", got)
	}
}
