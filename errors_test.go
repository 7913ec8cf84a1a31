package contract_test

import (
	"errors"
	"testing"

	contract "github.com/contractkit/contract"
)

func TestFail_IsPathless(t *testing.T) {
	f := contract.Fail(contract.CodeInvalidType, map[string]any{"expected": "int"})
	if f.Path != "" {
		t.Fatalf("leaf failures must not carry a path, got %q", f.Path)
	}
	if f.Message != "value is not int" {
		t.Fatalf("unexpected message: %q", f.Message)
	}
	if f.Error() != "value is not int" {
		t.Fatalf("unexpected Error(): %q", f.Error())
	}
}

func TestLocated_PrefixesPath(t *testing.T) {
	leaf := contract.Fail(contract.CodeInvalidType, map[string]any{"expected": "int"})

	err := contract.Located("0", leaf)
	f, ok := contract.AsFailure(err)
	if !ok {
		t.Fatalf("expected a *Failure, got %T", err)
	}
	if f.Path != "0" {
		t.Fatalf("expected path %q, got %q", "0", f.Path)
	}

	err = contract.Located("children", err)
	f, ok = contract.AsFailure(err)
	if !ok {
		t.Fatalf("expected a *Failure, got %T", err)
	}
	if f.Path != "children.0" {
		t.Fatalf("expected path %q, got %q", "children.0", f.Path)
	}
	if f.Error() != "children.0: value is not int" {
		t.Fatalf("unexpected Error(): %q", f.Error())
	}
	// The original leaf failure is untouched.
	if leaf.Path != "" {
		t.Fatalf("Located must not mutate the child failure")
	}
}

func TestLocated_PassesConfigErrorsThrough(t *testing.T) {
	cfg := contract.NewConfigError("Forward.Check", "unbound Forward used")
	err := contract.Located("field", cfg)
	var ce *contract.ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConfigError to pass through, got %T", err)
	}
	if _, ok := contract.AsFailure(err); ok {
		t.Fatalf("ConfigError must never become a Failure")
	}
}

func TestLocated_NilIsNil(t *testing.T) {
	if err := contract.Located("x", nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestFailf_KeepsExplicitMessage(t *testing.T) {
	f := contract.Failf(contract.CodeCustom, "I want only foo!")
	if f.Message != "I want only foo!" {
		t.Fatalf("unexpected message: %q", f.Message)
	}
	if f.Code != contract.CodeCustom {
		t.Fatalf("unexpected code: %q", f.Code)
	}
}
