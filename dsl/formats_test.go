package dsl_test

import (
	"context"
	"testing"

	contract "github.com/contractkit/contract"
	"github.com/contractkit/contract/dsl"
)

func TestEmail(t *testing.T) {
	ctx := context.Background()
	c := dsl.Email()
	valid := []string{
		"someone@example.com",
		"first.last@sub.example.org",
		"o'brien+tag@example.co.uk",
		`"quoted.local"@example.com`,
		"user@[127.0.0.1]",
	}
	for _, s := range valid {
		if err := c.Check(ctx, s); err != nil {
			t.Fatalf("Email rejected %q: %v", s, err)
		}
	}
	invalid := []any{"", "no-at-sign", "a@b", "a@.com", "user@[999.0.0.1]", 42}
	for _, v := range invalid {
		f := mustFailure(t, c.Check(ctx, v))
		if f.Message != "value is not email" {
			t.Fatalf("unexpected message for %v: %q", v, f.Message)
		}
	}
}

func TestEmail_InternationalizedDomain(t *testing.T) {
	if err := dsl.Email().Check(context.Background(), "someone@münchen.de"); err != nil {
		t.Fatalf("IDN domain rejected: %v", err)
	}
}

func TestISODate(t *testing.T) {
	ctx := context.Background()
	c := dsl.ISODate()
	valid := []string{
		"2026-08-26",
		"2026-08-26T10:30:00",
		"2026-08-26 10:30:00",
		"2026-08-26T10:30:00Z",
		"2026-08-26T10:30:00+09:00",
	}
	for _, s := range valid {
		if err := c.Check(ctx, s); err != nil {
			t.Fatalf("ISODate rejected %q: %v", s, err)
		}
	}
	f := mustFailure(t, c.Check(ctx, "26/08/2026"))
	if f.Message != "value is not an iso formatted date" {
		t.Fatalf("unexpected message: %q", f.Message)
	}
	if f.Code != contract.CodeInvalidFormat {
		t.Fatalf("unexpected code: %q", f.Code)
	}
}

func TestDigitString(t *testing.T) {
	ctx := context.Background()
	c := dsl.DigitString()
	for _, s := range []string{"42", "-1", "3.14", "1e3"} {
		if err := c.Check(ctx, s); err != nil {
			t.Fatalf("DigitString rejected %q: %v", s, err)
		}
	}
	for _, v := range []any{"", "abc", 42} {
		f := mustFailure(t, c.Check(ctx, v))
		if f.Message != "value is not a number" {
			t.Fatalf("unexpected message for %v: %q", v, f.Message)
		}
	}
}

func TestUUID(t *testing.T) {
	ctx := context.Background()
	c := dsl.UUID()
	if err := c.Check(ctx, "123e4567-e89b-12d3-a456-426614174000"); err != nil {
		t.Fatalf("UUID rejected valid value: %v", err)
	}
	f := mustFailure(t, c.Check(ctx, "not-a-uuid"))
	if f.Message != "value is not uuid" {
		t.Fatalf("unexpected message: %q", f.Message)
	}
}

func TestFormats_Descriptions(t *testing.T) {
	cases := map[string]contract.Contract{
		"String with email format": dsl.Email(),
		"ISO formatted date":       dsl.ISODate(),
		"Digit":                    dsl.DigitString(),
		"String with uuid format":  dsl.UUID(),
	}
	for want, c := range cases {
		if got := c.String(); got != want {
			t.Fatalf("description = %q, want %q", got, want)
		}
	}
}
