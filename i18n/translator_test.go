package i18n_test

import (
	"testing"

	"github.com/contractkit/contract/i18n"
)

func TestTranslator_EnglishMessages(t *testing.T) {
	cases := []struct {
		code string
		data map[string]any
		want string
	}{
		{"invalid_type", map[string]any{"expected": "int"}, "value is not int"},
		{"invalid_type", map[string]any{"expected": "bool"}, "value should be true or false"},
		{"invalid_type", map[string]any{"expected": "null"}, "value should be null"},
		{"required", map[string]any{"key": "bar"}, "bar is required"},
		{"unknown_key", map[string]any{"key": "eggs"}, "eggs is not allowed key"},
		{"too_short", map[string]any{"min": 1}, "list length is less than 1"},
		{"too_long", map[string]any{"max": 2}, "list length is greater than 2"},
		{"too_small", map[string]any{"min": int64(5)}, "value is less than 5"},
		{"too_small", map[string]any{"gt": int64(5)}, "value should be greater than 5"},
		{"too_big", map[string]any{"max": int64(3)}, "value is greater than 3"},
		{"too_big", map[string]any{"lt": int64(3)}, "value should be less than 3"},
		{"blank", nil, "blank value is not allowed"},
		{"invalid_enum", nil, "value doesn't match any variant"},
		{"no_match", nil, "no one contract matches"},
		{"not_callable", nil, "value is not callable"},
		{"invalid_format", map[string]any{"format": "email"}, "value is not email"},
		{"invalid_format", map[string]any{"format": "an iso formatted date"}, "value is not an iso formatted date"},
	}
	for _, tc := range cases {
		if got := i18n.T(tc.code, tc.data); got != tc.want {
			t.Fatalf("T(%q, %v) = %q, want %q", tc.code, tc.data, got, tc.want)
		}
	}
}

func TestTranslator_UnknownCodeEchoes(t *testing.T) {
	if got := i18n.T("made_up", nil); got != "made_up" {
		t.Fatalf("unknown codes should echo, got %q", got)
	}
}

func TestTranslator_Japanese(t *testing.T) {
	i18n.SetLanguage("ja")
	defer i18n.SetLanguage("en")
	if got := i18n.T("required", map[string]any{"key": "bar"}); got != "barは必須です" {
		t.Fatalf("unexpected ja message: %q", got)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, data map[string]any) string { return "X:" + code }

func TestTranslator_Replaceable(t *testing.T) {
	i18n.SetTranslator(upperTranslator{})
	defer i18n.SetTranslator(nil)
	if got := i18n.T("required", nil); got != "X:required" {
		t.Fatalf("custom translator not used: %q", got)
	}
}
