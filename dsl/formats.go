package dsl

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/idna"

	contract "github.com/contractkit/contract"
)

// emailRe covers dot-atom and quoted-string local parts, a dotted domain,
// and the bracketed IPv4 literal form (SMTP 4.1.3).
var emailRe = regexp.MustCompile(`(?i)(^[-!#$%&'*+/=?^_\x60{}|~0-9A-Z]+(\.[-!#$%&'*+/=?^_\x60{}|~0-9A-Z]+)*` +
	`|^"([\x01-\x08\x0b\x0c\x0e-\x1f!#-\[\]-\x7f]|\\[\x01-\x09\x0b\x0c\x0e-\x7f])*"` +
	`)@((?:[A-Z0-9](?:[A-Z0-9-]{0,61}[A-Z0-9])?\.)+[A-Z]{2,6}\.?$` +
	`|\[(25[0-5]|2[0-4]\d|[0-1]?\d?\d)(\.(25[0-5]|2[0-4]\d|[0-1]?\d?\d)){3}\]$)`)

// Email returns a contract accepting email address literals. When the plain
// match fails and the address has an internationalized domain, the domain is
// normalized to ASCII (IDNA) and matched once more.
func Email() contract.Contract { return emailContract{} }

type emailContract struct{}

func (emailContract) Check(ctx context.Context, v any) error {
	s, ok := v.(string)
	if !ok || s == "" {
		return contract.Fail(contract.CodeInvalidFormat, map[string]any{"format": "email"})
	}
	if emailRe.MatchString(s) {
		return nil
	}
	// Trivial case failed. Retry with an ASCII-normalized IDN domain part.
	if at := strings.LastIndexByte(s, '@'); at >= 0 {
		if ascii, err := idna.ToASCII(s[at+1:]); err == nil {
			if emailRe.MatchString(s[:at+1] + ascii) {
				return nil
			}
		}
	}
	return contract.Fail(contract.CodeInvalidFormat, map[string]any{"format": "email"})
}

func (emailContract) String() string { return "String with email format" }

// isoLayouts is tried in order; first parse wins.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ISODate returns a contract accepting ISO-8601 / RFC 3339 date and
// date-time strings.
func ISODate() contract.Contract { return isoDateContract{} }

type isoDateContract struct{}

func (isoDateContract) Check(ctx context.Context, v any) error {
	s, ok := v.(string)
	if ok && s != "" {
		for _, layout := range isoLayouts {
			if _, err := time.Parse(layout, s); err == nil {
				return nil
			}
		}
	}
	return contract.Fail(contract.CodeInvalidFormat, map[string]any{"format": "an iso formatted date"})
}

func (isoDateContract) String() string { return "ISO formatted date" }

// DigitString returns a contract accepting non-blank strings parseable as a
// number.
func DigitString() contract.Contract { return digitStringContract{} }

type digitStringContract struct{}

func (digitStringContract) Check(ctx context.Context, v any) error {
	s, ok := v.(string)
	if !ok || s == "" {
		return contract.Fail(contract.CodeInvalidFormat, map[string]any{"format": "a number"})
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return contract.Fail(contract.CodeInvalidFormat, map[string]any{"format": "a number"})
	}
	return nil
}

func (digitStringContract) String() string { return "Digit" }

// UUID returns a contract accepting RFC 4122 UUID strings.
func UUID() contract.Contract { return uuidContract{} }

type uuidContract struct{}

func (uuidContract) Check(ctx context.Context, v any) error {
	s, ok := v.(string)
	if !ok || s == "" {
		return contract.Fail(contract.CodeInvalidFormat, map[string]any{"format": "uuid"})
	}
	if _, err := uuid.Parse(s); err != nil {
		return contract.Fail(contract.CodeInvalidFormat, map[string]any{"format": "uuid"})
	}
	return nil
}

func (uuidContract) String() string { return "String with uuid format" }
