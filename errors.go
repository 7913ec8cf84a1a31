package contract

import (
	"errors"
	"fmt"

	"github.com/contractkit/contract/i18n"
)

// Failure codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeUnknownKey    = "unknown_key"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeBlank         = "blank"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFormat = "invalid_format"
	CodeNoMatch       = "no_match"
	CodeNotCallable   = "not_callable"
	CodeCustom        = "custom"
	CodeParseError    = "parse_error"
)

// Failure is a single validation failure: a message plus an optional dotted
// path locating the failing value inside a nested structure. A check signals
// at most one Failure per call.
type Failure struct {
	Path    string // Dotted/indexed locator (for example: children.0.name). Empty at the leaf.
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error (predicate contracts).
	// Params carries structured parameters (e.g., {"min":1, "got":42}) for
	// i18n and observability.
	Params map[string]any
}

// Error renders "<path>: <message>" when a path is present.
func (f *Failure) Error() string {
	if f.Path != "" {
		return f.Path + ": " + f.Message
	}
	return f.Message
}

// Unwrap exposes the underlying cause to errors.Is/As chains.
func (f *Failure) Unwrap() error { return f.Cause }

// Fail constructs a path-less Failure for the given code. The message is
// resolved through the i18n catalog; leaves stay oblivious to their position
// in a larger structure, composites attach the path via Located.
func Fail(code string, params map[string]any) *Failure {
	return &Failure{Code: code, Message: i18n.T(code, params), Params: params}
}

// Failf constructs a path-less Failure with an explicit message, bypassing
// the catalog. Used by predicate contracts whose message comes from user code.
func Failf(code, format string, args ...any) *Failure {
	return &Failure{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Located rewrites a child failure under the given prefix: the resulting
// path is prefix when the child was path-less, prefix + "." + child path
// otherwise. The child failure is not mutated; a new one replaces it.
// Errors that are not a *Failure (configuration errors) pass through as-is.
func Located(prefix string, err error) error {
	if err == nil {
		return nil
	}
	f, ok := AsFailure(err)
	if !ok {
		return err
	}
	path := prefix
	if f.Path != "" {
		path = prefix + "." + f.Path
	}
	return &Failure{Path: path, Code: f.Code, Message: f.Message, Cause: f.Cause, Params: f.Params}
}

// AsFailure extracts a *Failure from an error using errors.As internally.
func AsFailure(err error) (*Failure, bool) {
	if err == nil {
		return nil, false
	}
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// ConfigError reports programmer error while building a contract tree:
// invalid constructor arguments, double-binding a Forward cell, checking an
// unbound cell. It is never wrapped with a path.
type ConfigError struct {
	Op     string // The constructor or mutator that rejected its input.
	Reason string
}

func (e *ConfigError) Error() string { return "contract: " + e.Op + ": " + e.Reason }

// NewConfigError constructs a ConfigError for the given operation.
func NewConfigError(op, reason string) *ConfigError { return &ConfigError{Op: op, Reason: reason} }
