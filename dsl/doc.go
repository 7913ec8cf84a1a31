// Package dsl provides the contract constructors: leaf contracts (Any, Null,
// Bool, String, Int, Float, Enum, Callable, Call, and the format contracts),
// and the composites (Or, List, Dict, Mapping, Forward).
//
// Composites accept sub-contracts as any of the shorthands understood by
// contract.Of: a contract instance, a zero-argument constructor such as
// dsl.Int, or a reflect.Type. Shorthand is resolved once at construction;
// malformed arguments panic with a *contract.ConfigError.
package dsl
