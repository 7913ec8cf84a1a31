// Package contract provides small composable runtime validators
// ("contracts") for arbitrary decoded data: primitives, lists, keyed and
// homogeneous mappings, alternations, enumerations, custom predicates, and
// recursive structures via forward declarations.
//
// A contract tree is built once and then checked repeatedly:
//
//	node := dsl.Forward()
//	node.MustBind(dsl.Dict(map[string]any{
//		"name":     dsl.String(),
//		"children": dsl.List(node),
//	}))
//	err := node.Check(ctx, doc)
//
// Failures carry a dotted path locating the offending value inside nested
// structures (for example "children.0.name"). Leaves report path-less
// failures; every enclosing composite prefixes its key or index while the
// failure propagates outward.
//
// Design policy:
//   - Keep the public error model and the Contract capability in the root
//     package; put constructors under dsl/, message catalogs under i18n/,
//     input decoding under source/, and argument guarding under guard/.
//   - Checking never mutates contract configuration. The two mutable
//     composites (Dict policy extension, Forward binding) are meant to be
//     finished before a tree is shared.
//   - Validation failures (*Failure) and configuration errors (*ConfigError)
//     are distinct kinds; only the former ever carries a path.
package contract
