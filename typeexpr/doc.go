// Package typeexpr renders type expressions as strings close to how they
// would be written in source.
//
// A type expression is either a plain reflect.Type, a Generic (origin plus
// type arguments), a Union, a Lit (literal values standing in for a type),
// a function value, or the Unspecified marker. Classify reports the
// category; Display renders an expression; DisplayOf renders the type of
// an arbitrary value.
package typeexpr
