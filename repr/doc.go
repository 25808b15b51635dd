// Package repr provides uniform human and debug string rendering for
// objects that expose their displayable state as an ordered attribute list.
//
// A type opts in by implementing Representable. Everything else derives
// from that single method:
//   - String / Repr: human ("a=1 b=2") and debug ("Foo(a=1, b=2)") forms
//   - Pretty / Rich: restartable token and attribute sequences for
//     external structured display tools
//   - FieldsOf: default attribute lister over exported struct fields
//
// Literal is a string whose debug form carries no quotes, so pre-rendered
// fragments can be embedded in a larger representation verbatim.
package repr
