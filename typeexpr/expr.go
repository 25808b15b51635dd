package typeexpr

// Generic is a parameterized type expression: an origin applied to an
// ordered list of type arguments. Origin is usually a reflect.Type or a
// bare name string.
type Generic struct {
	Origin any
	Args   []any
}

// Union is a union of member type expressions.
type Union struct {
	Members []any
}

// Lit is a literal type: one or more concrete values standing in for a
// type. Its values always render in their debug form, never as nested type
// expressions, because literal members are values, not types.
type Lit struct {
	Values []any
}

type unspecified struct{}

// Unspecified marks an intentionally unconstrained type slot. It displays
// as "...".
var Unspecified = unspecified{}
