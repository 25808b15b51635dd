package typeexpr

import "reflect"

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindPlain       // a reflect.Type
	KindGeneric     // parameterized type: origin applied to type arguments
	KindUnion       // union of member type expressions
	KindLiteral     // literal type holding concrete values
	KindFunction    // function value
	KindUnspecified // the "..." marker
	KindValue       // not a type expression: an ordinary value

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Classify reports which type-expression category v falls into. Anything
// that is not a recognized type expression classifies as KindValue.
func Classify(v any) KindEnum {
	switch v.(type) {
	case Generic:
		return KindGeneric
	case Union:
		return KindUnion
	case Lit:
		return KindLiteral
	case unspecified:
		return KindUnspecified
	case reflect.Type:
		return KindPlain
	}

	if reflect.ValueOf(v).Kind() == reflect.Func {
		return KindFunction
	}

	return KindValue
}
