package repr

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Literal is a string whose debug form is the string content itself, with
// no surrounding quotes and no escaping. Use it when an attribute value is
// already rendered and must not be re-quoted inside a larger expression.
type Literal string

// Attr is a single displayable attribute of an object. An empty Name means
// the value renders alone, without a "name=" prefix.
type Attr struct {
	Name  string
	Value any
}

// Representable is implemented by types that expose their displayable state
// as an ordered attribute list. All rendering in this package derives from
// this one method. Implementations return a fresh slice per call and do
// their own filtering of unset values.
type Representable interface {
	ReprArgs() []Attr
}

// Namer overrides the head name used by Repr and Pretty. Types that do not
// implement it are named after their reflect type.
type Namer interface {
	ReprName() string
}

// Name returns the display name for v: the ReprName override when present,
// otherwise the bare type name with pointer wrappers trimmed.
func Name(v any) string {
	if n, ok := v.(Namer); ok {
		return n.ReprName()
	}

	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}

	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Name() != "" {
		return t.Name()
	}

	return t.String()
}

// Debug returns the unambiguous textual form of a value: Literal content
// verbatim, strings quoted, Representable values via Repr, and everything
// else through the fmt default form.
func Debug(v any) string {
	switch v := v.(type) {
	case Literal:
		return string(v)
	case string:
		return strconv.Quote(v)
	}

	if r, ok := v.(Representable); ok {
		return Repr(r)
	}

	return fmt.Sprint(v)
}

// Join renders each attribute as name=debug(value), or debug(value) alone
// for unnamed entries, and joins them with sep.
func Join(v Representable, sep string) string {
	var sb strings.Builder

	for i, a := range v.ReprArgs() {
		if i > 0 {
			sb.WriteString(sep)
		}

		if a.Name != "" {
			sb.WriteString(a.Name)
			sb.WriteString("=")
		}

		sb.WriteString(Debug(a.Value))
	}

	return sb.String()
}

// String returns the human form of v: attributes joined with single spaces.
func String(v Representable) string {
	return Join(v, " ")
}

// Repr returns the debug form of v: the display name followed by the
// attributes in parentheses.
func Repr(v Representable) string {
	return Name(v) + "(" + Join(v, ", ") + ")"
}
