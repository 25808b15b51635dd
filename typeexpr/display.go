package typeexpr

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"reprkit/internal/common"
	"reprkit/repr"
)

// Display renders a type expression as it would be written in source:
// functions by name, Unspecified as "...", unions as "Union[a, b]",
// generics as "name[args]", literal types with debug-form values, and
// plain types by their qualified name. A value that is not a type
// expression at all degrades to DisplayOf, so "display this type" and
// "display the type of this value" both work through one entry point;
// callers that know they hold a value should call DisplayOf directly.
func Display(v any) string {
	if Classify(v) == KindFunction {
		return funcName(v)
	}

	if _, ok := v.(unspecified); ok {
		return "..."
	}

	if r, ok := v.(repr.Representable); ok {
		return repr.Repr(r)
	}

	switch x := v.(type) {
	case Union:
		return "Union[" + displayList(x.Members) + "]"
	case Lit:
		return "Literal[" + debugList(x.Values) + "]"
	case Generic:
		return displayGeneric(x)
	case reflect.Type:
		return typeName(x)
	}

	return DisplayOf(v)
}

// DisplayOf renders the type of an arbitrary value, the "what type is
// this" companion to Display.
func DisplayOf(v any) string {
	if v == nil {
		return "<nil>"
	}

	return Display(reflect.TypeOf(v))
}

func displayGeneric(g Generic) string {
	args := displayList(g.Args)

	switch o := g.Origin.(type) {
	case reflect.Type:
		if o.Name() != "" {
			return typeName(o) + "[" + args + "]"
		}
		// Unnamed origins carry no qualified name to use as the head;
		// degrade to the reflect string form.
		return stripPrefixes(o.String()) + "[" + args + "]"
	case string:
		return o + "[" + args + "]"
	default:
		return stripPrefixes(fmt.Sprint(o)) + "[" + args + "]"
	}
}

// typeName returns the qualified display name of a plain type: the bare
// name for predeclared types, the package-qualified name for named types,
// and the reflect string form for unnamed types.
func typeName(t reflect.Type) string {
	if t.Name() == "" {
		return stripPrefixes(t.String())
	}

	return common.QualifiedName(t.PkgPath(), t.Name())
}

func funcName(v any) string {
	fn := runtime.FuncForPC(reflect.ValueOf(v).Pointer())
	if fn == nil {
		return "func"
	}

	name := fn.Name()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}

	// method values are reported with an -fm suffix
	return strings.TrimSuffix(name, "-fm")
}

func displayList(items []any) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = Display(it)
	}

	return strings.Join(parts, ", ")
}

func debugList(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = repr.Debug(v)
	}

	return strings.Join(parts, ", ")
}

// stripPrefixes removes this library's own package qualifiers from reflect
// string forms, so wrapper types read as they are written.
func stripPrefixes(s string) string {
	s = strings.ReplaceAll(s, "typeexpr.", "")

	return strings.ReplaceAll(s, "repr.", "")
}
