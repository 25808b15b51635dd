package repr

import "reflect"

// FieldsOf lists the exported struct fields of v as attribute entries, in
// declaration order. Fields holding nil are omitted: nil marks an unset
// optional, distinct from a zero value, which stays in. Non-nil pointer
// fields contribute their pointee. v may be a struct or a pointer to one;
// any other input yields no entries.
//
// This is the default lister for plain data types. Types with dynamic or
// filtered state implement ReprArgs directly instead.
func FieldsOf(v any) []Attr {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}

		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return nil
	}

	t := rv.Type()
	args := make([]Attr, 0, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		fv := rv.Field(i)
		if isAbsent(fv) {
			continue
		}

		if fv.Kind() == reflect.Ptr {
			fv = fv.Elem()
		}

		args = append(args, Attr{Name: f.Name, Value: fv.Interface()})
	}

	return args
}

// isAbsent reports whether fv holds the "no value" sentinel: a nil pointer,
// interface, map, slice, func, or channel.
func isAbsent(fv reflect.Value) bool {
	switch fv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return fv.IsNil()
	default:
		return false
	}
}
