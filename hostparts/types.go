// Package hostparts holds sample host-library types used by tests: the
// decomposed parts of a validated URL and a name/address pair, wired to the
// repr capability the way a validation model would be.
package hostparts

import "reprkit/repr"

// URL holds the decomposed parts of a validated URL. Optional parts are
// pointers and stay out of the representation while unset.
type URL struct {
	Scheme   string
	User     *string
	Password *string
	Host     string
	Port     *string
	Path     *string
	Query    *string
	Fragment *string
}

// ReprArgs lists the set URL parts in declaration order.
func (u URL) ReprArgs() []repr.Attr {
	return repr.FieldsOf(u)
}

func (u URL) String() string {
	return repr.String(u)
}

// GoString makes the %#v form match the debug representation.
func (u URL) GoString() string {
	return repr.Repr(u)
}

// NameEmail is a display name paired with an email address.
type NameEmail struct {
	Name  string
	Email string
}

// ReprArgs uses lower-case attribute names to match how the parts are
// addressed in validation messages.
func (n NameEmail) ReprArgs() []repr.Attr {
	return []repr.Attr{
		{Name: "name", Value: n.Name},
		{Name: "email", Value: n.Email},
	}
}

func (n NameEmail) String() string {
	return repr.String(n)
}

func (n NameEmail) GoString() string {
	return repr.Repr(n)
}
