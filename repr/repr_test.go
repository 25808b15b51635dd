package repr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reprkit/repr"
)

type empty struct{}

func (empty) ReprArgs() []repr.Attr { return nil }

type pair struct{}

func (pair) ReprArgs() []repr.Attr {
	return []repr.Attr{
		{Name: "a", Value: 1},
		{Value: "x"},
	}
}

type renamed struct{}

func (renamed) ReprArgs() []repr.Attr { return nil }
func (renamed) ReprName() string      { return "Alias" }

func TestReprEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", repr.String(empty{}))
	assert.Equal(t, "empty()", repr.Repr(empty{}))
}

func TestLiteralDebug(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", repr.Debug(repr.Literal("abc")))
	assert.Equal(t, `"abc"`, repr.Debug("abc"))
}

func TestReprComposition(t *testing.T) {
	t.Parallel()

	v := pair{}

	assert.Equal(t, `pair(a=1, "x")`, repr.Repr(v))
	assert.Equal(t, repr.Name(v)+"("+repr.Join(v, ", ")+")", repr.Repr(v))
	assert.Equal(t, `a=1 "x"`, repr.String(v))
}

func TestDebugNested(t *testing.T) {
	t.Parallel()

	// Representable values render through Repr, a Literal placeholder
	// stays verbatim.
	assert.Equal(t, `pair(a=1, "x")`, repr.Debug(pair{}))
	assert.Equal(t, "Foo()", repr.Debug(repr.Literal("Foo()")))
}

func TestName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "pair", repr.Name(pair{}))
	assert.Equal(t, "pair", repr.Name(&pair{}))
	assert.Equal(t, "Alias", repr.Name(renamed{}))
	assert.Equal(t, "<nil>", repr.Name(nil))
}

func TestNamerOverride(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Alias()", repr.Repr(renamed{}))
}

func TestReprIdempotent(t *testing.T) {
	t.Parallel()

	v := pair{}
	assert.Equal(t, repr.Repr(v), repr.Repr(v))
	assert.Equal(t, repr.String(v), repr.String(v))
}
