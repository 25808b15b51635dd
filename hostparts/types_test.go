package hostparts_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"reprkit/hostparts"
)

func strPtr(s string) *string { return &s }

func TestURLRepr(t *testing.T) {
	t.Parallel()

	u := hostparts.URL{
		Scheme: "https",
		Host:   "example.com",
		Port:   strPtr("8080"),
	}

	// Unset optional parts stay out of the representation.
	assert.Equal(t, `URL(Scheme="https", Host="example.com", Port="8080")`, fmt.Sprintf("%#v", u))
	assert.Equal(t, `Scheme="https" Host="example.com" Port="8080"`, fmt.Sprint(u))
}

func TestNameEmailRepr(t *testing.T) {
	t.Parallel()

	n := hostparts.NameEmail{Name: "ann", Email: "ann@example.com"}

	assert.Equal(t, `NameEmail(name="ann", email="ann@example.com")`, fmt.Sprintf("%#v", n))
	assert.Equal(t, `name="ann" email="ann@example.com"`, fmt.Sprint(n))
}
