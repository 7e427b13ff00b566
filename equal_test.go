package prelude

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqv(t *testing.T) {
	p := Cons(num(1), num(2))

	assertValue(t, Boolean(true), Eqv(Vector{num(1), num(1)}))
	assertValue(t, Boolean(true), Eqv(Vector{NewInt(2), NewFloat(2)}))
	assertValue(t, Boolean(true), Eqv(Vector{Symbol("a"), Symbol("a")}))
	assertValue(t, Boolean(true), Eqv(Vector{p, p}))

	// Distinct pairs are distinct objects regardless of contents.
	assertValue(t, Boolean(false), Eqv(Vector{Cons(num(1), num(2)), Cons(num(1), num(2))}))
	assertValue(t, Boolean(false), Eqv(Vector{num(1), num(2)}))
}

func TestEqual(t *testing.T) {
	assertValue(t, Boolean(true), Equal(Vector{
		lst(num(1), lst(num(2), num(3))),
		lst(num(1), lst(num(2), num(3))),
	}))
	assertValue(t, Boolean(false), Equal(Vector{
		lst(num(1), num(2)),
		lst(num(1), num(3)),
	}))
	assertValue(t, Boolean(true), Equal(Vector{
		Vector{num(1), lst(num(2))},
		Vector{num(1), lst(num(2))},
	}))
	assertValue(t, Boolean(false), Equal(Vector{
		Vector{num(1)},
		Vector{num(1), num(2)},
	}))
	assertValue(t, Boolean(false), Equal(Vector{num(1), Symbol("1")}))
}

func TestDisplay(t *testing.T) {
	var b strings.Builder
	old := SetDisplayWriter(&b)
	defer SetDisplayWriter(old)

	Display(Vector{String("x is "), num(42)})
	assert.Equal(t, "x is 42", b.String())

	b.Reset()
	Display(Vector{lst(num(1), num(2), num(3))})
	assert.Equal(t, "(1 2 3)", b.String())
}

func TestRepr(t *testing.T) {
	assertValue(t, String("(1 2 3)"), Repr(Vector{lst(num(1), num(2), num(3))}))
	assertValue(t, String("#f"), Repr(Vector{Boolean(false)}))
}
