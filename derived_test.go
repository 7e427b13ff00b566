package prelude

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberEq(t *testing.T) {
	assertValue(t, Boolean(true), NumberEq(Vector{num(1), num(1), num(1)}))
	assertValue(t, Boolean(false), NumberEq(Vector{num(1), num(2)}))

	// Non-numbers degrade to #f instead of panicking, even when the values
	// would otherwise compare equal.
	assertValue(t, Boolean(false), NumberEq(Vector{Symbol("a"), Symbol("a")}))
	assertValue(t, Boolean(false), NumberEq(Vector{num(1), num(1), Symbol("a")}))
}

func TestNumberEqComplex(t *testing.T) {
	c := NewComplex(1, 2)

	// Complex values are classified as numbers, so = compares them instead
	// of degrading to #f.
	assertValue(t, Boolean(true), NumberPred(Vector{c}))
	assertValue(t, Boolean(true), NumberEq(Vector{c, NewComplex(1, 2)}))
	assertValue(t, Boolean(false), NumberEq(Vector{c, NewComplex(1, 3)}))
	assertValue(t, Boolean(false), NumberEq(Vector{c, num(1)}))
	assertValue(t, Boolean(false), NumberEq(Vector{num(1), c}))
	assertValue(t, Boolean(false), NumberEq(Vector{c, NewComplex(1, 2), Symbol("a")}))
}

func TestSignAndParityPredicates(t *testing.T) {
	assertValue(t, Boolean(true), ZeroPred(Vector{num(0)}))
	assertValue(t, Boolean(false), ZeroPred(Vector{num(3)}))
	assertValue(t, Boolean(true), PositivePred(Vector{num(3)}))
	assertValue(t, Boolean(false), PositivePred(Vector{num(-3)}))
	assertValue(t, Boolean(true), NegativePred(Vector{num(-3)}))
	assertValue(t, Boolean(true), OddPred(Vector{num(3)}))
	assertValue(t, Boolean(true), OddPred(Vector{num(-3)}))
	assertValue(t, Boolean(false), OddPred(Vector{num(4)}))
	assertValue(t, Boolean(true), EvenPred(Vector{num(4)}))
	assertValue(t, Boolean(false), EvenPred(Vector{num(3)}))

	// Unlike =, the sign predicates propagate the type error.
	require.Panics(t, func() {
		PositivePred(Vector{Symbol("a")})
	})
}

func TestMaxMin(t *testing.T) {
	assertValue(t, num(7), NumberMax(Vector{num(3), num(7), num(2)}))
	assertValue(t, num(2), NumberMin(Vector{num(3), num(7), num(2)}))
	assertValue(t, num(5), NumberMax(Vector{num(5)}))
	assertValue(t, num(5), NumberMin(Vector{num(5)}))
}

func TestMaxMinTiesKeepLeftOperand(t *testing.T) {
	exact := NewInt(2)
	inexact := NewFloat(2)

	// The left operand survives an equal comparison, so its representation
	// is the one returned.
	assert.True(t, NumberMax(Vector{exact, inexact}).(Number) == exact)
	assert.True(t, NumberMin(Vector{inexact, exact}).(Number) == inexact)
}

func TestIntegerDivisionFamily(t *testing.T) {
	cases := []struct{ x, y, quo, rem, mod int64 }{
		{7, 2, 3, 1, 1},
		{-7, 2, -3, -1, 1},
		{7, -2, -3, 1, -1},
		{-7, -2, 3, -1, -1},
		{12, 3, 4, 0, 0},
		{1, 5, 0, 1, 1},
		{-1, 5, 0, -1, 4},
	}
	for _, c := range cases {
		x, y := num(c.x), num(c.y)
		assertValue(t, num(c.quo), NumberQuotient(Vector{x, y}))
		assertValue(t, num(c.rem), NumberRemainder(Vector{x, y}))
		assertValue(t, num(c.mod), NumberModulo(Vector{x, y}))

		// dividend = divisor * quotient + remainder
		reconstructed := NumberAdd(Vector{
			NumberMul(Vector{y, NumberQuotient(Vector{x, y})}),
			NumberRemainder(Vector{x, y}),
		})
		assertValue(t, x, reconstructed)
	}
}

func TestGcdLcm(t *testing.T) {
	assertValue(t, num(6), NumberGcd(Vector{num(12), num(18)}))
	assertValue(t, num(6), NumberGcd(Vector{num(-12), num(18)}))
	assertValue(t, num(5), NumberGcd(Vector{num(0), num(5)}))
	assertValue(t, num(12), NumberLcm(Vector{num(4), num(6)}))
	assertValue(t, num(0), NumberLcm(Vector{num(0), num(6)}))
}

func TestFactorial(t *testing.T) {
	assertValue(t, num(1), Factorial(Vector{num(0)}))
	assertValue(t, num(120), Factorial(Vector{num(5)}))

	require.Panics(t, func() {
		Factorial(Vector{num(-1)})
	})
	require.Panics(t, func() {
		Factorial(Vector{NewFloat(1.5)})
	})
}

func TestRounding(t *testing.T) {
	assertValue(t, num(1), NumberFloor(Vector{NewFloat(1.7)}))
	assertValue(t, num(-2), NumberFloor(Vector{NewFloat(-1.3)}))
	assertValue(t, num(2), NumberCeiling(Vector{NewFloat(1.3)}))
	assertValue(t, num(-1), NumberCeiling(Vector{NewFloat(-1.7)}))
	assertValue(t, num(2), NumberRound(Vector{NewFloat(1.5)}))
	assertValue(t, num(-2), NumberRound(Vector{NewFloat(-1.5)}))
	assertValue(t, num(1), NumberTruncate(Vector{NewFloat(1.9)}))
	assertValue(t, num(-1), NumberTruncate(Vector{NewFloat(-1.9)}))
}

func TestPolarRectangular(t *testing.T) {
	c := MakeRectangular(Vector{num(3), num(4)})

	mag, _ := Magnitude(Vector{c}).(Number).Float64()
	assert.InDelta(t, 5, mag, 1e-12)

	ang, _ := Angle(Vector{c}).(Number).Float64()
	assert.InDelta(t, math.Atan2(4, 3), ang, 1e-12)

	// A polar round trip reproduces the rectangular parts.
	back := MakePolar(Vector{Magnitude(Vector{c}), Angle(Vector{c})})
	re, _ := RealPart(Vector{back}).(Number).Float64()
	im, _ := ImagPart(Vector{back}).(Number).Float64()
	assert.InDelta(t, 3, re, 1e-12)
	assert.InDelta(t, 4, im, 1e-12)
}

func TestRealNumbersAreComplex(t *testing.T) {
	assertValue(t, Boolean(true), ComplexPred(Vector{num(3)}))
	assertValue(t, num(3), RealPart(Vector{num(3)}))
	assertValue(t, num(0), ImagPart(Vector{num(3)}))

	mag, _ := Magnitude(Vector{num(-3)}).(Number).Float64()
	assert.InDelta(t, 3, mag, 1e-12)

	ang, _ := Angle(Vector{num(-3)}).(Number).Float64()
	assert.InDelta(t, math.Pi, ang, 1e-12)
}

func TestExactness(t *testing.T) {
	assertValue(t, Boolean(true), ExactPred(Vector{num(3)}))
	assertValue(t, Boolean(false), ExactPred(Vector{NewFloat(3.5)}))
	assertValue(t, Boolean(false), ExactPred(Vector{NewComplex(1, 2)}))
}
