package prelude

import (
	"math"
	"math/big"
)

// Derived numeric operations, built from the comparison, arithmetic and
// rounding primitives in number.go.

// NumberEq compares every argument against the first. Unlike the sign
// predicates it never panics: any argument outside the numeric tower makes
// the comparison false, even when the values are otherwise equal.
func NumberEq(args Vector) Value {
	if len(args) == 0 {
		return Boolean(true)
	}

	if !isNumber(args[0]) {
		return Boolean(false)
	}

	for _, v := range args[1:] {
		if !isNumber(v) || !eqv(args[0], v) {
			return Boolean(false)
		}
	}

	return Boolean(true)
}

func ZeroPred(args Vector) Value {
	if len(args) != 1 {
		panic("zero? expects one argument")
	}
	return Boolean(toNumber("zero?", args[0]).f.Sign() == 0)
}

func PositivePred(args Vector) Value {
	if len(args) != 1 {
		panic("positive? expects one argument")
	}
	return Boolean(toNumber("positive?", args[0]).f.Sign() > 0)
}

func NegativePred(args Vector) Value {
	if len(args) != 1 {
		panic("negative? expects one argument")
	}
	return Boolean(toNumber("negative?", args[0]).f.Sign() < 0)
}

func OddPred(args Vector) Value {
	if len(args) != 1 {
		panic("odd? expects one argument")
	}
	rem := remainderFloat(toNumber("odd?", args[0]).f, big.NewFloat(2))
	return Boolean(rem.Sign() != 0)
}

func EvenPred(args Vector) Value {
	if len(args) != 1 {
		panic("even? expects one argument")
	}
	rem := remainderFloat(toNumber("even?", args[0]).f, big.NewFloat(2))
	return Boolean(rem.Sign() == 0)
}

// NumberMax folds from the right, keeping the left operand on ties so that
// its representation survives when two arguments denote the same quantity.
func NumberMax(args Vector) Value {
	if len(args) == 0 {
		panic("max expects at least one argument")
	}
	best := toNumber("max", args[len(args)-1])
	for i := len(args) - 2; i >= 0; i-- {
		n := toNumber("max", args[i])
		if n.f.Cmp(best.f) >= 0 {
			best = n
		}
	}
	return best
}

func NumberMin(args Vector) Value {
	if len(args) == 0 {
		panic("min expects at least one argument")
	}
	best := toNumber("min", args[len(args)-1])
	for i := len(args) - 2; i >= 0; i-- {
		n := toNumber("min", args[i])
		if n.f.Cmp(best.f) <= 0 {
			best = n
		}
	}
	return best
}

// quotientFloat divides and rounds toward zero: floor for a positive
// quotient, ceiling otherwise.
func quotientFloat(x, y *big.Float) *big.Float {
	var q big.Float
	q.Quo(x, y)
	if q.Sign() > 0 {
		return floorFloat(&q)
	}
	return ceilingFloat(&q)
}

// remainderFloat rounds both operands and applies the division identity
// x = y*q + r, so the result's sign follows the dividend's.
func remainderFloat(x, y *big.Float) *big.Float {
	rx, ry := roundFloat(x), roundFloat(y)
	q := quotientFloat(rx, ry)
	var prod, rem big.Float
	prod.Mul(ry, q)
	rem.Sub(rx, &prod)
	return &rem
}

// moduloFloat adjusts the remainder by one divisor when the operand signs
// differ, flipping the result's sign to the divisor's.
func moduloFloat(x, y *big.Float) *big.Float {
	rem := remainderFloat(x, y)
	if rem.Sign() != 0 && x.Sign()*y.Sign() < 0 {
		rem.Add(rem, roundFloat(y))
	}
	return rem
}

func binaryNumber(name string, op func(x, y *big.Float) *big.Float) ProcedureFunc {
	return func(args Vector) Value {
		if len(args) != 2 {
			panic(name + " expects two arguments")
		}
		x := toNumber(name, args[0])
		y := toNumber(name, args[1])
		return Number{op(x.f, y.f)}
	}
}

var (
	NumberQuotient  = binaryNumber("quotient", quotientFloat)
	NumberRemainder = binaryNumber("remainder", remainderFloat)
	NumberModulo    = binaryNumber("modulo", moduloFloat)
)

// toInt unwraps an exact integer operand.
func toInt(name string, v Value) int64 {
	n := toNumber(name, v)
	i, ok := n.Int()
	if !ok {
		panic("the arguments to " + name + " must be integers")
	}
	return i
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// NumberGcd runs the two-argument Euclidean algorithm on the absolute
// values. Not generalized beyond two operands.
func NumberGcd(args Vector) Value {
	if len(args) != 2 {
		panic("gcd expects two arguments")
	}
	a := abs64(toInt("gcd", args[0]))
	b := abs64(toInt("gcd", args[1]))
	for b != 0 {
		a, b = b, a%b
	}
	return NewInt(a)
}

// NumberLcm derives lcm from the product/gcd identity. Not generalized
// beyond two operands.
func NumberLcm(args Vector) Value {
	if len(args) != 2 {
		panic("lcm expects two arguments")
	}
	a := abs64(toInt("lcm", args[0]))
	b := abs64(toInt("lcm", args[1]))
	if a == 0 || b == 0 {
		return NewInt(0)
	}
	g, b0 := a, b
	for b0 != 0 {
		g, b0 = b0, g%b0
	}
	return NewInt(a / g * b)
}

// Factorial accumulates iteratively; 0! is 1. Negative and non-integer
// inputs are rejected rather than looping forever.
func Factorial(args Vector) Value {
	if len(args) != 1 {
		panic("factorial expects one argument")
	}
	i := toInt("factorial", args[0])
	if i < 0 {
		panic("the argument to factorial must be a non-negative integer")
	}

	var acc big.Float
	acc.SetInt64(1)
	for ; i > 0; i-- {
		var term big.Float
		term.SetInt64(i)
		acc.Mul(&acc, &term)
	}
	return Number{&acc}
}

func MakePolar(args Vector) Value {
	if len(args) != 2 {
		panic("make-polar expects two arguments")
	}
	mag := toFloat("make-polar", args[0])
	ang := toFloat("make-polar", args[1])
	return MakeRectangular(Vector{NewFloat(mag * math.Cos(ang)), NewFloat(mag * math.Sin(ang))})
}

// Magnitude is the Euclidean norm of the real and imaginary parts.
func Magnitude(args Vector) Value {
	if len(args) != 1 {
		panic("magnitude expects one argument")
	}
	re, im := realImag("magnitude", args[0])
	return NewFloat(math.Hypot(re, im))
}

// Angle is the quadrant-aware arctangent of the imaginary and real parts.
func Angle(args Vector) Value {
	if len(args) != 1 {
		panic("angle expects one argument")
	}
	re, im := realImag("angle", args[0])
	return NewFloat(math.Atan2(im, re))
}
