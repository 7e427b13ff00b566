package prelude

import (
	"math"
	"math/big"
)

// isNumber reports whether v belongs to the numeric tower.
func isNumber(v Value) bool {
	switch v.(type) {
	case Number, Complex:
		return true
	}
	return false
}

func NumberPred(args Vector) Value {
	if len(args) != 1 {
		return Boolean(false)
	}
	return Boolean(isNumber(args[0]))
}

// ComplexPred is true for every number: the tower places reals inside the
// complex numbers.
func ComplexPred(args Vector) Value {
	return NumberPred(args)
}

func ExactPred(args Vector) Value {
	if len(args) != 1 {
		panic("exact? expects one argument")
	}
	switch n := args[0].(type) {
	case Number:
		return Boolean(n.Exact())
	case Complex:
		return Boolean(false)
	}
	panic("the argument to exact? must be a number")
}

func NumberLt(args Vector) Value {
	if len(args) == 0 {
		return Boolean(true)
	}

	n, ok := args[0].(Number)
	if !ok {
		return Boolean(false)
	}

	for _, v := range args[1:] {
		x, ok := v.(Number)
		if !ok || n.f.Cmp(x.f) != -1 {
			return Boolean(false)
		}
		n = x
	}

	return Boolean(true)
}

func NumberGt(args Vector) Value {
	if len(args) == 0 {
		return Boolean(true)
	}

	n, ok := args[0].(Number)
	if !ok {
		return Boolean(false)
	}

	for _, v := range args[1:] {
		x, ok := v.(Number)
		if !ok || n.f.Cmp(x.f) != 1 {
			return Boolean(false)
		}
		n = x
	}

	return Boolean(true)
}

func NumberLte(args Vector) Value {
	if len(args) == 0 {
		return Boolean(true)
	}

	n, ok := args[0].(Number)
	if !ok {
		return Boolean(false)
	}

	for _, v := range args[1:] {
		x, ok := v.(Number)
		if !ok || n.f.Cmp(x.f) == 1 {
			return Boolean(false)
		}
		n = x
	}

	return Boolean(true)
}

func NumberGte(args Vector) Value {
	if len(args) == 0 {
		return Boolean(true)
	}

	n, ok := args[0].(Number)
	if !ok {
		return Boolean(false)
	}

	for _, v := range args[1:] {
		x, ok := v.(Number)
		if !ok || n.f.Cmp(x.f) == -1 {
			return Boolean(false)
		}
		n = x
	}

	return Boolean(true)
}

func NumberAdd(args Vector) Value {
	if len(args) == 0 {
		return nil
	}

	n, ok := args[0].(Number)
	if !ok {
		return nil
	}

	var sum big.Float
	sum.Copy(n.f)
	for _, v := range args[1:] {
		x, ok := v.(Number)
		if !ok {
			return nil
		}
		sum.Add(&sum, x.f)
	}
	return Number{f: &sum}
}

func NumberMul(args Vector) Value {
	if len(args) == 0 {
		return nil
	}

	n, ok := args[0].(Number)
	if !ok {
		return nil
	}

	var product big.Float
	product.Copy(n.f)
	for _, v := range args[1:] {
		x, ok := v.(Number)
		if !ok {
			return nil
		}
		product.Mul(&product, x.f)
	}
	return Number{f: &product}
}

func NumberSub(args Vector) Value {
	if len(args) == 0 {
		return nil
	}

	n, ok := args[0].(Number)
	if !ok {
		return nil
	}
	var diff big.Float
	diff.Copy(n.f)

	if len(args) == 1 {
		diff.Neg(&diff)
		return Number{&diff}
	}

	for _, v := range args[1:] {
		x, ok := v.(Number)
		if !ok {
			return nil
		}
		diff.Sub(&diff, x.f)
	}
	return Number{&diff}
}

func NumberDiv(args Vector) Value {
	if len(args) == 0 {
		return nil
	}

	n, ok := args[0].(Number)
	if !ok {
		return nil
	}
	var quo big.Float
	quo.Copy(n.f)

	if len(args) == 1 {
		quo.Quo(big.NewFloat(1), &quo)
		return Number{&quo}
	}

	for _, v := range args[1:] {
		x, ok := v.(Number)
		if !ok {
			return nil
		}
		quo.Quo(&quo, x.f)
	}
	return Number{&quo}
}

// toNumber unwraps a real operand for the procedure named by name.
func toNumber(name string, v Value) Number {
	n, ok := v.(Number)
	if !ok {
		panic("the argument to " + name + " must be a number")
	}
	return n
}

// toFloat unwraps a real operand into the float64 domain the transcendental
// primitives operate in.
func toFloat(name string, v Value) float64 {
	n := toNumber(name, v)
	x, _ := n.f.Float64()
	return x
}

func floorFloat(x *big.Float) *big.Float {
	i, _ := x.Int(nil) // rounds toward zero
	var r big.Float
	r.SetInt(i)
	if x.Cmp(&r) < 0 {
		r.Sub(&r, big.NewFloat(1))
	}
	return &r
}

func ceilingFloat(x *big.Float) *big.Float {
	i, _ := x.Int(nil)
	var r big.Float
	r.SetInt(i)
	if x.Cmp(&r) > 0 {
		r.Add(&r, big.NewFloat(1))
	}
	return &r
}

// roundFloat rounds half away from zero.
func roundFloat(x *big.Float) *big.Float {
	half := big.NewFloat(0.5)
	var shifted big.Float
	if x.Sign() >= 0 {
		shifted.Add(x, half)
		return floorFloat(&shifted)
	}
	shifted.Sub(x, half)
	return ceilingFloat(&shifted)
}

func truncateFloat(x *big.Float) *big.Float {
	i, _ := x.Int(nil)
	var r big.Float
	r.SetInt(i)
	return &r
}

func unaryNumber(name string, op func(*big.Float) *big.Float) ProcedureFunc {
	return func(args Vector) Value {
		if len(args) != 1 {
			panic(name + " expects one argument")
		}
		return Number{op(toNumber(name, args[0]).f)}
	}
}

var (
	NumberFloor    = unaryNumber("floor", floorFloat)
	NumberCeiling  = unaryNumber("ceiling", ceilingFloat)
	NumberRound    = unaryNumber("round", roundFloat)
	NumberTruncate = unaryNumber("truncate", truncateFloat)
)

func NumberSqrt(args Vector) Value {
	if len(args) != 1 {
		panic("sqrt expects one argument")
	}
	var root big.Float
	root.Sqrt(toNumber("sqrt", args[0]).f)
	return Number{&root}
}

func NumberSin(args Vector) Value {
	if len(args) != 1 {
		panic("sin expects one argument")
	}
	return NewFloat(math.Sin(toFloat("sin", args[0])))
}

func NumberCos(args Vector) Value {
	if len(args) != 1 {
		panic("cos expects one argument")
	}
	return NewFloat(math.Cos(toFloat("cos", args[0])))
}

// NumberAtan implements both the one-argument arctangent and the
// two-argument quadrant-aware form.
func NumberAtan(args Vector) Value {
	switch len(args) {
	case 1:
		return NewFloat(math.Atan(toFloat("atan", args[0])))
	case 2:
		return NewFloat(math.Atan2(toFloat("atan", args[0]), toFloat("atan", args[1])))
	}
	panic("atan expects one or two arguments")
}

func MakeRectangular(args Vector) Value {
	if len(args) != 2 {
		panic("make-rectangular expects two arguments")
	}
	re := toFloat("make-rectangular", args[0])
	im := toFloat("make-rectangular", args[1])
	if im == 0 {
		return NewFloat(re)
	}
	return NewComplex(re, im)
}

// realImag projects any number onto the complex plane.
func realImag(name string, v Value) (re, im float64) {
	switch n := v.(type) {
	case Number:
		re, _ = n.f.Float64()
		return re, 0
	case Complex:
		return n.re, n.im
	}
	panic("the argument to " + name + " must be a number")
}

func RealPart(args Vector) Value {
	if len(args) != 1 {
		panic("real-part expects one argument")
	}
	// A real is its own real part; going through float64 would lose
	// exactness.
	if n, ok := args[0].(Number); ok {
		return n
	}
	re, _ := realImag("real-part", args[0])
	return NewFloat(re)
}

func ImagPart(args Vector) Value {
	if len(args) != 1 {
		panic("imag-part expects one argument")
	}
	if _, ok := args[0].(Number); ok {
		return NewInt(0)
	}
	_, im := realImag("imag-part", args[0])
	return NewFloat(im)
}
