package prelude

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	double := ProcedureFunc(func(args Vector) Value {
		return NumberMul(Vector{num(2), args[0]})
	})

	assertValue(t, nil, ProcedureMap(Vector{double, nil}))
	assertValue(t,
		lst(num(2), num(4), num(6)),
		ProcedureMap(Vector{double, lst(num(1), num(2), num(3))}))
}

func TestMapParallelLists(t *testing.T) {
	add := ProcedureFunc(NumberAdd)
	assertValue(t,
		lst(num(11), num(22), num(33)),
		ProcedureMap(Vector{add, lst(num(1), num(2), num(3)), lst(num(10), num(20), num(30))}))
}

func TestMapTerminatesOnFirstList(t *testing.T) {
	add := ProcedureFunc(NumberAdd)

	// A longer later list is simply cut off at the first list's length.
	assertValue(t,
		lst(num(11), num(22)),
		ProcedureMap(Vector{add, lst(num(1), num(2)), lst(num(10), num(20), num(30))}))

	// A shorter later list is an error.
	require.Panics(t, func() {
		ProcedureMap(Vector{add, lst(num(1), num(2), num(3)), lst(num(10))})
	})
}

func TestForEach(t *testing.T) {
	var seen []int64
	record := ProcedureFunc(func(args Vector) Value {
		x, _ := args[0].(Number).Int()
		y, _ := args[1].(Number).Int()
		seen = append(seen, x+y)
		return num(0)
	})

	result := ProcedureForEach(Vector{record, lst(num(1), num(2), num(3)), lst(num(10), num(20), num(30))})
	require.Nil(t, result)
	require.Equal(t, []int64{11, 22, 33}, seen)
}

func TestFoldRight(t *testing.T) {
	cons := ProcedureFunc(PairCons)
	sub := ProcedureFunc(NumberSub)

	assertValue(t, num(7), FoldRight(Vector{cons, num(7), nil}))

	// Folding cons over a list with the empty seed copies the list.
	l := lst(num(1), num(2), num(3))
	assertValue(t, l, FoldRight(Vector{cons, nil, l}))

	// Right associativity: 1 - (2 - (3 - 0)) = 2.
	assertValue(t, num(2), FoldRight(Vector{sub, num(0), l}))
}
