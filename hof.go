package prelude

import "fmt"

// The variadic traversal family walks any number of lists in parallel.
// Termination is governed by the first list: the walk stops when it ends,
// and a later list running out before then is an error.

func hofProcedure(name string, args Vector) Procedure {
	if len(args) < 2 {
		panic(name + " expects at least 2 arguments")
	}
	proc, ok := args[0].(Procedure)
	if !ok {
		panic("the first argument to " + name + " must be a procedure")
	}
	return proc
}

// eachPosition applies visit to the tuple of elements at every position of
// the first list, advancing all lists in lockstep.
func eachPosition(name string, lists Vector, visit func(actuals Vector)) {
	rest := make(Vector, len(lists))
	copy(rest, lists)

	first, ok := rest[0].(*Pair)
	if !ok && rest[0] != nil {
		panic("the arguments to " + name + " must be lists")
	}

	actuals := make(Vector, len(lists))
	for first != nil {
		actuals[0] = first.car
		for i := 1; i < len(rest); i++ {
			l, ok := rest[i].(*Pair)
			if !ok {
				if rest[i] == nil {
					panic(fmt.Sprintf("%v: list %d is shorter than the first list", name, i+1))
				}
				panic("the arguments to " + name + " must be lists")
			}
			actuals[i], rest[i] = l.car, l.cdr
		}
		visit(actuals)
		first, _ = first.cdr.(*Pair)
	}
}

// ProcedureMap applies a procedure across corresponding positions of one or
// more lists and collects the results in order.
func ProcedureMap(args Vector) Value {
	proc := hofProcedure("map", args)

	var head, tail *Pair
	eachPosition("map", args[1:], func(actuals Vector) {
		p := &Pair{car: proc.Apply(actuals)}
		if head == nil {
			head, tail = p, p
		} else {
			tail.cdr, tail = p, p
		}
	})

	if head == nil {
		return nil
	}
	return head
}

// ProcedureForEach has map's traversal contract but applies the procedure
// for effect only, left to right, and returns the empty value.
func ProcedureForEach(args Vector) Value {
	proc := hofProcedure("for-each", args)
	eachPosition("for-each", args[1:], func(actuals Vector) {
		proc.Apply(actuals)
	})
	return nil
}

// FoldRight combines the last element with the seed first and builds up
// through the list. The recursion depth is proportional to the list length.
func FoldRight(args Vector) Value {
	if len(args) != 3 {
		panic("foldr expects three arguments")
	}
	proc, ok := args[0].(Procedure)
	if !ok {
		panic("the first argument to foldr must be a procedure")
	}
	if args[2] == nil {
		return args[1]
	}
	p, ok := args[2].(*Pair)
	if !ok {
		panic("the third argument to foldr must be a list")
	}
	return foldRight(proc, args[1], p)
}

func foldRight(proc Procedure, seed Value, p *Pair) Value {
	if p == nil {
		return seed
	}
	rest, _ := p.cdr.(*Pair)
	return proc.Apply(Vector{p.car, foldRight(proc, seed, rest)})
}
