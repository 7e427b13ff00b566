package prelude

import "fmt"

// Derived list operations. None of these guard against cyclic lists: length,
// reverse, append and list? loop or recurse until the chain ends.

func ListPred(args Vector) Value {
	if len(args) != 1 {
		return Boolean(false)
	}
	v := args[0]
	for {
		if v == nil {
			return Boolean(true)
		}
		p, ok := v.(*Pair)
		if !ok {
			return Boolean(false)
		}
		v = p.cdr
	}
}

func ListLength(args Vector) Value {
	if len(args) != 1 {
		panic("length expects one argument")
	}
	if args[0] == nil {
		return NewInt(0)
	}
	p, ok := args[0].(*Pair)
	if !ok {
		panic("length expects a list")
	}
	len := 0
	for p != nil {
		p, _ = p.cdr.(*Pair)
		len++
	}
	return NewInt(int64(len))
}

// ListAppend concatenates its arguments. Every argument but the last is
// copied into a fresh chain; the last argument becomes the tail of the
// result unchanged, so the result shares structure with it.
func ListAppend(args Vector) Value {
	if len(args) == 0 {
		return nil
	}

	var head, tail *Pair
	for _, arg := range args[:len(args)-1] {
		if arg == nil {
			continue
		}

		p, ok := arg.(*Pair)
		if !ok {
			panic("arguments to append must be lists")
		}
		for p != nil {
			e := &Pair{car: p.car}
			if head == nil {
				head, tail = e, e
			} else {
				tail.cdr, tail = e, e
			}
			p, _ = p.cdr.(*Pair)
		}
	}

	if head == nil {
		return args[len(args)-1]
	}
	tail.cdr = args[len(args)-1]
	return head
}

// ListReverse reverses a proper list by appending each element's singleton
// list behind the reversed tail, one append per element.
func ListReverse(args Vector) Value {
	if len(args) != 1 {
		panic("reverse expects one argument")
	}
	if args[0] == nil {
		return nil
	}
	p, ok := args[0].(*Pair)
	if !ok {
		panic("the argument to reverse must be a list")
	}
	return reverseList(p)
}

func reverseList(p *Pair) Value {
	if p == nil {
		return nil
	}
	rest, _ := p.cdr.(*Pair)
	return ListAppend(Vector{reverseList(rest), Cons(p.car, nil)})
}

func ListTail(args Vector) Value {
	if len(args) != 2 {
		panic("list-tail expects two arguments")
	}
	p, ok := args[0].(*Pair)
	if !ok {
		panic("the first argument to list-tail must be a list")
	}
	n, ok := args[1].(Number)
	if !ok {
		panic("the second argument to list-tail must be a non-negative integer")
	}
	i, ok := n.Int()
	if !ok || i < 0 {
		panic("the second argument to list-tail must be a non-negative integer")
	}

	for j := i; p != nil && j > 0; j-- {
		p, _ = p.cdr.(*Pair)
	}

	if p == nil {
		panic(fmt.Sprintf("list does not contain %v elements", i))
	}
	return p
}

// ListRef is list-tail's skip loop followed by a head access.
func ListRef(args Vector) Value {
	if len(args) != 2 {
		panic("list-ref expects two arguments")
	}
	p, ok := args[0].(*Pair)
	if !ok {
		panic("the first argument to list-ref must be a list")
	}
	n, ok := args[1].(Number)
	if !ok {
		panic("the second argument to list-ref must be a non-negative integer")
	}
	i, ok := n.Int()
	if !ok || i < 0 {
		panic("the second argument to list-ref must be a non-negative integer")
	}

	for j := i; p != nil && j > 0; j-- {
		p, _ = p.cdr.(*Pair)
	}

	if p == nil {
		panic(fmt.Sprintf("list does not contain %v elements", i))
	}
	return p.car
}
