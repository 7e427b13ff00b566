package prelude

// Conversions between lists and vectors always allocate a new container;
// the two never share storage.

// ListToVector sizes the vector from the list's length, then fills the
// slots in list order.
func ListToVector(args Vector) Value {
	if len(args) != 1 {
		panic("list->vector expects one argument")
	}
	if args[0] == nil {
		return Vector{}
	}
	p, ok := args[0].(*Pair)
	if !ok {
		panic("the argument to list->vector must be a list")
	}

	n := 0
	for q := p; q != nil; q, _ = q.cdr.(*Pair) {
		n++
	}

	v := make(Vector, n)
	for i := 0; p != nil; i++ {
		v[i] = p.car
		p, _ = p.cdr.(*Pair)
	}
	return v
}

// VectorToList conses from the last index down to the first, so the list
// comes out in order without a second reversing pass.
func VectorToList(args Vector) Value {
	if len(args) != 1 {
		panic("vector->list expects one argument")
	}
	v, ok := args[0].(Vector)
	if !ok {
		panic("the argument to vector->list must be a vector")
	}
	return v.ToList()
}

// VectorFill overwrites every slot with the given value, last index down to
// zero, and returns the mutated vector.
func VectorFill(args Vector) Value {
	if len(args) != 2 {
		panic("vector-fill! expects two arguments")
	}
	v, ok := args[0].(Vector)
	if !ok {
		panic("the first argument to vector-fill! must be a vector")
	}
	for i := len(v) - 1; i >= 0; i-- {
		v[i] = args[1]
	}
	return v
}
