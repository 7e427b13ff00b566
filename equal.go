package prelude

// The three equality predicates form the axes the search engine is
// parameterized over: eq? and eqv? compare identities (with numbers compared
// by value), equal? descends into pairs and vectors.

// Eqv returns #t if its two arguments are normally regarded as the same
// object.
func Eqv(args Vector) Value {
	if len(args) != 2 {
		panic("eqv? expects 2 arguments")
	}

	return Boolean(eqv(args[0], args[1]))
}

func eqv(obj1, obj2 Value) bool {
	switch obj1 := obj1.(type) {
	case Number:
		// Two Numbers are the same object when they denote the same
		// quantity; Go identity on the wrapper is too fine.
		num2, ok := obj2.(Number)
		return ok && obj1.f.Cmp(num2.f) == 0
	case Vector:
		// Slices are not comparable with ==. A vector is the same object
		// as itself only; empty vectors are interchangeable.
		obj2, ok := obj2.(Vector)
		if !ok || len(obj1) != len(obj2) {
			return false
		}
		return len(obj1) == 0 || &obj1[0] == &obj2[0]
	case ProcedureFunc:
		// Func values have no usable identity.
		return false
	}

	return obj1 == obj2
}

func eq(obj1, obj2 Value) bool {
	return eqv(obj1, obj2)
}

func Eq(args Vector) Value {
	if len(args) != 2 {
		panic("eq? expects 2 arguments")
	}
	return Boolean(eq(args[0], args[1]))
}

// Equal returns #t if its arguments are structurally equal: pairs and
// vectors are compared element-wise, everything else falls back to eqv?.
func Equal(args Vector) Value {
	if len(args) != 2 {
		panic("equal? expects 2 arguments")
	}

	return Boolean(equal(args[0], args[1], map[interface{}]struct{}{}))
}

// equal tracks the pairs and vectors currently being compared so that
// self-referential structure fails the comparison instead of recursing
// forever. Pairs are keyed by pointer; vectors by the address of their first
// slot, since slices cannot be map keys.
func equal(obj1, obj2 Value, pending map[interface{}]struct{}) bool {
	if eqv(obj1, obj2) {
		return true
	}

	switch obj1 := obj1.(type) {
	case *Pair:
		obj2, ok := obj2.(*Pair)
		if !ok {
			return false
		}

		if !enter(pending, obj1, obj2) {
			return false
		}
		defer leave(pending, obj1, obj2)

		return equal(obj1.car, obj2.car, pending) && equal(obj1.cdr, obj2.cdr, pending)
	case Vector:
		obj2, ok := obj2.(Vector)
		if !ok || len(obj1) != len(obj2) {
			return false
		}

		// eqv covered the empty and identical cases, so both vectors have a
		// first slot here.
		if !enter(pending, &obj1[0], &obj2[0]) {
			return false
		}
		defer leave(pending, &obj1[0], &obj2[0])

		for i, e := range obj1 {
			if !equal(e, obj2[i], pending) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

func enter(pending map[interface{}]struct{}, key1, key2 interface{}) bool {
	if _, ok := pending[key1]; ok {
		return false
	}
	if _, ok := pending[key2]; ok {
		return false
	}
	pending[key1], pending[key2] = struct{}{}, struct{}{}
	return true
}

func leave(pending map[interface{}]struct{}, key1, key2 interface{}) {
	delete(pending, key1)
	delete(pending, key2)
}
