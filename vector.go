package prelude

import "fmt"

// Primitive vector operations. Vectors are fixed-length once allocated;
// conversions to and from lists always copy (vectorconv.go).

func VectorPred(args Vector) Value {
	if len(args) != 1 {
		return Boolean(false)
	}
	_, ok := args[0].(Vector)
	return Boolean(ok)
}

// MakeVector allocates a vector of the given length. An optional second
// argument supplies the initial value of every slot.
func MakeVector(args Vector) Value {
	if len(args) != 1 && len(args) != 2 {
		panic("make-vector expects one or two arguments")
	}
	n, ok := args[0].(Number)
	if !ok {
		panic("the first argument to make-vector must be a non-negative integer")
	}
	size, ok := n.Int()
	if !ok || size < 0 {
		panic("the first argument to make-vector must be a non-negative integer")
	}

	v := make(Vector, size)
	if len(args) == 2 {
		for i := range v {
			v[i] = args[1]
		}
	}
	return v
}

func VectorLength(args Vector) Value {
	if len(args) != 1 {
		panic("vector-length expects one argument")
	}
	v, ok := args[0].(Vector)
	if !ok {
		panic("the argument to vector-length must be a vector")
	}
	return NewInt(int64(len(v)))
}

func vectorIndex(name string, v Vector, arg Value) int64 {
	n, ok := arg.(Number)
	if !ok {
		panic("the index argument to " + name + " must be an integer")
	}
	i, ok := n.Int()
	if !ok {
		panic("the index argument to " + name + " must be an integer")
	}
	if i < 0 || i >= int64(len(v)) {
		panic(fmt.Sprintf("%v is not a member of a vector of length %v", i, len(v)))
	}
	return i
}

func VectorRef(args Vector) Value {
	if len(args) != 2 {
		panic("vector-ref expects 2 arguments")
	}
	v, ok := args[0].(Vector)
	if !ok {
		panic("the first argument to vector-ref must be a vector")
	}
	return v[vectorIndex("vector-ref", v, args[1])]
}

func VectorSet(args Vector) Value {
	if len(args) != 3 {
		panic("vector-set! expects 3 arguments")
	}
	v, ok := args[0].(Vector)
	if !ok {
		panic("the first argument to vector-set! must be a vector")
	}
	v[vectorIndex("vector-set!", v, args[1])] = args[2]
	return nil
}
