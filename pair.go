package prelude

// Primitive pair operations. The empty list is the nil Value; every
// procedure here panics on arity or type mismatches and the panic propagates
// to the host evaluator unchanged.

func PairPred(args Vector) Value {
	if len(args) != 1 {
		return Boolean(false)
	}
	_, ok := args[0].(*Pair)
	return Boolean(ok)
}

func PairCons(args Vector) Value {
	if len(args) != 2 {
		panic("cons expects two arguments")
	}
	return Cons(args[0], args[1])
}

func PairCar(args Vector) Value {
	if len(args) != 1 {
		panic("car expects one argument")
	}
	p, ok := args[0].(*Pair)
	if !ok {
		panic("car expects a pair")
	}
	return p.car
}

func PairCdr(args Vector) Value {
	if len(args) != 1 {
		panic("cdr expects one argument")
	}
	p, ok := args[0].(*Pair)
	if !ok {
		panic("cdr expects a pair")
	}
	return p.cdr
}

func PairSetCar(args Vector) Value {
	if len(args) != 2 {
		panic("set-car! expects two arguments")
	}
	p, ok := args[0].(*Pair)
	if !ok {
		panic("set-car! expects a pair")
	}
	p.car = args[1]
	return nil
}

func PairSetCdr(args Vector) Value {
	if len(args) != 2 {
		panic("set-cdr! expects two arguments")
	}
	p, ok := args[0].(*Pair)
	if !ok {
		panic("set-cdr! expects a pair")
	}
	p.cdr = args[1]
	return nil
}

func NullPred(args Vector) Value {
	if len(args) != 1 {
		return Boolean(false)
	}
	return Boolean(args[0] == nil)
}

func ListConstructor(args Vector) Value {
	return args.ToList()
}
