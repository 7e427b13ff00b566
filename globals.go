package prelude

// Primitives returns the substrate bindings: the operations a host runtime
// must supply for the prelude to work, implemented here over the package's
// own value model.
func Primitives() map[Symbol]Value {
	return map[Symbol]Value{
		// equality predicates
		"eqv?":   ProcedureFunc(Eqv),
		"eq?":    ProcedureFunc(Eq),
		"equal?": ProcedureFunc(Equal),

		// numerics
		"number?":          ProcedureFunc(NumberPred),
		"complex?":         ProcedureFunc(ComplexPred),
		"exact?":           ProcedureFunc(ExactPred),
		"<":                ProcedureFunc(NumberLt),
		">":                ProcedureFunc(NumberGt),
		"<=":               ProcedureFunc(NumberLte),
		">=":               ProcedureFunc(NumberGte),
		"+":                ProcedureFunc(NumberAdd),
		"*":                ProcedureFunc(NumberMul),
		"-":                ProcedureFunc(NumberSub),
		"/":                ProcedureFunc(NumberDiv),
		"floor":            ProcedureFunc(NumberFloor),
		"ceiling":          ProcedureFunc(NumberCeiling),
		"round":            ProcedureFunc(NumberRound),
		"truncate":         ProcedureFunc(NumberTruncate),
		"sqrt":             ProcedureFunc(NumberSqrt),
		"sin":              ProcedureFunc(NumberSin),
		"cos":              ProcedureFunc(NumberCos),
		"atan":             ProcedureFunc(NumberAtan),
		"make-rectangular": ProcedureFunc(MakeRectangular),
		"real-part":        ProcedureFunc(RealPart),
		"imag-part":        ProcedureFunc(ImagPart),

		// pairs
		"pair?":    ProcedureFunc(PairPred),
		"cons":     ProcedureFunc(PairCons),
		"car":      ProcedureFunc(PairCar),
		"cdr":      ProcedureFunc(PairCdr),
		"set-car!": ProcedureFunc(PairSetCar),
		"set-cdr!": ProcedureFunc(PairSetCdr),
		"null?":    ProcedureFunc(NullPred),
		"list":     ProcedureFunc(ListConstructor),

		// vectors
		"vector?":       ProcedureFunc(VectorPred),
		"make-vector":   ProcedureFunc(MakeVector),
		"vector-length": ProcedureFunc(VectorLength),
		"vector-ref":    ProcedureFunc(VectorRef),
		"vector-set!":   ProcedureFunc(VectorSet),

		// procedures and control
		"procedure?":                     ProcedureFunc(ProcedurePred),
		"apply":                          ProcedureFunc(ProcedureApply),
		"call-with-current-continuation": ProcedureFunc(CallCC),

		// output
		"display": ProcedureFunc(Display),
		"repr":    ProcedureFunc(Repr),
	}
}

// Prelude returns the derived procedures: everything built on top of the
// primitives.
func Prelude() map[Symbol]Value {
	return map[Symbol]Value{
		// control utilities
		"begin":   ProcedureFunc(Begin),
		"force":   ProcedureFunc(Force),
		"not":     ProcedureFunc(BooleanNot),
		"call/cc": ProcedureFunc(CallCC),

		// numeric derived operations
		"=":          ProcedureFunc(NumberEq),
		"zero?":      ProcedureFunc(ZeroPred),
		"positive?":  ProcedureFunc(PositivePred),
		"negative?":  ProcedureFunc(NegativePred),
		"odd?":       ProcedureFunc(OddPred),
		"even?":      ProcedureFunc(EvenPred),
		"max":        ProcedureFunc(NumberMax),
		"min":        ProcedureFunc(NumberMin),
		"quotient":   ProcedureFunc(NumberQuotient),
		"remainder":  ProcedureFunc(NumberRemainder),
		"modulo":     ProcedureFunc(NumberModulo),
		"gcd":        ProcedureFunc(NumberGcd),
		"lcm":        ProcedureFunc(NumberLcm),
		"factorial":  ProcedureFunc(Factorial),
		"make-polar": ProcedureFunc(MakePolar),
		"magnitude":  ProcedureFunc(Magnitude),
		"angle":      ProcedureFunc(Angle),

		// list engine
		"list?":     ProcedureFunc(ListPred),
		"length":    ProcedureFunc(ListLength),
		"append":    ProcedureFunc(ListAppend),
		"reverse":   ProcedureFunc(ListReverse),
		"list-tail": ProcedureFunc(ListTail),
		"list-ref":  ProcedureFunc(ListRef),
		"memq":      ListMemq,
		"memv":      ListMemv,
		"member":    ListMember,
		"assq":      ListAssq,
		"assv":      ListAssv,
		"assoc":     ListAssoc,
		"map":       ProcedureFunc(ProcedureMap),
		"for-each":  ProcedureFunc(ProcedureForEach),
		"foldr":     ProcedureFunc(FoldRight),

		// vector conversions
		"list->vector": ProcedureFunc(ListToVector),
		"vector->list": ProcedureFunc(VectorToList),
		"vector-fill!": ProcedureFunc(VectorFill),
	}
}

// Env is the registry a host evaluator merges into its global scope.
type Env struct {
	env map[Symbol]Value
}

// NewEnv returns an environment holding the primitives and the prelude.
func NewEnv() *Env {
	env := Primitives()
	for name, proc := range Prelude() {
		env[name] = proc
	}
	return &Env{env: env}
}

// Lookup resolves a binding by name.
func (e *Env) Lookup(name Symbol) (Value, bool) {
	v, ok := e.env[name]
	return v, ok
}

// Define adds or replaces a binding.
func (e *Env) Define(name Symbol, v Value) {
	e.env[name] = v
}

// Names returns the set of bound names.
func (e *Env) Names() []Symbol {
	names := make([]Symbol, 0, len(e.env))
	for name := range e.env {
		names = append(names, name)
	}
	return names
}
