package prelude

func ProcedurePred(args Vector) Value {
	if len(args) != 1 {
		return Boolean(false)
	}
	_, ok := args[0].(Procedure)
	return Boolean(ok)
}

func ProcedureApply(args Vector) Value {
	if len(args) < 1 {
		panic("apply expects at least one argument")
	}
	proc, ok := args[0].(Procedure)
	if !ok {
		panic("the first argument to apply must be a procedure")
	}

	var actuals Vector
	if len(args) > 1 {
		l := ListAppend(Vector{ListConstructor(args[1 : len(args)-1]), args[len(args)-1]})
		if l != nil {
			actuals = l.(*Pair).ToVector()
		}
	}

	return proc.Apply(actuals)
}

// continuationEscape carries a value through the panic that unwinds back to
// the CallCC frame that created it. The token distinguishes nested captures.
type continuationEscape struct {
	token  *int
	result Value
}

// CallCC implements call-with-current-continuation for escape use: the
// procedure receives a one-argument continuation that, when invoked, aborts
// the rest of the procedure's computation and makes CallCC return the
// continuation's argument. Invoking the continuation after CallCC has
// returned is not supported.
func CallCC(args Vector) Value {
	if len(args) != 1 {
		panic("call-with-current-continuation expects one argument")
	}
	proc, ok := args[0].(Procedure)
	if !ok {
		panic("the argument to call-with-current-continuation must be a procedure")
	}
	return captureEscape(proc)
}

func captureEscape(proc Procedure) (result Value) {
	token := new(int)

	defer func() {
		x := recover()
		if x == nil {
			return
		}
		esc, ok := x.(*continuationEscape)
		if !ok || esc.token != token {
			panic(x)
		}
		result = esc.result
	}()

	k := ProcedureFunc(func(args Vector) Value {
		var v Value
		if len(args) > 0 {
			v = args[0]
		}
		panic(&continuationEscape{token: token, result: v})
	})

	return proc.Apply(Vector{k})
}
