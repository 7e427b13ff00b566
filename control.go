package prelude

// Begin yields the last of its arguments. By the time a procedure call
// reaches it every argument has been evaluated, so as a procedure begin is
// purely a selector.
func Begin(args Vector) Value {
	if len(args) == 0 {
		return nil
	}
	return args[len(args)-1]
}

// Force invokes a promise, a zero-argument procedure. The result is not
// memoized: forcing the same promise again re-invokes it.
func Force(args Vector) Value {
	if len(args) != 1 {
		panic("force expects one argument")
	}
	promise, ok := args[0].(Procedure)
	if !ok {
		panic("the argument to force must be a promise")
	}
	return promise.Apply(nil)
}

// BooleanNot negates its argument. Given a procedure it instead returns a
// new procedure computing the negation of the original's result.
func BooleanNot(args Vector) Value {
	if len(args) != 1 {
		panic("not expects 1 argument")
	}
	if proc, ok := args[0].(Procedure); ok {
		return ProcedureFunc(func(inner Vector) Value {
			return Boolean(!Truthy(proc.Apply(inner)))
		})
	}
	test, ok := args[0].(Boolean)
	return Boolean(ok && !bool(test))
}
