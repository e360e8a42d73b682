package lispy

// ---- list built-ins -----------------------------------------------------
//
// Every builtin receives an owned argument bundle (an s-expression-shaped
// list) and must consume it entirely, on success and on every error path.
// Arity and type checks run first, left to right; the failing check returns a
// structured error naming the function, the offending index, and the expected
// vs. actual shape.

// list re-tags its argument bundle as a q-expression. No copy, no failure.
func builtinList(_ *Env, args Value) Value {
	args.Tag = VTQExpr
	return args
}

// head returns a q-expression holding only the first element of its argument.
func builtinHead(_ *Env, args Value) Value {
	if n := args.Len(); n != 1 {
		return arityErr("head", n, 1)
	}
	if tag := args.Cells()[0].Tag; tag != VTQExpr {
		return typeErr("head", 0, tag, "Q-Expression")
	}
	if args.Cells()[0].Len() == 0 {
		return emptyErr("head")
	}

	q := args.Take(0)
	q.Data = q.Data.([]Value)[:1]
	return q
}

// tail returns its argument with the first element removed.
func builtinTail(_ *Env, args Value) Value {
	if n := args.Len(); n != 1 {
		return arityErr("tail", n, 1)
	}
	if tag := args.Cells()[0].Tag; tag != VTQExpr {
		return typeErr("tail", 0, tag, "Q-Expression")
	}
	if args.Cells()[0].Len() == 0 {
		return emptyErr("tail")
	}

	q := args.Take(0)
	q.Data = q.Data.([]Value)[1:]
	return q
}

// eval re-tags a q-expression as an s-expression and reduces it.
func builtinEval(e *Env, args Value) Value {
	if n := args.Len(); n != 1 {
		return arityErr("eval", n, 1)
	}
	if tag := args.Cells()[0].Tag; tag != VTQExpr {
		return typeErr("eval", 0, tag, "Q-Expression")
	}

	x := args.Take(0)
	x.Tag = VTSExpr
	return Eval(e, x)
}

// join concatenates the elements of all its q-expression arguments in order.
func builtinJoin(_ *Env, args Value) Value {
	for i, c := range args.Cells() {
		if c.Tag != VTQExpr {
			return typeErr("join", i, c.Tag, "Q-Expression")
		}
	}
	if args.Len() == 0 {
		return arityErr("join", 0, 1)
	}

	x := args.Pop(0)
	for args.Len() > 0 {
		x.Join(args.Pop(0))
	}
	return x
}

// cons prepends a Number-or-QExpr head onto a q-expression tail. A q-expression
// head is prepended as a single element, not spliced.
func builtinCons(_ *Env, args Value) Value {
	if n := args.Len(); n != 2 {
		return arityErr("cons", n, 2)
	}
	if tag := args.Cells()[0].Tag; tag != VTQExpr && tag != VTNumber {
		return typeErr("cons", 0, tag, "Q-Expression or Number")
	}
	if tag := args.Cells()[1].Tag; tag != VTQExpr {
		return typeErr("cons", 1, tag, "Q-Expression")
	}

	x := QExpr()
	x.Add(args.Pop(0))
	x.Join(args.Pop(0))
	return x
}

// len returns the element count of a q-expression as a Number.
func builtinLen(_ *Env, args Value) Value {
	if n := args.Len(); n != 1 {
		return arityErr("len", n, 1)
	}
	if tag := args.Cells()[0].Tag; tag != VTQExpr {
		return typeErr("len", 0, tag, "Q-Expression")
	}

	return Number(int64(args.Cells()[0].Len()))
}

// init returns its argument with the last element removed.
func builtinInit(_ *Env, args Value) Value {
	if n := args.Len(); n != 1 {
		return arityErr("init", n, 1)
	}
	if tag := args.Cells()[0].Tag; tag != VTQExpr {
		return typeErr("init", 0, tag, "Q-Expression")
	}
	if args.Cells()[0].Len() == 0 {
		return emptyErr("init")
	}

	q := args.Take(0)
	cells := q.Data.([]Value)
	q.Data = cells[:len(cells)-1]
	return q
}
