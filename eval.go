package lispy

// Eval reduces v to a final Value against the environment e. It consumes v:
// ownership transfers in, and a freshly owned result transfers out. Symbols
// resolve through e (as copies), s-expressions reduce, and every other
// variant is self-evaluating.
//
// Evaluation recurses on the host call stack, so recursion depth equals the
// nesting depth of the input. The grammar puts no bound on nesting; deeply
// pathological input can exhaust the stack. That is a documented limit of the
// engine, not a bug.
func Eval(e *Env, v Value) Value {
	switch v.Tag {
	case VTSymbol:
		return e.Get(v.Data.(string))
	case VTSExpr:
		return evalSExpr(e, v)
	default:
		return v
	}
}

// evalSExpr performs one reduction step:
//
//  1. every child is evaluated in place, left to right;
//  2. the first Error among the results collapses the whole expression,
//     discarding its siblings;
//  3. zero children: the empty s-expression is its own result;
//  4. one child: parenthesization is transparent, the child is the result;
//  5. otherwise the first child must be a Function, which is invoked with the
//     rest of the bundle as its owned argument list.
func evalSExpr(e *Env, v Value) Value {
	cells := v.Data.([]Value)
	for i := range cells {
		cells[i] = Eval(e, cells[i])
	}

	for i := range cells {
		if cells[i].Tag == VTError {
			return v.Take(i)
		}
	}

	if len(cells) == 0 {
		return v
	}
	if len(cells) == 1 {
		return v.Take(0)
	}

	f := v.Pop(0)
	if f.Tag != VTFun {
		return errNotFunction()
	}
	return f.Data.(Callable).Invoke(e, v)
}
