package lispy

// ---- numeric built-ins --------------------------------------------------

// numericOp builds the left-fold reducer for one operator. The symbolic names
// and their aliases (add, sub, ...) share the same implementation.
func numericOp(op string) func(*Env, Value) Value {
	return func(_ *Env, args Value) Value {
		return foldNumeric(op, args)
	}
}

// foldNumeric pops the first operand and folds the rest into it pairwise.
// All operands are type-checked up front, left to right. Unary "-" negates.
// Division or modulo by zero aborts the fold, discarding the unconsumed
// operands along with the bundle.
func foldNumeric(op string, args Value) Value {
	for i, c := range args.Cells() {
		if c.Tag != VTNumber {
			return typeErr(op, i, c.Tag, "Number")
		}
	}
	if args.Len() == 0 {
		return arityErr(op, 0, 1)
	}

	x := args.Pop(0)
	acc := x.Data.(int64)

	if op == "-" && args.Len() == 0 {
		return Number(-acc)
	}

	for args.Len() > 0 {
		y := args.Pop(0).Data.(int64)
		switch op {
		case "+":
			acc += y
		case "-":
			acc -= y
		case "*":
			acc *= y
		case "/":
			if y == 0 {
				return errDivZero()
			}
			acc /= y
		case "%":
			if y == 0 {
				return errDivZero()
			}
			acc %= y
		}
	}
	return Number(acc)
}
