package lispy

// def binds names to values in the global environment: the first argument is
// a q-expression of symbols, the remaining arguments are the values, paired
// in order. All checks run before any binding happens, so a failed def leaves
// the environment untouched. def is the only builtin that mutates the
// environment.
func builtinDef(e *Env, args Value) Value {
	if args.Len() == 0 {
		return arityErr("def", 0, 1)
	}
	names := args.Cells()[0]
	if names.Tag != VTQExpr {
		return typeErr("def", 0, names.Tag, "Q-Expression")
	}
	for i, s := range names.Cells() {
		if s.Tag != VTSymbol {
			return typeErr("def", i, s.Tag, "Symbol")
		}
	}
	if got := args.Len() - 1; got != names.Len() {
		return arityErr("def", got, names.Len())
	}

	cells := args.Cells()
	for i, s := range names.Cells() {
		e.Put(s.Data.(string), cells[i+1])
	}
	return SExpr()
}
