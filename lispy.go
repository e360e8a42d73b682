// Package lispy implements a small Polish-notation lisp: a tagged value
// model, a flat global environment, a recursive evaluator and a fixed library
// of builtins, plus the lexer/parser front end and canonical printer around
// them.
//
// The engine is strictly synchronous and single-threaded. Runtime failures
// are first-class Error values that propagate through evaluation; only the
// front end (lexing/parsing) reports Go errors.
package lispy

// Version is the interpreter version reported by the REPL.
const Version = "0.0.3"

// EvalSource parses, reads and evaluates src in e, returning the resulting
// Value. Lex and parse failures come back as a Go error (wrap with
// WrapErrorWithSource for caret snippets); every runtime failure is an Error
// value in the ordinary result position.
func EvalSource(e *Env, src string) (Value, error) {
	root, err := Parse(src)
	if err != nil {
		return SExpr(), err
	}
	return Eval(e, ReadNode(root)), nil
}
