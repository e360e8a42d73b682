package lispy

import "testing"

func Test_Eval_self_evaluating_forms(t *testing.T) {
	e := NewRuntimeEnv()

	wantRender(t, Eval(e, Number(5)), "5")
	wantRender(t, Eval(e, QExpr(Number(1), Symbol("x"))), "{1 x}")
	wantRender(t, Eval(e, SExpr()), "()")

	f := e.Get("+")
	if Eval(e, f).Tag != VTFun {
		t.Fatal("functions must evaluate to themselves")
	}

	// Errors are values and pass through evaluation unchanged.
	wantRender(t, Eval(e, errDivZero()), "Error: Division by zero!")
}

func Test_Eval_symbol_resolution(t *testing.T) {
	e := NewRuntimeEnv()
	e.Put("x", Number(7))

	wantRender(t, Eval(e, Symbol("x")), "7")

	v := Eval(e, Symbol("undefined_name"))
	wantRender(t, v, "Error: unbound symbol 'undefined_name'!")
}

func Test_Eval_singleton_unwrap(t *testing.T) {
	e := NewRuntimeEnv()
	// (((5))) reduces through the transparent parens to 5.
	wantRender(t, evalSrc(t, e, "(((5)))"), "5")
}

func Test_Eval_head_must_be_function(t *testing.T) {
	e := NewRuntimeEnv()
	v := evalSrc(t, e, "(1 2 3)")
	wantErrKind(t, v, ErrNotAFunction)
}

func Test_Eval_error_collapse_is_leftmost(t *testing.T) {
	e := NewRuntimeEnv()

	// Both operands fail; the left failure wins and the siblings are dropped.
	v := evalSrc(t, e, "(+ nope (/ 1 0))")
	d := wantErrKind(t, v, ErrUnboundSymbol)
	if d.Name != "nope" {
		t.Fatalf("leftmost error should win, got %s", d.Message())
	}

	// An error child suppresses the application entirely.
	v = evalSrc(t, e, "(undefined_fn 1 2)")
	wantErrKind(t, v, ErrUnboundSymbol)
}

func Test_Eval_nested_arithmetic(t *testing.T) {
	e := NewRuntimeEnv()
	wantRender(t, evalSrc(t, e, "(+ 1 (* 2 3) (- 10 5))"), "12")
}

func Test_Eval_lookup_yields_independent_copies(t *testing.T) {
	e := NewRuntimeEnv()
	evalSrc(t, e, "(def {xs} {1 2 3})")

	// Consume a lookup result destructively...
	v := evalSrc(t, e, "(head xs)")
	wantRender(t, v, "{1}")

	// ...the stored binding is unaffected.
	wantRender(t, evalSrc(t, e, "xs"), "{1 2 3}")
	wantRender(t, evalSrc(t, e, "(len xs)"), "3")
}
