package lispy

import "testing"

func Test_Printer_canonical_forms(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Number(42), "42"},
		{Number(-7), "-7"},
		{Symbol("head"), "head"},
		{Symbol("+"), "+"},
		{SExpr(), "()"},
		{QExpr(), "{}"},
		{SExpr(Symbol("+"), Number(1), Number(2)), "(+ 1 2)"},
		{QExpr(Number(1), QExpr(Number(2), Number(3))), "{1 {2 3}}"},
		{FunVal(&builtinFn{name: "head"}), "<function>"},
		{errDivZero(), "Error: Division by zero!"},
	}
	for _, c := range cases {
		if got := FormatValue(c.v); got != c.want {
			t.Fatalf("FormatValue = %q, want %q", got, c.want)
		}
	}
}

func Test_Printer_value_stringer(t *testing.T) {
	v := SExpr(Symbol("list"), Number(1))
	if v.String() != "(list 1)" {
		t.Fatalf("String() = %q", v.String())
	}
}

func Test_Printer_single_line(t *testing.T) {
	// Rendering is always one line, regardless of nesting.
	v := SExpr(QExpr(SExpr(Number(1)), QExpr()), Symbol("x"))
	got := FormatValue(v)
	for _, r := range got {
		if r == '\n' {
			t.Fatalf("rendering contains newline: %q", got)
		}
	}
	if got != "({(1) {}} x)" {
		t.Fatalf("render = %q", got)
	}
}
