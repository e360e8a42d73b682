package lispy

import (
	"strings"
	"testing"
)

func Test_Errors_messages_format_lazily(t *testing.T) {
	cases := []struct {
		d    *ErrDetail
		want string
	}{
		{&ErrDetail{Kind: ErrInvalidNumber}, "Invalid number"},
		{&ErrDetail{Kind: ErrUnboundSymbol, Name: "foo"}, "unbound symbol 'foo'!"},
		{&ErrDetail{Kind: ErrTypeMismatch, Fn: "head", Index: 0, Got: "Number", Want: "Q-Expression"},
			"Function 'head' passed incorrect type for argument 0. Got Number, Expected Q-Expression"},
		{&ErrDetail{Kind: ErrArityMismatch, Fn: "cons", GotN: 3, WantN: 2},
			"Function 'cons' passed incorrect number of arguments. Got 3, Expected 2"},
		{&ErrDetail{Kind: ErrDivisionByZero}, "Division by zero!"},
		{&ErrDetail{Kind: ErrEmptyListAccess, Fn: "init"}, "Function 'init' passed {}!"},
		{&ErrDetail{Kind: ErrNotAFunction}, "First element is not a function"},
		{&ErrDetail{Kind: ErrUnknownFunction, Name: "frob"}, "Unknown function 'frob'!"},
	}
	for _, c := range cases {
		if got := c.d.Message(); got != c.want {
			t.Fatalf("Message() = %q, want %q", got, c.want)
		}
	}

	var nilDetail *ErrDetail
	if nilDetail.Message() != "unknown error" {
		t.Fatal("nil detail must not panic")
	}
}

func Test_Errors_render_with_prefix(t *testing.T) {
	wantRender(t, errUnbound("x"), "Error: unbound symbol 'x'!")
	wantRender(t, errInvalidNumber(), "Error: Invalid number")
}

func Test_Errors_caret_snippet(t *testing.T) {
	src := "(+ 1 (2 3"
	_, err := Parse(src)
	if err == nil {
		t.Fatal("want a parse error")
	}
	wrapped := WrapErrorWithSource(err, src)
	msg := wrapped.Error()

	if !strings.Contains(msg, "PARSE ERROR") {
		t.Fatalf("missing header: %q", msg)
	}
	if !strings.Contains(msg, src) {
		t.Fatalf("missing source line: %q", msg)
	}
	if !strings.Contains(msg, "^") {
		t.Fatalf("missing caret: %q", msg)
	}
}

func Test_Errors_wrap_passes_other_errors_through(t *testing.T) {
	src := "x"
	orig := &LexError{Line: 99, Col: 99, Msg: "out of range"}
	// Clamped coordinates must not panic on short sources.
	if WrapErrorWithSource(orig, src) == nil {
		t.Fatal("nil result")
	}

	plain := errPlain{}
	if WrapErrorWithSource(plain, src) != plain {
		t.Fatal("non-diagnostic errors must pass through unchanged")
	}
}

type errPlain struct{}

func (errPlain) Error() string { return "plain" }
