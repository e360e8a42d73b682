// errors.go: runtime error values and front-end diagnostic rendering.
//
// Two unrelated error layers live here:
//
//  1. Runtime errors are *Values*, not Go errors: the VTError variant carries
//     an *ErrDetail, a structured record (kind plus named fields such as the
//     offending argument index and expected vs. actual type or count). The
//     message text is produced lazily by Message() at print time, never
//     eagerly with positional substitution.
//
//  2. Lex/parse failures are ordinary Go errors (*LexError, *ParseError) with
//     1-based line/col. WrapErrorWithSource recognizes them and returns a new
//     error whose message is a caret-annotated snippet:
//
//     PARSE ERROR at 1:9: expected ')'
//
//        1 | (+ 1 (2 3
//          |         ^
//
//     Anything else is returned unchanged.
package lispy

import (
	"fmt"
	"strings"
)

// ErrKind classifies a runtime error value.
type ErrKind int

const (
	ErrInvalidNumber ErrKind = iota
	ErrUnboundSymbol
	ErrTypeMismatch
	ErrArityMismatch
	ErrDivisionByZero
	ErrEmptyListAccess
	ErrNotAFunction
	ErrUnknownFunction
)

// ErrDetail is the payload of a VTError Value. Only the fields relevant to
// Kind are set; Message formats them on demand.
type ErrDetail struct {
	Kind  ErrKind
	Fn    string // function being applied (type/arity/empty-list errors)
	Name  string // symbol or function name (unbound/unknown)
	Index int    // offending argument index (type errors)
	Want  string // expected type name(s)
	Got   string // actual type name
	WantN int    // expected argument count
	GotN  int    // actual argument count
}

// Message renders the user-facing text for the detail. The VTError rendering
// rule in printer.go prefixes this with "Error: ".
func (d *ErrDetail) Message() string {
	if d == nil {
		return "unknown error"
	}
	switch d.Kind {
	case ErrInvalidNumber:
		return "Invalid number"
	case ErrUnboundSymbol:
		return fmt.Sprintf("unbound symbol '%s'!", d.Name)
	case ErrTypeMismatch:
		return fmt.Sprintf("Function '%s' passed incorrect type for argument %d. Got %s, Expected %s",
			d.Fn, d.Index, d.Got, d.Want)
	case ErrArityMismatch:
		return fmt.Sprintf("Function '%s' passed incorrect number of arguments. Got %d, Expected %d",
			d.Fn, d.GotN, d.WantN)
	case ErrDivisionByZero:
		return "Division by zero!"
	case ErrEmptyListAccess:
		return fmt.Sprintf("Function '%s' passed {}!", d.Fn)
	case ErrNotAFunction:
		return "First element is not a function"
	case ErrUnknownFunction:
		return fmt.Sprintf("Unknown function '%s'!", d.Name)
	default:
		return "unknown error"
	}
}

// Constructors used by the reader, environment, evaluator and builtins.

func errInvalidNumber() Value {
	return ErrVal(&ErrDetail{Kind: ErrInvalidNumber})
}

func errUnbound(name string) Value {
	return ErrVal(&ErrDetail{Kind: ErrUnboundSymbol, Name: name})
}

func typeErr(fn string, index int, got ValueTag, want string) Value {
	return ErrVal(&ErrDetail{Kind: ErrTypeMismatch, Fn: fn, Index: index, Got: got.TypeName(), Want: want})
}

func arityErr(fn string, got, want int) Value {
	return ErrVal(&ErrDetail{Kind: ErrArityMismatch, Fn: fn, GotN: got, WantN: want})
}

func errDivZero() Value {
	return ErrVal(&ErrDetail{Kind: ErrDivisionByZero})
}

func emptyErr(fn string) Value {
	return ErrVal(&ErrDetail{Kind: ErrEmptyListAccess, Fn: fn})
}

func errNotFunction() Value {
	return ErrVal(&ErrDetail{Kind: ErrNotAFunction})
}

func errUnknownFunction(name string) Value {
	return ErrVal(&ErrDetail{Kind: ErrUnknownFunction, Name: name})
}

/* ===========================
   front-end diagnostics
   =========================== */

// LexError reports a scanning failure. Line and Col are 1-based.
type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// ParseError reports a grammar failure. Line and Col are 1-based.
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// WrapErrorWithSource returns an error augmented with a caret-annotated
// snippet of src when err is a *LexError or *ParseError; any other error is
// returned unchanged. Output is plain text, suitable for logs and terminals.
func WrapErrorWithSource(err error, src string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", prettySnippet(src, "LEXICAL ERROR", e.Line, e.Col, e.Msg))
	case *ParseError:
		return fmt.Errorf("%s", prettySnippet(src, "PARSE ERROR", e.Line, e.Col, e.Msg))
	default:
		return err
	}
}

// prettySnippet renders the failing line with a caret under the 1-based
// column, with one line of context on either side. Out-of-range coordinates
// are clamped so rendering never panics.
func prettySnippet(src, header string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	cur := lines[line-1]
	if col < 1 {
		col = 1
	}
	if col > len(cur)+1 {
		col = len(cur) + 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	last := line
	if line < len(lines) {
		last = line + 1
	}
	width := len(fmt.Sprintf("%d", last))
	if line > 1 {
		fmt.Fprintf(&b, "  %*d | %s\n", width, line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "  %*d | %s\n", width, line, cur)
	fmt.Fprintf(&b, "  %*s | %s^\n", width, "", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "  %*d | %s\n", width, line+1, lines[line])
	}
	return strings.TrimRight(b.String(), "\n")
}
