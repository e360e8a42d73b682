package lispy

import (
	"fmt"
	"strings"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota
	ILLEGAL

	// Punctuation
	LROUND // "("
	RROUND // ")"
	LCURLY // "{"
	RCURLY // "}"

	// Literals & identifiers
	NUMBER // -?[0-9]+
	SYMBOL // [a-zA-Z0-9_+\-*/\\=<>!&%]+
)

// Token is a lexical token with its raw text and 1-based position.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Col    int
}

// symbolChars are the non-alphanumeric runes allowed in a symbol. Together
// with letters, digits and '_' this matches the grammar's symbol class.
const symbolChars = `+-*/\=<>!&%`

func isSymbolRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		return true
	default:
		return strings.ContainsRune(symbolChars, r)
	}
}

// isNumberLexeme reports whether s matches -?[0-9]+ in full.
func isNumberLexeme(s string) bool {
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Lexer scans lispy source into tokens.
type Lexer struct {
	src    string
	cur    int
	line   int // 1-based
	col    int // 0-based column within line
	tokens []Token
}

// Lex scans src and returns its tokens, terminated by an EOF token. The only
// failure mode is a rune outside the grammar, reported as a *LexError.
func Lex(src string) ([]Token, error) {
	lx := &Lexer{src: src, line: 1}
	for lx.cur < len(lx.src) {
		c := lx.src[lx.cur]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			lx.advance(1)
		case c == '\n':
			lx.cur++
			lx.line++
			lx.col = 0
		case c == '(':
			lx.emit(LROUND, "(")
		case c == ')':
			lx.emit(RROUND, ")")
		case c == '{':
			lx.emit(LCURLY, "{")
		case c == '}':
			lx.emit(RCURLY, "}")
		default:
			if err := lx.scanWord(); err != nil {
				return nil, err
			}
		}
	}
	lx.tokens = append(lx.tokens, Token{Type: EOF, Line: lx.line, Col: lx.col + 1})
	return lx.tokens, nil
}

func (lx *Lexer) advance(n int) {
	lx.cur += n
	lx.col += n
}

func (lx *Lexer) emit(t TokenType, lexeme string) {
	lx.tokens = append(lx.tokens, Token{Type: t, Lexeme: lexeme, Line: lx.line, Col: lx.col + 1})
	lx.advance(len(lexeme))
}

// scanWord consumes a maximal run of symbol runes and classifies it: a run
// matching -?[0-9]+ is a NUMBER, everything else a SYMBOL. "123abc" therefore
// lexes as one symbol, not a number followed by a symbol.
func (lx *Lexer) scanWord() error {
	start := lx.cur
	startCol := lx.col + 1
	for lx.cur < len(lx.src) && isSymbolRune(rune(lx.src[lx.cur])) {
		lx.advance(1)
	}
	if lx.cur == start {
		return &LexError{
			Line: lx.line,
			Col:  startCol,
			Msg:  fmt.Sprintf("unexpected character %q", lx.src[lx.cur]),
		}
	}
	word := lx.src[start:lx.cur]
	tt := SYMBOL
	if isNumberLexeme(word) {
		tt = NUMBER
	}
	lx.tokens = append(lx.tokens, Token{Type: tt, Lexeme: word, Line: lx.line, Col: startCol})
	return nil
}
