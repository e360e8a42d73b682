// parser.go — recursive-descent parser producing the generic parse tree the
// Reader consumes.
//
// The tree deliberately mirrors the shape of an mpc AST: every node carries a
// pipe-joined tag (checked downstream via substring tests), the raw matched
// text for leaves, and an ordered child list that still contains the bracket
// tokens and the ^/$ anchor markers ("regex" nodes). The Reader is the one
// that skips punctuation; the parser reports everything it saw.
//
// Grammar:
//
//	number : -?[0-9]+
//	symbol : [a-zA-Z0-9_+\-*/\\=<>!&%]+
//	sexpr  : '(' expr* ')'
//	qexpr  : '{' expr* '}'
//	expr   : number | symbol | sexpr | qexpr
//	lispy  : ^ expr* $
package lispy

// Node is one parse-tree node. Tag is a pipe-joined rule path ("expr|number|regex",
// "expr|sexpr|>", ...); the root is tagged ">". Contents holds the raw matched
// text for leaf nodes and bracket tokens, and is empty for containers and the
// anchor markers.
type Node struct {
	Tag      string
	Contents string
	Children []*Node
}

type parser struct {
	toks []Token
	pos  int
}

// Parse lexes and parses src into a tree rooted at ">". The root's children
// are the anchor markers and the top-level expressions in order.
func Parse(src string) (*Node, error) {
	toks, err := Lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	root := &Node{Tag: ">"}
	root.Children = append(root.Children, &Node{Tag: "regex"})
	for p.peek().Type != EOF {
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		root.Children = append(root.Children, n)
	}
	root.Children = append(root.Children, &Node{Tag: "regex"})
	return root, nil
}

func (p *parser) peek() Token { return p.toks[p.pos] }

func (p *parser) next() Token {
	t := p.toks[p.pos]
	if t.Type != EOF {
		p.pos++
	}
	return t
}

func (p *parser) parseExpr() (*Node, error) {
	t := p.peek()
	switch t.Type {
	case NUMBER:
		p.next()
		return &Node{Tag: "expr|number|regex", Contents: t.Lexeme}, nil
	case SYMBOL:
		p.next()
		return &Node{Tag: "expr|symbol|regex", Contents: t.Lexeme}, nil
	case LROUND:
		return p.parseList("expr|sexpr|>", RROUND)
	case LCURLY:
		return p.parseList("expr|qexpr|>", RCURLY)
	case RROUND, RCURLY:
		return nil, &ParseError{Line: t.Line, Col: t.Col, Msg: "unexpected '" + t.Lexeme + "'"}
	default:
		return nil, &ParseError{Line: t.Line, Col: t.Col, Msg: "unexpected end of input"}
	}
}

// parseList consumes an opening bracket (already peeked by the caller),
// expressions up to the matching close bracket, and the close bracket itself.
// The bracket tokens are kept as "char" children so the tree matches the mpc
// shape end to end.
func (p *parser) parseList(tag string, close TokenType) (*Node, error) {
	open := p.next()
	n := &Node{Tag: tag}
	n.Children = append(n.Children, &Node{Tag: "char", Contents: open.Lexeme})
	for {
		t := p.peek()
		if t.Type == close {
			p.next()
			n.Children = append(n.Children, &Node{Tag: "char", Contents: t.Lexeme})
			return n, nil
		}
		if t.Type == EOF {
			want := ")"
			if close == RCURLY {
				want = "}"
			}
			return nil, &ParseError{Line: t.Line, Col: t.Col, Msg: "expected '" + want + "'"}
		}
		c, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, c)
	}
}
