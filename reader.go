package lispy

import (
	"strconv"
	"strings"
)

// ReadNode converts a parse tree into a Value tree.
//
// Tags are matched by substring so the reader works against any mpc-shaped
// tree, not just the parser in this package. Bracket tokens and the anchor
// markers are structural noise and are skipped rather than translated.
func ReadNode(n *Node) Value {
	if strings.Contains(n.Tag, "number") {
		return readNumber(n)
	}
	if strings.Contains(n.Tag, "symbol") {
		return Symbol(n.Contents)
	}

	// The root and any unrecognized container read as an s-expression;
	// only an explicit qexpr tag switches the list form.
	x := SExpr()
	if strings.Contains(n.Tag, "qexpr") {
		x = QExpr()
	}

	for _, c := range n.Children {
		switch c.Contents {
		case "(", ")", "{", "}":
			continue
		}
		if c.Tag == "regex" {
			continue
		}
		x.Add(ReadNode(c))
	}
	return x
}

// readNumber parses a number leaf as base-10 int64. Overflow and any other
// parse failure degrade to an Invalid number error value, never a panic.
func readNumber(n *Node) Value {
	x, err := strconv.ParseInt(n.Contents, 10, 64)
	if err != nil {
		return errInvalidNumber()
	}
	return Number(x)
}
