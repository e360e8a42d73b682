package lispy

import "testing"

func readSrc(t *testing.T, src string) Value {
	t.Helper()
	root, err := Parse(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return ReadNode(root)
}

func Test_Reader_reads_values(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1", "(1)"},
		{"-7", "(-7)"},
		{"foo", "(foo)"},
		{"(+ 1 2)", "((+ 1 2))"},
		{"{1 {2 3} x}", "({1 {2 3} x})"},
		{"()", "(())"},
		{"{}", "({})"},
	}
	for _, c := range cases {
		wantRender(t, readSrc(t, c.in), c.want)
	}
}

func Test_Reader_skips_brackets_and_anchors(t *testing.T) {
	// A hand-built tree with punctuation children, as an mpc AST has them.
	root := &Node{Tag: ">", Children: []*Node{
		{Tag: "regex"},
		{Tag: "expr|sexpr|>", Children: []*Node{
			{Tag: "char", Contents: "("},
			{Tag: "expr|symbol|regex", Contents: "head"},
			{Tag: "char", Contents: ")"},
		}},
		{Tag: "regex"},
	}}
	wantRender(t, ReadNode(root), "((head))")
}

func Test_Reader_invalid_number(t *testing.T) {
	// Out of int64 range: the leaf parses to an error value in place.
	v := readSrc(t, "99999999999999999999")
	if v.Len() != 1 {
		t.Fatalf("len = %d", v.Len())
	}
	d := wantErrKind(t, v.Cells()[0], ErrInvalidNumber)
	if d.Message() != "Invalid number" {
		t.Fatalf("message = %q", d.Message())
	}
}

func Test_Reader_unknown_container_tag_is_safe(t *testing.T) {
	// Malformed-but-structured input must never panic; unknown containers
	// degrade to an s-expression of their readable children.
	n := &Node{Tag: "mystery", Children: []*Node{
		{Tag: "expr|number|regex", Contents: "5"},
	}}
	wantRender(t, ReadNode(n), "(5)")
}
