package lispy

import (
	"strconv"
	"strings"
)

/* ---------- canonical value rendering ---------- */

// FormatValue renders v as a single line of text: numbers in decimal, symbols
// verbatim, errors as "Error: <message>", s-expressions wrapped in "()",
// q-expressions wrapped in "{}", elements space-separated, functions as an
// opaque marker. The host loop owns the trailing newline.
func FormatValue(v Value) string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

func writeValue(b *strings.Builder, v Value) {
	switch v.Tag {
	case VTNumber:
		b.WriteString(strconv.FormatInt(v.Data.(int64), 10))
	case VTError:
		b.WriteString("Error: ")
		b.WriteString(v.Data.(*ErrDetail).Message())
	case VTSymbol:
		b.WriteString(v.Data.(string))
	case VTFun:
		b.WriteString("<function>")
	case VTSExpr:
		writeSeq(b, v.Data.([]Value), '(', ')')
	case VTQExpr:
		writeSeq(b, v.Data.([]Value), '{', '}')
	default:
		b.WriteString("<unknown>")
	}
}

func writeSeq(b *strings.Builder, cells []Value, open, close byte) {
	b.WriteByte(open)
	for i := range cells {
		writeValue(b, cells[i])
		if i != len(cells)-1 {
			b.WriteByte(' ')
		}
	}
	b.WriteByte(close)
}
