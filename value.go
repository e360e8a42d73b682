package lispy

// ValueTag enumerates the runtime kinds a Value may hold.
// The tag determines which Go type Value.Data carries (see Value docs).
type ValueTag int

const (
	VTNumber ValueTag = iota // int64
	VTError                  // *ErrDetail
	VTSymbol                 // string
	VTFun                    // Callable
	VTSExpr                  // []Value (evaluated as function application)
	VTQExpr                  // []Value (opaque quoted data)
)

// TypeName returns the user-facing name of the tag, as used in diagnostics.
func (t ValueTag) TypeName() string {
	switch t {
	case VTNumber:
		return "Number"
	case VTError:
		return "Error"
	case VTSymbol:
		return "Symbol"
	case VTFun:
		return "Function"
	case VTSExpr:
		return "S-Expression"
	case VTQExpr:
		return "Q-Expression"
	default:
		return "Unknown"
	}
}

// Value is the universal runtime carrier: a closed tagged sum over the six
// lisp value kinds.
//
// Fields:
//   - Tag  — discriminant indicating which case is active.
//   - Data — Go value appropriate for Tag: int64 (VTNumber), *ErrDetail
//     (VTError), string (VTSymbol), Callable (VTFun), []Value (VTSExpr/VTQExpr).
//
// Ownership discipline: every Value is owned by exactly one parent (a list
// cell, an environment slot, or the evaluator's working variable). The
// structure is a strict tree. A value crossing an ownership boundary it does
// not already own (environment insert, list construction from a shared source)
// must go through Copy first; the evaluator and all builtins consume the
// values handed to them and must never be given an aliased tree.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Primitive constructors.
func Number(n int64) Value      { return Value{Tag: VTNumber, Data: n} }
func Symbol(name string) Value  { return Value{Tag: VTSymbol, Data: name} }
func FunVal(c Callable) Value   { return Value{Tag: VTFun, Data: c} }
func ErrVal(d *ErrDetail) Value { return Value{Tag: VTError, Data: d} }

// SExpr constructs an s-expression owning the given cells.
func SExpr(cells ...Value) Value {
	if cells == nil {
		cells = []Value{}
	}
	return Value{Tag: VTSExpr, Data: cells}
}

// QExpr constructs a q-expression owning the given cells.
func QExpr(cells ...Value) Value {
	if cells == nil {
		cells = []Value{}
	}
	return Value{Tag: VTQExpr, Data: cells}
}

// Cells returns the child sequence of a list-shaped value. Callers must treat
// the slice as owned by v.
func (v Value) Cells() []Value { return v.Data.([]Value) }

// Len returns the child count of a list-shaped value.
func (v Value) Len() int { return len(v.Data.([]Value)) }

// Copy deep-clones v. Number and Symbol payloads are copied by value, error
// details are duplicated, lists are cloned cell by cell. Function values share
// their Callable: builtins are opaque and immutable, so the shared pointer is
// never a mutation hazard (the same way the original shares its native
// function pointers).
func (v Value) Copy() Value {
	switch v.Tag {
	case VTSExpr, VTQExpr:
		src := v.Data.([]Value)
		cells := make([]Value, len(src))
		for i := range src {
			cells[i] = src[i].Copy()
		}
		return Value{Tag: v.Tag, Data: cells}
	case VTError:
		d := *v.Data.(*ErrDetail)
		return Value{Tag: VTError, Data: &d}
	default:
		return v
	}
}

// Add appends x to v's cells, transferring ownership of x into v.
func (v *Value) Add(x Value) {
	v.Data = append(v.Data.([]Value), x)
}

// Pop removes and returns cell i, keeping the remaining cells in order.
// Ownership of the removed cell transfers to the caller; v keeps the rest.
func (v *Value) Pop(i int) Value {
	cells := v.Data.([]Value)
	x := cells[i]
	cells = append(cells[:i], cells[i+1:]...)
	v.Data = cells
	return x
}

// Take removes and returns cell i, consuming v and all its other cells.
func (v *Value) Take(i int) Value {
	return v.Pop(i)
}

// Join moves every cell of y into v, consuming y.
func (v *Value) Join(y Value) {
	v.Data = append(v.Data.([]Value), y.Data.([]Value)...)
}

// String renders v in canonical form (see printer.go).
func (v Value) String() string { return FormatValue(v) }
