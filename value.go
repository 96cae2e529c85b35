// value.go: the runtime value model.
//
// Grounded on daios-ai-msg/interpreter.go's ValueTag/Value/Fun/constructor
// pattern, narrowed to the five variants spec.md §3 defines: Integer,
// Double, String, Array, Function. Arrays hold shared, independently
// mutable cells (*Value) so that in-place element assignment is visible
// through every alias, per spec.md §5 and §9 ("Shared cells inside
// arrays").
package rill

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueKind enumerates the five runtime value variants.
type ValueKind int

const (
	KindInt ValueKind = iota
	KindDouble
	KindString
	KindArray
	KindFunc
)

// Value is a tagged union over the five runtime kinds. Data holds the
// Go-native payload appropriate to Kind:
//
//	KindInt    -> int64
//	KindDouble -> float64
//	KindString -> string
//	KindArray  -> *ArrayValue
//	KindFunc   -> *FuncValue
type Value struct {
	Kind ValueKind
	Data any
}

// IntVal, DoubleVal, StrVal, ArrVal, and FuncValOf construct a Value of the
// matching kind.
func IntVal(n int64) Value         { return Value{Kind: KindInt, Data: n} }
func DoubleVal(f float64) Value    { return Value{Kind: KindDouble, Data: f} }
func StrVal(s string) Value        { return Value{Kind: KindString, Data: s} }
func ArrVal(a *ArrayValue) Value   { return Value{Kind: KindArray, Data: a} }
func FuncValOf(f *FuncValue) Value { return Value{Kind: KindFunc, Data: f} }

func (v Value) AsInt() int64         { return v.Data.(int64) }
func (v Value) AsDouble() float64    { return v.Data.(float64) }
func (v Value) AsString() string     { return v.Data.(string) }
func (v Value) AsArray() *ArrayValue { return v.Data.(*ArrayValue) }
func (v Value) AsFunc() *FuncValue   { return v.Data.(*FuncValue) }

func (v Value) IsInt() bool     { return v.Kind == KindInt }
func (v Value) IsDouble() bool  { return v.Kind == KindDouble }
func (v Value) IsNumeric() bool { return v.Kind == KindInt || v.Kind == KindDouble }
func (v Value) IsString() bool  { return v.Kind == KindString }
func (v Value) IsArray() bool   { return v.Kind == KindArray }
func (v Value) IsFunc() bool    { return v.Kind == KindFunc }

// AsFloat64 widens an Int/Double value to float64; callers must have
// already checked IsNumeric.
func (v Value) AsFloat64() float64 {
	if v.Kind == KindInt {
		return float64(v.AsInt())
	}
	return v.AsDouble()
}

// ArrayValue is an ordered sequence of shared, independently mutable cells.
// Two Values sharing the same *ArrayValue (e.g. via closure capture) see
// each other's in-place element mutations; a slice always deep-copies into
// a fresh ArrayValue instead.
type ArrayValue struct {
	Cells []*Value
}

// NewArrayValue builds an ArrayValue owning a fresh cell per element.
func NewArrayValue(elems []Value) *ArrayValue {
	cells := make([]*Value, len(elems))
	for i := range elems {
		v := elems[i]
		cells[i] = &v
	}
	return &ArrayValue{Cells: cells}
}

func (a *ArrayValue) Len() int { return len(a.Cells) }

// Get returns a copy of the cell's current value (not the cell itself), per
// spec.md §4.5.4: "returns the cell contents (not a reference)".
func (a *ArrayValue) Get(i int) Value { return *a.Cells[i] }

// Clone deep-copies every cell into a fresh ArrayValue — used for `$` array
// concatenation, which must not alias the source. (Slicing copies the
// selected cells through NewArrayValue instead.)
func (a *ArrayValue) Clone() *ArrayValue {
	out := make([]*Value, len(a.Cells))
	for i, c := range a.Cells {
		v := *c
		out[i] = &v
	}
	return &ArrayValue{Cells: out}
}

// FuncValue is a first-class function: a parameter list, a captured body,
// a value-capture snapshot of the enclosing scope chain (scalar copy, array
// alias — spec.md §9), and, when produced by `$` composition, an ordered
// list of composed-function snapshots that supersede Body entirely.
type FuncValue struct {
	Params     []string
	Body       Node // Node for a lambda expression body, *Body for a block body
	Captures   map[string]Value
	Composed   []*FuncValue // non-empty iff this value came from f $ g
	ZeroReturn bool         // true when the declared return type is `zero`
}

// String renders v per spec.md §6 "Output format": int decimal, double via
// Go's general float formatting, string raw, array bracketed/recursive,
// function as the literal token "<function>".
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.AsInt(), 10)
	case KindDouble:
		return strconv.FormatFloat(v.AsDouble(), 'g', -1, 64)
	case KindString:
		return v.AsString()
	case KindArray:
		arr := v.AsArray()
		parts := make([]string, arr.Len())
		for i := 0; i < arr.Len(); i++ {
			parts[i] = arr.Get(i).String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindFunc:
		return "<function>"
	default:
		return fmt.Sprintf("<invalid value kind %d>", v.Kind)
	}
}

// Truthy implements spec.md §4.5.3: nonzero numbers and non-empty
// string/array are truthy; everything else (including functions) is falsy.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindInt:
		return v.AsInt() != 0
	case KindDouble:
		return v.AsDouble() != 0
	case KindString:
		return v.AsString() != ""
	case KindArray:
		return v.AsArray().Len() > 0
	default:
		return false
	}
}

// TypeName returns one of "int", "double", "string", "array", "func" — the
// vocabulary the `typeOf` builtin surfaces.
func (v Value) TypeName() string {
	switch v.Kind {
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindFunc:
		return "func"
	default:
		return "unknown"
	}
}

// Zero is the neutral value substituted by the fail-soft error posture for
// numeric contexts (spec.md §7).
var Zero = IntVal(0)
