package query // import "blitznote.com/src/oss.signature/canonical.query"

// Value is the closed set of shapes this package encodes.
//
// A nil Value stands for an absent ("none") parameter and contributes
// nothing to the canonical form, not even a separator.
// Concrete shapes are String, Bool, Int, Uint, Float, Marker, Seq,
// Object and Map; no other type can satisfy the interface.
type Value interface {
	// The shape's name, as it appears in error messages.
	shape() string
}

// None is the absent value, spelled out.
//
// Object{"marker": None} and omitting the key entirely are equivalent.
var None Value

// String is a text parameter value. Must hold valid UTF-8.
type String string

// Bool renders as the unquoted words "true" or "false".
type Bool bool

// Int renders in decimal.
type Int int64

// Uint renders in decimal.
type Uint uint64

// Float renders in the shortest form that round-trips a float64.
type Float float64

// Marker is a parameter whose bare presence selects an operation variant;
// it renders as its key alone, with no '=' and no value.
//
// A Marker is legal only as the direct value of a top-level key.
// Encountered anywhere deeper it is an error, so no nesting context can
// accept one by accident.
type Marker struct{}

// Seq is an ordered collection. Elements are addressed by 1-based
// decimal path segments.
type Seq []Value

// Object is a struct-like collection with literal text keys.
type Object map[string]Value

// Map is a collection whose keys are themselves values, rendered through
// the key encoder (EncodeKey) before use. Only scalar keys are legal.
type Map map[Value]Value

func (String) shape() string { return "string" }
func (Bool) shape() string   { return "bool" }
func (Int) shape() string    { return "int" }
func (Uint) shape() string   { return "uint" }
func (Float) shape() string  { return "float" }
func (Marker) shape() string { return "marker" }
func (Seq) shape() string    { return "sequence" }
func (Object) shape() string { return "object" }
func (Map) shape() string    { return "map" }
