package models

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the lowercase name of the kind, e.g. "object".
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a parsed JSON value. Exactly one concrete type exists per
// JSON variant: Null, Bool, Number, String, Array, Object.
// Arrays and objects exclusively own their children, so a Value is
// always a tree with no sharing and no cycles.
type Value interface {
	Kind() Kind
}

// Null represents the JSON literal null.
type Null struct{}

// Bool represents a JSON boolean.
type Bool bool

// Number represents a JSON number as an IEEE-754 double.
// The grammar cannot produce NaN or an infinity, so it is always finite.
type Number float64

// String represents a JSON string after escape decoding.
type String string

// Array represents a JSON array. Element order is the document order.
type Array []Value

// Object represents a JSON object. A duplicate key overwrites the
// earlier value; iteration order is unspecified.
type Object map[string]Value

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }
func (Object) Kind() Kind { return KindObject }
