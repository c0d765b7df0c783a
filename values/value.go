// Package values implements the dynamic value model (spec component C2): a
// tagged value tree shaped by a tftype.Type, plus the exact MessagePack
// codec that must be byte-compatible with the Terraform host.
package values

import "github.com/terustform-go/terustform/diag"

// Kind discriminates the variant a ValueKind holds.
type Kind int

const (
	KString Kind = iota
	KNumber
	KBool
	KList
	KSet
	KMap
	KTuple
	KObject
)

// ValueKind is the leaf payload carried by a Known value (spec §3.2). It is
// an immutable sum type; construct one with the StringKind, NumberKind, ...
// constructors below and read it back with the accessors, switching on Kind first.
type ValueKind struct {
	kind Kind
	str  string
	num  float64
	b    bool
	seq  []Value
	obj  map[string]Value
}

// Value is the tagged union Unknown | Null | Known(ValueKind).
type Value = diag.BaseValue[ValueKind]

// Known wraps k as a known Value.
func Known(k ValueKind) Value { return diag.KnownValue(k) }

// Null is the Value in the Null state.
func Null() Value { return diag.NullValue[ValueKind]() }

// Unknown is the Value in the Unknown state.
func Unknown() Value { return diag.UnknownValue[ValueKind]() }

// StringKind builds a string-flavoured ValueKind.
func StringKind(s string) ValueKind { return ValueKind{kind: KString, str: s} }

// NumberKind builds a number-flavoured ValueKind.
func NumberKind(n float64) ValueKind { return ValueKind{kind: KNumber, num: n} }

// BoolKind builds a bool-flavoured ValueKind.
func BoolKind(b bool) ValueKind { return ValueKind{kind: KBool, b: b} }

// ListKind builds a list-flavoured ValueKind, elements in iteration order.
func ListKind(elems []Value) ValueKind { return ValueKind{kind: KList, seq: elems} }

// SetKind builds a set-flavoured ValueKind.
func SetKind(elems []Value) ValueKind { return ValueKind{kind: KSet, seq: elems} }

// TupleKind builds a tuple-flavoured ValueKind; element position matters.
func TupleKind(elems []Value) ValueKind { return ValueKind{kind: KTuple, seq: elems} }

// MapKind builds a map-flavoured ValueKind.
func MapKind(m map[string]Value) ValueKind { return ValueKind{kind: KMap, obj: m} }

// ObjectKind builds an object-flavoured ValueKind.
func ObjectKind(m map[string]Value) ValueKind { return ValueKind{kind: KObject, obj: m} }

// KnownString is shorthand for Known(StringKind(s)).
func KnownString(s string) Value { return Known(StringKind(s)) }

// KnownNumber is shorthand for Known(NumberKind(n)).
func KnownNumber(n float64) Value { return Known(NumberKind(n)) }

// KnownBool is shorthand for Known(BoolKind(b)).
func KnownBool(b bool) Value { return Known(BoolKind(b)) }

// KnownObject is shorthand for Known(ObjectKind(m)).
func KnownObject(m map[string]Value) Value { return Known(ObjectKind(m)) }

// KnownList is shorthand for Known(ListKind(elems)).
func KnownList(elems []Value) Value { return Known(ListKind(elems)) }

// Kind reports which variant k holds.
func (k ValueKind) Kind() Kind { return k.kind }

// StringValue returns the payload of a KString ValueKind.
func (k ValueKind) StringValue() string { return k.str }

// NumberValue returns the payload of a KNumber ValueKind.
func (k ValueKind) NumberValue() float64 { return k.num }

// BoolValue returns the payload of a KBool ValueKind.
func (k ValueKind) BoolValue() bool { return k.b }

// Elements returns the payload of a KList, KSet or KTuple ValueKind.
func (k ValueKind) Elements() []Value { return k.seq }

// Attrs returns the payload of a KMap or KObject ValueKind.
func (k ValueKind) Attrs() map[string]Value { return k.obj }

// DiagnosticTypeStr names k's kind the way diagnostics describe it.
func (k ValueKind) DiagnosticTypeStr() string {
	switch k.kind {
	case KString:
		return "string"
	case KNumber:
		return "number"
	case KBool:
		return "bool"
	case KList:
		return "list"
	case KSet:
		return "set"
	case KMap:
		return "map"
	case KTuple:
		return "tuple"
	case KObject:
		return "object"
	default:
		return "unknown"
	}
}
