// Package tftype implements the recursive structural type descriptors used
// to describe the shape of dynamic values on the wire (spec component C1).
//
// A Type is one of Bool, Number, String, Dynamic, List, Set, Map, Tuple or
// Object. The package's only externally interesting behaviour is
// ToCanonicalJSON, which must byte-for-byte match the JSON type descriptions
// the Terraform host expects.
package tftype

import "sort"

// Kind discriminates the variant a Type holds.
type Kind int

const (
	Bool Kind = iota
	Number
	String
	Dynamic
	List
	Set
	Map
	Tuple
	Object
)

// Type is an immutable structural type descriptor. The zero Type is not
// valid; build one with the constructors below.
type Type struct {
	kind      Kind
	elem      *Type
	elems     []Type
	attrs     map[string]Type
	optionals []string
}

var (
	boolType    = Type{kind: Bool}
	numberType  = Type{kind: Number}
	stringType  = Type{kind: String}
	dynamicType = Type{kind: Dynamic}
)

// BoolType is the scalar boolean type.
func BoolType() Type { return boolType }

// NumberType is the scalar 64-bit float number type.
func NumberType() Type { return numberType }

// StringType is the scalar UTF-8 string type.
func StringType() Type { return stringType }

// DynamicType stands for a value whose type is not known statically.
// Decoding a Dynamic-typed position is unimplemented, per spec §4.2.
func DynamicType() Type { return dynamicType }

// ListOf builds a List(elem) type.
func ListOf(elem Type) Type { return Type{kind: List, elem: &elem} }

// SetOf builds a Set(elem) type.
func SetOf(elem Type) Type { return Type{kind: Set, elem: &elem} }

// MapOf builds a Map(elem) type.
func MapOf(elem Type) Type { return Type{kind: Map, elem: &elem} }

// TupleOf builds a Tuple type. Element order and count are part of the type.
func TupleOf(elems ...Type) Type {
	cp := make([]Type, len(elems))
	copy(cp, elems)
	return Type{kind: Tuple, elems: cp}
}

// ObjectOf builds an Object type. Every name in optionals must also be a key
// of attrs; callers that violate this invariant will produce a Type whose
// canonical JSON is meaningless, but ObjectOf itself does not validate it
// (the invariant is the schema layer's responsibility — see schema.Schema).
func ObjectOf(attrs map[string]Type, optionals []string) Type {
	cp := make(map[string]Type, len(attrs))
	for k, v := range attrs {
		cp[k] = v
	}
	opt := make([]string, len(optionals))
	copy(opt, optionals)
	return Type{kind: Object, attrs: cp, optionals: opt}
}

// Kind reports which variant t is.
func (t Type) Kind() Kind { return t.kind }

// Elem returns the element type of a List, Set or Map. It panics for any
// other kind; callers are expected to switch on Kind first.
func (t Type) Elem() Type {
	if t.elem == nil {
		panic("tftype: Elem called on a type without an element")
	}
	return *t.elem
}

// Elems returns the positional element types of a Tuple.
func (t Type) Elems() []Type { return t.elems }

// Attrs returns the attribute types of an Object, keyed by name.
func (t Type) Attrs() map[string]Type { return t.attrs }

// Optionals returns the names of the Object attributes that are optional.
func (t Type) Optionals() []string { return t.optionals }

// IsOptional reports whether name is listed among an Object's optionals.
func (t Type) IsOptional(name string) bool {
	for _, o := range t.optionals {
		if o == name {
			return true
		}
	}
	return false
}

// sortedAttrNames returns the attribute names of an Object in lexicographic
// order, the order every deterministic encoding in this module relies on.
func sortedAttrNames(attrs map[string]Type) []string {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
