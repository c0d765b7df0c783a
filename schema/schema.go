// Package schema implements the resource/data-source schema model (spec
// component C3): the Terraform-facing attribute tree that both derives a
// tftype.Type for wire encoding and drives the plugin protocol's schema
// negotiation RPCs.
package schema

import "github.com/terustform-go/terustform/tftype"

// Mode classifies how an attribute's value is supplied, mirroring
// Terraform's required/optional/computed matrix.
type Mode int

const (
	Required Mode = iota
	Optional
	OptionalComputed
	Computed
)

// IsRequired reports whether a practitioner must set this attribute.
func (m Mode) IsRequired() bool { return m == Required }

// IsOptional reports whether a practitioner may, but need not, set this
// attribute: true for both Optional and OptionalComputed.
func (m Mode) IsOptional() bool { return m == Optional || m == OptionalComputed }

// IsComputed reports whether the provider may supply this attribute's
// value: true for both OptionalComputed and Computed.
func (m Mode) IsComputed() bool { return m == OptionalComputed || m == Computed }

// AttrKind discriminates the variant an Attribute holds.
type AttrKind int

const (
	AttrString AttrKind = iota
	AttrInt64
	AttrObject
)

// Attribute describes a single schema field. It is a closed sum type over
// AttrString, AttrInt64 and AttrObject; Attrs is only meaningful for
// AttrObject.
type Attribute struct {
	Kind        AttrKind
	Description string
	Mode        Mode
	Sensitive   bool
	Attrs       map[string]Attribute // only set for AttrObject
}

// String builds a string-typed attribute.
func String(description string, mode Mode, sensitive bool) Attribute {
	return Attribute{Kind: AttrString, Description: description, Mode: mode, Sensitive: sensitive}
}

// Int64 builds an int64-typed (wire: number) attribute.
func Int64(description string, mode Mode, sensitive bool) Attribute {
	return Attribute{Kind: AttrInt64, Description: description, Mode: mode, Sensitive: sensitive}
}

// Object builds a nested-object attribute.
func Object(description string, mode Mode, sensitive bool, attrs map[string]Attribute) Attribute {
	cp := make(map[string]Attribute, len(attrs))
	for k, v := range attrs {
		cp[k] = v
	}
	return Attribute{Kind: AttrObject, Description: description, Mode: mode, Sensitive: sensitive, Attrs: cp}
}

// Type derives the tftype.Type this attribute occupies on the wire.
func (a Attribute) Type() tftype.Type {
	switch a.Kind {
	case AttrInt64:
		return tftype.NumberType()
	case AttrObject:
		return attrsType(a.Attrs)
	default:
		return tftype.StringType()
	}
}

// Schema is the top-level attribute tree for a resource or data source.
type Schema struct {
	Description string
	Attributes  map[string]Attribute
}

// DerivedType builds the Object tftype.Type this schema's attributes occupy,
// with the optionals list derived from each attribute's Mode (spec §3.3).
func (s Schema) DerivedType() tftype.Type {
	return attrsType(s.Attributes)
}

func attrsType(attrs map[string]Attribute) tftype.Type {
	attrTypes := make(map[string]tftype.Type, len(attrs))
	var optionals []string
	for name, attr := range attrs {
		attrTypes[name] = attr.Type()
		if attr.Mode.IsOptional() {
			optionals = append(optionals, name)
		}
	}
	return tftype.ObjectOf(attrTypes, optionals)
}
