// Package tfplugin6 defines the wire message and service shapes of the
// Terraform plugin protocol version 6 (spec component C7/C8's transport
// surface). The real protocol is generated from HashiCorp's tfplugin6.proto
// by protoc-gen-go; that generator, and the upstream generated package
// (hashicorp/terraform-plugin-go's internal tfplugin6), are not available
// here and are treated as external collaborators — the specification
// itself calls the service definitions "opaque to this core" (see doc.go).
// This package hand-authors the message field shapes the handler and
// transport packages need, keyed to the same RPC and field names, and a
// JSON-based wire codec stands in for protoc-gen-go's generated marshaling.
package tfplugin6

// Severity mirrors tfplugin6.Diagnostic.Severity. Every diagnostic this
// core produces is Error (spec §6).
type Severity int32

const (
	SeverityInvalid Severity = 0
	SeverityError   Severity = 1
	SeverityWarning Severity = 2
)

// StringKind mirrors tfplugin6.StringKind, used for description_kind.
type StringKind int32

const (
	StringKindPlain    StringKind = 0
	StringKindMarkdown StringKind = 1
)

// NestingMode mirrors tfplugin6.Schema_NestedBlock.NestingMode, restricted
// to the single mode this core's schema model needs.
type NestingMode int32

const (
	NestingModeInvalid NestingMode = 0
	NestingModeSingle  NestingMode = 1
)

// AttributePath mirrors tfplugin6.AttributePath.
type AttributePath struct {
	Steps []AttributePathStep `json:"steps,omitempty"`
}

// AttributePathStep is a oneof over the three ways to address into a
// value: by attribute name, by string map/set key, or by element index.
// Exactly one field is set.
type AttributePathStep struct {
	AttributeName   *string `json:"attribute_name,omitempty"`
	ElementKeyString *string `json:"element_key_string,omitempty"`
	ElementKeyInt    *int64  `json:"element_key_int,omitempty"`
}

// Diagnostic mirrors tfplugin6.Diagnostic.
type Diagnostic struct {
	Severity  Severity       `json:"severity"`
	Summary   string         `json:"summary"`
	Detail    string         `json:"detail"`
	Attribute *AttributePath `json:"attribute,omitempty"`
}

// DynamicValue mirrors tfplugin6.DynamicValue. This core always populates
// Msgpack and leaves Json empty (spec §6: on-wire value encoding is
// MessagePack).
type DynamicValue struct {
	Msgpack []byte `json:"msgpack,omitempty"`
	Json    []byte `json:"json,omitempty"`
}

// RawState mirrors tfplugin6.RawState, the input to UpgradeResourceState.
type RawState struct {
	Json    []byte            `json:"json,omitempty"`
	Flatmap map[string]string `json:"flatmap,omitempty"`
}

// SchemaAttribute mirrors tfplugin6.Schema_Attribute.
type SchemaAttribute struct {
	Name            string           `json:"name"`
	Type            []byte           `json:"type,omitempty"`
	NestedType      *SchemaNestedType `json:"nested_type,omitempty"`
	Description     string           `json:"description,omitempty"`
	Required        bool             `json:"required,omitempty"`
	Optional        bool             `json:"optional,omitempty"`
	Computed        bool             `json:"computed,omitempty"`
	Sensitive       bool             `json:"sensitive,omitempty"`
	DescriptionKind StringKind       `json:"description_kind,omitempty"`
	Deprecated      bool             `json:"deprecated,omitempty"`
}

// SchemaNestedType mirrors tfplugin6.Schema_Object, used for the nested
// object attributes this core's schema model supports.
type SchemaNestedType struct {
	Attributes []*SchemaAttribute `json:"attributes,omitempty"`
	Nesting    NestingMode        `json:"nesting,omitempty"`
}

// SchemaBlock mirrors tfplugin6.Schema_Block.
type SchemaBlock struct {
	Version         int64              `json:"version,omitempty"`
	Attributes      []*SchemaAttribute `json:"attributes,omitempty"`
	Description     string             `json:"description,omitempty"`
	DescriptionKind StringKind         `json:"description_kind,omitempty"`
	Deprecated      bool               `json:"deprecated,omitempty"`
}

// Schema mirrors tfplugin6.Schema.
type Schema struct {
	Version int64        `json:"version"`
	Block   *SchemaBlock `json:"block,omitempty"`
}

// ServerCapabilities mirrors tfplugin6.ServerCapabilities. This core
// advertises none of the optional capabilities.
type ServerCapabilities struct {
	PlanDestroy        bool `json:"plan_destroy,omitempty"`
	GetProviderSchemaOptional bool `json:"get_provider_schema_optional,omitempty"`
	MoveResourceState  bool `json:"move_resource_state,omitempty"`
}
