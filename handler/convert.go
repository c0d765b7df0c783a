package handler

import (
	"github.com/terustform-go/terustform/diag"
	"github.com/terustform-go/terustform/internal/tfplugin6"
	"github.com/terustform-go/terustform/schema"
	"github.com/terustform-go/terustform/tftype"
)

// schemaToWire converts a schema.Schema into its tfplugin6 wire
// representation, grounded on terustform/src/server/convert.rs.
func schemaToWire(s schema.Schema) *tfplugin6.Schema {
	attrs := make([]*tfplugin6.SchemaAttribute, 0, len(s.Attributes))
	for name, attr := range s.Attributes {
		attrs = append(attrs, attributeToWire(name, attr))
	}

	return &tfplugin6.Schema{
		Version: 1,
		Block: &tfplugin6.SchemaBlock{
			Version:         0,
			Attributes:      attrs,
			Description:     s.Description,
			DescriptionKind: tfplugin6.StringKindMarkdown,
		},
	}
}

// attributeToWire converts a single named attribute. Object attributes
// nest recursively via NestedType, a capability convert.rs's snapshot
// predates (that version only handled String and Int64).
func attributeToWire(name string, attr schema.Attribute) *tfplugin6.SchemaAttribute {
	wire := &tfplugin6.SchemaAttribute{
		Name:            name,
		Description:     attr.Description,
		Required:        attr.Mode.IsRequired(),
		Optional:        attr.Mode.IsOptional(),
		Computed:        attr.Mode.IsComputed(),
		Sensitive:       attr.Sensitive,
		DescriptionKind: tfplugin6.StringKindMarkdown,
	}

	if attr.Kind == schema.AttrObject {
		nested := make([]*tfplugin6.SchemaAttribute, 0, len(attr.Attrs))
		for childName, child := range attr.Attrs {
			nested = append(nested, attributeToWire(childName, child))
		}
		wire.NestedType = &tfplugin6.SchemaNestedType{
			Attributes: nested,
			Nesting:    tfplugin6.NestingModeSingle,
		}
		return wire
	}

	typ, err := tftype.ToCanonicalJSON(attr.Type())
	if err != nil {
		panic("handler: attribute type failed to serialize: " + err.Error())
	}
	wire.Type = typ
	return wire
}

// diagnosticsToWire converts a diag.Diagnostics into its tfplugin6 wire
// representation. Every diagnostic produced by this core is Error
// severity (spec §6).
func diagnosticsToWire(diags diag.Diagnostics) []*tfplugin6.Diagnostic {
	if len(diags) == 0 {
		return nil
	}

	wire := make([]*tfplugin6.Diagnostic, 0, len(diags))
	for _, d := range diags {
		entry := &tfplugin6.Diagnostic{
			Severity: tfplugin6.SeverityError,
			Summary:  d.Summary,
			Detail:   d.Detail,
		}
		if len(d.Path) > 0 {
			entry.Attribute = pathToWire(d.Path)
		}
		wire = append(wire, entry)
	}
	return wire
}

func pathToWire(path diag.Path) *tfplugin6.AttributePath {
	steps := make([]tfplugin6.AttributePathStep, 0, len(path))
	for _, seg := range path {
		switch seg.Kind {
		case diag.AttributeName:
			name := seg.Name
			steps = append(steps, tfplugin6.AttributePathStep{AttributeName: &name})
		case diag.ElementKeyString:
			key := seg.Name
			steps = append(steps, tfplugin6.AttributePathStep{ElementKeyString: &key})
		case diag.ElementKeyInt:
			key := seg.Int
			steps = append(steps, tfplugin6.AttributePathStep{ElementKeyInt: &key})
		}
	}
	return &tfplugin6.AttributePath{Steps: steps}
}
