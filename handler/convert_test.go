package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terustform-go/terustform/diag"
	"github.com/terustform-go/terustform/schema"
)

func TestSchemaToWire(t *testing.T) {
	t.Parallel()

	s := schema.Schema{
		Description: "a kitty",
		Attributes: map[string]schema.Attribute{
			"id":   schema.String("identifier", schema.Computed, false),
			"name": schema.String("display name", schema.Required, true),
		},
	}

	wire := schemaToWire(s)
	require.NotNil(t, wire.Block)
	assert.Equal(t, int64(1), wire.Version)
	assert.Equal(t, "a kitty", wire.Block.Description)
	assert.Len(t, wire.Block.Attributes, 2)

	byName := map[string]*attrCheck{}
	for _, a := range wire.Block.Attributes {
		byName[a.Name] = &attrCheck{required: a.Required, optional: a.Optional, computed: a.Computed, sensitive: a.Sensitive}
	}

	assert.False(t, byName["id"].required)
	assert.True(t, byName["id"].computed)
	assert.True(t, byName["name"].required)
	assert.True(t, byName["name"].sensitive)
}

type attrCheck struct {
	required, optional, computed, sensitive bool
}

func TestAttributeToWireNestedObject(t *testing.T) {
	t.Parallel()

	attr := schema.Object("owner", schema.Required, false, map[string]schema.Attribute{
		"name": schema.String("", schema.Required, false),
	})

	wire := attributeToWire("owner", attr)
	require.NotNil(t, wire.NestedType)
	assert.Len(t, wire.NestedType.Attributes, 1)
	assert.Nil(t, wire.Type)
}

func TestDiagnosticsToWire(t *testing.T) {
	t.Parallel()

	diags := diag.NewError("boom").WithPath(diag.RootPath().WithAttributeName("name"))
	wire := diagnosticsToWire(diags)

	require.Len(t, wire, 1)
	assert.Equal(t, "boom", wire[0].Summary)
	require.NotNil(t, wire[0].Attribute)
	require.Len(t, wire[0].Attribute.Steps, 1)
	require.NotNil(t, wire[0].Attribute.Steps[0].AttributeName)
	assert.Equal(t, "name", *wire[0].Attribute.Steps[0].AttributeName)
}

func TestDiagnosticsToWireEmpty(t *testing.T) {
	t.Parallel()
	assert.Nil(t, diagnosticsToWire(nil))
}
