package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/terustform-go/terustform/tftype"
)

func TestModePredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode     Mode
		required bool
		optional bool
		computed bool
	}{
		{Required, true, false, false},
		{Optional, false, true, false},
		{OptionalComputed, false, true, true},
		{Computed, false, false, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.required, tt.mode.IsRequired())
		assert.Equal(t, tt.optional, tt.mode.IsOptional())
		assert.Equal(t, tt.computed, tt.mode.IsComputed())
	}
}

func TestAttributeType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, tftype.StringType(), String("", Required, false).Type())
	assert.Equal(t, tftype.NumberType(), Int64("", Required, false).Type())

	obj := Object("", Required, false, map[string]Attribute{
		"name": String("", Required, false),
	})
	assert.Equal(t, tftype.Kind(tftype.Object), obj.Type().Kind())
}

func TestSchemaDerivedType(t *testing.T) {
	t.Parallel()

	s := Schema{
		Description: "a kitty",
		Attributes: map[string]Attribute{
			"id":   String("identifier", Computed, false),
			"name": String("display name", Required, false),
			"age":  Int64("age in years", OptionalComputed, false),
		},
	}

	typ := s.DerivedType()
	assert.Equal(t, tftype.Kind(tftype.Object), typ.Kind())
	assert.Equal(t, tftype.StringType(), typ.Attrs()["id"])
	assert.Equal(t, tftype.NumberType(), typ.Attrs()["age"])
	assert.False(t, typ.IsOptional("id"))
	assert.False(t, typ.IsOptional("name"))
	assert.True(t, typ.IsOptional("age"))
}

func TestSchemaDerivedTypeNestedObject(t *testing.T) {
	t.Parallel()

	s := Schema{
		Attributes: map[string]Attribute{
			"owner": Object("", Required, false, map[string]Attribute{
				"name": String("", Required, false),
				"nick": String("", Optional, false),
			}),
		},
	}

	typ := s.DerivedType()
	ownerType := typ.Attrs()["owner"]
	assert.Equal(t, tftype.Kind(tftype.Object), ownerType.Kind())
	assert.True(t, ownerType.IsOptional("nick"))
	assert.False(t, ownerType.IsOptional("name"))
}
