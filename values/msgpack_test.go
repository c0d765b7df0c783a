package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terustform-go/terustform/tftype"
)

func TestEncodeSentinels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []byte{0xd4, 0x00, 0x00}, Encode(Unknown()))
	assert.Equal(t, []byte{0xc0}, Encode(Null()))
}

// TestEncodeNumberClassification is testable property 5: integer-
// representable numbers must start with an integer-family byte, not a
// float-family byte.
func TestEncodeNumberClassification(t *testing.T) {
	t.Parallel()

	one := Encode(KnownNumber(1.0))
	require.Len(t, one, 1)
	assert.Equal(t, byte(0x01), one[0])

	oneHalf := Encode(KnownNumber(1.5))
	require.NotEmpty(t, oneHalf)
	assert.Equal(t, byte(0xcb), oneHalf[0])
}

func TestEncodeObjectKeyOrderIsDeterministic(t *testing.T) {
	t.Parallel()

	v := KnownObject(map[string]Value{
		"b": KnownString("2"),
		"a": KnownString("1"),
	})

	got := Encode(v)
	want := []byte{0x82, 0xa1, 0x61, 0xa1, 0x31, 0xa1, 0x62, 0xa1, 0x32}
	assert.Equal(t, want, got)

	// Encoding is deterministic across repeated invocations.
	assert.Equal(t, got, Encode(v))
}

// TestDecodeMixedObject is concrete scenario 3.
func TestDecodeMixedObject(t *testing.T) {
	t.Parallel()

	typ := tftype.ObjectOf(map[string]tftype.Type{
		"id":          tftype.StringType(),
		"discord_id":  tftype.StringType(),
		"name":        tftype.StringType(),
		"description": tftype.StringType(),
	}, nil)

	data := []byte{
		0x84,
		0xab, 'd', 'e', 's', 'c', 'r', 'i', 'p', 't', 'i', 'o', 'n',
		0xa3, '?', '?', '?',
		0xaa, 'd', 'i', 's', 'c', 'o', 'r', 'd', '_', 'i', 'd',
		0xc0,
		0xa2, 'i', 'd',
		0xd4, 0x00, 0x00,
		0xa4, 'n', 'a', 'm', 'e',
		0xa4, 'm', 'e', 'o', 'w',
	}

	got, diags := Decode(data, typ)
	require.Empty(t, diags)

	obj := mustKnown(t, got).Attrs()
	assert.Equal(t, "???", mustKnown(t, obj["description"]).StringValue())
	assert.True(t, obj["discord_id"].IsNull())
	assert.True(t, obj["id"].IsUnknown())
	assert.Equal(t, "meow", mustKnown(t, obj["name"]).StringValue())
}

func TestDecodeObjectMissingRequiredAttribute(t *testing.T) {
	t.Parallel()

	typ := tftype.ObjectOf(map[string]tftype.Type{
		"id": tftype.StringType(),
	}, nil)

	_, diags := Decode([]byte{0x80}, typ)
	require.NotEmpty(t, diags)
	assert.Contains(t, diags[0].Summary, "msgpack decoding error:")
}

func TestDecodeObjectUnexpectedAttribute(t *testing.T) {
	t.Parallel()

	typ := tftype.ObjectOf(map[string]tftype.Type{}, nil)

	data := []byte{0x80}
	_, diags := Decode(data, typ)
	require.Empty(t, diags)

	typWithoutField := tftype.ObjectOf(map[string]tftype.Type{"other": tftype.StringType()}, nil)
	data = []byte{0x81, 0xa2, 'i', 'd', 0xa1, 'x'}
	_, diags = Decode(data, typWithoutField)
	require.NotEmpty(t, diags)
	assert.Contains(t, diags[0].Summary, "unexpected attribute")
}

func TestDecodeObjectOptionalAttributeMayBeAbsent(t *testing.T) {
	t.Parallel()

	typ := tftype.ObjectOf(map[string]tftype.Type{
		"id":   tftype.StringType(),
		"name": tftype.StringType(),
	}, []string{"name"})

	data := []byte{0x81, 0xa2, 'i', 'd', 0xa1, 'x'}
	got, diags := Decode(data, typ)
	require.Empty(t, diags)

	obj := mustKnown(t, got).Attrs()
	_, hasName := obj["name"]
	assert.False(t, hasName)
}

func TestRoundTripScalarsAndContainers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		typ  tftype.Type
		val  Value
	}{
		{name: "string", typ: tftype.StringType(), val: KnownString("meow")},
		{name: "bool true", typ: tftype.BoolType(), val: KnownBool(true)},
		{name: "bool false", typ: tftype.BoolType(), val: KnownBool(false)},
		{name: "integral number", typ: tftype.NumberType(), val: KnownNumber(42)},
		{name: "fractional number", typ: tftype.NumberType(), val: KnownNumber(3.25)},
		{name: "null", typ: tftype.StringType(), val: Null()},
		{name: "unknown", typ: tftype.StringType(), val: Unknown()},
		{
			name: "list",
			typ:  tftype.ListOf(tftype.NumberType()),
			val:  KnownList([]Value{KnownNumber(1), KnownNumber(2), KnownNumber(3)}),
		},
		{
			name: "tuple",
			typ:  tftype.TupleOf(tftype.StringType(), tftype.NumberType()),
			val:  Known(TupleKind([]Value{KnownString("a"), KnownNumber(1)})),
		},
		{
			name: "map",
			typ:  tftype.MapOf(tftype.StringType()),
			val:  Known(MapKind(map[string]Value{"a": KnownString("1"), "b": KnownString("2")})),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			encoded := Encode(tt.val)
			decoded, diags := Decode(encoded, tt.typ)
			require.Empty(t, diags)
			assert.Equal(t, tt.val, decoded)

			// Encoding is deterministic across invocations.
			assert.Equal(t, encoded, Encode(tt.val))
		})
	}
}

func TestDecodeDynamicIsUnsupported(t *testing.T) {
	t.Parallel()

	_, diags := Decode([]byte{0xa1, 'x'}, tftype.DynamicType())
	require.NotEmpty(t, diags)
	assert.Contains(t, diags[0].Summary, "dynamic not supported")
}

func TestDecodeDuplicateKeyIsError(t *testing.T) {
	t.Parallel()

	typ := tftype.ObjectOf(map[string]tftype.Type{"id": tftype.StringType()}, nil)
	data := []byte{
		0x82,
		0xa2, 'i', 'd', 0xa1, 'x',
		0xa2, 'i', 'd', 0xa1, 'y',
	}

	_, diags := Decode(data, typ)
	require.NotEmpty(t, diags)
}

func mustKnown(t *testing.T, v Value) ValueKind {
	t.Helper()
	k, ok := v.Known()
	require.True(t, ok, "expected a known value")
	return k
}
