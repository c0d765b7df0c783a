package values

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"unicode/utf8"

	"github.com/terustform-go/terustform/diag"
	"github.com/terustform-go/terustform/tftype"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// maxStringLen caps decoded strings at 1 MiB, matching spec §4.2.
const maxStringLen = 1024 * 1024

// Encode renders v as MessagePack bytes per spec §4.2. Object and map keys
// are emitted in lexicographic order so that encoding is deterministic.
//
// This hand-rolls the MessagePack header bytes rather than going through
// msgpack.Encoder's high-level API: the spec requires exact control over
// which of the fixint/int8/int16/int32/int64 families is chosen for a given
// number, and a literal fixext1 sentinel for Unknown that the library's
// struct-based encoder has no vocabulary for. It still draws its format
// byte vocabulary from the library's msgpcode package, the same constants
// the library's own encoder.go is built from.
func Encode(v Value) []byte {
	var buf bytes.Buffer
	encodeValue(&buf, v)
	return buf.Bytes()
}

func encodeValue(buf *bytes.Buffer, v Value) {
	if v.IsUnknown() {
		// The sentinel the host uses for "not yet computed": fixext1,
		// extension type 0, one zero payload byte.
		buf.WriteByte(msgpcode.FixExt1)
		buf.WriteByte(0x00)
		buf.WriteByte(0x00)
		return
	}
	if v.IsNull() {
		buf.WriteByte(msgpcode.Nil)
		return
	}
	known, _ := v.Known()
	encodeKind(buf, known)
}

func encodeKind(buf *bytes.Buffer, k ValueKind) {
	switch k.Kind() {
	case KString:
		encodeString(buf, k.StringValue())
	case KBool:
		if k.BoolValue() {
			buf.WriteByte(msgpcode.True)
		} else {
			buf.WriteByte(msgpcode.False)
		}
	case KNumber:
		encodeNumber(buf, k.NumberValue())
	case KList, KSet, KTuple:
		elems := k.Elements()
		encodeArrayHeader(buf, len(elems))
		for _, elem := range elems {
			encodeValue(buf, elem)
		}
	case KMap, KObject:
		encodeObjectLike(buf, k.Attrs())
	default:
		panic(fmt.Sprintf("values: unknown kind %d", k.Kind()))
	}
}

func encodeObjectLike(buf *bytes.Buffer, attrs map[string]Value) {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	encodeMapHeader(buf, len(names))
	for _, name := range names {
		encodeString(buf, name)
		encodeValue(buf, attrs[name])
	}
}

// encodeNumber implements the float/int classification from spec §4.2:
// infinities keep their sign as a float64, integer-representable finite
// values are written as the smallest signed integer encoding, everything
// else is a float64.
func encodeNumber(buf *bytes.Buffer, n float64) {
	if math.IsInf(n, 0) {
		if math.Signbit(n) {
			encodeFloat64(buf, math.Inf(-1))
		} else {
			encodeFloat64(buf, math.Inf(1))
		}
		return
	}
	if asInt := int64(n); float64(asInt) == n {
		encodeInt(buf, asInt)
		return
	}
	encodeFloat64(buf, n)
}

// encodeInt picks the smallest signed MessagePack integer representation
// that fits n, mirroring rmp::encode::write_i64's behaviour.
func encodeInt(buf *bytes.Buffer, n int64) {
	switch {
	case n >= -32 && n <= 127:
		buf.WriteByte(byte(n))
	case n >= math.MinInt8 && n <= math.MaxInt8:
		buf.WriteByte(msgpcode.Int8)
		buf.WriteByte(byte(int8(n)))
	case n >= math.MinInt16 && n <= math.MaxInt16:
		buf.WriteByte(msgpcode.Int16)
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], uint16(int16(n)))
		buf.Write(b[:])
	case n >= math.MinInt32 && n <= math.MaxInt32:
		buf.WriteByte(msgpcode.Int32)
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(int32(n)))
		buf.Write(b[:])
	default:
		buf.WriteByte(msgpcode.Int64)
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], uint64(n))
		buf.Write(b[:])
	}
}

func encodeFloat64(buf *bytes.Buffer, f float64) {
	buf.WriteByte(msgpcode.Double)
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], math.Float64bits(f))
	buf.Write(b[:])
}

func encodeString(buf *bytes.Buffer, s string) {
	n := len(s)
	switch {
	case n <= 31:
		buf.WriteByte(0xa0 | byte(n))
	case n <= math.MaxUint8:
		buf.WriteByte(msgpcode.Str8)
		buf.WriteByte(byte(n))
	case n <= math.MaxUint16:
		buf.WriteByte(msgpcode.Str16)
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], uint16(n))
		buf.Write(b[:])
	default:
		buf.WriteByte(msgpcode.Str32)
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(n))
		buf.Write(b[:])
	}
	buf.WriteString(s)
}

func encodeArrayHeader(buf *bytes.Buffer, n int) {
	switch {
	case n <= 15:
		buf.WriteByte(0x90 | byte(n))
	case n <= math.MaxUint16:
		buf.WriteByte(msgpcode.Array16)
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], uint16(n))
		buf.Write(b[:])
	default:
		buf.WriteByte(msgpcode.Array32)
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(n))
		buf.Write(b[:])
	}
}

func encodeMapHeader(buf *bytes.Buffer, n int) {
	switch {
	case n <= 15:
		buf.WriteByte(0x80 | byte(n))
	case n <= math.MaxUint16:
		buf.WriteByte(msgpcode.Map16)
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], uint16(n))
		buf.Write(b[:])
	default:
		buf.WriteByte(msgpcode.Map32)
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(n))
		buf.Write(b[:])
	}
}

// Decode parses data as MessagePack shaped by expectedType, per spec §4.2.
// Every returned diagnostic has its first element's summary prefixed with
// "msgpack decoding error:", per spec §7.
func Decode(data []byte, expectedType tftype.Type) (Value, diag.Diagnostics) {
	c := &cursor{data: data}
	v, diags := decodeValue(c, expectedType, diag.RootPath())
	if diags.HasErrors() {
		return Value{}, diags.WithPrefix("msgpack decoding error:")
	}
	return v, nil
}

// cursor is a read position into a byte slice with peek-and-rewind support,
// the same role io::Cursor<&[u8]> plays in the Rust reference decoder.
type cursor struct {
	data []byte
	pos  int
}

func (c *cursor) peek() (byte, bool) {
	if c.pos >= len(c.data) {
		return 0, false
	}
	return c.data[c.pos], true
}

func (c *cursor) readByte() (byte, bool) {
	b, ok := c.peek()
	if ok {
		c.pos++
	}
	return b, ok
}

func (c *cursor) readN(n int) ([]byte, bool) {
	if n < 0 || c.pos+n > len(c.data) {
		return nil, false
	}
	out := c.data[c.pos : c.pos+n]
	c.pos += n
	return out, true
}

func (c *cursor) readUint16() (uint16, bool) {
	b, ok := c.readN(2)
	if !ok {
		return 0, false
	}
	return binary.BigEndian.Uint16(b), true
}

func (c *cursor) readUint32() (uint32, bool) {
	b, ok := c.readN(4)
	if !ok {
		return 0, false
	}
	return binary.BigEndian.Uint32(b), true
}

func (c *cursor) readUint64() (uint64, bool) {
	b, ok := c.readN(8)
	if !ok {
		return 0, false
	}
	return binary.BigEndian.Uint64(b), true
}

// tryConsumeNil consumes a nil token if one is next, reporting whether it did.
func (c *cursor) tryConsumeNil() bool {
	b, ok := c.peek()
	if !ok || b != msgpcode.Nil {
		return false
	}
	c.pos++
	return true
}

// tryConsumeUnknown consumes a fixext1 token if one is next, regardless of
// its payload: spec §4.2 says any fixext1 at a value position decodes as
// Unknown no matter what the expected type was.
func (c *cursor) tryConsumeUnknown() bool {
	b, ok := c.peek()
	if !ok || b != msgpcode.FixExt1 {
		return false
	}
	// fixext1 = tag byte + 1 ext-type byte + 1 payload byte.
	if c.pos+3 > len(c.data) {
		return false
	}
	c.pos += 3
	return true
}

func decodeValue(c *cursor, typ tftype.Type, path diag.Path) (Value, diag.Diagnostics) {
	if c.tryConsumeNil() {
		return Null(), nil
	}
	if c.tryConsumeUnknown() {
		return Unknown(), nil
	}

	switch typ.Kind() {
	case tftype.Bool:
		b, diags := decodeBool(c)
		if diags.HasErrors() {
			return Value{}, diags.WithPath(path)
		}
		return KnownBool(b), nil

	case tftype.Number:
		n, diags := decodeNumber(c)
		if diags.HasErrors() {
			return Value{}, diags.WithPath(path)
		}
		return KnownNumber(n), nil

	case tftype.String:
		s, diags := decodeString(c)
		if diags.HasErrors() {
			return Value{}, diags.WithPath(path)
		}
		return KnownString(s), nil

	case tftype.Dynamic:
		return Value{}, diag.NewError("dynamic not supported").WithPath(path)

	case tftype.List, tftype.Set:
		n, diags := decodeArrayLen(c)
		if diags.HasErrors() {
			return Value{}, diags.WithPath(path)
		}
		elemType := typ.Elem()
		elems := make([]Value, 0, n)
		for i := 0; i < n; i++ {
			elem, diags := decodeValue(c, elemType, path.WithElementKeyInt(int64(i)))
			if diags.HasErrors() {
				return Value{}, diags
			}
			elems = append(elems, elem)
		}
		if typ.Kind() == tftype.List {
			return Known(ListKind(elems)), nil
		}
		return Known(SetKind(elems)), nil

	case tftype.Map:
		n, diags := decodeMapLen(c)
		if diags.HasErrors() {
			return Value{}, diags.WithPath(path)
		}
		elemType := typ.Elem()
		m := make(map[string]Value, n)
		for i := 0; i < n; i++ {
			key, diags := decodeString(c)
			if diags.HasErrors() {
				return Value{}, diags.WithPath(path)
			}
			val, diags := decodeValue(c, elemType, path.WithElementKeyString(key))
			if diags.HasErrors() {
				return Value{}, diags
			}
			m[key] = val
		}
		return Known(MapKind(m)), nil

	case tftype.Tuple:
		n, diags := decodeArrayLen(c)
		if diags.HasErrors() {
			return Value{}, diags.WithPath(path)
		}
		elemTypes := typ.Elems()
		if n != len(elemTypes) {
			return Value{}, diag.Errorf("expected %d elems, found %d elems in tuple", len(elemTypes), n).WithPath(path)
		}
		elems := make([]Value, 0, n)
		for i, elemType := range elemTypes {
			elem, diags := decodeValue(c, elemType, path.WithElementKeyInt(int64(i)))
			if diags.HasErrors() {
				return Value{}, diags
			}
			elems = append(elems, elem)
		}
		return Known(TupleKind(elems)), nil

	case tftype.Object:
		return decodeObject(c, typ, path)

	default:
		return Value{}, diag.Errorf("unsupported type kind %d", typ.Kind()).WithPath(path)
	}
}

func decodeObject(c *cursor, typ tftype.Type, path diag.Path) (Value, diag.Diagnostics) {
	attrs := typ.Attrs()
	n, diags := decodeMapLen(c)
	if diags.HasErrors() {
		return Value{}, diags.WithPath(path)
	}
	if len(attrs) != n {
		return Value{}, diag.Errorf("expected %d attrs, found %d attrs in object", len(attrs), n).WithPath(path)
	}

	obj := make(map[string]Value, n)
	for i := 0; i < n; i++ {
		key, diags := decodeString(c)
		if diags.HasErrors() {
			return Value{}, diags.WithPath(path)
		}
		if _, dup := obj[key]; dup {
			return Value{}, diag.Errorf("duplicate attribute %q in object", key).WithPath(path)
		}
		attrType, known := attrs[key]
		if !known {
			return Value{}, diag.Errorf("unexpected attribute: '%s'", key).WithPath(path)
		}
		val, diags := decodeValue(c, attrType, path.WithAttributeName(key))
		if diags.HasErrors() {
			return Value{}, diags
		}
		obj[key] = val
	}

	for name := range attrs {
		if _, present := obj[name]; present {
			continue
		}
		if typ.IsOptional(name) {
			continue
		}
		return Value{}, diag.Errorf("missing attribute %q", name).WithPath(path)
	}

	return Known(ObjectKind(obj)), nil
}

func decodeBool(c *cursor) (bool, diag.Diagnostics) {
	b, ok := c.readByte()
	if !ok {
		return false, diag.NewError("unexpected end of input reading bool")
	}
	switch b {
	case msgpcode.True:
		return true, nil
	case msgpcode.False:
		return false, nil
	default:
		return false, diag.Errorf("expected bool, found format byte 0x%02x", b)
	}
}

// decodeNumber implements the int-then-f32-then-f64 fallback from spec §4.2.
func decodeNumber(c *cursor) (float64, diag.Diagnostics) {
	if n, ok := decodeInt(c); ok {
		return float64(n), nil
	}
	if f, ok := decodeFloat32(c); ok {
		return float64(f), nil
	}
	f, diags := decodeFloat64(c)
	if diags.HasErrors() {
		return 0, diag.NewError("expected number")
	}
	return f, nil
}

// decodeInt tries to read any MessagePack integer-family token at the
// current position. It does not consume anything on failure.
func decodeInt(c *cursor) (int64, bool) {
	start := c.pos
	b, ok := c.peek()
	if !ok {
		return 0, false
	}

	switch {
	case b <= 0x7f: // positive fixint
		c.pos++
		return int64(b), true
	case b >= 0xe0: // negative fixint
		c.pos++
		return int64(int8(b)), true
	case b == msgpcode.Uint8:
		c.pos++
		v, ok := c.readN(1)
		if !ok {
			c.pos = start
			return 0, false
		}
		return int64(v[0]), true
	case b == msgpcode.Uint16:
		c.pos++
		v, ok := c.readUint16()
		if !ok {
			c.pos = start
			return 0, false
		}
		return int64(v), true
	case b == msgpcode.Uint32:
		c.pos++
		v, ok := c.readUint32()
		if !ok {
			c.pos = start
			return 0, false
		}
		return int64(v), true
	case b == msgpcode.Uint64:
		c.pos++
		v, ok := c.readUint64()
		if !ok {
			c.pos = start
			return 0, false
		}
		return int64(v), true
	case b == msgpcode.Int8:
		c.pos++
		v, ok := c.readN(1)
		if !ok {
			c.pos = start
			return 0, false
		}
		return int64(int8(v[0])), true
	case b == msgpcode.Int16:
		c.pos++
		v, ok := c.readUint16()
		if !ok {
			c.pos = start
			return 0, false
		}
		return int64(int16(v)), true
	case b == msgpcode.Int32:
		c.pos++
		v, ok := c.readUint32()
		if !ok {
			c.pos = start
			return 0, false
		}
		return int64(int32(v)), true
	case b == msgpcode.Int64:
		c.pos++
		v, ok := c.readUint64()
		if !ok {
			c.pos = start
			return 0, false
		}
		return int64(v), true
	default:
		return 0, false
	}
}

func decodeFloat32(c *cursor) (float32, bool) {
	start := c.pos
	b, ok := c.peek()
	if !ok || b != msgpcode.Float {
		return 0, false
	}
	c.pos++
	v, ok := c.readUint32()
	if !ok {
		c.pos = start
		return 0, false
	}
	return math.Float32frombits(v), true
}

func decodeFloat64(c *cursor) (float64, diag.Diagnostics) {
	b, ok := c.peek()
	if !ok || b != msgpcode.Double {
		return 0, diag.NewError("expected number")
	}
	c.pos++
	v, ok := c.readUint64()
	if !ok {
		return 0, diag.NewError("unexpected end of input reading float64")
	}
	return math.Float64frombits(v), nil
}

func decodeString(c *cursor) (string, diag.Diagnostics) {
	n, diags := decodeStringLen(c)
	if diags.HasErrors() {
		return "", diags
	}
	if n > maxStringLen {
		n = maxStringLen
	}
	buf, ok := c.readN(n)
	if !ok {
		return "", diag.NewError("unexpected end of input reading string")
	}
	if !utf8.Valid(buf) {
		return "", diag.NewError("string is not valid UTF-8")
	}
	return string(buf), nil
}

func decodeStringLen(c *cursor) (int, diag.Diagnostics) {
	b, ok := c.readByte()
	if !ok {
		return 0, diag.NewError("unexpected end of input reading string length")
	}
	switch {
	case b >= 0xa0 && b <= 0xbf:
		return int(b & 0x1f), nil
	case b == msgpcode.Str8:
		v, ok := c.readN(1)
		if !ok {
			return 0, diag.NewError("unexpected end of input reading str8 length")
		}
		return int(v[0]), nil
	case b == msgpcode.Str16:
		v, ok := c.readUint16()
		if !ok {
			return 0, diag.NewError("unexpected end of input reading str16 length")
		}
		return int(v), nil
	case b == msgpcode.Str32:
		v, ok := c.readUint32()
		if !ok {
			return 0, diag.NewError("unexpected end of input reading str32 length")
		}
		return int(v), nil
	default:
		return 0, diag.Errorf("expected string, found format byte 0x%02x", b)
	}
}

func decodeArrayLen(c *cursor) (int, diag.Diagnostics) {
	b, ok := c.readByte()
	if !ok {
		return 0, diag.NewError("unexpected end of input reading array length")
	}
	switch {
	case b >= 0x90 && b <= 0x9f:
		return int(b & 0x0f), nil
	case b == msgpcode.Array16:
		v, ok := c.readUint16()
		if !ok {
			return 0, diag.NewError("unexpected end of input reading array16 length")
		}
		return int(v), nil
	case b == msgpcode.Array32:
		v, ok := c.readUint32()
		if !ok {
			return 0, diag.NewError("unexpected end of input reading array32 length")
		}
		return int(v), nil
	default:
		return 0, diag.Errorf("expected array, found format byte 0x%02x", b)
	}
}

func decodeMapLen(c *cursor) (int, diag.Diagnostics) {
	b, ok := c.readByte()
	if !ok {
		return 0, diag.NewError("unexpected end of input reading map length")
	}
	switch {
	case b >= 0x80 && b <= 0x8f:
		return int(b & 0x0f), nil
	case b == msgpcode.Map16:
		v, ok := c.readUint16()
		if !ok {
			return 0, diag.NewError("unexpected end of input reading map16 length")
		}
		return int(v), nil
	case b == msgpcode.Map32:
		v, ok := c.readUint32()
		if !ok {
			return 0, diag.NewError("unexpected end of input reading map32 length")
		}
		return int(v), nil
	default:
		return 0, diag.Errorf("expected map, found format byte 0x%02x", b)
	}
}

