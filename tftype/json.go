package tftype

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ToCanonicalJSON renders t as the deterministic JSON type description used
// on the wire (spec §3.1, §4.1). Object attribute keys are always emitted in
// lexicographic order, and an Object with no optionals omits the third array
// element entirely rather than emitting an empty array.
func ToCanonicalJSON(t Type) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, t Type) error {
	switch t.kind {
	case Bool:
		buf.WriteString(`"bool"`)
	case Number:
		buf.WriteString(`"number"`)
	case String:
		buf.WriteString(`"string"`)
	case Dynamic:
		buf.WriteString(`"dynamic"`)
	case List:
		return writeCompound(buf, "list", t.Elem())
	case Set:
		return writeCompound(buf, "set", t.Elem())
	case Map:
		return writeCompound(buf, "map", t.Elem())
	case Tuple:
		return writeTuple(buf, t)
	case Object:
		return writeObject(buf, t)
	default:
		return fmt.Errorf("tftype: unknown kind %d", t.kind)
	}
	return nil
}

func writeCompound(buf *bytes.Buffer, tag string, inner Type) error {
	buf.WriteByte('[')
	writeJSONString(buf, tag)
	buf.WriteByte(',')
	if err := writeJSON(buf, inner); err != nil {
		return err
	}
	buf.WriteByte(']')
	return nil
}

func writeTuple(buf *bytes.Buffer, t Type) error {
	buf.WriteString(`["tuple",[`)
	for i, elem := range t.elems {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(buf, elem); err != nil {
			return err
		}
	}
	buf.WriteString("]]")
	return nil
}

func writeObject(buf *bytes.Buffer, t Type) error {
	buf.WriteString(`["object",{`)
	names := sortedAttrNames(t.attrs)
	for i, name := range names {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONString(buf, name)
		buf.WriteByte(':')
		if err := writeJSON(buf, t.attrs[name]); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	if len(t.optionals) > 0 {
		buf.WriteByte(',')
		buf.WriteByte('[')
		for i, name := range t.optionals {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(buf, name)
		}
		buf.WriteByte(']')
	}
	buf.WriteByte(']')
	return nil
}

// writeJSONString writes a correctly escaped JSON string literal. It cannot
// fail for a Go string, so the error from json.Marshal is discarded.
func writeJSONString(buf *bytes.Buffer, s string) {
	encoded, _ := json.Marshal(s)
	buf.Write(encoded)
}
