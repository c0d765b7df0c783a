// Package binding implements the value-model binding (spec component C5):
// the polymorphic fromValue/toValue contract, its primitive instantiations
// for string and int64, and a reflection-based record↔object binding for
// user-declared struct types.
//
// The Rust original generates this per struct via the
// terustform_macros::Model derive; Go has no macros, so this package walks
// a struct's exported fields and their `tfvalue:"name"` tags with
// reflect, once per type, and caches the result (spec §4.5, §9: "implementations
// may use ... reflection").
package binding

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/terustform-go/terustform/diag"
	"github.com/terustform-go/terustform/values"
)

var (
	stringValueType = reflect.TypeOf(diag.BaseValue[string]{})
	int64ValueType  = reflect.TypeOf(diag.BaseValue[int64]{})
)

// FromValue converts a dynamic value into T. T must be one of
// diag.BaseValue[string], diag.BaseValue[int64], or a struct whose fields
// are tagged `tfvalue:"name"`.
func FromValue[T any](v values.Value, path diag.Path) (T, diag.Diagnostics) {
	var out T
	diags := decodeInto(reflect.ValueOf(&out).Elem(), v, path)
	return out, diags
}

// ToValue converts t into a dynamic value, the inverse of FromValue.
func ToValue[T any](t T) values.Value {
	return encodeFrom(reflect.ValueOf(t))
}

func decodeInto(dst reflect.Value, v values.Value, path diag.Path) diag.Diagnostics {
	switch dst.Type() {
	case stringValueType:
		bv, diags := decodeStringBaseValue(v, path)
		if diags.HasErrors() {
			return diags
		}
		dst.Set(reflect.ValueOf(bv))
		return nil
	case int64ValueType:
		bv, diags := decodeInt64BaseValue(v, path)
		if diags.HasErrors() {
			return diags
		}
		dst.Set(reflect.ValueOf(bv))
		return nil
	default:
		if dst.Kind() == reflect.Struct {
			return decodeStruct(dst, v, path)
		}
		panic(fmt.Sprintf("binding: unsupported model type %s", dst.Type()))
	}
}

func decodeStringBaseValue(v values.Value, path diag.Path) (diag.BaseValue[string], diag.Diagnostics) {
	if v.IsUnknown() {
		return diag.UnknownValue[string](), nil
	}
	if v.IsNull() {
		return diag.NullValue[string](), nil
	}
	k, _ := v.Known()
	if k.Kind() != values.KString {
		return diag.BaseValue[string]{}, diag.Errorf("Expected string, found %s value", k.DiagnosticTypeStr()).WithPath(path)
	}
	return diag.KnownValue(k.StringValue()), nil
}

func decodeInt64BaseValue(v values.Value, path diag.Path) (diag.BaseValue[int64], diag.Diagnostics) {
	if v.IsUnknown() {
		return diag.UnknownValue[int64](), nil
	}
	if v.IsNull() {
		return diag.NullValue[int64](), nil
	}
	k, _ := v.Known()
	if k.Kind() != values.KNumber {
		return diag.BaseValue[int64]{}, diag.Errorf("Expected number, found %s value", k.DiagnosticTypeStr()).WithPath(path)
	}
	return diag.KnownValue(int64(k.NumberValue())), nil
}

// decodeStruct implements the record-to-object binding described at
// spec §4.5: the value must be a known Object; each declared field is
// removed from a working copy of the object's attributes (so leftover
// entries are silently ignored), and a missing entry is a diagnostic at
// the current path.
func decodeStruct(dst reflect.Value, v values.Value, path diag.Path) diag.Diagnostics {
	if v.IsUnknown() {
		return diag.NewError("Expected object, found unknown value").WithPath(path)
	}
	if v.IsNull() {
		return diag.NewError("Expected object, found null value").WithPath(path)
	}
	k, _ := v.Known()
	if k.Kind() != values.KObject {
		return diag.Errorf("Expected object, found %s value", k.DiagnosticTypeStr()).WithPath(path)
	}

	remaining := make(map[string]values.Value, len(k.Attrs()))
	for name, attr := range k.Attrs() {
		remaining[name] = attr
	}

	fields := fieldsOf(dst.Type())
	for _, f := range fields {
		attrValue, ok := remaining[f.name]
		if !ok {
			return diag.Errorf("Expected property '%s', which was not present", f.name).WithPath(path)
		}
		delete(remaining, f.name)

		fieldPath := path.WithAttributeName(f.name)
		if diags := decodeInto(dst.Field(f.index), attrValue, fieldPath); diags.HasErrors() {
			return diags
		}
	}
	return nil
}

func encodeFrom(src reflect.Value) values.Value {
	switch src.Type() {
	case stringValueType:
		return encodeStringBaseValue(src.Interface().(diag.BaseValue[string]))
	case int64ValueType:
		return encodeInt64BaseValue(src.Interface().(diag.BaseValue[int64]))
	default:
		if src.Kind() == reflect.Struct {
			return encodeStruct(src)
		}
		panic(fmt.Sprintf("binding: unsupported model type %s", src.Type()))
	}
}

func encodeStringBaseValue(bv diag.BaseValue[string]) values.Value {
	if bv.IsUnknown() {
		return values.Unknown()
	}
	if bv.IsNull() {
		return values.Null()
	}
	s, _ := bv.Known()
	return values.KnownString(s)
}

func encodeInt64BaseValue(bv diag.BaseValue[int64]) values.Value {
	if bv.IsUnknown() {
		return values.Unknown()
	}
	if bv.IsNull() {
		return values.Null()
	}
	n, _ := bv.Known()
	return values.KnownNumber(float64(n))
}

// encodeStruct builds the Object whose keys are the declared field names,
// per spec §4.5. Lexicographic ordering is applied at the wire layer
// (values.Encode sorts map keys before emitting them), so the map built
// here need not itself be ordered.
func encodeStruct(src reflect.Value) values.Value {
	fields := fieldsOf(src.Type())
	obj := make(map[string]values.Value, len(fields))
	for _, f := range fields {
		obj[f.name] = encodeFrom(src.Field(f.index))
	}
	return values.KnownObject(obj)
}

// modelField is one exported, tfvalue-tagged struct field.
type modelField struct {
	name  string
	index int
}

var fieldCache sync.Map // map[reflect.Type][]modelField

// fieldsOf returns t's tfvalue-tagged fields, computed once per type and
// cached thereafter — the run-time analogue of the macro's compile-time
// expansion.
func fieldsOf(t reflect.Type) []modelField {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]modelField)
	}

	var fields []modelField
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, ok := sf.Tag.Lookup("tfvalue")
		if !ok {
			continue
		}
		fields = append(fields, modelField{name: tag, index: i})
	}

	fieldCache.Store(t, fields)
	return fields
}
