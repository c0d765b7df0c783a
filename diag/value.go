package diag

// tag discriminates the three states a BaseValue can be in.
type tag int

const (
	tagUnknown tag = iota
	tagNull
	tagKnown
)

// BaseValue is the generic tri-state wrapper described in spec §3.2: a value
// is either Unknown (not yet computed), Null (no value), or Known(T) (a
// concrete payload). The dynamic value model (package values) instantiates
// this with its own ValueKind payload; the record-field bindings (package
// binding) instantiate it with string and int64 for the two primitive
// attribute types this framework supports.
type BaseValue[T any] struct {
	tag   tag
	known T
}

// KnownValue builds a BaseValue holding v.
func KnownValue[T any](v T) BaseValue[T] {
	return BaseValue[T]{tag: tagKnown, known: v}
}

// NullValue builds a BaseValue in the Null state.
func NullValue[T any]() BaseValue[T] {
	return BaseValue[T]{tag: tagNull}
}

// UnknownValue builds a BaseValue in the Unknown state.
func UnknownValue[T any]() BaseValue[T] {
	return BaseValue[T]{tag: tagUnknown}
}

// IsKnown reports whether v holds a concrete payload.
func (v BaseValue[T]) IsKnown() bool { return v.tag == tagKnown }

// IsNull reports whether v is Null.
func (v BaseValue[T]) IsNull() bool { return v.tag == tagNull }

// IsUnknown reports whether v is Unknown.
func (v BaseValue[T]) IsUnknown() bool { return v.tag == tagUnknown }

// Known returns the payload and true if v is Known, or the zero value and
// false otherwise.
func (v BaseValue[T]) Known() (T, bool) {
	if v.tag == tagKnown {
		return v.known, true
	}
	var zero T
	return zero, false
}

// ExpectKnown unwraps a BaseValue that must be Known, producing a
// diagnostic addressed to path for Null or Unknown (spec §4.4).
func ExpectKnown[T any](v BaseValue[T], path Path) (T, Diagnostics) {
	switch v.tag {
	case tagKnown:
		return v.known, nil
	case tagNull:
		var zero T
		return zero, NewError("expected value, found null value").WithPath(path)
	default:
		var zero T
		return zero, NewError("expected known value, found unknown value").WithPath(path)
	}
}

// ExpectKnownOrNull unwraps a BaseValue that must not be Unknown, returning
// a nil pointer for Null or a diagnostic addressed to path for Unknown
// (spec §4.4).
func ExpectKnownOrNull[T any](v BaseValue[T], path Path) (*T, Diagnostics) {
	switch v.tag {
	case tagKnown:
		known := v.known
		return &known, nil
	case tagNull:
		return nil, nil
	default:
		return nil, NewError("expected known value, found unknown value").WithPath(path)
	}
}
