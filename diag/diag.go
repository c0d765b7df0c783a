// Package diag implements structured diagnostics and attribute paths (spec
// component C4), plus the generic tri-state value wrapper (Unknown/Null/
// Known) that the dynamic value model (C2) and the primitive value-model
// bindings (C5) both specialize.
//
// Diagnostics never carry warnings: the host side of this protocol treats
// every diagnostic severity as Error, so there is nothing else to model.
package diag

import "fmt"

// Severity is always Error in this implementation; the type exists so the
// wire conversion in the handler package has something concrete to convert.
type Severity int

// Error is the only severity this implementation produces.
const Error Severity = 0

// Diagnostic is a single structured error, optionally addressed to a
// location inside a value tree.
type Diagnostic struct {
	Severity Severity
	Summary  string
	Detail   string
	Path     Path
}

// Diagnostics is an ordered collection of Diagnostic. A nil Diagnostics is a
// valid, empty collection.
type Diagnostics []Diagnostic

// NewError builds a single-element Diagnostics from a message.
func NewError(summary string) Diagnostics {
	return Diagnostics{{Severity: Error, Summary: summary}}
}

// Errorf builds a single-element Diagnostics with a formatted message.
func Errorf(format string, args ...any) Diagnostics {
	return NewError(fmt.Sprintf(format, args...))
}

// WithPath returns a copy of ds with every diagnostic's Path set to path.
func (ds Diagnostics) WithPath(path Path) Diagnostics {
	if len(ds) == 0 {
		return ds
	}
	out := make(Diagnostics, len(ds))
	for i, d := range ds {
		d.Path = path
		out[i] = d
	}
	return out
}

// WithPrefix returns a copy of ds with prefix and a space prepended to the
// first element's Summary; the other elements are unchanged. Used by the msgpack decoder to prepend "msgpack decoding error:"
// to the first diagnostic of a decode failure, per spec §4.2/§7.
func (ds Diagnostics) WithPrefix(prefix string) Diagnostics {
	if len(ds) == 0 {
		return ds
	}
	out := make(Diagnostics, len(ds))
	copy(out, ds)
	out[0].Summary = prefix + " " + out[0].Summary
	return out
}

// HasErrors reports whether ds contains at least one diagnostic.
func (ds Diagnostics) HasErrors() bool {
	return len(ds) > 0
}

// Append returns the concatenation of ds and more, in order.
func (ds Diagnostics) Append(more Diagnostics) Diagnostics {
	if len(more) == 0 {
		return ds
	}
	return append(append(Diagnostics{}, ds...), more...)
}
