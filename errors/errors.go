package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLoad        Phase = "load"        // binding a definition
	PhaseValidate    Phase = "validate"    // definition validation
	PhaseDecode      Phase = "decode"      // payload decoding
	PhaseCompile     Phase = "compile"     // host engine compilation
	PhaseInstantiate Phase = "instantiate" // host engine instantiation
	PhaseCapture     Phase = "capture"     // build-time capture
)

// Kind categorizes the error
type Kind string

const (
	KindMissingCompileStep Kind = "missing_compile_step"
	KindInvalidDefinition  Kind = "invalid_definition"
	KindFieldMissing       Kind = "field_missing"
	KindShape              Kind = "shape"
	KindUnsupported        Kind = "unsupported"
)

// Error is the structured error type used throughout the library.
// Host engine errors are never wrapped in it; they propagate verbatim.
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Name   string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Name != "" {
		b.WriteString(" for ")
		b.WriteString(strconv.Quote(e.Name))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for common error patterns

// MissingCompileStep reports that an authoring definition reached the loader
// at run time with no capture sink available: the artifact was never compiled.
func MissingCompileStep(name string) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindMissingCompileStep,
		Name:   name,
		Detail: "authoring definition at run time; run the compile pipeline",
	}
}

// IsMissingCompileStep reports whether err is a MissingCompileStep error.
func IsMissingCompileStep(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Phase == PhaseLoad && e.Kind == KindMissingCompileStep
}

// InvalidDefinition creates a validation error for the named definition
func InvalidDefinition(name, detail string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindInvalidDefinition,
		Name:   name,
		Detail: detail,
	}
}

// FieldMissing creates a missing field error
func FieldMissing(name, field string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindFieldMissing,
		Name:   name,
		Detail: fmt.Sprintf("required field %q not set", field),
	}
}

// Shape creates a structural shape error for serialized definitions
func Shape(detail string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindShape,
		Detail: detail,
	}
}

// Unsupported creates an unsupported value error
func Unsupported(name, what string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindUnsupported,
		Name:   name,
		Detail: what,
	}
}

// Wrap wraps an existing error with phase and kind context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
