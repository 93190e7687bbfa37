package definition

import (
	"context"
	"fmt"

	"github.com/wippyai/wasm-embed/codec"
	"github.com/wippyai/wasm-embed/errors"
)

// OutputType selects which artifact an accessor produces.
type OutputType uint8

const (
	OutputBytes OutputType = iota
	OutputModule
	OutputInstance
)

func (t OutputType) String() string {
	switch t {
	case OutputBytes:
		return "bytes"
	case OutputModule:
		return "module"
	case OutputInstance:
		return "instance"
	}
	return fmt.Sprintf("output(%d)", uint8(t))
}

func (t OutputType) valid() bool {
	return t <= OutputInstance
}

// Mode selects the execution contract of an accessor: a blocking call or a
// future-returning call.
type Mode uint8

const (
	ModeSync Mode = iota
	ModeAsync
)

func (m Mode) String() string {
	switch m {
	case ModeSync:
		return "sync"
	case ModeAsync:
		return "async"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// SourceKind identifies the compile backend for an authoring definition.
type SourceKind string

const (
	KindNativeC      SourceKind = "native-c"
	KindNativeCXX    SourceKind = "native-cxx"
	KindClangC       SourceKind = "clang-c"
	KindClangCXX     SourceKind = "clang-cxx"
	KindFreestanding SourceKind = "freestanding"
	KindWat          SourceKind = "wat"
	KindCustom       SourceKind = "custom"
	KindRust         SourceKind = "rust"
)

func (k SourceKind) valid() bool {
	switch k {
	case KindNativeC, KindNativeCXX, KindClangC, KindClangCXX,
		KindFreestanding, KindWat, KindCustom, KindRust:
		return true
	}
	return false
}

// Runner produces raw wasm bytes for a custom-backend definition. The
// compile pipeline invokes it with a scratch build directory it owns.
type Runner func(ctx context.Context, def *Authoring, buildDir string) ([]byte, error)

// CompileOptions carries backend configuration for an authoring definition.
// The loader never reads it; it exists for the compile pipeline.
type CompileOptions struct {
	// Defines are preprocessor definitions, NAME to value (value may be "").
	Defines map[string]string
	// IncludeDirs are extra include search paths.
	IncludeDirs []string
	// ExtraSources are additional source files compiled alongside Code.
	ExtraSources []string
	// Flags are raw compiler switches appended to the backend invocation.
	Flags []string
}

// Definition is one embeddable wasm unit, in exactly one of two shapes:
// *Authoring before the compile pipeline has run, *Compiled after. A
// definition never partially transitions between shapes.
type Definition interface {
	definition()
}

// Authoring is the pre-compilation shape: inline source plus compile
// configuration. It is constructed literally at a call site and fixed
// afterward.
type Authoring struct {
	// Name is unique within a build.
	Name string
	// Output and Mode describe the artifact the eventual accessor produces.
	Output OutputType
	Mode   Mode
	// Kind selects the compile backend.
	Kind SourceKind
	// Code is the inline source text.
	Code string
	// Options tunes the backend invocation.
	Options *CompileOptions
	// Runner replaces the backend when Kind is KindCustom.
	Runner Runner
	// Exports declares the expected export surface, keyed by export name.
	// Used for static shape checking only; never enforced at run time.
	Exports map[string]Signature
	// Imports names the environment namespace exposed to the instance.
	// Meaningful only when Output is OutputInstance.
	Imports string
}

func (*Authoring) definition() {}

// Validate checks the authoring contract: required fields present, known
// enum values, a Runner exactly when the backend is custom, and Imports only
// on instance-producing definitions.
func (a *Authoring) Validate() error {
	if a.Name == "" {
		return errors.FieldMissing("", "name")
	}
	if a.Code == "" {
		return errors.FieldMissing(a.Name, "code")
	}
	if !a.Output.valid() {
		return errors.Unsupported(a.Name, fmt.Sprintf("output type %s", a.Output))
	}
	if !a.Kind.valid() {
		return errors.Unsupported(a.Name, fmt.Sprintf("source kind %q", a.Kind))
	}
	if a.Kind == KindCustom && a.Runner == nil {
		return errors.FieldMissing(a.Name, "runner")
	}
	if a.Kind != KindCustom && a.Runner != nil {
		return errors.InvalidDefinition(a.Name, "runner requires custom source kind")
	}
	if a.Exports == nil {
		return errors.FieldMissing(a.Name, "exports")
	}
	if a.Imports != "" && a.Output != OutputInstance {
		return errors.InvalidDefinition(a.Name, "imports are meaningful only for instance output")
	}
	return nil
}

// Compiled is the post-compilation shape: the encoded binary plus the
// minimal tags the loader needs at run time. Field names match the wire
// form emitted into generated code.
type Compiled struct {
	// T is the output type tag.
	T OutputType `json:"t"`
	// S is true for sync mode.
	S bool `json:"s"`
	// D is the base64 encoding of the raw wasm bytes.
	D string `json:"d"`
	// E, when set, names the key under which an import object is exposed
	// at instantiation, conventionally "env".
	E string `json:"e,omitempty"`
}

func (*Compiled) definition() {}

// Mode returns the execution contract encoded in the S tag.
func (c *Compiled) Mode() Mode {
	if c.S {
		return ModeSync
	}
	return ModeAsync
}

// Validate checks the compiled contract.
func (c *Compiled) Validate() error {
	if !c.T.valid() {
		return errors.Unsupported("", fmt.Sprintf("output type %s", c.T))
	}
	if c.D == "" {
		return errors.FieldMissing("", "d")
	}
	return nil
}

// FromAuthoring builds the compiled shape the compile pipeline writes back
// to the call site once it has produced raw wasm bytes. Code, Options and
// Runner are deliberately dropped to keep the generated artifact small.
func FromAuthoring(a *Authoring, wasm []byte) *Compiled {
	return &Compiled{
		T: a.Output,
		S: a.Mode == ModeSync,
		D: codec.Encode(wasm),
		E: a.Imports,
	}
}
