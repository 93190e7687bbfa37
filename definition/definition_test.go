package definition

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/wippyai/wasm-embed/codec"
	"github.com/wippyai/wasm-embed/errors"
)

func validAuthoring() *Authoring {
	return &Authoring{
		Name:   "fast-hash",
		Output: OutputInstance,
		Mode:   ModeSync,
		Kind:   KindClangC,
		Code:   "int hash(int x) { return x * 2654435761u; }",
		Exports: map[string]Signature{
			"hash": MustSignature("func(x: u32) -> u32"),
		},
		Imports: "env",
	}
}

func TestAuthoringValidate(t *testing.T) {
	if err := validAuthoring().Validate(); err != nil {
		t.Fatalf("valid definition rejected: %v", err)
	}

	tests := []struct {
		name     string
		mutate   func(*Authoring)
		wantKind errors.Kind
	}{
		{"missing_name", func(a *Authoring) { a.Name = "" }, errors.KindFieldMissing},
		{"missing_code", func(a *Authoring) { a.Code = "" }, errors.KindFieldMissing},
		{"missing_exports", func(a *Authoring) { a.Exports = nil }, errors.KindFieldMissing},
		{"bad_output", func(a *Authoring) { a.Output = OutputType(9) }, errors.KindUnsupported},
		{"bad_kind", func(a *Authoring) { a.Kind = "zig" }, errors.KindUnsupported},
		{"custom_without_runner", func(a *Authoring) { a.Kind = KindCustom }, errors.KindFieldMissing},
		{"runner_without_custom", func(a *Authoring) {
			a.Runner = func(context.Context, *Authoring, string) ([]byte, error) { return nil, nil }
		}, errors.KindInvalidDefinition},
		{"imports_on_bytes", func(a *Authoring) { a.Output = OutputBytes }, errors.KindInvalidDefinition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAuthoring()
			tt.mutate(a)
			err := a.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			e, ok := err.(*errors.Error)
			if !ok {
				t.Fatalf("expected *errors.Error, got %T", err)
			}
			if e.Kind != tt.wantKind {
				t.Errorf("kind = %s, want %s", e.Kind, tt.wantKind)
			}
		})
	}
}

func TestCompiledValidate(t *testing.T) {
	c := &Compiled{T: OutputBytes, S: true, D: codec.Encode([]byte{0, 1})}
	if err := c.Validate(); err != nil {
		t.Fatalf("valid compiled rejected: %v", err)
	}

	if err := (&Compiled{T: OutputType(7), D: "AA=="}).Validate(); err == nil {
		t.Error("expected error for bad output tag")
	}
	if err := (&Compiled{T: OutputBytes}).Validate(); err == nil {
		t.Error("expected error for empty payload")
	}
}

func TestCompiledMode(t *testing.T) {
	if got := (&Compiled{S: true}).Mode(); got != ModeSync {
		t.Errorf("S=true mode = %s, want sync", got)
	}
	if got := (&Compiled{S: false}).Mode(); got != ModeAsync {
		t.Errorf("S=false mode = %s, want async", got)
	}
}

func TestFromAuthoring(t *testing.T) {
	a := validAuthoring()
	a.Mode = ModeAsync
	wasm := []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}

	c := FromAuthoring(a, wasm)
	if c.T != OutputInstance {
		t.Errorf("T = %s, want instance", c.T)
	}
	if c.S {
		t.Error("async authoring produced S=true")
	}
	if c.E != "env" {
		t.Errorf("E = %q, want env", c.E)
	}
	got, err := codec.Decode(c.D)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if string(got) != string(wasm) {
		t.Errorf("payload round trip changed bytes: %x", got)
	}
}

func TestCompiledWireForm(t *testing.T) {
	c := &Compiled{T: OutputModule, S: true, D: "AGFzbQEAAAA="}
	raw, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	s := string(raw)
	for _, key := range []string{`"t"`, `"s"`, `"d"`} {
		if !strings.Contains(s, key) {
			t.Errorf("wire form missing %s: %s", key, s)
		}
	}
	if strings.Contains(s, `"e"`) {
		t.Errorf("unset e must be omitted: %s", s)
	}
}

func TestDecodeCompiled(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		c, err := DecodeCompiled([]byte(`{"t":2,"s":false,"d":"AGFzbQEAAAA=","e":"env"}`))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if c.T != OutputInstance || c.S || c.E != "env" {
			t.Errorf("unexpected tags: %+v", c)
		}
	})

	t.Run("unknown_key", func(t *testing.T) {
		_, err := DecodeCompiled([]byte(`{"t":0,"s":true,"d":"AA==","code":"int x;"}`))
		if err == nil {
			t.Fatal("expected error for unknown key")
		}
	})

	t.Run("authoring_shaped", func(t *testing.T) {
		_, err := DecodeCompiled([]byte(`{"name":"x","code":"int x;"}`))
		if err == nil {
			t.Fatal("expected error for payload without d")
		}
		e, ok := err.(*errors.Error)
		if !ok || e.Kind != errors.KindShape {
			t.Errorf("expected shape error, got %v", err)
		}
	})
}

func TestIsCompiledPayload(t *testing.T) {
	if !IsCompiledPayload([]byte(`{"t":0,"s":true,"d":"AA=="}`)) {
		t.Error("payload with d not detected as compiled")
	}
	if IsCompiledPayload([]byte(`{"name":"x"}`)) {
		t.Error("payload without d detected as compiled")
	}
	if IsCompiledPayload([]byte(`not json`)) {
		t.Error("invalid json detected as compiled")
	}
}

func TestParseSignature(t *testing.T) {
	t.Run("params_and_result", func(t *testing.T) {
		sig, err := ParseSignature("func(a: u32, b: u32) -> u32")
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if len(sig.Params) != 2 || len(sig.Results) != 1 {
			t.Errorf("got %d params, %d results", len(sig.Params), len(sig.Results))
		}
	})

	t.Run("no_result", func(t *testing.T) {
		sig, err := ParseSignature("func(v: u32)")
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if len(sig.Results) != 0 {
			t.Errorf("expected no results, got %d", len(sig.Results))
		}
	})

	t.Run("empty", func(t *testing.T) {
		sig, err := ParseSignature("func()")
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if len(sig.Params) != 0 || len(sig.Results) != 0 {
			t.Errorf("expected empty signature, got %+v", sig)
		}
	})

	t.Run("tuple_result", func(t *testing.T) {
		sig, err := ParseSignature("func(input: string) -> (u32, u32)")
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if len(sig.Results) != 2 {
			t.Errorf("expected 2 results, got %d", len(sig.Results))
		}
	})

	t.Run("malformed", func(t *testing.T) {
		for _, s := range []string{"", "add(u32)", "func(a: u32 -> u32"} {
			if _, err := ParseSignature(s); err == nil {
				t.Errorf("expected error for %q", s)
			}
		}
	})
}
