package wasmembed

import (
	"bytes"
	"context"
	"testing"

	"github.com/wippyai/wasm-embed/codec"
	"github.com/wippyai/wasm-embed/definition"
	"github.com/wippyai/wasm-embed/errors"
	"github.com/wippyai/wasm-embed/internal/testwasm"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	raw := testwasm.Add()

	acc, err := Load(ctx, &definition.Compiled{
		T: definition.OutputBytes,
		S: true,
		D: codec.Encode(raw),
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	art, err := acc.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !bytes.Equal(art.Bytes, raw) {
		t.Errorf("decoded bytes differ: %x", art.Bytes)
	}
}

func TestLoadAuthoringFails(t *testing.T) {
	ctx := context.Background()

	_, err := Load(ctx, &definition.Authoring{
		Name:    "uncompiled",
		Output:  definition.OutputBytes,
		Mode:    definition.ModeSync,
		Kind:    definition.KindWat,
		Code:    "(module)",
		Exports: map[string]definition.Signature{},
	})
	if !errors.IsMissingCompileStep(err) {
		t.Fatalf("expected MissingCompileStep, got %v", err)
	}
}
