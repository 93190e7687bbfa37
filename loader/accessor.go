package loader

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-embed/codec"
	"github.com/wippyai/wasm-embed/definition"
	"github.com/wippyai/wasm-embed/engine"
)

// Artifact is the tagged result of one accessor invocation. Exactly the
// field matching Kind is set.
type Artifact struct {
	Kind     definition.OutputType
	Bytes    []byte
	Module   wazero.CompiledModule
	Instance api.Module
}

// Accessor produces the declared artifact for one compiled definition.
//
// Decoded bytes and the compiled module are memoized in single-init cells:
// the first successful producer wins and the cell is read-only afterward.
// Instances are never memoized; instance output constructs a fresh instance
// on every invocation.
type Accessor struct {
	def *definition.Compiled
	eng *engine.Engine
	env map[string]any
	log *zap.Logger

	bytes  memo[[]byte]
	module memo[wazero.CompiledModule]
}

// Output reports which artifact kind this accessor produces.
func (a *Accessor) Output() definition.OutputType {
	return a.def.T
}

// Mode reports the execution contract this accessor was authored for.
func (a *Accessor) Mode() definition.Mode {
	return a.def.Mode()
}

// Get produces the artifact, blocking until the host engine completes. This
// is the sync half of the contract; generated call sites use it when the
// definition was authored with ModeSync.
func (a *Accessor) Get(ctx context.Context) (Artifact, error) {
	switch a.def.T {
	case definition.OutputModule:
		m, err := a.cachedModule(ctx)
		if err != nil {
			return Artifact{}, err
		}
		return Artifact{Kind: definition.OutputModule, Module: m}, nil

	case definition.OutputInstance:
		m, err := a.cachedModule(ctx)
		if err != nil {
			return Artifact{}, err
		}
		inst, err := a.instantiate(ctx, m)
		if err != nil {
			return Artifact{}, err
		}
		return Artifact{Kind: definition.OutputInstance, Instance: inst}, nil

	default:
		b, err := a.cachedBytes()
		if err != nil {
			return Artifact{}, err
		}
		return Artifact{Kind: definition.OutputBytes, Bytes: b}, nil
	}
}

// GetAsync produces the artifact through a Future. Decoded or memoized
// results resolve immediately; host engine work runs in a spawned goroutine
// that always runs to completion, with no cancellation. There is
// deliberately no deduplication of in-flight work: concurrent first calls
// each drive the engine independently and the first finished write wins the
// cache cell. Compiling identical bytes is deterministic, so the duplicates
// are equivalent; the cost is duplicated effort, not correctness.
func (a *Accessor) GetAsync(ctx context.Context) *Future {
	switch a.def.T {
	case definition.OutputModule:
		if m, ok := a.module.get(); ok {
			return resolved(Artifact{Kind: definition.OutputModule, Module: m})
		}
		return spawn(func() (Artifact, error) {
			m, err := a.cachedModule(ctx)
			if err != nil {
				return Artifact{}, err
			}
			return Artifact{Kind: definition.OutputModule, Module: m}, nil
		})

	case definition.OutputInstance:
		// With the module already cached, only instantiation is deferred.
		// Otherwise the spawned work compiles from bytes and caching the
		// module is its side effect, so later calls skip recompilation.
		return spawn(func() (Artifact, error) {
			m, err := a.cachedModule(ctx)
			if err != nil {
				return Artifact{}, err
			}
			inst, err := a.instantiate(ctx, m)
			if err != nil {
				return Artifact{}, err
			}
			return Artifact{Kind: definition.OutputInstance, Instance: inst}, nil
		})

	default:
		b, err := a.cachedBytes()
		if err != nil {
			return failed(err)
		}
		return resolved(Artifact{Kind: definition.OutputBytes, Bytes: b})
	}
}

// cachedBytes decodes the payload at most once.
func (a *Accessor) cachedBytes() ([]byte, error) {
	if b, ok := a.bytes.get(); ok {
		return b, nil
	}
	b, err := codec.Decode(a.def.D)
	if err != nil {
		return nil, err
	}
	return a.bytes.put(b), nil
}

// cachedModule compiles the decoded bytes at most once per winning call. A
// failed compile leaves the cell unset so a later call may retry.
func (a *Accessor) cachedModule(ctx context.Context) (wazero.CompiledModule, error) {
	if m, ok := a.module.get(); ok {
		return m, nil
	}
	b, err := a.cachedBytes()
	if err != nil {
		return nil, err
	}
	m, err := a.eng.Compile(ctx, b)
	if err != nil {
		return nil, err
	}
	a.log.Debug("compiled embedded module", zap.Int("bytes", len(b)))
	return a.module.put(m), nil
}

func (a *Accessor) instantiate(ctx context.Context, m wazero.CompiledModule) (api.Module, error) {
	return a.eng.Instantiate(ctx, m, codec.ImportObject(a.def.E, a.env))
}
