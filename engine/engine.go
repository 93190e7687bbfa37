package engine

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"
)

// Config holds configuration for engine creation
type Config struct {
	// MemoryLimitPages sets the maximum memory per instance in pages (64KB each).
	// 0 means the wazero default (65536 pages = 4GB).
	MemoryLimitPages uint32
}

// Engine wraps a wazero runtime with the two host operations the loader
// needs: compile bytes to a module, and instantiate a module with an
// optional import object.
type Engine struct {
	runtime wazero.Runtime
	envMu   sync.Mutex
	envDone map[string]hostModule
}

// hostModule records what a namespace was registered with, so a later
// registration of the same namespace with different functions is a detectable
// conflict rather than a silent link against the wrong environment.
type hostModule struct {
	envPtr uintptr
	fns    map[string]uintptr
}

// New creates an engine with default configuration.
func New(ctx context.Context) (*Engine, error) {
	return NewWithConfig(ctx, nil)
}

// NewWithConfig creates an engine with custom configuration.
func NewWithConfig(ctx context.Context, cfg *Config) (*Engine, error) {
	runtimeCfg := wazero.NewRuntimeConfig()
	if cfg != nil && cfg.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}

	runtime := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)
	return &Engine{
		runtime: runtime,
		envDone: make(map[string]hostModule),
	}, nil
}

// Compile compiles raw wasm bytes into a module. Engine errors are returned
// verbatim; the loader does not wrap them.
func (e *Engine) Compile(ctx context.Context, raw []byte) (wazero.CompiledModule, error) {
	Logger().Debug("compiling module", zap.Int("bytes", len(raw)))
	return e.runtime.CompileModule(ctx, raw)
}

// Instantiate constructs a fresh anonymous instance from a compiled module.
//
// When imports is non-nil, each top-level key is registered as a host module
// whose exports are the Go functions in the inner map, before the guest is
// instantiated. When imports is nil no host module is touched at all; a
// guest expecting an environment then fails to link and that error reaches
// the caller unchanged.
//
// The wasm start section still runs, but exported entry points such as
// _start are not invoked; callers drive exports directly.
func (e *Engine) Instantiate(ctx context.Context, compiled wazero.CompiledModule, imports map[string]map[string]any) (api.Module, error) {
	for ns, funcs := range imports {
		if err := e.registerEnv(ctx, ns, funcs); err != nil {
			return nil, err
		}
	}

	cfg := wazero.NewModuleConfig().WithName("").WithStartFunctions()
	return e.runtime.InstantiateModule(ctx, compiled, cfg)
}

// registerEnv instantiates the named host module once per engine. Safe for
// concurrent calls. Re-registering a namespace with the same environment is
// a no-op so one definition can be instantiated many times; re-registering
// it with a different function set is an error, because wazero resolves
// imports per runtime and the later environment would never be invoked.
func (e *Engine) registerEnv(ctx context.Context, name string, funcs map[string]any) error {
	e.envMu.Lock()
	defer e.envMu.Unlock()

	if prev, ok := e.envDone[name]; ok {
		if prev.envPtr == reflect.ValueOf(funcs).Pointer() || sameFuncs(prev.fns, funcs) {
			return nil
		}
		return fmt.Errorf("host module %q already registered with a different function set", name)
	}

	builder := e.runtime.NewHostModuleBuilder(name)

	// deterministic registration order
	exports := make([]string, 0, len(funcs))
	for export := range funcs {
		exports = append(exports, export)
	}
	sort.Strings(exports)

	for _, export := range exports {
		fn := funcs[export]
		if fn == nil || reflect.TypeOf(fn).Kind() != reflect.Func {
			return fmt.Errorf("host export %s.%s: %T is not a function", name, export, fn)
		}
		builder = builder.NewFunctionBuilder().WithFunc(fn).Export(export)
	}

	if _, err := builder.Instantiate(ctx); err != nil {
		return fmt.Errorf("register host module %q: %w", name, err)
	}

	Logger().Debug("registered host module",
		zap.String("namespace", name),
		zap.Int("exports", len(exports)))

	fns := make(map[string]uintptr, len(exports))
	for _, export := range exports {
		fns[export] = reflect.ValueOf(funcs[export]).Pointer()
	}
	e.envDone[name] = hostModule{
		envPtr: reflect.ValueOf(funcs).Pointer(),
		fns:    fns,
	}
	return nil
}

// sameFuncs reports whether funcs carries exactly the functions a namespace
// was first registered with, by export name and function identity.
func sameFuncs(prev map[string]uintptr, funcs map[string]any) bool {
	if len(prev) != len(funcs) {
		return false
	}
	for export, fn := range funcs {
		ptr, ok := prev[export]
		if !ok || fn == nil || reflect.TypeOf(fn).Kind() != reflect.Func {
			return false
		}
		if reflect.ValueOf(fn).Pointer() != ptr {
			return false
		}
	}
	return true
}

// Close releases the underlying wazero runtime. All instances produced by
// this engine become unusable.
func (e *Engine) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}
