package wasmembed

import (
	"context"
	"sync"

	"github.com/wippyai/wasm-embed/definition"
	"github.com/wippyai/wasm-embed/loader"
)

var defaultLoader struct {
	once sync.Once
	l    *loader.Loader
	err  error
}

// Load binds a definition through a process-wide default loader and returns
// its accessor. This is the entry point generated call sites invoke; the
// shared engine behind it is created on first use and lives for the process.
//
// The default loader carries no capture sink, so an authoring definition
// reaching Load fails with MissingCompileStep. Build tooling that needs
// capture constructs its own loader.Loader with loader.WithSink.
func Load(ctx context.Context, def definition.Definition, opts ...loader.BindOption) (*loader.Accessor, error) {
	defaultLoader.once.Do(func() {
		defaultLoader.l, defaultLoader.err = loader.New(ctx)
	})
	if defaultLoader.err != nil {
		return nil, defaultLoader.err
	}
	return defaultLoader.l.Bind(def, opts...)
}
