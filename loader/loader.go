package loader

import (
	"context"

	"go.uber.org/zap"

	"github.com/wippyai/wasm-embed/capture"
	"github.com/wippyai/wasm-embed/definition"
	"github.com/wippyai/wasm-embed/engine"
	"github.com/wippyai/wasm-embed/errors"
)

// Loader is the runtime entry point for embedded wasm definitions. One
// loader owns one host engine; definitions bound through it share that
// engine but never share accessor caches.
type Loader struct {
	eng       *engine.Engine
	sink      *capture.Sink
	log       *zap.Logger
	ownEngine bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithSink injects the build-time capture sink. Only the build's evaluation
// pass sets this; ordinary runtimes leave it nil so uncompiled definitions
// fail loudly.
func WithSink(s *capture.Sink) Option {
	return func(l *Loader) { l.sink = s }
}

// WithEngine uses a caller-owned engine instead of creating one. The caller
// remains responsible for closing it.
func WithEngine(e *engine.Engine) Option {
	return func(l *Loader) { l.eng = e }
}

// WithLogger sets the loader's logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(l *Loader) { l.log = log }
}

// New creates a Loader, creating a default engine unless one is injected.
func New(ctx context.Context, opts ...Option) (*Loader, error) {
	l := &Loader{log: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}

	if l.eng == nil {
		eng, err := engine.New(ctx)
		if err != nil {
			return nil, err
		}
		l.eng = eng
		l.ownEngine = true
	}

	return l, nil
}

// Close releases the loader's engine if the loader created it.
func (l *Loader) Close(ctx context.Context) error {
	if !l.ownEngine {
		return nil
	}
	return l.eng.Close(ctx)
}

// BindOption configures one Bind call.
type BindOption func(*bindConfig)

type bindConfig struct {
	env map[string]any
}

// WithEnv supplies the environment value exposed to the instance under the
// definition's import key. It is read at instantiation time and is never
// part of the definition itself. Meaningful only for instance output.
func WithEnv(env map[string]any) BindOption {
	return func(c *bindConfig) { c.env = env }
}

// Bind is the single entry point generated call sites invoke.
//
// A compiled definition yields an accessor. An authoring definition is
// registered with the capture sink, when one exists, and Bind returns a
// *capture.Signal to halt the call path; with no sink the definition was
// never compiled and Bind fails with MissingCompileStep before touching the
// engine or any cache.
func (l *Loader) Bind(def definition.Definition, opts ...BindOption) (*Accessor, error) {
	var cfg bindConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	switch d := def.(type) {
	case *definition.Compiled:
		if err := d.Validate(); err != nil {
			return nil, err
		}
		l.log.Debug("bound compiled definition",
			zap.Stringer("output", d.T),
			zap.Stringer("mode", d.Mode()))
		return &Accessor{
			def: d,
			eng: l.eng,
			env: cfg.env,
			log: l.log,
		}, nil

	case *definition.Authoring:
		if l.sink != nil {
			if err := d.Validate(); err != nil {
				return nil, err
			}
			l.sink.Add(d)
			return nil, &capture.Signal{Name: d.Name}
		}
		return nil, errors.MissingCompileStep(d.Name)

	case nil:
		return nil, errors.Shape("nil definition")

	default:
		return nil, errors.Shape("unknown definition shape")
	}
}
