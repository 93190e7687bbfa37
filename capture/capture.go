package capture

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/wasm-embed/definition"
)

// Sink collects authoring definitions during the build-time evaluation pass.
// It is handed to the loader explicitly; at ordinary run time no sink exists
// and the loader fails instead of silently continuing.
type Sink struct {
	mu   sync.Mutex
	defs []*definition.Authoring
	log  *zap.Logger
}

// Option configures a Sink.
type Option func(*Sink)

// WithLogger sets the sink's logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Sink) { s.log = log }
}

// NewSink creates an empty capture sink.
func NewSink(opts ...Option) *Sink {
	s := &Sink{log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add registers an authoring definition for external compilation.
// Registration order is call-site evaluation order.
func (s *Sink) Add(def *definition.Authoring) {
	s.mu.Lock()
	s.defs = append(s.defs, def)
	s.mu.Unlock()

	s.log.Debug("captured definition",
		zap.String("name", def.Name),
		zap.String("kind", string(def.Kind)),
		zap.Stringer("output", def.Output),
		zap.Stringer("mode", def.Mode))
}

// Definitions returns a snapshot of the registered definitions in capture
// order, for the compile pipeline to drain.
func (s *Sink) Definitions() []*definition.Authoring {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*definition.Authoring, len(s.defs))
	copy(out, s.defs)
	return out
}

// Len reports how many definitions have been captured.
func (s *Sink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.defs)
}

// Signal is the control-flow error returned when the loader hands a
// definition to a capture sink. It halts the authoring call path so the
// compile pipeline can recover the call site; it is never seen by users of
// a compiled artifact.
type Signal struct {
	// Name identifies the captured definition.
	Name string
}

func (s *Signal) Error() string {
	return fmt.Sprintf("definition %q captured for compilation", s.Name)
}
