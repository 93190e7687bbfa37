package loader

import "sync"

// memo is a single-initialization cache cell. The first put wins; later
// puts return the stored value and discard their argument. Reads after a
// successful put always observe the same value.
type memo[T any] struct {
	mu sync.Mutex
	ok bool
	v  T
}

func (m *memo[T]) get() (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.v, m.ok
}

func (m *memo[T]) put(v T) T {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ok {
		m.v = v
		m.ok = true
	}
	return m.v
}
