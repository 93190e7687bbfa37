package loader

// Future is the deferred half of the accessor contract. A spawned future
// runs to completion: there is no cancellation and no timeout anywhere in
// the loader, so abandoning a future does not abort its work.
type Future struct {
	done chan struct{}
	art  Artifact
	err  error
}

// Await blocks until the future resolves and returns its result. It may be
// called any number of times from any goroutine.
func (f *Future) Await() (Artifact, error) {
	<-f.done
	return f.art, f.err
}

// Done returns a channel closed when the future has resolved, for use in
// select statements.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

func spawn(fn func() (Artifact, error)) *Future {
	f := &Future{done: make(chan struct{})}
	go func() {
		f.art, f.err = fn()
		close(f.done)
	}()
	return f
}

func resolved(art Artifact) *Future {
	f := &Future{done: make(chan struct{}), art: art}
	close(f.done)
	return f
}

func failed(err error) *Future {
	f := &Future{done: make(chan struct{}), err: err}
	close(f.done)
	return f
}
