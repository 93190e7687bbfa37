package loader

import (
	"errors"
	"testing"

	"github.com/wippyai/wasm-embed/definition"
)

func TestFutureResolved(t *testing.T) {
	fut := resolved(Artifact{Kind: definition.OutputBytes, Bytes: []byte{1}})

	select {
	case <-fut.Done():
	default:
		t.Fatal("resolved future not done")
	}

	art, err := fut.Await()
	if err != nil {
		t.Fatalf("await: %v", err)
	}
	if len(art.Bytes) != 1 {
		t.Errorf("artifact lost: %+v", art)
	}
}

func TestFutureFailed(t *testing.T) {
	want := errors.New("boom")
	fut := failed(want)

	if _, err := fut.Await(); !errors.Is(err, want) {
		t.Errorf("await err = %v", err)
	}
}

func TestFutureSpawn(t *testing.T) {
	fut := spawn(func() (Artifact, error) {
		return Artifact{Kind: definition.OutputBytes, Bytes: []byte{7}}, nil
	})

	// Await from two goroutines; both must observe the same result
	done := make(chan Artifact, 2)
	for i := 0; i < 2; i++ {
		go func() {
			art, err := fut.Await()
			if err != nil {
				t.Error(err)
			}
			done <- art
		}()
	}
	a, b := <-done, <-done
	if a.Bytes[0] != 7 || b.Bytes[0] != 7 {
		t.Errorf("results differ: %v, %v", a, b)
	}
}

func TestMemoFirstWriteWins(t *testing.T) {
	var m memo[int]

	if _, ok := m.get(); ok {
		t.Fatal("empty cell reported set")
	}
	if got := m.put(1); got != 1 {
		t.Fatalf("first put returned %d", got)
	}
	if got := m.put(2); got != 1 {
		t.Errorf("second put overwrote cell: %d", got)
	}
	if v, ok := m.get(); !ok || v != 1 {
		t.Errorf("get = %d, %v", v, ok)
	}
}
