package services

import (
	"context"
	"sync"
)

// fetchGroup serializes per-key background fetches with supersession: a
// newer fetch for the same key cancels the in-flight one. Unlike
// singleflight, late callers do not share the old result; they replace it.
type fetchGroup struct {
	mu       sync.Mutex
	inflight map[string]*fetchToken
}

type fetchToken struct {
	cancel context.CancelFunc
}

func newFetchGroup() *fetchGroup {
	return &fetchGroup{
		inflight: make(map[string]*fetchToken),
	}
}

// Begin registers a fetch for key and cancels the previous one. The
// returned context is cancelled when a newer fetch for the same key
// begins, or when the parent is done. Callers must call the returned
// done func when the fetch finishes.
func (g *fetchGroup) Begin(parent context.Context, key string) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)
	token := &fetchToken{cancel: cancel}

	g.mu.Lock()
	if prev, ok := g.inflight[key]; ok {
		prev.cancel()
	}
	g.inflight[key] = token
	g.mu.Unlock()

	done := func() {
		g.mu.Lock()
		if g.inflight[key] == token {
			delete(g.inflight, key)
		}
		g.mu.Unlock()
		cancel()
	}

	return ctx, done
}

// Cancel aborts the in-flight fetch for key, if any.
func (g *fetchGroup) Cancel(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if token, ok := g.inflight[key]; ok {
		token.cancel()
		delete(g.inflight, key)
	}
}
