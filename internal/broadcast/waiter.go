package broadcast

import (
	"context"
	"sync"
)

// waiter is one entry of the correlation table.
//
// mu is held by Submit from broadcast until OnBroadcast returns, so a match
// that races the acknowledgement is delivered after it. failed is set when the
// broadcast itself fails; any later match is then discarded.
type waiter struct {
	mu       sync.Mutex
	ctx      context.Context
	hash     string
	handlers Handlers
	failed   bool

	done     chan struct{}
	doneOnce sync.Once
}

func newWaiter(ctx context.Context, hash string, h Handlers) *waiter {
	return &waiter{
		ctx:      ctx,
		hash:     hash,
		handlers: h,
		done:     make(chan struct{}),
	}
}

func (w *waiter) markDone() {
	w.doneOnce.Do(func() { close(w.done) })
}

// broadcast reports the node receipt. Callers hold w.mu.
func (w *waiter) broadcast(ack Acknowledgement) {
	if w.handlers.OnBroadcast != nil {
		w.handlers.OnBroadcast(w.ctx, ack)
	}
}

// finish delivers the matching inclusion event.
func (w *waiter) finish(ev InclusionEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()
	defer w.markDone()

	if w.failed {
		return
	}

	if w.handlers.OnNext != nil {
		w.handlers.OnNext(w.ctx, ev)
	}
	if w.handlers.OnComplete != nil {
		w.handlers.OnComplete(w.ctx)
	}
}

// fail delivers a terminal error.
func (w *waiter) fail(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	defer w.markDone()

	if w.failed {
		return
	}
	w.failed = true

	if w.handlers.OnError != nil {
		w.handlers.OnError(w.ctx, err)
	}
}
