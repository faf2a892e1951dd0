package ingest

import "context"

// Gate is a bounded-admission throttle for scrape-bearing item tasks.
// At most capacity tasks hold a slot at once; waiters are admitted in
// arrival order as running tasks release. Once admitted a task runs to
// completion; the gate offers no priority and no revocation.
type Gate struct {
	slots chan struct{}
}

// NewGate creates a gate admitting at most capacity concurrent tasks.
// A capacity below 1 is coerced to 1.
func NewGate(capacity int) *Gate {
	if capacity < 1 {
		capacity = 1
	}
	return &Gate{slots: make(chan struct{}, capacity)}
}

// Admit blocks until a slot is free or the context is done.
func (g *Gate) Admit(ctx context.Context) error {
	select {
	case g.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release frees a previously admitted slot.
func (g *Gate) Release() {
	<-g.slots
}

// Capacity returns the maximum number of concurrently admitted tasks.
func (g *Gate) Capacity() int {
	return cap(g.slots)
}
