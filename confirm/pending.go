package confirm

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Result is the outcome of one confirmation.
type Result int

const (
	// Undetermined means the dialog went away without an answer.
	Undetermined Result = iota
	Cancelled
	Confirmed
)

// Confirmed reports whether the user accepted. Undetermined counts as no.
func (r Result) Confirmed() bool {
	return r == Confirmed
}

// Decided separates an explicit answer from an undetermined one.
func (r Result) Decided() bool {
	return r != Undetermined
}

func (r Result) String() string {
	switch r {
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	default:
		return "undetermined"
	}
}

// Pending is a confirmation that completes at most once.
type Pending struct {
	ID      uuid.UUID
	Request Request

	once   sync.Once
	done   chan struct{}
	result Result
	err    error
}

func newPending(req Request) *Pending {
	return &Pending{
		ID:      uuid.New(),
		Request: req,
		done:    make(chan struct{}),
	}
}

// resolve records the first outcome and reports whether it was the one
// kept.
func (p *Pending) resolve(r Result, err error) bool {
	first := false
	p.once.Do(func() {
		p.result = r
		p.err = err
		close(p.done)
		first = true
	})
	return first
}

// Done is closed once the outcome is known.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the outcome is known or ctx ends. Ending ctx only
// stops the wait; the dialog stays up.
func (p *Pending) Wait(ctx context.Context) (Result, error) {
	select {
	case <-p.done:
		return p.result, p.err
	case <-ctx.Done():
		return Undetermined, ctx.Err()
	}
}

// Result returns the outcome without blocking. ok is false while the
// dialog is still open.
func (p *Pending) Result() (r Result, ok bool) {
	select {
	case <-p.done:
		return p.result, true
	default:
		return Undetermined, false
	}
}

// Err is the failure reported by the presenter, if any.
func (p *Pending) Err() error {
	select {
	case <-p.done:
		return p.err
	default:
		return nil
	}
}

// Then calls fn on its own goroutine after completion. UI updates from fn
// need fyne.Do.
func (p *Pending) Then(fn func(Result, error)) {
	go func() {
		<-p.done
		fn(p.result, p.err)
	}()
}
