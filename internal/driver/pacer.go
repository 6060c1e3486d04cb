package driver

import (
	"sync"
	"time"
)

// Cancel revokes a pending frame request. Safe to call more than once
// and after the callback has fired.
type Cancel func()

// Pacer grants frame opportunities. A request is one-shot: the callback
// runs at most once, and must re-request to keep a loop going. A Pacer
// never runs two callbacks concurrently as long as the caller only
// re-requests from within the callback.
type Pacer interface {
	RequestFrame(fn func()) Cancel
}

// IntervalPacer grants frames on a fixed wall-clock interval.
type IntervalPacer struct {
	Interval time.Duration
}

// NewIntervalPacer returns a pacer targeting the given frames per second.
func NewIntervalPacer(fps int) *IntervalPacer {
	if fps <= 0 {
		fps = 60
	}
	return &IntervalPacer{Interval: time.Second / time.Duration(fps)}
}

// RequestFrame schedules fn to run once after the configured interval.
func (p *IntervalPacer) RequestFrame(fn func()) Cancel {
	t := time.AfterFunc(p.Interval, fn)
	return func() { t.Stop() }
}

// ManualPacer grants frames only when Fire is called. It holds at most
// one pending request; a new request replaces the previous one.
type ManualPacer struct {
	mu      sync.Mutex
	pending func()
	reqID   uint64
}

// RequestFrame records fn as the pending callback for the next Fire.
func (p *ManualPacer) RequestFrame(fn func()) Cancel {
	p.mu.Lock()
	p.pending = fn
	p.reqID++
	id := p.reqID
	p.mu.Unlock()
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.reqID == id {
			p.pending = nil
		}
	}
}

// Fire runs the pending callback, if any, and reports whether one ran.
func (p *ManualPacer) Fire() bool {
	p.mu.Lock()
	fn := p.pending
	p.pending = nil
	p.mu.Unlock()
	if fn == nil {
		return false
	}
	fn()
	return true
}

// Pending reports whether a frame request is waiting.
func (p *ManualPacer) Pending() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending != nil
}
