package driver

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"lifeloop/internal/core"
)

// State tracks where the driver is in its lifecycle.
type State int32

const (
	// StateIdle means the driver has not been started yet.
	StateIdle State = iota
	// StateRunning means a frame request is scheduled or executing.
	StateRunning
	// StateHalted means the loop has ended; there is no resume.
	StateHalted
)

// String returns a readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateHalted:
		return "halted"
	}
	return "unknown"
}

// ErrNotIdle is returned by Start when the driver was already started.
// A second Start never spawns a second loop.
var ErrNotIdle = errors.New("driver: not idle")

// ErrorPolicy decides what happens to the loop after a failed frame.
type ErrorPolicy int

const (
	// HaltOnError logs the failure and schedules no further frames.
	HaltOnError ErrorPolicy = iota
	// LogAndContinue logs the failure and keeps scheduling frames.
	LogAndContinue
)

// Option configures a Driver.
type Option func(*Driver)

// WithLogger routes frame failure logs to the provided logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.log = l
		}
	}
}

// WithErrorPolicy selects the loop's reaction to failed frames.
func WithErrorPolicy(p ErrorPolicy) Option {
	return func(d *Driver) { d.policy = p }
}

// WithMaxFrames halts the loop after n completed frames. Zero, the
// default, runs forever.
func WithMaxFrames(n uint64) Option {
	return func(d *Driver) { d.maxFrames = n }
}

// Driver runs an unbounded sequence of step, render, sink-write cycles,
// one per frame granted by its pacer. The engine is stepped only from
// within the frame callback, and pacer requests are one-shot, so no two
// cycles ever overlap.
type Driver struct {
	engine    core.Engine
	sink      Sink
	pacer     Pacer
	policy    ErrorPolicy
	maxFrames uint64
	log       *slog.Logger

	mu     sync.Mutex
	state  State
	cancel Cancel
	done   chan struct{}

	frames atomic.Uint64
}

// New constructs a Driver over the given engine, sink and pacer.
// The driver logs nowhere unless WithLogger is supplied.
func New(engine core.Engine, sink Sink, pacer Pacer, opts ...Option) *Driver {
	d := &Driver{
		engine: engine,
		sink:   sink,
		pacer:  pacer,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start registers the first frame request and returns immediately.
// It returns ErrNotIdle if the driver is running or halted.
func (d *Driver) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != StateIdle {
		return ErrNotIdle
	}
	d.state = StateRunning
	d.cancel = d.pacer.RequestFrame(d.onFrame)
	return nil
}

// Stop cancels any pending frame request and halts the loop. Idempotent.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StateHalted {
		return
	}
	d.state = StateHalted
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	close(d.done)
}

// Done returns a channel closed when the loop halts, whether through
// Stop, a frame failure under HaltOnError, or the max-frames cap.
func (d *Driver) Done() <-chan struct{} { return d.done }

// State reports the current lifecycle state.
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Frames returns the number of frames completed through the sink write.
func (d *Driver) Frames() uint64 { return d.frames.Load() }

// Frame performs exactly one cycle: step, then render, then sink write.
// The first rendered snapshot is always post-step; the engine's initial
// state is never displayed. Frame is exported so callers that schedule
// frames themselves can run single cycles without a pacer.
func (d *Driver) Frame() error {
	n := d.frames.Load() + 1
	if err := d.engine.Step(); err != nil {
		return &FrameError{Kind: StepFailure, Frame: n, Err: err}
	}
	snapshot, err := d.engine.Render()
	if err != nil {
		return &FrameError{Kind: RenderFailure, Frame: n, Err: err}
	}
	if err := d.sink.Replace(snapshot); err != nil {
		return &FrameError{Kind: SinkFailure, Frame: n, Err: err}
	}
	d.frames.Add(1)
	return nil
}

func (d *Driver) onFrame() {
	if err := d.Frame(); err != nil {
		var fe *FrameError
		if errors.As(err, &fe) {
			d.log.Error("frame failed",
				"frame", fe.Frame,
				"kind", fe.Kind,
				"err", fe.Err)
		} else {
			d.log.Error("frame failed", "err", err)
		}
		if d.policy == HaltOnError {
			d.halt()
			return
		}
	}
	if d.maxFrames > 0 && d.frames.Load() >= d.maxFrames {
		d.halt()
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != StateRunning {
		// Stop raced with this frame; do not re-register.
		return
	}
	d.cancel = d.pacer.RequestFrame(d.onFrame)
}

func (d *Driver) halt() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StateHalted {
		return
	}
	d.state = StateHalted
	d.cancel = nil
	close(d.done)
}
