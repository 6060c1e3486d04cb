package driver

import "fmt"

// FailureKind identifies which stage of a frame failed.
type FailureKind string

const (
	// StepFailure means the engine could not advance a generation.
	StepFailure FailureKind = "STEP"
	// RenderFailure means the engine could not produce a snapshot.
	RenderFailure FailureKind = "RENDER"
	// SinkFailure means the display target rejected the write.
	SinkFailure FailureKind = "SINK"
)

// FrameError wraps a failure from a single frame with the stage that
// failed and the 1-based index of the failing frame.
type FrameError struct {
	Kind  FailureKind
	Frame uint64
	Err   error
}

// Error implements the error interface.
func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d: %s failure: %v", e.Frame, e.Kind, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is and errors.As.
func (e *FrameError) Unwrap() error { return e.Err }
