package anydraw

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the render contracts.
//
// Usage faults on the recording side (unbalanced push/pop, recording after
// Finish) are programmer errors and panic instead; see Scene. The sentinels
// below cover the render-target lifecycle and resource failures, which a
// correct program can still encounter at runtime.
var (
	// ErrNotBound is returned by WindowRenderer.Render before the first
	// successful Resume.
	ErrNotBound = errors.New("anydraw: window renderer is not bound to a surface")

	// ErrSuspended is returned when Render is called on a suspended
	// window renderer. Resume must be called first.
	ErrSuspended = errors.New("anydraw: window renderer is suspended")

	// ErrDestroyed is returned by every operation after Destroy.
	ErrDestroyed = errors.New("anydraw: renderer is destroyed")

	// ErrBusy is returned when a render is issued while another render
	// against the same target is still in flight, for backends that fail
	// rather than queue. Retryable.
	ErrBusy = errors.New("anydraw: render already in progress")

	// ErrInvalidDimensions is returned for non-positive render dimensions.
	ErrInvalidDimensions = errors.New("anydraw: invalid dimensions")

	// ErrSizeLimit is returned when requested dimensions exceed the
	// backend's capability.
	ErrSizeLimit = errors.New("anydraw: size exceeds backend limit")

	// ErrInvalidHandle is returned by Resume when the window handle does
	// not provide what the backend requires. Permanent.
	ErrInvalidHandle = errors.New("anydraw: invalid window handle")

	// ErrDeviceLost indicates the backing graphics device was lost.
	// Transient: the caller may suspend, resume and retry.
	ErrDeviceLost = errors.New("anydraw: graphics device lost")

	// ErrUnsupported is returned when a backend cannot render a requested
	// feature (paint type, blend mode) and does not emulate it. Backends
	// must report the gap rather than silently downgrade.
	ErrUnsupported = errors.New("anydraw: unsupported feature")
)

// ResourceFault wraps a resource-level failure (surface or context
// creation, allocation, device loss) with enough detail for the caller to
// decide on a retry policy. anydraw itself never retries.
type ResourceFault struct {
	// Op names the operation that failed, e.g. "resume" or "present".
	Op string

	// Transient reports whether the underlying cause is expected to be
	// retryable (device loss, surface outdated) as opposed to permanent
	// (invalid handle, size limit).
	Transient bool

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (f *ResourceFault) Error() string {
	return fmt.Sprintf("anydraw: %s: %v", f.Op, f.Err)
}

// Unwrap returns the underlying cause for errors.Is/errors.As.
func (f *ResourceFault) Unwrap() error {
	return f.Err
}

// IsTransient reports whether err is a resource fault the caller may
// reasonably retry (after suspend/resume for device loss). Non-fault
// errors report false.
func IsTransient(err error) bool {
	var fault *ResourceFault
	if errors.As(err, &fault) {
		return fault.Transient
	}
	return errors.Is(err, ErrDeviceLost) || errors.Is(err, ErrBusy)
}

// usageFault panics with a descriptive message. Recording-side contract
// violations are programmer errors: continuing would produce semantically
// undefined output for every downstream consumer, so they are fatal and
// surfaced at the call site rather than at render time.
func usageFault(msg string) {
	panic("anydraw: " + msg)
}
