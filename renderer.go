package anydraw

import "image"

// ImageRenderer renders a recording into an in-memory pixel buffer.
//
// Output is premultiplied RGBA, 8 bits per channel, which is what
// image.RGBA stores. The target starts fully transparent; callers wanting
// an opaque background record a full-surface fill first.
//
// Implementations must be safe for sequential reuse. Whether overlapping
// calls from multiple goroutines are serialized or rejected with ErrBusy
// is backend-defined and must be documented by the backend.
type ImageRenderer interface {
	// Render rasterizes rec into a new width x height buffer. Returns
	// ErrInvalidDimensions for non-positive sizes and ErrSizeLimit when
	// the backend cannot allocate a target that large.
	Render(rec *Recording, width, height int) (*image.RGBA, error)

	// RenderInto rasterizes rec into dst, reusing its allocation. The
	// buffer is cleared to transparent first. dst must be non-nil and
	// non-empty.
	RenderInto(rec *Recording, dst *image.RGBA) error
}

// WindowHandle is the minimal surface description a WindowRenderer binds
// to. Concrete backends type-assert richer capabilities from it (a pixel
// presenter, a GPU device provider); Resume fails with ErrInvalidHandle
// when the handle lacks what the backend needs.
type WindowHandle interface {
	// SurfaceSize returns the current surface size in pixels.
	SurfaceSize() (width, height int)
}

// WindowRenderer renders recordings repeatedly to a platform window
// surface across its lifecycle.
//
// The lifecycle is a state machine: unbound until the first Resume, then
// active; Suspend releases surface resources while keeping the handle so
// a later Resume can rebind without the caller passing it again; Destroy
// is terminal. Render outside the active state fails with ErrNotBound,
// ErrSuspended or ErrDestroyed rather than crashing, since window system
// races make such calls hard for callers to exclude entirely.
type WindowRenderer interface {
	// Resume binds the renderer to handle, or rebinds to the retained
	// handle when called with nil after a Suspend. Idempotent while
	// active with the same handle.
	Resume(handle WindowHandle) error

	// Render rasterizes rec and presents it to the surface.
	Render(rec *Recording) error

	// Resize notes a new surface size. Cheap and callable at any
	// frequency; backends reallocate lazily on the next Render.
	Resize(width, height int)

	// Suspend releases surface resources, keeping the handle. The
	// renderer stops accepting Render until resumed. Idempotent.
	Suspend() error

	// Destroy releases everything. All later calls fail with
	// ErrDestroyed. Idempotent.
	Destroy() error

	// Active reports whether the renderer is bound and not suspended.
	Active() bool
}
