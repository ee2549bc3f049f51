package softraster

import (
	"image"
	"sync"

	"github.com/gogpu/anydraw"
)

// PresentTarget is the capability a window handle must provide for the
// softraster window renderer: accept a finished frame for display. The
// buffer is only valid for the duration of the call.
type PresentTarget interface {
	Present(frame *image.RGBA) error
}

// windowState tracks the renderer lifecycle.
type windowState uint8

const (
	stateUnbound windowState = iota
	stateActive
	stateSuspended
	stateDestroyed
)

// Window is the softraster anydraw.WindowRenderer. It rasterizes each
// frame on the CPU and hands the buffer to the handle's PresentTarget.
//
// Unlike the image renderer, concurrent Render calls are serialized by an
// internal mutex; window presentation is inherently ordered.
type Window struct {
	mu      sync.Mutex
	state   windowState
	handle  anydraw.WindowHandle
	present PresentTarget

	width, height int
	frame         *image.RGBA
	raster        Renderer
}

// NewWindow creates an unbound window renderer.
func NewWindow() *Window {
	return &Window{}
}

// Resume binds the renderer to handle. After a Suspend, passing nil
// rebinds to the retained handle. Resuming an already-active renderer
// with the same handle is a no-op.
func (w *Window) Resume(handle anydraw.WindowHandle) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case stateDestroyed:
		return anydraw.ErrDestroyed
	case stateActive:
		if handle == nil || handle == w.handle {
			return nil
		}
	}
	if handle == nil {
		handle = w.handle
	}
	if handle == nil {
		return anydraw.ErrNotBound
	}
	target, ok := handle.(PresentTarget)
	if !ok {
		return &anydraw.ResourceFault{
			Op:  "resume",
			Err: anydraw.ErrInvalidHandle,
		}
	}

	w.handle = handle
	w.present = target
	w.width, w.height = handle.SurfaceSize()
	w.state = stateActive
	anydraw.Logger().Debug("window renderer resumed",
		"width", w.width, "height", w.height)
	return nil
}

// Render rasterizes rec at the current surface size and presents it.
func (w *Window) Render(rec *anydraw.Recording) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case stateUnbound:
		return anydraw.ErrNotBound
	case stateSuspended:
		return anydraw.ErrSuspended
	case stateDestroyed:
		return anydraw.ErrDestroyed
	}

	// The surface may have changed size since the last Resize call;
	// poll the handle each frame.
	if hw, hh := w.handle.SurfaceSize(); hw > 0 && hh > 0 {
		w.width, w.height = hw, hh
	}
	if w.width <= 0 || w.height <= 0 {
		return anydraw.ErrInvalidDimensions
	}

	if w.frame == nil || w.frame.Bounds().Dx() != w.width || w.frame.Bounds().Dy() != w.height {
		w.frame = image.NewRGBA(image.Rect(0, 0, w.width, w.height))
	}
	if err := w.raster.RenderInto(rec, w.frame); err != nil {
		return err
	}
	if err := w.present.Present(w.frame); err != nil {
		return &anydraw.ResourceFault{Op: "present", Transient: true, Err: err}
	}
	return nil
}

// Resize notes a new surface size; the frame buffer is reallocated lazily
// on the next Render.
func (w *Window) Resize(width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == stateDestroyed {
		return
	}
	w.width, w.height = width, height
}

// Suspend drops the frame buffer and presentation target, keeping the
// handle so Resume(nil) can rebind.
func (w *Window) Suspend() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.state {
	case stateDestroyed:
		return anydraw.ErrDestroyed
	case stateUnbound, stateSuspended:
		return nil
	}
	w.state = stateSuspended
	w.frame = nil
	w.present = nil
	return nil
}

// Destroy releases everything. Idempotent; all later calls on the
// renderer fail with anydraw.ErrDestroyed.
func (w *Window) Destroy() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = stateDestroyed
	w.frame = nil
	w.present = nil
	w.handle = nil
	return nil
}

// Active reports whether the renderer is bound and not suspended.
func (w *Window) Active() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state == stateActive
}
