package gpucanvas

import (
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/anydraw"
	"github.com/gogpu/anydraw/softraster"
)

// TextureCreator creates GPU textures from premultiplied RGBA8 pixels.
// The returned texture is opaque to this package; capabilities are
// discovered by interface assertion.
type TextureCreator interface {
	NewTextureFromRGBA(width, height int, data []byte) (any, error)
}

// TextureDrawer draws textures onto the window surface.
type TextureDrawer interface {
	TextureCreator() TextureCreator
	DrawTexture(tex any, x, y float32) error
}

// TextureUpdater is implemented by textures that support in-place pixel
// upload; without it, the texture is recreated on every frame.
type TextureUpdater interface {
	UpdateData(data []byte) error
}

// textureDestroyer matches the Destroy signature of GPU texture types.
type textureDestroyer interface {
	Destroy()
}

// SurfaceHandle is what this backend requires from a window handle: a
// surface size, the host's GPU device, and a way to draw textures onto
// the surface.
type SurfaceHandle interface {
	anydraw.WindowHandle
	DeviceProvider() gpucontext.DeviceProvider
	TextureDrawer() TextureDrawer
}

// Window is the gpucanvas anydraw.WindowRenderer. Each frame is
// CPU-rasterized, uploaded to a GPU texture and drawn full-surface.
type Window struct {
	mu     sync.Mutex
	state  windowState
	handle SurfaceHandle

	provider gpucontext.DeviceProvider
	drawer   TextureDrawer

	raster anydraw.ImageRenderer

	width, height int
	frame         *image.RGBA
	texture       any
	oldTexture    any // awaiting deferred destruction after resize
}

type windowState uint8

const (
	stateUnbound windowState = iota
	stateActive
	stateSuspended
	stateDestroyed
)

// NewWindow creates an unbound window renderer rasterizing with the
// softraster backend.
func NewWindow() *Window {
	return &Window{raster: softraster.NewRenderer()}
}

// SetRasterizer replaces the CPU rasterizer used for frame content. Must
// be called before Resume.
func (w *Window) SetRasterizer(r anydraw.ImageRenderer) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if r != nil {
		w.raster = r
	}
}

// Format returns the pixel format of uploaded frame textures.
func (w *Window) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Resume binds the renderer to handle, which must implement
// SurfaceHandle. After a Suspend, passing nil rebinds the retained
// handle.
func (w *Window) Resume(handle anydraw.WindowHandle) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case stateDestroyed:
		return anydraw.ErrDestroyed
	case stateActive:
		if handle == nil || handle == anydraw.WindowHandle(w.handle) {
			return nil
		}
	}

	var surface SurfaceHandle
	if handle == nil {
		if w.handle == nil {
			return anydraw.ErrNotBound
		}
		surface = w.handle
	} else {
		s, ok := handle.(SurfaceHandle)
		if !ok {
			return &anydraw.ResourceFault{
				Op:  "resume",
				Err: fmt.Errorf("%w: handle does not implement gpucanvas.SurfaceHandle", anydraw.ErrInvalidHandle),
			}
		}
		surface = s
	}

	provider := surface.DeviceProvider()
	drawer := surface.TextureDrawer()
	if provider == nil || drawer == nil {
		return &anydraw.ResourceFault{
			Op:  "resume",
			Err: fmt.Errorf("%w: handle has no device provider or texture drawer", anydraw.ErrInvalidHandle),
		}
	}

	w.handle = surface
	w.provider = provider
	w.drawer = drawer
	w.width, w.height = surface.SurfaceSize()
	w.state = stateActive
	anydraw.Logger().Debug("gpu canvas resumed",
		"width", w.width, "height", w.height,
		"device", provider.Device() != nil)
	return nil
}

// Render rasterizes rec, uploads the frame and draws it to the surface.
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

	if hw, hh := w.handle.SurfaceSize(); hw > 0 && hh > 0 {
		w.width, w.height = hw, hh
	}
	if w.width <= 0 || w.height <= 0 {
		return anydraw.ErrInvalidDimensions
	}

	resized := w.frame == nil ||
		w.frame.Bounds().Dx() != w.width || w.frame.Bounds().Dy() != w.height
	if resized {
		w.frame = image.NewRGBA(image.Rect(0, 0, w.width, w.height))
		// Keep the old texture alive until the replacement upload has
		// finished; the GPU may still read it from in-flight frames.
		if w.texture != nil {
			w.destroyOld()
			w.oldTexture = w.texture
			w.texture = nil
		}
	}

	if err := w.raster.RenderInto(rec, w.frame); err != nil {
		return err
	}
	return w.uploadAndDraw()
}

func (w *Window) uploadAndDraw() error {
	if w.texture == nil {
		creator := w.drawer.TextureCreator()
		if creator == nil {
			return &anydraw.ResourceFault{
				Op:  "upload",
				Err: fmt.Errorf("%w: drawer has no texture creator", anydraw.ErrInvalidHandle),
			}
		}
		tex, err := creator.NewTextureFromRGBA(w.width, w.height, w.frame.Pix)
		if err != nil {
			return &anydraw.ResourceFault{Op: "upload", Transient: true, Err: err}
		}
		// Frame pixels are premultiplied; hosts that distinguish blend
		// pipelines need to know.
		if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(true)
		}
		w.texture = tex
		// Upload completion means prior GPU work has drained; the
		// deferred texture is safe to free now.
		w.destroyOld()
	} else if updater, ok := w.texture.(TextureUpdater); ok {
		if err := updater.UpdateData(w.frame.Pix); err != nil {
			return &anydraw.ResourceFault{Op: "upload", Transient: true, Err: err}
		}
	} else {
		// No in-place update support; recreate next frame.
		w.oldTexture = w.texture
		w.texture = nil
		return w.uploadAndDraw()
	}

	if err := w.drawer.DrawTexture(w.texture, 0, 0); err != nil {
		return &anydraw.ResourceFault{Op: "present", Transient: true, Err: err}
	}
	return nil
}

func (w *Window) destroyOld() {
	if w.oldTexture != nil {
		if d, ok := w.oldTexture.(textureDestroyer); ok {
			d.Destroy()
		}
		w.oldTexture = nil
	}
}

func (w *Window) destroyTextures() {
	w.destroyOld()
	if w.texture != nil {
		if d, ok := w.texture.(textureDestroyer); ok {
			d.Destroy()
		}
		w.texture = nil
	}
}

// Resize notes a new surface size; buffers and textures are reallocated
// lazily on the next Render.
func (w *Window) Resize(width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == stateDestroyed {
		return
	}
	w.width, w.height = width, height
}

// Suspend releases GPU textures and the frame buffer, keeping the handle
// for a later Resume.
func (w *Window) Suspend() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.state {
	case stateDestroyed:
		return anydraw.ErrDestroyed
	case stateUnbound, stateSuspended:
		return nil
	}
	w.destroyTextures()
	w.frame = nil
	w.drawer = nil
	w.provider = nil
	w.state = stateSuspended
	return nil
}

// Destroy releases everything. Idempotent.
func (w *Window) Destroy() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == stateDestroyed {
		return nil
	}
	w.destroyTextures()
	w.frame = nil
	w.drawer = nil
	w.provider = nil
	w.handle = nil
	w.state = stateDestroyed
	return nil
}

// Active reports whether the renderer is bound and not suspended.
func (w *Window) Active() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state == stateActive
}
