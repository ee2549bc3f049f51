package softraster

import (
	"image"
	"sync/atomic"

	"github.com/gogpu/anydraw"
)

// maxDim is the largest supported render target edge, matching common GPU
// texture limits so recordings validated here stay portable.
const maxDim = 1 << 14

// Renderer is the softraster anydraw.ImageRenderer. The zero value is
// ready to use; NewRenderer exists for symmetry with other backends.
//
// Overlapping Render calls from multiple goroutines are not queued: the
// second caller gets anydraw.ErrBusy.
type Renderer struct {
	busy atomic.Bool
}

// NewRenderer creates a CPU image renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render rasterizes rec into a new premultiplied RGBA buffer.
func (r *Renderer) Render(rec *anydraw.Recording, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, anydraw.ErrInvalidDimensions
	}
	if width > maxDim || height > maxDim {
		return nil, anydraw.ErrSizeLimit
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := r.RenderInto(rec, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// RenderInto rasterizes rec into dst, clearing it to transparent first.
func (r *Renderer) RenderInto(rec *anydraw.Recording, dst *image.RGBA) error {
	if dst == nil || dst.Bounds().Empty() {
		return anydraw.ErrInvalidDimensions
	}
	b := dst.Bounds()
	if b.Dx() > maxDim || b.Dy() > maxDim {
		return anydraw.ErrSizeLimit
	}
	if !r.busy.CompareAndSwap(false, true) {
		return anydraw.ErrBusy
	}
	defer r.busy.Store(false)

	// Work on a zero-based view so device coordinates equal pixel
	// coordinates regardless of the sub-image offset.
	view := &image.RGBA{
		Pix:    dst.Pix[dst.PixOffset(b.Min.X, b.Min.Y):],
		Stride: dst.Stride,
		Rect:   image.Rect(0, 0, b.Dx(), b.Dy()),
	}
	// Clear row by row; the view may be a sub-image whose stride covers
	// pixels outside its bounds.
	for y := 0; y < b.Dy(); y++ {
		row := view.Pix[view.PixOffset(0, y) : view.PixOffset(0, y)+b.Dx()*4]
		for i := range row {
			row[i] = 0
		}
	}

	anydraw.Logger().Debug("software render",
		"width", b.Dx(), "height", b.Dy(),
		"commands", len(rec.Commands()))

	return rec.Replay(newPainter(view))
}
