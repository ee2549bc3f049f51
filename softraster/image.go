package softraster

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/anydraw"
)

// drawImage composites src scaled into dst rect under the command
// transform, masked by the active clip. Bilinear sampling; identity-scale
// blits still go through the same path for uniformity.
func drawImage(target *image.RGBA, src image.Image, dst anydraw.Rect, transform anydraw.Matrix, clip []uint8, w, h int) error {
	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 {
		return nil
	}

	// Map source pixels into the destination rect, then through the
	// command transform.
	sx := dst.Width() / float64(sb.Dx())
	sy := dst.Height() / float64(sb.Dy())
	toLocal := anydraw.Translate(dst.MinX, dst.MinY).
		Multiply(anydraw.Scale(sx, sy)).
		Multiply(anydraw.Translate(-float64(sb.Min.X), -float64(sb.Min.Y)))
	m := transform.Multiply(toLocal)

	aff := f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}

	var opts *draw.Options
	if clip != nil {
		opts = &draw.Options{
			DstMask: &image.Alpha{
				Pix:    clip,
				Stride: w,
				Rect:   image.Rect(0, 0, w, h),
			},
		}
	}
	draw.BiLinear.Transform(target, aff, src, sb, draw.Over, opts)
	return nil
}
