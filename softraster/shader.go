package softraster

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/anydraw"
)

// shader evaluates a paint at a device-space pixel center, returning a
// non-premultiplied color. Paints are defined in the local space of the
// command they were recorded with, so shaders carry the inverse of the
// command transform.
type shader interface {
	at(x, y float64) anydraw.RGBA
}

// newShader compiles a paint plus its command transform into a shader.
// The paint was validated at record time; unknown types still fail here
// because recordings can in principle come from other producers.
func newShader(paint anydraw.Paint, transform anydraw.Matrix) (shader, error) {
	inv := transform.Invert()
	switch p := paint.(type) {
	case anydraw.SolidPaint:
		return solidShader{color: p.Color}, nil
	case *anydraw.LinearGradientPaint:
		return newLinearShader(p, inv), nil
	case *anydraw.RadialGradientPaint:
		return newRadialShader(p, inv), nil
	case *anydraw.SweepGradientPaint:
		return newSweepShader(p, inv), nil
	case *anydraw.ImagePaint:
		return newImageShader(p, inv), nil
	case *anydraw.CustomPaint:
		// This backend recognizes no custom paints; report the gap rather
		// than drawing something else.
		return nil, fmt.Errorf("%w: custom paint %T", anydraw.ErrUnsupported, p.Value)
	default:
		return nil, fmt.Errorf("%w: paint type %T", anydraw.ErrUnsupported, paint)
	}
}

type solidShader struct {
	color anydraw.RGBA
}

func (s solidShader) at(x, y float64) anydraw.RGBA {
	return s.color
}

// applyExtend maps an unbounded gradient parameter into [0, 1].
func applyExtend(t float64, mode anydraw.ExtendMode) float64 {
	switch mode {
	case anydraw.ExtendRepeat:
		t -= math.Floor(t)
		return t
	case anydraw.ExtendReflect:
		t = math.Mod(math.Abs(t), 2)
		if t > 1 {
			t = 2 - t
		}
		return t
	default: // pad
		if t < 0 {
			return 0
		}
		if t > 1 {
			return 1
		}
		return t
	}
}

// sampleStops evaluates a sorted stop list at t in [0, 1].
func sampleStops(stops []anydraw.GradientStop, t float64) anydraw.RGBA {
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			lo, hi := stops[i-1], stops[i]
			span := hi.Offset - lo.Offset
			if span <= 0 {
				return hi.Color
			}
			return lo.Color.Lerp(hi.Color, (t-lo.Offset)/span)
		}
	}
	return last.Color
}

type linearShader struct {
	inv    anydraw.Matrix
	start  anydraw.Point
	dx, dy float64 // gradient axis
	lenSq  float64
	stops  []anydraw.GradientStop
	extend anydraw.ExtendMode
}

func newLinearShader(p *anydraw.LinearGradientPaint, inv anydraw.Matrix) *linearShader {
	dx := p.End.X - p.Start.X
	dy := p.End.Y - p.Start.Y
	return &linearShader{
		inv:    inv,
		start:  p.Start,
		dx:     dx,
		dy:     dy,
		lenSq:  dx*dx + dy*dy,
		stops:  anydraw.SortStops(p.Stops),
		extend: p.Extend,
	}
}

func (s *linearShader) at(x, y float64) anydraw.RGBA {
	lx, ly := s.inv.TransformPoint(x, y)
	if s.lenSq == 0 {
		return s.stops[0].Color
	}
	// Project onto the gradient axis.
	t := ((lx-s.start.X)*s.dx + (ly-s.start.Y)*s.dy) / s.lenSq
	return sampleStops(s.stops, applyExtend(t, s.extend))
}

type radialShader struct {
	inv      anydraw.Matrix
	center   anydraw.Point
	focus    anydraw.Point
	r0, r1   float64
	focal    bool
	stops    []anydraw.GradientStop
	extend   anydraw.ExtendMode
	fallback anydraw.RGBA
}

func newRadialShader(p *anydraw.RadialGradientPaint, inv anydraw.Matrix) *radialShader {
	stops := anydraw.SortStops(p.Stops)
	return &radialShader{
		inv:      inv,
		center:   p.Center,
		focus:    p.Focus,
		r0:       p.StartRadius,
		r1:       p.EndRadius,
		focal:    p.Focus != p.Center,
		stops:    stops,
		extend:   p.Extend,
		fallback: stops[len(stops)-1].Color,
	}
}

func (s *radialShader) at(x, y float64) anydraw.RGBA {
	lx, ly := s.inv.TransformPoint(x, y)
	if s.r1 <= s.r0 {
		return s.fallback
	}

	if !s.focal {
		d := math.Hypot(lx-s.center.X, ly-s.center.Y)
		t := (d - s.r0) / (s.r1 - s.r0)
		return sampleStops(s.stops, applyExtend(t, s.extend))
	}

	// Focal gradient: cast a ray from the focus through the point and
	// find where it exits the end circle; the parameter scales distance
	// along that ray.
	dx, dy := lx-s.focus.X, ly-s.focus.Y
	dist := math.Hypot(dx, dy)
	if dist < 1e-12 {
		return sampleStops(s.stops, applyExtend(-s.r0/(s.r1-s.r0), s.extend))
	}
	fx, fy := s.focus.X-s.center.X, s.focus.Y-s.center.Y
	// Solve |f + u*d - c|^2 = r1^2 for u > 0 with unit ray direction.
	ux, uy := dx/dist, dy/dist
	b := ux*fx + uy*fy
	c := fx*fx + fy*fy - s.r1*s.r1
	disc := b*b - c
	if disc < 0 {
		// Focus outside the end circle; undefined region.
		return s.fallback
	}
	exit := -b + math.Sqrt(disc)
	if exit <= s.r0 {
		return s.fallback
	}
	t := (dist - s.r0) / (exit - s.r0)
	return sampleStops(s.stops, applyExtend(t, s.extend))
}

type sweepShader struct {
	inv        anydraw.Matrix
	center     anydraw.Point
	start, end float64
	stops      []anydraw.GradientStop
	extend     anydraw.ExtendMode
}

func newSweepShader(p *anydraw.SweepGradientPaint, inv anydraw.Matrix) *sweepShader {
	return &sweepShader{
		inv:    inv,
		center: p.Center,
		start:  p.StartAngle,
		end:    p.EndAngle,
		stops:  anydraw.SortStops(p.Stops),
		extend: p.Extend,
	}
}

func (s *sweepShader) at(x, y float64) anydraw.RGBA {
	lx, ly := s.inv.TransformPoint(x, y)
	// Record-time validation guarantees a positive span for recordings
	// produced by Scene; guard anyway for foreign producers.
	span := s.end - s.start
	if span <= 0 {
		return s.stops[0].Color
	}
	angle := math.Atan2(ly-s.center.Y, lx-s.center.X)
	// Normalize relative to the start angle into [0, 2*pi).
	rel := math.Mod(angle-s.start, 2*math.Pi)
	if rel < 0 {
		rel += 2 * math.Pi
	}
	return sampleStops(s.stops, applyExtend(rel/span, s.extend))
}

type imageShader struct {
	inv    anydraw.Matrix // device space to image pixel space
	img    image.Image
	bounds image.Rectangle
}

func newImageShader(p *anydraw.ImagePaint, invTransform anydraw.Matrix) *imageShader {
	// Paint transform maps image space to local space; compose its
	// inverse after the command inverse to go device -> image.
	return &imageShader{
		inv:    p.Transform.Invert().Multiply(invTransform),
		img:    p.Image,
		bounds: p.Image.Bounds(),
	}
}

func (s *imageShader) at(x, y float64) anydraw.RGBA {
	ix, iy := s.inv.TransformPoint(x, y)
	return bilinearSample(s.img, s.bounds, ix, iy)
}

// bilinearSample samples an image at a fractional pixel position with
// edge clamping.
func bilinearSample(img image.Image, bounds image.Rectangle, x, y float64) anydraw.RGBA {
	x -= 0.5
	y -= 0.5
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	fx := x - float64(x0)
	fy := y - float64(y0)

	c00 := texel(img, bounds, x0, y0)
	c10 := texel(img, bounds, x0+1, y0)
	c01 := texel(img, bounds, x0, y0+1)
	c11 := texel(img, bounds, x0+1, y0+1)

	top := c00.Lerp(c10, fx)
	bot := c01.Lerp(c11, fx)
	return top.Lerp(bot, fy)
}

func texel(img image.Image, bounds image.Rectangle, x, y int) anydraw.RGBA {
	x = clampInt(x, bounds.Min.X, bounds.Max.X-1)
	y = clampInt(y, bounds.Min.Y, bounds.Max.Y-1)
	return anydraw.FromColor(img.At(x, y))
}
