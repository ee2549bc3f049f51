package anydraw

import (
	"errors"
	"fmt"
	"image"
	"sort"
)

// Paint represents the fill/stroke source for a drawing command: a solid
// color, a gradient, or an image sample. This is a sealed interface; only
// types in this package implement it.
//
// Paint values are immutable once recorded: the Scene stores the paint
// as-is and backends must not mutate it. Gradient builders return pointers
// for method chaining; finish configuring a gradient before recording it.
type Paint interface {
	// paintMarker is an unexported method that seals this interface.
	paintMarker()
}

// SolidPaint is a single solid color.
type SolidPaint struct {
	Color RGBA
}

func (SolidPaint) paintMarker() {}

// Solid creates a solid color paint.
func Solid(c RGBA) SolidPaint {
	return SolidPaint{Color: c}
}

// GradientStop defines a color stop in a gradient.
type GradientStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode uint8

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// LinearGradientPaint is a linear gradient between two points.
type LinearGradientPaint struct {
	Start  Point          // Start point of the gradient
	End    Point          // End point of the gradient
	Stops  []GradientStop // Color stops defining the gradient
	Extend ExtendMode     // How gradient extends beyond bounds
}

func (*LinearGradientPaint) paintMarker() {}

// LinearGradient creates a new linear gradient from (x0, y0) to (x1, y1).
func LinearGradient(x0, y0, x1, y1 float64) *LinearGradientPaint {
	return &LinearGradientPaint{
		Start:  Point{X: x0, Y: y0},
		End:    Point{X: x1, Y: y1},
		Extend: ExtendPad,
	}
}

// AddStop adds a color stop at the specified offset.
// Returns the gradient for method chaining.
func (g *LinearGradientPaint) AddStop(offset float64, c RGBA) *LinearGradientPaint {
	g.Stops = append(g.Stops, GradientStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets the extend mode for the gradient.
// Returns the gradient for method chaining.
func (g *LinearGradientPaint) SetExtend(mode ExtendMode) *LinearGradientPaint {
	g.Extend = mode
	return g
}

// RadialGradientPaint is a radial gradient. Colors radiate from Focus
// within the circle defined by Center and EndRadius.
type RadialGradientPaint struct {
	Center      Point          // Center of the gradient circle
	Focus       Point          // Focal point (can differ from center)
	StartRadius float64        // Inner radius where gradient begins (t=0)
	EndRadius   float64        // Outer radius where gradient ends (t=1)
	Stops       []GradientStop // Color stops defining the gradient
	Extend      ExtendMode     // How gradient extends beyond bounds
}

func (*RadialGradientPaint) paintMarker() {}

// RadialGradient creates a new radial gradient around (cx, cy).
// Focus defaults to the center.
func RadialGradient(cx, cy, startRadius, endRadius float64) *RadialGradientPaint {
	center := Point{X: cx, Y: cy}
	return &RadialGradientPaint{
		Center:      center,
		Focus:       center,
		StartRadius: startRadius,
		EndRadius:   endRadius,
		Extend:      ExtendPad,
	}
}

// SetFocus sets the focal point of the gradient.
// Returns the gradient for method chaining.
func (g *RadialGradientPaint) SetFocus(fx, fy float64) *RadialGradientPaint {
	g.Focus = Point{X: fx, Y: fy}
	return g
}

// AddStop adds a color stop at the specified offset.
// Returns the gradient for method chaining.
func (g *RadialGradientPaint) AddStop(offset float64, c RGBA) *RadialGradientPaint {
	g.Stops = append(g.Stops, GradientStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets the extend mode for the gradient.
// Returns the gradient for method chaining.
func (g *RadialGradientPaint) SetExtend(mode ExtendMode) *RadialGradientPaint {
	g.Extend = mode
	return g
}

// SweepGradientPaint is an angular (conic) gradient. Colors sweep from
// StartAngle to EndAngle around Center.
type SweepGradientPaint struct {
	Center     Point          // Center of the sweep
	StartAngle float64        // Start angle in radians
	EndAngle   float64        // End angle in radians
	Stops      []GradientStop // Color stops defining the gradient
	Extend     ExtendMode     // How gradient extends beyond bounds
}

func (*SweepGradientPaint) paintMarker() {}

// SweepGradient creates a new sweep (conic) gradient around (cx, cy).
// The gradient sweeps a full turn from startAngle by default.
func SweepGradient(cx, cy, startAngle float64) *SweepGradientPaint {
	const twoPi = 6.283185307179586
	return &SweepGradientPaint{
		Center:     Point{X: cx, Y: cy},
		StartAngle: startAngle,
		EndAngle:   startAngle + twoPi,
		Extend:     ExtendPad,
	}
}

// SetEndAngle sets the end angle of the sweep.
// Returns the gradient for method chaining.
func (g *SweepGradientPaint) SetEndAngle(endAngle float64) *SweepGradientPaint {
	g.EndAngle = endAngle
	return g
}

// AddStop adds a color stop at the specified offset.
// Returns the gradient for method chaining.
func (g *SweepGradientPaint) AddStop(offset float64, c RGBA) *SweepGradientPaint {
	g.Stops = append(g.Stops, GradientStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets the extend mode for the gradient.
// Returns the gradient for method chaining.
func (g *SweepGradientPaint) SetExtend(mode ExtendMode) *SweepGradientPaint {
	g.Extend = mode
	return g
}

// ImagePaint samples a previously decoded raster image. Transform maps
// image pixel coordinates into the local space of the painted geometry.
// Sampling quality (nearest/bilinear) is a backend concern.
type ImagePaint struct {
	Image     image.Image // Decoded source image
	Transform Matrix      // Image-space to local-space mapping
}

func (*ImagePaint) paintMarker() {}

// ImagePattern creates an image paint with an identity transform.
func ImagePattern(img image.Image) *ImagePaint {
	return &ImagePaint{Image: img, Transform: Identity()}
}

// CustomPaint carries a backend-specific paint extension. The value is
// opaque to the contract: a backend that recognizes it renders it, and a
// backend that does not fails the command with ErrUnsupported rather than
// silently downgrading.
type CustomPaint struct {
	Value any
}

func (*CustomPaint) paintMarker() {}

// Custom wraps a backend-specific paint value.
func Custom(value any) *CustomPaint {
	return &CustomPaint{Value: value}
}

// errInvalidPaint is the root cause for all paint validation failures.
var errInvalidPaint = errors.New("invalid paint")

// validatePaint checks a paint value at record time. Gradient producers
// must supply at least one stop with non-decreasing offsets in [0, 1];
// backends may additionally sort and clamp defensively, but producers must
// not rely on that.
func validatePaint(p Paint) error {
	switch paint := p.(type) {
	case nil:
		return fmt.Errorf("%w: nil paint", errInvalidPaint)
	case SolidPaint:
		return nil
	case *LinearGradientPaint:
		return validateStops(paint.Stops)
	case *RadialGradientPaint:
		if paint.StartRadius < 0 || paint.EndRadius < 0 {
			return fmt.Errorf("%w: negative gradient radius", errInvalidPaint)
		}
		return validateStops(paint.Stops)
	case *SweepGradientPaint:
		if !(paint.EndAngle > paint.StartAngle) {
			return fmt.Errorf("%w: sweep end angle %v not past start angle %v",
				errInvalidPaint, paint.EndAngle, paint.StartAngle)
		}
		return validateStops(paint.Stops)
	case *ImagePaint:
		if paint.Image == nil {
			return fmt.Errorf("%w: nil image", errInvalidPaint)
		}
		return nil
	case *CustomPaint:
		if paint.Value == nil {
			return fmt.Errorf("%w: nil custom paint value", errInvalidPaint)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown paint type %T", errInvalidPaint, p)
	}
}

// validateStops checks a gradient stop list.
func validateStops(stops []GradientStop) error {
	if len(stops) == 0 {
		return fmt.Errorf("%w: gradient has no color stops", errInvalidPaint)
	}
	prev := 0.0
	for i, s := range stops {
		if s.Offset < 0 || s.Offset > 1 || s.Offset != s.Offset {
			return fmt.Errorf("%w: stop %d offset %v outside [0, 1]", errInvalidPaint, i, s.Offset)
		}
		if s.Offset < prev {
			return fmt.Errorf("%w: stop %d offset %v decreases", errInvalidPaint, i, s.Offset)
		}
		prev = s.Offset
	}
	return nil
}

// SortStops returns a copy of stops sorted by offset. Backends use this
// to normalize stop lists before evaluation.
func SortStops(stops []GradientStop) []GradientStop {
	sorted := make([]GradientStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}
