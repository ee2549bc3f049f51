package anydraw

import (
	"errors"
	"image"
	"testing"
)

func TestValidatePaint(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))

	valid := []struct {
		name  string
		paint Paint
	}{
		{"solid", Solid(Red)},
		{"linear", LinearGradient(0, 0, 1, 0).AddStop(0, Red).AddStop(1, Blue)},
		{"linear single stop", LinearGradient(0, 0, 1, 0).AddStop(0.5, Red)},
		{"radial", RadialGradient(5, 5, 0, 10).AddStop(0, White).AddStop(1, Black)},
		{"radial focal", RadialGradient(5, 5, 0, 10).SetFocus(3, 3).AddStop(0, White).AddStop(1, Black)},
		{"sweep", SweepGradient(5, 5, 0).AddStop(0, Red).AddStop(1, Green)},
		{"image", ImagePattern(img)},
		{"custom", Custom("checkerboard")},
	}
	for _, tc := range valid {
		if err := validatePaint(tc.paint); err != nil {
			t.Errorf("validatePaint(%s) = %v, want nil", tc.name, err)
		}
	}

	invalid := []struct {
		name  string
		paint Paint
	}{
		{"nil", nil},
		{"no stops", LinearGradient(0, 0, 1, 0)},
		{"offset above 1", LinearGradient(0, 0, 1, 0).AddStop(1.5, Red)},
		{"negative offset", LinearGradient(0, 0, 1, 0).AddStop(-0.1, Red)},
		{"decreasing offsets", LinearGradient(0, 0, 1, 0).AddStop(0.8, Red).AddStop(0.2, Blue)},
		{"negative radius", RadialGradient(0, 0, -1, 5).AddStop(0, Red)},
		{"nil image", &ImagePaint{Transform: Identity()}},
		{"nil custom value", &CustomPaint{}},
		{"reversed sweep", SweepGradient(5, 5, 1.0).SetEndAngle(0.5).AddStop(0, Red)},
		{"zero-span sweep", SweepGradient(5, 5, 1.0).SetEndAngle(1.0).AddStop(0, Red)},
	}
	for _, tc := range invalid {
		err := validatePaint(tc.paint)
		if !errors.Is(err, errInvalidPaint) {
			t.Errorf("validatePaint(%s) = %v, want invalid paint error", tc.name, err)
		}
	}
}

func TestSortStops(t *testing.T) {
	stops := []GradientStop{
		{Offset: 0.9, Color: Red},
		{Offset: 0.1, Color: Blue},
		{Offset: 0.5, Color: Green},
	}
	sorted := SortStops(stops)
	if sorted[0].Offset != 0.1 || sorted[1].Offset != 0.5 || sorted[2].Offset != 0.9 {
		t.Errorf("SortStops offsets = %v,%v,%v, want 0.1,0.5,0.9",
			sorted[0].Offset, sorted[1].Offset, sorted[2].Offset)
	}
	// The input must be untouched.
	if stops[0].Offset != 0.9 {
		t.Error("SortStops mutated its input")
	}
}

func TestSweepGradientDefaultsFullTurn(t *testing.T) {
	g := SweepGradient(0, 0, 1.0)
	if got := g.EndAngle - g.StartAngle; got < 6.28 || got > 6.29 {
		t.Errorf("default sweep span = %v, want 2*pi", got)
	}
}

func TestRadialGradientFocusDefaultsToCenter(t *testing.T) {
	g := RadialGradient(3, 4, 0, 10)
	if g.Focus != (Point{X: 3, Y: 4}) {
		t.Errorf("Focus = %+v, want center (3,4)", g.Focus)
	}
}
