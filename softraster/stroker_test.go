package softraster

import (
	"testing"

	"github.com/gogpu/anydraw"
)

func strokeMask(t *testing.T, path *anydraw.Path, stroke anydraw.Stroke, w, h int) []uint8 {
	t.Helper()
	contours := strokeOutline(path, stroke)
	contours = transformContours(contours, anydraw.Identity())
	return rasterize(contours, anydraw.FillRuleNonZero, w, h)
}

func TestStrokeHorizontalLine(t *testing.T) {
	// Width-2 butt stroke along y=5 covers y in [4, 6).
	line := anydraw.NewPath().MoveTo(2, 5).LineTo(8, 5)
	mask := strokeMask(t, line, anydraw.DefaultStroke().WithWidth(2), 10, 10)

	covered := []struct{ x, y int }{{2, 4}, {5, 4}, {7, 5}, {5, 5}}
	for _, p := range covered {
		if got := mask[p.y*10+p.x]; got != 255 {
			t.Errorf("coverage at (%d,%d) = %d, want 255", p.x, p.y, got)
		}
	}
	empty := []struct{ x, y int }{{5, 3}, {5, 6}, {1, 5}, {8, 5}, {0, 0}}
	for _, p := range empty {
		if got := mask[p.y*10+p.x]; got != 0 {
			t.Errorf("coverage at (%d,%d) = %d, want 0", p.x, p.y, got)
		}
	}
}

func TestStrokeSquareCapExtends(t *testing.T) {
	line := anydraw.NewPath().MoveTo(4, 5).LineTo(6, 5)
	butt := strokeMask(t, line, anydraw.DefaultStroke().WithWidth(2), 10, 10)
	square := strokeMask(t, line,
		anydraw.DefaultStroke().WithWidth(2).WithCap(anydraw.LineCapSquare), 10, 10)

	// The square cap adds half a width beyond each endpoint.
	if butt[5*10+3] != 0 {
		t.Errorf("butt cap coverage at (3,5) = %d, want 0", butt[5*10+3])
	}
	if square[5*10+3] != 255 {
		t.Errorf("square cap coverage at (3,5) = %d, want 255", square[5*10+3])
	}
}

func TestStrokeRoundCapCoversEndpoint(t *testing.T) {
	stroke := anydraw.DefaultStroke().WithWidth(4).WithCap(anydraw.LineCapRound)

	// Both ends, both segment directions: each semicircle must bulge away
	// from the stroke body, reaching 2 units past the endpoint.
	lines := map[string]*anydraw.Path{
		"rightward": anydraw.NewPath().MoveTo(4, 5).LineTo(6, 5),
		"leftward":  anydraw.NewPath().MoveTo(6, 5).LineTo(4, 5),
	}
	for name, line := range lines {
		mask := strokeMask(t, line, stroke, 10, 10)
		if got := mask[5*10+2]; got == 0 {
			t.Errorf("%s: round cap coverage at (2,5) = %d, want > 0", name, got)
		}
		if got := mask[5*10+7]; got == 0 {
			t.Errorf("%s: round cap coverage at (7,5) = %d, want > 0", name, got)
		}
		// No bulge back over the body beyond the stroke half width.
		if got := mask[1*10+5]; got != 0 {
			t.Errorf("%s: coverage at (5,1) = %d, want 0", name, got)
		}
		if got := mask[8*10+5]; got != 0 {
			t.Errorf("%s: coverage at (5,8) = %d, want 0", name, got)
		}
	}
}

func TestStrokeClosedRectHasNoCaps(t *testing.T) {
	rect := anydraw.RectPath(anydraw.RectWH(3, 3, 4, 4))
	mask := strokeMask(t, rect, anydraw.DefaultStroke().WithWidth(2), 10, 10)

	// Interior stays empty, border is covered, corners joined.
	if got := mask[5*10+5]; got != 0 {
		t.Errorf("interior coverage = %d, want 0", got)
	}
	if got := mask[3*10+5]; got != 255 {
		t.Errorf("top border coverage = %d, want 255", got)
	}
	if got := mask[3*10+3]; got == 0 {
		t.Error("corner coverage = 0, want joined corner")
	}
}

func TestStrokeDashPattern(t *testing.T) {
	line := anydraw.NewPath().MoveTo(0, 5).LineTo(10, 5)
	stroke := anydraw.DefaultStroke().WithWidth(2).WithDash([]float64{2, 2}, 0)
	mask := strokeMask(t, line, stroke, 10, 10)

	// On: [0,2) and [4,6) and [8,10); off between.
	on := []int{0, 1, 4, 5, 8, 9}
	off := []int{2, 3, 6, 7}
	for _, x := range on {
		if got := mask[5*10+x]; got != 255 {
			t.Errorf("dash-on coverage at x=%d is %d, want 255", x, got)
		}
	}
	for _, x := range off {
		if got := mask[5*10+x]; got != 0 {
			t.Errorf("dash-off coverage at x=%d is %d, want 0", x, got)
		}
	}
}

func TestStrokeDashOffsetShiftsPattern(t *testing.T) {
	line := anydraw.NewPath().MoveTo(0, 5).LineTo(10, 5)
	stroke := anydraw.DefaultStroke().WithWidth(2).WithDash([]float64{2, 2}, 2)
	mask := strokeMask(t, line, stroke, 10, 10)

	// Offset 2 starts the line in the off phase.
	if got := mask[5*10+0]; got != 0 {
		t.Errorf("coverage at x=0 with offset = %d, want 0", got)
	}
	if got := mask[5*10+2]; got != 255 {
		t.Errorf("coverage at x=2 with offset = %d, want 255", got)
	}
}

func TestStrokeScalesWithTransform(t *testing.T) {
	// A width-1 stroke under a 4x transform must cover 4 device pixels.
	line := anydraw.NewPath().MoveTo(0, 1).LineTo(2, 1)
	contours := strokeOutline(line, anydraw.DefaultStroke())
	contours = transformContours(contours, anydraw.Scale(4, 4))
	mask := rasterize(contours, anydraw.FillRuleNonZero, 10, 10)

	// Stroke band is y in [2, 6) at x=4.
	if got := mask[3*10+4]; got != 255 {
		t.Errorf("coverage inside scaled stroke = %d, want 255", got)
	}
	if got := mask[7*10+4]; got != 0 {
		t.Errorf("coverage outside scaled stroke = %d, want 0", got)
	}
}
