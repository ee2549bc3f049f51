package textshape

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/anydraw"
)

func goFont() anydraw.FontData {
	return anydraw.FontData{Data: goregular.TTF}
}

func TestShapeBasicRun(t *testing.T) {
	s := NewShaper()
	run, err := s.Shape(goFont(), "Hello", 16)
	if err != nil {
		t.Fatalf("Shape() error = %v", err)
	}
	if len(run.Glyphs) == 0 {
		t.Fatal("Shape() produced no glyphs")
	}
	if run.Size != 16 {
		t.Errorf("run.Size = %v, want 16", run.Size)
	}
	if run.Glyphs[0].X != 0 {
		t.Errorf("first glyph X = %v, want 0", run.Glyphs[0].X)
	}
	for i := 1; i < len(run.Glyphs); i++ {
		if run.Glyphs[i].X <= run.Glyphs[i-1].X {
			t.Errorf("glyph %d X = %v, not past glyph %d X = %v",
				i, run.Glyphs[i].X, i-1, run.Glyphs[i-1].X)
		}
	}
}

func TestShapeEmptyText(t *testing.T) {
	s := NewShaper()
	run, err := s.Shape(goFont(), "", 16)
	if err != nil {
		t.Fatalf("Shape(\"\") error = %v", err)
	}
	if !run.IsEmpty() {
		t.Errorf("Shape(\"\") glyphs = %d, want 0", len(run.Glyphs))
	}
}

func TestShapeEmptyFont(t *testing.T) {
	s := NewShaper()
	if _, err := s.Shape(anydraw.FontData{}, "x", 16); err == nil {
		t.Fatal("Shape with empty font data succeeded")
	}
}

func TestAdvance(t *testing.T) {
	s := NewShaper()
	adv, err := s.Advance(goFont(), "Hello", 16)
	if err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	if adv <= 0 {
		t.Fatalf("Advance(\"Hello\") = %v, want > 0", adv)
	}

	run, err := s.Shape(goFont(), "Hello", 16)
	if err != nil {
		t.Fatalf("Shape() error = %v", err)
	}
	last := run.Glyphs[len(run.Glyphs)-1]
	if adv <= last.X {
		t.Errorf("Advance() = %v, not past last glyph origin %v", adv, last.X)
	}

	wider, err := s.Advance(goFont(), "Hello world", 16)
	if err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	if wider <= adv {
		t.Errorf("Advance(longer text) = %v, want > %v", wider, adv)
	}

	zero, err := s.Advance(goFont(), "", 16)
	if err != nil || zero != 0 {
		t.Errorf("Advance(\"\") = %v, %v, want 0, nil", zero, err)
	}
}

func TestAdvanceScalesWithSize(t *testing.T) {
	s := NewShaper()
	small, err := s.Advance(goFont(), "m", 10)
	if err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	big, err := s.Advance(goFont(), "m", 40)
	if err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	if big <= small {
		t.Errorf("Advance at size 40 = %v, want > advance at size 10 = %v", big, small)
	}
}

func TestFontCacheReuse(t *testing.T) {
	s := NewShaper()
	data := goFont()
	f1, err := s.font(data.Data)
	if err != nil {
		t.Fatalf("font() error = %v", err)
	}
	f2, err := s.font(data.Data)
	if err != nil {
		t.Fatalf("font() error = %v", err)
	}
	if f1 != f2 {
		t.Error("second parse of the same bytes returned a different font")
	}

	s.ClearCache()
	f3, err := s.font(data.Data)
	if err != nil {
		t.Fatalf("font() after ClearCache error = %v", err)
	}
	if f3 == nil {
		t.Fatal("font() after ClearCache returned nil")
	}
}

func TestShapedRunRenders(t *testing.T) {
	s := NewShaper()
	run, err := s.Shape(goFont(), "Hi", 24)
	if err != nil {
		t.Fatalf("Shape() error = %v", err)
	}
	// Shift the baseline into view; shaping positions glyphs at y=0.
	for i := range run.Glyphs {
		run.Glyphs[i].Y += 30
	}

	scene := anydraw.NewScene()
	scene.DrawGlyphRun(run, anydraw.Solid(anydraw.Black))
	rec := scene.Finish()

	if rec.IsEmpty() {
		t.Fatal("recording with a glyph run is empty")
	}
}
