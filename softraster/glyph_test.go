package softraster

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/anydraw"
)

func glyphID(t *testing.T, r rune) uint32 {
	t.Helper()
	f, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("parse goregular: %v", err)
	}
	var buf sfnt.Buffer
	gid, err := f.GlyphIndex(&buf, r)
	if err != nil {
		t.Fatalf("GlyphIndex(%q): %v", r, err)
	}
	if gid == 0 {
		t.Fatalf("GlyphIndex(%q) = 0, glyph missing", r)
	}
	return uint32(gid)
}

func TestGlyphRunOutline(t *testing.T) {
	run := anydraw.GlyphRun{
		Font: anydraw.FontData{Data: goregular.TTF},
		Size: 32,
		Glyphs: []anydraw.Glyph{
			{ID: glyphID(t, 'o'), X: 4, Y: 36},
		},
	}
	outline, err := glyphRunOutline(run)
	if err != nil {
		t.Fatalf("glyphRunOutline() error = %v", err)
	}
	if outline.IsEmpty() {
		t.Fatal("outline is empty for a visible glyph")
	}
	// The 'o' sits mostly above the baseline near the pen position,
	// allowing a little rounding overshoot.
	b := outline.Bounds()
	if b.MinY < 10 || b.MaxY > 40 {
		t.Errorf("outline vertical bounds = [%v, %v], want roughly [x-height, baseline]", b.MinY, b.MaxY)
	}
	if b.MinX < 3 {
		t.Errorf("outline MinX = %v, want >= pen x", b.MinX)
	}
}

func TestFontCacheReusesParse(t *testing.T) {
	a, err := parseFont(goregular.TTF)
	if err != nil {
		t.Fatalf("parseFont() error = %v", err)
	}
	b, err := parseFont(goregular.TTF)
	if err != nil {
		t.Fatalf("parseFont() error = %v", err)
	}
	if a != b {
		t.Error("parseFont returned distinct fonts for the same bytes")
	}
}

func TestParseFontEmpty(t *testing.T) {
	if _, err := parseFont(nil); err == nil {
		t.Error("parseFont(nil) succeeded")
	}
}

func TestRenderGlyphRun(t *testing.T) {
	run := anydraw.GlyphRun{
		Font: anydraw.FontData{Data: goregular.TTF},
		Size: 24,
		Glyphs: []anydraw.Glyph{
			{ID: glyphID(t, 'H'), X: 2, Y: 26},
		},
	}
	rec := renderScene(t, 32, 32, func(s *anydraw.Scene) {
		s.DrawGlyphRun(run, anydraw.Solid(anydraw.Black))
	})
	img, err := NewRenderer().Render(rec, 32, 32)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	opaque := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 200 {
			opaque++
		}
	}
	if opaque < 20 {
		t.Errorf("glyph render produced %d opaque pixels, want a visible glyph", opaque)
	}
}
