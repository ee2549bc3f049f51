package anydraw

// Glyph is a positioned glyph within a glyph run. X and Y are the glyph
// origin in the run's local coordinate space, at the baseline.
type Glyph struct {
	// ID is the glyph index within the font.
	ID uint32

	// X is the horizontal origin.
	X float64

	// Y is the vertical origin (baseline).
	Y float64
}

// FontData carries raw font bytes plus a collection index. anydraw treats
// fonts as opaque: resolution of glyph outlines and metrics is the
// responsibility of the consuming backend (or an external text stack such
// as the textshape package).
type FontData struct {
	// Data is the raw font file contents (TTF/OTF).
	Data []byte

	// Index selects a face within a font collection. Zero for
	// single-face fonts.
	Index uint32
}

// GlyphRun is a sequence of positioned glyphs in one font at one size.
// Glyph outlines are treated as a specialized fill for anti-aliasing
// purposes.
type GlyphRun struct {
	// Font is the opaque font reference.
	Font FontData

	// Size is the font size in user units (pixels per em).
	Size float64

	// NormalizedCoords are variable-font axis coordinates in 2.14
	// normalized form. Empty for non-variable fonts. Carried opaquely
	// for the backend's text stack.
	NormalizedCoords []int16

	// Glyphs are the positioned glyphs, in drawing order.
	Glyphs []Glyph
}

// Clone creates a deep copy of the glyph run. Font data bytes are shared;
// fonts are treated as immutable.
func (r GlyphRun) Clone() GlyphRun {
	out := r
	if r.Glyphs != nil {
		out.Glyphs = make([]Glyph, len(r.Glyphs))
		copy(out.Glyphs, r.Glyphs)
	}
	if r.NormalizedCoords != nil {
		out.NormalizedCoords = make([]int16, len(r.NormalizedCoords))
		copy(out.NormalizedCoords, r.NormalizedCoords)
	}
	return out
}

// IsEmpty returns true if the run contains no glyphs.
func (r GlyphRun) IsEmpty() bool {
	return len(r.Glyphs) == 0
}
