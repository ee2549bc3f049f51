// Package textshape turns UTF-8 strings into anydraw glyph runs using
// HarfBuzz shaping from go-text/typesetting. Shaping resolves ligatures,
// kerning and complex-script reordering; the resulting run references the
// original font bytes so any backend can rasterize it.
//
// The package is deliberately small: one shaper, one Shape call. Callers
// needing full paragraph layout (line breaking, bidi segmentation) should
// split text into runs themselves and shape each run.
package textshape

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/anydraw"
)

// Shaper shapes text into positioned glyph runs.
//
// Shaper is safe for concurrent use. Parsed font.Font objects are cached
// (they are read-only); font.Face instances are created per call and
// HarfbuzzShaper instances are pooled, since neither is concurrent-safe.
type Shaper struct {
	shaperPool sync.Pool

	mu sync.RWMutex
	// fonts caches parsed fonts keyed by the identity of the font bytes;
	// anydraw font data is immutable by contract.
	fonts map[*byte]*font.Font
}

// NewShaper creates a shaper backed by go-text's HarfBuzz implementation.
func NewShaper() *Shaper {
	return &Shaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fonts: make(map[*byte]*font.Font),
	}
}

// Shape converts text into a glyph run at the given size, positioned
// left-to-right from origin (0, 0) on the baseline. The run shares the
// font bytes with fontData.
func (s *Shaper) Shape(fontData anydraw.FontData, text string, size float64) (anydraw.GlyphRun, error) {
	run := anydraw.GlyphRun{Font: fontData, Size: size}
	if text == "" {
		return run, nil
	}
	glyphs, _, err := s.shape(fontData, text, size)
	if err != nil {
		return run, err
	}
	run.Glyphs = glyphs
	return run, nil
}

// Advance returns the total horizontal advance of text at the given size,
// in user units.
func (s *Shaper) Advance(fontData anydraw.FontData, text string, size float64) (float64, error) {
	if text == "" {
		return 0, nil
	}
	_, pen, err := s.shape(fontData, text, size)
	return pen, err
}

// shape runs HarfBuzz shaping and converts the output, returning the
// positioned glyphs and the final pen position.
func (s *Shaper) shape(fontData anydraw.FontData, text string, size float64) ([]anydraw.Glyph, float64, error) {
	parsed, err := s.font(fontData.Data)
	if err != nil {
		return nil, 0, err
	}

	// font.Face is not concurrent-safe; one per call over the shared
	// read-only Font.
	face := font.NewFace(parsed)
	runes := []rune(text)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	glyphs := make([]anydraw.Glyph, len(output.Glyphs))
	var pen float64
	for i, g := range output.Glyphs {
		glyphs[i] = anydraw.Glyph{
			ID: uint32(g.GlyphID),
			X:  pen + float64(g.XOffset)/64,
			Y:  -float64(g.YOffset) / 64,
		}
		pen += float64(g.Advance) / 64
	}
	return glyphs, pen, nil
}

// ClearCache drops all cached parsed fonts.
func (s *Shaper) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fonts = make(map[*byte]*font.Font)
}

func (s *Shaper) font(data []byte) (*font.Font, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("textshape: empty font data")
	}
	key := &data[0]

	s.mu.RLock()
	if f, ok := s.fonts[key]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.fonts[key]; ok {
		return f, nil
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("textshape: parse font: %w", err)
	}
	s.fonts[key] = face.Font
	return face.Font, nil
}

// detectScript returns the script of the first non-space rune. Mixed
// scripts should be split into separate runs by the caller.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
