package softraster

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/anydraw"
)

// fontCache memoizes parsed sfnt fonts keyed by the identity of the font
// bytes. Font data is immutable by contract, so the first byte's address
// identifies the buffer.
var fontCache struct {
	sync.Mutex
	fonts map[*byte]*sfnt.Font
}

func parseFont(data []byte) (*sfnt.Font, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("softraster: empty font data")
	}
	key := &data[0]

	fontCache.Lock()
	defer fontCache.Unlock()
	if f, ok := fontCache.fonts[key]; ok {
		return f, nil
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("softraster: parse font: %w", err)
	}
	if fontCache.fonts == nil {
		fontCache.fonts = make(map[*byte]*sfnt.Font)
	}
	fontCache.fonts[key] = f
	return f, nil
}

// glyphRunOutline converts a glyph run into a single fill path in the
// run's local space. Outlines come back from sfnt in 26.6 fixed point,
// y-down from the baseline, so they drop straight into our coordinate
// system at each glyph origin.
//
// Normalized variation coordinates are not applied; sfnt renders the
// default instance.
func glyphRunOutline(run anydraw.GlyphRun) (*anydraw.Path, error) {
	f, err := parseFont(run.Font.Data)
	if err != nil {
		return nil, err
	}

	var buf sfnt.Buffer
	ppem := fixed.Int26_6(run.Size * 64)
	out := anydraw.NewPath()

	for _, g := range run.Glyphs {
		segs, err := f.LoadGlyph(&buf, sfnt.GlyphIndex(g.ID), ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("softraster: load glyph %d: %w", g.ID, err)
		}
		appendGlyph(out, segs, g.X, g.Y)
	}
	return out, nil
}

func appendGlyph(p *anydraw.Path, segs sfnt.Segments, ox, oy float64) {
	px := func(v fixed.Int26_6) float64 { return float64(v) / 64 }
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(ox+px(seg.Args[0].X), oy+px(seg.Args[0].Y))
			open = true
		case sfnt.SegmentOpLineTo:
			p.LineTo(ox+px(seg.Args[0].X), oy+px(seg.Args[0].Y))
		case sfnt.SegmentOpQuadTo:
			p.QuadTo(
				ox+px(seg.Args[0].X), oy+px(seg.Args[0].Y),
				ox+px(seg.Args[1].X), oy+px(seg.Args[1].Y))
		case sfnt.SegmentOpCubeTo:
			p.CubicTo(
				ox+px(seg.Args[0].X), oy+px(seg.Args[0].Y),
				ox+px(seg.Args[1].X), oy+px(seg.Args[1].Y),
				ox+px(seg.Args[2].X), oy+px(seg.Args[2].Y))
		}
	}
	if open {
		p.Close()
	}
}
