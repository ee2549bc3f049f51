package softraster

import (
	"image"

	"github.com/gogpu/anydraw"
)

// layer is one entry on the painter's compositing stack. The base layer
// has no blend parameters; pushed layers remember how to composite onto
// their parent and the clip mask active when they were opened.
type layer struct {
	img     *image.RGBA
	blend   anydraw.BlendMode
	opacity float64
	// clipDepth is the painter's clip stack depth at push time, used to
	// pop the layer's own clip (if any) on PopLayer.
	clipDepth int
	ownClip   bool
}

// painter implements anydraw.ScenePainter against an RGBA target. It is
// single-use per render and not safe for concurrent use; the renderer
// serializes access.
type painter struct {
	width, height int
	layers        []*layer
	// clips holds intersected coverage masks; nil means unclipped. The
	// top of the stack is the active clip.
	clips [][]uint8
}

func newPainter(dst *image.RGBA) *painter {
	b := dst.Bounds()
	return &painter{
		width:  b.Dx(),
		height: b.Dy(),
		layers: []*layer{{img: dst}},
		clips:  [][]uint8{nil},
	}
}

func (p *painter) target() *image.RGBA {
	return p.layers[len(p.layers)-1].img
}

func (p *painter) clip() []uint8 {
	return p.clips[len(p.clips)-1]
}

// pushClipMask intersects mask with the active clip and pushes the result.
func (p *painter) pushClipMask(mask []uint8) {
	if cur := p.clip(); cur != nil {
		for i, c := range cur {
			mask[i] = uint8((uint32(mask[i])*uint32(c) + 127) / 255)
		}
	}
	p.clips = append(p.clips, mask)
}

// paintMask shades and composites a coverage mask onto the current layer
// using source-over. Blend modes apply only at layer boundaries.
func (p *painter) paintMask(mask []uint8, paint anydraw.Paint, transform anydraw.Matrix) error {
	sh, err := newShader(paint, transform)
	if err != nil {
		return err
	}
	clip := p.clip()
	dst := p.target()

	// Solid paints skip the per-pixel shader call.
	var flat pixel
	solid, isSolid := paint.(anydraw.SolidPaint)
	if isSolid {
		c := solid.Color.Premultiply()
		flat = pixel{c.R, c.G, c.B, c.A}
	}

	for y := 0; y < p.height; y++ {
		row := y * p.width
		for x := 0; x < p.width; x++ {
			cov := uint32(mask[row+x])
			if cov == 0 {
				continue
			}
			if clip != nil {
				cov = (cov*uint32(clip[row+x]) + 127) / 255
				if cov == 0 {
					continue
				}
			}
			var src pixel
			if isSolid {
				src = flat
			} else {
				c := sh.at(float64(x)+0.5, float64(y)+0.5).Premultiply()
				src = pixel{c.R, c.G, c.B, c.A}
			}
			src = src.scale(float64(cov) / 255)
			off := dst.PixOffset(dst.Bounds().Min.X+x, dst.Bounds().Min.Y+y)
			px := dst.Pix[off : off+4 : off+4]
			storePixel(px, over(src, loadPixel(px)))
		}
	}
	return nil
}

func (p *painter) Fill(transform anydraw.Matrix, rule anydraw.FillRule, path *anydraw.Path, paint anydraw.Paint) error {
	if path.IsEmpty() {
		return nil
	}
	mask := rasterize(flatten(path, transform), rule, p.width, p.height)
	return p.paintMask(mask, paint, transform)
}

func (p *painter) Stroke(transform anydraw.Matrix, stroke anydraw.Stroke, path *anydraw.Path, paint anydraw.Paint) error {
	if path.IsEmpty() {
		return nil
	}
	contours := strokeOutline(path, stroke)
	contours = transformContours(contours, transform)
	mask := rasterize(contours, anydraw.FillRuleNonZero, p.width, p.height)
	return p.paintMask(mask, paint, transform)
}

func (p *painter) DrawImage(transform anydraw.Matrix, img image.Image, dst anydraw.Rect) error {
	if img == nil || dst.IsEmpty() {
		return nil
	}
	return drawImage(p.target(), img, dst, transform, p.clip(), p.width, p.height)
}

func (p *painter) DrawGlyphRun(transform anydraw.Matrix, run anydraw.GlyphRun, paint anydraw.Paint) error {
	if run.IsEmpty() {
		return nil
	}
	outline, err := glyphRunOutline(run)
	if err != nil {
		return err
	}
	if outline.IsEmpty() {
		return nil
	}
	mask := rasterize(flatten(outline, transform), anydraw.FillRuleNonZero, p.width, p.height)
	return p.paintMask(mask, paint, transform)
}

func (p *painter) PushClip(transform anydraw.Matrix, path *anydraw.Path, rule anydraw.FillRule) error {
	mask := rasterize(flatten(path, transform), rule, p.width, p.height)
	p.pushClipMask(mask)
	return nil
}

func (p *painter) PopClip() error {
	if len(p.clips) <= 1 {
		return anydraw.ErrUnsupported
	}
	p.clips = p.clips[:len(p.clips)-1]
	return nil
}

func (p *painter) PushLayer(transform anydraw.Matrix, blend anydraw.BlendMode, opacity float64, clip *anydraw.Path, clipRule anydraw.FillRule) error {
	l := &layer{
		img:       image.NewRGBA(image.Rect(0, 0, p.width, p.height)),
		blend:     blend,
		opacity:   opacity,
		clipDepth: len(p.clips),
	}
	if clip != nil {
		mask := rasterize(flatten(clip, transform), clipRule, p.width, p.height)
		p.pushClipMask(mask)
		l.ownClip = true
	}
	p.layers = append(p.layers, l)
	return nil
}

func (p *painter) PopLayer() error {
	if len(p.layers) <= 1 {
		return anydraw.ErrUnsupported
	}
	top := p.layers[len(p.layers)-1]
	p.layers = p.layers[:len(p.layers)-1]

	// Layer content was already clipped at draw time, so the pop only
	// composites and restores the clip stack.
	if top.ownClip {
		p.clips = p.clips[:top.clipDepth]
	}

	dst := p.target()
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			soff := top.img.PixOffset(x, y)
			spx := top.img.Pix[soff : soff+4 : soff+4]
			src := loadPixel(spx)
			if src.a == 0 && top.blend == anydraw.BlendSourceOver {
				continue
			}
			src = src.scale(top.opacity)
			doff := dst.PixOffset(dst.Bounds().Min.X+x, dst.Bounds().Min.Y+y)
			dpx := dst.Pix[doff : doff+4 : doff+4]
			storePixel(dpx, composite(top.blend, src, loadPixel(dpx)))
		}
	}
	return nil
}
