package softraster

import (
	"math"
	"sort"

	"github.com/gogpu/anydraw"
)

// point is a device-space coordinate pair.
type point struct {
	x, y float64
}

// flattenTolerance is the maximum chord deviation, in device pixels, when
// subdividing curves.
const flattenTolerance = 0.25

// maxFlattenDepth bounds curve subdivision recursion.
const maxFlattenDepth = 16

// flatten converts a path into closed device-space polygons. Control
// points are transformed first (affine maps preserve bezier form) so the
// flatness tolerance is measured in device pixels. Open subpaths are
// implicitly closed, as fill semantics require.
func flatten(p *anydraw.Path, m anydraw.Matrix) [][]point {
	if p.IsEmpty() {
		return nil
	}
	var contours [][]point
	var cur []point
	var start point
	pos := point{}

	closeContour := func() {
		if len(cur) >= 2 {
			contours = append(contours, cur)
		}
		cur = nil
	}

	pts := p.Points()
	pi := 0
	next := func() point {
		x, y := m.TransformPoint(pts[pi].X, pts[pi].Y)
		pi++
		return point{x, y}
	}

	for _, verb := range p.Verbs() {
		switch verb {
		case anydraw.VerbMoveTo:
			closeContour()
			start = next()
			pos = start
			cur = append(cur, pos)
		case anydraw.VerbLineTo:
			pos = next()
			cur = append(cur, pos)
		case anydraw.VerbQuadTo:
			c := next()
			end := next()
			cur = flattenQuad(cur, pos, c, end, 0)
			pos = end
		case anydraw.VerbCubicTo:
			c1 := next()
			c2 := next()
			end := next()
			cur = flattenCubic(cur, pos, c1, c2, end, 0)
			pos = end
		case anydraw.VerbClose:
			if len(cur) > 0 {
				cur = append(cur, start)
			}
			closeContour()
			pos = start
		}
	}
	closeContour()
	return contours
}

// flattenQuad appends a flattened quadratic bezier (excluding p0) to out.
func flattenQuad(out []point, p0, c, p1 point, depth int) []point {
	if depth >= maxFlattenDepth || quadFlat(p0, c, p1) {
		return append(out, p1)
	}
	// de Casteljau split at t = 0.5
	ab := mid(p0, c)
	bc := mid(c, p1)
	abc := mid(ab, bc)
	out = flattenQuad(out, p0, ab, abc, depth+1)
	return flattenQuad(out, abc, bc, p1, depth+1)
}

// flattenCubic appends a flattened cubic bezier (excluding p0) to out.
func flattenCubic(out []point, p0, c1, c2, p1 point, depth int) []point {
	if depth >= maxFlattenDepth || cubicFlat(p0, c1, c2, p1) {
		return append(out, p1)
	}
	ab := mid(p0, c1)
	bc := mid(c1, c2)
	cd := mid(c2, p1)
	abc := mid(ab, bc)
	bcd := mid(bc, cd)
	abcd := mid(abc, bcd)
	out = flattenCubic(out, p0, ab, abc, abcd, depth+1)
	return flattenCubic(out, abcd, bcd, cd, p1, depth+1)
}

func mid(a, b point) point {
	return point{(a.x + b.x) / 2, (a.y + b.y) / 2}
}

// quadFlat reports whether the control point is within tolerance of the
// chord midpoint.
func quadFlat(p0, c, p1 point) bool {
	dx := c.x - (p0.x+p1.x)/2
	dy := c.y - (p0.y+p1.y)/2
	return dx*dx+dy*dy <= flattenTolerance*flattenTolerance
}

func cubicFlat(p0, c1, c2, p1 point) bool {
	d1x := c1.x - (2*p0.x+p1.x)/3
	d1y := c1.y - (2*p0.y+p1.y)/3
	d2x := c2.x - (p0.x+2*p1.x)/3
	d2y := c2.y - (p0.y+2*p1.y)/3
	tol := flattenTolerance * flattenTolerance
	return d1x*d1x+d1y*d1y <= tol && d2x*d2x+d2y*d2y <= tol
}

// edge is a non-horizontal polygon edge normalized so ytop < ybot. dir
// records the original winding direction for the non-zero rule.
type edge struct {
	ytop, ybot float64
	xtop       float64
	dxdy       float64
	dir        int
}

// buildEdges converts closed contours to scanline edges.
func buildEdges(contours [][]point) []edge {
	var edges []edge
	for _, c := range contours {
		n := len(c)
		for i := 0; i < n; i++ {
			a := c[i]
			b := c[(i+1)%n]
			if a.y == b.y {
				continue
			}
			dir := 1
			if a.y > b.y {
				a, b = b, a
				dir = -1
			}
			edges = append(edges, edge{
				ytop: a.y,
				ybot: b.y,
				xtop: a.x,
				dxdy: (b.x - a.x) / (b.y - a.y),
				dir:  dir,
			})
		}
	}
	return edges
}

// subsamples is the number of scanlines evaluated per pixel row.
const subsamples = 4

type crossing struct {
	x   float64
	dir int
}

// rasterize fills the contours into a w*h coverage mask, 0..255 per
// pixel. Vertical anti-aliasing comes from the subsample lines, horizontal
// from exact fractional span coverage.
func rasterize(contours [][]point, rule anydraw.FillRule, w, h int) []uint8 {
	mask := make([]uint8, w*h)
	edges := buildEdges(contours)
	if len(edges) == 0 {
		return mask
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].ytop < edges[j].ytop })

	// Clamp the scanned rows to the geometry's vertical extent.
	ymin, ymax := edges[0].ytop, edges[0].ybot
	for _, e := range edges {
		ymax = math.Max(ymax, e.ybot)
	}
	rowMin := clampInt(int(math.Floor(ymin)), 0, h)
	rowMax := clampInt(int(math.Ceil(ymax)), 0, h)

	cov := make([]float64, w)
	active := make([]int, 0, 16)
	xs := make([]crossing, 0, 16)
	next := 0
	const weight = 1.0 / subsamples

	// Edges starting above the first scanned row must still be activated.
	firstLine := float64(rowMin) + 0.5/subsamples
	for next < len(edges) && edges[next].ytop <= firstLine {
		active = append(active, next)
		next++
	}

	for py := rowMin; py < rowMax; py++ {
		for i := range cov {
			cov[i] = 0
		}
		for s := 0; s < subsamples; s++ {
			sy := float64(py) + (float64(s)+0.5)/subsamples
			for next < len(edges) && edges[next].ytop <= sy {
				active = append(active, next)
				next++
			}
			xs = xs[:0]
			for i := 0; i < len(active); {
				e := &edges[active[i]]
				if e.ybot <= sy {
					active[i] = active[len(active)-1]
					active = active[:len(active)-1]
					continue
				}
				if e.ytop <= sy {
					xs = append(xs, crossing{
						x:   e.xtop + (sy-e.ytop)*e.dxdy,
						dir: e.dir,
					})
				}
				i++
			}
			if len(xs) < 2 {
				continue
			}
			sort.Slice(xs, func(i, j int) bool { return xs[i].x < xs[j].x })

			switch rule {
			case anydraw.FillRuleEvenOdd:
				for i := 0; i+1 < len(xs); i += 2 {
					addSpan(cov, xs[i].x, xs[i+1].x, weight, w)
				}
			default: // non-zero
				winding := 0
				spanStart := 0.0
				for _, c := range xs {
					if winding == 0 {
						spanStart = c.x
					}
					winding += c.dir
					if winding == 0 {
						addSpan(cov, spanStart, c.x, weight, w)
					}
				}
			}
		}
		row := mask[py*w:]
		for x := 0; x < w; x++ {
			v := cov[x] * 255
			if v > 255 {
				v = 255
			}
			if v > 0 {
				row[x] = uint8(v + 0.5)
			}
		}
	}
	return mask
}

// addSpan accumulates coverage for the horizontal span [xa, xb) into one
// row, with fractional coverage at the span's partial end pixels.
func addSpan(cov []float64, xa, xb, weight float64, w int) {
	if xa < 0 {
		xa = 0
	}
	if xb > float64(w) {
		xb = float64(w)
	}
	if xa >= xb {
		return
	}
	x0 := int(xa)
	x1 := int(xb)
	if x0 == x1 {
		cov[x0] += (xb - xa) * weight
		return
	}
	cov[x0] += (float64(x0+1) - xa) * weight
	for x := x0 + 1; x < x1; x++ {
		cov[x] += weight
	}
	if x1 < w {
		cov[x1] += (xb - float64(x1)) * weight
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
