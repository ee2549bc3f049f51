package softraster

import (
	"math"

	"github.com/gogpu/anydraw"
)

// strokeOutline expands a path's outline into closed contours that, filled
// with the non-zero rule, cover the stroked region. Expansion happens in
// local space so the stroke scales with the command transform; the caller
// transforms the result afterwards.
//
// Each segment contributes a quad; joins and caps contribute wedge or arc
// polygons. All pieces share one winding orientation, so their non-zero
// union is the stroke shape and overlaps at joins are harmless.
func strokeOutline(p *anydraw.Path, stroke anydraw.Stroke) [][]point {
	polylines := flattenLocal(p)
	if stroke.IsDashed() {
		polylines = applyDash(polylines, stroke.DashPattern, stroke.DashOffset)
	}

	half := stroke.Width / 2
	var out [][]point
	for _, line := range polylines {
		line = dedupe(line)
		if len(line) < 2 {
			continue
		}
		closed := line[0] == line[len(line)-1] && len(line) > 2
		if closed {
			line = line[:len(line)-1]
		}
		out = appendSegments(out, line, closed, half)
		out = appendJoins(out, line, closed, half, stroke)
		if !closed {
			out = appendCaps(out, line, half, stroke.Cap)
		}
	}
	// The union only works if every piece winds the same way; pieces that
	// overlap with opposite winding would cancel to holes.
	for _, c := range out {
		if signedArea(c) < 0 {
			reverse(c)
		}
	}
	return out
}

func signedArea(c []point) float64 {
	area := 0.0
	n := len(c)
	for i := 0; i < n; i++ {
		a, b := c[i], c[(i+1)%n]
		area += a.x*b.y - b.x*a.y
	}
	return area / 2
}

func reverse(c []point) {
	for i, j := 0, len(c)-1; i < j; i, j = i+1, j-1 {
		c[i], c[j] = c[j], c[i]
	}
}

// flattenLocal flattens a path into polylines without transforming or
// closing them; subpath structure is preserved for caps and joins.
func flattenLocal(p *anydraw.Path) [][]point {
	if p.IsEmpty() {
		return nil
	}
	var lines [][]point
	var cur []point
	var start point
	pos := point{}

	flush := func() {
		if len(cur) >= 2 {
			lines = append(lines, cur)
		}
		cur = nil
	}

	pts := p.Points()
	pi := 0
	next := func() point {
		pt := point{pts[pi].X, pts[pi].Y}
		pi++
		return pt
	}

	for _, verb := range p.Verbs() {
		switch verb {
		case anydraw.VerbMoveTo:
			flush()
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
			flush()
			pos = start
		}
	}
	flush()
	return lines
}

func dedupe(line []point) []point {
	out := line[:0:0]
	for _, pt := range line {
		if len(out) > 0 && out[len(out)-1] == pt {
			continue
		}
		out = append(out, pt)
	}
	return out
}

// appendSegments emits one quad per polyline segment.
func appendSegments(out [][]point, line []point, closed bool, half float64) [][]point {
	n := len(line)
	last := n - 1
	if closed {
		last = n
	}
	for i := 0; i < last; i++ {
		a := line[i]
		b := line[(i+1)%n]
		nx, ny, ok := normal(a, b)
		if !ok {
			continue
		}
		out = append(out, []point{
			{a.x + nx*half, a.y + ny*half},
			{b.x + nx*half, b.y + ny*half},
			{b.x - nx*half, b.y - ny*half},
			{a.x - nx*half, a.y - ny*half},
		})
	}
	return out
}

// appendJoins emits join geometry at every interior vertex (and the
// closure vertex for closed polylines).
func appendJoins(out [][]point, line []point, closed bool, half float64, stroke anydraw.Stroke) [][]point {
	n := len(line)
	first, last := 1, n-1
	if closed {
		first, last = 0, n
	}
	for i := first; i < last; i++ {
		prev := line[(i-1+n)%n]
		at := line[i]
		next := line[(i+1)%n]
		out = appendJoin(out, prev, at, next, half, stroke)
	}
	return out
}

func appendJoin(out [][]point, prev, at, next point, half float64, stroke anydraw.Stroke) [][]point {
	n1x, n1y, ok1 := normal(prev, at)
	n2x, n2y, ok2 := normal(at, next)
	if !ok1 || !ok2 {
		return out
	}
	// cross > 0: turning right in y-down coordinates, outer side is the
	// positive normal side.
	cross := (at.x-prev.x)*(next.y-at.y) - (at.y-prev.y)*(next.x-at.x)
	if math.Abs(cross) < 1e-12 {
		return out // collinear, segments already overlap
	}
	var o1, o2 point
	if cross > 0 {
		o1 = point{at.x - n1x*half, at.y - n1y*half}
		o2 = point{at.x - n2x*half, at.y - n2y*half}
	} else {
		o1 = point{at.x + n1x*half, at.y + n1y*half}
		o2 = point{at.x + n2x*half, at.y + n2y*half}
	}

	switch stroke.Join {
	case anydraw.LineJoinRound:
		return append(out, arcPolygon(at, o1, o2, half))
	case anydraw.LineJoinBevel:
		return append(out, []point{at, o1, o2})
	default: // miter, falling back to bevel past the limit
		mx := (o1.x - at.x) + (o2.x - at.x)
		my := (o1.y - at.y) + (o2.y - at.y)
		ml := math.Hypot(mx, my)
		if ml < 1e-12 {
			return append(out, []point{at, o1, o2})
		}
		// Miter length ratio: distance from vertex to miter tip over
		// half width.
		cosHalf := ml / (2 * half)
		if cosHalf < 1e-12 {
			return append(out, []point{at, o1, o2})
		}
		miterRatio := 1 / cosHalf
		if miterRatio > stroke.MiterLimit {
			return append(out, []point{at, o1, o2})
		}
		tip := point{
			at.x + mx/ml*half*miterRatio,
			at.y + my/ml*half*miterRatio,
		}
		return append(out, []point{at, o1, tip, o2})
	}
}

// appendCaps emits cap geometry at both ends of an open polyline.
func appendCaps(out [][]point, line []point, half float64, capStyle anydraw.LineCap) [][]point {
	if capStyle == anydraw.LineCapButt {
		return out
	}
	n := len(line)
	out = appendCap(out, line[1], line[0], half, capStyle)
	out = appendCap(out, line[n-2], line[n-1], half, capStyle)
	return out
}

// appendCap emits a cap at end, extending away from inner.
func appendCap(out [][]point, inner, end point, half float64, capStyle anydraw.LineCap) [][]point {
	dx, dy := end.x-inner.x, end.y-inner.y
	l := math.Hypot(dx, dy)
	if l < 1e-12 {
		return out
	}
	dx, dy = dx/l, dy/l
	nx, ny := -dy, dx
	a := point{end.x + nx*half, end.y + ny*half}
	b := point{end.x - nx*half, end.y - ny*half}

	switch capStyle {
	case anydraw.LineCapSquare:
		return append(out, []point{
			a,
			{a.x + dx*half, a.y + dy*half},
			{b.x + dx*half, b.y + dy*half},
			b,
		})
	case anydraw.LineCapRound:
		// A cap spans exactly half a turn, so the short way around is
		// ambiguous; sweep explicitly through the outward direction.
		return append(out, capArc(end, math.Atan2(dy, dx), half))
	}
	return out
}

// capArc approximates the outward semicircle of a round cap as a fan
// polygon around center, sweeping through the direction theta.
func capArc(center point, theta, r float64) []point {
	const steps = 8
	start := theta + math.Pi/2
	poly := make([]point, 0, steps+2)
	poly = append(poly, center)
	for i := 0; i <= steps; i++ {
		ang := start - math.Pi*float64(i)/float64(steps)
		poly = append(poly, point{
			center.x + r*math.Cos(ang),
			center.y + r*math.Sin(ang),
		})
	}
	return poly
}

// arcPolygon approximates the circular arc from a to b around center,
// taking the short way, as a fan polygon including the center. Only used
// for round joins, whose sweep is always below half a turn.
func arcPolygon(center, a, b point, r float64) []point {
	a0 := math.Atan2(a.y-center.y, a.x-center.x)
	a1 := math.Atan2(b.y-center.y, b.x-center.x)
	d := a1 - a0
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d < -math.Pi {
		d += 2 * math.Pi
	}
	steps := int(math.Ceil(math.Abs(d) / (math.Pi / 8)))
	if steps < 1 {
		steps = 1
	}
	poly := make([]point, 0, steps+2)
	poly = append(poly, center)
	for i := 0; i <= steps; i++ {
		ang := a0 + d*float64(i)/float64(steps)
		poly = append(poly, point{
			center.x + r*math.Cos(ang),
			center.y + r*math.Sin(ang),
		})
	}
	return poly
}

// normal returns the unit normal of segment a->b, or ok=false for a
// degenerate segment.
func normal(a, b point) (nx, ny float64, ok bool) {
	dx, dy := b.x-a.x, b.y-a.y
	l := math.Hypot(dx, dy)
	if l < 1e-12 {
		return 0, 0, false
	}
	return -dy / l, dx / l, true
}

// applyDash splits polylines into dash segments per the pattern, measured
// along arc length. Zero-length "on" dashes are dropped.
func applyDash(lines [][]point, pattern []float64, offset float64) [][]point {
	total := 0.0
	for _, l := range pattern {
		total += l
	}
	if total <= 0 {
		return lines
	}
	// An odd pattern repeats doubled, alternating on/off across cycles.
	pat := pattern
	if len(pat)%2 == 1 {
		pat = append(append([]float64(nil), pat...), pat...)
		total *= 2
	}

	var out [][]point
	for _, line := range lines {
		// Phase into the pattern, handling negative offsets.
		phase := math.Mod(offset, total)
		if phase < 0 {
			phase += total
		}
		idx := 0
		for phase >= pat[idx] {
			phase -= pat[idx]
			idx = (idx + 1) % len(pat)
		}
		on := idx%2 == 0
		remain := pat[idx] - phase

		var cur []point
		if on {
			cur = append(cur, line[0])
		}
		for i := 0; i+1 < len(line); i++ {
			a, b := line[i], line[i+1]
			segLen := math.Hypot(b.x-a.x, b.y-a.y)
			pos := 0.0
			for segLen-pos > remain {
				pos += remain
				t := pos / segLen
				cut := point{a.x + (b.x-a.x)*t, a.y + (b.y-a.y)*t}
				if on {
					cur = append(cur, cut)
					if len(cur) >= 2 {
						out = append(out, cur)
					}
					cur = nil
				} else {
					cur = []point{cut}
				}
				on = !on
				idx = (idx + 1) % len(pat)
				remain = pat[idx]
			}
			remain -= segLen - pos
			if on {
				cur = append(cur, b)
			}
		}
		if on && len(cur) >= 2 {
			out = append(out, cur)
		}
	}
	return out
}

// transformContours maps local-space contours into device space.
func transformContours(contours [][]point, m anydraw.Matrix) [][]point {
	for _, c := range contours {
		for i, pt := range c {
			x, y := m.TransformPoint(pt.x, pt.y)
			c[i] = point{x, y}
		}
	}
	return contours
}
