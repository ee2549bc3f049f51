package softraster

import "github.com/gogpu/anydraw"

// pixel is a premultiplied RGBA color with float channels in [0, 1].
type pixel struct {
	r, g, b, a float64
}

func loadPixel(data []uint8) pixel {
	return pixel{
		r: float64(data[0]) / 255,
		g: float64(data[1]) / 255,
		b: float64(data[2]) / 255,
		a: float64(data[3]) / 255,
	}
}

func storePixel(data []uint8, p pixel) {
	data[0] = quantize(p.r)
	data[1] = quantize(p.g)
	data[2] = quantize(p.b)
	data[3] = quantize(p.a)
}

func quantize(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// over composites src over dst, both premultiplied.
func over(src, dst pixel) pixel {
	inv := 1 - src.a
	return pixel{
		r: src.r + dst.r*inv,
		g: src.g + dst.g*inv,
		b: src.b + dst.b*inv,
		a: src.a + dst.a*inv,
	}
}

// scale multiplies all channels, attenuating a premultiplied color.
func (p pixel) scale(f float64) pixel {
	return pixel{p.r * f, p.g * f, p.b * f, p.a * f}
}

// composite merges src over dst with a separable blend mode. Inputs and
// output are premultiplied. The standard compositing equation applies the
// blend function B to non-premultiplied channels where both source and
// destination have coverage, and falls back to plain source/destination
// contribution where only one does:
//
//	Co = as*(1-ad)*Cs + ad*(1-as)*Cd + as*ad*B(Cs, Cd)
//	ao = as + ad*(1-as)
func composite(mode anydraw.BlendMode, src, dst pixel) pixel {
	if mode == anydraw.BlendSourceOver {
		return over(src, dst)
	}
	if src.a == 0 {
		return dst
	}
	if dst.a == 0 {
		return over(src, dst)
	}

	// Un-premultiply for the blend function.
	csr, csg, csb := src.r/src.a, src.g/src.a, src.b/src.a
	cdr, cdg, cdb := dst.r/dst.a, dst.g/dst.a, dst.b/dst.a

	blend := blendFunc(mode)
	br := blend(csr, cdr)
	bg := blend(csg, cdg)
	bb := blend(csb, cdb)

	sa, da := src.a, dst.a
	both := sa * da
	return pixel{
		r: sa*(1-da)*csr + da*(1-sa)*cdr + both*br,
		g: sa*(1-da)*csg + da*(1-sa)*cdg + both*bg,
		b: sa*(1-da)*csb + da*(1-sa)*cdb + both*bb,
		a: sa + da*(1-sa),
	}
}

// blendFunc returns the separable blend function for non-premultiplied
// channel values.
func blendFunc(mode anydraw.BlendMode) func(s, d float64) float64 {
	switch mode {
	case anydraw.BlendMultiply:
		return func(s, d float64) float64 { return s * d }
	case anydraw.BlendScreen:
		return func(s, d float64) float64 { return s + d - s*d }
	case anydraw.BlendOverlay:
		return func(s, d float64) float64 {
			if d <= 0.5 {
				return 2 * s * d
			}
			return 1 - 2*(1-s)*(1-d)
		}
	case anydraw.BlendDarken:
		return func(s, d float64) float64 {
			if s < d {
				return s
			}
			return d
		}
	case anydraw.BlendLighten:
		return func(s, d float64) float64 {
			if s > d {
				return s
			}
			return d
		}
	default:
		return func(s, d float64) float64 { return s }
	}
}
