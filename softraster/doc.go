// Package softraster is the pure-Go CPU rendering backend for anydraw.
//
// It registers itself as the "softraster" driver:
//
//	import _ "github.com/gogpu/anydraw/softraster"
//
// The backend implements both render contracts. ImageRenderer rasterizes a
// recording into a premultiplied image.RGBA; WindowRenderer does the same
// each frame and hands the buffer to the window handle, which must
// implement PresentTarget.
//
// # Rasterization
//
// Paths are flattened to polygons in device space and filled by a scanline
// rasterizer with 4x vertical supersampling and exact horizontal span
// coverage, supporting both the non-zero and even-odd fill rules. Strokes
// are expanded to fill outlines (per-segment quads plus join and cap
// geometry, unioned under the non-zero rule) before rasterization, so the
// fill and stroke pipelines share one code path.
//
// Clips are per-pixel coverage masks intersected by multiplication, which
// keeps anti-aliased clip edges. Layers are full-size intermediate buffers
// composited on pop with the pushed blend mode and opacity.
//
// # Limitations
//
// Variable-font normalized coordinates in glyph runs are not applied; the
// default instance is rendered.
//
// Renders against one renderer are not queued: a Render or RenderInto call
// that overlaps another returns anydraw.ErrBusy. Window renders are
// serialized internally instead.
package softraster
