package anydraw

import (
	"fmt"
	"image"
)

// Recording is the immutable result of a finished Scene. It owns the
// command list and the resource pool the commands reference. A recording
// may be replayed any number of times, concurrently, against any number
// of painters: replay never mutates it.
type Recording struct {
	commands  []Command
	resources *ResourcePool
}

// Commands returns the recorded command list. The returned slice is the
// backing storage and must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool referenced by the commands.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// IsEmpty returns true if the recording contains no commands.
func (r *Recording) IsEmpty() bool {
	return len(r.commands) == 0
}

// ScenePainter is the backend side of the recording contract: a consumer
// that receives each command with its resources resolved. Replay dispatches
// to it in recorded order.
//
// All geometry arrives with the transform the producer had in effect when
// the command was issued. The painter must not retain paths, paints or
// glyph slices past the call; they belong to the recording.
type ScenePainter interface {
	Fill(transform Matrix, rule FillRule, path *Path, paint Paint) error
	Stroke(transform Matrix, stroke Stroke, path *Path, paint Paint) error
	DrawImage(transform Matrix, img image.Image, dst Rect) error
	DrawGlyphRun(transform Matrix, run GlyphRun, paint Paint) error

	// PushClip intersects the painter's clip with path under transform.
	PushClip(transform Matrix, path *Path, rule FillRule) error
	PopClip() error

	// PushLayer opens a compositing group; clip is nil for an unbounded
	// layer. PopLayer composites it with the pushed blend and opacity.
	PushLayer(transform Matrix, blend BlendMode, opacity float64, clip *Path, clipRule FillRule) error
	PopLayer() error
}

// Replay dispatches every recorded command to p in order, resolving
// resource references against the pool. It stops at the first error and
// returns it wrapped with the failing command's position and type.
func (r *Recording) Replay(p ScenePainter) error {
	pool := r.resources
	for i, cmd := range r.commands {
		var err error
		switch c := cmd.(type) {
		case FillCommand:
			err = p.Fill(c.Transform, c.Rule, pool.Path(c.Path), pool.Paint(c.Paint))
		case StrokeCommand:
			err = p.Stroke(c.Transform, c.Stroke, pool.Path(c.Path), pool.Paint(c.Paint))
		case DrawImageCommand:
			err = p.DrawImage(c.Transform, pool.Image(c.Image), c.Dst)
		case DrawGlyphRunCommand:
			run := GlyphRun{
				Font:             pool.Font(c.Font),
				Size:             c.Size,
				NormalizedCoords: c.NormalizedCoords,
				Glyphs:           c.Glyphs,
			}
			err = p.DrawGlyphRun(c.Transform, run, pool.Paint(c.Paint))
		case PushClipCommand:
			err = p.PushClip(c.Transform, pool.Path(c.Path), c.Rule)
		case PopClipCommand:
			err = p.PopClip()
		case PushLayerCommand:
			err = p.PushLayer(c.Transform, c.Blend, c.Opacity, pool.Path(c.Clip), c.ClipRule)
		case PopLayerCommand:
			err = p.PopLayer()
		default:
			err = fmt.Errorf("%w: command type %T", ErrUnsupported, cmd)
		}
		if err != nil {
			return fmt.Errorf("anydraw: replay command %d (%s): %w", i, cmd.Type(), err)
		}
	}
	return nil
}
