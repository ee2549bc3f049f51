package anydraw

import "image"

// frameKind discriminates entries on the scope stack. Clip and layer scopes
// share one stack so mismatched pops across a boundary are caught at the
// call site.
type frameKind uint8

const (
	frameClip frameKind = iota
	frameLayer
)

// Scene records drawing commands for later rendering. Commands carry the
// transform that was in effect when they were issued, so a finished
// Recording is self-contained and replayable any number of times.
//
// A Scene is single-use: Finish seals it, and any call after Finish panics.
// Scene is not safe for concurrent use.
//
// Contract violations (unbalanced pops, recording after Finish, opacity
// outside [0, 1], nil or malformed arguments) are programmer errors and
// panic immediately rather than poisoning the recording.
type Scene struct {
	commands  []Command
	resources *ResourcePool

	transform      Matrix
	transformStack []Matrix
	scopes         []frameKind

	finished bool
}

// NewScene creates an empty scene with the identity transform, no clip and
// no open layers.
func NewScene() *Scene {
	return &Scene{
		commands:  make([]Command, 0, 128),
		resources: NewResourcePool(),
		transform: Identity(),
	}
}

// checkRecording panics if the scene has already been finished.
func (s *Scene) checkRecording(op string) {
	if s.finished {
		usageFault(op + " called on a finished scene")
	}
}

// Transform returns the accumulated transform currently in effect.
func (s *Scene) Transform() Matrix {
	return s.transform
}

// CommandCount returns the number of commands recorded so far.
func (s *Scene) CommandCount() int {
	return len(s.commands)
}

// PushTransform composes m onto the current transform for subsequent
// commands. Transforms accumulate: pushing T2 after T1 yields T1 then T2
// applied to local geometry. No command is emitted; the accumulated matrix
// is captured by each drawing command individually.
func (s *Scene) PushTransform(m Matrix) {
	s.checkRecording("PushTransform")
	s.transformStack = append(s.transformStack, s.transform)
	s.transform = s.transform.Multiply(m)
}

// PopTransform restores the transform in effect before the matching
// PushTransform. Panics if no transform is pushed.
func (s *Scene) PopTransform() {
	s.checkRecording("PopTransform")
	if len(s.transformStack) == 0 {
		usageFault("PopTransform without matching PushTransform")
	}
	s.transform = s.transformStack[len(s.transformStack)-1]
	s.transformStack = s.transformStack[:len(s.transformStack)-1]
}

// Fill records a fill of path's interior under the current transform.
// The path is interpreted with rule and painted with paint. The path is
// cloned; the caller may keep mutating it.
func (s *Scene) Fill(path *Path, rule FillRule, paint Paint) {
	s.checkRecording("Fill")
	if path == nil {
		usageFault("Fill with nil path")
	}
	if err := validatePaint(paint); err != nil {
		usageFault("Fill: " + err.Error())
	}
	s.commands = append(s.commands, FillCommand{
		Transform: s.transform,
		Path:      s.resources.AddPath(path),
		Rule:      rule,
		Paint:     s.resources.AddPaint(paint),
	})
}

// Stroke records a stroke of path's outline under the current transform.
// Stroke geometry is generated in local coordinates and then transformed,
// so a scaled transform scales the stroked outline with it.
func (s *Scene) Stroke(path *Path, stroke Stroke, paint Paint) {
	s.checkRecording("Stroke")
	if path == nil {
		usageFault("Stroke with nil path")
	}
	if err := stroke.validate(); err != nil {
		usageFault("Stroke: " + err.Error())
	}
	if err := validatePaint(paint); err != nil {
		usageFault("Stroke: " + err.Error())
	}
	s.commands = append(s.commands, StrokeCommand{
		Transform: s.transform,
		Path:      s.resources.AddPath(path),
		Stroke:    stroke.Clone(),
		Paint:     s.resources.AddPaint(paint),
	})
}

// DrawImage records a composite of img scaled into dst under the current
// transform. The image is stored by reference and must not be mutated
// until the recording is no longer in use.
func (s *Scene) DrawImage(img image.Image, dst Rect) {
	s.checkRecording("DrawImage")
	if img == nil {
		usageFault("DrawImage with nil image")
	}
	s.commands = append(s.commands, DrawImageCommand{
		Transform: s.transform,
		Image:     s.resources.AddImage(img),
		Dst:       dst,
	})
}

// DrawGlyphRun records a fill of positioned glyphs under the current
// transform. The run is cloned; font bytes are shared.
func (s *Scene) DrawGlyphRun(run GlyphRun, paint Paint) {
	s.checkRecording("DrawGlyphRun")
	if len(run.Font.Data) == 0 {
		usageFault("DrawGlyphRun with empty font data")
	}
	if err := validatePaint(paint); err != nil {
		usageFault("DrawGlyphRun: " + err.Error())
	}
	clone := run.Clone()
	s.commands = append(s.commands, DrawGlyphRunCommand{
		Transform:        s.transform,
		Font:             s.resources.AddFont(clone.Font),
		Size:             clone.Size,
		NormalizedCoords: clone.NormalizedCoords,
		Glyphs:           clone.Glyphs,
		Paint:            s.resources.AddPaint(paint),
	})
}

// PushClip intersects the active clip region with path's interior under
// the current transform. An empty intersection is legal: subsequent
// commands simply draw nothing until the clip is popped.
func (s *Scene) PushClip(path *Path, rule FillRule) {
	s.checkRecording("PushClip")
	if path == nil {
		usageFault("PushClip with nil path")
	}
	s.scopes = append(s.scopes, frameClip)
	s.commands = append(s.commands, PushClipCommand{
		Transform: s.transform,
		Path:      s.resources.AddPath(path),
		Rule:      rule,
	})
}

// PopClip restores the clip active before the matching PushClip. Panics
// if the innermost open scope is not a clip: clips may not be popped
// across a layer boundary.
func (s *Scene) PopClip() {
	s.checkRecording("PopClip")
	if len(s.scopes) == 0 {
		usageFault("PopClip without matching PushClip")
	}
	if s.scopes[len(s.scopes)-1] != frameClip {
		usageFault("PopClip across an open layer boundary")
	}
	s.scopes = s.scopes[:len(s.scopes)-1]
	s.commands = append(s.commands, PopClipCommand{})
}

// PushLayer opens a compositing group. Content recorded until the matching
// PopLayer renders into an intermediate surface and is composited onto the
// parent with blend and opacity. clip optionally bounds the layer; pass
// nil for an unbounded layer.
//
// Opacity outside [0, 1] or an invalid blend mode panics.
func (s *Scene) PushLayer(blend BlendMode, opacity float64, clip *Path, clipRule FillRule) {
	s.checkRecording("PushLayer")
	if !(opacity >= 0 && opacity <= 1) {
		usageFault("PushLayer opacity outside [0, 1]")
	}
	if !blend.IsValid() {
		usageFault("PushLayer with unknown blend mode")
	}
	clipRef := PathRef(InvalidRef)
	if clip != nil {
		clipRef = s.resources.AddPath(clip)
	}
	s.scopes = append(s.scopes, frameLayer)
	s.commands = append(s.commands, PushLayerCommand{
		Transform: s.transform,
		Blend:     blend,
		Opacity:   opacity,
		Clip:      clipRef,
		ClipRule:  clipRule,
	})
}

// PopLayer composites the innermost open layer onto its parent. Panics if
// the innermost open scope is not a layer.
func (s *Scene) PopLayer() {
	s.checkRecording("PopLayer")
	if len(s.scopes) == 0 {
		usageFault("PopLayer without matching PushLayer")
	}
	if s.scopes[len(s.scopes)-1] != frameLayer {
		usageFault("PopLayer with an open clip inside the layer")
	}
	s.scopes = s.scopes[:len(s.scopes)-1]
	s.commands = append(s.commands, PopLayerCommand{})
}

// Reset discards all recorded commands and stack state, returning the
// scene to its initial empty state. Capacity is retained so a scene can
// be reused across frames without reallocating.
func (s *Scene) Reset() {
	s.checkRecording("Reset")
	s.commands = s.commands[:0]
	s.resources.Clear()
	s.transform = Identity()
	s.transformStack = s.transformStack[:0]
	s.scopes = s.scopes[:0]
}

// Finish seals the scene and returns the immutable Recording. Panics if
// any transform, clip or layer scope is still open: an unbalanced scene
// has no defined rendering.
//
// After Finish the scene is unusable; any further call panics.
func (s *Scene) Finish() *Recording {
	s.checkRecording("Finish")
	if len(s.scopes) > 0 {
		usageFault("Finish with unbalanced clip/layer scopes")
	}
	if len(s.transformStack) > 0 {
		usageFault("Finish with unbalanced transform stack")
	}
	s.finished = true
	Logger().Debug("scene finished",
		"commands", len(s.commands),
		"paths", s.resources.PathCount(),
		"paints", s.resources.PaintCount())
	return &Recording{
		commands:  s.commands,
		resources: s.resources,
	}
}
