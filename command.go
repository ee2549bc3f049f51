package anydraw

// CommandType identifies the type of a recorded command.
// Each command type corresponds to a specific drawing operation.
type CommandType uint8

const (
	// Drawing commands
	CmdFill         CommandType = iota // Fill a path
	CmdStroke                          // Stroke a path
	CmdDrawImage                       // Composite a raster image
	CmdDrawGlyphRun                    // Fill a positioned glyph run

	// Scope commands
	CmdPushClip  // Intersect the active clip with a region
	CmdPopClip   // Restore the previous clip
	CmdPushLayer // Open a compositing group
	CmdPopLayer  // Composite the group onto its parent
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdFill:         "Fill",
	CmdStroke:       "Stroke",
	CmdDrawImage:    "DrawImage",
	CmdDrawGlyphRun: "DrawGlyphRun",
	CmdPushClip:     "PushClip",
	CmdPopClip:      "PopClip",
	CmdPushLayer:    "PushLayer",
	CmdPopLayer:     "PopLayer",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all recorded command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// Reference Types
// --------------------------------------------------------------------------

// PathRef is a reference to a path in the resource pool.
type PathRef uint32

// PaintRef is a reference to a paint in the resource pool.
type PaintRef uint32

// ImageRef is a reference to an image in the resource pool.
type ImageRef uint32

// FontRef is a reference to font data in the resource pool.
type FontRef uint32

// InvalidRef is the sentinel value for an invalid reference. Commands use
// it for optional resources, e.g. a layer without a clip path.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid path.
func (r PathRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid returns true if the reference points to a valid paint.
func (r PaintRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid returns true if the reference points to a valid image.
func (r ImageRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid returns true if the reference points to valid font data.
func (r FontRef) IsValid() bool { return uint32(r) != InvalidRef }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------
//
// Every command carries the transform that was active when it was issued:
// geometry is interpreted in the accumulated transform at record time, not
// at push/pop time, so PushTransform/PopTransform are recorder state and
// emit no commands of their own.

// FillCommand rasterizes a path's interior under a paint.
type FillCommand struct {
	// Transform is the accumulated transform at issue time.
	Transform Matrix
	// Path references the path to fill in the resource pool.
	Path PathRef
	// Rule resolves self-intersecting interiors.
	Rule FillRule
	// Paint references the fill source in the resource pool.
	Paint PaintRef
}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// StrokeCommand rasterizes a path's outline under a paint.
type StrokeCommand struct {
	// Transform is the accumulated transform at issue time.
	Transform Matrix
	// Path references the path to stroke in the resource pool.
	Path PathRef
	// Stroke is the stroke style (width, cap, join, dash).
	Stroke Stroke
	// Paint references the stroke source in the resource pool.
	Paint PaintRef
}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// DrawImageCommand composites a raster image into a destination rectangle.
// Sampling policy (nearest/bilinear) is a backend concern.
type DrawImageCommand struct {
	// Transform is the accumulated transform at issue time.
	Transform Matrix
	// Image references the image in the resource pool.
	Image ImageRef
	// Dst is the destination rectangle in local coordinates.
	Dst Rect
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

// DrawGlyphRunCommand fills a positioned glyph run. Treated as a
// specialized fill for anti-aliasing purposes.
type DrawGlyphRunCommand struct {
	// Transform is the accumulated transform at issue time.
	Transform Matrix
	// Font references the opaque font data in the resource pool.
	Font FontRef
	// Size is the font size in user units.
	Size float64
	// NormalizedCoords are variable-font axis coordinates (2.14).
	NormalizedCoords []int16
	// Glyphs are the positioned glyphs.
	Glyphs []Glyph
	// Paint references the fill source in the resource pool.
	Paint PaintRef
}

// Type implements Command.
func (DrawGlyphRunCommand) Type() CommandType { return CmdDrawGlyphRun }

// --------------------------------------------------------------------------
// Scope Commands
// --------------------------------------------------------------------------

// PushClipCommand intersects the active clip with a path region. An empty
// resulting region is legal and means "draw nothing", not an error.
type PushClipCommand struct {
	// Transform is the accumulated transform at issue time.
	Transform Matrix
	// Path references the clip path in the resource pool.
	Path PathRef
	// Rule resolves the clip path's interior.
	Rule FillRule
}

// Type implements Command.
func (PushClipCommand) Type() CommandType { return CmdPushClip }

// PopClipCommand restores the clip active before the matching push.
type PopClipCommand struct{}

// Type implements Command.
func (PopClipCommand) Type() CommandType { return CmdPopClip }

// PushLayerCommand opens a compositing group. Content drawn until the
// matching pop renders into an intermediate surface, then composites onto
// the parent using Blend and Opacity.
type PushLayerCommand struct {
	// Transform is the accumulated transform at issue time.
	Transform Matrix
	// Blend composites the finished group onto the parent.
	Blend BlendMode
	// Opacity is the group alpha in [0, 1].
	Opacity float64
	// Clip optionally bounds the layer; InvalidRef for none. A layer
	// with a clip is equivalent to clip+layer combined.
	Clip PathRef
	// ClipRule resolves the clip path's interior when Clip is valid.
	ClipRule FillRule
}

// Type implements Command.
func (PushLayerCommand) Type() CommandType { return CmdPushLayer }

// PopLayerCommand composites the accumulated group onto its parent.
type PopLayerCommand struct{}

// Type implements Command.
func (PopLayerCommand) Type() CommandType { return CmdPopLayer }
