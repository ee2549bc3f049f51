package anydraw

// BlendMode specifies how a layer's accumulated content is composited
// onto its parent when the layer is popped.
type BlendMode uint8

const (
	// BlendSourceOver is the default Porter-Duff source-over mode.
	BlendSourceOver BlendMode = iota

	// BlendMultiply multiplies source and destination colors.
	BlendMultiply

	// BlendScreen is the inverse of multiply.
	BlendScreen

	// BlendOverlay combines multiply and screen.
	BlendOverlay

	// BlendDarken selects the darker of source and destination.
	BlendDarken

	// BlendLighten selects the lighter of source and destination.
	BlendLighten
)

// blendModeNames maps BlendMode values to their string representation.
var blendModeNames = [...]string{
	BlendSourceOver: "SourceOver",
	BlendMultiply:   "Multiply",
	BlendScreen:     "Screen",
	BlendOverlay:    "Overlay",
	BlendDarken:     "Darken",
	BlendLighten:    "Lighten",
}

// String returns the string representation of a BlendMode.
func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return "Unknown"
}

// IsValid reports whether the mode is one of the declared blend modes.
func (m BlendMode) IsValid() bool {
	return int(m) < len(blendModeNames)
}
