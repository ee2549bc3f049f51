package anydraw

import (
	"fmt"
	"math"
)

// LineCap specifies the shape of line endpoints.
type LineCap uint8

const (
	// LineCapButt specifies a flat line cap (no extension).
	LineCapButt LineCap = iota

	// LineCapRound specifies a semicircular line cap.
	LineCapRound

	// LineCapSquare specifies a square line cap (extends by half width).
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin uint8

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota

	// LineJoinRound specifies a rounded join.
	LineJoinRound

	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// Stroke defines the style for stroking paths.
type Stroke struct {
	// Width is the line width in user units. Must be > 0.
	Width float64

	// Cap is the shape of line endpoints.
	Cap LineCap

	// Join is the shape of line joins.
	Join LineJoin

	// MiterLimit is the limit for miter joins before they become bevels,
	// as the ratio of miter length to stroke width. Must be >= 1 when Join
	// is LineJoinMiter; DefaultStroke uses 4.
	MiterLimit float64

	// DashPattern is the dash pattern as alternating on/off lengths.
	// Nil or empty means a solid stroke.
	DashPattern []float64

	// DashOffset is the starting phase offset into the dash pattern.
	DashOffset float64
}

// DefaultStroke returns a Stroke with default settings: a solid 1-unit
// line with butt caps and miter joins.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
	}
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithCap returns a copy of the Stroke with the given line cap style.
func (s Stroke) WithCap(lineCap LineCap) Stroke {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy of the Stroke with the given line join style.
func (s Stroke) WithJoin(join LineJoin) Stroke {
	s.Join = join
	return s
}

// WithMiterLimit returns a copy of the Stroke with the given miter limit.
func (s Stroke) WithMiterLimit(limit float64) Stroke {
	s.MiterLimit = limit
	return s
}

// WithDash returns a copy of the Stroke with the given dash pattern and
// phase offset. An empty pattern means a solid stroke.
func (s Stroke) WithDash(pattern []float64, offset float64) Stroke {
	s.DashPattern = append([]float64(nil), pattern...)
	s.DashOffset = offset
	return s
}

// IsDashed returns true if this stroke has a dash pattern with at least
// one positive length.
func (s Stroke) IsDashed() bool {
	for _, l := range s.DashPattern {
		if l > 0 {
			return true
		}
	}
	return false
}

// Clone creates a deep copy of the Stroke.
func (s Stroke) Clone() Stroke {
	result := s
	if s.DashPattern != nil {
		result.DashPattern = make([]float64, len(s.DashPattern))
		copy(result.DashPattern, s.DashPattern)
	}
	return result
}

// validate checks the stroke at record time.
func (s Stroke) validate() error {
	if !(s.Width > 0) || math.IsInf(s.Width, 1) {
		return fmt.Errorf("stroke width %v must be positive and finite", s.Width)
	}
	// A ratio below 1 is geometrically impossible, so a zero value (from a
	// struct literal) would silently bevel every miter join.
	if s.Join == LineJoinMiter && !(s.MiterLimit >= 1) {
		return fmt.Errorf("miter limit %v must be >= 1 for miter joins", s.MiterLimit)
	}
	for i, l := range s.DashPattern {
		if l < 0 || math.IsNaN(l) {
			return fmt.Errorf("dash length %d is %v, must be >= 0", i, l)
		}
	}
	return nil
}
