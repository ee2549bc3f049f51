package anydraw

import "image"

// ResourcePool stores resources referenced by recorded commands.
// Resources are stored in slices indexed by their reference types.
// Paths are cloned on add so recordings stay immutable even when the
// caller keeps mutating the original path.
//
// ResourcePool is not safe for concurrent use during recording. After the
// owning Scene is finished, the pool is read-only and safe to share.
type ResourcePool struct {
	paths  []*Path
	paints []Paint
	images []image.Image
	fonts  []FontData
}

// NewResourcePool creates an empty resource pool with pre-allocated
// capacity for a typical frame.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths:  make([]*Path, 0, 64),
		paints: make([]Paint, 0, 32),
		images: make([]image.Image, 0, 8),
		fonts:  make([]FontData, 0, 4),
	}
}

// AddPath adds a path to the pool and returns its reference.
// The path is cloned to ensure immutability of the recording.
func (p *ResourcePool) AddPath(path *Path) PathRef {
	p.paths = append(p.paths, path.Clone())
	return PathRef(uint32(len(p.paths) - 1))
}

// Path returns the path for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) Path(ref PathRef) *Path {
	if !ref.IsValid() || int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int { return len(p.paths) }

// AddPaint adds a paint to the pool and returns its reference.
// Paints are stored directly; they are immutable once recorded.
func (p *ResourcePool) AddPaint(paint Paint) PaintRef {
	p.paints = append(p.paints, paint)
	return PaintRef(uint32(len(p.paints) - 1))
}

// Paint returns the paint for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) Paint(ref PaintRef) Paint {
	if !ref.IsValid() || int(ref) >= len(p.paints) {
		return nil
	}
	return p.paints[ref]
}

// PaintCount returns the number of paints in the pool.
func (p *ResourcePool) PaintCount() int { return len(p.paints) }

// AddImage adds an image to the pool and returns its reference.
// Images are stored by reference; callers must not mutate them afterwards.
func (p *ResourcePool) AddImage(img image.Image) ImageRef {
	p.images = append(p.images, img)
	return ImageRef(uint32(len(p.images) - 1))
}

// Image returns the image for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) Image(ref ImageRef) image.Image {
	if !ref.IsValid() || int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// ImageCount returns the number of images in the pool.
func (p *ResourcePool) ImageCount() int { return len(p.images) }

// AddFont adds font data to the pool and returns its reference.
// Font bytes are shared, not copied; fonts are treated as immutable.
func (p *ResourcePool) AddFont(font FontData) FontRef {
	p.fonts = append(p.fonts, font)
	return FontRef(uint32(len(p.fonts) - 1))
}

// Font returns the font data for the given reference.
// Returns the zero FontData if the reference is invalid.
func (p *ResourcePool) Font(ref FontRef) FontData {
	if !ref.IsValid() || int(ref) >= len(p.fonts) {
		return FontData{}
	}
	return p.fonts[ref]
}

// FontCount returns the number of fonts in the pool.
func (p *ResourcePool) FontCount() int { return len(p.fonts) }

// Clear removes all resources from the pool, retaining capacity.
func (p *ResourcePool) Clear() {
	p.paths = p.paths[:0]
	p.paints = p.paints[:0]
	p.images = p.images[:0]
	p.fonts = p.fonts[:0]
}
