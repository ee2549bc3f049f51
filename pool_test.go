package anydraw

import (
	"image"
	"testing"
)

func TestResourcePoolRoundTrip(t *testing.T) {
	pool := NewResourcePool()

	pathRef := pool.AddPath(NewPath().MoveTo(0, 0).LineTo(1, 1))
	paintRef := pool.AddPaint(Solid(Red))
	imgRef := pool.AddImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	fontRef := pool.AddFont(FontData{Data: []byte{0, 1, 0, 0}})

	if pool.Path(pathRef) == nil {
		t.Error("Path() = nil for valid ref")
	}
	if pool.Paint(paintRef) == nil {
		t.Error("Paint() = nil for valid ref")
	}
	if pool.Image(imgRef) == nil {
		t.Error("Image() = nil for valid ref")
	}
	if len(pool.Font(fontRef).Data) == 0 {
		t.Error("Font() empty for valid ref")
	}

	if pool.PathCount() != 1 || pool.PaintCount() != 1 || pool.ImageCount() != 1 || pool.FontCount() != 1 {
		t.Errorf("counts = %d/%d/%d/%d, want 1 each",
			pool.PathCount(), pool.PaintCount(), pool.ImageCount(), pool.FontCount())
	}
}

func TestResourcePoolInvalidRefs(t *testing.T) {
	pool := NewResourcePool()
	if pool.Path(PathRef(InvalidRef)) != nil {
		t.Error("Path(InvalidRef) != nil")
	}
	if pool.Paint(PaintRef(InvalidRef)) != nil {
		t.Error("Paint(InvalidRef) != nil")
	}
	if pool.Image(ImageRef(5)) != nil {
		t.Error("Image(out of range) != nil")
	}
	if pool.Font(FontRef(5)).Data != nil {
		t.Error("Font(out of range) is not zero value")
	}
}

func TestResourcePoolClear(t *testing.T) {
	pool := NewResourcePool()
	pool.AddPaint(Solid(Red))
	pool.Clear()
	if pool.PaintCount() != 0 {
		t.Errorf("PaintCount() after Clear = %d, want 0", pool.PaintCount())
	}
}
