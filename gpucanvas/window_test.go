package gpucanvas

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/anydraw"
)

// fakeDevice implements gpucontext.Device.
type fakeDevice struct{}

func (fakeDevice) Poll(wait bool) {}
func (fakeDevice) Destroy()       {}

// fakeProvider implements gpucontext.DeviceProvider.
type fakeProvider struct{}

func (fakeProvider) Device() gpucontext.Device   { return fakeDevice{} }
func (fakeProvider) Queue() gpucontext.Queue     { return nil }
func (fakeProvider) Adapter() gpucontext.Adapter { return nil }
func (fakeProvider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{}
}
func (fakeProvider) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// fakeTexture records uploads and destruction.
type fakeTexture struct {
	w, h      int
	updates   int
	destroyed bool
}

func (t *fakeTexture) UpdateData(data []byte) error {
	t.updates++
	return nil
}

func (t *fakeTexture) Destroy() { t.destroyed = true }

// plainTexture supports neither update nor destroy.
type plainTexture struct{}

// fakeDrawer implements TextureDrawer and TextureCreator.
type fakeDrawer struct {
	created   []*fakeTexture
	drawn     int
	plain     bool // create plainTexture instead
	createErr error
}

func (d *fakeDrawer) TextureCreator() TextureCreator { return d }

func (d *fakeDrawer) NewTextureFromRGBA(w, h int, data []byte) (any, error) {
	if d.createErr != nil {
		return nil, d.createErr
	}
	if d.plain {
		return plainTexture{}, nil
	}
	tex := &fakeTexture{w: w, h: h}
	d.created = append(d.created, tex)
	return tex, nil
}

func (d *fakeDrawer) DrawTexture(tex any, x, y float32) error {
	d.drawn++
	return nil
}

// fakeGPUSurface implements SurfaceHandle.
type fakeGPUSurface struct {
	w, h   int
	drawer *fakeDrawer
}

func (s *fakeGPUSurface) SurfaceSize() (int, int) { return s.w, s.h }

func (s *fakeGPUSurface) DeviceProvider() gpucontext.DeviceProvider { return fakeProvider{} }

func (s *fakeGPUSurface) TextureDrawer() TextureDrawer { return s.drawer }

// plainHandle satisfies only anydraw.WindowHandle.
type plainHandle struct{}

func (plainHandle) SurfaceSize() (int, int) { return 8, 8 }

func solidFrame(t *testing.T) *anydraw.Recording {
	t.Helper()
	scene := anydraw.NewScene()
	scene.Fill(anydraw.RectPath(anydraw.RectWH(0, 0, 100, 100)),
		anydraw.FillRuleNonZero, anydraw.Solid(anydraw.Blue))
	return scene.Finish()
}

func TestWindowCreatesThenUpdatesTexture(t *testing.T) {
	drawer := &fakeDrawer{}
	surface := &fakeGPUSurface{w: 16, h: 16, drawer: drawer}
	w := NewWindow()
	if err := w.Resume(surface); err != nil {
		t.Fatalf("Resume() error = %v", err)
	}

	rec := solidFrame(t)
	if err := w.Render(rec); err != nil {
		t.Fatalf("first Render() error = %v", err)
	}
	if len(drawer.created) != 1 {
		t.Fatalf("textures created = %d, want 1", len(drawer.created))
	}
	if drawer.created[0].w != 16 || drawer.created[0].h != 16 {
		t.Errorf("texture size = %dx%d, want 16x16", drawer.created[0].w, drawer.created[0].h)
	}

	// A second frame at the same size updates in place.
	if err := w.Render(rec); err != nil {
		t.Fatalf("second Render() error = %v", err)
	}
	if len(drawer.created) != 1 {
		t.Errorf("textures created after update = %d, want still 1", len(drawer.created))
	}
	if drawer.created[0].updates != 1 {
		t.Errorf("updates = %d, want 1", drawer.created[0].updates)
	}
	if drawer.drawn != 2 {
		t.Errorf("draw calls = %d, want 2", drawer.drawn)
	}
}

func TestWindowResizeRecreatesAndDefersDestroy(t *testing.T) {
	drawer := &fakeDrawer{}
	surface := &fakeGPUSurface{w: 8, h: 8, drawer: drawer}
	w := NewWindow()
	if err := w.Resume(surface); err != nil {
		t.Fatalf("Resume() error = %v", err)
	}
	rec := solidFrame(t)
	if err := w.Render(rec); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	surface.w, surface.h = 20, 10
	if err := w.Render(rec); err != nil {
		t.Fatalf("Render after resize error = %v", err)
	}
	if len(drawer.created) != 2 {
		t.Fatalf("textures created = %d, want 2", len(drawer.created))
	}
	if !drawer.created[0].destroyed {
		t.Error("old texture not destroyed after replacement upload")
	}
	if drawer.created[1].w != 20 || drawer.created[1].h != 10 {
		t.Errorf("new texture size = %dx%d, want 20x10",
			drawer.created[1].w, drawer.created[1].h)
	}
}

func TestWindowRecreatesWhenUpdateUnsupported(t *testing.T) {
	drawer := &fakeDrawer{plain: true}
	surface := &fakeGPUSurface{w: 8, h: 8, drawer: drawer}
	w := NewWindow()
	if err := w.Resume(surface); err != nil {
		t.Fatalf("Resume() error = %v", err)
	}
	rec := solidFrame(t)
	if err := w.Render(rec); err != nil {
		t.Fatalf("first Render() error = %v", err)
	}
	// plainTexture cannot update in place; the second frame recreates.
	if err := w.Render(rec); err != nil {
		t.Fatalf("second Render() error = %v", err)
	}
	if drawer.drawn != 2 {
		t.Errorf("draw calls = %d, want 2", drawer.drawn)
	}
}

func TestWindowRejectsPlainHandle(t *testing.T) {
	w := NewWindow()
	err := w.Resume(plainHandle{})
	if !errors.Is(err, anydraw.ErrInvalidHandle) {
		t.Fatalf("Resume(plainHandle) error = %v, want ErrInvalidHandle", err)
	}
}

func TestWindowCreateFailureIsTransient(t *testing.T) {
	drawer := &fakeDrawer{createErr: errors.New("device lost")}
	surface := &fakeGPUSurface{w: 8, h: 8, drawer: drawer}
	w := NewWindow()
	if err := w.Resume(surface); err != nil {
		t.Fatalf("Resume() error = %v", err)
	}
	err := w.Render(solidFrame(t))
	if err == nil {
		t.Fatal("Render() succeeded despite texture creation failure")
	}
	if !anydraw.IsTransient(err) {
		t.Errorf("creation failure %v not reported transient", err)
	}
}

func TestWindowLifecycle(t *testing.T) {
	drawer := &fakeDrawer{}
	surface := &fakeGPUSurface{w: 8, h: 8, drawer: drawer}
	w := NewWindow()
	rec := solidFrame(t)

	if err := w.Render(rec); !errors.Is(err, anydraw.ErrNotBound) {
		t.Errorf("Render unbound error = %v, want ErrNotBound", err)
	}
	if err := w.Resume(surface); err != nil {
		t.Fatalf("Resume() error = %v", err)
	}
	if err := w.Render(rec); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if err := w.Suspend(); err != nil {
		t.Fatalf("Suspend() error = %v", err)
	}
	if !drawer.created[0].destroyed {
		t.Error("Suspend did not destroy the frame texture")
	}
	if err := w.Render(rec); !errors.Is(err, anydraw.ErrSuspended) {
		t.Errorf("Render suspended error = %v, want ErrSuspended", err)
	}

	if err := w.Resume(nil); err != nil {
		t.Fatalf("Resume(nil) error = %v", err)
	}
	if err := w.Render(rec); err != nil {
		t.Fatalf("Render after rebind error = %v", err)
	}

	if err := w.Destroy(); err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}
	if err := w.Render(rec); !errors.Is(err, anydraw.ErrDestroyed) {
		t.Errorf("Render destroyed error = %v, want ErrDestroyed", err)
	}
	if err := w.Destroy(); err != nil {
		t.Errorf("second Destroy() error = %v", err)
	}
}

func TestDriverRegistered(t *testing.T) {
	if !anydraw.IsRegistered(DriverName) {
		t.Fatal("gpucanvas driver is not registered")
	}
	r, err := anydraw.NewImageRenderer(DriverName)
	if err != nil || r == nil {
		t.Fatalf("NewImageRenderer(gpucanvas) = %v, %v", r, err)
	}
	wr, err := anydraw.NewWindowRenderer(DriverName)
	if err != nil {
		t.Fatalf("NewWindowRenderer(gpucanvas) error = %v", err)
	}
	if _, ok := wr.(*Window); !ok {
		t.Errorf("window renderer type = %T, want *Window", wr)
	}
}
