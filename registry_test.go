package anydraw

import (
	"image"
	"strings"
	"testing"
)

// fakeDriver is a minimal Driver for registry tests.
type fakeDriver struct {
	name string
}

func (d *fakeDriver) Name() string { return d.name }

func (d *fakeDriver) NewImageRenderer() (ImageRenderer, error) {
	return fakeImageRenderer{}, nil
}

func (d *fakeDriver) NewWindowRenderer() (WindowRenderer, error) {
	return nil, ErrUnsupported
}

type fakeImageRenderer struct{}

func (fakeImageRenderer) Render(_ *Recording, w, h int) (*image.RGBA, error) {
	return image.NewRGBA(image.Rect(0, 0, w, h)), nil
}

func (fakeImageRenderer) RenderInto(_ *Recording, _ *image.RGBA) error {
	return nil
}

func TestRegisterAndLookup(t *testing.T) {
	Register(&fakeDriver{name: "fake"})
	defer Unregister("fake")

	if !IsRegistered("fake") {
		t.Fatal(`IsRegistered("fake") = false, want true`)
	}

	r, err := NewImageRenderer("fake")
	if err != nil {
		t.Fatalf(`NewImageRenderer("fake") error = %v`, err)
	}
	if r == nil {
		t.Fatal("NewImageRenderer returned nil renderer")
	}

	found := false
	for _, name := range Drivers() {
		if name == "fake" {
			found = true
		}
	}
	if !found {
		t.Errorf("Drivers() = %v, want to contain fake", Drivers())
	}
}

func TestRegisterNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register(nil) did not panic")
		}
	}()
	Register(nil)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(&fakeDriver{name: "dup"})
	defer Unregister("dup")
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register(&fakeDriver{name: "dup"})
}

func TestUnknownDriverError(t *testing.T) {
	_, err := NewImageRenderer("no-such-backend")
	if err == nil {
		t.Fatal("NewImageRenderer with unknown name succeeded")
	}
	if !strings.Contains(err.Error(), "forgotten import?") {
		t.Errorf("error %q does not hint at a missing import", err)
	}

	_, err = NewWindowRenderer("no-such-backend")
	if err == nil {
		t.Fatal("NewWindowRenderer with unknown name succeeded")
	}
}
