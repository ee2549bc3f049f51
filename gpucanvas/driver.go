package gpucanvas

import (
	"github.com/gogpu/anydraw"
	"github.com/gogpu/anydraw/softraster"
)

// DriverName is the name this backend registers under.
const DriverName = "gpucanvas"

type driver struct{}

func (driver) Name() string { return DriverName }

// NewImageRenderer returns a CPU renderer: offscreen rendering does not go
// through the texture pipeline, so the softraster implementation is the
// image contract for this backend too.
func (driver) NewImageRenderer() (anydraw.ImageRenderer, error) {
	return softraster.NewRenderer(), nil
}

func (driver) NewWindowRenderer() (anydraw.WindowRenderer, error) {
	return NewWindow(), nil
}

func init() {
	anydraw.Register(driver{})
}
