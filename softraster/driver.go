package softraster

import "github.com/gogpu/anydraw"

// DriverName is the name this backend registers under.
const DriverName = "softraster"

type driver struct{}

func (driver) Name() string { return DriverName }

func (driver) NewImageRenderer() (anydraw.ImageRenderer, error) {
	return NewRenderer(), nil
}

func (driver) NewWindowRenderer() (anydraw.WindowRenderer, error) {
	return NewWindow(), nil
}

func init() {
	anydraw.Register(driver{})
}
