package anydraw

import (
	"fmt"
	"sort"
	"sync"
)

// Driver is implemented by rendering backends. Backends register
// themselves in an init function, following the database/sql driver
// pattern, so importing a backend package for side effects is enough to
// make it available by name.
type Driver interface {
	// Name returns the unique backend name, e.g. "softraster".
	Name() string

	// NewImageRenderer creates an image renderer. Backends that only
	// target windows return ErrUnsupported.
	NewImageRenderer() (ImageRenderer, error)

	// NewWindowRenderer creates an unbound window renderer. Backends
	// that only target buffers return ErrUnsupported.
	NewWindowRenderer() (WindowRenderer, error)
}

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]Driver)
)

// Register makes a driver available by its name. It panics if the driver
// is nil or already registered; both indicate a wiring bug, not a runtime
// condition.
func Register(d Driver) {
	driversMu.Lock()
	defer driversMu.Unlock()
	if d == nil {
		panic("anydraw: Register driver is nil")
	}
	name := d.Name()
	if _, dup := drivers[name]; dup {
		panic("anydraw: Register called twice for driver " + name)
	}
	drivers[name] = d
	Logger().Debug("driver registered", "name", name)
}

// Unregister removes a driver. Mainly for tests.
func Unregister(name string) {
	driversMu.Lock()
	defer driversMu.Unlock()
	delete(drivers, name)
}

// Drivers returns the names of the registered drivers, sorted.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a driver with the given name exists.
func IsRegistered(name string) bool {
	driversMu.RLock()
	defer driversMu.RUnlock()
	_, ok := drivers[name]
	return ok
}

func lookup(name string) (Driver, error) {
	driversMu.RLock()
	d, ok := drivers[name]
	driversMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("anydraw: unknown driver %q (forgotten import?)", name)
	}
	return d, nil
}

// NewImageRenderer creates an image renderer from the named driver.
func NewImageRenderer(name string) (ImageRenderer, error) {
	d, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return d.NewImageRenderer()
}

// NewWindowRenderer creates an unbound window renderer from the named
// driver. The result must be Resumed with a window handle before use.
func NewWindowRenderer(name string) (WindowRenderer, error) {
	d, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return d.NewWindowRenderer()
}
