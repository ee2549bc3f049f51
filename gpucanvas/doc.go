// Package gpucanvas is the GPU-presented window backend for anydraw.
//
// It registers itself as the "gpucanvas" driver:
//
//	import _ "github.com/gogpu/anydraw/gpucanvas"
//
// Frames are rasterized on the CPU (by the softraster backend, or any
// anydraw.ImageRenderer injected with SetRasterizer) and presented through
// the gogpu texture pipeline: the premultiplied RGBA buffer is uploaded to
// a GPU texture and drawn onto the surface each frame.
//
// # Handle requirements
//
// The window handle passed to Resume must implement SurfaceHandle, which
// extends anydraw.WindowHandle with access to the host's
// gpucontext.DeviceProvider and a texture drawer. Texture creation and
// drawing use small local interfaces rather than depending on a concrete
// GPU framework, so any host exposing equivalent methods can bind.
//
// # Texture lifecycle
//
// The frame texture is created lazily on first render and updated in
// place while the surface size is stable. On resize the old texture is
// kept alive until the replacement upload has completed, then destroyed;
// in-flight GPU work may still reference it before that point.
package gpucanvas
