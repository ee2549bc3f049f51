// Package anydraw defines a backend-agnostic 2D drawing abstraction.
//
// # Overview
//
// anydraw is a small interop boundary between code that *produces* vector
// graphics (applications, UI frameworks, SVG renderers) and code that
// *consumes* them (GPU pipelines, CPU rasterizers, hybrid backends). The
// producer records drawing commands into a Scene; the completed Recording
// is handed to a render contract that turns it into pixels.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/anydraw"
//	    _ "github.com/gogpu/anydraw/softraster" // register the CPU backend
//	)
//
//	scene := anydraw.NewScene()
//	scene.Fill(anydraw.RectPath(anydraw.Rect{MaxX: 100, MaxY: 100}),
//	    anydraw.FillRuleNonZero, anydraw.Solid(anydraw.Red))
//	rec := scene.Finish()
//
//	renderer, _ := anydraw.NewImageRenderer("softraster")
//	img, _ := renderer.Render(rec, 100, 100)
//
// # Architecture
//
// The library is organized into three contracts, plus their value types:
//
//   - Scene: the recorder. Captures fill/stroke/image/glyph commands and
//     the transform/clip/layer stack discipline that scopes them.
//   - ImageRenderer: consumes one Recording and produces a finished
//     premultiplied-RGBA pixel buffer in memory.
//   - WindowRenderer: consumes recordings repeatedly over the lifetime of
//     a platform window, with resume/suspend/resize lifecycle.
//
// Backends register themselves via Register, following the database/sql
// driver pattern. The module ships two:
//
//   - softraster: a pure-Go anti-aliased CPU rasterizer
//   - gpucanvas: a window renderer presenting through gogpu/gpucontext
//
// # Stack discipline
//
// PushTransform/PushClip/PushLayer calls must be strictly balanced by the
// matching pop before Finish. Violations are programmer errors and panic
// immediately; see Scene for details. Drawing commands are painter's
// algorithm: later commands draw over earlier ones within the same layer.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
package anydraw

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
