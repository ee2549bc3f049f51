// Command anydraw-demo renders a sample scene with the softraster backend
// and writes it to a PNG file.
package main

import (
	"flag"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/gogpu/anydraw"
	"github.com/gogpu/anydraw/textshape"
	"golang.org/x/image/font/gofont/goregular"

	_ "github.com/gogpu/anydraw/softraster"
)

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		output = flag.String("output", "demo.png", "output file")
		driver = flag.String("driver", "softraster", "render driver")
	)
	flag.Parse()

	scene := anydraw.NewScene()
	drawBackground(scene, *width, *height)
	drawShapes(scene)
	drawStrokes(scene)
	drawClipAndLayer(scene)
	drawText(scene)
	rec := scene.Finish()

	r, err := anydraw.NewImageRenderer(*driver)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	img, err := r.Render(rec, *width, *height)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func drawBackground(scene *anydraw.Scene, w, h int) {
	bg := anydraw.LinearGradient(0, 0, 0, float64(h)).
		AddStop(0, anydraw.RGB(0.10, 0.20, 0.40)).
		AddStop(1, anydraw.RGB(0.50, 0.50, 0.60))
	scene.Fill(anydraw.RectPath(anydraw.RectWH(0, 0, float64(w), float64(h))),
		anydraw.FillRuleNonZero, bg)
}

func drawShapes(scene *anydraw.Scene) {
	// Overlapping translucent circles.
	colors := []anydraw.RGBA{
		{R: 1, G: 0.3, B: 0.3, A: 0.8},
		{R: 0.3, G: 1, B: 0.3, A: 0.8},
		{R: 0.3, G: 0.3, B: 1, A: 0.8},
	}
	centers := []anydraw.Point{{X: 150, Y: 150}, {X: 200, Y: 150}, {X: 175, Y: 200}}
	for i, c := range colors {
		scene.Fill(anydraw.EllipsePath(centers[i].X, centers[i].Y, 60, 60),
			anydraw.FillRuleNonZero, anydraw.Solid(c))
	}

	// Radial highlight with an off-center focus.
	glow := anydraw.RadialGradient(420, 160, 0, 80).
		SetFocus(400, 140).
		AddStop(0, anydraw.White).
		AddStop(1, anydraw.RGB(1, 0.8, 0))
	scene.Fill(anydraw.EllipsePath(420, 160, 80, 80), anydraw.FillRuleNonZero, glow)

	// Sweep gradient wheel.
	wheel := anydraw.SweepGradient(640, 160, 0).
		AddStop(0, anydraw.Red).
		AddStop(1.0/3, anydraw.Green).
		AddStop(2.0/3, anydraw.Blue).
		AddStop(1, anydraw.Red)
	scene.Fill(anydraw.EllipsePath(640, 160, 70, 70), anydraw.FillRuleNonZero, wheel)

	// Even-odd star: self-intersecting outline leaves a hole in the middle.
	star := starPath(150, 420, 80, 5)
	scene.Fill(star, anydraw.FillRuleEvenOdd, anydraw.Solid(anydraw.RGB(1, 0.8, 0)))
}

func drawStrokes(scene *anydraw.Scene) {
	wave := anydraw.NewPath().MoveTo(300, 420)
	for i := 0; i < 4; i++ {
		x := 300 + float64(i)*60
		wave.CubicTo(x+20, 380, x+40, 460, x+60, 420)
	}
	scene.Stroke(wave,
		anydraw.DefaultStroke().WithWidth(6).WithCap(anydraw.LineCapRound),
		anydraw.Solid(anydraw.White))

	dashed := anydraw.RectPath(anydraw.RectWH(300, 480, 240, 60))
	scene.Stroke(dashed,
		anydraw.DefaultStroke().WithWidth(3).WithDash([]float64{12, 6}, 0),
		anydraw.Solid(anydraw.RGB(0.9, 0.9, 0.4)))
}

func drawClipAndLayer(scene *anydraw.Scene) {
	// Rotated squares multiplied over the background inside a circular clip.
	scene.PushClip(anydraw.EllipsePath(640, 440, 100, 100), anydraw.FillRuleNonZero)
	scene.PushLayer(anydraw.BlendMultiply, 0.9, nil, anydraw.FillRuleNonZero)

	for i := 0; i < 6; i++ {
		angle := float64(i) * math.Pi / 12
		scene.PushTransform(anydraw.Translate(640, 440))
		scene.PushTransform(anydraw.Rotate(angle))
		scene.Fill(anydraw.RectPath(anydraw.RectWH(-70, -70, 140, 140)),
			anydraw.FillRuleNonZero,
			anydraw.Solid(anydraw.RGBA{R: 1, G: 1 - float64(i)*0.15, B: 0.4, A: 0.5}))
		scene.PopTransform()
		scene.PopTransform()
	}

	scene.PopLayer()
	scene.PopClip()
}

func drawText(scene *anydraw.Scene) {
	shaper := textshape.NewShaper()
	run, err := shaper.Shape(anydraw.FontData{Data: goregular.TTF}, "anydraw", 48)
	if err != nil {
		log.Fatalf("Failed to shape text: %v", err)
	}
	scene.PushTransform(anydraw.Translate(60, 80))
	scene.DrawGlyphRun(run, anydraw.Solid(anydraw.White))
	scene.PopTransform()
}

// starPath builds a self-intersecting star polygon around (cx, cy).
func starPath(cx, cy, r float64, points int) *anydraw.Path {
	p := anydraw.NewPath()
	step := 2 * math.Pi * 2 / float64(points) // skip every other vertex
	for i := 0; i <= points; i++ {
		a := -math.Pi/2 + float64(i)*step
		x := cx + r*math.Cos(a)
		y := cy + r*math.Sin(a)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	return p.Close()
}
