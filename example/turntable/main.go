// Command turntable renders a spinning wireframe cube to a sequence of
// WebP frames. It exercises the full transform chain: quaternion slerp
// for the spin, LookAt and Perspective for the camera, and Vec3
// transforms to carry vertices into pixel space.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"github.com/akmonengine/quill"
	"golang.org/x/image/draw"
)

const supersample = 4

var cubeVertices = [8]quill.Vec3{
	{-1, -1, -1},
	{1, -1, -1},
	{1, 1, -1},
	{-1, 1, -1},
	{-1, -1, 1},
	{1, -1, 1},
	{1, 1, 1},
	{-1, 1, 1},
}

var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func main() {
	out := flag.String("out", "frames", "output directory for the rendered frames")
	size := flag.Int("size", 256, "frame width and height in pixels")
	frames := flag.Int("frames", 24, "number of frames for a full revolution")
	dist := flag.Float64("dist", 5, "camera distance from the cube")
	fov := flag.Float64("fov", 60, "vertical field of view in degrees")
	flag.Parse()

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(handler))

	if err := run(*out, *size, *frames, float32(*dist), float32(*fov)); err != nil {
		slog.Error("render failed", "error", err)
		os.Exit(1)
	}
}

func run(out string, size, frames int, dist, fovDeg float32) error {
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	view := quill.LookAt(quill.Vec3{0, 1.5, dist}, quill.Vec3{}, quill.Vec3{0, 1, 0})
	proj := quill.Perspective(quill.DegToRad(fovDeg), 1, 0.1, 100)
	var viewProj quill.Mat4
	proj.Mul(&view, &viewProj)

	// One full turn, interpolated as two slerp half-arcs so no step has to
	// cross the 180 degree ambiguity.
	start := quill.QuatIdentity()
	half := quill.QuatFromAxisAngle(quill.Vec3{0, 1, 0}, quill.DegToRad(180))

	slog.Info("rendering turntable", "frames", frames, "size", size, "out", out)

	for i := 0; i < frames; i++ {
		t := float32(i) / float32(frames)
		var spin quill.Quat
		if t < 0.5 {
			start.Slerp(&half, t*2, &spin)
		} else {
			// Continue from 180 degrees instead of retracing the first arc.
			start.Slerp(&half, t*2-1, &spin)
			half.Mul(&spin, &spin)
		}

		img := renderFrame(&viewProj, &spin, size)

		name := filepath.Join(out, fmt.Sprintf("frame_%03d.webp", i))
		if err := writeWebP(name, img); err != nil {
			return err
		}
		slog.Info("wrote frame", "file", name)
	}
	return nil
}

func renderFrame(viewProj *quill.Mat4, spin *quill.Quat, size int) *image.NRGBA {
	model := quill.Mat4FromQuat(spin)
	var mvp quill.Mat4
	viewProj.Mul(&model, &mvp)

	big := size * supersample
	img := image.NewNRGBA(image.Rect(0, 0, big, big))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	// Project every vertex once, then draw the edges.
	var screen [8][2]int
	for i, v := range cubeVertices {
		var ndc quill.Vec3
		v.TransformMat4(&mvp, &ndc)
		screen[i][0] = int((ndc[0] + 1) * 0.5 * float32(big))
		screen[i][1] = int((1 - ndc[1]) * 0.5 * float32(big))
	}
	ink := color.NRGBA{30, 30, 30, 255}
	for _, e := range cubeEdges {
		drawLine(img, screen[e[0]][0], screen[e[0]][1], screen[e[1]][0], screen[e[1]][1], ink)
	}

	return downsample(img, size)
}

// drawLine rasterizes a segment with the integer Bresenham walk.
func drawLine(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		if image.Pt(x0, y0).In(img.Bounds()) {
			img.SetNRGBA(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// downsample shrinks the supersampled frame with CatmullRom filtering.
// The frames are opaque so no alpha premultiply round trip is needed.
func downsample(img *image.NRGBA, target int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, target, target))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

func writeWebP(name string, img *image.NRGBA) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	return f.Close()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
