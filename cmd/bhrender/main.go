// Command bhrender exports cinematic trajectory frames as PNGs without a
// display, using the CPU renderer.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"

	"github.com/kerrlab/go-blackhole/pkg/camera"
	"github.com/kerrlab/go-blackhole/pkg/raytrace"
)

func main() {
	modeName := flag.String("mode", "Smooth Orbit", "Trajectory to render, by display name")
	frames := flag.Int("frames", 120, "Number of frames to render")
	fps := flag.Float64("fps", 30, "Trajectory steps per second")
	width := flag.Int("width", 1280, "Frame width in pixels")
	height := flag.Int("height", 720, "Frame height in pixels")
	fov := flag.Float64("fov", 60, "Vertical field of view in degrees")
	out := flag.String("out", "frames", "Output directory")
	workers := flag.Int("workers", runtime.NumCPU(), "Frames rendered in parallel")
	flag.Parse()

	mode, err := camera.ModeByName(*modeName)
	if err != nil {
		log.Fatalf("Unknown mode %q", *modeName)
	}
	if *frames <= 0 || *fps <= 0 {
		log.Fatalf("frames and fps must be positive")
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	// The controller is stepped sequentially so each frame sees the exact
	// trajectory state; the snapshots then render independently.
	start := mgl64.Vec3{0, 3, 15}
	cam := camera.NewCamera(start)
	controller := camera.NewController(cam, start)
	if err := controller.SetMode(mode); err != nil {
		log.Fatalf("Failed to set mode: %v", err)
	}

	dt := 1.0 / *fps
	snapshots := make([]camera.Camera, *frames)
	for i := range snapshots {
		controller.Update(dt, camera.KeyState{})
		snapshots[i] = *cam
	}

	scene := raytrace.DefaultScene()
	scene.FOV = mgl64.DegToRad(*fov)

	slog.Info("rendering trajectory",
		"mode", mode.String(), "frames", *frames,
		"size", fmt.Sprintf("%dx%d", *width, *height), "workers", *workers)

	var g errgroup.Group
	g.SetLimit(*workers)
	for i := range snapshots {
		g.Go(func() error {
			frameScene := scene
			frameScene.Time = float64(i+1) * dt

			img, err := frameScene.Render(&snapshots[i], *width, *height, 1)
			if err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			return writePNG(filepath.Join(*out, fmt.Sprintf("frame_%04d.png", i)), img)
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("Render failed: %v", err)
	}

	slog.Info("done", "dir", *out)
}

func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	encoder := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := encoder.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
