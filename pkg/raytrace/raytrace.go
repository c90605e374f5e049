// Package raytrace renders the black hole scene on the CPU. It shares the
// camera frame with the GPU path so cinematic trajectories can be exported
// headless, and mirrors the fragment shader's marching scheme.
package raytrace

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"

	"github.com/kerrlab/go-blackhole/pkg/camera"
)

// Scene holds the physical and marching parameters for one render.
type Scene struct {
	FOV           float64 // Vertical field of view in radians
	Time          float64 // Seconds driving the disk swirl animation
	HorizonRadius float64
	DiskInner     float64
	DiskOuter     float64
	BendStrength  float64
	MaxSteps      int
	StepSize      float64
	FarRadius     float64
}

// DefaultScene matches the constants baked into the fragment shader.
func DefaultScene() Scene {
	return Scene{
		FOV:           mgl64.DegToRad(60),
		HorizonRadius: 1.0,
		DiskInner:     2.2,
		DiskOuter:     5.2,
		BendStrength:  1.6,
		MaxSteps:      256,
		StepSize:      0.08,
		FarRadius:     60.0,
	}
}

// Render traces the scene from cam's frame into a width by height image.
// Rows fan out over at most workers goroutines. The result depends only on
// the scene and the camera frame, never on the worker count.
func (s Scene) Render(cam *camera.Camera, width, height, workers int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raytrace: invalid image size %dx%d", width, height)
	}
	if workers < 1 {
		workers = 1
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	var g errgroup.Group
	g.SetLimit(workers)
	for y := 0; y < height; y++ {
		g.Go(func() error {
			for x := 0; x < width; x++ {
				img.SetNRGBA(x, y, s.tracePixel(cam, x, y, width, height))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return img, nil
}

func (s Scene) tracePixel(cam *camera.Camera, x, y, width, height int) color.NRGBA {
	dir := s.rayThrough(cam, x, y, width, height)
	return toneMap(s.traceRay(cam.Position, dir))
}

// rayThrough builds the unit pinhole ray through the pixel center. Image
// rows run downward while camera up points up, so Y flips.
func (s Scene) rayThrough(cam *camera.Camera, x, y, width, height int) mgl64.Vec3 {
	ndcX := 2.0*(float64(x)+0.5)/float64(width) - 1.0
	ndcY := 1.0 - 2.0*(float64(y)+0.5)/float64(height)

	aspect := float64(width) / float64(height)
	tanHalf := math.Tan(s.FOV / 2)

	return cam.Right.Mul(ndcX * aspect * tanHalf).
		Add(cam.Up.Mul(ndcY * tanHalf)).
		Add(cam.Forward).
		Normalize()
}

// traceRay marches a ray with a pseudo-Newtonian bend toward the origin.
// Horizon capture ends the march black; equatorial crossings inside the disk
// annulus accumulate emission; escaping rays sample the star field.
func (s Scene) traceRay(origin, dir mgl64.Vec3) mgl64.Vec3 {
	pos := origin
	vel := dir
	emitted := mgl64.Vec3{}
	captured := false

	for i := 0; i < s.MaxSteps; i++ {
		r := pos.Len()
		if r < s.HorizonRadius {
			captured = true
			break
		}
		if r > s.FarRadius && pos.Dot(vel) > 0 {
			break
		}

		accel := pos.Mul(-s.BendStrength / (r * r * r))
		vel = vel.Add(accel.Mul(s.StepSize)).Normalize()
		next := pos.Add(vel.Mul(s.StepSize))

		if pos.Y()*next.Y() < 0 {
			f := pos.Y() / (pos.Y() - next.Y())
			hit := pos.Add(next.Sub(pos).Mul(f))
			hr := math.Hypot(hit.X(), hit.Z())
			if hr > s.DiskInner && hr < s.DiskOuter {
				emitted = emitted.Add(s.diskColor(hr, math.Atan2(hit.Z(), hit.X())))
			}
		}

		pos = next
	}

	if !captured {
		emitted = emitted.Add(starField(vel))
	}
	return emitted
}

// diskColor is the accretion ramp: hot white inner edge cooling to deep
// orange, with a slow swirl and a brightness falloff toward the rim.
func (s Scene) diskColor(r, angle float64) mgl64.Vec3 {
	t := mgl64.Clamp((r-s.DiskInner)/(s.DiskOuter-s.DiskInner), 0, 1)
	hot := mgl64.Vec3{1.00, 0.96, 0.85}
	cool := mgl64.Vec3{1.00, 0.45, 0.12}
	swirl := 0.85 + 0.15*math.Sin(angle*9.0+r*3.0-s.Time*1.5)
	fade := 1 - t
	return mix(hot, cool, t).Mul(swirl * (0.35 + 1.40*fade*fade))
}

// starField samples the background by escape direction, quantized so stars
// stay put as the camera turns.
func starField(dir mgl64.Vec3) mgl64.Vec3 {
	cell := mgl64.Vec3{
		math.Floor(dir.X() * 64),
		math.Floor(dir.Y() * 64),
		math.Floor(dir.Z() * 64),
	}
	star := smoothstep(0.997, 1.0, hash(cell))
	tint := mix(
		mgl64.Vec3{0.70, 0.80, 1.00},
		mgl64.Vec3{1.00, 0.85, 0.70},
		hash(cell.Add(mgl64.Vec3{7, 7, 7})),
	)
	return tint.Mul(star)
}

func hash(p mgl64.Vec3) float64 {
	x := frac(p.X()*0.3183099+0.1) * 17.0
	y := frac(p.Y()*0.3183099+0.2) * 17.0
	z := frac(p.Z()*0.3183099+0.3) * 17.0
	return frac(x * y * z * (x + y + z))
}

func frac(v float64) float64 {
	return v - math.Floor(v)
}

func smoothstep(edge0, edge1, x float64) float64 {
	t := mgl64.Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

func mix(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// toneMap applies the shader's Reinhard and gamma curve per channel.
func toneMap(c mgl64.Vec3) color.NRGBA {
	return color.NRGBA{
		R: channelByte(c.X()),
		G: channelByte(c.Y()),
		B: channelByte(c.Z()),
		A: 255,
	}
}

func channelByte(v float64) uint8 {
	v = v / (v + 1)
	v = math.Pow(v, 1.0/2.2)
	return uint8(mgl64.Clamp(v, 0, 1)*255 + 0.5)
}
