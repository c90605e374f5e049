// Package render drives the interactive visualization: it owns the window,
// the fullscreen raymarch shader, the camera controller and the per-frame
// loop that ties them together.
package render

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/kerrlab/go-blackhole/internal/openglhelper"
	"github.com/kerrlab/go-blackhole/pkg/camera"
	"github.com/kerrlab/go-blackhole/pkg/resolution"
)

// DefaultCameraPosition is where the camera starts and where Reset returns it.
var DefaultCameraPosition = mgl64.Vec3{0, 3, 15}

// Options configures the renderer.
type Options struct {
	Fullscreen bool
	Vsync      bool
	FOVDegrees float64
	ShaderDir  string
	StartMode  camera.Mode
}

// Renderer owns the rendering loop. The scene itself lives in the fragment
// shader; the Go side advances the camera and uploads its frame as uniforms.
type Renderer struct {
	window *openglhelper.Window
	shader *openglhelper.Shader
	quad   *openglhelper.Mesh

	cam         *camera.Camera
	controller  *camera.Controller
	resolutions *resolution.Manager
	watcher     *ShaderWatcher

	fovRadians float32

	// Timing
	lastFrameTime float64
	totalTime     float64

	// Title refresh bookkeeping
	titleTimer float64
	frameCount int
}

// NewRenderer creates the window at the persisted resolution preset and wires
// up the shader, the fullscreen quad, the camera controller and the shader
// watcher.
func NewRenderer(opts Options) (*Renderer, error) {
	if opts.FOVDegrees <= 0 {
		opts.FOVDegrees = DefaultFOVDegrees
	}

	resolutions := resolution.NewManager()
	if err := resolutions.Load(); err != nil {
		slog.Warn("could not load saved resolution", "error", err)
	}
	preset := resolutions.Current()

	window, err := openglhelper.NewWindow(preset.Width, preset.Height, appName, opts.Vsync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	if opts.Fullscreen {
		window.SetFullscreen(true)
	}

	shader, err := openglhelper.LoadShaderFromFiles(
		filepath.Join(opts.ShaderDir, "blackhole.vert"),
		filepath.Join(opts.ShaderDir, "blackhole.frag"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}

	cam := camera.NewCamera(DefaultCameraPosition)
	controller := camera.NewController(cam, DefaultCameraPosition)
	if opts.StartMode != camera.ModeManual {
		if err := controller.SetMode(opts.StartMode); err != nil {
			return nil, fmt.Errorf("invalid start mode: %w", err)
		}
	}

	renderer := &Renderer{
		window:      window,
		shader:      shader,
		quad:        openglhelper.NewFullscreenQuad(),
		cam:         cam,
		controller:  controller,
		resolutions: resolutions,
		fovRadians:  mgl32.DegToRad(float32(opts.FOVDegrees)),
	}

	// Hot reload is a development convenience; run without it if the
	// watcher cannot be created.
	watcher, err := NewShaderWatcher(opts.ShaderDir)
	if err != nil {
		slog.Warn("shader hot reload disabled", "error", err)
	} else {
		renderer.watcher = watcher
	}

	window.GLFWWindow().SetKeyCallback(renderer.keyCallback)
	window.GLFWWindow().SetFramebufferSizeCallback(renderer.framebufferSizeCallback)
	window.GLFWWindow().SetSizeCallback(renderer.windowSizeCallback)

	// The framebuffer can differ from the requested window size (HiDPI);
	// start the viewport from what the window actually got.
	fbWidth, fbHeight := window.GLFWWindow().GetFramebufferSize()
	window.OnResize(fbWidth, fbHeight)

	renderer.lastFrameTime = glfw.GetTime()

	return renderer, nil
}

// Controller returns the camera controller, for initial positioning and tests.
func (r *Renderer) Controller() *camera.Controller {
	return r.controller
}

// Resolutions returns the resolution manager so the caller can persist the
// selected preset on shutdown.
func (r *Renderer) Resolutions() *resolution.Manager {
	return r.resolutions
}

// Run starts the main rendering loop and blocks until the window closes.
func (r *Renderer) Run() {
	for !r.window.ShouldClose() {
		currentTime := glfw.GetTime()
		dt := currentTime - r.lastFrameTime
		r.lastFrameTime = currentTime
		r.totalTime += dt

		r.controller.Update(dt, r.keySnapshot())

		if r.watcher != nil && r.watcher.ShouldReload() {
			r.reloadShader()
		}

		r.drawFrame()
		r.refreshTitle(dt)

		r.window.SwapBuffers()
		r.window.PollEvents()
	}

	r.Cleanup()
}

// keySnapshot reads the held movement keys into the per-frame snapshot the
// controller consumes.
func (r *Renderer) keySnapshot() camera.KeyState {
	return camera.KeyState{
		Forward:   r.window.IsKeyPressed(KeyMoveForward),
		Back:      r.window.IsKeyPressed(KeyMoveBack),
		Up:        r.window.IsKeyPressed(KeyMoveUp),
		Down:      r.window.IsKeyPressed(KeyMoveDown),
		YawRight:  r.window.IsKeyPressed(KeyYawRight),
		YawLeft:   r.window.IsKeyPressed(KeyYawLeft),
		PitchUp:   r.window.IsKeyPressed(KeyPitchUp),
		PitchDown: r.window.IsKeyPressed(KeyPitchDown),
		RollRight: r.window.IsKeyPressed(KeyRollRight),
		RollLeft:  r.window.IsKeyPressed(KeyRollLeft),
	}
}

// drawFrame uploads the camera frame and draws the fullscreen quad.
func (r *Renderer) drawFrame() {
	r.window.Clear(mgl32.Vec4{0, 0, 0, 1})

	width, height := r.window.Size()

	r.shader.Use()
	r.shader.SetVec2("uResolution", mgl32.Vec2{float32(width), float32(height)})
	r.shader.SetFloat("uTime", float32(r.totalTime))
	r.shader.SetFloat("uFov", r.fovRadians)
	r.shader.SetVec3("uCamPos", vec32(r.cam.Position))
	r.shader.SetVec3("uCamForward", vec32(r.cam.Forward))
	r.shader.SetVec3("uCamRight", vec32(r.cam.Right))
	r.shader.SetVec3("uCamUp", vec32(r.cam.Up))

	r.quad.Draw()
}

// vec32 narrows a float64 vector for uniform upload.
func vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X()), float32(v.Y()), float32(v.Z())}
}

// refreshTitle updates the window title a few times per second with the
// active mode, the resolution preset and the measured FPS.
func (r *Renderer) refreshTitle(dt float64) {
	r.frameCount++
	r.titleTimer += dt
	if r.titleTimer < titleRefreshInterval {
		return
	}

	fps := float64(r.frameCount) / r.titleTimer
	r.frameCount = 0
	r.titleTimer = 0

	preset := r.resolutions.Current()
	r.window.SetTitle(fmt.Sprintf("%s | %s | %s | %.0f FPS",
		appName, r.controller.ModeName(), preset.Label, fps))
}

func (r *Renderer) reloadShader() {
	if err := r.shader.ReloadFromFiles(); err != nil {
		slog.Error("shader reload failed", "error", err)
		return
	}
	slog.Info("shader reloaded")
}

func (r *Renderer) applyResolution(preset resolution.Preset) {
	r.window.SetSize(preset.Width, preset.Height)
	slog.Info("resolution changed", "preset", preset.Label,
		"width", preset.Width, "height", preset.Height)
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	if r.watcher != nil {
		r.watcher.Close()
	}
	r.quad.Delete()
	r.shader.Delete()
	r.window.Close()
}

// Callback functions
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}

	switch key {
	case KeyQuit:
		r.window.GLFWWindow().SetShouldClose(true)
	case KeyCycleMode:
		r.controller.CycleMode()
		slog.Info("mode changed", "mode", r.controller.ModeName())
	case KeyReset:
		r.controller.Reset()
		slog.Info("camera reset", "mode", r.controller.ModeName())
	case KeyNextResolution:
		r.applyResolution(r.resolutions.Next())
	case KeyPreviousResolution:
		r.applyResolution(r.resolutions.Previous())
	case KeyToggleFullscreen:
		r.window.ToggleFullscreen()
	case KeyScreenshot:
		if err := r.saveScreenshot(); err != nil {
			slog.Error("screenshot failed", "error", err)
		}
	}
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
}

// windowSizeCallback keeps the preset selection in step with sizes the
// renderer did not pick itself, such as drag resizes or fullscreen switches.
func (r *Renderer) windowSizeCallback(_ *glfw.Window, width, height int) {
	r.resolutions.SnapTo(width, height)
}
