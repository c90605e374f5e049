package openglhelper

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Window handles GLFW window creation and management
type Window struct {
	glfwWindow *glfw.Window
	width      int
	height     int
	title      string
	vsync      bool

	// Windowed geometry remembered across fullscreen switches
	fullscreen bool
	windowedX  int
	windowedY  int
	windowedW  int
	windowedH  int
}

// NewWindow creates a new GLFW window with OpenGL context
func NewWindow(width, height int, title string, vsync bool) (*Window, error) {
	// Initialize GLFW
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Configure GLFW
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	// Create window
	glfwWindow, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()

	w := &Window{
		glfwWindow: glfwWindow,
		width:      width,
		height:     height,
		title:      title,
		vsync:      vsync,
	}
	w.applySwapInterval()

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	slog.Info("OpenGL initialized", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	return w, nil
}

func (w *Window) applySwapInterval() {
	if w.vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

// Clear clears the color buffer
func (w *Window) Clear(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// SwapBuffers swaps the front and back buffers
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// PollEvents processes pending events
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose returns whether the window should close
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// Close releases all resources
func (w *Window) Close() {
	glfw.Terminate()
}

// Size returns the window dimensions
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// SetSize sets the window dimensions. On a fullscreen window this changes
// the desired video mode resolution instead.
func (w *Window) SetSize(width, height int) {
	w.width = width
	w.height = height
	w.glfwWindow.SetSize(width, height)
}

// SetTitle sets the window title
func (w *Window) SetTitle(title string) {
	w.title = title
	w.glfwWindow.SetTitle(title)
}

// GetKeyState returns the state of the given key
func (w *Window) GetKeyState(key glfw.Key) glfw.Action {
	return w.glfwWindow.GetKey(key)
}

// IsKeyPressed reports whether the given key is currently held down
func (w *Window) IsKeyPressed(key glfw.Key) bool {
	return w.glfwWindow.GetKey(key) == glfw.Press
}

// OnResize is called when the framebuffer is resized
func (w *Window) OnResize(width, height int) {
	w.width = width
	w.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// GLFWWindow returns the underlying GLFW window
func (w *Window) GLFWWindow() *glfw.Window {
	return w.glfwWindow
}

// SetFullscreen switches between the primary monitor's video mode and the
// remembered windowed geometry.
func (w *Window) SetFullscreen(fullscreen bool) {
	if fullscreen == w.fullscreen {
		return
	}

	if fullscreen {
		// Ask GLFW for the geometry in screen coordinates; width/height may
		// hold framebuffer pixels, which differ on HiDPI displays.
		w.windowedX, w.windowedY = w.glfwWindow.GetPos()
		w.windowedW, w.windowedH = w.glfwWindow.GetSize()

		monitor := glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		w.glfwWindow.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	} else {
		w.glfwWindow.SetMonitor(nil, w.windowedX, w.windowedY, w.windowedW, w.windowedH, 0)
	}
	w.fullscreen = fullscreen

	// Some drivers drop the swap interval across a monitor switch.
	w.applySwapInterval()
}

// ToggleFullscreen toggles the fullscreen state
func (w *Window) ToggleFullscreen() {
	w.SetFullscreen(!w.fullscreen)
}

// IsFullscreen returns whether the window is currently fullscreen
func (w *Window) IsFullscreen() bool {
	return w.fullscreen
}
