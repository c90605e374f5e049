package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/kerrlab/go-blackhole/internal/config"
	"github.com/kerrlab/go-blackhole/pkg/camera"
	"github.com/kerrlab/go-blackhole/pkg/render"
)

func init() {
	// OpenGL calls must all come from the thread that owns the context.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "Config file path (default: per-user config)")
	fullscreen := flag.Bool("fullscreen", false, "Start fullscreen")
	vsync := flag.Bool("vsync", true, "Enable vsync")
	fov := flag.Float64("fov", 60, "Vertical field of view in degrees")
	shaderDir := flag.String("shaders", "pkg/render/shaders", "Shader directory")
	mode := flag.String("mode", "Manual Control", "Start mode by display name")
	flag.Parse()

	path := *configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			log.Fatalf("Failed to locate config: %v", err)
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags that were set explicitly override the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fullscreen":
			cfg.Fullscreen = *fullscreen
		case "vsync":
			cfg.Vsync = *vsync
		case "fov":
			cfg.FOVDegrees = *fov
		case "shaders":
			cfg.ShaderDir = *shaderDir
		case "mode":
			cfg.StartMode = *mode
		}
	})

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	})))

	startMode, err := camera.ModeByName(cfg.StartMode)
	if err != nil {
		log.Fatalf("Invalid start mode %q", cfg.StartMode)
	}

	renderer, err := render.NewRenderer(render.Options{
		Fullscreen: cfg.Fullscreen,
		Vsync:      cfg.Vsync,
		FOVDegrees: cfg.FOVDegrees,
		ShaderDir:  cfg.ShaderDir,
		StartMode:  startMode,
	})
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	slog.Info("starting visualizer", "mode", startMode.String(), "config", path)
	renderer.Run()

	if err := renderer.Resolutions().Save(); err != nil {
		slog.Warn("could not save resolution preset", "error", err)
	}
}
