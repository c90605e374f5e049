package render

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"time"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// saveScreenshot reads back the framebuffer and writes it to a timestamped
// PNG in the working directory.
func (r *Renderer) saveScreenshot() error {
	width, height := r.window.Size()

	pixels := make([]uint8, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// GL rows run bottom to top; flip while copying.
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	rowBytes := width * 4
	for y := 0; y < height; y++ {
		src := pixels[(height-1-y)*rowBytes : (height-y)*rowBytes]
		copy(img.Pix[y*img.Stride:y*img.Stride+rowBytes], src)
	}

	name := fmt.Sprintf("blackhole_%s.png", time.Now().Format("20060102_150405"))
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create screenshot file: %w", err)
	}
	defer f.Close()

	encoder := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := encoder.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode screenshot: %w", err)
	}

	slog.Info("screenshot saved", "file", name, "width", width, "height", height)
	return nil
}
