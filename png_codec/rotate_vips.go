//go:build vips

package png_codec

import (
	"fmt"
	"sync"

	"github.com/davidbyttow/govips/v2/vips"
)

var vipsOnce sync.Once

func startVips() {
	vipsOnce.Do(func() {
		vips.LoggingSettings(nil, vips.LogLevelError)
		vips.Startup(nil)
	})
}

// Rotate90 rotates PNG bytes 90° clockwise with libvips and re-encodes as PNG.
func Rotate90(data []byte) ([]byte, error) {
	startVips()

	img, err := vips.NewImageFromBuffer(data)
	if err != nil {
		return nil, fmt.Errorf("vips load: %w", err)
	}
	defer img.Close()

	if err := img.Rotate(vips.Angle90); err != nil {
		return nil, fmt.Errorf("vips rotate: %w", err)
	}
	out, _, err := img.ExportPng(vips.NewPngExportParams())
	if err != nil {
		return nil, fmt.Errorf("vips export: %w", err)
	}
	return out, nil
}
