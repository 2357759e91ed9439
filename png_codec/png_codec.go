// Package png_codec reads PNG metadata and produces rotated PNG encodings.
package png_codec

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	"png2pdf/contracts"
)

// ReadDimensions returns the pixel size of the PNG at path without decoding
// the pixel data.
func ReadDimensions(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: open %s: %v", contracts.ErrIO, path, err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("%w for %s: %v", contracts.ErrDimensionRead, path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, fmt.Errorf("%w for %s: got %dx%d", contracts.ErrDimensionRead, path, cfg.Width, cfg.Height)
	}
	return cfg.Width, cfg.Height, nil
}

func decode(data []byte) (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding PNG: %v", contracts.ErrDimensionRead, err)
	}
	return img, nil
}

func encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: encoding PNG: %v", contracts.ErrIO, err)
	}
	return buf.Bytes(), nil
}
