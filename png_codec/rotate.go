//go:build !vips

package png_codec

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// newLike allocates an image of the given size in src's own pixel format, so
// copying pixels across loses nothing.
func newLike(src image.Image, r image.Rectangle) (draw.Image, bool) {
	switch s := src.(type) {
	case *image.Gray:
		return image.NewGray(r), true
	case *image.Gray16:
		return image.NewGray16(r), true
	case *image.NRGBA:
		return image.NewNRGBA(r), true
	case *image.NRGBA64:
		return image.NewNRGBA64(r), true
	case *image.RGBA:
		return image.NewRGBA(r), true
	case *image.RGBA64:
		return image.NewRGBA64(r), true
	case *image.Paletted:
		return image.NewPaletted(r, s.Palette), true
	}
	return nil, false
}

// rotateClockwise turns src by 90° clockwise. Pixel formats produced by
// image/png are copied pixel for pixel; anything else goes through an exact
// nearest-neighbour affine into NRGBA64.
func rotateClockwise(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	r := image.Rect(0, 0, h, w)

	if dst, ok := newLike(src, r); ok {
		if p, ok := src.(*image.Paletted); ok {
			pd := dst.(*image.Paletted)
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					pd.SetColorIndex(h-1-y, x, p.ColorIndexAt(b.Min.X+x, b.Min.Y+y))
				}
			}
			return pd
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.Set(h-1-y, x, src.At(b.Min.X+x, b.Min.Y+y))
			}
		}
		return dst
	}

	dst := image.NewNRGBA64(r)
	// x' = -y + (h + minY), y' = x - minX
	s2d := f64.Aff3{
		0, -1, float64(h + b.Min.Y),
		1, 0, float64(-b.Min.X),
	}
	draw.NearestNeighbor.Transform(dst, s2d, src, b, draw.Src, nil)
	return dst
}

// Rotate90 decodes PNG bytes, rotates the image 90° clockwise and encodes it
// back to PNG in the same pixel format.
func Rotate90(data []byte) ([]byte, error) {
	img, err := decode(data)
	if err != nil {
		return nil, err
	}
	return encode(rotateClockwise(img))
}
