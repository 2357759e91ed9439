package png_codec

import (
	"bytes"
	"encoding/binary"
	"image"

	"golang.org/x/image/draw"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// IHDR layout after the 8-byte signature: length(4) "IHDR"(4) width(4)
// height(4) bit depth(1) colour type(1) compression(1) filter(1) interlace(1).
const (
	ihdrTypeOffset      = 12
	ihdrBitDepthOffset  = 24
	ihdrInterlaceOffset = 28
	ihdrEnd             = 29
)

// Header is the part of a PNG's IHDR chunk that decides whether the PDF
// writer can embed the stream as is.
type Header struct {
	Width, Height int
	BitDepth      int
	Interlaced    bool
}

// ReadHeader parses the IHDR chunk at the start of data. ok is false when
// data does not start with a PNG signature followed by IHDR.
func ReadHeader(data []byte) (Header, bool) {
	if len(data) < ihdrEnd || !bytes.Equal(data[:len(pngSignature)], pngSignature) {
		return Header{}, false
	}
	if string(data[ihdrTypeOffset:ihdrTypeOffset+4]) != "IHDR" {
		return Header{}, false
	}
	return Header{
		Width:      int(binary.BigEndian.Uint32(data[16:20])),
		Height:     int(binary.BigEndian.Uint32(data[20:24])),
		BitDepth:   int(data[ihdrBitDepthOffset]),
		Interlaced: data[ihdrInterlaceOffset] == 1,
	}, true
}

// Embeddable reports whether gofpdf can place the PNG without re-encoding:
// it only takes non-interlaced streams of at most 8 bits per channel.
func (h Header) Embeddable() bool {
	return h.BitDepth <= 8 && !h.Interlaced
}

// PDFCompatible returns data unchanged when the PDF writer can embed it, and
// otherwise a non-interlaced 8-bit re-encoding of the same pixels.
// Unrecognised data is passed through for the writer to reject.
func PDFCompatible(data []byte) ([]byte, error) {
	h, ok := ReadHeader(data)
	if !ok || h.Embeddable() {
		return data, nil
	}

	img, err := decode(data)
	if err != nil {
		return nil, err
	}
	return encode(to8Bit(img))
}

// to8Bit narrows 16-bit images to their 8-bit counterpart. image/png never
// interlaces on encode, so 8-bit images are returned as they are.
func to8Bit(img image.Image) image.Image {
	b := img.Bounds()
	var dst draw.Image
	switch img.(type) {
	case *image.Gray16:
		dst = image.NewGray(b)
	case *image.NRGBA64, *image.RGBA64:
		dst = image.NewNRGBA(b)
	default:
		return img
	}
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst
}
