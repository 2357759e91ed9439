// Package png_fixtures writes PNG variants image/png cannot produce, for use
// in tests: Adam7-interlaced and grey+alpha streams.
package png_fixtures

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"image/color"
)

const (
	colorTypeGrayAlpha = 4
	colorTypeRGB       = 2
)

// adam7 lists each pass as x offset, y offset, x step, y step.
var adam7 = [7][4]int{
	{0, 0, 8, 8},
	{4, 0, 8, 8},
	{0, 4, 4, 8},
	{2, 0, 4, 4},
	{0, 2, 2, 4},
	{1, 0, 2, 2},
	{0, 1, 1, 2},
}

// Interlaced encodes an 8-bit RGB image with Adam7 interlacing. Alpha is
// dropped.
func Interlaced(width, height int, px func(x, y int) color.NRGBA) []byte {
	var raw []byte
	for _, pass := range adam7 {
		for y := pass[1]; y < height; y += pass[3] {
			row := []byte{0}
			for x := pass[0]; x < width; x += pass[2] {
				c := px(x, y)
				row = append(row, c.R, c.G, c.B)
			}
			// passes with no columns carry no scanlines at all
			if len(row) > 1 {
				raw = append(raw, row...)
			}
		}
	}
	return build(width, height, colorTypeRGB, 1, raw)
}

// GrayAlpha encodes an 8-bit grey+alpha image, non-interlaced.
func GrayAlpha(width, height int, px func(x, y int) (gray, alpha uint8)) []byte {
	var raw []byte
	for y := 0; y < height; y++ {
		raw = append(raw, 0)
		for x := 0; x < width; x++ {
			g, a := px(x, y)
			raw = append(raw, g, a)
		}
	}
	return build(width, height, colorTypeGrayAlpha, 0, raw)
}

func build(width, height int, colorType, interlace byte, raw []byte) []byte {
	var out bytes.Buffer
	out.Write([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = 8
	ihdr[9] = colorType
	ihdr[12] = interlace
	writeChunk(&out, "IHDR", ihdr)

	var idat bytes.Buffer
	zw := zlib.NewWriter(&idat)
	zw.Write(raw)
	zw.Close()
	writeChunk(&out, "IDAT", idat.Bytes())

	writeChunk(&out, "IEND", nil)
	return out.Bytes()
}

func writeChunk(out *bytes.Buffer, typ string, data []byte) {
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(data)))
	out.Write(n[:])

	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(data)
	out.WriteString(typ)
	out.Write(data)
	binary.BigEndian.PutUint32(n[:], crc.Sum32())
	out.Write(n[:])
}
