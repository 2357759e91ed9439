package contracts

import "context"

type Converter interface {
	Convert(ctx context.Context, request ConversionRequest) error
}

type ConversionRequest struct {
	InputPath  string
	OutputPath string
	// RotatePages is a declarative spec like "1,3,5-7". Ignored in interactive mode.
	RotatePages string
}

// ConvertResult is one page ready to be written: encoded PNG bytes and the
// final (possibly swapped) pixel size.
type ConvertResult struct {
	ImgBuffer   []byte
	ImageId     string
	PixelWidth  int
	PixelHeight int
	PageIndex   int
	Rotated     bool
}
