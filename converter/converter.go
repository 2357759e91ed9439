package converter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"png2pdf/contracts"
	"png2pdf/files_manager"
	"png2pdf/pdf_writer"
	"png2pdf/png_codec"
	"png2pdf/rotation"
)

type ImageInfo = contracts.ImageInfo
type ConversionRequest = contracts.ConversionRequest

const defaultOutputName = "output.pdf"

type Options struct {
	Verbose     bool
	Interactive bool
	// Stdout receives progress lines and interactive prompts.
	Stdout io.Writer
	// Stdin is read for interactive answers.
	Stdin  io.Reader
	Logger *slog.Logger
}

// Converter turns a directory of PNGs, or a single PNG, into a PDF with one
// full-bleed page per image.
type Converter struct {
	opts   Options
	logger *slog.Logger
}

var _ contracts.Converter = (*Converter)(nil)

func NewConverter(opts Options) *Converter {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{opts: opts, logger: logger}
}

// DefaultOutputPath places output.pdf inside a directory input, or next to a
// file input.
func DefaultOutputPath(input string) string {
	if stat, err := os.Stat(input); err == nil && stat.IsDir() {
		return filepath.Join(input, defaultOutputName)
	}
	return filepath.Join(filepath.Dir(input), defaultOutputName)
}

func (c *Converter) log(format string, args ...any) {
	if c.opts.Verbose {
		fmt.Fprintf(c.opts.Stdout, format+"\n", args...)
	}
}

// Convert runs the whole pipeline. The output file is only created once every
// page has been assembled.
func (c *Converter) Convert(ctx context.Context, request ConversionRequest) error {
	pngFiles, err := files_manager.GetPNGPaths(request.InputPath)
	if err != nil {
		return err
	}
	c.log("Found %d PNG files", len(pngFiles))

	output := request.OutputPath
	if output == "" {
		output = DefaultOutputPath(request.InputPath)
	}

	resolver, err := c.newResolver(request.RotatePages)
	if err != nil {
		return err
	}

	imageInfos, err := c.loadImageInfo(ctx, pngFiles, resolver)
	if err != nil {
		return err
	}

	return c.createPDF(ctx, imageInfos, output)
}

func (c *Converter) newResolver(rotatePages string) (*rotation.Resolver, error) {
	rotateSet, err := rotation.ParseSpec(rotatePages)
	if err != nil {
		return nil, err
	}
	if !c.opts.Interactive {
		return rotation.NewResolver(rotateSet, nil), nil
	}

	if rotatePages != "" {
		c.logger.Debug("interactive mode overrides rotate spec", "rotate", rotatePages)
	}
	return rotation.NewResolver(rotateSet, rotation.NewPrompter(c.opts.Stdin, c.opts.Stdout, c.logger)), nil
}

// loadImageInfo reads dimensions and resolves rotation for every file, in
// order. Any unreadable image aborts the run before a page is written.
func (c *Converter) loadImageInfo(ctx context.Context, files []string, resolver *rotation.Resolver) ([]ImageInfo, error) {
	imageInfos := make([]ImageInfo, 0, len(files))

	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c.log("Processing %s...", filepath.Base(file))

		width, height, err := png_codec.ReadDimensions(file)
		if err != nil {
			return nil, err
		}

		info := ImageInfo{Path: file, Width: width, Height: height}
		info.ShouldRotate, err = resolver.ShouldRotate(i, info)
		if err != nil {
			return nil, err
		}

		c.logger.Debug("loaded image",
			"page", i+1,
			"file", file,
			"width", width,
			"height", height,
			"rotate", info.ShouldRotate,
			"interactive", resolver.Interactive())
		imageInfos = append(imageInfos, info)
	}
	return imageInfos, nil
}

// assemblePage reads the image, applies rotation and re-encodes streams the
// PDF writer cannot embed (interlaced or 16-bit), producing the page that gets
// written.
func assemblePage(index int, info ImageInfo) (*contracts.ConvertResult, error) {
	data, err := os.ReadFile(info.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", contracts.ErrIO, info.Path, err)
	}

	if info.ShouldRotate {
		data, err = png_codec.Rotate90(data)
		if err != nil {
			return nil, fmt.Errorf("rotating %s: %w", info.Path, err)
		}
	}
	data, err = png_codec.PDFCompatible(data)
	if err != nil {
		return nil, fmt.Errorf("re-encoding %s: %w", info.Path, err)
	}

	width, height := info.PageSize()
	return &contracts.ConvertResult{
		ImgBuffer:   data,
		ImageId:     fmt.Sprintf("img_%d", index),
		PixelWidth:  width,
		PixelHeight: height,
		PageIndex:   index,
		Rotated:     info.ShouldRotate,
	}, nil
}

func (c *Converter) createPDF(ctx context.Context, imageInfos []ImageInfo, output string) error {
	pw := pdf_writer.NewPDFWriter()

	for i, info := range imageInfos {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.log("Adding %s to PDF...", filepath.Base(info.Path))

		page, err := assemblePage(i, info)
		if err != nil {
			return err
		}
		if err := pw.WriteImage(page); err != nil {
			return fmt.Errorf("adding %s: %w", info.Path, err)
		}
		c.logger.Debug("page added",
			"page", i+1,
			"width", page.PixelWidth,
			"height", page.PixelHeight,
			"bytes", len(page.ImgBuffer))
	}

	if err := pw.FinishFile(output); err != nil {
		return fmt.Errorf("error saving PDF file: %w", err)
	}
	c.logger.Debug("PDF written", "path", output, "pages", pw.PageCount())
	return nil
}
