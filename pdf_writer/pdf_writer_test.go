package pdf_writer

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"png2pdf/contracts"
)

func mockPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode mock PNG: %v", err)
	}
	return buf.Bytes()
}

func validate(t *testing.T, path string) {
	t.Helper()
	config := model.NewDefaultConfiguration()
	config.ValidationMode = model.ValidationRelaxed
	if err := api.ValidateFile(path, config); err != nil {
		t.Fatalf("PDF validation failed: %v", err)
	}
}

func TestAddImagePage(t *testing.T) {
	t.Run("page sized to image", func(t *testing.T) {
		pw := NewPDFWriter()
		if err := pw.AddImagePage("img_0", mockPNG(t, 100, 80), 100, 80); err != nil {
			t.Fatalf("AddImagePage failed: %v", err)
		}
		if pw.PageCount() != 1 {
			t.Fatalf("Expected 1 page, got %d", pw.PageCount())
		}

		var buf bytes.Buffer
		if err := pw.Finish(&buf); err != nil {
			t.Fatalf("Finish failed: %v", err)
		}
		output := buf.String()

		requiredElements := []string{
			"%PDF-",
			"/Type /Page",
			"/Type /Pages",
			"/Type /Catalog",
			"/Subtype /Image",
			"/Width 100",
			"/Height 80",
			"xref",
			"trailer",
			"%%EOF",
		}
		for _, element := range requiredElements {
			if !strings.Contains(output, element) {
				t.Errorf("PDF missing required element: %s", element)
			}
		}
	})

	t.Run("zero size page is rejected", func(t *testing.T) {
		pw := NewPDFWriter()
		err := pw.AddImagePage("img_0", mockPNG(t, 4, 4), 0, 4)
		if !errors.Is(err, contracts.ErrDimensionRead) {
			t.Fatalf("Expected ErrDimensionRead for zero width page, got %v", err)
		}
		if pw.PageCount() != 0 {
			t.Errorf("Expected no pages, got %d", pw.PageCount())
		}
	})

	rejected := []struct {
		name string
		data []byte
	}{
		{"broken image data", []byte("not a png")},
		{"sixteen bit png", gray16PNG(t, 4, 4)},
	}
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			pw := NewPDFWriter()
			err := pw.AddImagePage("img_0", tt.data, 4, 4)
			if !errors.Is(err, contracts.ErrDimensionRead) {
				t.Fatalf("Expected ErrDimensionRead, got %v", err)
			}

			// the document stays failed, later pages report it as ErrIO
			err = pw.AddImagePage("img_1", mockPNG(t, 4, 4), 4, 4)
			if !errors.Is(err, contracts.ErrIO) {
				t.Errorf("Expected ErrIO after a failed page, got %v", err)
			}
		})
	}
}

func gray16PNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewGray16(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGray16(x, y, color.Gray16{Y: 0x1234})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode 16-bit PNG: %v", err)
	}
	return buf.Bytes()
}

func TestWriteImageEndToEnd(t *testing.T) {
	pages := []ConvertResult{
		{ImageId: "img_0", ImgBuffer: mockPNG(t, 100, 200), PixelWidth: 100, PixelHeight: 200, PageIndex: 0},
		{ImageId: "img_1", ImgBuffer: mockPNG(t, 200, 100), PixelWidth: 200, PixelHeight: 100, PageIndex: 1},
		{ImageId: "img_2", ImgBuffer: mockPNG(t, 50, 50), PixelWidth: 50, PixelHeight: 50, PageIndex: 2},
	}

	pw := NewPDFWriter()
	for i := range pages {
		if err := pw.WriteImage(&pages[i]); err != nil {
			t.Fatalf("WriteImage %d failed: %v", i, err)
		}
	}

	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := pw.FinishFile(path); err != nil {
		t.Fatalf("FinishFile failed: %v", err)
	}
	validate(t, path)

	dims, err := api.PageDimsFile(path)
	if err != nil {
		t.Fatalf("Failed to read page dimensions: %v", err)
	}
	if len(dims) != len(pages) {
		t.Fatalf("Expected %d pages, got %d", len(pages), len(dims))
	}
	for i, page := range pages {
		if dims[i].Width != float64(page.PixelWidth) || dims[i].Height != float64(page.PixelHeight) {
			t.Errorf("Page %d: got %.2f x %.2f, want %d x %d",
				i+1, dims[i].Width, dims[i].Height, page.PixelWidth, page.PixelHeight)
		}
	}
}

func TestFinishFileUnwritablePath(t *testing.T) {
	pw := NewPDFWriter()
	if err := pw.AddImagePage("img_0", mockPNG(t, 4, 4), 4, 4); err != nil {
		t.Fatalf("AddImagePage failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "missing-dir", "out.pdf")
	if err := pw.FinishFile(path); err == nil {
		t.Fatal("Expected error writing into a missing directory")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Expected no output file, stat returned %v", err)
	}
}
