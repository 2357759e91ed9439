package pdf_writer

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/phpdave11/gofpdf"

	"png2pdf/contracts"
)

type ConvertResult = contracts.ConvertResult

// PDFWriter collects full-bleed image pages and serializes the document once,
// in Finish. One pixel maps to one point.
type PDFWriter struct {
	pdf   *gofpdf.Fpdf
	pages int
}

var pngOptions = gofpdf.ImageOptions{
	ImageType: "PNG",
	ReadDpi:   false,
}

func NewPDFWriter() *PDFWriter {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(true)
	return &PDFWriter{pdf: pdf}
}

// WriteImage adds one page sized to the image and filled by it.
func (pw *PDFWriter) WriteImage(image *ConvertResult) error {
	if err := pw.AddImagePage(image.ImageId, image.ImgBuffer, float64(image.PixelWidth), float64(image.PixelHeight)); err != nil {
		return fmt.Errorf("error writing page %d: %w", image.PageIndex+1, err)
	}
	return nil
}

// AddImagePage starts a new page of exactly width x height points and places
// the PNG data at the origin covering the whole page.
func (pw *PDFWriter) AddImagePage(name string, data []byte, width, height float64) error {
	if err := pw.pdf.Error(); err != nil {
		return fmt.Errorf("%w: document already failed: %v", contracts.ErrIO, err)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: invalid page size %.0fx%.0f", contracts.ErrDimensionRead, width, height)
	}

	// "P" keeps Wd/Ht as given, gofpdf only swaps them for "L"
	pw.pdf.AddPageFormat("P", gofpdf.SizeType{Wd: width, Ht: height})
	pw.pdf.RegisterImageOptionsReader(name, pngOptions, bytes.NewReader(data))
	pw.pdf.ImageOptions(name, 0, 0, width, height, false, pngOptions, 0, "")

	if err := pw.pdf.Error(); err != nil {
		// gofpdf reports unreadable or unsupported image streams here
		return fmt.Errorf("%w: placing image %s: %v", contracts.ErrDimensionRead, name, err)
	}
	pw.pages++
	return nil
}

func (pw *PDFWriter) PageCount() int {
	return pw.pages
}

// Finish serializes the document to w.
func (pw *PDFWriter) Finish(w io.Writer) error {
	if err := pw.pdf.Output(w); err != nil {
		return fmt.Errorf("%w: writing PDF: %v", contracts.ErrIO, err)
	}
	return nil
}

// FinishFile serializes the document to path. The file is created only here,
// after every page has been added.
func (pw *PDFWriter) FinishFile(path string) error {
	if err := pw.pdf.Error(); err != nil {
		return fmt.Errorf("%w: writing PDF: %v", contracts.ErrIO, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", contracts.ErrIO, path, err)
	}
	if err := pw.Finish(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", contracts.ErrIO, path, err)
	}
	return nil
}
