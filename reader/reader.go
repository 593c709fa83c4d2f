package reader

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/strata/model"
)

// Fragment is a single positioned text run from a PDF content stream,
// in top-down coordinates.
type Fragment struct {
	Text     string
	X        float64 // left edge
	Top      float64 // top edge
	Width    float64
	Height   float64
	FontSize float64
	FontName string
}

// PageData holds everything extracted from one page.
type PageData struct {
	Number    int // 1-indexed
	Width     float64
	Height    float64
	Fragments []Fragment
}

// Reader provides page-by-page access to a PDF file.
type Reader struct {
	filename string
	file     *os.File
	pdf      *pdf.Reader
}

// Default page dimensions (US Letter, points) used when a page has no
// usable MediaBox.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// Open opens a PDF file for extraction. It validates the PDF header before
// handing the file to the parser, so non-PDF input fails with a clear error
// instead of a parser panic.
func Open(filename string) (*Reader, error) {
	if err := validateHeader(filename); err != nil {
		return nil, err
	}

	file, r, err := pdf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PDF %s: %w", filename, err)
	}

	return &Reader{
		filename: filename,
		file:     file,
		pdf:      r,
	}, nil
}

// validateHeader checks that the file starts with a PDF signature.
// The spec allows the signature to appear within the first 1024 bytes,
// and some generators prepend junk, so the whole window is scanned.
func validateHeader(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer f.Close()

	buf := make([]byte, 1024)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	if !bytes.Contains(buf[:n], []byte("%PDF-")) {
		return fmt.Errorf("%s: not a PDF file", filename)
	}
	return nil
}

// PageCount returns the total number of pages.
func (r *Reader) PageCount() int {
	return r.pdf.NumPage()
}

// Close releases the underlying file. Safe to call multiple times.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// Metadata reads the document information dictionary. Missing or
// malformed entries yield empty strings.
func (r *Reader) Metadata() (meta model.Metadata) {
	defer func() {
		recover()
	}()

	info := r.pdf.Trailer().Key("Info")
	if info.IsNull() {
		return meta
	}
	meta.Title = info.Key("Title").Text()
	meta.Author = info.Key("Author").Text()
	meta.Creator = info.Key("Creator").Text()
	meta.Producer = info.Key("Producer").Text()
	return meta
}

// Page extracts positioned text from the given 1-indexed page.
// A malformed page returns an error rather than propagating the parser's
// panic; the caller decides whether to skip it or abort.
func (r *Reader) Page(num int) (data PageData, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("page %d: content stream parse failed: %v", num, rec)
		}
	}()

	if num < 1 || num > r.pdf.NumPage() {
		return PageData{}, fmt.Errorf("page %d out of range (1-%d)", num, r.pdf.NumPage())
	}

	page := r.pdf.Page(num)
	if page.V.IsNull() {
		return PageData{}, fmt.Errorf("page %d: missing page object", num)
	}

	width, height := pageDimensions(page)

	data = PageData{
		Number: num,
		Width:  width,
		Height: height,
	}

	content := page.Content()
	data.Fragments = make([]Fragment, 0, len(content.Text))
	for _, t := range content.Text {
		frag := convertText(t, height)
		if frag.Text == "" {
			continue
		}
		data.Fragments = append(data.Fragments, frag)
	}

	return data, nil
}

// convertText maps a bottom-up pdf.Text run to a top-down Fragment.
// The run's Y is its baseline; the glyph box extends roughly one font size
// above it.
func convertText(t pdf.Text, pageHeight float64) Fragment {
	height := t.FontSize
	if height <= 0 {
		height = 1
	}
	return Fragment{
		Text:     t.S,
		X:        t.X,
		Top:      pageHeight - t.Y - height,
		Width:    t.W,
		Height:   height,
		FontSize: t.FontSize,
		FontName: t.Font,
	}
}

// pageDimensions reads the page MediaBox, walking up to parent nodes when
// the page inherits it. Falls back to US Letter.
func pageDimensions(page pdf.Page) (width, height float64) {
	defer func() {
		if rec := recover(); rec != nil {
			width, height = defaultPageWidth, defaultPageHeight
		}
	}()

	mediaBox := page.V.Key("MediaBox")
	if mediaBox.IsNull() {
		// MediaBox is inheritable from the page tree.
		parent := page.V.Key("Parent")
		for !parent.IsNull() && mediaBox.IsNull() {
			mediaBox = parent.Key("MediaBox")
			parent = parent.Key("Parent")
		}
	}

	if mediaBox.IsNull() || mediaBox.Len() != 4 {
		return defaultPageWidth, defaultPageHeight
	}

	coords := make([]float64, 4)
	for i := 0; i < 4; i++ {
		v := mediaBox.Index(i)
		switch v.Kind() {
		case pdf.Integer:
			coords[i] = float64(v.Int64())
		case pdf.Real:
			coords[i] = v.Float64()
		default:
			return defaultPageWidth, defaultPageHeight
		}
	}

	width = coords[2] - coords[0]
	height = coords[3] - coords[1]
	if width <= 0 || height <= 0 {
		return defaultPageWidth, defaultPageHeight
	}
	return width, height
}
