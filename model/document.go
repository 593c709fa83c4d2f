package model

// Metadata contains document-level information from the PDF info dictionary.
// Title is advisory only; outline extraction derives its own title from the
// first page because info dictionaries are frequently stale or empty.
type Metadata struct {
	Title    string
	Author   string
	Creator  string
	Producer string
}

// PageDims holds the media box dimensions of a single page in points.
type PageDims struct {
	Width  float64
	Height float64
}

// Document is the in-memory representation of an extracted PDF: the ordered
// block list, per-page dimensions, and the detected document language.
type Document struct {
	Metadata Metadata
	Blocks   []*TextBlock
	Pages    map[int]PageDims // keyed by 1-indexed page number
	Count    int              // total page count, including empty pages
	Lang     string           // BCP 47 tag, "" when detection was inconclusive
}

// NewDocument creates a new empty document.
func NewDocument() *Document {
	return &Document{
		Pages: make(map[int]PageDims),
	}
}

// PageBlocks returns the blocks belonging to the given 1-indexed page,
// in document order.
func (d *Document) PageBlocks(page int) []*TextBlock {
	var out []*TextBlock
	for _, b := range d.Blocks {
		if b.Page == page {
			out = append(out, b)
		}
	}
	return out
}

// Dims returns the dimensions of the given page, falling back to US Letter
// when the page is unknown. A zero-size page would make centering and margin
// ratios meaningless.
func (d *Document) Dims(page int) PageDims {
	if dims, ok := d.Pages[page]; ok && dims.Width > 0 && dims.Height > 0 {
		return dims
	}
	return PageDims{Width: 612, Height: 792}
}
