package model

import "math"

// BBox represents a bounding box in top-down page coordinates.
// Top is the upper edge (smaller Y), Bottom the lower edge.
type BBox struct {
	X0     float64 // Left edge
	Top    float64 // Upper edge
	Bottom float64 // Lower edge
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from the left edge, top edge, width and height.
func NewBBox(x0, top, width, height float64) BBox {
	return BBox{
		X0:     x0,
		Top:    top,
		Bottom: top + height,
		Width:  width,
		Height: height,
	}
}

// X1 returns the right edge X coordinate.
func (b BBox) X1() float64 {
	return b.X0 + b.Width
}

// CenterX returns the horizontal center.
func (b BBox) CenterX() float64 {
	return b.X0 + b.Width/2
}

// IsValid reports whether the box has positive extent in both dimensions.
// Degenerate boxes are produced by malformed content streams and are
// dropped during block extraction.
func (b BBox) IsValid() bool {
	return b.Width > 0 && b.Height > 0
}

// Union returns the smallest box covering both b and other.
func (b BBox) Union(other BBox) BBox {
	x0 := math.Min(b.X0, other.X0)
	top := math.Min(b.Top, other.Top)
	x1 := math.Max(b.X1(), other.X1())
	bottom := math.Max(b.Bottom, other.Bottom)

	return BBox{
		X0:     x0,
		Top:    top,
		Bottom: bottom,
		Width:  x1 - x0,
		Height: bottom - top,
	}
}

// VerticalOverlap returns the height of the vertical range shared by b and
// other, or 0 when they do not overlap vertically. Used when deciding whether
// two fragments sit on the same visual line.
func (b BBox) VerticalOverlap(other BBox) float64 {
	top := math.Max(b.Top, other.Top)
	bottom := math.Min(b.Bottom, other.Bottom)
	if bottom <= top {
		return 0
	}
	return bottom - top
}
