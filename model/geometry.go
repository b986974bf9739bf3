package model

import "math"

// Point represents a 2D point in page-relative coordinates
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox is an axis-aligned box in normalised [0,1] page coordinates. The
// origin is the top-left corner of the page and Y grows downwards.
type BBox struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from its left/top corner and extent
func NewBBox(left, top, width, height float64) BBox {
	return BBox{Left: left, Top: top, Width: width, Height: height}
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.Left + b.Width
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 {
	return b.Top + b.Height
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: b.Left + b.Width/2,
		Y: b.Top + b.Height/2,
	}
}

// Contains checks if a point is inside the bounding box (edges included)
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Left && p.X <= b.Right() &&
		p.Y >= b.Top && p.Y <= b.Bottom()
}

// Intersects checks if two bounding boxes intersect
func (b BBox) Intersects(other BBox) bool {
	return b.VerticallyOverlaps(other) && b.HorizontallyOverlaps(other)
}

// Intersection returns the intersection of two bounding boxes
func (b BBox) Intersection(other BBox) BBox {
	if !b.Intersects(other) {
		return BBox{}
	}

	left := math.Max(b.Left, other.Left)
	top := math.Max(b.Top, other.Top)
	right := math.Min(b.Right(), other.Right())
	bottom := math.Min(b.Bottom(), other.Bottom())

	return BBox{
		Left:   left,
		Top:    top,
		Width:  right - left,
		Height: bottom - top,
	}
}

// Union returns the smallest box containing both boxes
func (b BBox) Union(other BBox) BBox {
	left := math.Min(b.Left, other.Left)
	top := math.Min(b.Top, other.Top)
	right := math.Max(b.Right(), other.Right())
	bottom := math.Max(b.Bottom(), other.Bottom())

	return BBox{
		Left:   left,
		Top:    top,
		Width:  right - left,
		Height: bottom - top,
	}
}

// Area returns the area of the bounding box
func (b BBox) Area() float64 {
	return b.Width * b.Height
}

// IsEmpty returns true if the bounding box has zero area
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// VerticallyOverlaps reports whether the [Top, Bottom] spans of the two boxes
// intersect. Touching edges count as overlap.
func (b BBox) VerticallyOverlaps(other BBox) bool {
	return SpansOverlap(b.Top, b.Bottom(), other.Top, other.Bottom())
}

// HorizontallyOverlaps reports whether the [Left, Right] spans of the two
// boxes intersect. Touching edges count as overlap.
func (b BBox) HorizontallyOverlaps(other BBox) bool {
	return SpansOverlap(b.Left, b.Right(), other.Left, other.Right())
}

// HorizontalGap returns the distance from b's right edge to next's left edge.
// It is negative when next starts before b ends.
func (b BBox) HorizontalGap(next BBox) float64 {
	return next.Left - b.Right()
}

// VerticalGap returns the distance from b's bottom edge to next's top edge.
// It is negative when next starts above b's bottom.
func (b BBox) VerticalGap(next BBox) float64 {
	return next.Top - b.Bottom()
}

// Corners returns the four corners clockwise from top-left
func (b BBox) Corners() Polygon {
	return Polygon{
		{X: b.Left, Y: b.Top},
		{X: b.Right(), Y: b.Top},
		{X: b.Right(), Y: b.Bottom()},
		{X: b.Left, Y: b.Bottom()},
	}
}

// SpansOverlap is the inclusive 1-D overlap test used throughout layout
// reconstruction: the first span's end falls inside the second, the second's
// start falls inside the first, or one span contains the other. For spans
// given in either order this reduces to aStart <= bEnd && bStart <= aEnd.
func SpansOverlap(aStart, aEnd, bStart, bEnd float64) bool {
	return aStart <= bEnd && bStart <= aEnd
}

// Polygon is an ordered list of vertices
type Polygon []Point

// Bounds returns the axis-aligned box enclosing every vertex
func (p Polygon) Bounds() BBox {
	if len(p) == 0 {
		return BBox{}
	}
	minX, minY := p[0].X, p[0].Y
	maxX, maxY := p[0].X, p[0].Y
	for _, v := range p[1:] {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return BBox{Left: minX, Top: minY, Width: maxX - minX, Height: maxY - minY}
}

// Geometry is the location of a block: its bounding box and the finer
// polygon reported by the service.
type Geometry struct {
	BBox    BBox
	Polygon Polygon
}

// UnionGeometry returns the geometry covering every input. The polygon of the
// result is the four corners of the union box. With no input it returns the
// zero Geometry.
func UnionGeometry(geoms ...Geometry) Geometry {
	if len(geoms) == 0 {
		return Geometry{}
	}
	box := geoms[0].BBox
	for _, g := range geoms[1:] {
		box = box.Union(g.BBox)
	}
	return Geometry{BBox: box, Polygon: box.Corners()}
}
