package arbor

import "fmt"

// Region is an axis-aligned rectangle: an origin plus a size, in the
// coordinate space of whoever holds it. Sizes are not validated; callers must
// not pass negative dimensions.
type Region struct {
	X, Y, W, H int
}

// NewRegion returns the region with origin (x, y) and size w×h.
func NewRegion(x, y, w, h int) Region {
	return Region{X: x, Y: y, W: w, H: h}
}

// RegionFrom composes a region from an origin and a size.
func RegionFrom(origin Point, size Size) Region {
	return Region{X: origin.X, Y: origin.Y, W: size.W, H: size.H}
}

// Origin returns the top-left corner.
func (r Region) Origin() Point {
	return Point{r.X, r.Y}
}

// Dimensions returns the size.
func (r Region) Dimensions() Size {
	return Size{r.W, r.H}
}

// Max returns the exclusive bottom-right corner.
func (r Region) Max() Point {
	return Point{r.X + r.W, r.Y + r.H}
}

// Equal reports whether all four fields match. Same as ==.
func (r Region) Equal(other Region) bool {
	return r == other
}

// Translate returns r moved by d.
func (r Region) Translate(d Point) Region {
	r.X += d.X
	r.Y += d.Y
	return r
}

// IsEmpty reports whether the region covers no points.
func (r Region) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive, so adjacent regions never share a point.
func (r Region) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W &&
		p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects reports whether r and other share at least one point.
func (r Region) Intersects(other Region) bool {
	return !r.Intersect(other).IsEmpty()
}

// Intersect returns the overlap of r and other. When they do not overlap the
// result has zero size.
func (r Region) Intersect(other Region) Region {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.X+r.W, other.X+other.W)
	y1 := min(r.Y+r.H, other.Y+other.H)
	if x1 <= x0 || y1 <= y0 {
		return Region{X: x0, Y: y0}
	}
	return Region{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func (r Region) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}
