package pager

// Point is a position in cell coordinates.
type Point struct {
	X, Y int
}

// Size is an extent in cell coordinates.
type Size struct {
	Width, Height int
}

// Rect is a positioned extent. The zero Rect is empty at the origin.
type Rect struct {
	X, Y, Width, Height int
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point falls inside the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}
