// Package point provides integer grid coordinates and compass directions.
package point

// Point is a position on a tile grid. X grows to the east, Y to the south.
type Point struct{ X, Y int }

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns the component-wise sum of two points.
func (pt Point) Add(other Point) Point {
	pt.X += other.X
	pt.Y += other.Y
	return pt
}

// Sub returns the component-wise difference of two points.
func (pt Point) Sub(other Point) Point {
	pt.X -= other.X
	pt.Y -= other.Y
	return pt
}

// Sign returns a copy with each component reduced to -1, 0 or 1.
func (pt Point) Sign() Point {
	return Point{X: sign(pt.X), Y: sign(pt.Y)}
}

// Abs returns a copy with each component made non-negative.
func (pt Point) Abs() Point {
	return Point{X: abs(pt.X), Y: abs(pt.Y)}
}

// In returns true if the point lies within a width x height grid anchored at the origin.
func (pt Point) In(width, height int) bool {
	return pt.X >= 0 && pt.Y >= 0 && pt.X < width && pt.Y < height
}

// Index returns the row-major offset of the point in a grid of the given width.
func (pt Point) Index(width int) int {
	return pt.X + pt.Y*width
}

// FromIndex is the inverse of Index.
func FromIndex(i, width int) Point {
	return Point{X: i % width, Y: i / width}
}

// Adjacent returns true when the two points differ by exactly one step along
// exactly one axis.
func (pt Point) Adjacent(other Point) bool {
	d := other.Sub(pt).Abs()
	return (d.X == 1 && d.Y == 0) || (d.X == 0 && d.Y == 1)
}

func sign(n int) int {
	if n > 0 {
		return 1
	}
	if n < 0 {
		return -1
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
