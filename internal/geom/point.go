package geom

// Point is a 2D point in pixel space. Coordinates are unsigned; two points
// with equal coordinates are interchangeable.
type Point struct {
	X uint32
	Y uint32
}

// Pt is shorthand for Point{x, y}
func Pt(x, y uint32) Point {
	return Point{X: x, Y: y}
}

// Lowest returns the component-wise minimum of the two points
func (p Point) Lowest(q Point) Point {
	if q.X < p.X {
		p.X = q.X
	}
	if q.Y < p.Y {
		p.Y = q.Y
	}
	return p
}

// Highest returns the component-wise maximum of the two points
func (p Point) Highest(q Point) Point {
	if q.X > p.X {
		p.X = q.X
	}
	if q.Y > p.Y {
		p.Y = q.Y
	}
	return p
}

// DistSq returns the squared euclidean distance between two points.
// We stay in integer space; comparing squared distances saves us pulling
// square roots per pixel.
func (p Point) DistSq(q Point) uint64 {
	dx := absDiff(p.X, q.X)
	dy := absDiff(p.Y, q.Y)
	return dx*dx + dy*dy
}

// absDiff returns |a - b| widened so the square can't wrap
func absDiff(a, b uint32) uint64 {
	if a > b {
		return uint64(a - b)
	}
	return uint64(b - a)
}
