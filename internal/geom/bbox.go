// Package geom holds the 2D primitives the diagram generators are built on;
// integer points & axis aligned bounding boxes.
package geom

import (
	"fmt"
	"math"
)

var (
	// ErrBoundsOverflow implies origin + width/height walked off the edge
	// of the coordinate space.
	ErrBoundsOverflow = fmt.Errorf("bounding box dimensions overflow the coordinate space")
)

// BoundingBox is an axis aligned rectangle tracking the min / max extent of
// a set of points. The zero value is an empty box containing no points at
// all; it only becomes non-empty via ExpandByPoint.
//
// Empty-ness is an explicit flag rather than an inverted min/max sentinel so
// nothing downstream has to reason about sentinel arithmetic.
type BoundingBox struct {
	min      Point
	max      Point
	nonempty bool
}

// New returns an empty BoundingBox
func New() BoundingBox {
	return BoundingBox{}
}

// FromDimensions returns a box spanning [0,width] x [0,height].
// Nb. bounds are inclusive at both ends.
func FromDimensions(width, height uint32) BoundingBox {
	// origin is (0,0) so this can't overflow
	b, _ := FromDimensionsAndOrigin(Pt(0, 0), width, height)
	return b
}

// FromDimensionsAndOrigin returns a box spanning origin to origin+(width,height).
// The far corner must be representable; we check with widened arithmetic and
// refuse to wrap.
func FromDimensionsAndOrigin(origin Point, width, height uint32) (BoundingBox, error) {
	if uint64(origin.X)+uint64(width) > math.MaxUint32 || uint64(origin.Y)+uint64(height) > math.MaxUint32 {
		return BoundingBox{}, fmt.Errorf("%w: origin (%d,%d) + (%d,%d)", ErrBoundsOverflow, origin.X, origin.Y, width, height)
	}

	b := New()
	b.ExpandByPoint(origin)
	b.ExpandByPoint(Pt(origin.X+width, origin.Y+height))
	return b, nil
}

// FromPoints folds ExpandByPoint over the given points.
// The result is the same whatever order the points arrive in.
func FromPoints(points []Point) BoundingBox {
	b := New()
	for _, p := range points {
		b.ExpandByPoint(p)
	}
	return b
}

// IsEmpty returns whether the box contains no points at all
func (b *BoundingBox) IsEmpty() bool {
	return !b.nonempty
}

// Min returns the corner with the lowest coordinates
func (b *BoundingBox) Min() Point {
	return b.min
}

// Max returns the corner with the highest coordinates
func (b *BoundingBox) Max() Point {
	return b.max
}

// Width of the box (0 for an empty box)
func (b *BoundingBox) Width() uint32 {
	return b.max.X - b.min.X
}

// Height of the box (0 for an empty box)
func (b *BoundingBox) Height() uint32 {
	return b.max.Y - b.min.Y
}

// ExpandByPoint grows the box to include pt.
// The box only ever grows; expanding by an already contained point is a no-op.
func (b *BoundingBox) ExpandByPoint(pt Point) {
	if !b.nonempty {
		b.min = pt
		b.max = pt
		b.nonempty = true
		return
	}
	b.min = b.min.Lowest(pt)
	b.max = b.max.Highest(pt)
}

// Contains returns if pt lies within the box, inclusive on all sides.
// An empty box contains nothing.
func (b *BoundingBox) Contains(pt Point) bool {
	if !b.nonempty {
		return false
	}
	return b.min.X <= pt.X && b.max.X >= pt.X && b.min.Y <= pt.Y && b.max.Y >= pt.Y
}

// Points returns the 4 corners in clockwise order starting at min.
// Nil for an empty box.
func (b *BoundingBox) Points() []Point {
	if !b.nonempty {
		return nil
	}
	return []Point{
		b.min,
		Pt(b.max.X, b.min.Y),
		b.max,
		Pt(b.min.X, b.max.Y),
	}
}

// Center returns the midpoint of the box, truncating toward zero on odd
// spans. The center of an empty box is the zero Point.
func (b *BoundingBox) Center() Point {
	// widened so boxes out at the far edge of the space can't wrap
	return Pt(
		uint32((uint64(b.min.X)+uint64(b.max.X))/2),
		uint32((uint64(b.min.Y)+uint64(b.max.Y))/2),
	)
}
