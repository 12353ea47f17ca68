// Package kdtree implements a static 2-dimensional k-d tree used to answer
// nearest-site queries while rasterizing diagrams.
//
// The tree is built once over a fixed set of (point, payload) entries and is
// read-only afterwards, so any number of goroutines may query it without
// coordination.
package kdtree

import (
	"sort"
	"sync"

	"github.com/voidshard/cellart/internal/geom"
)

const (
	// splitting axes, alternating by depth
	axisX = 0
	axisY = 1

	// subtree builds below this size aren't worth a goroutine
	parallelCutoff = 2048
)

// Entry is a point with an attached payload. The payload is opaque to the
// tree; it's simply handed back by Nearest.
type Entry[P any] struct {
	Point geom.Point
	Data  P
}

// node owns its two subtrees exclusively; there are no shared references
// and no cycles.
type node[P any] struct {
	entry Entry[P]
	axis  int
	left  *node[P]
	right *node[P]
}

// Tree is a balanced 2-d tree over a fixed entry set.
type Tree[P any] struct {
	root *node[P]
	size int
}

// Build constructs a balanced tree from the given entries.
// Entries are copied; the caller's slice is not touched. An empty (or nil)
// slice yields an empty tree whose queries report not-found.
//
// At each level entries are stably sorted on the axis for that depth (x at
// even depths, y at odd) & the median becomes the node, so the tree has
// depth O(log n) whatever the input distribution. Stable sorting makes the
// tie-break for equal axis coordinates the original entry order, which keeps
// builds reproducible.
func Build[P any](entries []Entry[P]) *Tree[P] {
	own := make([]Entry[P], len(entries))
	copy(own, entries)

	depthBudget := 0
	if len(own) >= parallelCutoff {
		// left/right subtree builds are independent, fork a few levels
		depthBudget = 3
	}

	return &Tree[P]{
		root: build(own, 0, depthBudget),
		size: len(own),
	}
}

// build recursively partitions entries, forking the left subtree onto its
// own goroutine while parallel levels remain.
func build[P any](entries []Entry[P], depth, parallel int) *node[P] {
	if len(entries) == 0 {
		return nil
	}

	axis := depth % 2
	sort.SliceStable(entries, func(i, j int) bool {
		if axis == axisX {
			return entries[i].Point.X < entries[j].Point.X
		}
		return entries[i].Point.Y < entries[j].Point.Y
	})

	mid := len(entries) / 2
	n := &node[P]{entry: entries[mid], axis: axis}

	if parallel > 0 && len(entries) >= parallelCutoff {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			n.left = build(entries[:mid], depth+1, parallel-1)
		}()
		n.right = build(entries[mid+1:], depth+1, parallel-1)
		wg.Wait()
	} else {
		n.left = build(entries[:mid], depth+1, 0)
		n.right = build(entries[mid+1:], depth+1, 0)
	}

	return n
}

// Len returns the number of entries in the tree
func (t *Tree[P]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Nearest returns the stored entry whose euclidean distance to q is minimal,
// or ok=false if the tree is empty. If several entries are equidistant any
// one of them may win; callers must not rely on which.
//
// The search descends toward q's side of each splitting plane first, then
// only crosses to the far side where the plane is closer than the best
// distance found so far.
func (t *Tree[P]) Nearest(q geom.Point) (geom.Point, P, bool) {
	var zero P
	if t == nil || t.root == nil {
		return geom.Point{}, zero, false
	}

	best := t.root
	bestDist := q.DistSq(t.root.entry.Point)
	t.root.nearest(q, &best, &bestDist)

	return best.entry.Point, best.entry.Data, true
}

func (n *node[P]) nearest(q geom.Point, best **node[P], bestDist *uint64) {
	if n == nil {
		return
	}

	if d := q.DistSq(n.entry.Point); d < *bestDist {
		*best = n
		*bestDist = d
	}

	qc, nc := q.X, n.entry.Point.X
	if n.axis == axisY {
		qc, nc = q.Y, n.entry.Point.Y
	}

	near, far := n.left, n.right
	if qc > nc {
		near, far = n.right, n.left
	}

	near.nearest(q, best, bestDist)

	// anything on the far side is at least plane-distance away
	var plane uint64
	if qc > nc {
		plane = uint64(qc - nc)
	} else {
		plane = uint64(nc - qc)
	}
	if plane*plane < *bestDist {
		far.nearest(q, best, bestDist)
	}
}

// walk visits every entry in-order. Used by tests to compare tree shapes.
func (t *Tree[P]) walk(fn func(depth int, e Entry[P])) {
	t.root.walk(0, fn)
}

func (n *node[P]) walk(depth int, fn func(depth int, e Entry[P])) {
	if n == nil {
		return
	}
	n.left.walk(depth+1, fn)
	fn(depth, n.entry)
	n.right.walk(depth+1, fn)
}
