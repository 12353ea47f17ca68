package cellart

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/boljen/go-bitmap"

	"github.com/voidshard/cellart/internal/geom"
)

var (
	// ErrNotEnoughSpace implies the bounding box cannot hold the desired
	// number of distinct sites (or the filters reject too much of it).
	ErrNotEnoughSpace = fmt.Errorf("bounding box cannot fit the desired number of distinct sites")
)

const (
	// boxes up to this many cells track occupancy with a bitmap,
	// larger ones fall back to a point set
	maxBitmapArea = 1 << 26

	// when asked for most of a box's cells rejection sampling thrashes,
	// so past this fill ratio we enumerate & shuffle instead
	denseFillRatio = 0.5
)

// Builder struct makes managing the scattering of diagram sites easier.
// We're interested here in placing 'sites' (seed points of diagram cells)
// within a bounding box, optionally with some structure to how they are
// laid out.
type Builder struct {
	bounds geom.BoundingBox
	sites  []geom.Point
	rng    *rand.Rand
	sfilt  []SiteFilter
	cfilt  []CandidateFilter
}

// NewBuilder returns a new site Builder scattering over the given bounds
func NewBuilder(bounds geom.BoundingBox) *Builder {
	return &Builder{
		bounds: bounds,
		sites:  []geom.Point{},
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetSeed sets our internal RNG seed
func (b *Builder) SetSeed(seed int64) {
	b.rng = rand.New(rand.NewSource(seed))
}

// SetCandidateFilters sets filters that accept / reject a proposed site
// without reference to other currently set site(s).
func (b *Builder) SetCandidateFilters(f ...CandidateFilter) {
	b.cfilt = f
}

// SetSiteFilters sets filters that compare proposed sites to all current sites.
func (b *Builder) SetSiteFilters(f ...SiteFilter) {
	b.sfilt = f
}

// SiteCount returns how many sites we've currently got placed
func (b *Builder) SiteCount() int {
	return len(b.sites)
}

// Sites returns all currently placed sites
func (b *Builder) Sites() []geom.Point {
	return b.sites
}

// AddSite places a site at the given location, assuming it obeys currently
// set filters.
func (b *Builder) AddSite(pt geom.Point) bool {
	if !b.accepted(pt) {
		return false
	}
	b.sites = append(b.sites, pt)
	return true
}

// AddRandomSite places a site at random within bounds, assuming it obeys all
// currently set filters.
func (b *Builder) AddRandomSite() (geom.Point, bool) {
	pt := b.randomPoint()
	if !b.accepted(pt) {
		return geom.Point{}, false
	}
	b.sites = append(b.sites, pt)
	return pt, true
}

// DistinctPoints places n pairwise-distinct sites within bounds & returns
// them. Previously placed sites count toward distinctness.
//
// If n is more than the box can hold, or the filters keep rejecting
// candidates, we return ErrNotEnoughSpace rather than spin forever.
func (b *Builder) DistinctPoints(n int) ([]geom.Point, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot place %d sites", n)
	}
	if n == 0 {
		return []geom.Point{}, nil
	}
	if b.bounds.IsEmpty() {
		return nil, fmt.Errorf("%w: bounds are empty", ErrNotEnoughSpace)
	}

	// bounds are inclusive, so a WxH box holds (W+1)*(H+1) cells
	area := (uint64(b.bounds.Width()) + 1) * (uint64(b.bounds.Height()) + 1)
	if uint64(n)+uint64(len(b.sites)) > area {
		return nil, fmt.Errorf("%w: %d sites into %d cells", ErrNotEnoughSpace, n, area)
	}

	if len(b.cfilt) == 0 && len(b.sfilt) == 0 && area <= maxBitmapArea && float64(n) >= denseFillRatio*float64(area) {
		return b.densePoints(n)
	}
	return b.sparsePoints(n, area)
}

// sparsePoints rejection-samples random candidates, tracking occupancy so we
// never hand back the same point twice.
func (b *Builder) sparsePoints(n int, area uint64) ([]geom.Point, error) {
	taken := newOccupancy(b.bounds, area)
	for _, s := range b.sites {
		taken.mark(s)
	}

	// generous, but bounded; filters can make placement genuinely impossible
	attempts := 1000*n + 10000

	placed := make([]geom.Point, 0, n)
	for len(placed) < n {
		if attempts <= 0 {
			return nil, fmt.Errorf("%w: gave up after too many rejected candidates", ErrNotEnoughSpace)
		}
		attempts--

		pt := b.randomPoint()
		if taken.occupied(pt) || !b.accepted(pt) {
			continue
		}

		taken.mark(pt)
		b.sites = append(b.sites, pt)
		placed = append(placed, pt)
	}

	return placed, nil
}

// densePoints enumerates every free cell, shuffles & takes the first n.
// Exact and cheap when the caller wants a large slice of the box.
func (b *Builder) densePoints(n int) ([]geom.Point, error) {
	existing := map[geom.Point]struct{}{}
	for _, s := range b.sites {
		existing[s] = struct{}{}
	}

	min, max := b.bounds.Min(), b.bounds.Max()
	free := make([]geom.Point, 0, n)
	for y := min.Y; ; y++ {
		for x := min.X; ; x++ {
			pt := geom.Pt(x, y)
			if _, ok := existing[pt]; !ok {
				free = append(free, pt)
			}
			if x == max.X {
				break
			}
		}
		if y == max.Y {
			break
		}
	}

	if len(free) < n {
		return nil, fmt.Errorf("%w: only %d free cells remain", ErrNotEnoughSpace, len(free))
	}

	b.rng.Shuffle(len(free), func(i, j int) {
		free[i], free[j] = free[j], free[i]
	})

	placed := free[:n]
	b.sites = append(b.sites, placed...)
	return placed, nil
}

// randomPoint returns a uniform random point within bounds (inclusive)
func (b *Builder) randomPoint() geom.Point {
	min := b.bounds.Min()
	return geom.Pt(
		min.X+uint32(b.rng.Int63n(int64(b.bounds.Width())+1)),
		min.Y+uint32(b.rng.Int63n(int64(b.bounds.Height())+1)),
	)
}

// accepted returns if the proposed site location is acceptable to our filters.
// We run CandidateFilter(s) first so we can hopefully reject candidates early.
func (b *Builder) accepted(candidate geom.Point) bool {
	if !b.bounds.Contains(candidate) {
		return false
	}

	for _, fn := range b.cfilt {
		if !fn(candidate) {
			return false
		}
	}

	for _, s := range b.sites {
		for _, fn := range b.sfilt {
			if !fn(candidate, s) {
				return false
			}
		}
	}

	return true
}

// occupancy tracks which cells of a box already hold a site.
// Image-sized boxes get a flat bitmap, outsized boxes a point set.
type occupancy struct {
	min    geom.Point
	stride uint64
	bits   bitmap.Bitmap
	set    map[geom.Point]struct{}
}

func newOccupancy(bounds geom.BoundingBox, area uint64) *occupancy {
	o := &occupancy{
		min:    bounds.Min(),
		stride: uint64(bounds.Width()) + 1,
	}
	if area <= maxBitmapArea {
		o.bits = bitmap.New(int(area))
	} else {
		o.set = map[geom.Point]struct{}{}
	}
	return o
}

func (o *occupancy) index(pt geom.Point) int {
	return int(uint64(pt.Y-o.min.Y)*o.stride + uint64(pt.X-o.min.X))
}

func (o *occupancy) mark(pt geom.Point) {
	if o.bits != nil {
		o.bits.Set(o.index(pt), true)
		return
	}
	o.set[pt] = struct{}{}
}

func (o *occupancy) occupied(pt geom.Point) bool {
	if o.bits != nil {
		return o.bits.Get(o.index(pt))
	}
	_, ok := o.set[pt]
	return ok
}
