// Package cellart renders Voronoi diagram images: distinct seed sites are
// scattered over a pixel canvas & every pixel takes a color derived from
// whichever site is nearest to it. Site colors come either from a random
// palette or from a two color gradient.
//
// Site lookups run through a k-d tree (internal/kdtree) so rendering costs
// roughly pixels * log(sites) rather than pixels * sites.
package cellart

import (
	"fmt"
	"image"
	"image/color"
	"runtime"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/sync/errgroup"

	"github.com/voidshard/cellart/internal/geom"
	"github.com/voidshard/cellart/internal/kdtree"
)

var (
	// ErrInvalidSiteCount implies a negative number of sites was requested
	ErrInvalidSiteCount = fmt.Errorf("site count must be >= 0")
)

// renderConfig holds settings shared by both diagram modes
type renderConfig struct {
	seed    int64
	seedSet bool

	workers int

	markers      color.Color
	markerRadius float64
}

// Option adjusts how a diagram is rendered
type Option func(*renderConfig)

// WithSeed fixes the RNG seed for both site placement & color selection,
// making the output image fully deterministic.
func WithSeed(seed int64) Option {
	return func(c *renderConfig) {
		c.seed = seed
		c.seedSet = true
	}
}

// WithWorkers sets how many goroutines rasterize pixels.
// Defaults to GOMAXPROCS. The output does not depend on the worker count.
func WithWorkers(n int) Option {
	return func(c *renderConfig) {
		c.workers = n
	}
}

// WithSiteMarkers draws a small dot of the given color over each site
// once the diagram itself is finished.
func WithSiteMarkers(c color.Color) Option {
	return func(r *renderConfig) {
		r.markers = c
	}
}

// WithSiteMarkerRadius sets the marker dot radius (default 2px).
// Only meaningful together with WithSiteMarkers.
func WithSiteMarkerRadius(radius float64) Option {
	return func(r *renderConfig) {
		r.markerRadius = radius
	}
}

func newRenderConfig(opts []Option) *renderConfig {
	cfg := &renderConfig{markerRadius: 2}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.workers <= 0 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}
	return cfg
}

// GradientVoronoi renders a Voronoi diagram onto img where cell colors are
// taken from the gradient running from color1 to color2 across the image
// width.
//
// Each cell is flat shaded: a pixel takes the gradient evaluated at the
// x-coordinate of its *site*, not its own. That's what gives the diagram its
// blocky, per-cell coloring.
//
// nsites == 0 is a no-op & the image is left untouched. Otherwise nsites
// distinct random sites are scattered over the image bounds; failing to
// place them aborts before any pixel is written.
func GradientVoronoi(img *image.RGBA, color1, color2 color.RGBA, nsites int, opts ...Option) error {
	if nsites == 0 {
		return nil
	}
	if nsites < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSiteCount, nsites)
	}

	cfg := newRenderConfig(opts)
	sites, err := scatterSites(img, nsites, cfg)
	if err != nil {
		return err
	}

	entries := make([]kdtree.Entry[struct{}], len(sites))
	for i, s := range sites {
		entries[i] = kdtree.Entry[struct{}]{Point: s}
	}
	tree := kdtree.Build(entries)

	dr := float64(color2.R) - float64(color1.R)
	dg := float64(color2.G) - float64(color1.G)
	db := float64(color2.B) - float64(color1.B)
	width := float64(img.Bounds().Dx())

	eachPixel(img, cfg.workers, func(x, y uint32) color.RGBA {
		site, _, ok := tree.Nearest(geom.Pt(x, y))
		if !ok {
			panic("cellart: site index empty after build")
		}

		// truncate, don't round; matches the 8 bit channel contract
		c := float64(site.X) / width
		return color.RGBA{
			R: uint8(float64(color1.R) + c*dr),
			G: uint8(float64(color1.G) + c*dg),
			B: uint8(float64(color1.B) + c*db),
			A: 255,
		}
	})

	drawSiteMarkers(img, sites, cfg)
	return nil
}

// RandomVoronoi renders a Voronoi diagram onto img where every cell gets an
// independently random color drawn via colors (nil means the defaults of
// NewRandomColorConfig).
//
// nsites == 0 is a no-op & the image is left untouched.
func RandomVoronoi(img *image.RGBA, colors *RandomColorConfig, nsites int, opts ...Option) error {
	if nsites == 0 {
		return nil
	}
	if nsites < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSiteCount, nsites)
	}

	cfg := newRenderConfig(opts)
	if colors == nil {
		colors = NewRandomColorConfig(time.Now().UnixNano())
	}
	if cfg.seedSet {
		// offset so the color stream isn't in lockstep with site placement
		colors.SetSeed(cfg.seed + 1)
	}

	sites, err := scatterSites(img, nsites, cfg)
	if err != nil {
		return err
	}

	entries := make([]kdtree.Entry[color.RGBA], len(sites))
	for i, s := range sites {
		entries[i] = kdtree.Entry[color.RGBA]{Point: s, Data: colors.Next()}
	}
	tree := kdtree.Build(entries)

	eachPixel(img, cfg.workers, func(x, y uint32) color.RGBA {
		_, c, ok := tree.Nearest(geom.Pt(x, y))
		if !ok {
			panic("cellart: site index empty after build")
		}
		return c
	})

	drawSiteMarkers(img, sites, cfg)
	return nil
}

// scatterSites places nsites distinct random points over the image bounds
func scatterSites(img *image.RGBA, nsites int, cfg *renderConfig) ([]geom.Point, error) {
	bnds := img.Bounds()
	box := geom.FromDimensions(uint32(bnds.Dx()), uint32(bnds.Dy()))

	builder := NewBuilder(box)
	if cfg.seedSet {
		builder.SetSeed(cfg.seed)
	}
	return builder.DistinctPoints(nsites)
}

// eachPixel calls fn for every pixel & writes the returned color.
// Rows are split into chunks owned by one worker each, so writes never
// overlap & no locking is needed; pixel order doesn't matter as every
// pixel is independent.
func eachPixel(img *image.RGBA, workers int, fn func(x, y uint32) color.RGBA) {
	bnds := img.Bounds()
	rows := bnds.Dy()
	if rows == 0 || bnds.Dx() == 0 {
		return
	}
	if workers > rows {
		workers = rows
	}

	chunk := (rows + workers - 1) / workers

	var grp errgroup.Group
	for w := 0; w < workers; w++ {
		y0 := bnds.Min.Y + w*chunk
		y1 := y0 + chunk
		if y1 > bnds.Max.Y {
			y1 = bnds.Max.Y
		}
		if y0 >= y1 {
			continue
		}

		grp.Go(func() error {
			for y := y0; y < y1; y++ {
				for x := bnds.Min.X; x < bnds.Max.X; x++ {
					img.SetRGBA(x, y, fn(uint32(x-bnds.Min.X), uint32(y-bnds.Min.Y)))
				}
			}
			return nil
		})
	}

	// workers don't error, Wait is just the join point
	_ = grp.Wait()
}

// drawSiteMarkers dots each site on top of the finished diagram
func drawSiteMarkers(img *image.RGBA, sites []geom.Point, cfg *renderConfig) {
	if cfg.markers == nil {
		return
	}

	bnds := img.Bounds()
	ctx := gg.NewContextForRGBA(img)
	ctx.SetColor(cfg.markers)
	for _, s := range sites {
		ctx.DrawCircle(float64(bnds.Min.X)+float64(s.X), float64(bnds.Min.Y)+float64(s.Y), cfg.markerRadius)
	}
	ctx.Fill()
}
