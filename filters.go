package cellart

import (
	"math"

	"github.com/voidshard/cellart/internal/geom"
)

// CandidateFilter accepts or rejects a candidate point based purely on the
// point itself.
// These filters are run before SiteFilter(s) which naturally require
// us to iterate each site.
type CandidateFilter func(pt geom.Point) bool

// SiteFilter is a filter for a candidate point that is run against every
// current site in the builder.
// Ie. we must 'accept' the candidate when compared with every existing
// site that we've previously accepted.
type SiteFilter func(candidate, site geom.Point) bool

// MinDistance ensures that a candidate point is at least `dist` distance
// away from every other site.
func MinDistance(dist float64) SiteFilter {
	return func(candidate, site geom.Point) bool {
		return math.Sqrt(float64(candidate.DistSq(site))) >= dist
	}
}
