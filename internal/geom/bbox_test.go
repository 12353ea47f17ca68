package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmptyBox(t *testing.T) {
	b := New()

	require.True(t, b.IsEmpty())
	require.False(t, b.Contains(Pt(0, 0)))
	require.Nil(t, b.Points())
	require.Equal(t, uint32(0), b.Width())
	require.Equal(t, uint32(0), b.Height())
}

func TestContains(t *testing.T) {
	b, err := FromDimensionsAndOrigin(Pt(3, 5), 7, 5)
	require.NoError(t, err)

	require.False(t, b.Contains(Pt(0, 0)))
	require.False(t, b.Contains(Pt(4, 0)))
	require.False(t, b.Contains(Pt(0, 8)))
	require.False(t, b.Contains(Pt(40, 40)))

	require.True(t, b.Contains(Pt(3, 5)))
	require.True(t, b.Contains(Pt(5, 7)))
	require.True(t, b.Contains(Pt(10, 10)))
}

func TestPoints(t *testing.T) {
	b, err := FromDimensionsAndOrigin(Pt(3, 5), 7, 5)
	require.NoError(t, err)

	require.Equal(t, []Point{Pt(3, 5), Pt(10, 5), Pt(10, 10), Pt(3, 10)}, b.Points())
}

func TestPointsContainedByBox(t *testing.T) {
	// every corner of the box is inside the box
	b, err := FromDimensionsAndOrigin(Pt(13, 2), 11, 29)
	require.NoError(t, err)

	for _, corner := range b.Points() {
		require.True(t, b.Contains(corner))
	}
}

func TestCenter(t *testing.T) {
	b, err := FromDimensionsAndOrigin(Pt(2, 4), 8, 6)
	require.NoError(t, err)

	// (2+10)/2 = 6, (4+10)/2 = 7
	require.Equal(t, Pt(6, 7), b.Center())
}

func TestCenterTruncates(t *testing.T) {
	b, err := FromDimensionsAndOrigin(Pt(0, 0), 3, 5)
	require.NoError(t, err)

	require.Equal(t, Pt(1, 2), b.Center())
}

func TestFromDimensions(t *testing.T) {
	a := FromDimensions(640, 480)
	b, err := FromDimensionsAndOrigin(Pt(0, 0), 640, 480)
	require.NoError(t, err)

	require.Equal(t, b, a)
	require.Equal(t, Pt(0, 0), a.Min())
	require.Equal(t, Pt(640, 480), a.Max())
	require.Equal(t, uint32(640), a.Width())
	require.Equal(t, uint32(480), a.Height())
}

func TestFromDimensionsAndOriginOverflow(t *testing.T) {
	_, err := FromDimensionsAndOrigin(Pt(math.MaxUint32-5, 0), 6, 0)
	require.NoError(t, err)

	_, err = FromDimensionsAndOrigin(Pt(math.MaxUint32-5, 0), 7, 0)
	require.ErrorIs(t, err, ErrBoundsOverflow)

	_, err = FromDimensionsAndOrigin(Pt(0, math.MaxUint32), 0, 1)
	require.ErrorIs(t, err, ErrBoundsOverflow)
}

func TestExpandByPoint(t *testing.T) {
	b := New()

	b.ExpandByPoint(Pt(5, 5))
	require.False(t, b.IsEmpty())
	require.Equal(t, Pt(5, 5), b.Min())
	require.Equal(t, Pt(5, 5), b.Max())

	b.ExpandByPoint(Pt(2, 9))
	require.Equal(t, Pt(2, 5), b.Min())
	require.Equal(t, Pt(5, 9), b.Max())

	// expanding by a contained point changes nothing
	before := b
	b.ExpandByPoint(Pt(3, 7))
	require.Equal(t, before, b)
}

func TestFromPointsOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	pts := make([]Point, 50)
	for i := range pts {
		pts[i] = Pt(rng.Uint32()%1000, rng.Uint32()%1000)
	}
	want := FromPoints(pts)

	for i := 0; i < 20; i++ {
		shuffled := make([]Point, len(pts))
		copy(shuffled, pts)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		require.Equal(t, want, FromPoints(shuffled))
	}
}

func TestDistSq(t *testing.T) {
	require.Equal(t, uint64(0), Pt(4, 4).DistSq(Pt(4, 4)))
	require.Equal(t, uint64(25), Pt(0, 0).DistSq(Pt(3, 4)))
	require.Equal(t, uint64(25), Pt(3, 4).DistSq(Pt(0, 0)))
	require.Equal(t, uint64(2), Pt(10, 10).DistSq(Pt(11, 11)))
}
