package planar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"
)

func TestEnvelope(t *testing.T) {
	e := New()

	t.Run("polygon", func(t *testing.T) {
		got, err := e.Envelope(line(0, 0, 2, 1, 1, 3))
		require.NoError(t, err)
		poly, ok := got.(*geom.Polygon)
		require.True(t, ok)
		assert.Equal(t, []float64{0, 0, 2, 0, 2, 3, 0, 3, 0, 0}, poly.FlatCoords())
	})

	t.Run("degenerate vertical extent", func(t *testing.T) {
		got, err := e.Envelope(line(0, 0, 2, 0))
		require.NoError(t, err)
		ls, ok := got.(*geom.LineString)
		require.True(t, ok)
		assert.Equal(t, []float64{0, 0, 2, 0}, ls.FlatCoords())
	})

	t.Run("point collapses to point", func(t *testing.T) {
		got, err := e.Envelope(point(3, 4))
		require.NoError(t, err)
		p, ok := got.(*geom.Point)
		require.True(t, ok)
		assert.Equal(t, []float64{3, 4}, p.FlatCoords())
	})

	t.Run("empty input", func(t *testing.T) {
		got, err := e.Envelope(geom.NewPolygon(geom.XY))
		require.NoError(t, err)
		assert.True(t, got.Empty())
	})
}

func TestBoundary(t *testing.T) {
	e := New()

	t.Run("open line", func(t *testing.T) {
		got, err := e.Boundary(line(0, 0, 1, 0, 1, 1))
		require.NoError(t, err)
		mp, ok := got.(*geom.MultiPoint)
		require.True(t, ok)
		assert.Equal(t, []float64{0, 0, 1, 1}, mp.FlatCoords())
	})

	t.Run("closed line has empty boundary", func(t *testing.T) {
		got, err := e.Boundary(line(0, 0, 1, 0, 1, 1, 0, 0))
		require.NoError(t, err)
		assert.True(t, got.Empty())
	})

	t.Run("shared endpoint is interior", func(t *testing.T) {
		mls := geom.NewMultiLineString(geom.XY)
		require.NoError(t, mls.Push(line(0, 0, 1, 0)))
		require.NoError(t, mls.Push(line(1, 0, 2, 0)))
		got, err := e.Boundary(mls)
		require.NoError(t, err)
		mp, ok := got.(*geom.MultiPoint)
		require.True(t, ok)
		assert.Equal(t, []float64{0, 0, 2, 0}, mp.FlatCoords())
	})

	t.Run("point has empty boundary", func(t *testing.T) {
		got, err := e.Boundary(point(1, 1))
		require.NoError(t, err)
		assert.True(t, got.Empty())
	})

	t.Run("polygon boundary is its ring", func(t *testing.T) {
		got, err := e.Boundary(unitSquare())
		require.NoError(t, err)
		ls, ok := got.(*geom.LineString)
		require.True(t, ok)
		assert.Equal(t, unitSquare().LinearRing(0).FlatCoords(), ls.FlatCoords())
	})

	t.Run("polygon with hole yields both rings", func(t *testing.T) {
		got, err := e.Boundary(squareWithHole())
		require.NoError(t, err)
		mls, ok := got.(*geom.MultiLineString)
		require.True(t, ok)
		assert.Equal(t, 2, mls.NumLineStrings())
	})
}

func TestCentroid(t *testing.T) {
	e := New()

	tests := []struct {
		name  string
		g     geom.T
		wantX float64
		wantY float64
	}{
		{"unit square", unitSquare(), 0.5, 0.5},
		{"segment midpoint", line(0, 0, 2, 0), 1, 0},
		{"point pair", geom.NewMultiPointFlat(geom.XY, []float64{0, 0, 2, 4}), 1, 2},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := e.Centroid(test.g)
			require.NoError(t, err)
			p, ok := got.(*geom.Point)
			require.True(t, ok)
			assert.InDelta(t, test.wantX, p.X(), 1e-12)
			assert.InDelta(t, test.wantY, p.Y(), 1e-12)
		})
	}

	t.Run("areal components dominate", func(t *testing.T) {
		gc := geom.NewGeometryCollection()
		require.NoError(t, gc.Push(unitSquare()))
		require.NoError(t, gc.Push(point(100, 100)))
		got, err := e.Centroid(gc)
		require.NoError(t, err)
		p := got.(*geom.Point)
		assert.InDelta(t, 0.5, p.X(), 1e-12)
		assert.InDelta(t, 0.5, p.Y(), 1e-12)
	})

	t.Run("empty input", func(t *testing.T) {
		got, err := e.Centroid(geom.NewGeometryCollection())
		require.NoError(t, err)
		assert.True(t, got.Empty())
	})
}

func TestSegmentize(t *testing.T) {
	e := New()

	t.Run("line subdivided evenly", func(t *testing.T) {
		got, err := e.Segmentize(line(0, 0, 3, 0), 1)
		require.NoError(t, err)
		ls := got.(*geom.LineString)
		assert.Equal(t, []float64{0, 0, 1, 0, 2, 0, 3, 0}, ls.FlatCoords())
	})

	t.Run("short edges untouched", func(t *testing.T) {
		got, err := e.Segmentize(line(0, 0, 1, 0), 5)
		require.NoError(t, err)
		ls := got.(*geom.LineString)
		assert.Equal(t, []float64{0, 0, 1, 0}, ls.FlatCoords())
	})

	t.Run("polygon rings subdivided", func(t *testing.T) {
		got, err := e.Segmentize(unitSquare(), 0.5)
		require.NoError(t, err)
		poly := got.(*geom.Polygon)
		assert.Equal(t, 9, poly.LinearRing(0).NumCoords())
	})

	t.Run("points pass through", func(t *testing.T) {
		got, err := e.Segmentize(point(1, 1), 0.5)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 1}, got.FlatCoords())
	})

	t.Run("non-positive length rejected", func(t *testing.T) {
		_, err := e.Segmentize(line(0, 0, 1, 0), 0)
		require.Error(t, err)
	})

	t.Run("elevation interpolated along the edge", func(t *testing.T) {
		got, err := e.Segmentize(geom.NewLineStringFlat(geom.XYZ, []float64{0, 0, 0, 2, 0, 4}), 1)
		require.NoError(t, err)
		ls := got.(*geom.LineString)
		assert.Equal(t, geom.XYZ, ls.Layout())
		assert.Equal(t, []float64{0, 0, 0, 1, 0, 2, 2, 0, 4}, ls.FlatCoords())
	})
}

func TestExtractUniquePoints(t *testing.T) {
	e := New()

	got, err := e.ExtractUniquePoints(unitSquare())
	require.NoError(t, err)
	mp, ok := got.(*geom.MultiPoint)
	require.True(t, ok)
	assert.Equal(t, []float64{0, 0, 1, 0, 1, 1, 0, 1}, mp.FlatCoords())
}

func TestMinimumBoundingCircle(t *testing.T) {
	e := New()

	radius, err := e.MinimumBoundingRadius(unitSquare())
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(0.5), radius, 1e-9)

	circle, err := e.MinimumBoundingCircle(unitSquare())
	require.NoError(t, err)
	poly, ok := circle.(*geom.Polygon)
	require.True(t, ok)
	flat := poly.FlatCoords()
	for i := 0; i < len(flat); i += 2 {
		d := math.Hypot(flat[i]-0.5, flat[i+1]-0.5)
		assert.InDelta(t, radius, d, 1e-9)
	}
}
