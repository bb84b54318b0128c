package geomvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"

	"github.com/topos-ai/geomvec-go/engine"
)

func TestEnvelopeOp(t *testing.T) {
	ops := testOps()

	got, err := ops.Envelope([]Geometry{ln(0, 0, 2, 3), None})
	require.NoError(t, err)
	poly, ok := got[0].Geom().(*geom.Polygon)
	require.True(t, ok)
	assert.Equal(t, []float64{0, 0, 2, 0, 2, 3, 0, 3, 0, 0}, poly.FlatCoords())
	assert.True(t, got[1].Missing())
}

func TestBoundaryOp(t *testing.T) {
	ops := testOps()

	got, err := ops.Boundary([]Geometry{ln(0, 0, 1, 0), None})
	require.NoError(t, err)
	mp, ok := got[0].Geom().(*geom.MultiPoint)
	require.True(t, ok)
	assert.Equal(t, 2, mp.NumPoints())
	assert.True(t, got[1].Missing())
}

func TestCentroidOp(t *testing.T) {
	ops := testOps()

	got, err := ops.Centroid([]Geometry{sq(0, 0, 2), None})
	require.NoError(t, err)
	p, ok := got[0].Geom().(*geom.Point)
	require.True(t, ok)
	assert.InDelta(t, 1, p.X(), 1e-12)
	assert.InDelta(t, 1, p.Y(), 1e-12)
	assert.True(t, got[1].Missing())
}

func TestSegmentizeOp(t *testing.T) {
	ops := testOps()

	got, err := ops.Segmentize([]Geometry{ln(0, 0, 2, 0), None}, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1, 0, 2, 0}, got[0].Geom().FlatCoords())
	assert.True(t, got[1].Missing())
}

func TestInterpolateOp(t *testing.T) {
	ops := testOps()

	paths := []Geometry{ln(0, 0, 10, 0), ln(0, 0, 0, 4), None}

	got, err := ops.Interpolate(paths, []float64{2, 0.5, 1}, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 0}, got[0].Geom().FlatCoords())
	assert.Equal(t, []float64{0, 0.5}, got[1].Geom().FlatCoords())
	assert.True(t, got[2].Missing())

	got, err = ops.Interpolate(paths[:1], 0.5, true)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 0}, got[0].Geom().FlatCoords())

	_, err = ops.Interpolate(paths, []float64{1, 2}, false)
	var mismatch *LengthMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestExtractUniquePointsOp(t *testing.T) {
	ops := testOps()

	got, err := ops.ExtractUniquePoints([]Geometry{sq(0, 0, 1), None})
	require.NoError(t, err)
	mp, ok := got[0].Geom().(*geom.MultiPoint)
	require.True(t, ok)
	assert.Equal(t, []float64{0, 0, 1, 0, 1, 1, 0, 1}, mp.FlatCoords())
	assert.True(t, got[1].Missing())
}

func TestMinimumBoundingCircleOp(t *testing.T) {
	ops := testOps()

	got, err := ops.MinimumBoundingCircle([]Geometry{sq(0, 0, 2), None})
	require.NoError(t, err)
	_, ok := got[0].Geom().(*geom.Polygon)
	require.True(t, ok)
	assert.True(t, got[1].Missing())
}

func TestConvexHullUnsupportedOnPlanar(t *testing.T) {
	ops := testOps()

	_, err := ops.ConvexHull([]Geometry{sq(0, 0, 1)})
	require.Error(t, err)
	assert.True(t, engine.IsUnsupported(err))

	_, err = ops.RepresentativePoint([]Geometry{sq(0, 0, 1)})
	assert.True(t, engine.IsUnsupported(err))

	_, err = ops.Buffer([]Geometry{sq(0, 0, 1)}, 1.0, 8)
	assert.True(t, engine.IsUnsupported(err))

	_, err = ops.ConcaveHull([]Geometry{sq(0, 0, 1)}, 0.5, false)
	assert.True(t, engine.IsUnsupported(err))

	_, err = ops.DelaunayTriangles([]Geometry{sq(0, 0, 1)}, 0, false)
	assert.True(t, engine.IsUnsupported(err))

	_, err = ops.OffsetCurve([]Geometry{ln(0, 0, 1, 0)}, 1.0, 8, 5)
	assert.True(t, engine.IsUnsupported(err))
}
