package geomvec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"
)

func TestTransform(t *testing.T) {
	ops := testOps()
	shift := func(x, y, z float64) (float64, float64, float64) {
		return x + 10, y + 20, z
	}

	t.Run("polygon structure preserved", func(t *testing.T) {
		hole := NewGeometry(geom.NewPolygonFlat(geom.XY, []float64{
			0, 0, 4, 0, 4, 4, 0, 4, 0, 0,
			1, 1, 3, 1, 3, 3, 1, 3, 1, 1,
		}, []int{10, 20}))

		got, err := ops.Transform([]Geometry{hole}, shift)
		require.NoError(t, err)
		poly, ok := got[0].Geom().(*geom.Polygon)
		require.True(t, ok)
		assert.Equal(t, 2, poly.NumLinearRings())
		assert.Equal(t, []float64{10, 20, 14, 20, 14, 24, 10, 24, 10, 20}, poly.LinearRing(0).FlatCoords())
	})

	t.Run("missing passes through", func(t *testing.T) {
		got, err := ops.Transform([]Geometry{None, pt(1, 1)}, shift)
		require.NoError(t, err)
		assert.True(t, got[0].Missing())
		assert.Equal(t, []float64{11, 21}, got[1].Geom().FlatCoords())
	})

	t.Run("elevation preserved", func(t *testing.T) {
		p := NewGeometry(geom.NewPointFlat(geom.XYZ, []float64{1, 2, 7}))
		raise := func(x, y, z float64) (float64, float64, float64) {
			return x, y, z + 1
		}
		got, err := ops.Transform([]Geometry{p}, raise)
		require.NoError(t, err)
		assert.Equal(t, geom.XYZ, got[0].Geom().Layout())
		assert.Equal(t, []float64{1, 2, 8}, got[0].Geom().FlatCoords())
	})

	t.Run("srid preserved", func(t *testing.T) {
		p := NewGeometry(geom.NewPointFlat(geom.XY, []float64{1, 2}).SetSRID(4326))
		got, err := ops.Transform([]Geometry{p}, shift)
		require.NoError(t, err)
		assert.Equal(t, 4326, got[0].Geom().SRID())
	})

	t.Run("collection members transformed", func(t *testing.T) {
		gc := geom.NewGeometryCollection()
		require.NoError(t, gc.Push(geom.NewPointFlat(geom.XY, []float64{1, 1})))
		require.NoError(t, gc.Push(geom.NewLineStringFlat(geom.XY, []float64{0, 0, 2, 2})))
		got, err := ops.Transform([]Geometry{NewGeometry(gc)}, shift)
		require.NoError(t, err)
		out, ok := got[0].Geom().(*geom.GeometryCollection)
		require.True(t, ok)
		require.Equal(t, 2, out.NumGeoms())
		assert.Equal(t, []float64{11, 21}, out.Geoms()[0].FlatCoords())
	})
}

func TestAffineTransforms(t *testing.T) {
	ops := testOps()

	t.Run("translation", func(t *testing.T) {
		got, err := ops.AffineTransform([]Geometry{pt(1, 2)}, Translation(3, -1))
		require.NoError(t, err)
		assert.Equal(t, []float64{4, 1}, got[0].Geom().FlatCoords())
	})

	t.Run("scaling about an origin", func(t *testing.T) {
		got, err := ops.AffineTransform([]Geometry{pt(2, 2)}, Scaling(2, 3, 1, 1))
		require.NoError(t, err)
		assert.Equal(t, []float64{3, 4}, got[0].Geom().FlatCoords())
	})

	t.Run("rotation about an origin", func(t *testing.T) {
		got, err := ops.AffineTransform([]Geometry{pt(2, 1)}, Rotation(math.Pi/2, 1, 1))
		require.NoError(t, err)
		coords := got[0].Geom().FlatCoords()
		assert.InDelta(t, 1, coords[0], 1e-12)
		assert.InDelta(t, 2, coords[1], 1e-12)
	})

	t.Run("shear", func(t *testing.T) {
		got, err := ops.AffineTransform([]Geometry{pt(0, 2)}, Shear(math.Pi/4, 0, 0, 0))
		require.NoError(t, err)
		coords := got[0].Geom().FlatCoords()
		assert.InDelta(t, 2, coords[0], 1e-12)
		assert.InDelta(t, 2, coords[1], 1e-12)
	})

	t.Run("missing and empty pass through", func(t *testing.T) {
		empty := NewGeometry(geom.NewPolygon(geom.XY))
		got, err := ops.AffineTransform([]Geometry{None, empty}, Translation(1, 1))
		require.NoError(t, err)
		assert.True(t, got[0].Missing())
		assert.False(t, got[1].Missing())
		assert.True(t, got[1].Empty())
	})
}
