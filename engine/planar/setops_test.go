package planar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"

	"github.com/topos-ai/geomvec-go/engine"
)

func TestUnionAllPoints(t *testing.T) {
	e := New()

	t.Run("deduplicates", func(t *testing.T) {
		got, err := e.UnionAll([]geom.T{
			point(0, 0),
			geom.NewMultiPointFlat(geom.XY, []float64{1, 1, 0, 0}),
			point(1, 1),
		})
		require.NoError(t, err)
		mp, ok := got.(*geom.MultiPoint)
		require.True(t, ok)
		assert.Equal(t, []float64{0, 0, 1, 1}, mp.FlatCoords())
	})

	t.Run("single point result", func(t *testing.T) {
		got, err := e.UnionAll([]geom.T{point(2, 3), point(2, 3)})
		require.NoError(t, err)
		p, ok := got.(*geom.Point)
		require.True(t, ok)
		assert.Equal(t, []float64{2, 3}, p.FlatCoords())
	})

	t.Run("extended geometries unsupported", func(t *testing.T) {
		_, err := e.UnionAll([]geom.T{point(0, 0), unitSquare()})
		assert.True(t, engine.IsUnsupported(err))
	})

	t.Run("empty input rejected", func(t *testing.T) {
		_, err := e.UnionAll(nil)
		require.Error(t, err)
	})
}

func TestUnionOfPoints(t *testing.T) {
	e := New()

	got, err := e.Union(point(0, 0), point(1, 1))
	require.NoError(t, err)
	mp, ok := got.(*geom.MultiPoint)
	require.True(t, ok)
	assert.Equal(t, 2, mp.NumPoints())
}
