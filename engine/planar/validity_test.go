package planar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"

	"github.com/topos-ai/geomvec-go/engine"
)

func TestIsValid(t *testing.T) {
	e := New()

	tests := []struct {
		name       string
		g          geom.T
		want       bool
		wantReason string
	}{
		{"point", point(1, 2), true, "Valid Geometry"},
		{"square", unitSquare(), true, "Valid Geometry"},
		{"nan coordinate", point(math.NaN(), 0), false, "Invalid Coordinate"},
		{"infinite coordinate", line(0, 0, math.Inf(1), 0), false, "Invalid Coordinate"},
		{"single vertex line", geom.NewLineStringFlat(geom.XY, []float64{1, 1}), false, "Too few points in geometry component"},
		{
			"unclosed ring",
			geom.NewPolygonFlat(geom.XY, []float64{0, 0, 1, 0, 1, 1, 0, 2}, []int{8}),
			false, "Ring is not closed",
		},
		{
			"ring with too few points",
			geom.NewPolygonFlat(geom.XY, []float64{0, 0, 1, 0, 0, 0}, []int{6}),
			false, "Too few points in geometry component",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := e.IsValid(test.g)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)

			reason, err := e.IsValidReason(test.g)
			require.NoError(t, err)
			assert.Equal(t, test.wantReason, reason)
		})
	}
}

func TestIsSimple(t *testing.T) {
	e := New()

	tests := []struct {
		name string
		g    geom.T
		want bool
	}{
		{"point", point(1, 1), true},
		{"distinct multipoint", geom.NewMultiPointFlat(geom.XY, []float64{0, 0, 1, 1}), true},
		{"duplicated multipoint", geom.NewMultiPointFlat(geom.XY, []float64{0, 0, 1, 1, 0, 0}), false},
		{"straight line", line(0, 0, 1, 0, 2, 0), true},
		{"self-crossing line", line(0, 0, 2, 2, 2, 0, 0, 2), false},
		{"closed ring", line(0, 0, 1, 0, 1, 1, 0, 1, 0, 0), true},
		{"line revisiting a vertex", line(0, 0, 2, 0, 1, 1, 1, -1), false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := e.IsSimple(test.g)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}

	_, err := e.IsSimple(unitSquare())
	assert.True(t, engine.IsUnsupported(err))
}

func TestIsRing(t *testing.T) {
	e := New()

	tests := []struct {
		name string
		g    geom.T
		want bool
	}{
		{"closed simple line", line(0, 0, 1, 0, 1, 1, 0, 0), true},
		{"open line", line(0, 0, 1, 0, 1, 1), false},
		{"closed but too short", line(0, 0, 1, 0, 0, 0), false},
		{"point is not a ring", point(0, 0), false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := e.IsRing(test.g)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestEqualsExact(t *testing.T) {
	e := New()

	tests := []struct {
		name      string
		a, b      geom.T
		tolerance float64
		want      bool
	}{
		{"identical points", point(1, 2), point(1, 2), 0, true},
		{"within tolerance", point(1, 2), point(1.05, 2), 0.1, true},
		{"beyond tolerance", point(1, 2), point(1.5, 2), 0.1, false},
		{"different types", point(1, 2), line(1, 2, 3, 4), 10, false},
		{"same square", unitSquare(), unitSquare(), 0, true},
		{
			"different layouts",
			point(1, 2),
			geom.NewPointFlat(geom.XYZ, []float64{1, 2, 0}),
			0, false,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := e.EqualsExact(test.a, test.b, test.tolerance)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}
