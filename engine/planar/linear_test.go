package planar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"

	"github.com/topos-ai/geomvec-go/engine"
)

func TestInterpolate(t *testing.T) {
	e := New()
	path := line(0, 0, 10, 0, 10, 10)

	tests := []struct {
		name       string
		distance   float64
		normalized bool
		wantX      float64
		wantY      float64
	}{
		{"partway along first segment", 3, false, 3, 0},
		{"past the corner", 15, false, 10, 5},
		{"normalized midpoint", 0.5, true, 10, 0},
		{"negative measures from the end", -5, false, 10, 5},
		{"clamped below", -100, false, 0, 0},
		{"clamped above", 100, false, 10, 10},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := e.Interpolate(path, test.distance, test.normalized)
			require.NoError(t, err)
			p, ok := got.(*geom.Point)
			require.True(t, ok)
			assert.InDelta(t, test.wantX, p.X(), 1e-12)
			assert.InDelta(t, test.wantY, p.Y(), 1e-12)
		})
	}

	_, err := e.Interpolate(unitSquare(), 1, false)
	assert.True(t, engine.IsUnsupported(err))
}

func TestProject(t *testing.T) {
	e := New()
	path := line(0, 0, 10, 0, 10, 10)

	tests := []struct {
		name       string
		p          *geom.Point
		normalized bool
		want       float64
	}{
		{"above first segment", point(3, 5), false, 3},
		{"beside second segment", point(20, 4), false, 14},
		{"before the start", point(-5, 0), false, 0},
		{"normalized", point(10, 10), true, 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := e.Project(path, test.p, test.normalized)
			require.NoError(t, err)
			assert.InDelta(t, test.want, got, 1e-12)
		})
	}

	_, err := e.Project(unitSquare(), point(0, 0), false)
	assert.True(t, engine.IsUnsupported(err))

	_, err = e.Project(path, line(0, 0, 1, 1), false)
	assert.True(t, engine.IsUnsupported(err))
}

func TestProjectInterpolateRoundTrip(t *testing.T) {
	e := New()
	path := line(0, 0, 4, 3, 4, 8)

	d, err := e.Project(path, point(2, 1.5), false)
	require.NoError(t, err)

	got, err := e.Interpolate(path, d, false)
	require.NoError(t, err)
	p := got.(*geom.Point)
	assert.InDelta(t, 2, p.X(), 1e-12)
	assert.InDelta(t, 1.5, p.Y(), 1e-12)
}
