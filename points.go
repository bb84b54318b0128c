package geomvec

import (
	geom "github.com/twpayne/go-geom"
)

// PointsFromXY constructs a point sequence from coordinate arrays.
func PointsFromXY(x, y []float64) ([]Geometry, error) {
	if len(x) != len(y) {
		return nil, &LengthMismatchError{Left: len(x), Right: len(y)}
	}
	out := make([]Geometry, len(x))
	for i := range x {
		out[i] = NewGeometry(geom.NewPointFlat(geom.XY, []float64{x[i], y[i]}))
	}
	return out, nil
}

// PointsFromXYZ constructs a point sequence with elevations.
func PointsFromXYZ(x, y, z []float64) ([]Geometry, error) {
	if len(x) != len(y) {
		return nil, &LengthMismatchError{Left: len(x), Right: len(y)}
	}
	if len(z) != len(x) {
		return nil, &LengthMismatchError{Left: len(x), Right: len(z)}
	}
	out := make([]Geometry, len(x))
	for i := range x {
		out[i] = NewGeometry(geom.NewPointFlat(geom.XYZ, []float64{x[i], y[i], z[i]}))
	}
	return out, nil
}
