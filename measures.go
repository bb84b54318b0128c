package geomvec

import (
	geom "github.com/twpayne/go-geom"
)

// Area returns the planar area of each geometry, NaN for missing elements.
// Points and lines have zero area.
func (o *Ops) Area(data []Geometry) ([]float64, error) {
	return o.mapFloat(data, o.eng.Area)
}

// Length returns the planar length of each geometry, NaN for missing
// elements. For polygons this is the perimeter.
func (o *Ops) Length(data []Geometry) ([]float64, error) {
	return o.mapFloat(data, o.eng.Length)
}

// MinimumBoundingRadius returns the radius of each geometry's smallest
// enclosing circle, NaN for missing elements.
func (o *Ops) MinimumBoundingRadius(data []Geometry) ([]float64, error) {
	return o.mapFloat(data, o.eng.MinimumBoundingRadius)
}

// Distance returns the minimum planar distance between each pair. Missing
// or empty operands yield NaN, never zero.
func (o *Ops) Distance(left []Geometry, right any) ([]float64, error) {
	return o.evalFloat(left, right, true, o.eng.Distance)
}

// HausdorffDistance returns the discrete Hausdorff distance between each
// pair, NaN for missing or empty operands.
func (o *Ops) HausdorffDistance(left []Geometry, right any) ([]float64, error) {
	return o.evalFloat(left, right, true, o.eng.HausdorffDistance)
}

// Project locates each right-hand point along the left-hand line and
// returns the distance from the line's start, NaN for missing operands.
func (o *Ops) Project(left []Geometry, right any, normalized bool) ([]float64, error) {
	return o.evalFloat(left, right, false, func(a, b geom.T) (float64, error) {
		return o.eng.Project(a, b, normalized)
	})
}
