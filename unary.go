package geomvec

import (
	geom "github.com/twpayne/go-geom"
)

// Constructive operations. A missing element yields the missing marker; an
// empty geometry is forwarded to the engine, which returns the matching
// empty result.

func (o *Ops) Boundary(data []Geometry) ([]Geometry, error) {
	return o.mapGeom(data, o.eng.Boundary)
}

func (o *Ops) Centroid(data []Geometry) ([]Geometry, error) {
	return o.mapGeom(data, o.eng.Centroid)
}

func (o *Ops) ConvexHull(data []Geometry) ([]Geometry, error) {
	return o.mapGeom(data, o.eng.ConvexHull)
}

// ConcaveHull computes a concave hull of each geometry. ratio in [0, 1]
// interpolates between the maximally concave hull and the convex hull.
func (o *Ops) ConcaveHull(data []Geometry, ratio float64, allowHoles bool) ([]Geometry, error) {
	return o.mapGeom(data, func(g geom.T) (geom.T, error) {
		return o.eng.ConcaveHull(g, ratio, allowHoles)
	})
}

// DelaunayTriangles computes the Delaunay triangulation of each geometry's
// vertices, as a collection of triangles or, with onlyEdges, of edges.
func (o *Ops) DelaunayTriangles(data []Geometry, tolerance float64, onlyEdges bool) ([]Geometry, error) {
	return o.mapGeom(data, func(g geom.T) (geom.T, error) {
		return o.eng.DelaunayTriangles(g, tolerance, onlyEdges)
	})
}

func (o *Ops) Envelope(data []Geometry) ([]Geometry, error) {
	return o.mapGeom(data, o.eng.Envelope)
}

// ExtractUniquePoints returns each geometry's distinct vertices as a
// multipoint, in first-occurrence order.
func (o *Ops) ExtractUniquePoints(data []Geometry) ([]Geometry, error) {
	return o.mapGeom(data, o.eng.ExtractUniquePoints)
}

// MinimumBoundingCircle returns the smallest circle enclosing each
// geometry.
func (o *Ops) MinimumBoundingCircle(data []Geometry) ([]Geometry, error) {
	return o.mapGeom(data, o.eng.MinimumBoundingCircle)
}

// OffsetCurve returns a line offset from each input line by distance,
// on the left for positive distances and the right for negative ones.
// distance is a single float64 or a []float64 with one offset per element.
func (o *Ops) OffsetCurve(data []Geometry, distance any, quadSegs int, mitreLimit float64) ([]Geometry, error) {
	at, err := floatOperand(len(data), distance)
	if err != nil {
		return nil, err
	}
	out := make([]Geometry, len(data))
	for i, g := range data {
		if g.Missing() {
			continue
		}
		v, err := o.eng.OffsetCurve(g.Geom(), at(i), quadSegs, mitreLimit)
		if err != nil {
			return nil, err
		}
		out[i] = NewGeometry(v)
	}
	return out, nil
}

// RepresentativePoint returns a point guaranteed to lie on each geometry.
func (o *Ops) RepresentativePoint(data []Geometry) ([]Geometry, error) {
	return o.mapGeom(data, o.eng.PointOnSurface)
}

// Buffer dilates each geometry by width, which is a single float64 or a
// []float64 with one width per element. quadSegs controls the number of
// segments approximating a quarter circle.
func (o *Ops) Buffer(data []Geometry, width any, quadSegs int) ([]Geometry, error) {
	at, err := floatOperand(len(data), width)
	if err != nil {
		return nil, err
	}
	out := make([]Geometry, len(data))
	for i, g := range data {
		if g.Missing() {
			continue
		}
		v, err := o.eng.Buffer(g.Geom(), at(i), quadSegs)
		if err != nil {
			return nil, err
		}
		out[i] = NewGeometry(v)
	}
	return out, nil
}

func (o *Ops) Simplify(data []Geometry, tolerance float64, preserveTopology bool) ([]Geometry, error) {
	return o.mapGeom(data, func(g geom.T) (geom.T, error) {
		return o.eng.Simplify(g, tolerance, preserveTopology)
	})
}

func (o *Ops) MakeValid(data []Geometry) ([]Geometry, error) {
	return o.mapGeom(data, o.eng.MakeValid)
}

func (o *Ops) Normalize(data []Geometry) ([]Geometry, error) {
	return o.mapGeom(data, o.eng.Normalize)
}

func (o *Ops) ClipByRect(data []Geometry, xMin, yMin, xMax, yMax float64) ([]Geometry, error) {
	return o.mapGeom(data, func(g geom.T) (geom.T, error) {
		return o.eng.ClipByRect(g, xMin, yMin, xMax, yMax)
	})
}

// Segmentize subdivides edges so that no segment exceeds maxSegmentLength.
func (o *Ops) Segmentize(data []Geometry, maxSegmentLength float64) ([]Geometry, error) {
	return o.mapGeom(data, func(g geom.T) (geom.T, error) {
		return o.eng.Segmentize(g, maxSegmentLength)
	})
}

// Interpolate returns the point at the given distance along each line.
// distance is a single float64 or a []float64 with one distance per
// element; with normalized set it is a fraction of each line's length.
func (o *Ops) Interpolate(data []Geometry, distance any, normalized bool) ([]Geometry, error) {
	at, err := floatOperand(len(data), distance)
	if err != nil {
		return nil, err
	}
	out := make([]Geometry, len(data))
	for i, g := range data {
		if g.Missing() {
			continue
		}
		v, err := o.eng.Interpolate(g.Geom(), at(i), normalized)
		if err != nil {
			return nil, err
		}
		out[i] = NewGeometry(v)
	}
	return out, nil
}
