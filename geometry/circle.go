package geometry

import (
	"math"

	geom "github.com/twpayne/go-geom"
)

// The enclosing circle is a property of the vertex set: the smallest
// circle around a geometry is the smallest circle around its vertices, so
// no topology engine is involved.

const circleSegments = 32

// BoundingCircle returns the smallest circle enclosing every vertex of the
// geometry, as a polygon with 32 edge segments. A zero-radius input yields
// the single vertex as a point; an empty input yields an empty polygon.
func BoundingCircle(geometryObject geom.T) (geom.T, error) {
	vertices := collectVertices(geometryObject)
	if len(vertices) == 0 {
		return geom.NewPolygon(geom.XY), nil
	}
	center, radius := minimumCircle(vertices)
	if radius == 0 {
		return geom.NewPointFlat(geom.XY, []float64{center.X(), center.Y()}), nil
	}

	flat := make([]float64, 0, 2*(circleSegments+1))
	for k := 0; k <= circleSegments; k++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(k%circleSegments) / circleSegments)
		flat = append(flat, center.X()+radius*cos, center.Y()+radius*sin)
	}
	return geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)}), nil
}

// BoundingRadius returns the radius of the smallest enclosing circle, 0
// for empty input.
func BoundingRadius(geometryObject geom.T) (float64, error) {
	vertices := collectVertices(geometryObject)
	if len(vertices) == 0 {
		return 0, nil
	}
	_, radius := minimumCircle(vertices)
	return radius, nil
}

func collectVertices(g geom.T) []geom.Coord {
	if gc, ok := g.(*geom.GeometryCollection); ok {
		var out []geom.Coord
		for _, sub := range gc.Geoms() {
			out = append(out, collectVertices(sub)...)
		}
		return out
	}
	flat := g.FlatCoords()
	stride := g.Stride()
	if stride == 0 {
		return nil
	}
	out := make([]geom.Coord, 0, len(flat)/stride)
	for i := 0; i+1 < len(flat); i += stride {
		out = append(out, geom.Coord{flat[i], flat[i+1]})
	}
	return out
}

// minimumCircle is the incremental exact algorithm: grow the circle one
// outside vertex at a time, fixing that vertex on the circle boundary.
func minimumCircle(vertices []geom.Coord) (geom.Coord, float64) {
	center, radius := vertices[0], 0.0
	for i, p := range vertices[1:] {
		if circleContains(center, radius, p) {
			continue
		}
		center, radius = p, 0
		for j, q := range vertices[:i+1] {
			if circleContains(center, radius, q) {
				continue
			}
			center, radius = diameterCircle(p, q)
			for _, r := range vertices[:j] {
				if !circleContains(center, radius, r) {
					center, radius = circumscribedCircle(p, q, r)
				}
			}
		}
	}
	return center, radius
}

func circleContains(center geom.Coord, radius float64, p geom.Coord) bool {
	return math.Hypot(p.X()-center.X(), p.Y()-center.Y()) <= radius*(1+1e-12)+1e-12
}

func diameterCircle(a, b geom.Coord) (geom.Coord, float64) {
	center := geom.Coord{(a.X() + b.X()) / 2, (a.Y() + b.Y()) / 2}
	return center, math.Hypot(b.X()-a.X(), b.Y()-a.Y()) / 2
}

func circumscribedCircle(a, b, c geom.Coord) (geom.Coord, float64) {
	d := 2 * (a.X()*(b.Y()-c.Y()) + b.X()*(c.Y()-a.Y()) + c.X()*(a.Y()-b.Y()))
	if d == 0 {
		// Collinear: the widest pair's diameter covers all three.
		return widestPairCircle(a, b, c)
	}
	aa := a.X()*a.X() + a.Y()*a.Y()
	bb := b.X()*b.X() + b.Y()*b.Y()
	cc := c.X()*c.X() + c.Y()*c.Y()
	center := geom.Coord{
		(aa*(b.Y()-c.Y()) + bb*(c.Y()-a.Y()) + cc*(a.Y()-b.Y())) / d,
		(aa*(c.X()-b.X()) + bb*(a.X()-c.X()) + cc*(b.X()-a.X())) / d,
	}
	return center, math.Hypot(a.X()-center.X(), a.Y()-center.Y())
}

func widestPairCircle(a, b, c geom.Coord) (geom.Coord, float64) {
	center, radius := diameterCircle(a, b)
	if cc, rr := diameterCircle(a, c); rr > radius {
		center, radius = cc, rr
	}
	if cc, rr := diameterCircle(b, c); rr > radius {
		center, radius = cc, rr
	}
	return center, radius
}
