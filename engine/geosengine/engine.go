// Package geosengine implements the engine interface on top of the GEOS
// library via github.com/twpayne/go-geos. This is the full-capability
// backend; topological operations delegate to GEOS, and purely structural
// ones share the geometry package's vertex-level implementations.
package geosengine

import (
	"errors"

	geom "github.com/twpayne/go-geom"
	geos "github.com/twpayne/go-geos"

	"github.com/topos-ai/geomvec-go/geometry"
)

const name = "geos"

// Engine is the GEOS-backed engine. The zero value is not usable; call New.
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

func (e *Engine) Name() string {
	return name
}

func (e *Engine) Intersects(a, b geom.T) (bool, error) {
	return call2(a, b, func(ga, gb *geos.Geom) bool { return ga.Intersects(gb) })
}

func (e *Engine) Disjoint(a, b geom.T) (bool, error) {
	return call2(a, b, func(ga, gb *geos.Geom) bool { return ga.Disjoint(gb) })
}

func (e *Engine) Touches(a, b geom.T) (bool, error) {
	return call2(a, b, func(ga, gb *geos.Geom) bool { return ga.Touches(gb) })
}

func (e *Engine) Crosses(a, b geom.T) (bool, error) {
	return call2(a, b, func(ga, gb *geos.Geom) bool { return ga.Crosses(gb) })
}

func (e *Engine) Within(a, b geom.T) (bool, error) {
	return call2(a, b, func(ga, gb *geos.Geom) bool { return ga.Within(gb) })
}

func (e *Engine) Contains(a, b geom.T) (bool, error) {
	return call2(a, b, func(ga, gb *geos.Geom) bool { return ga.Contains(gb) })
}

func (e *Engine) Overlaps(a, b geom.T) (bool, error) {
	return call2(a, b, func(ga, gb *geos.Geom) bool { return ga.Overlaps(gb) })
}

func (e *Engine) Covers(a, b geom.T) (bool, error) {
	return call2(a, b, func(ga, gb *geos.Geom) bool { return ga.Covers(gb) })
}

func (e *Engine) CoveredBy(a, b geom.T) (bool, error) {
	return call2(a, b, func(ga, gb *geos.Geom) bool { return ga.CoveredBy(gb) })
}

func (e *Engine) Equals(a, b geom.T) (bool, error) {
	return call2(a, b, func(ga, gb *geos.Geom) bool { return ga.Equals(gb) })
}

func (e *Engine) EqualsExact(a, b geom.T, tolerance float64) (bool, error) {
	return call2(a, b, func(ga, gb *geos.Geom) bool { return ga.EqualsExact(gb, tolerance) })
}

func (e *Engine) Relate(a, b geom.T) (string, error) {
	return call2(a, b, func(ga, gb *geos.Geom) string { return ga.Relate(gb) })
}

func (e *Engine) IsValid(g geom.T) (bool, error) {
	return call(g, func(gg *geos.Geom) bool { return gg.IsValid() })
}

func (e *Engine) IsValidReason(g geom.T) (string, error) {
	return call(g, func(gg *geos.Geom) string { return gg.IsValidReason() })
}

func (e *Engine) IsSimple(g geom.T) (bool, error) {
	return call(g, func(gg *geos.Geom) bool { return gg.IsSimple() })
}

func (e *Engine) IsRing(g geom.T) (bool, error) {
	return call(g, func(gg *geos.Geom) bool { return gg.IsRing() })
}

func (e *Engine) Intersection(a, b geom.T) (geom.T, error) {
	return callGeom2(a, b, func(ga, gb *geos.Geom) *geos.Geom { return ga.Intersection(gb) })
}

func (e *Engine) Union(a, b geom.T) (geom.T, error) {
	return callGeom2(a, b, func(ga, gb *geos.Geom) *geos.Geom { return ga.Union(gb) })
}

func (e *Engine) Difference(a, b geom.T) (geom.T, error) {
	return callGeom2(a, b, func(ga, gb *geos.Geom) *geos.Geom { return ga.Difference(gb) })
}

func (e *Engine) SymmetricDifference(a, b geom.T) (geom.T, error) {
	return callGeom2(a, b, func(ga, gb *geos.Geom) *geos.Geom { return ga.SymDifference(gb) })
}

// UnionAll unions pairwise, halving the input each round. Unioning in
// balanced halves keeps intermediate results small compared to a linear
// fold.
func (e *Engine) UnionAll(gs []geom.T) (geom.T, error) {
	if len(gs) == 0 {
		return nil, errors.New("union of no geometries")
	}
	if len(gs) == 1 {
		return gs[0], nil
	}
	mid := len(gs) / 2
	left, err := e.UnionAll(gs[:mid])
	if err != nil {
		return nil, err
	}
	right, err := e.UnionAll(gs[mid:])
	if err != nil {
		return nil, err
	}
	return e.Union(left, right)
}

func (e *Engine) Boundary(g geom.T) (geom.T, error) {
	return callGeom(g, func(gg *geos.Geom) *geos.Geom { return gg.Boundary() })
}

func (e *Engine) Centroid(g geom.T) (geom.T, error) {
	return callGeom(g, func(gg *geos.Geom) *geos.Geom { return gg.Centroid() })
}

func (e *Engine) ConvexHull(g geom.T) (geom.T, error) {
	return callGeom(g, func(gg *geos.Geom) *geos.Geom { return gg.ConvexHull() })
}

func (e *Engine) ConcaveHull(g geom.T, ratio float64, allowHoles bool) (geom.T, error) {
	holes := uint(0)
	if allowHoles {
		holes = 1
	}
	return callGeom(g, func(gg *geos.Geom) *geos.Geom { return gg.ConcaveHull(ratio, holes) })
}

func (e *Engine) DelaunayTriangles(g geom.T, tolerance float64, onlyEdges bool) (geom.T, error) {
	return callGeom(g, func(gg *geos.Geom) *geos.Geom { return gg.DelaunayTriangulation(tolerance, onlyEdges) })
}

func (e *Engine) Envelope(g geom.T) (geom.T, error) {
	return callGeom(g, func(gg *geos.Geom) *geos.Geom { return gg.Envelope() })
}

func (e *Engine) ExtractUniquePoints(g geom.T) (geom.T, error) {
	return geometry.UniquePoints(g)
}

func (e *Engine) MinimumBoundingCircle(g geom.T) (geom.T, error) {
	return geometry.BoundingCircle(g)
}

func (e *Engine) OffsetCurve(g geom.T, distance float64, quadSegs int, mitreLimit float64) (geom.T, error) {
	return callGeom(g, func(gg *geos.Geom) *geos.Geom {
		return gg.OffsetCurve(distance, quadSegs, 1, mitreLimit)
	})
}

func (e *Engine) PointOnSurface(g geom.T) (geom.T, error) {
	return callGeom(g, func(gg *geos.Geom) *geos.Geom { return gg.PointOnSurface() })
}

func (e *Engine) Buffer(g geom.T, width float64, quadSegs int) (geom.T, error) {
	return callGeom(g, func(gg *geos.Geom) *geos.Geom { return gg.Buffer(width, quadSegs) })
}

func (e *Engine) Simplify(g geom.T, tolerance float64, preserveTopology bool) (geom.T, error) {
	return callGeom(g, func(gg *geos.Geom) *geos.Geom {
		if preserveTopology {
			return gg.TopologyPreserveSimplify(tolerance)
		}
		return gg.Simplify(tolerance)
	})
}

func (e *Engine) MakeValid(g geom.T) (geom.T, error) {
	return callGeom(g, func(gg *geos.Geom) *geos.Geom { return gg.MakeValid() })
}

func (e *Engine) Normalize(g geom.T) (geom.T, error) {
	return callGeom(g, func(gg *geos.Geom) *geos.Geom { return gg.Clone().Normalize() })
}

func (e *Engine) ClipByRect(g geom.T, xMin, yMin, xMax, yMax float64) (geom.T, error) {
	return callGeom(g, func(gg *geos.Geom) *geos.Geom { return gg.ClipByRect(xMin, yMin, xMax, yMax) })
}

func (e *Engine) Segmentize(g geom.T, maxSegmentLength float64) (geom.T, error) {
	return callGeom(g, func(gg *geos.Geom) *geos.Geom { return gg.Densify(maxSegmentLength) })
}

func (e *Engine) Area(g geom.T) (float64, error) {
	return call(g, func(gg *geos.Geom) float64 { return gg.Area() })
}

func (e *Engine) Length(g geom.T) (float64, error) {
	return call(g, func(gg *geos.Geom) float64 { return gg.Length() })
}

func (e *Engine) Distance(a, b geom.T) (float64, error) {
	return call2(a, b, func(ga, gb *geos.Geom) float64 { return ga.Distance(gb) })
}

func (e *Engine) HausdorffDistance(a, b geom.T) (float64, error) {
	return call2(a, b, func(ga, gb *geos.Geom) float64 { return ga.HausdorffDistance(gb) })
}

func (e *Engine) MinimumBoundingRadius(g geom.T) (float64, error) {
	return geometry.BoundingRadius(g)
}

func (e *Engine) Interpolate(g geom.T, distance float64, normalized bool) (geom.T, error) {
	return callGeom(g, func(gg *geos.Geom) *geos.Geom {
		if normalized {
			return gg.InterpolateNormalized(distance)
		}
		return gg.Interpolate(distance)
	})
}

func (e *Engine) Project(g geom.T, p geom.T, normalized bool) (float64, error) {
	return call2(g, p, func(gg, gp *geos.Geom) float64 {
		if normalized {
			return gg.ProjectNormalized(gp)
		}
		return gg.Project(gp)
	})
}
