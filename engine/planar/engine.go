// Package planar is a partial pure Go backend. It covers the structural and
// point-wise operations that can be evaluated honestly without a topology
// engine: intersection tests built from segment intersection and
// point-in-polygon, containment of point-like operands, planar
// measurements, linear referencing and structural validity. Polygon
// overlay, buffering, hulls and DE-9IM relate require GEOS and return an
// unsupported-operation error.
package planar

import (
	"fmt"

	geom "github.com/twpayne/go-geom"

	"github.com/topos-ai/geomvec-go/engine"
)

const name = "planar"

type Engine struct{}

func New() *Engine {
	return &Engine{}
}

func (e *Engine) Name() string {
	return name
}

func unsupported(op string) error {
	return engine.Unsupported(name, op)
}

func errUnknownType(g geom.T) error {
	return fmt.Errorf("unknown geometry type %T", g)
}

func boundsOverlap(a, b geom.T) bool {
	ab, bb := a.Bounds(), b.Bounds()
	return ab.Min(0) <= bb.Max(0) && bb.Min(0) <= ab.Max(0) &&
		ab.Min(1) <= bb.Max(1) && bb.Min(1) <= ab.Max(1)
}

func (e *Engine) Intersects(a, b geom.T) (bool, error) {
	if a.Empty() || b.Empty() || !boundsOverlap(a, b) {
		return false, nil
	}

	var pa, pb parts
	if err := decompose(a, &pa); err != nil {
		return false, err
	}
	if err := decompose(b, &pb); err != nil {
		return false, err
	}

	// Any edge pair crossing covers line/line, line/ring and ring/ring
	// contact.
	for _, sa := range pa.segments {
		for _, sb := range pb.segments {
			if segmentsIntersect(sa[0], sa[1], sb[0], sb[1]) {
				return true, nil
			}
		}
	}

	// Remaining cases are containment: a vertex of one side inside or on
	// the other side's primitives.
	if verticesTouch(pa.vertices(), &pb) || verticesTouch(pb.vertices(), &pa) {
		return true, nil
	}
	return false, nil
}

func verticesTouch(vertices []geom.Coord, other *parts) bool {
	for _, v := range vertices {
		for _, p := range other.points {
			if coordEqual(v, p) {
				return true
			}
		}
		for _, s := range other.segments {
			if pointOnSegment(v, s[0], s[1]) {
				return true
			}
		}
		for _, poly := range other.polygons {
			interior, boundary := pointInPolygon(v, poly)
			if interior || boundary {
				return true
			}
		}
	}
	return false
}

func (e *Engine) Disjoint(a, b geom.T) (bool, error) {
	intersects, err := e.Intersects(a, b)
	if err != nil {
		return false, err
	}
	return !intersects, nil
}

func (e *Engine) Touches(a, b geom.T) (bool, error) {
	return false, unsupported("Touches")
}

func (e *Engine) Crosses(a, b geom.T) (bool, error) {
	return false, unsupported("Crosses")
}

func (e *Engine) Overlaps(a, b geom.T) (bool, error) {
	return false, unsupported("Overlaps")
}

// coverage classifies how a single coordinate relates to a geometry.
type coverage int

const (
	outside coverage = iota
	onBoundary
	inInterior
)

func classify(pt geom.Coord, p *parts, boundaryPoints []geom.Coord) coverage {
	for _, poly := range p.polygons {
		interior, boundary := pointInPolygon(pt, poly)
		if interior {
			return inInterior
		}
		if boundary {
			return onBoundary
		}
	}
	for _, s := range p.segments {
		if pointOnSegment(pt, s[0], s[1]) {
			for _, bp := range boundaryPoints {
				if coordEqual(pt, bp) {
					return onBoundary
				}
			}
			return inInterior
		}
	}
	for _, c := range p.points {
		if coordEqual(pt, c) {
			return inInterior
		}
	}
	return outside
}

// containsPointwise evaluates containment of a point-like operand b within
// a. Containment of extended operands needs an overlay engine.
func (e *Engine) containsPointwise(op string, a, b geom.T, allowBoundary bool) (bool, error) {
	if a.Empty() || b.Empty() {
		return false, nil
	}

	var pa, pb parts
	if err := decompose(a, &pa); err != nil {
		return false, err
	}
	if err := decompose(b, &pb); err != nil {
		return false, err
	}
	if !pb.pointish() {
		return false, unsupported(op + " with a non-point right-hand operand")
	}

	boundaryPoints, err := lineBoundaryPoints(a)
	if err != nil {
		return false, err
	}

	anyInterior := false
	for _, pt := range pb.points {
		switch classify(pt, &pa, boundaryPoints) {
		case outside:
			return false, nil
		case onBoundary:
			if !allowBoundary {
				return false, nil
			}
		case inInterior:
			anyInterior = true
		}
	}
	if allowBoundary {
		return true, nil
	}
	return anyInterior, nil
}

func (e *Engine) Contains(a, b geom.T) (bool, error) {
	return e.containsPointwise("Contains", a, b, false)
}

func (e *Engine) Within(a, b geom.T) (bool, error) {
	return e.containsPointwise("Within", b, a, false)
}

func (e *Engine) Covers(a, b geom.T) (bool, error) {
	return e.containsPointwise("Covers", a, b, true)
}

func (e *Engine) CoveredBy(a, b geom.T) (bool, error) {
	return e.containsPointwise("CoveredBy", b, a, true)
}

func (e *Engine) Equals(a, b geom.T) (bool, error) {
	var pa, pb parts
	if err := decompose(a, &pa); err != nil {
		return false, err
	}
	if err := decompose(b, &pb); err != nil {
		return false, err
	}
	if !pa.pointish() || !pb.pointish() {
		return false, unsupported("Equals with non-point operands")
	}
	return coordSetEqual(pa.points, pb.points) && coordSetEqual(pb.points, pa.points), nil
}

func coordSetEqual(as, bs []geom.Coord) bool {
	for _, a := range as {
		found := false
		for _, b := range bs {
			if coordEqual(a, b) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (e *Engine) Relate(a, b geom.T) (string, error) {
	return "", unsupported("Relate")
}
