package geomvec

import (
	"math"

	geom "github.com/twpayne/go-geom"
)

// Binary predicates. A missing operand at any position yields false at
// that position.

func (o *Ops) Intersects(left []Geometry, right any) ([]bool, error) {
	return o.evalBool(left, right, o.eng.Intersects)
}

func (o *Ops) Disjoint(left []Geometry, right any) ([]bool, error) {
	return o.evalBool(left, right, o.eng.Disjoint)
}

func (o *Ops) Touches(left []Geometry, right any) ([]bool, error) {
	return o.evalBool(left, right, o.eng.Touches)
}

func (o *Ops) Crosses(left []Geometry, right any) ([]bool, error) {
	return o.evalBool(left, right, o.eng.Crosses)
}

func (o *Ops) Within(left []Geometry, right any) ([]bool, error) {
	return o.evalBool(left, right, o.eng.Within)
}

func (o *Ops) Contains(left []Geometry, right any) ([]bool, error) {
	return o.evalBool(left, right, o.eng.Contains)
}

func (o *Ops) Overlaps(left []Geometry, right any) ([]bool, error) {
	return o.evalBool(left, right, o.eng.Overlaps)
}

func (o *Ops) Covers(left []Geometry, right any) ([]bool, error) {
	return o.evalBool(left, right, o.eng.Covers)
}

func (o *Ops) CoveredBy(left []Geometry, right any) ([]bool, error) {
	return o.evalBool(left, right, o.eng.CoveredBy)
}

func (o *Ops) Equals(left []Geometry, right any) ([]bool, error) {
	return o.evalBool(left, right, o.eng.Equals)
}

func (o *Ops) EqualsExact(left []Geometry, right any, tolerance float64) ([]bool, error) {
	return o.evalBool(left, right, func(a, b geom.T) (bool, error) {
		return o.eng.EqualsExact(a, b, tolerance)
	})
}

// EqualsAlmost compares coordinates to the given number of decimal places.
func (o *Ops) EqualsAlmost(left []Geometry, right any, decimal int) ([]bool, error) {
	return o.EqualsExact(left, right, 0.5*math.Pow(10, -float64(decimal)))
}

// Relate returns the DE-9IM pattern for each pair, the empty string where
// an operand is missing.
func (o *Ops) Relate(left []Geometry, right any) ([]string, error) {
	return o.evalString(left, right, o.eng.Relate)
}

// Unary predicates.

func (o *Ops) IsValid(data []Geometry) ([]bool, error) {
	return o.mapBool(data, o.eng.IsValid)
}

// IsValidReason reports why each geometry is invalid, the empty string for
// missing elements.
func (o *Ops) IsValidReason(data []Geometry) ([]string, error) {
	return o.mapString(data, o.eng.IsValidReason)
}

func (o *Ops) IsSimple(data []Geometry) ([]bool, error) {
	return o.mapBool(data, o.eng.IsSimple)
}

// IsRing reports whether each geometry is a closed simple line. For
// polygons the test applies to the exterior ring.
func (o *Ops) IsRing(data []Geometry) ([]bool, error) {
	return o.mapBool(data, func(g geom.T) (bool, error) {
		if poly, ok := g.(*geom.Polygon); ok {
			if poly.NumLinearRings() == 0 {
				return false, nil
			}
			ring := poly.LinearRing(0)
			return o.eng.IsRing(geom.NewLineStringFlat(ring.Layout(), ring.FlatCoords()))
		}
		return o.eng.IsRing(g)
	})
}
