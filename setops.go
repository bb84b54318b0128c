package geomvec

import (
	"log/slog"

	geom "github.com/twpayne/go-geom"
)

// Set operations. A missing operand at any position yields the missing
// marker at that position.

func (o *Ops) Intersection(left []Geometry, right any) ([]Geometry, error) {
	return o.evalGeom(left, right, o.eng.Intersection)
}

func (o *Ops) Union(left []Geometry, right any) ([]Geometry, error) {
	return o.evalGeom(left, right, o.eng.Union)
}

func (o *Ops) Difference(left []Geometry, right any) ([]Geometry, error) {
	return o.evalGeom(left, right, o.eng.Difference)
}

func (o *Ops) SymmetricDifference(left []Geometry, right any) ([]Geometry, error) {
	return o.evalGeom(left, right, o.eng.SymmetricDifference)
}

// UnionAll reduces the sequence to a single union. Missing elements are
// ignored; when every element is missing, or the sequence is empty, the
// result is the missing marker.
func (o *Ops) UnionAll(data []Geometry) (Geometry, error) {
	geoms := make([]geom.T, 0, len(data))
	for _, g := range data {
		if !g.Missing() {
			geoms = append(geoms, g.Geom())
		}
	}
	if len(geoms) == 0 {
		slog.Warn("UnionAll of an all-missing sequence returns the missing marker")
		return None, nil
	}
	merged, err := o.eng.UnionAll(geoms)
	if err != nil {
		return None, err
	}
	return NewGeometry(merged), nil
}
