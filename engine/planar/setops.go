package planar

import (
	"errors"

	geom "github.com/twpayne/go-geom"
)

// Overlay of extended geometries needs a topology engine. The pure backend
// only unions point sets, which is deduplication.

func (e *Engine) Intersection(a, b geom.T) (geom.T, error) {
	return nil, unsupported("Intersection")
}

func (e *Engine) Union(a, b geom.T) (geom.T, error) {
	merged, err := e.UnionAll([]geom.T{a, b})
	if err != nil {
		return nil, unsupported("Union")
	}
	return merged, nil
}

func (e *Engine) Difference(a, b geom.T) (geom.T, error) {
	return nil, unsupported("Difference")
}

func (e *Engine) SymmetricDifference(a, b geom.T) (geom.T, error) {
	return nil, unsupported("SymmetricDifference")
}

func (e *Engine) UnionAll(gs []geom.T) (geom.T, error) {
	if len(gs) == 0 {
		return nil, errors.New("union of no geometries")
	}
	var p parts
	for _, g := range gs {
		if err := decompose(g, &p); err != nil {
			return nil, err
		}
	}
	if len(p.segments) > 0 || len(p.polygons) > 0 {
		return nil, unsupported("UnionAll for non-point geometries")
	}

	var unique []geom.Coord
	for _, c := range p.points {
		seen := false
		for _, u := range unique {
			if coordEqual(c, u) {
				seen = true
				break
			}
		}
		if !seen {
			unique = append(unique, c)
		}
	}
	if len(unique) == 1 {
		return geom.NewPointFlat(geom.XY, []float64{unique[0].X(), unique[0].Y()}), nil
	}
	flat := make([]float64, 0, 2*len(unique))
	for _, c := range unique {
		flat = append(flat, c.X(), c.Y())
	}
	return geom.NewMultiPointFlat(geom.XY, flat), nil
}
