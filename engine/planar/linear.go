package planar

import (
	geom "github.com/twpayne/go-geom"
)

// Linear referencing is defined for LineStrings only, matching the
// underlying GEOS operations.

func (e *Engine) Interpolate(g geom.T, distance float64, normalized bool) (geom.T, error) {
	line, ok := g.(*geom.LineString)
	if !ok {
		return nil, unsupported("Interpolate for non-LineString geometries")
	}
	coords := line.Coords()
	if len(coords) == 0 {
		return geom.NewPointEmpty(geom.XY), nil
	}

	total, err := e.Length(line)
	if err != nil {
		return nil, err
	}
	if normalized {
		distance *= total
	}
	// A negative distance measures from the far end.
	if distance < 0 {
		distance = total + distance
	}
	if distance <= 0 {
		return coordPoint(coords[0]), nil
	}
	if distance >= total {
		return coordPoint(coords[len(coords)-1]), nil
	}

	walked := 0.0
	for i := 1; i < len(coords); i++ {
		d := coordDistance(coords[i-1], coords[i])
		if walked+d >= distance {
			t := (distance - walked) / d
			return geom.NewPointFlat(geom.XY, []float64{
				coords[i-1].X() + t*(coords[i].X()-coords[i-1].X()),
				coords[i-1].Y() + t*(coords[i].Y()-coords[i-1].Y()),
			}), nil
		}
		walked += d
	}
	return coordPoint(coords[len(coords)-1]), nil
}

func (e *Engine) Project(g geom.T, p geom.T, normalized bool) (float64, error) {
	line, ok := g.(*geom.LineString)
	if !ok {
		return 0, unsupported("Project for non-LineString geometries")
	}
	point, ok := p.(*geom.Point)
	if !ok {
		return 0, unsupported("Project of non-Point geometries")
	}
	coords := line.Coords()
	if len(coords) < 2 {
		return 0, nil
	}
	pt := point.Coords()

	best := 0.0
	bestDistance := -1.0
	walked := 0.0
	for i := 1; i < len(coords); i++ {
		a, b := coords[i-1], coords[i]
		d := pointSegmentDistance(pt, a, b)
		if bestDistance < 0 || d < bestDistance {
			bestDistance = d
			best = walked + segmentOffset(pt, a, b)
		}
		walked += coordDistance(a, b)
	}
	if normalized && walked > 0 {
		return best / walked, nil
	}
	return best, nil
}

// segmentOffset is the arc length along ab of the point on ab nearest pt.
func segmentOffset(pt, a, b geom.Coord) float64 {
	dx := b.X() - a.X()
	dy := b.Y() - a.Y()
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return 0
	}
	t := ((pt.X()-a.X())*dx + (pt.Y()-a.Y())*dy) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * coordDistance(a, b)
}

func coordPoint(c geom.Coord) *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{c.X(), c.Y()})
}
