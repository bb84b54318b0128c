package planar

import (
	"math"

	geom "github.com/twpayne/go-geom"
)

// ringArea is the signed shoelace area of a closed ring.
func ringArea(ring []geom.Coord) float64 {
	var sum float64
	n := len(ring)
	if n < 3 {
		return 0
	}
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		sum += ring[j].X()*ring[i].Y() - ring[i].X()*ring[j].Y()
	}
	return sum / 2
}

func polygonArea(poly *geom.Polygon) float64 {
	rings := poly.Coords()
	if len(rings) == 0 {
		return 0
	}
	area := math.Abs(ringArea(rings[0]))
	for _, hole := range rings[1:] {
		area -= math.Abs(ringArea(hole))
	}
	return area
}

func (e *Engine) Area(g geom.T) (float64, error) {
	var p parts
	if err := decompose(g, &p); err != nil {
		return 0, err
	}
	var area float64
	for _, poly := range p.polygons {
		area += polygonArea(poly)
	}
	return area, nil
}

func (e *Engine) Length(g geom.T) (float64, error) {
	var p parts
	if err := decompose(g, &p); err != nil {
		return 0, err
	}
	var length float64
	for _, s := range p.segments {
		length += coordDistance(s[0], s[1])
	}
	return length, nil
}

func (e *Engine) Distance(a, b geom.T) (float64, error) {
	intersects, err := e.Intersects(a, b)
	if err != nil {
		return 0, err
	}
	if intersects {
		return 0, nil
	}

	var pa, pb parts
	if err := decompose(a, &pa); err != nil {
		return 0, err
	}
	if err := decompose(b, &pb); err != nil {
		return 0, err
	}

	min := math.Inf(1)
	update := func(d float64) {
		if d < min {
			min = d
		}
	}
	for _, v := range pa.vertices() {
		for _, s := range pb.segments {
			update(pointSegmentDistance(v, s[0], s[1]))
		}
		for _, pt := range pb.points {
			update(coordDistance(v, pt))
		}
	}
	for _, v := range pb.vertices() {
		for _, s := range pa.segments {
			update(pointSegmentDistance(v, s[0], s[1]))
		}
		for _, pt := range pa.points {
			update(coordDistance(v, pt))
		}
	}
	return min, nil
}

func (e *Engine) HausdorffDistance(a, b geom.T) (float64, error) {
	return 0, unsupported("HausdorffDistance")
}
