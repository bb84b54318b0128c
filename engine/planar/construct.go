package planar

import (
	"errors"
	"math"

	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"

	"github.com/topos-ai/geomvec-go/geometry"
)

var errSegmentLength = errors.New("maximum segment length must be positive")

func (e *Engine) Envelope(g geom.T) (geom.T, error) {
	if g.Empty() {
		return geom.NewGeometryCollection(), nil
	}
	b := g.Bounds()
	xMin, yMin, xMax, yMax := b.Min(0), b.Min(1), b.Max(0), b.Max(1)
	if xMin == xMax && yMin == yMax {
		return geom.NewPointFlat(geom.XY, []float64{xMin, yMin}), nil
	}
	if xMin == xMax || yMin == yMax {
		return geom.NewLineStringFlat(geom.XY, []float64{xMin, yMin, xMax, yMax}), nil
	}
	return geom.NewPolygonFlat(geom.XY, []float64{
		xMin, yMin,
		xMax, yMin,
		xMax, yMax,
		xMin, yMax,
		xMin, yMin,
	}, []int{10}), nil
}

// lineBoundaryPoints returns the topological boundary of the line
// components of g: endpoints that occur an odd number of times. Closed
// lines contribute nothing.
func lineBoundaryPoints(g geom.T) ([]geom.Coord, error) {
	var endpoints []geom.Coord
	var collect func(g geom.T) error
	collect = func(g geom.T) error {
		switch g := g.(type) {
		case *geom.Point, *geom.MultiPoint, *geom.Polygon, *geom.MultiPolygon, *geom.LinearRing:
		case *geom.LineString:
			coords := g.Coords()
			if len(coords) >= 2 && !coordEqual(coords[0], coords[len(coords)-1]) {
				endpoints = append(endpoints, coords[0], coords[len(coords)-1])
			}
		case *geom.MultiLineString:
			for i := 0; i < g.NumLineStrings(); i++ {
				if err := collect(g.LineString(i)); err != nil {
					return err
				}
			}
		case *geom.GeometryCollection:
			for _, sub := range g.Geoms() {
				if err := collect(sub); err != nil {
					return err
				}
			}
		default:
			return errUnknownType(g)
		}
		return nil
	}
	if err := collect(g); err != nil {
		return nil, err
	}

	// mod-2 rule: shared endpoints of two line components are interior.
	var out []geom.Coord
	for i, c := range endpoints {
		count := 0
		first := true
		for j, other := range endpoints {
			if coordEqual(c, other) {
				count++
				if j < i {
					first = false
				}
			}
		}
		if first && count%2 == 1 {
			out = append(out, c)
		}
	}
	return out, nil
}

func (e *Engine) Boundary(g geom.T) (geom.T, error) {
	switch g := g.(type) {
	case *geom.Point, *geom.MultiPoint:
		return geom.NewGeometryCollection(), nil
	case *geom.LineString, *geom.MultiLineString:
		points, err := lineBoundaryPoints(g)
		if err != nil {
			return nil, err
		}
		flat := make([]float64, 0, 2*len(points))
		for _, c := range points {
			flat = append(flat, c.X(), c.Y())
		}
		return geom.NewMultiPointFlat(geom.XY, flat), nil
	case *geom.LinearRing:
		return geom.NewMultiPointFlat(geom.XY, nil), nil
	case *geom.Polygon:
		if g.NumLinearRings() == 1 {
			ring := g.LinearRing(0)
			return geom.NewLineStringFlat(ring.Layout(), ring.FlatCoords()), nil
		}
		return polygonRings(geom.NewMultiLineString(g.Layout()), g)
	case *geom.MultiPolygon:
		mls := geom.NewMultiLineString(g.Layout())
		for i := 0; i < g.NumPolygons(); i++ {
			if _, err := polygonRings(mls, g.Polygon(i)); err != nil {
				return nil, err
			}
		}
		return mls, nil
	case *geom.GeometryCollection:
		return nil, unsupported("Boundary for geometry collections")
	default:
		return nil, errUnknownType(g)
	}
}

func polygonRings(mls *geom.MultiLineString, poly *geom.Polygon) (geom.T, error) {
	for i := 0; i < poly.NumLinearRings(); i++ {
		ring := poly.LinearRing(i)
		if err := mls.Push(geom.NewLineStringFlat(ring.Layout(), ring.FlatCoords())); err != nil {
			return nil, err
		}
	}
	return mls, nil
}

// Centroid follows the usual dimension rule: areal components dominate
// linear ones, which dominate points.
func (e *Engine) Centroid(g geom.T) (geom.T, error) {
	polygons, lines, points, err := components(g)
	if err != nil {
		return nil, err
	}
	var c geom.Coord
	switch {
	case len(polygons) > 0:
		c = xy.PolygonsCentroid(polygons[0], polygons[1:]...)
	case len(lines) > 0:
		c = xy.LinesCentroid(lines[0], lines[1:]...)
	case len(points) > 0:
		c = xy.PointsCentroid(points[0], points[1:]...)
	default:
		return geom.NewPointEmpty(geom.XY), nil
	}
	return geom.NewPointFlat(geom.XY, []float64{c.X(), c.Y()}), nil
}

func components(g geom.T) ([]*geom.Polygon, []*geom.LineString, []*geom.Point, error) {
	var polygons []*geom.Polygon
	var lines []*geom.LineString
	var points []*geom.Point
	var walk func(g geom.T) error
	walk = func(g geom.T) error {
		switch g := g.(type) {
		case *geom.Point:
			if !g.Empty() {
				points = append(points, g)
			}
		case *geom.MultiPoint:
			for i := 0; i < g.NumPoints(); i++ {
				points = append(points, g.Point(i))
			}
		case *geom.LineString:
			lines = append(lines, g)
		case *geom.LinearRing:
			lines = append(lines, geom.NewLineStringFlat(g.Layout(), g.FlatCoords()))
		case *geom.MultiLineString:
			for i := 0; i < g.NumLineStrings(); i++ {
				lines = append(lines, g.LineString(i))
			}
		case *geom.Polygon:
			polygons = append(polygons, g)
		case *geom.MultiPolygon:
			for i := 0; i < g.NumPolygons(); i++ {
				polygons = append(polygons, g.Polygon(i))
			}
		case *geom.GeometryCollection:
			for _, sub := range g.Geoms() {
				if err := walk(sub); err != nil {
					return err
				}
			}
		default:
			return errUnknownType(g)
		}
		return nil
	}
	if err := walk(g); err != nil {
		return nil, nil, nil, err
	}
	return polygons, lines, points, nil
}

// Segmentize subdivides every edge so that no segment exceeds
// maxSegmentLength. Pure linear interpolation, no topology involved.
func (e *Engine) Segmentize(g geom.T, maxSegmentLength float64) (geom.T, error) {
	if maxSegmentLength <= 0 {
		return nil, errSegmentLength
	}
	layout := g.Layout()
	switch g := g.(type) {
	case *geom.Point, *geom.MultiPoint:
		return g, nil
	case *geom.LineString:
		return geom.NewLineStringFlat(layout, densifyFlat(g.Coords(), layout.Stride(), maxSegmentLength)), nil
	case *geom.LinearRing:
		return geom.NewLinearRingFlat(layout, densifyFlat(g.Coords(), layout.Stride(), maxSegmentLength)), nil
	case *geom.MultiLineString:
		mls := geom.NewMultiLineString(layout)
		for i := 0; i < g.NumLineStrings(); i++ {
			sub, err := e.Segmentize(g.LineString(i), maxSegmentLength)
			if err != nil {
				return nil, err
			}
			if err := mls.Push(sub.(*geom.LineString)); err != nil {
				return nil, err
			}
		}
		return mls, nil
	case *geom.Polygon:
		poly := geom.NewPolygon(layout)
		for _, ring := range g.Coords() {
			if err := poly.Push(geom.NewLinearRingFlat(layout, densifyFlat(ring, layout.Stride(), maxSegmentLength))); err != nil {
				return nil, err
			}
		}
		return poly, nil
	case *geom.MultiPolygon:
		mp := geom.NewMultiPolygon(layout)
		for i := 0; i < g.NumPolygons(); i++ {
			sub, err := e.Segmentize(g.Polygon(i), maxSegmentLength)
			if err != nil {
				return nil, err
			}
			if err := mp.Push(sub.(*geom.Polygon)); err != nil {
				return nil, err
			}
		}
		return mp, nil
	default:
		return nil, unsupported("Segmentize for geometry collections")
	}
}

// densifyFlat interpolates every stride component, so extra dimensions
// like Z and M are densified along with X and Y. Segment length is still
// measured in the plane.
func densifyFlat(coords []geom.Coord, stride int, maxSegmentLength float64) []float64 {
	var flat []float64
	for i, c := range coords {
		if i > 0 {
			prev := coords[i-1]
			d := coordDistance(prev, c)
			if d > maxSegmentLength {
				pieces := int(math.Ceil(d / maxSegmentLength))
				for k := 1; k < pieces; k++ {
					t := float64(k) / float64(pieces)
					for s := 0; s < stride; s++ {
						flat = append(flat, prev[s]+t*(c[s]-prev[s]))
					}
				}
			}
		}
		flat = append(flat, c[:stride]...)
	}
	return flat
}

func (e *Engine) ExtractUniquePoints(g geom.T) (geom.T, error) {
	return geometry.UniquePoints(g)
}

func (e *Engine) MinimumBoundingCircle(g geom.T) (geom.T, error) {
	return geometry.BoundingCircle(g)
}

func (e *Engine) MinimumBoundingRadius(g geom.T) (float64, error) {
	return geometry.BoundingRadius(g)
}

func (e *Engine) ConvexHull(g geom.T) (geom.T, error) {
	return nil, unsupported("ConvexHull")
}

func (e *Engine) ConcaveHull(g geom.T, ratio float64, allowHoles bool) (geom.T, error) {
	return nil, unsupported("ConcaveHull")
}

func (e *Engine) DelaunayTriangles(g geom.T, tolerance float64, onlyEdges bool) (geom.T, error) {
	return nil, unsupported("DelaunayTriangles")
}

func (e *Engine) OffsetCurve(g geom.T, distance float64, quadSegs int, mitreLimit float64) (geom.T, error) {
	return nil, unsupported("OffsetCurve")
}

func (e *Engine) PointOnSurface(g geom.T) (geom.T, error) {
	return nil, unsupported("PointOnSurface")
}

func (e *Engine) Buffer(g geom.T, width float64, quadSegs int) (geom.T, error) {
	return nil, unsupported("Buffer")
}

func (e *Engine) Simplify(g geom.T, tolerance float64, preserveTopology bool) (geom.T, error) {
	return nil, unsupported("Simplify")
}

func (e *Engine) MakeValid(g geom.T) (geom.T, error) {
	return nil, unsupported("MakeValid")
}

func (e *Engine) Normalize(g geom.T) (geom.T, error) {
	return nil, unsupported("Normalize")
}

func (e *Engine) ClipByRect(g geom.T, xMin, yMin, xMax, yMax float64) (geom.T, error) {
	return nil, unsupported("ClipByRect")
}
