package planar

import (
	"math"

	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy/lineintersector"
)

// validGeometry mirrors the reason string GEOS reports for valid input, so
// callers can switch backends without changing comparisons.
const validGeometry = "Valid Geometry"

// checkValid performs the structural checks a topology engine is not needed
// for: finite coordinates, closed rings, and minimum vertex counts. Ring
// self-intersection is left to GEOS; structurally sound input is reported
// valid here.
func checkValid(g geom.T) (string, error) {
	for _, c := range flatCoordPairs(g) {
		if math.IsNaN(c.X()) || math.IsNaN(c.Y()) || math.IsInf(c.X(), 0) || math.IsInf(c.Y(), 0) {
			return "Invalid Coordinate", nil
		}
	}
	switch g := g.(type) {
	case *geom.Point, *geom.MultiPoint:
		return validGeometry, nil
	case *geom.LineString:
		if n := g.NumCoords(); n == 1 {
			return "Too few points in geometry component", nil
		}
		return validGeometry, nil
	case *geom.LinearRing:
		return checkRing(g.Coords()), nil
	case *geom.MultiLineString:
		for i := 0; i < g.NumLineStrings(); i++ {
			if reason, err := checkValid(g.LineString(i)); err != nil || reason != validGeometry {
				return reason, err
			}
		}
		return validGeometry, nil
	case *geom.Polygon:
		for _, ring := range g.Coords() {
			if reason := checkRing(ring); reason != validGeometry {
				return reason, nil
			}
		}
		return validGeometry, nil
	case *geom.MultiPolygon:
		for i := 0; i < g.NumPolygons(); i++ {
			if reason, err := checkValid(g.Polygon(i)); err != nil || reason != validGeometry {
				return reason, err
			}
		}
		return validGeometry, nil
	case *geom.GeometryCollection:
		for _, sub := range g.Geoms() {
			if reason, err := checkValid(sub); err != nil || reason != validGeometry {
				return reason, err
			}
		}
		return validGeometry, nil
	default:
		return "", errUnknownType(g)
	}
}

func checkRing(ring []geom.Coord) string {
	if len(ring) == 0 {
		return validGeometry
	}
	if len(ring) < 4 {
		return "Too few points in geometry component"
	}
	if !coordEqual(ring[0], ring[len(ring)-1]) {
		return "Ring is not closed"
	}
	return validGeometry
}

func flatCoordPairs(g geom.T) []geom.Coord {
	switch g := g.(type) {
	case *geom.GeometryCollection:
		var out []geom.Coord
		for _, sub := range g.Geoms() {
			out = append(out, flatCoordPairs(sub)...)
		}
		return out
	default:
		flat := g.FlatCoords()
		stride := g.Stride()
		out := make([]geom.Coord, 0, len(flat)/stride)
		for i := 0; i+1 < len(flat); i += stride {
			out = append(out, geom.Coord{flat[i], flat[i+1]})
		}
		return out
	}
}

func (e *Engine) IsValid(g geom.T) (bool, error) {
	reason, err := checkValid(g)
	if err != nil {
		return false, err
	}
	return reason == validGeometry, nil
}

func (e *Engine) IsValidReason(g geom.T) (string, error) {
	return checkValid(g)
}

func (e *Engine) IsSimple(g geom.T) (bool, error) {
	switch g := g.(type) {
	case *geom.Point:
		return true, nil
	case *geom.MultiPoint:
		coords := g.Coords()
		for i := range coords {
			for j := i + 1; j < len(coords); j++ {
				if coordEqual(coords[i], coords[j]) {
					return false, nil
				}
			}
		}
		return true, nil
	case *geom.LineString:
		return lineStringSimple(g.Coords()), nil
	case *geom.LinearRing:
		return lineStringSimple(g.Coords()), nil
	default:
		return false, unsupported("IsSimple for non-point, non-line geometries")
	}
}

// lineStringSimple checks for self-intersection pairwise over segments.
// Adjacent segments may meet at their shared vertex, and a closed line may
// meet itself at its start vertex; any other contact is a
// self-intersection.
func lineStringSimple(coords []geom.Coord) bool {
	n := len(coords) - 1
	if n < 1 {
		return true
	}
	closed := coordEqual(coords[0], coords[n])
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			result := lineintersector.LineIntersectsLine(
				&lineintersector.RobustLineIntersector{},
				coords[i], coords[i+1], coords[j], coords[j+1])
			if !result.HasIntersection() {
				continue
			}
			pts := result.Intersection()
			var allowed geom.Coord
			switch {
			case j == i+1:
				allowed = coords[j]
			case i == 0 && j == n-1 && closed:
				allowed = coords[0]
			default:
				return false
			}
			if len(pts) != 1 || !coordEqual(pts[0], allowed) {
				return false
			}
		}
	}
	return true
}

func (e *Engine) IsRing(g geom.T) (bool, error) {
	switch g := g.(type) {
	case *geom.LineString:
		coords := g.Coords()
		if len(coords) < 4 || !coordEqual(coords[0], coords[len(coords)-1]) {
			return false, nil
		}
		return lineStringSimple(coords), nil
	case *geom.LinearRing:
		return lineStringSimple(g.Coords()), nil
	default:
		return false, nil
	}
}

func (e *Engine) EqualsExact(a, b geom.T, tolerance float64) (bool, error) {
	if ga, gb := geomTypeName(a), geomTypeName(b); ga != gb || ga == "" {
		return false, nil
	}
	if gc, ok := a.(*geom.GeometryCollection); ok {
		other := b.(*geom.GeometryCollection)
		if gc.NumGeoms() != other.NumGeoms() {
			return false, nil
		}
		for i, sub := range gc.Geoms() {
			eq, err := e.EqualsExact(sub, other.Geoms()[i], tolerance)
			if err != nil || !eq {
				return eq, err
			}
		}
		return true, nil
	}
	fa, fb := a.FlatCoords(), b.FlatCoords()
	if len(fa) != len(fb) || a.Layout() != b.Layout() {
		return false, nil
	}
	for i := range fa {
		if math.Abs(fa[i]-fb[i]) > tolerance {
			return false, nil
		}
	}
	return true, nil
}

func geomTypeName(g geom.T) string {
	switch g.(type) {
	case *geom.Point:
		return "Point"
	case *geom.LineString:
		return "LineString"
	case *geom.LinearRing:
		return "LinearRing"
	case *geom.Polygon:
		return "Polygon"
	case *geom.MultiPoint:
		return "MultiPoint"
	case *geom.MultiLineString:
		return "MultiLineString"
	case *geom.MultiPolygon:
		return "MultiPolygon"
	case *geom.GeometryCollection:
		return "GeometryCollection"
	default:
		return ""
	}
}
