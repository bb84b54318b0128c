package planar

import (
	"math"

	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy/lineintersector"
)

// parts is a geometry decomposed into the primitives the pure backend
// evaluates against: standalone point coordinates, line and ring edges, and
// areal components.
type parts struct {
	points   []geom.Coord
	segments [][2]geom.Coord
	polygons []*geom.Polygon
}

func (p *parts) pointish() bool {
	return len(p.points) > 0 && len(p.segments) == 0 && len(p.polygons) == 0
}

func decompose(g geom.T, p *parts) error {
	switch g := g.(type) {
	case *geom.Point:
		if !g.Empty() {
			p.points = append(p.points, g.Coords())
		}
	case *geom.MultiPoint:
		for _, c := range g.Coords() {
			p.points = append(p.points, c)
		}
	case *geom.LineString:
		appendSegments(p, g.Coords())
	case *geom.LinearRing:
		appendSegments(p, g.Coords())
	case *geom.MultiLineString:
		for _, cs := range g.Coords() {
			appendSegments(p, cs)
		}
	case *geom.Polygon:
		for _, ring := range g.Coords() {
			appendSegments(p, ring)
		}
		p.polygons = append(p.polygons, g)
	case *geom.MultiPolygon:
		for i := 0; i < g.NumPolygons(); i++ {
			if err := decompose(g.Polygon(i), p); err != nil {
				return err
			}
		}
	case *geom.GeometryCollection:
		for _, sub := range g.Geoms() {
			if err := decompose(sub, p); err != nil {
				return err
			}
		}
	default:
		return errUnknownType(g)
	}
	return nil
}

func appendSegments(p *parts, coords []geom.Coord) {
	if len(coords) == 1 {
		// Degenerate single-vertex line, treat as a point.
		p.points = append(p.points, coords[0])
		return
	}
	for i := 1; i < len(coords); i++ {
		p.segments = append(p.segments, [2]geom.Coord{coords[i-1], coords[i]})
	}
}

// vertices returns every coordinate of g, regardless of role.
func (p *parts) vertices() []geom.Coord {
	out := append([]geom.Coord{}, p.points...)
	for _, s := range p.segments {
		out = append(out, s[0], s[1])
	}
	return out
}

func coordEqual(a, b geom.Coord) bool {
	return a.X() == b.X() && a.Y() == b.Y()
}

func coordDistance(a, b geom.Coord) float64 {
	return math.Hypot(b.X()-a.X(), b.Y()-a.Y())
}

// pointSegmentDistance returns the distance from pt to the closed segment
// ab. The xy package only offers the perpendicular distance to the infinite
// line, so the clamped form lives here.
func pointSegmentDistance(pt, a, b geom.Coord) float64 {
	dx := b.X() - a.X()
	dy := b.Y() - a.Y()
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return coordDistance(pt, a)
	}
	t := ((pt.X()-a.X())*dx + (pt.Y()-a.Y())*dy) / l2
	t = math.Max(0, math.Min(1, t))
	nearest := geom.Coord{a.X() + t*dx, a.Y() + t*dy}
	return coordDistance(pt, nearest)
}

func pointOnSegment(pt, a, b geom.Coord) bool {
	return pointSegmentDistance(pt, a, b) == 0
}

func segmentsIntersect(a0, a1, b0, b1 geom.Coord) bool {
	result := lineintersector.LineIntersectsLine(
		&lineintersector.RobustLineIntersector{}, a0, a1, b0, b1)
	return result.HasIntersection()
}

// pointInRings applies the even-odd rule over every ring of the polygon.
// Counting crossings across holes as well makes a point inside a hole land
// on an even count, i.e. outside.
func pointInRings(pt geom.Coord, rings [][]geom.Coord) bool {
	inside := false
	x, y := pt.X(), pt.Y()
	for _, ring := range rings {
		n := len(ring)
		if n < 3 {
			continue
		}
		for i, j := 0, n-1; i < n; j, i = i, i+1 {
			xi, yi := ring[i].X(), ring[i].Y()
			xj, yj := ring[j].X(), ring[j].Y()
			if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
				inside = !inside
			}
		}
	}
	return inside
}

func pointOnRings(pt geom.Coord, rings [][]geom.Coord) bool {
	for _, ring := range rings {
		for i := 1; i < len(ring); i++ {
			if pointOnSegment(pt, ring[i-1], ring[i]) {
				return true
			}
		}
	}
	return false
}

// pointInPolygon reports interior and boundary membership separately.
func pointInPolygon(pt geom.Coord, poly *geom.Polygon) (interior, boundary bool) {
	rings := poly.Coords()
	if pointOnRings(pt, rings) {
		return false, true
	}
	return pointInRings(pt, rings), false
}
