package geomvec

import (
	"fmt"
	"log/slog"
	"math"

	geom "github.com/twpayne/go-geom"
)

// Structural accessors answered from the in-memory representation without
// engine involvement.

// IsEmpty reports per element whether the geometry is present but has no
// extent. Missing elements report false.
func (o *Ops) IsEmpty(data []Geometry) []bool {
	out := make([]bool, len(data))
	for i, g := range data {
		out[i] = !g.Missing() && g.Geom().Empty()
	}
	return out
}

// IsClosed reports whether each line starts and ends at the same
// coordinate. Non-line geometries and missing elements report false.
func (o *Ops) IsClosed(data []Geometry) []bool {
	out := make([]bool, len(data))
	for i, g := range data {
		if g.Missing() {
			continue
		}
		switch t := g.Geom().(type) {
		case *geom.LineString:
			out[i] = lineClosed(t.FlatCoords(), t.Stride())
		case *geom.LinearRing:
			out[i] = true
		case *geom.MultiLineString:
			closed := t.NumLineStrings() > 0
			for j := 0; j < t.NumLineStrings(); j++ {
				sub := t.LineString(j)
				if !lineClosed(sub.FlatCoords(), sub.Stride()) {
					closed = false
					break
				}
			}
			out[i] = closed
		}
	}
	return out
}

func lineClosed(flat []float64, stride int) bool {
	if len(flat) < 2*stride {
		return false
	}
	last := len(flat) - stride
	return flat[0] == flat[last] && flat[1] == flat[last+1]
}

// HasZ reports whether each geometry carries an elevation coordinate.
func (o *Ops) HasZ(data []Geometry) []bool {
	out := make([]bool, len(data))
	for i, g := range data {
		if g.Missing() {
			continue
		}
		out[i] = g.Geom().Layout().ZIndex() >= 0
	}
	return out
}

// GeomType names each geometry's type, the empty string for missing
// elements.
func (o *Ops) GeomType(data []Geometry) []string {
	out := make([]string, len(data))
	for i, g := range data {
		if g.Missing() {
			continue
		}
		out[i] = typeName(g.Geom())
	}
	return out
}

func typeName(g geom.T) string {
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
		return fmt.Sprintf("%T", g)
	}
}

// X returns the x coordinate of each point, NaN for missing elements. Any
// non-point element is an error.
func (o *Ops) X(data []Geometry) ([]float64, error) {
	return o.pointCoord(data, "X", func(p *geom.Point) float64 { return p.X() })
}

// Y returns the y coordinate of each point, NaN for missing elements.
func (o *Ops) Y(data []Geometry) ([]float64, error) {
	return o.pointCoord(data, "Y", func(p *geom.Point) float64 { return p.Y() })
}

// Z returns the elevation of each point, NaN for missing elements and for
// points without an elevation.
func (o *Ops) Z(data []Geometry) ([]float64, error) {
	return o.pointCoord(data, "Z", func(p *geom.Point) float64 {
		if p.Layout().ZIndex() < 0 {
			return math.NaN()
		}
		return p.Z()
	})
}

func (o *Ops) pointCoord(data []Geometry, op string, f func(*geom.Point) float64) ([]float64, error) {
	out := make([]float64, len(data))
	for i, g := range data {
		if g.Missing() {
			out[i] = math.NaN()
			continue
		}
		p, ok := g.Geom().(*geom.Point)
		if !ok {
			return nil, fmt.Errorf("%s requires Point geometries, element %d is %s", op, i, typeName(g.Geom()))
		}
		if p.Empty() {
			out[i] = math.NaN()
			continue
		}
		out[i] = f(p)
	}
	return out, nil
}

// Bounds returns each geometry's (xMin, yMin, xMax, yMax), all NaN for
// missing and empty elements.
func (o *Ops) Bounds(data []Geometry) [][4]float64 {
	out := make([][4]float64, len(data))
	for i, g := range data {
		if g.Empty() {
			nan := math.NaN()
			out[i] = [4]float64{nan, nan, nan, nan}
			continue
		}
		b := g.Geom().Bounds()
		out[i] = [4]float64{b.Min(0), b.Min(1), b.Max(0), b.Max(1)}
	}
	return out
}

// ExteriorRing returns each polygon's outer ring as a line, the missing
// marker for non-polygon and missing elements.
func (o *Ops) ExteriorRing(data []Geometry) []Geometry {
	out := make([]Geometry, len(data))
	for i, g := range data {
		if g.Missing() {
			continue
		}
		if poly, ok := g.Geom().(*geom.Polygon); ok && poly.NumLinearRings() > 0 {
			ring := poly.LinearRing(0)
			out[i] = NewGeometry(geom.NewLineStringFlat(ring.Layout(), ring.FlatCoords()))
		}
	}
	return out
}

// InteriorRings returns each polygon's holes as lines. Non-polygon
// elements yield nil and are reported once per call.
func (o *Ops) InteriorRings(data []Geometry) [][]Geometry {
	out := make([][]Geometry, len(data))
	nonPolygon := false
	for i, g := range data {
		if g.Missing() {
			continue
		}
		poly, ok := g.Geom().(*geom.Polygon)
		if !ok {
			nonPolygon = true
			continue
		}
		rings := []Geometry{}
		for j := 1; j < poly.NumLinearRings(); j++ {
			ring := poly.LinearRing(j)
			rings = append(rings, NewGeometry(geom.NewLineStringFlat(ring.Layout(), ring.FlatCoords())))
		}
		out[i] = rings
	}
	if nonPolygon {
		slog.Warn("only Polygon elements have interior rings, others yield nil")
	}
	return out
}
