package geometry

import (
	"fmt"

	"github.com/golang/geo/s2"
	geom "github.com/twpayne/go-geom"
)

// Region converts a geometry with lon/lat coordinates to an s2.Region, for
// callers that index or query geometries on the sphere. Collections with a
// single member convert to that member's region; larger collections are not
// representable as a single region.

func regionPoint(pointCoords geom.Coord) s2.Point {
	return s2.PointFromLatLng(
		s2.LatLngFromDegrees(pointCoords.Y(), pointCoords.X()))
}

func regionPolyline(lineStringCoords []geom.Coord) *s2.Polyline {
	points := make([]s2.Point, len(lineStringCoords))
	for i, pointCoords := range lineStringCoords {
		points[i] = regionPoint(pointCoords)
	}

	polyline := s2.Polyline(points)
	return &polyline
}

func regionLoop(linearRingCoords []geom.Coord) *s2.Loop {
	if l := len(linearRingCoords) - 1; l > 0 && linearRingCoords[0].Equal(geom.XY, linearRingCoords[l]) {
		linearRingCoords = linearRingCoords[:l]
	}

	points := make([]s2.Point, len(linearRingCoords))
	for i, pointCoords := range linearRingCoords {
		points[i] = regionPoint(pointCoords)
	}

	loop := s2.LoopFromPoints(points)
	loop.Normalize()
	return loop
}

func regionPolygon(polygonCoords [][]geom.Coord) s2.Region {
	loops := make([]*s2.Loop, 0, len(polygonCoords))
	for _, linearRingCoords := range polygonCoords {
		loops = append(loops, regionLoop(linearRingCoords))
	}

	return s2.PolygonFromLoops(loops)
}

func regionMultiPolygon(multiPolygonCoords [][][]geom.Coord) s2.Region {
	if len(multiPolygonCoords) == 1 {
		return regionPolygon(multiPolygonCoords[0])
	}

	l := 0
	for _, polygonCoords := range multiPolygonCoords {
		l += len(polygonCoords)
	}

	loops := make([]*s2.Loop, 0, l)
	for _, polygonCoords := range multiPolygonCoords {
		for _, linearRingCoords := range polygonCoords {
			loops = append(loops, regionLoop(linearRingCoords))
		}
	}

	return s2.PolygonFromLoops(loops)
}

// Region returns the s2.Region equivalent of a geometry. Coordinates are
// interpreted as degrees of longitude (X) and latitude (Y).
func Region(geometryObject geom.T) (s2.Region, error) {
	switch g := geometryObject.(type) {
	case *geom.Point:
		return regionPoint(g.Coords()), nil
	case *geom.LineString:
		return regionPolyline(g.Coords()), nil
	case *geom.LinearRing:
		return regionLoop(g.Coords()), nil
	case *geom.Polygon:
		return regionPolygon(g.Coords()), nil
	case *geom.MultiPolygon:
		return regionMultiPolygon(g.Coords()), nil
	case *geom.GeometryCollection:
		if g.NumGeoms() == 1 {
			return Region(g.Geoms()[0])
		}
		return nil, fmt.Errorf("no S2 equivalent implemented for a %d-member GeometryCollection", g.NumGeoms())
	default:
		return nil, fmt.Errorf("no S2 equivalent implemented for geometry type %T", g)
	}
}
