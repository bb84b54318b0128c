package geomvec

import (
	geom "github.com/twpayne/go-geom"
)

// CoordFunc maps one coordinate to another. For geometries without an
// elevation, z is zero on the way in and the returned z is dropped.
type CoordFunc func(x, y, z float64) (float64, float64, float64)

// Transform applies fn to every coordinate of every geometry, rebuilding
// each geometry with its ring and part structure intact. Missing elements
// pass through unchanged.
func (o *Ops) Transform(data []Geometry, fn CoordFunc) ([]Geometry, error) {
	out := make([]Geometry, len(data))
	for i, g := range data {
		if g.Missing() {
			continue
		}
		t, err := transformGeom(g.Geom(), fn)
		if err != nil {
			return nil, err
		}
		out[i] = NewGeometry(t)
	}
	return out, nil
}

func transformFlatCoords(flat []float64, layout geom.Layout, fn CoordFunc) []float64 {
	stride := layout.Stride()
	zIndex := layout.ZIndex()
	newCoords := make([]float64, len(flat))
	copy(newCoords, flat)
	for i := 0; i < len(newCoords); i += stride {
		z := 0.0
		if zIndex >= 0 {
			z = newCoords[i+zIndex]
		}
		x, y, z := fn(newCoords[i], newCoords[i+1], z)
		newCoords[i], newCoords[i+1] = x, y
		if zIndex >= 0 {
			newCoords[i+zIndex] = z
		}
	}
	return newCoords
}

func transformGeom(t geom.T, fn CoordFunc) (geom.T, error) {
	switch t := t.(type) {
	case *geom.Point:
		newCoords := transformFlatCoords(t.FlatCoords(), t.Layout(), fn)
		return geom.NewPointFlat(t.Layout(), newCoords).SetSRID(t.SRID()), nil
	case *geom.LineString:
		newCoords := transformFlatCoords(t.FlatCoords(), t.Layout(), fn)
		return geom.NewLineStringFlat(t.Layout(), newCoords).SetSRID(t.SRID()), nil
	case *geom.LinearRing:
		newCoords := transformFlatCoords(t.FlatCoords(), t.Layout(), fn)
		return geom.NewLinearRingFlat(t.Layout(), newCoords).SetSRID(t.SRID()), nil
	case *geom.Polygon:
		newCoords := transformFlatCoords(t.FlatCoords(), t.Layout(), fn)
		return geom.NewPolygonFlat(t.Layout(), newCoords, t.Ends()).SetSRID(t.SRID()), nil
	case *geom.MultiPoint:
		newCoords := transformFlatCoords(t.FlatCoords(), t.Layout(), fn)
		return geom.NewMultiPointFlat(t.Layout(), newCoords).SetSRID(t.SRID()), nil
	case *geom.MultiLineString:
		newCoords := transformFlatCoords(t.FlatCoords(), t.Layout(), fn)
		return geom.NewMultiLineStringFlat(t.Layout(), newCoords, t.Ends()).SetSRID(t.SRID()), nil
	case *geom.MultiPolygon:
		newCoords := transformFlatCoords(t.FlatCoords(), t.Layout(), fn)
		return geom.NewMultiPolygonFlat(t.Layout(), newCoords, t.Endss()).SetSRID(t.SRID()), nil
	case *geom.GeometryCollection:
		gc := geom.NewGeometryCollection()
		for _, sub := range t.Geoms() {
			newSub, err := transformGeom(sub, fn)
			if err != nil {
				return nil, err
			}
			if err := gc.Push(newSub); err != nil {
				return nil, err
			}
		}
		return gc.SetSRID(t.SRID()), nil
	default:
		return nil, &OperandTypeError{Value: t}
	}
}
