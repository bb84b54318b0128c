package geometry

import (
	"fmt"

	geom "github.com/twpayne/go-geom"
)

// UniquePoints returns the distinct vertices of a geometry in order of
// first occurrence, as a MultiPoint in the geometry's layout. This is a
// structural operation; it needs no topology engine.
func UniquePoints(geometryObject geom.T) (geom.T, error) {
	layout := geom.NoLayout
	var flat []float64

	var walk func(g geom.T) error
	walk = func(g geom.T) error {
		if gc, ok := g.(*geom.GeometryCollection); ok {
			for _, sub := range gc.Geoms() {
				if err := walk(sub); err != nil {
					return err
				}
			}
			return nil
		}
		if layout == geom.NoLayout {
			layout = g.Layout()
		} else if g.Layout() != layout {
			return fmt.Errorf("mixed layouts in collection: %v and %v", layout, g.Layout())
		}
		stride := layout.Stride()
		if stride == 0 {
			return nil
		}
		coords := g.FlatCoords()
		for i := 0; i+stride <= len(coords); i += stride {
			if !hasVertex(flat, coords[i:i+stride]) {
				flat = append(flat, coords[i:i+stride]...)
			}
		}
		return nil
	}
	if err := walk(geometryObject); err != nil {
		return nil, err
	}
	if layout == geom.NoLayout {
		layout = geom.XY
	}
	return geom.NewMultiPointFlat(layout, flat), nil
}

func hasVertex(flat, vertex []float64) bool {
	n := len(vertex)
	for i := 0; i+n <= len(flat); i += n {
		match := true
		for j, v := range vertex {
			if flat[i+j] != v {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
