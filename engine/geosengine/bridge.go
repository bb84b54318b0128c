package geosengine

import (
	"encoding/binary"
	"fmt"

	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"
	"github.com/twpayne/go-geom/encoding/wkt"
	geos "github.com/twpayne/go-geos"
)

// Geometries cross into GEOS through WKB. Empty points do not round-trip
// WKB, so those take the WKT path, as do geometries GEOS hands back empty.

func toGEOS(g geom.T) (*geos.Geom, error) {
	if g.Empty() {
		s, err := wkt.Marshal(g)
		if err != nil {
			return nil, err
		}
		return geos.NewGeomFromWKT(s)
	}

	data, err := wkb.Marshal(g, binary.LittleEndian)
	if err != nil {
		return nil, err
	}
	return geos.NewGeomFromWKB(data)
}

func fromGEOS(g *geos.Geom) (geom.T, error) {
	if g == nil {
		return nil, fmt.Errorf("GEOS returned no geometry")
	}
	if g.IsEmpty() {
		return wkt.Unmarshal(g.ToWKT())
	}
	return wkb.Unmarshal(g.ToWKB())
}

// call converts the operands, applies f and frees the GEOS geometries. f
// runs with non-nil handles; GEOS errors surface as panics from go-geos and
// are converted back to errors here.
func call[T any](a geom.T, f func(*geos.Geom) T) (result T, err error) {
	ga, err := toGEOS(a)
	if err != nil {
		return result, err
	}
	defer ga.Destroy()
	defer recoverGEOS(&err)
	return f(ga), nil
}

func call2[T any](a, b geom.T, f func(*geos.Geom, *geos.Geom) T) (result T, err error) {
	ga, err := toGEOS(a)
	if err != nil {
		return result, err
	}
	defer ga.Destroy()
	gb, err := toGEOS(b)
	if err != nil {
		return result, err
	}
	defer gb.Destroy()
	defer recoverGEOS(&err)
	return f(ga, gb), nil
}

func callGeom(a geom.T, f func(*geos.Geom) *geos.Geom) (geom.T, error) {
	out, err := call(a, f)
	if err != nil {
		return nil, err
	}
	defer out.Destroy()
	return fromGEOS(out)
}

func callGeom2(a, b geom.T, f func(*geos.Geom, *geos.Geom) *geos.Geom) (geom.T, error) {
	out, err := call2(a, b, f)
	if err != nil {
		return nil, err
	}
	defer out.Destroy()
	return fromGEOS(out)
}

func recoverGEOS(err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(error); ok {
			*err = fmt.Errorf("GEOS: %w", e)
			return
		}
		*err = fmt.Errorf("GEOS: %v", r)
	}
}
