// Package geometry converts single geometry values between the in-memory
// go-geom representation, the supported serialization formats, and S2
// regions. The vectorized operations in the root package loop over these
// scalar conversions.
package geometry

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// Encoding identifies a geometry serialization format.
type Encoding int

const (
	WKB Encoding = iota
	WKT
	GeoJSON
)

func (e Encoding) String() string {
	switch e {
	case WKB:
		return "WKB"
	case WKT:
		return "WKT"
	case GeoJSON:
		return "GeoJSON"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// Marshal serializes a geometry in the requested encoding. WKT output is
// returned as UTF-8 bytes.
func Marshal(geometryObject geom.T, encoding Encoding) ([]byte, error) {
	switch encoding {
	case WKB:
		return wkb.Marshal(geometryObject, binary.LittleEndian)
	case WKT:
		s, err := wkt.Marshal(geometryObject)
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	case GeoJSON:
		return geojson.Marshal(geometryObject)
	default:
		return nil, fmt.Errorf("unknown geometry encoding %s", encoding)
	}
}

// Unmarshal parses a serialized geometry. Malformed non-empty input is a
// parse error, never a silent nil.
func Unmarshal(data []byte, encoding Encoding) (geom.T, error) {
	switch encoding {
	case WKB:
		return wkb.Unmarshal(data)
	case WKT:
		return wkt.Unmarshal(string(data))
	case GeoJSON:
		gg := &geojson.Geometry{}
		if err := json.Unmarshal(data, gg); err != nil {
			return nil, fmt.Errorf("invalid geojson: %w", err)
		}

		return gg.Decode()

	default:
		return nil, fmt.Errorf("unknown geometry encoding %s", encoding)
	}
}
