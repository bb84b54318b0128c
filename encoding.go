package geomvec

import (
	"encoding/hex"
	"log/slog"

	"github.com/topos-ai/geomvec-go/geometry"
)

// Serialization follows a missing-in, missing-out policy: a nil or empty
// byte slice (empty string for text formats) decodes to the missing
// marker, and the missing marker encodes to nil. Malformed non-empty input
// is a parse error and aborts the conversion.

// FromEncoded decodes a sequence of serialized geometries.
func FromEncoded(data [][]byte, encoding geometry.Encoding) ([]Geometry, error) {
	out := make([]Geometry, len(data))
	for i, d := range data {
		if len(d) == 0 {
			continue
		}
		g, err := geometry.Unmarshal(d, encoding)
		if err != nil {
			slog.Warn("ignoring sequence with invalid serialized geometry",
				slog.Int("index", i), slog.String("encoding", encoding.String()))
			return nil, err
		}
		out[i] = NewGeometry(g)
	}
	return out, nil
}

// ToEncoded encodes a sequence of geometries in the given format.
func ToEncoded(data []Geometry, encoding geometry.Encoding) ([][]byte, error) {
	out := make([][]byte, len(data))
	for i, g := range data {
		if g.Missing() {
			continue
		}
		d, err := geometry.Marshal(g.Geom(), encoding)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

func FromWKB(data [][]byte) ([]Geometry, error) {
	return FromEncoded(data, geometry.WKB)
}

func ToWKB(data []Geometry) ([][]byte, error) {
	return ToEncoded(data, geometry.WKB)
}

// FromWKBHex decodes hex-encoded WKB strings.
func FromWKBHex(data []string) ([]Geometry, error) {
	raw := make([][]byte, len(data))
	for i, s := range data {
		if s == "" {
			continue
		}
		d, err := hex.DecodeString(s)
		if err != nil {
			slog.Warn("ignoring sequence with invalid WKB hex", slog.Int("index", i))
			return nil, err
		}
		raw[i] = d
	}
	return FromWKB(raw)
}

// ToWKBHex encodes to hex WKB strings, the empty string for missing
// elements.
func ToWKBHex(data []Geometry) ([]string, error) {
	raw, err := ToWKB(data)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(raw))
	for i, d := range raw {
		if d != nil {
			out[i] = hex.EncodeToString(d)
		}
	}
	return out, nil
}

func FromWKT(data []string) ([]Geometry, error) {
	raw := make([][]byte, len(data))
	for i, s := range data {
		if s != "" {
			raw[i] = []byte(s)
		}
	}
	return FromEncoded(raw, geometry.WKT)
}

func ToWKT(data []Geometry) ([]string, error) {
	raw, err := ToEncoded(data, geometry.WKT)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(raw))
	for i, d := range raw {
		out[i] = string(d)
	}
	return out, nil
}

func FromGeoJSON(data [][]byte) ([]Geometry, error) {
	return FromEncoded(data, geometry.GeoJSON)
}

func ToGeoJSON(data []Geometry) ([][]byte, error) {
	return ToEncoded(data, geometry.GeoJSON)
}
