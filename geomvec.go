// Package geomvec applies geometry operations elementwise over sequences
// of geometry values. Each operation pairs a left-hand sequence with either
// a second sequence of the same length or a single broadcast value, and
// propagates a per-kind null default wherever an operand is missing:
// false for predicates, NaN for measurements, the missing marker for
// geometry results. The geometric computation itself is delegated to an
// engine backend chosen at construction time.
package geomvec

import (
	"log/slog"
	"sync"

	geom "github.com/twpayne/go-geom"

	"github.com/topos-ai/geomvec-go/engine"
	"github.com/topos-ai/geomvec-go/engine/geosengine"
	"github.com/topos-ai/geomvec-go/engine/planar"
)

// Geometry is an optional geometry value. The zero value is the missing
// marker, which is distinct from a present but empty geometry.
type Geometry struct {
	t geom.T
}

// None is the missing marker.
var None = Geometry{}

// NewGeometry wraps a geometry value. A nil argument yields the missing
// marker.
func NewGeometry(t geom.T) Geometry {
	return Geometry{t: t}
}

// NewGeometries wraps a list of geometry values, mapping nil to missing.
func NewGeometries(ts ...geom.T) []Geometry {
	out := make([]Geometry, len(ts))
	for i, t := range ts {
		out[i] = NewGeometry(t)
	}
	return out
}

// Missing reports whether g is the missing marker.
func (g Geometry) Missing() bool {
	return g.t == nil
}

// Empty reports whether g is missing or a zero-extent geometry.
func (g Geometry) Empty() bool {
	return g.t == nil || g.t.Empty()
}

// Geom returns the underlying geometry value, nil when missing.
func (g Geometry) Geom() geom.T {
	return g.t
}

// Ops evaluates vectorized operations against a fixed engine backend.
type Ops struct {
	eng engine.Engine
}

// New returns an evaluator bound to the given engine.
func New(eng engine.Engine) *Ops {
	return &Ops{eng: eng}
}

// Engine returns the backend the evaluator is bound to.
func (o *Ops) Engine() engine.Engine {
	return o.eng
}

var defaultOps = sync.OnceValue(func() *Ops {
	switch name := engine.Select(); name {
	case "planar":
		return New(planar.New())
	case "geos":
		return New(geosengine.New())
	default:
		slog.Warn("unknown geometry engine, falling back to geos",
			slog.String("engine", name))
		return New(geosengine.New())
	}
})

// Default returns the process-wide evaluator. The backend is resolved once
// from the GEOMVEC_ENGINE environment variable; unset selects GEOS.
func Default() *Ops {
	return defaultOps()
}
