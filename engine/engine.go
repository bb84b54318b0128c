// Package engine defines the capability interface a geometry backend must
// implement for the vectorized operations in the root package. Two backends
// exist: geosengine, backed by the GEOS library, and planar, a partial pure
// Go implementation. The backend is picked once, at construction time, and
// injected into the evaluator.
package engine

import (
	"fmt"
	"os"

	geom "github.com/twpayne/go-geom"
)

// Engine is the operation set a backend provides. All geometries cross the
// interface as go-geom values; backends that keep their own representation
// convert at the boundary. Implementations never mutate their arguments;
// an operation that leaves a geometry unchanged may return it as is.
type Engine interface {
	Name() string

	// Binary predicates.
	Intersects(a, b geom.T) (bool, error)
	Disjoint(a, b geom.T) (bool, error)
	Touches(a, b geom.T) (bool, error)
	Crosses(a, b geom.T) (bool, error)
	Within(a, b geom.T) (bool, error)
	Contains(a, b geom.T) (bool, error)
	Overlaps(a, b geom.T) (bool, error)
	Covers(a, b geom.T) (bool, error)
	CoveredBy(a, b geom.T) (bool, error)
	Equals(a, b geom.T) (bool, error)
	EqualsExact(a, b geom.T, tolerance float64) (bool, error)
	Relate(a, b geom.T) (string, error)

	// Unary predicates.
	IsValid(g geom.T) (bool, error)
	IsValidReason(g geom.T) (string, error)
	IsSimple(g geom.T) (bool, error)
	IsRing(g geom.T) (bool, error)

	// Set operations.
	Intersection(a, b geom.T) (geom.T, error)
	Union(a, b geom.T) (geom.T, error)
	Difference(a, b geom.T) (geom.T, error)
	SymmetricDifference(a, b geom.T) (geom.T, error)

	// UnionAll unions every geometry in gs. gs never contains nil
	// elements; the caller filters missing values first. Implementations
	// reject an empty slice with an error.
	UnionAll(gs []geom.T) (geom.T, error)

	// Constructive operations.
	Boundary(g geom.T) (geom.T, error)
	Centroid(g geom.T) (geom.T, error)
	ConvexHull(g geom.T) (geom.T, error)
	ConcaveHull(g geom.T, ratio float64, allowHoles bool) (geom.T, error)
	DelaunayTriangles(g geom.T, tolerance float64, onlyEdges bool) (geom.T, error)
	Envelope(g geom.T) (geom.T, error)
	ExtractUniquePoints(g geom.T) (geom.T, error)
	MinimumBoundingCircle(g geom.T) (geom.T, error)
	OffsetCurve(g geom.T, distance float64, quadSegs int, mitreLimit float64) (geom.T, error)
	PointOnSurface(g geom.T) (geom.T, error)
	Buffer(g geom.T, width float64, quadSegs int) (geom.T, error)
	Simplify(g geom.T, tolerance float64, preserveTopology bool) (geom.T, error)
	MakeValid(g geom.T) (geom.T, error)
	Normalize(g geom.T) (geom.T, error)
	ClipByRect(g geom.T, xMin, yMin, xMax, yMax float64) (geom.T, error)
	Segmentize(g geom.T, maxSegmentLength float64) (geom.T, error)

	// Measurements.
	Area(g geom.T) (float64, error)
	Length(g geom.T) (float64, error)
	Distance(a, b geom.T) (float64, error)
	HausdorffDistance(a, b geom.T) (float64, error)
	MinimumBoundingRadius(g geom.T) (float64, error)

	// Linear referencing.
	Interpolate(g geom.T, distance float64, normalized bool) (geom.T, error)
	Project(g geom.T, p geom.T, normalized bool) (float64, error)
}

// UnsupportedOperationError reports an operation the active backend does not
// implement.
type UnsupportedOperationError struct {
	Engine string
	Op     string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("engine %s does not implement %s", e.Engine, e.Op)
}

// Unsupported returns an UnsupportedOperationError for the named capability.
func Unsupported(engine, op string) error {
	return &UnsupportedOperationError{Engine: engine, Op: op}
}

// IsUnsupported reports whether err is an UnsupportedOperationError.
func IsUnsupported(err error) bool {
	_, ok := err.(*UnsupportedOperationError)
	return ok
}

// EnvVar names the environment variable consulted by Select.
const EnvVar = "GEOMVEC_ENGINE"

// Select resolves an engine name from the environment. An empty or unset
// value selects the GEOS backend; the caller maps the returned name to a
// concrete implementation.
func Select() string {
	switch name := os.Getenv(EnvVar); name {
	case "", "geos":
		return "geos"
	default:
		return name
	}
}
