package geomvec

import (
	"math"

	geom "github.com/twpayne/go-geom"
)

// operand resolves a right-hand operand into an indexed accessor. Accepted
// kinds: a Geometry, a bare geom.T, or a []Geometry of length n. Anything
// else is an OperandTypeError; a length disagreement is a
// LengthMismatchError. Both reject the operation before any element is
// evaluated.
func operand(n int, right any) (func(int) Geometry, error) {
	switch r := right.(type) {
	case Geometry:
		return func(int) Geometry { return r }, nil
	case []Geometry:
		if len(r) != n {
			return nil, &LengthMismatchError{Left: n, Right: len(r)}
		}
		return func(i int) Geometry { return r[i] }, nil
	case geom.T:
		g := NewGeometry(r)
		return func(int) Geometry { return g }, nil
	default:
		return nil, &OperandTypeError{Value: right}
	}
}

// floatOperand resolves a float64 or []float64 parameter the same way.
func floatOperand(n int, value any) (func(int) float64, error) {
	switch v := value.(type) {
	case float64:
		return func(int) float64 { return v }, nil
	case int:
		f := float64(v)
		return func(int) float64 { return f }, nil
	case []float64:
		if len(v) != n {
			return nil, &LengthMismatchError{Left: n, Right: len(v)}
		}
		return func(i int) float64 { return v[i] }, nil
	default:
		return nil, &OperandTypeError{Value: value}
	}
}

func (o *Ops) evalBool(left []Geometry, right any, f func(a, b geom.T) (bool, error)) ([]bool, error) {
	at, err := operand(len(left), right)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(left))
	for i, l := range left {
		r := at(i)
		if l.Missing() || r.Missing() {
			continue
		}
		v, err := f(l.Geom(), r.Geom())
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// evalFloat maps missing operands to NaN. With skipEmpty set, empty
// operands map to NaN as well: an empty geometry has no meaningful
// distance and must not silently report zero.
func (o *Ops) evalFloat(left []Geometry, right any, skipEmpty bool, f func(a, b geom.T) (float64, error)) ([]float64, error) {
	at, err := operand(len(left), right)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(left))
	for i, l := range left {
		r := at(i)
		if l.Missing() || r.Missing() || (skipEmpty && (l.Empty() || r.Empty())) {
			out[i] = math.NaN()
			continue
		}
		v, err := f(l.Geom(), r.Geom())
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (o *Ops) evalGeom(left []Geometry, right any, f func(a, b geom.T) (geom.T, error)) ([]Geometry, error) {
	at, err := operand(len(left), right)
	if err != nil {
		return nil, err
	}
	out := make([]Geometry, len(left))
	for i, l := range left {
		r := at(i)
		if l.Missing() || r.Missing() {
			continue
		}
		v, err := f(l.Geom(), r.Geom())
		if err != nil {
			return nil, err
		}
		out[i] = NewGeometry(v)
	}
	return out, nil
}

func (o *Ops) evalString(left []Geometry, right any, f func(a, b geom.T) (string, error)) ([]string, error) {
	at, err := operand(len(left), right)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(left))
	for i, l := range left {
		r := at(i)
		if l.Missing() || r.Missing() {
			continue
		}
		v, err := f(l.Geom(), r.Geom())
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Unary variants of the same null policy.

func (o *Ops) mapBool(data []Geometry, f func(geom.T) (bool, error)) ([]bool, error) {
	out := make([]bool, len(data))
	for i, g := range data {
		if g.Missing() {
			continue
		}
		v, err := f(g.Geom())
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (o *Ops) mapFloat(data []Geometry, f func(geom.T) (float64, error)) ([]float64, error) {
	out := make([]float64, len(data))
	for i, g := range data {
		if g.Missing() {
			out[i] = math.NaN()
			continue
		}
		v, err := f(g.Geom())
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (o *Ops) mapGeom(data []Geometry, f func(geom.T) (geom.T, error)) ([]Geometry, error) {
	out := make([]Geometry, len(data))
	for i, g := range data {
		if g.Missing() {
			continue
		}
		v, err := f(g.Geom())
		if err != nil {
			return nil, err
		}
		out[i] = NewGeometry(v)
	}
	return out, nil
}

func (o *Ops) mapString(data []Geometry, f func(geom.T) (string, error)) ([]string, error) {
	out := make([]string, len(data))
	for i, g := range data {
		if g.Missing() {
			continue
		}
		v, err := f(g.Geom())
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
