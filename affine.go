package geomvec

import (
	"math"
)

// Affine is the planar transform
//
//	x' = A*x + B*y + XOff
//	y' = D*x + E*y + YOff
//
// applied to every coordinate. Elevations pass through untouched.
type Affine struct {
	A, B, D, E float64
	XOff, YOff float64
}

func (m Affine) apply(x, y, z float64) (float64, float64, float64) {
	return m.A*x + m.B*y + m.XOff, m.D*x + m.E*y + m.YOff, z
}

// Translation moves every coordinate by the given offsets.
func Translation(xOff, yOff float64) Affine {
	return Affine{A: 1, E: 1, XOff: xOff, YOff: yOff}
}

// Scaling scales about the given origin.
func Scaling(xFact, yFact, xOrigin, yOrigin float64) Affine {
	return Affine{
		A:    xFact,
		E:    yFact,
		XOff: xOrigin - xFact*xOrigin,
		YOff: yOrigin - yFact*yOrigin,
	}
}

// Rotation rotates counterclockwise by angle radians about the given
// origin.
func Rotation(angle, xOrigin, yOrigin float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{
		A: cos, B: -sin,
		D: sin, E: cos,
		XOff: xOrigin - cos*xOrigin + sin*yOrigin,
		YOff: yOrigin - sin*xOrigin - cos*yOrigin,
	}
}

// Shear skews by the given angles in radians about the given origin.
func Shear(xAngle, yAngle, xOrigin, yOrigin float64) Affine {
	tanX := math.Tan(xAngle)
	tanY := math.Tan(yAngle)
	return Affine{
		A: 1, B: tanX,
		D: tanY, E: 1,
		XOff: -tanX * yOrigin,
		YOff: -tanY * xOrigin,
	}
}

// AffineTransform applies the transform to every present, non-empty
// geometry. Missing and empty elements pass through unchanged, so the
// degenerate cases behave the same for every transform.
func (o *Ops) AffineTransform(data []Geometry, m Affine) ([]Geometry, error) {
	out := make([]Geometry, len(data))
	for i, g := range data {
		if g.Empty() {
			out[i] = g
			continue
		}
		t, err := transformGeom(g.Geom(), m.apply)
		if err != nil {
			return nil, err
		}
		out[i] = NewGeometry(t)
	}
	return out, nil
}
