package transform

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateMatrix is returned by Decompose for a matrix whose linear
// part collapses an axis (a zero scale factor) or holds non-finite values.
// Such a matrix has no translate/rotate/skew/scale form.
var ErrDegenerateMatrix = errors.New("transform: degenerate matrix")

// Decompose converts a matrix into an equivalent list of simple primitives,
// following the closed-form decomposition
// translate · rotate | skew · scale of the 2x2 linear part.
//
// Scale factors are rounded to the transform precision and recovered angles
// to the float precision (see WithTransformPrecision, WithFloatPrecision).
//
// The result takes one of three shapes:
//   - an empty list for the identity;
//   - one or more translate, scale, rotate, skewX and skewY primitives;
//   - the single matrix primitive itself, when both off-diagonal entries are
//     set and the matrix combines rotation, skew and a non-unit scale, so any
//     decomposition would be longer than the matrix.
//
// Reflections are carried by negative scale factors, so the result
// recomposes to m including the sign of its determinant.
//
// Whether scale is emitted before or after the rotation is decided by a
// heuristic on the matrix rows; it favors short output but is not an
// exhaustive search for the global minimum.
func Decompose(m Matrix, opts ...Option) ([]Primitive, error) {
	o := resolveOptions(opts)

	if !m.IsFinite() {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateMatrix, m.Data())
	}

	// hx and det/hx are the exact scale factors; sx and sy are their rounded
	// forms used for comparisons and output only.
	det := m.Determinant()
	hx := math.Hypot(m.A, m.B)
	sx := Round(hx, o.transformPrecision)
	if sx == 0 {
		Logger().Debug("transform: zero x scale", "matrix", m.Data())
		return nil, fmt.Errorf("%w: %v", ErrDegenerateMatrix, m.Data())
	}
	sy := Round(det/hx, o.transformPrecision)
	if sy == 0 {
		Logger().Debug("transform: zero y scale", "matrix", m.Data())
		return nil, fmt.Errorf("%w: %v", ErrDegenerateMatrix, m.Data())
	}

	colsSum := nearZero(m.A*m.C+m.B*m.D, m)
	rowsSum := nearZero(m.A*m.B+m.C*m.D, m)
	scaleBefore := rowsSum != 0 || sx == sy
	translated := m.E != 0 || m.F != 0

	var ps []Primitive
	if translated {
		ps = append(ps, Translate(m.E, m.F))
	}

	switch {
	case m.B == 0 && m.C != 0:
		// [sx, 0, tan(a)·sy, sy, 0, 0] → skewX(a)·scale(sx, sy)
		ps = append(ps, SkewX(Atan(m.C/m.D, o.floatPrecision)))
		sx, sy = Round(m.A, o.transformPrecision), Round(m.D, o.transformPrecision)

	case m.B != 0 && m.C == 0:
		// [sx, sx·tan(a), 0, sy, 0, 0] → skewY(a)·scale(sx, sy)
		ps = append(ps, SkewY(Atan(m.B/m.A, o.floatPrecision)))
		sx, sy = Round(m.A, o.transformPrecision), Round(m.D, o.transformPrecision)

	case colsSum == 0 || (sx == 1 && sy == 1) || !scaleBefore:
		// [sx·cos, sx·sin, ..., ..., x, y] → rotate(a[, cx, cy])·[skewX(k)]·scale(sx, sy)
		// [sx·cos, sy·sin, sx·-sin, sy·cos, x, y] → scale(sx, sy)·rotate(a[, cx, cy])
		rx, ry := hx, det/hx
		cos, sin := m.A/rx, m.B/rx
		if !scaleBefore {
			rx = math.Copysign(math.Hypot(m.A, m.C), signOf(m.A))
			ry = det / rx
			cos, sin = m.A/rx, m.B/ry
			sx = Round(rx, o.transformPrecision)
			sy = Round(ry, o.transformPrecision)
			if sx != 1 || sy != 1 {
				ps = append(ps, Scale(sx, sy))
			}
		}

		angle := Round(Deg(math.Atan2(sin, cos)), o.floatPrecision)
		if angle == -180 {
			angle = 180
		}
		rot := -1
		if angle != 0 {
			rot = len(ps)
			ps = append(ps, Rotate(angle))
		}

		if scaleBefore && colsSum != 0 {
			// The column dot product of rotate·skewX(k)·scale is sx·sy·tan(k).
			if k := Atan(colsSum/det, o.floatPrecision); k != 0 {
				ps = append(ps, SkewX(k))
			}
		}

		// rotate(a, cx, cy) absorbs the leading translate as its center.
		// The center is solved for the rounded angle so the translation
		// survives exactly.
		if rot >= 0 && translated {
			cos, sin := Cos(angle), Sin(angle)
			x, y, k := m.E, m.F, 1.0
			if !scaleBefore {
				x, y, k = m.E*ry, m.F*rx, rx*ry
			}
			denom := ((1-cos)*(1-cos) + sin*sin) * k
			ps[rot].Data = append(ps[rot].Data,
				((1-cos)*x-sin*y)/denom,
				((1-cos)*y+sin*x)/denom,
			)
			ps = ps[1:]
		}

	default:
		Logger().Debug("transform: matrix kept, decomposition is longer", "matrix", m.Data())
		return []Primitive{MatrixPrimitive(m)}, nil
	}

	if scaleBefore && (sx != 1 || sy != 1) {
		ps = append(ps, Scale(sx, sy))
	}
	return ps, nil
}

// DecomposePrimitive decomposes a matrix primitive. Any other primitive is
// returned as is.
func DecomposePrimitive(p Primitive, opts ...Option) ([]Primitive, error) {
	if p.Kind != KindMatrix {
		return []Primitive{p}, nil
	}
	return Decompose(MatrixOf(p.Data), opts...)
}

func signOf(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// nearZero returns 0 for a product of matrix entries that is only rounding
// noise relative to the size of the linear part, and v otherwise.
func nearZero(v float64, m Matrix) float64 {
	if math.Abs(v) <= 1e-12*(m.A*m.A+m.B*m.B+m.C*m.C+m.D*m.D) {
		return 0
	}
	return v
}

// clampUnit keeps a cosine inside [-1, 1]; float error can push a ratio of
// lengths just past the boundary.
func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
