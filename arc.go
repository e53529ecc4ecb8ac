package transform

import "math"

// Arc holds the parameters of an elliptical arc path segment:
// rx ry x-axis-rotation large-arc-flag sweep-flag x y.
type Arc struct {
	RX, RY   float64
	Rotation float64 // degrees
	LargeArc bool
	Sweep    bool
	X, Y     float64 // end point, relative to the start point
}

// TransformArc re-fits the ellipse of an arc under the linear part of m and
// returns the arc with new radii, rotation and sweep flag.
//
// The ellipse is written as the matrix rotate(θ)·scale(rx, ry), multiplied
// by m, and decomposed by a closed-form singular value decomposition into
// rotate(θ')·scale(rx', ry')·rotate(φ). Radii too small to reach the end
// point are first scaled up the way renderers do it for the arc command.
//
// The end point is not transformed: it may be relative, and only the caller
// knows whether to apply TransformPoint or TransformVector.
func TransformArc(arc Arc, m Matrix) Arc {
	rx := math.Abs(arc.RX)
	ry := math.Abs(arc.RY)

	if rx != 0 && ry != 0 {
		cos := Cos(arc.Rotation)
		sin := Sin(arc.Rotation)

		// Half chord in the ellipse frame; h > 1 means the radii are too small.
		px := arc.X*cos + arc.Y*sin
		py := arc.Y*cos - arc.X*sin
		h := px*px/(4*rx*rx) + py*py/(4*ry*ry)
		if h > 1 {
			h = math.Sqrt(h)
			rx *= h
			ry *= h
		}

		ellipse := Matrix{A: rx * cos, B: rx * sin, C: -ry * sin, D: ry * cos}
		e := m.Multiply(ellipse)

		lastCol := e.C*e.C + e.D*e.D
		squareSum := e.A*e.A + e.B*e.B + lastCol
		root := math.Sqrt(
			(sq(e.A-e.D) + sq(e.B+e.C)) *
				(sq(e.A+e.D) + sq(e.B-e.C)))

		if root == 0 {
			// circle
			arc.RX = math.Sqrt(squareSum / 2)
			arc.RY = arc.RX
			arc.Rotation = 0
		} else {
			majorAxisSqr := (squareSum + root) / 2
			minorAxisSqr := (squareSum - root) / 2
			major := math.Abs(majorAxisSqr-lastCol) > 1e-6
			sub := minorAxisSqr - lastCol
			if major {
				sub = majorAxisSqr - lastCol
			}
			rowsSum := e.A*e.C + e.B*e.D
			term1 := e.A*sub + e.C*rowsSum
			term2 := e.B*sub + e.D*rowsSum

			arc.RX = math.Sqrt(majorAxisSqr)
			arc.RY = math.Sqrt(math.Max(minorAxisSqr, 0))

			axis, flip := term2, term1 > 0
			if major {
				axis, flip = term1, term2 < 0
			}
			rot := Deg(math.Acos(clampUnit(axis / math.Hypot(term1, term2))))
			if flip {
				rot = -rot
			}
			arc.Rotation = rot
		}
	}

	// Mirroring exactly one axis reverses the direction of the curve.
	if (m.A < 0) != (m.D < 0) {
		arc.Sweep = !arc.Sweep
	}
	return arc
}

func sq(v float64) float64 { return v * v }
