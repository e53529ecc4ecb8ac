package transform

// Matrix compiles the primitive into its affine matrix.
//
// Omitted arguments take their attribute defaults: ty = 0, sy = sx,
// cx = cy = 0. A primitive without its mandatory first argument compiles
// to the identity.
func (p Primitive) Matrix() Matrix {
	if p.Kind == KindMatrix {
		return MatrixOf(p.Data)
	}
	if len(p.Data) == 0 {
		return Identity()
	}

	switch p.Kind {
	case KindTranslate:
		// [1, 0, 0, 1, tx, ty]
		return Matrix{A: 1, D: 1, E: p.Data[0], F: p.arg(1, 0)}
	case KindScale:
		// [sx, 0, 0, sy, 0, 0]
		return Matrix{A: p.Data[0], D: p.arg(1, p.Data[0])}
	case KindRotate:
		// [cos, sin, -sin, cos, x, y]; the translation folds in the
		// optional center of rotation.
		cos := Cos(p.Data[0])
		sin := Sin(p.Data[0])
		cx := p.arg(1, 0)
		cy := p.arg(2, 0)
		return Matrix{
			A: cos, B: sin,
			C: -sin, D: cos,
			E: (1-cos)*cx + sin*cy,
			F: (1-cos)*cy - sin*cx,
		}
	case KindSkewX:
		// [1, 0, tan, 1, 0, 0]
		return Matrix{A: 1, C: Tan(p.Data[0]), D: 1}
	case KindSkewY:
		// [1, tan, 0, 1, 0, 0]
		return Matrix{A: 1, B: Tan(p.Data[0]), D: 1}
	}
	return Identity()
}

// Compose multiplies a transform list into a single matrix primitive.
// The list is applied in text order, so Compose([A, B]) is A * B.
// An empty list yields a matrix primitive with no data.
func Compose(ps []Primitive) Primitive {
	if len(ps) == 0 {
		return Primitive{Kind: KindMatrix}
	}
	m := ps[0].Matrix()
	for _, p := range ps[1:] {
		m = m.Multiply(p.Matrix())
	}
	return MatrixPrimitive(m)
}
