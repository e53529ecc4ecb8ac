package transform

import (
	"math"
	"testing"
)

func TestPrimitiveMatrix(t *testing.T) {
	const epsilon = 1e-12
	s30, c30, t30 := math.Sin(math.Pi/6), math.Cos(math.Pi/6), math.Tan(math.Pi/6)

	tests := []struct {
		name string
		p    Primitive
		want Matrix
	}{
		{"matrix", Primitive{Kind: KindMatrix, Data: []float64{1, 2, 3, 4, 5, 6}}, Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}},
		{"translate xy", Translate(10, 20), Matrix{A: 1, D: 1, E: 10, F: 20}},
		{"translate x", Primitive{Kind: KindTranslate, Data: []float64{10}}, Matrix{A: 1, D: 1, E: 10}},
		{"scale uniform", Primitive{Kind: KindScale, Data: []float64{2}}, Matrix{A: 2, D: 2}},
		{"scale xy", Scale(2, 3), Matrix{A: 2, D: 3}},
		{"rotate", Rotate(30), Matrix{A: c30, B: s30, C: -s30, D: c30}},
		{"rotate around", RotateAround(30, 10, 20), Matrix{
			A: c30, B: s30, C: -s30, D: c30,
			E: (1-c30)*10 + s30*20,
			F: (1-c30)*20 - s30*10,
		}},
		{"skewX", SkewX(30), Matrix{A: 1, C: t30, D: 1}},
		{"skewY", SkewY(30), Matrix{A: 1, B: t30, D: 1}},
		{"no data", Primitive{Kind: KindRotate}, Identity()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Matrix(); !matrixNear(got, tt.want, epsilon) {
				t.Errorf("%v.Matrix() = %+v, want %+v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRotateAroundKeepsCenter(t *testing.T) {
	m := RotateAround(90, 10, 20).Matrix()
	got := m.TransformPoint(Pt(10, 20))
	if math.Abs(got.X-10) > 1e-12 || math.Abs(got.Y-20) > 1e-12 {
		t.Errorf("center maps to %v, want (10,20)", got)
	}
}

func TestComposeEmpty(t *testing.T) {
	got := Compose(nil)
	if got.Kind != KindMatrix || len(got.Data) != 0 {
		t.Errorf("Compose(nil) = %v, want empty matrix", got)
	}
}

func TestComposeAssociative(t *testing.T) {
	a := Translate(10, 50)
	b := Scale(2, 2)
	c := Rotate(-45)

	got := MatrixOf(Compose([]Primitive{a, b, c}).Data)
	want := a.Matrix().Multiply(b.Matrix()).Multiply(c.Matrix())
	if !matrixNear(got, want, 1e-12) {
		t.Errorf("Compose([A,B,C]) = %+v, want %+v", got, want)
	}
	right := a.Matrix().Multiply(b.Matrix().Multiply(c.Matrix()))
	if !matrixNear(got, right, 1e-12) {
		t.Errorf("Compose([A,B,C]) = %+v, want A*(B*C) = %+v", got, right)
	}
}

func TestComposeTagsMatrix(t *testing.T) {
	got := Compose([]Primitive{Translate(1, 2)})
	if got.Kind != KindMatrix {
		t.Errorf("Compose().Kind = %v, want matrix", got.Kind)
	}
	if want := []float64{1, 0, 0, 1, 1, 2}; MatrixOf(got.Data) != MatrixOf(want) {
		t.Errorf("Compose().Data = %v, want %v", got.Data, want)
	}
}
