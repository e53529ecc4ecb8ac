package transform

import (
	"math"
	"testing"

	"golang.org/x/image/math/f64"
)

func matrixNear(a, b Matrix, epsilon float64) bool {
	ad, bd := a.Data(), b.Data()
	for i := range ad {
		if math.Abs(ad[i]-bd[i]) > epsilon {
			return false
		}
	}
	return true
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// translate(10, 0) * scale(2): scale first, then translate.
	tr := Matrix{A: 1, D: 1, E: 10}
	sc := Matrix{A: 2, D: 2}

	got := tr.Multiply(sc).TransformPoint(Pt(1, 1))
	if got != Pt(12, 2) {
		t.Errorf("translate*scale (1,1) = %v, want (12,2)", got)
	}
	got = sc.Multiply(tr).TransformPoint(Pt(1, 1))
	if got != Pt(22, 2) {
		t.Errorf("scale*translate (1,1) = %v, want (22,2)", got)
	}
}

func TestMatrixMultiplyIdentity(t *testing.T) {
	m := Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	if got := m.Multiply(Identity()); got != m {
		t.Errorf("m*I = %+v, want %+v", got, m)
	}
	if got := Identity().Multiply(m); got != m {
		t.Errorf("I*m = %+v, want %+v", got, m)
	}
}

func TestMatrixTransformVector(t *testing.T) {
	m := Matrix{A: 2, D: 3, E: 100, F: 100}
	if got := m.TransformVector(Pt(1, 1)); got != Pt(2, 3) {
		t.Errorf("TransformVector() = %v, want (2,3)", got)
	}
}

func TestMatrixInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"translate", Matrix{A: 1, D: 1, E: 10, F: -5}},
		{"scale", Matrix{A: 2, D: 0.5}},
		{"rotate 30", Rotate(30).Matrix()},
		{"general", Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Multiply(tt.m.Invert())
			if !matrixNear(got, Identity(), 1e-12) {
				t.Errorf("m * m.Invert() = %+v, want identity", got)
			}
		})
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	m := Matrix{A: 1, B: 2, C: 2, D: 4}
	if got := m.Invert(); !got.IsIdentity() {
		t.Errorf("singular Invert() = %+v, want identity", got)
	}
}

func TestMatrixIsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if (Matrix{A: 1, D: 1, F: 1}).IsIdentity() {
		t.Error("translated matrix reported as identity")
	}
}

func TestMatrixIsFinite(t *testing.T) {
	if !Identity().IsFinite() {
		t.Error("Identity().IsFinite() = false")
	}
	if (Matrix{A: math.NaN(), D: 1}).IsFinite() {
		t.Error("NaN matrix reported finite")
	}
	if (Matrix{A: 1, D: 1, E: math.Inf(-1)}).IsFinite() {
		t.Error("Inf matrix reported finite")
	}
}

func TestMatrixOf(t *testing.T) {
	tests := []struct {
		name string
		data []float64
		want Matrix
	}{
		{"full", []float64{1, 2, 3, 4, 5, 6}, Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}},
		{"empty", nil, Identity()},
		{"short", []float64{2, 0, 0, 2}, Matrix{A: 2, D: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatrixOf(tt.data); got != tt.want {
				t.Errorf("MatrixOf(%v) = %+v, want %+v", tt.data, got, tt.want)
			}
		})
	}
}

func TestMatrixAff3(t *testing.T) {
	m := Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	want := f64.Aff3{1, 3, 5, 2, 4, 6}
	if got := m.Aff3(); got != want {
		t.Errorf("Aff3() = %v, want %v", got, want)
	}
	if got := FromAff3(want); got != m {
		t.Errorf("FromAff3() = %+v, want %+v", got, m)
	}
}

func TestMatrixDeterminant(t *testing.T) {
	m := Matrix{A: 2, B: 1, C: 3, D: 4}
	if got := m.Determinant(); got != 5 {
		t.Errorf("Determinant() = %v, want 5", got)
	}
}
