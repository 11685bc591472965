package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestVectorNDot(t *testing.T) {
	a := NewVectorN(1, 2, 3, 4)
	b := NewVectorN(4, 3, 2, 1)

	result, err := a.Dot(b)
	if err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	if result != 20 {
		t.Errorf("Dot failed: expected 20, got %v", result)
	}

	reverse, _ := b.Dot(a)
	if reverse != result {
		t.Errorf("Dot not commutative: %v vs %v", result, reverse)
	}
}

func TestVectorNAddSub(t *testing.T) {
	a := NewVectorN(1, 2, 3, 4)
	b := NewVectorN(4, 3, 2, 1)

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !sum.Equal(NewVectorN(5, 5, 5, 5)) {
		t.Errorf("Add failed: got %v", sum)
	}

	diff, err := a.Sub(b)
	if err != nil {
		t.Fatalf("Sub failed: %v", err)
	}
	if !diff.Equal(NewVectorN(-3, -1, 1, 3)) {
		t.Errorf("Sub failed: got %v", diff)
	}

	// operands are unchanged
	if !a.Equal(NewVectorN(1, 2, 3, 4)) {
		t.Errorf("Add modified its operand: %v", a)
	}
}

func TestVectorNDimensionMismatch(t *testing.T) {
	a := NewVectorN(3, 4)
	b := NewVectorN(2, 3, 1)

	if _, err := a.Add(b); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Add: expected ErrDimensionMismatch, got %v", err)
	}
	if _, err := a.Sub(b); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Sub: expected ErrDimensionMismatch, got %v", err)
	}
	_, err := a.Dot(b)
	var mismatch *DimensionMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Dot: expected *DimensionMismatchError, got %v", err)
	}
	if mismatch.A != 2 || mismatch.B != 3 {
		t.Errorf("unexpected dimensions in error: %+v", mismatch)
	}
}

func TestVectorNNorm(t *testing.T) {
	tests := []struct {
		v        VectorN
		expected float64
	}{
		{NewVectorN(), 0},
		{VectorN{}, 0},
		{NewVectorN(0, 0, 0), 0},
		{NewVectorN(3, 4), 5},
		{NewVectorN(1, 2, 3, 4), math.Sqrt(30)},
		{NewVectorN(-2), 2},
	}

	for _, tt := range tests {
		n := tt.v.Norm()
		if n < 0 {
			t.Errorf("Norm of %v is negative: %v", tt.v, n)
		}
		if math.Abs(n-tt.expected) > 1e-10 {
			t.Errorf("Norm of %v: expected %v, got %v", tt.v, tt.expected, n)
		}
	}
}

func TestVectorNCross(t *testing.T) {
	result, err := NewVectorN(2, 3, 1).Cross(NewVectorN(0.5, 1.25, 2))
	if err != nil {
		t.Fatalf("Cross failed: %v", err)
	}
	if !result.Equal(NewVectorN(4.75, -3.5, 1)) {
		t.Errorf("Cross failed: got %v", result)
	}

	_, err = NewVectorN(1, 2, 3, 4).Cross(NewVectorN(4, 3, 2, 1))
	var invalid *InvalidDimensionError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidDimensionError, got %v", err)
	}
	if invalid.Expected != 3 || invalid.Actual != 4 {
		t.Errorf("unexpected dimensions in error: %+v", invalid)
	}
	if !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("expected errors.Is(err, ErrInvalidDimension)")
	}
}

func TestVectorNNarrowing(t *testing.T) {
	v2, err := NewVectorN(3, 4).AsVector2()
	if err != nil || v2 != NewVector2(3, 4) {
		t.Errorf("AsVector2 failed: %v, %v", v2, err)
	}
	if _, err := NewVectorN(3, 4).AsVector3(); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("AsVector3 on 2-vector: expected ErrInvalidDimension, got %v", err)
	}
}

func TestVectorNComponents(t *testing.T) {
	tests := []struct {
		v      VectorN
		labels []string
	}{
		{NewVectorN(1, 2), []string{"x", "y"}},
		{NewVectorN(1, 2, 3), []string{"x", "y", "z"}},
		{NewVectorN(1, 2, 3, 4), []string{"x0", "x1", "x2", "x3"}},
		{NewVectorN(7), []string{"x0"}},
		{NewVectorN(), []string{}},
	}

	for _, tt := range tests {
		c := tt.v.Components()
		if len(c) != len(tt.labels) {
			t.Fatalf("%v: expected %d components, got %d", tt.v, len(tt.labels), len(c))
		}
		for i := range c {
			if c[i].Label != tt.labels[i] || c[i].Value != tt.v.At(i) {
				t.Errorf("%v: component %d is %v", tt.v, i, c[i])
			}
		}
	}
}

func TestVectorNImmutable(t *testing.T) {
	input := []float64{1, 2, 3}
	v := NewVectorN(input...)
	input[0] = 100

	out := v.Scalars()
	out[1] = 200

	if !v.Equal(NewVectorN(1, 2, 3)) {
		t.Errorf("vector changed through an aliased slice: %v", v)
	}
}

func TestPolymorphicOperations(t *testing.T) {
	sum, err := Add(NewVector2(3, 4), NewVectorN(1, 2))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !sum.Equal(NewVectorN(4, 6)) {
		t.Errorf("Add failed: got %v", sum)
	}

	dot, err := Dot(NewVector3(1, 2, 3), NewVector3(4, 5, 6))
	if err != nil || dot != 32 {
		t.Errorf("Dot failed: %v, %v", dot, err)
	}

	if n := Norm(NewVector2(3, 4)); math.Abs(n-5) > 1e-10 {
		t.Errorf("Norm failed: got %v", n)
	}

	a := NewVector2(3, 4)
	b := NewVector3(2, 3, 1)
	if _, err := Add(a, b); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Add 2D+3D: expected ErrDimensionMismatch, got %v", err)
	}
	if _, err := Sub(a, b); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Sub 2D-3D: expected ErrDimensionMismatch, got %v", err)
	}
	if _, err := Dot(a, b); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Dot 2D.3D: expected ErrDimensionMismatch, got %v", err)
	}
}

func TestVectorNString(t *testing.T) {
	if s := NewVectorN(1, 2.5, -3).String(); s != "VectorN(1, 2.5, -3)" {
		t.Errorf("String failed: got %q", s)
	}
	if s := NewVectorN().String(); s != "VectorN()" {
		t.Errorf("String failed: got %q", s)
	}
}
