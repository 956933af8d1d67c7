package spectral

import (
	"math"
	"math/cmplx"
	"testing"

	"spectre/pkg/fft"
)

func newTestField(n int) *Field {
	return NewField(n, fft.NewProcessor())
}

// TestRoundTripFFT checks property 1 from spec.md §8: position -> momentum ->
// position returns the original values to within 1e-10 relative error.
func TestRoundTripFFT(t *testing.T) {
	n := 8
	f := newTestField(n)

	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				f.Set(x, y, z, math.Sin(float64(x))+math.Cos(float64(y))*float64(z+1))
			}
		}
	}

	original := append([]float64(nil), f.PositionData()...)

	if err := f.SwitchState(Momentum); err != nil {
		t.Fatalf("SwitchState(Momentum) failed: %v", err)
	}
	if f.State() != Momentum {
		t.Fatalf("expected Momentum state, got %v", f.State())
	}
	if err := f.SwitchState(Position); err != nil {
		t.Fatalf("SwitchState(Position) failed: %v", err)
	}

	for i, want := range original {
		got := f.PositionData()[i]
		if math.Abs(got-want) > 1e-10*math.Max(1, math.Abs(want)) {
			t.Errorf("index %d: expected %v, got %v", i, want, got)
		}
	}
}

// TestIdempotentSwitchState checks property 6: switching to the current
// state must not alter the data.
func TestIdempotentSwitchState(t *testing.T) {
	n := 4
	f := newTestField(n)
	f.Set(1, 2, 3, 42.0)

	if err := f.SwitchState(Position); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.At(1, 2, 3) != 42.0 {
		t.Errorf("idempotent switch altered data")
	}
}

// TestAccessInWrongStatePanics checks that the container detects use in the
// wrong representation rather than silently returning garbage.
func TestAccessInWrongStatePanics(t *testing.T) {
	n := 4
	f := newTestField(n)

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic reading momentum data while in position state")
		}
	}()
	f.AtMomentum(0, 0, 0)
}

// TestConstantFieldHasOnlyDCMode exercises the Hermitian packing directly:
// a constant field's only nonzero mode is (0,0,0).
func TestConstantFieldHasOnlyDCMode(t *testing.T) {
	n := 8
	f := newTestField(n)
	for i := range f.PositionData() {
		f.PositionData()[i] = 3.0
	}

	if err := f.SwitchState(Momentum); err != nil {
		t.Fatalf("SwitchState failed: %v", err)
	}

	nz := NzHalf(n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < nz; z++ {
				v := f.AtMomentum(x, y, z)
				if x == 0 && y == 0 && z == 0 {
					continue
				}
				if cmplx.Abs(v) > 1e-6 {
					t.Errorf("mode (%d,%d,%d) expected ~0, got %v", x, y, z, v)
				}
			}
		}
	}
}

func TestCenteredFreq(t *testing.T) {
	n := 8
	cases := map[int]int{0: 0, 1: 1, 4: 4, 5: -3, 7: -1}
	for i, want := range cases {
		if got := CenteredFreq(n, i); got != want {
			t.Errorf("CenteredFreq(%d, %d) = %d, want %d", n, i, got, want)
		}
	}
}

func TestParity(t *testing.T) {
	n := 8
	if Parity(n, 0) != 1 {
		t.Errorf("Parity at z=0 should be 1")
	}
	if Parity(n, n/2) != 1 {
		t.Errorf("Parity at z=n/2 should be 1")
	}
	if Parity(n, 3) != 2 {
		t.Errorf("Parity at interior z should be 2")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	n := 4
	f := newTestField(n)
	f.Set(0, 0, 0, 1.0)

	clone := f.Clone()
	clone.Set(0, 0, 0, 2.0)

	if f.At(0, 0, 0) != 1.0 {
		t.Errorf("mutating clone affected original")
	}
}
