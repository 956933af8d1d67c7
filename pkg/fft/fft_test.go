package fft

import (
	"math"
	"math/cmplx"
	"testing"
)

// TestFFTInterface tests the basic FFT interface
func TestFFTInterface(t *testing.T) {
	processor := NewProcessor()
	var _ = processor
}

// TestFFT1D tests one-dimensional FFT
func TestFFT1D(t *testing.T) {
	processor := NewProcessor()

	// Test with a simple signal: [1, 0, 0, 0]
	input := []complex128{1, 0, 0, 0}
	expected := []complex128{1, 1, 1, 1} // FFT of impulse

	result := processor.FFT1D(input)

	if len(result) != len(expected) {
		t.Fatalf("Expected length %d, got %d", len(expected), len(result))
	}

	for i := range result {
		if !complexApproxEqual(result[i], expected[i], 1e-10) {
			t.Errorf("Index %d: expected %v, got %v", i, expected[i], result[i])
		}
	}
}

// TestIFFT1D tests one-dimensional inverse FFT
func TestIFFT1D(t *testing.T) {
	processor := NewProcessor()

	// Test that IFFT(FFT(x)) = x
	input := []complex128{1, 2, 3, 4}

	fftResult := processor.FFT1D(input)
	ifftResult := processor.IFFT1D(fftResult)

	if len(ifftResult) != len(input) {
		t.Fatalf("Expected length %d, got %d", len(input), len(ifftResult))
	}

	for i := range ifftResult {
		if !complexApproxEqual(ifftResult[i], input[i], 1e-10) {
			t.Errorf("Index %d: expected %v, got %v", i, input[i], ifftResult[i])
		}
	}
}

// TestParseval tests Parseval's theorem: sum(|x|^2) = sum(|X|^2)/N
func TestParseval(t *testing.T) {
	processor := NewProcessor()

	input := []complex128{1, 2, 3, 4}

	timeEnergy := 0.0
	for _, v := range input {
		timeEnergy += real(v * cmplx.Conj(v))
	}

	fftResult := processor.FFT1D(input)
	freqEnergy := 0.0
	for _, v := range fftResult {
		freqEnergy += real(v * cmplx.Conj(v))
	}
	freqEnergy /= float64(len(input))

	if math.Abs(timeEnergy-freqEnergy) > 1e-10 {
		t.Errorf("Parseval's theorem violated: time=%v, freq=%v", timeEnergy, freqEnergy)
	}
}

// TestFFT3DRoundTrip verifies IFFT3DReal(FFT3D(x)) == x for a small cube.
func TestFFT3DRoundTrip(t *testing.T) {
	processor := NewProcessor()
	n := 4

	data := make([]float64, n*n*n)
	for i := range data {
		data[i] = math.Sin(float64(i)) * float64(i%5+1)
	}

	spectrum := FFT3D(processor, data, n)
	result := IFFT3DReal(processor, spectrum, n)

	for i := range data {
		if math.Abs(result[i]-data[i]) > 1e-8 {
			t.Errorf("index %d: expected %v, got %v", i, data[i], result[i])
		}
	}
}

// TestFFT3DConstant checks that a constant field has all its energy in the
// DC mode (x=y=z=0), none anywhere else.
func TestFFT3DConstant(t *testing.T) {
	processor := NewProcessor()
	n := 4

	data := make([]float64, n*n*n)
	for i := range data {
		data[i] = 2.0
	}

	spectrum := FFT3D(processor, data, n)

	dc := spectrum[0][0][0]
	if !complexApproxEqual(dc, complex(2.0*float64(n*n*n), 0), 1e-6) {
		t.Errorf("expected DC component %v, got %v", 2.0*float64(n*n*n), dc)
	}

	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				if x == 0 && y == 0 && z == 0 {
					continue
				}
				if cmplx.Abs(spectrum[x][y][z]) > 1e-6 {
					t.Errorf("mode (%d,%d,%d): expected ~0, got %v", x, y, z, spectrum[x][y][z])
				}
			}
		}
	}
}

// Helper function to compare complex numbers with tolerance
func complexApproxEqual(a, b complex128, tolerance float64) bool {
	return cmplx.Abs(a-b) < tolerance
}
