// Package fft wraps github.com/mjibson/go-dsp/fft with the transform shapes
// the lattice field solver needs: 1D complex passes, and a 3D transform of a
// cubic grid built out of three successive 1D passes (one per axis), the same
// separable technique the original 2D wrapper used to get a 2D transform out
// of a 1D primitive.
package fft

import (
	"github.com/mjibson/go-dsp/fft"
)

// Processor defines the interface for FFT operations. A single 1D primitive
// is all the rest of this package needs; keeping it as an interface (rather
// than calling github.com/mjibson/go-dsp/fft directly from Field) means a
// different backend can be swapped in without touching the lattice code.
type Processor interface {
	FFT1D(input []complex128) []complex128
	IFFT1D(input []complex128) []complex128
}

// CPUProcessor implements Processor using the CPU-bound go-dsp library.
type CPUProcessor struct{}

// NewProcessor creates the default FFT processor.
func NewProcessor() Processor {
	return CPUProcessor{}
}

// FFT1D performs one-dimensional FFT.
func (CPUProcessor) FFT1D(input []complex128) []complex128 {
	return fft.FFT(input)
}

// IFFT1D performs one-dimensional inverse FFT, normalized by len(input).
func (CPUProcessor) IFFT1D(input []complex128) []complex128 {
	return fft.IFFT(input)
}

// FFT3D performs a forward 3D DFT of an N*N*N cubic real lattice (row-major,
// index z+N*(y+N*x)) by three successive 1D passes along z, y, then x, and
// returns the full, unpacked complex spectrum as cube[x][y][z]. The caller is
// responsible for keeping only the Hermitian half if that is all it needs to
// store; this function always produces the complete cube since go-dsp has no
// real-input primitive to exploit the symmetry internally.
func FFT3D(proc Processor, data []float64, n int) [][][]complex128 {
	cube := make([][][]complex128, n)
	for x := 0; x < n; x++ {
		cube[x] = make([][]complex128, n)
		for y := 0; y < n; y++ {
			row := make([]complex128, n)
			base := n * (y + n*x)
			for z := 0; z < n; z++ {
				row[z] = complex(data[base+z], 0)
			}
			cube[x][y] = proc.FFT1D(row)
		}
	}

	line := make([]complex128, n)
	for x := 0; x < n; x++ {
		for z := 0; z < n; z++ {
			for y := 0; y < n; y++ {
				line[y] = cube[x][y][z]
			}
			res := proc.FFT1D(line)
			for y := 0; y < n; y++ {
				cube[x][y][z] = res[y]
			}
		}
	}

	for y := 0; y < n; y++ {
		for z := 0; z < n; z++ {
			for x := 0; x < n; x++ {
				line[x] = cube[x][y][z]
			}
			res := proc.FFT1D(line)
			for x := 0; x < n; x++ {
				cube[x][y][z] = res[x]
			}
		}
	}

	return cube
}

// IFFT3DReal performs the inverse of FFT3D given a full (unpacked) spectrum
// and returns the real part of the result as a flattened N*N*N row-major
// slice. Each of the three 1D passes normalizes by N, so the composite
// transform normalizes by N^3 overall, matching FFT3D's unnormalized forward
// convention.
func IFFT3DReal(proc Processor, cube [][][]complex128, n int) []float64 {
	line := make([]complex128, n)
	for y := 0; y < n; y++ {
		for z := 0; z < n; z++ {
			for x := 0; x < n; x++ {
				line[x] = cube[x][y][z]
			}
			res := proc.IFFT1D(line)
			for x := 0; x < n; x++ {
				cube[x][y][z] = res[x]
			}
		}
	}

	for x := 0; x < n; x++ {
		for z := 0; z < n; z++ {
			for y := 0; y < n; y++ {
				line[y] = cube[x][y][z]
			}
			res := proc.IFFT1D(line)
			for y := 0; y < n; y++ {
				cube[x][y][z] = res[y]
			}
		}
	}

	out := make([]float64, n*n*n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			res := proc.IFFT1D(cube[x][y])
			base := n * (y + n*x)
			for z := 0; z < n; z++ {
				out[base+z] = real(res[z])
			}
		}
	}
	return out
}
