// Package spectral implements the dual-representation field container:
// spec.md §3-4.1's single owner of an N^3 real array and its Hermitian-
// symmetric N*N*(N/2+1) complex counterpart, with exactly one representation
// "live" at a time and an explicit switch_state transform between them. The
// two representations use separate slices; a switch allocates the target
// slice and releases the source one.
package spectral

import (
	"fmt"
	"math/cmplx"

	"spectre/internal/spectreerr"
	"spectre/pkg/fft"
)

// State records which of the two representations currently holds valid data.
type State int

const (
	// Position is the real-space representation, R[N,N,N].
	Position State = iota
	// Momentum is the Hermitian-packed momentum-space representation.
	Momentum
)

// String renders the state for diagnostics and panic messages.
func (s State) String() string {
	switch s {
	case Position:
		return "position"
	case Momentum:
		return "momentum"
	default:
		return "unknown"
	}
}

// Field owns one real-valued N^3 lattice and its Hermitian-symmetric
// momentum-space counterpart. Only one representation is valid at a time;
// reading or writing the other is a precondition violation and panics
// immediately, per spec.md §7 ("fail fast and terminate with a diagnostic").
type Field struct {
	n     int
	state State
	pos   []float64    // valid iff state == Position, length n^3
	mom   []complex128 // valid iff state == Momentum, length n*n*(n/2+1)
	proc  fft.Processor
}

// NewField allocates a field of size n^3 in the Position state, zero-filled.
func NewField(n int, proc fft.Processor) *Field {
	return &Field{
		n:     n,
		state: Position,
		pos:   make([]float64, n*n*n),
		proc:  proc,
	}
}

// N returns the lattice size.
func (f *Field) N() int { return f.n }

// State returns the currently live representation.
func (f *Field) State() State { return f.state }

// NzHalf returns n/2+1, the number of stored z-modes in the momentum
// representation.
func NzHalf(n int) int { return n/2 + 1 }

// PosIndex computes the row-major linear index of (x,y,z) in the position
// array, per spec.md §6.
func PosIndex(n, x, y, z int) int { return z + n*(y+n*x) }

// MomIndex computes the row-major linear index of (x,y,z) in the Hermitian-
// packed momentum array, per spec.md §6.
func MomIndex(n, x, y, z int) int {
	nz := NzHalf(n)
	return z + nz*(y+n*x)
}

// ModeCoords decomposes a flat index into the momentum-array's (x,y,z)
// grid-major flat layout back into its (x,y,z) coordinates.
func ModeCoords(n, idx int) (x, y, z int) {
	nz := NzHalf(n)
	x = idx / (n * nz)
	rem := idx % (n * nz)
	y = rem / nz
	z = rem % nz
	return
}

// CenteredFreq maps a raw grid index in [0,n) to the centered frequency used
// for momentum-magnitude calculations: i for i <= n/2, else i-n.
func CenteredFreq(n, i int) int {
	if i <= n/2 {
		return i
	}
	return i - n
}

// Parity returns the reduction multiplicity of a stored z-mode: 1 for
// z in {0, n/2} (self-conjugate planes), 2 otherwise (the stored mode stands
// in for two physical modes).
func Parity(n, z int) float64 {
	if z == 0 || z == n/2 {
		return 1
	}
	return 2
}

// requirePosition panics if the field is not currently in the position
// representation.
func (f *Field) requirePosition(op string) {
	if f.state != Position {
		panic(fmt.Sprintf("spectral: %s requires position state, field is in %s state", op, f.state))
	}
}

// requireMomentum panics if the field is not currently in the momentum
// representation.
func (f *Field) requireMomentum(op string) {
	if f.state != Momentum {
		panic(fmt.Sprintf("spectral: %s requires momentum state, field is in %s state", op, f.state))
	}
}

// At reads a position-space value. Panics if the field is not in Position
// state.
func (f *Field) At(x, y, z int) float64 {
	f.requirePosition("At")
	return f.pos[PosIndex(f.n, x, y, z)]
}

// Set writes a position-space value. Panics if the field is not in Position
// state.
func (f *Field) Set(x, y, z int, v float64) {
	f.requirePosition("Set")
	f.pos[PosIndex(f.n, x, y, z)] = v
}

// AtMomentum reads a momentum-space mode. Panics if the field is not in
// Momentum state.
func (f *Field) AtMomentum(x, y, z int) complex128 {
	f.requireMomentum("AtMomentum")
	return f.mom[MomIndex(f.n, x, y, z)]
}

// SetMomentum writes a momentum-space mode. Panics if the field is not in
// Momentum state.
func (f *Field) SetMomentum(x, y, z int, v complex128) {
	f.requireMomentum("SetMomentum")
	f.mom[MomIndex(f.n, x, y, z)] = v
}

// PositionData returns the backing position-space slice for bulk access.
// Panics if the field is not in Position state. The returned slice aliases
// the field's storage; callers must not retain it past the next SwitchState.
func (f *Field) PositionData() []float64 {
	f.requirePosition("PositionData")
	return f.pos
}

// MomentumData returns the backing momentum-space slice for bulk access.
// Panics if the field is not in Momentum state. The returned slice aliases
// the field's storage; callers must not retain it past the next SwitchState.
func (f *Field) MomentumData() []complex128 {
	f.requireMomentum("MomentumData")
	return f.mom
}

// SwitchState moves the live representation to target. It is a no-op if the
// field is already in target (spec.md §4.1, "idempotent state switch"),
// otherwise it performs the R2C or C2R transform into a newly allocated slice
// for the target representation and releases the old one. A panic from the
// underlying FFT backend is recovered and reported as a TransformFailure,
// per spec.md §7.
func (f *Field) SwitchState(target State) (err error) {
	if f.state == target {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = spectreerr.New(spectreerr.TransformFailure, fmt.Sprintf("spectral: transform backend failure: %v", r))
		}
	}()

	switch target {
	case Momentum:
		full := fft.FFT3D(f.proc, f.pos, f.n)
		f.mom = packHermitian(full, f.n)
		f.pos = nil
	case Position:
		full := unpackHermitian(f.mom, f.n)
		f.pos = fft.IFFT3DReal(f.proc, full, f.n)
		f.mom = nil
	default:
		return fmt.Errorf("spectral: unknown target state %v", target)
	}
	f.state = target
	return nil
}

// Clone returns a deep, independent copy of the field in its current state.
func (f *Field) Clone() *Field {
	clone := &Field{n: f.n, state: f.state, proc: f.proc}
	if f.pos != nil {
		clone.pos = append([]float64(nil), f.pos...)
	}
	if f.mom != nil {
		clone.mom = append([]complex128(nil), f.mom...)
	}
	return clone
}

// packHermitian keeps only the z in [0, n/2] half of a full complex cube,
// the half spec.md §6 says is all that needs storing.
func packHermitian(full [][][]complex128, n int) []complex128 {
	nz := NzHalf(n)
	out := make([]complex128, n*n*nz)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < nz; z++ {
				out[MomIndex(n, x, y, z)] = full[x][y][z]
			}
		}
	}
	return out
}

// unpackHermitian reconstructs the full complex cube from the stored half by
// conjugate symmetry: f(-k) = conj(f(k)).
func unpackHermitian(half []complex128, n int) [][][]complex128 {
	nz := NzHalf(n)
	full := make([][][]complex128, n)
	for x := 0; x < n; x++ {
		full[x] = make([][]complex128, n)
		for y := 0; y < n; y++ {
			full[x][y] = make([]complex128, n)
			for z := 0; z < nz; z++ {
				full[x][y][z] = half[MomIndex(n, x, y, z)]
			}
		}
	}
	for x := 0; x < n; x++ {
		xr := (n - x) % n
		for y := 0; y < n; y++ {
			yr := (n - y) % n
			for z := nz; z < n; z++ {
				zr := n - z
				full[x][y][z] = cmplx.Conj(full[xr][yr][zr])
			}
		}
	}
	return full
}
