// Package slice loads binary field snapshots and draws one z-slice of them
// as a colored grid in the 3D viewer.
package slice

import (
	"encoding/binary"
	"math"
	"os"

	"spectre/internal/spectral"
	"spectre/internal/spectreerr"
)

// Grid holds one snapshot's position-space values for an N^3 lattice,
// decoded from the headerless little-endian layout snapshot.Sink writes.
type Grid struct {
	N      int
	Values []float64
}

// Load reads a <field>_<index>.bin snapshot file into a Grid.
func Load(path string, n int) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, spectreerr.Wrap(spectreerr.IOFailure, "reading snapshot file", err)
	}
	want := n * n * n
	if len(data) != want*8 {
		return nil, spectreerr.New(spectreerr.IOFailure, "snapshot file size does not match N^3 doubles")
	}

	values := make([]float64, want)
	for i := range values {
		bits := binary.LittleEndian.Uint64(data[i*8:])
		values[i] = math.Float64frombits(bits)
	}
	return &Grid{N: n, Values: values}, nil
}

// At returns the value at lattice coordinate (x,y,z), using the same
// row-major layout the field container uses in position state.
func (g *Grid) At(x, y, z int) float64 {
	return g.Values[spectral.PosIndex(g.N, x, y, z)]
}

// ZSlice extracts the n*n values at a fixed z-plane, row-major in (x,y).
func (g *Grid) ZSlice(z int) []float64 {
	out := make([]float64, g.N*g.N)
	for x := 0; x < g.N; x++ {
		for y := 0; y < g.N; y++ {
			out[y+g.N*x] = g.At(x, y, z)
		}
	}
	return out
}

// Bounds returns the min and max values across the whole grid, used to scale
// the colormap.
func (g *Grid) Bounds() (min, max float64) {
	if len(g.Values) == 0 {
		return 0, 0
	}
	min, max = g.Values[0], g.Values[0]
	for _, v := range g.Values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return
}
