package slice

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeTestSnapshot(t *testing.T, n int, fill func(x, y, z int) float64) string {
	t.Helper()
	buf := make([]byte, 8*n*n*n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				idx := z + n*(y+n*x)
				binary.LittleEndian.PutUint64(buf[idx*8:], math.Float64bits(fill(x, y, z)))
			}
		}
	}
	path := filepath.Join(t.TempDir(), "phi_00001.bin")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("writing test snapshot: %v", err)
	}
	return path
}

func TestLoadRoundTripsValues(t *testing.T) {
	n := 4
	path := writeTestSnapshot(t, n, func(x, y, z int) float64 { return float64(x + 10*y + 100*z) })

	grid, err := Load(path, n)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if grid.At(1, 2, 3) != 321 {
		t.Errorf("At(1,2,3) = %v, want 321", grid.At(1, 2, 3))
	}
}

func TestLoadRejectsWrongSize(t *testing.T) {
	path := writeTestSnapshot(t, 4, func(x, y, z int) float64 { return 0 })
	if _, err := Load(path, 8); err == nil {
		t.Errorf("expected error loading a size-4 snapshot as N=8")
	}
}

func TestZSliceExtractsPlane(t *testing.T) {
	n := 3
	path := writeTestSnapshot(t, n, func(x, y, z int) float64 { return float64(x + 10*y + 100*z) })
	grid, err := Load(path, n)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	plane := grid.ZSlice(1)
	if plane[1+n*2] != 100+10*1+2 {
		t.Errorf("ZSlice(1)[x=2,y=1] = %v, want %v", plane[1+n*2], 100+10*1+2)
	}
}

func TestBoundsFindsMinMax(t *testing.T) {
	n := 2
	path := writeTestSnapshot(t, n, func(x, y, z int) float64 { return float64(x + 10*y + 100*z) })
	grid, err := Load(path, n)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	min, max := grid.Bounds()
	if min != 0 || max != 111 {
		t.Errorf("Bounds() = (%v,%v), want (0,111)", min, max)
	}
}
