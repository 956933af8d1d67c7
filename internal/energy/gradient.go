package energy

import (
	"spectre/internal/kernel"
	"spectre/internal/spectral"
	"spectre/internal/spectreerr"
)

// GradientAccumulator computes the volume-averaged squared gradient of a
// field directly from its momentum-space representation, per spec.md §4.4's
// mode-space identity.
type GradientAccumulator struct {
	dp float64
}

// NewGradientAccumulator builds an accumulator for a grid with momentum
// spacing dp (2*pi/L in program units).
func NewGradientAccumulator(dp float64) *GradientAccumulator {
	return &GradientAccumulator{dp: dp}
}

// Accumulate returns <|grad f|^2> = (1/V^2) * sum_k |k|^2 |f_hat(k)|^2,
// summed over all physical modes. f must be in momentum state. Because only
// the z in [0, N/2] half of the Hermitian-symmetric grid is stored, modes
// with z strictly between 0 and N/2 represent two physical modes and are
// doubled; z == 0 and z == N/2 contribute once.
func (g *GradientAccumulator) Accumulate(f *spectral.Field) (float64, error) {
	if f.State() != spectral.Momentum {
		return 0, spectreerr.New(spectreerr.Precondition, "gradient accumulator requires field in momentum state")
	}

	n := f.N()
	nz := spectral.NzHalf(n)
	data := f.MomentumData()
	dp2 := g.dp * g.dp

	total := kernel.Reduce(n*n*nz, kernel.Workers(), func(idx int) float64 {
		x, y, z := spectral.ModeCoords(n, idx)

		px := float64(spectral.CenteredFreq(n, x))
		py := float64(spectral.CenteredFreq(n, y))
		pz := float64(z)
		k2 := dp2 * (px*px + py*py + pz*pz)

		v := data[idx]
		mag2 := real(v)*real(v) + imag(v)*imag(v)
		return spectral.Parity(n, z) * k2 * mag2
	})

	return NormalizeByGridpoints2(total, n), nil
}

// NormalizeByGridpoints2 applies spec.md §4.4's (1/V^2) normalization, V
// being the total gridpoint count N^3. Exported for the Verlet integrator's
// inline kick-drift gradient accumulation (spec.md §4.6), which sums the
// same per-mode quantity without a separate momentum-space pass.
func NormalizeByGridpoints2(sum float64, n int) float64 {
	total := float64(n) * float64(n) * float64(n)
	return sum / (total * total)
}
