// Package initcond builds initial field configurations from vacuum or
// thermal mode spectra, the auxiliary "initialization from thermal/vacuum
// mode spectra" facility spec.md §1 names as an external collaborator of
// the core.
//
// Unlike the teacher's InitializeParticles (internal/physics/particle_initialization.go),
// which reads the package-global math/rand source seeded once in main.go,
// every function here takes an explicit *rand.Rand so a run is reproducible
// for a fixed seed.
package initcond

import (
	"fmt"
	"math"
	"math/rand"

	"spectre/internal/spectral"
	"spectre/internal/spectreerr"
)

// VacuumMode sets f to a single nonzero mode at (x, y, z) with the given
// complex amplitude, leaving every other stored mode at zero. This is the
// configuration spec.md §8 scenario S4 exercises: "vacuum initial φ with
// unit amplitude in a single mode". f ends in momentum state; z must lie in
// the stored half [0, N/2].
func VacuumMode(f *spectral.Field, x, y, z int, amplitude complex128) error {
	if f.State() == spectral.Position {
		if err := f.SwitchState(spectral.Momentum); err != nil {
			return err
		}
	}
	nz := spectral.NzHalf(f.N())
	if z < 0 || z >= nz {
		return spectreerr.New(spectreerr.Precondition, fmt.Sprintf("vacuum mode z=%d must lie in stored half [0,%d]", z, nz-1))
	}
	f.SetMomentum(x, y, z, amplitude)
	return nil
}

// Thermal populates every stored mode of f with a Rayleigh-distributed
// amplitude and uniform random phase, consistent with a thermal (Bose-
// Einstein) occupation number at the given temperature and field mass, using
// rng for all randomness. f ends in momentum state.
//
// Each mode's target variance is sigma_k^2 = (2*n_k+1)/(2*omega_k), where
// n_k = 1/(exp(omega_k/T)-1) is the thermal occupation number and the "+1"
// is the zero-point (vacuum) contribution; the real and imaginary parts are
// drawn independently from N(0, sigma_k/sqrt(2)) so their combined magnitude
// follows the Rayleigh distribution with that variance.
func Thermal(f *spectral.Field, mass, dp, temperature float64, rng *rand.Rand) error {
	if temperature < 0 {
		return spectreerr.New(spectreerr.Precondition, "thermal initializer requires non-negative temperature")
	}
	if f.State() == spectral.Position {
		if err := f.SwitchState(spectral.Momentum); err != nil {
			return err
		}
	}

	n := f.N()
	nz := spectral.NzHalf(n)

	for x := 0; x < n; x++ {
		px := float64(spectral.CenteredFreq(n, x))
		for y := 0; y < n; y++ {
			py := float64(spectral.CenteredFreq(n, y))
			for z := 0; z < nz; z++ {
				pz := float64(z)
				k2 := dp * dp * (px*px + py*py + pz*pz)
				omega := math.Sqrt(k2 + mass*mass)
				if omega == 0 {
					f.SetMomentum(x, y, z, 0)
					continue
				}

				occupation := 0.0
				if temperature > 0 {
					occupation = 1 / (math.Exp(omega/temperature) - 1)
				}
				sigma := math.Sqrt((2*occupation + 1) / (2 * omega))
				stddev := sigma / math.Sqrt2

				re := rng.NormFloat64() * stddev
				im := rng.NormFloat64() * stddev
				f.SetMomentum(x, y, z, complex(re, im))
			}
		}
	}
	return nil
}
