package energy

import (
	"spectre/internal/kernel"
	"spectre/internal/spectral"
)

// TotalEnergyDensity computes the volume-averaged total energy density
// rho = <0.5*phidot^2 + 0.5*chidot^2> + <|grad phi|^2>/a^2 + <|grad chi|^2>/a^2 + <V>,
// the quantity the snapshot sink exposes on demand (spec.md §4.7). phidot and
// chidot are momentum-space velocity mode arrays (chidot may be nil); their
// volume-averaged squared magnitude equals the position-space average of
// phidot^2 by Parseval's theorem, using the same parity-corrected half-grid
// sum the gradient accumulator relies on.
func TotalEnergyDensity(n int, phidot, chidot []complex128, gradPhi2, gradChi2, meanV, a float64) float64 {
	kinetic := 0.5 * meanSquareMagnitude(n, phidot)
	if chidot != nil {
		kinetic += 0.5 * meanSquareMagnitude(n, chidot)
	}
	return kinetic + (gradPhi2+gradChi2)/(a*a) + meanV
}

func meanSquareMagnitude(n int, modes []complex128) float64 {
	if len(modes) == 0 {
		return 0
	}
	sum := kernel.Reduce(len(modes), kernel.Workers(), func(i int) float64 {
		_, _, z := spectral.ModeCoords(n, i)
		return spectral.Parity(n, z) * (real(modes[i])*real(modes[i]) + imag(modes[i])*imag(modes[i]))
	})
	return NormalizeByGridpoints2(sum, n)
}
