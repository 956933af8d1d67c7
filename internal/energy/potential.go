// Package energy implements the potential integrator and gradient
// accumulator of spec.md §4.3-4.4: the volume-averaged potential energy
// density and the mode-space squared-gradient reduction the scale-factor
// dynamics and Verlet integrator consume each step.
package energy

import (
	"math"

	"spectre/internal/config"
	"spectre/internal/kernel"
	"spectre/internal/spectral"
	"spectre/internal/spectreerr"
)

// PotentialIntegrator computes the volume average of V(phi, chi, a) over the
// lattice. Its terms mirror the force terms of the Klein-Gordon acceleration
// (spec.md §4.6): mass (or mass-damping), quartic self-coupling, quadratic
// cross-coupling, and sextic self-coupling. Only the mass (or mass-damping)
// term carries the a^{2*rescale_r} factor; the quartic, cross and sextic terms
// carry no scale-factor or rescale_A factor.
type PotentialIntegrator struct {
	params *config.ModelParams
}

// NewPotentialIntegrator builds a PotentialIntegrator bound to a fixed set of
// model parameters.
func NewPotentialIntegrator(params *config.ModelParams) *PotentialIntegrator {
	return &PotentialIntegrator{params: params}
}

// Integrate returns <V> averaged over the N^3 lattice at scale factor a. phi
// and chi (when present) must be in position state; neither is mutated.
func (p *PotentialIntegrator) Integrate(phi, chi *spectral.Field, a float64) (float64, error) {
	if phi.State() != spectral.Position {
		return 0, spectreerr.New(spectreerr.Precondition, "potential integrator requires phi in position state")
	}
	if chi != nil && chi.State() != spectral.Position {
		return 0, spectreerr.New(spectreerr.Precondition, "potential integrator requires chi in position state")
	}

	phiData := phi.PositionData()
	n := len(phiData)
	params := p.params

	var chiData []float64
	if chi != nil {
		chiData = chi.PositionData()
	}

	a2r := math.Pow(a, 2*params.RescaleR)

	sum := kernel.Reduce(n, kernel.Workers(), func(i int) float64 {
		phiVal := phiData[i]
		var chiVal float64
		if chiData != nil {
			chiVal = chiData[i]
		}
		return pointwisePotential(params, phiVal, chiVal, a2r)
	})

	return sum / float64(n), nil
}

// pointwisePotential evaluates V at a single lattice cell given the
// precomputed a^{2*rescale_r} factor.
func pointwisePotential(params *config.ModelParams, phi, chi, a2r float64) float64 {
	v := 0.0

	if params.MdEPhi != 0 {
		p := params.MdEPhi + 2
		v += a2r / p * signedAbsPow(phi, p)
	} else {
		v += 0.5 * params.MPhi * params.MPhi * a2r * phi * phi
	}
	if config.TwoField {
		if params.MdEChi != 0 {
			p := params.MdEChi + 2
			v += a2r / p * signedAbsPow(chi, p)
		} else {
			v += 0.5 * params.MChi * params.MChi * a2r * chi * chi
		}
	}

	if params.LambdaPhi != 0 {
		v += params.LambdaPhi / 4 * phi * phi * phi * phi
	}
	if config.TwoField && params.LambdaChi != 0 {
		v += params.LambdaChi / 4 * chi * chi * chi * chi
	}
	if config.TwoField && params.G != 0 {
		v += params.G * params.G / 2 * phi * phi * chi * chi
	}
	if params.GammaPhi != 0 {
		v += params.GammaPhi / 6 * phi * phi * phi * phi * phi * phi
	}
	if config.TwoField && params.GammaChi != 0 {
		v += params.GammaChi / 6 * chi * chi * chi * chi * chi * chi
	}

	return v
}

// signedAbsPow evaluates |v|^p (no sign factor), matching the mass-damping monomial's
// antiderivative: the builder computes sign(f)*|f|^(mdE+1), so its potential
// contribution is |f|^(mdE+2)/(mdE+2), always non-negative.
func signedAbsPow(v, p float64) float64 {
	if v == 0 {
		return 0
	}
	return math.Pow(math.Abs(v), p)
}
