// Package integrator implements the staggered velocity-Verlet scheme of
// spec.md §4.6: the state machine that, each timestep, advances the scale
// factor and both scalar fields (and their second derivatives) in lockstep,
// interleaving the nonlinear term builder and the scale-factor dynamics at
// the points the ordering contract in spec.md §5 requires.
package integrator

import (
	"math"

	"spectre/internal/config"
	"spectre/internal/cosmology"
	"spectre/internal/energy"
	"spectre/internal/kernel"
	"spectre/internal/nonlinear"
	"spectre/internal/spectral"
	"spectre/internal/spectreerr"
)

// Integrator owns the time state, the momentum-space velocity/acceleration
// scratch arrays, the nonlinear builder, and the potential integrator; it
// borrows the field containers phi and chi from the driver (spec.md §3,
// "Relationships").
type Integrator struct {
	n    int
	nz   int
	dp   float64
	dp2  float64
	params *config.ModelParams

	ts *cosmology.TimeState

	phi *spectral.Field
	chi *spectral.Field // nil in a single-field build

	builder   *nonlinear.Builder
	potential *energy.PotentialIntegrator
	gradAcc   *energy.GradientAccumulator

	phidot, chidot               []complex128
	phiddot, chiddot             []complex128
	phidotStaggered, chidotStaggered []complex128

	dptdt, ddptdt, dptdtStaggered float64

	productsPhi, productsChi *nonlinear.Products
}

// New constructs an Integrator bound to the given fields, time state, and
// model parameters. phi and chi are borrowed: the driver retains ownership
// and their authoritative state is visible between steps. chi may be nil
// when config.TwoField is false.
func New(params *config.ModelParams, ts *cosmology.TimeState, phi, chi *spectral.Field, builder *nonlinear.Builder) *Integrator {
	n := params.N
	nz := spectral.NzHalf(n)
	size := n * n * nz

	return &Integrator{
		n:      n,
		nz:     nz,
		dp:     params.Dp,
		dp2:    params.Dp * params.Dp,
		params: params,
		ts:     ts,
		phi:    phi,
		chi:    chi,

		builder:   builder,
		potential: energy.NewPotentialIntegrator(params),
		gradAcc:   energy.NewGradientAccumulator(params.Dp),

		phidot:           make([]complex128, size),
		chidot:           make([]complex128, size),
		phiddot:          make([]complex128, size),
		chiddot:          make([]complex128, size),
		phidotStaggered:  make([]complex128, size),
		chidotStaggered:  make([]complex128, size),
	}
}

// Initialize performs the one-time setup spec.md §4.6 describes: it
// consumes the driver-supplied initial velocities (already in momentum
// space), computes the initial second derivative of the scale factor, builds
// the initial nonlinear products, and populates phiddot/chiddot. Preconditions:
// phi and chi (if present) are in momentum state, and ts.A, ts.Adot, ts.Dt are
// set by the driver. Postcondition: phi and chi end in momentum state.
func (in *Integrator) Initialize(phidot0, chidot0 []complex128) error {
	if in.ts.A <= 0 {
		return spectreerr.New(spectreerr.Precondition, "time state scale factor must be positive")
	}
	if in.ts.Dt <= 0 {
		return spectreerr.New(spectreerr.Precondition, "time state dt must be positive")
	}
	if in.phi.State() != spectral.Momentum {
		return spectreerr.New(spectreerr.Precondition, "phi must be in momentum state at initialize")
	}
	if config.TwoField && (in.chi == nil || in.chi.State() != spectral.Momentum) {
		return spectreerr.New(spectreerr.Precondition, "chi must be in momentum state at initialize")
	}

	copy(in.phidot, phidot0)
	if config.TwoField {
		copy(in.chidot, chidot0)
	}

	gradPhi2, err := in.gradAcc.Accumulate(in.phi)
	if err != nil {
		return spectreerr.Wrap(spectreerr.TransformFailure, "accumulating initial phi gradient", err)
	}
	var gradChi2 float64
	if config.TwoField {
		gradChi2, err = in.gradAcc.Accumulate(in.chi)
		if err != nil {
			return spectreerr.Wrap(spectreerr.TransformFailure, "accumulating initial chi gradient", err)
		}
	}

	meanV, err := in.meanPotential()
	if err != nil {
		return err
	}

	in.ts.Addot = cosmology.Adoubledot(in.ts.A, in.ts.Adot, in.params.RescaleR, in.params.RescaleS, in.params.RescaleB, gradPhi2, gradChi2, meanV)
	in.ddptdt = cosmology.DDPtDt(in.ts.A, in.ts.Adot, in.ts.Addot, in.params.RescaleS, in.params.RescaleB)
	in.dptdt = cosmology.DPtDt(in.ts.A, in.ts.Adot, in.params.RescaleS, in.params.RescaleB)

	if err := in.rebuildProducts(); err != nil {
		return err
	}

	in.kick(in.phiddot, in.chiddot, in.ts.A, in.ts.Adot, in.ts.Addot)

	return nil
}

// Step advances the simulation by one timestep, following the ordering
// contract in spec.md §5: (1) scale-factor drift, (2) momentum-space
// kick-drift and gradient reduction, (3) scale-factor second-derivative
// update, (4) nonlinear term rebuild, (5) velocity kick using new
// acceleration.
func (in *Integrator) Step() error {
	dt := in.ts.Dt
	a0 := in.ts.A

	adotStaggered := in.ts.Adot + 0.5*in.ts.Addot*dt
	in.dptdtStaggered = in.dptdt + 0.5*in.ddptdt*dt

	in.ts.A = a0 + in.ts.Adot*dt + 0.5*in.ts.Addot*dt*dt
	in.ts.PhysicalTime += in.dptdt*dt + 0.5*in.ddptdt*dt*dt

	if err := in.phi.SwitchState(spectral.Momentum); err != nil {
		return spectreerr.Wrap(spectreerr.TransformFailure, "switching phi to momentum", err)
	}
	if config.TwoField {
		if err := in.chi.SwitchState(spectral.Momentum); err != nil {
			return spectreerr.Wrap(spectreerr.TransformFailure, "switching chi to momentum", err)
		}
	}

	gradPhi2, gradChi2 := in.kickDriftAndAccumulateGradients(dt)

	meanV, err := in.meanPotential()
	if err != nil {
		return err
	}

	in.ts.Addot = cosmology.AdoubledotStaggered(in.ts.A, adotStaggered, in.params.RescaleR, in.params.RescaleS, in.params.RescaleB, gradPhi2, gradChi2, meanV)
	in.ts.Adot = adotStaggered + 0.5*in.ts.Addot*dt
	in.ddptdt = cosmology.DDPtDt(in.ts.A, adotStaggered, in.ts.Addot, in.params.RescaleS, in.params.RescaleB)
	in.dptdt = in.dptdtStaggered + 0.5*in.ddptdt*dt

	if err := in.rebuildProducts(); err != nil {
		return err
	}

	in.kick(in.phiddot, in.chiddot, in.ts.A, in.ts.Adot, in.ts.Addot)

	for i := range in.phidot {
		in.phidot[i] = add(in.phidotStaggered[i], scale(in.phiddot[i], 0.5*dt))
	}
	if config.TwoField {
		for i := range in.chidot {
			in.chidot[i] = add(in.chidotStaggered[i], scale(in.chiddot[i], 0.5*dt))
		}
	}

	if !isFinite(in.ts.A) || in.ts.A <= 0 {
		return spectreerr.New(spectreerr.Blowup, "scale factor became non-positive or non-finite")
	}

	in.ts.T += dt

	return nil
}

// kickDriftAndAccumulateGradients performs the per-mode staggered kick-drift
// step and, in the same pass, accumulates the parity-corrected gradient sums
// spec.md §4.4 defines — fused per spec.md §9's "two separate kernel
// launches per step" guidance (this is the first of the two).
func (in *Integrator) kickDriftAndAccumulateGradients(dt float64) (gradPhi2, gradChi2 float64) {
	size := len(in.phidot)
	phiMom := in.phi.MomentumData()

	sumPhi := kernel.Reduce(size, kernel.Workers(), func(i int) float64 {
		in.phidotStaggered[i] = add(in.phidot[i], scale(in.phiddot[i], 0.5*dt))
		phiMom[i] = add(phiMom[i], scale(in.phidotStaggered[i], dt))
		return in.modeK2Parity(i) * sqMag(phiMom[i])
	})
	gradPhi2 = energy.NormalizeByGridpoints2(sumPhi, in.n)

	if config.TwoField {
		chiMom := in.chi.MomentumData()
		sumChi := kernel.Reduce(size, kernel.Workers(), func(i int) float64 {
			in.chidotStaggered[i] = add(in.chidot[i], scale(in.chiddot[i], 0.5*dt))
			chiMom[i] = add(chiMom[i], scale(in.chidotStaggered[i], dt))
			return in.modeK2Parity(i) * sqMag(chiMom[i])
		})
		gradChi2 = energy.NormalizeByGridpoints2(sumChi, in.n)
	}

	return gradPhi2, gradChi2
}

// kick recomputes phiddot/chiddot at the current (a, adot, addot) and field
// values, using the latest nonlinear products.
func (in *Integrator) kick(phiddot, chiddot []complex128, a, adot, addot float64) {
	phiMom := in.phi.MomentumData()
	p := in.params

	kernel.Launch(len(phiddot), kernel.Workers(), func(i int) {
		k2 := in.modeK2(i)
		cross, cube, fifth, md := in.productsPhi.ModeAt(i)
		phiddot[i] = kgAccelerationMode(p, p.MPhi, p.LambdaPhi, p.GammaPhi, p.MdEPhi, phiMom[i], cross, cube, fifth, md, k2, a, adot, addot)
	})

	if config.TwoField {
		chiMom := in.chi.MomentumData()
		kernel.Launch(len(chiddot), kernel.Workers(), func(i int) {
			k2 := in.modeK2(i)
			cross, cube, fifth, md := in.productsChi.ModeAt(i)
			chiddot[i] = kgAccelerationMode(p, p.MChi, p.LambdaChi, p.GammaChi, p.MdEChi, chiMom[i], cross, cube, fifth, md, k2, a, adot, addot)
		})
	}
}

// rebuildProducts transiently switches phi (and chi) to position state,
// rebuilds the nonlinear monomial products, and switches back to momentum,
// per spec.md §4.6's "Call the nonlinear builder (which transiently switches
// fields to position and back)".
func (in *Integrator) rebuildProducts() error {
	if err := in.phi.SwitchState(spectral.Position); err != nil {
		return spectreerr.Wrap(spectreerr.TransformFailure, "switching phi to position", err)
	}
	var chi *spectral.Field
	if config.TwoField {
		if err := in.chi.SwitchState(spectral.Position); err != nil {
			return spectreerr.Wrap(spectreerr.TransformFailure, "switching chi to position", err)
		}
		chi = in.chi
	}

	productsPhi, err := in.builder.BuildPhi(in.phi, chi)
	if err != nil {
		return spectreerr.Wrap(spectreerr.TransformFailure, "building phi nonlinear products", err)
	}
	in.productsPhi = productsPhi

	if config.TwoField {
		productsChi, err := in.builder.BuildChi(in.chi, in.phi)
		if err != nil {
			return spectreerr.Wrap(spectreerr.TransformFailure, "building chi nonlinear products", err)
		}
		in.productsChi = productsChi
	}

	if err := in.phi.SwitchState(spectral.Momentum); err != nil {
		return spectreerr.Wrap(spectreerr.TransformFailure, "switching phi back to momentum", err)
	}
	if config.TwoField {
		if err := in.chi.SwitchState(spectral.Momentum); err != nil {
			return spectreerr.Wrap(spectreerr.TransformFailure, "switching chi back to momentum", err)
		}
	}
	return nil
}

// meanPotential switches phi (and chi) to position, integrates <V>, and
// switches back to momentum.
func (in *Integrator) meanPotential() (float64, error) {
	if err := in.phi.SwitchState(spectral.Position); err != nil {
		return 0, spectreerr.Wrap(spectreerr.TransformFailure, "switching phi to position for potential", err)
	}
	var chi *spectral.Field
	if config.TwoField {
		if err := in.chi.SwitchState(spectral.Position); err != nil {
			return 0, spectreerr.Wrap(spectreerr.TransformFailure, "switching chi to position for potential", err)
		}
		chi = in.chi
	}

	meanV, err := in.potential.Integrate(in.phi, chi, in.ts.A)
	if err != nil {
		return 0, err
	}

	if err := in.phi.SwitchState(spectral.Momentum); err != nil {
		return 0, spectreerr.Wrap(spectreerr.TransformFailure, "switching phi back to momentum after potential", err)
	}
	if config.TwoField {
		if err := in.chi.SwitchState(spectral.Momentum); err != nil {
			return 0, spectreerr.Wrap(spectreerr.TransformFailure, "switching chi back to momentum after potential", err)
		}
	}
	return meanV, nil
}

// modeK2 returns dp^2*(px^2+py^2+pz^2) for the mode at flat index i.
func (in *Integrator) modeK2(i int) float64 {
	x, y, z := spectral.ModeCoords(in.n, i)
	px := float64(spectral.CenteredFreq(in.n, x))
	py := float64(spectral.CenteredFreq(in.n, y))
	pz := float64(z)
	return in.dp2 * (px*px + py*py + pz*pz)
}

// modeK2Parity returns modeK2(i) times the reduction multiplicity for that
// mode's z-slab (spec.md §4.4).
func (in *Integrator) modeK2Parity(i int) float64 {
	_, _, z := spectral.ModeCoords(in.n, i)
	return spectral.Parity(in.n, z) * in.modeK2(i)
}

func sqMag(c complex128) float64 {
	return real(c)*real(c) + imag(c)*imag(c)
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
