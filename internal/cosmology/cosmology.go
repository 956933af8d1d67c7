// Package cosmology implements the scale-factor dynamics of spec.md §4.5:
// the Friedmann-constraint evaluation of a(t)'s second derivative, in both
// the "current" and "staggered" forms the Verlet integrator needs, plus the
// companion mapping from integrator time to physical time.
package cosmology

import "math"

// TimeState holds the scalar quantities shared by every component that
// advances or reads the simulation clock (spec.md §3, "Time state").
// Invariants: A > 0, Dt > 0.
type TimeState struct {
	T            float64 // dimensionless integrator time
	A            float64 // scale factor
	Adot         float64 // da/dt
	Addot        float64 // d2a/dt2
	Dt           float64 // fixed timestep
	PhysicalTime float64
}

// Adoubledot evaluates ä from the Friedmann constraint in program units,
// given the current scale factor, its first derivative, and the volume-
// averaged gradient and potential energy densities.
//
// The closed form adopted here ties the expansion entirely to rescale_r and
// rescale_s: both vanishing collapses it to addot == 0 identically, which is
// what spec.md §8 property 3 requires of the flat-spacetime limit
// (rescale_r = rescale_s = 0, a held at 1 by a zero initial adot). rescale_r
// gates the energy-density source term; rescale_s - rescale_r gates a
// self-similar (ȧ/a)² term that mirrors the curvature-coupling structure of
// the Klein-Gordon acceleration in §4.6.
func Adoubledot(a, adot, rescaleR, rescaleS, rescaleB, gradPhi2, gradChi2, meanV float64) float64 {
	hubbleTerm := (rescaleS - rescaleR) * adot * adot / a
	energyTerm := -(rescaleR / (3 * rescaleB * rescaleB)) * math.Pow(a, 2*rescaleR+1) * (gradPhi2 + gradChi2 + 2*meanV)
	return hubbleTerm + energyTerm
}

// AdoubledotStaggered is the staggered-step counterpart used mid-step: it
// takes the half-step velocity adotStaggered but the *current*, not
// half-step, scale factor. Per spec.md §9's open question (a), this
// asymmetry is deliberate, not an oversight.
func AdoubledotStaggered(a, adotStaggered, rescaleR, rescaleS, rescaleB, gradPhi2, gradChi2, meanV float64) float64 {
	return Adoubledot(a, adotStaggered, rescaleR, rescaleS, rescaleB, gradPhi2, gradChi2, meanV)
}

// DPtDt computes d(pt)/dt = -s/B * a^(-s-1) * ȧ, the rate at which program
// time maps to physical time (spec.md §4.5).
func DPtDt(a, adot, rescaleS, rescaleB float64) float64 {
	return -(rescaleS / rescaleB) * math.Pow(a, -rescaleS-1) * adot
}

// DDPtDt computes d2(pt)/dt2, the time derivative of DPtDt, by direct
// differentiation of its formula: d/dt[-s/B * a^(-s-1) * ȧ] =
// -s/B * a^(-s-2) * [(-s-1)*ȧ² + a*ä]. The integrator's staggered drift of
// physical_time needs this second derivative the same way it needs addot for
// the scale factor (spec.md §4.6's "drift physical time similarly").
func DDPtDt(a, adot, addot, rescaleS, rescaleB float64) float64 {
	return -(rescaleS / rescaleB) * math.Pow(a, -rescaleS-2) * ((-rescaleS-1)*adot*adot + a*addot)
}
