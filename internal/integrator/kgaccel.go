package integrator

import (
	"math"

	"spectre/internal/config"
)

// kgAccelerationMode evaluates the Klein-Gordon acceleration of one field at
// one mode, per spec.md §4.6:
//
//	f-double-dot = -a^(-2s-2)*k2*f
//	             + r*[(s-r+2)*(adot/a)^2 + addot/a]*f
//	             - a^(-2s-2r)/B^2 * [ mass_term(f)
//	                                + lambda_f/A^2 * cube
//	                                + (g/A)^2 * cross
//	                                + gamma_f/A^4 * a^(-2r) * fifth ]
//
// mass_term is a^(2r)*md if the mass-damping exponent is nonzero, else
// m_f^2*a^(2r)*f. cube, cross, fifth, and md are the momentum-space monomial
// values the nonlinear term builder produced for this mode; a coupling whose
// coefficient is zero skips its term entirely, per spec.md's "any coupling
// whose coefficient is zero may be skipped" license.
func kgAccelerationMode(params *config.ModelParams, mF, lambdaF, gammaF, mdEF float64, fHat, crossHat, cubeHat, fifthHat, mdHat complex128, k2, a, adot, addot float64) complex128 {
	r := params.RescaleR
	s := params.RescaleS
	A := params.RescaleA
	B := params.RescaleB

	laplacian := scale(fHat, -math.Pow(a, -2*s-2)*k2)
	curvature := scale(fHat, r*((s-r+2)*(adot/a)*(adot/a)+addot/a))

	var bracket complex128
	if mdEF != 0 {
		bracket = scale(mdHat, math.Pow(a, 2*r))
	} else {
		bracket = scale(fHat, mF*mF*math.Pow(a, 2*r))
	}
	if lambdaF != 0 {
		bracket = add(bracket, scale(cubeHat, lambdaF/(A*A)))
	}
	if params.G != 0 {
		bracket = add(bracket, scale(crossHat, (params.G/A)*(params.G/A)))
	}
	if gammaF != 0 {
		bracket = add(bracket, scale(fifthHat, gammaF/(A*A*A*A)*math.Pow(a, -2*r)))
	}

	potentialForce := scale(bracket, -math.Pow(a, -2*s-2*r)/(B*B))

	return add(add(laplacian, curvature), potentialForce)
}

func scale(c complex128, s float64) complex128 {
	return complex(real(c)*s, imag(c)*s)
}

func add(a, b complex128) complex128 {
	return complex(real(a)+real(b), imag(a)+imag(b))
}
