// Package nonlinear implements the nonlinear term builder: spec.md §4.2's
// per-timestep construction of the monomial position-space products the
// Klein-Gordon acceleration needs, delivered back in momentum space.
package nonlinear

import (
	"math"

	"spectre/internal/config"
	"spectre/internal/spectreerr"
	"spectre/internal/spectral"
	"spectre/pkg/fft"
)

// Products holds the momentum-space monomial fields for one scalar field's
// nonlinear terms. A product is nil when its coupling is zero; spec.md §4.2
// says gated-off outputs "need not be touched".
type Products struct {
	Cross *spectral.Field // chi^2*phi or phi^2*chi, always present
	Cube  *spectral.Field // phi^3 or chi^3, present iff lambda != 0
	Fifth *spectral.Field // phi^5 or chi^5, present iff gamma != 0
	Md    *spectral.Field // sign(f)*|f|^(mdE+1), present iff mdE != 0
}

// ModeAt returns the momentum-space value of each product at flat index i,
// substituting 0 for any product that was gated off. The Klein-Gordon
// acceleration skips the corresponding coupling term in that case anyway, so
// the zero value is never actually used.
func (p *Products) ModeAt(i int) (cross, cube, fifth, md complex128) {
	if p.Cross != nil {
		cross = p.Cross.MomentumData()[i]
	}
	if p.Cube != nil {
		cube = p.Cube.MomentumData()[i]
	}
	if p.Fifth != nil {
		fifth = p.Fifth.MomentumData()[i]
	}
	if p.Md != nil {
		md = p.Md.MomentumData()[i]
	}
	return
}

// Builder computes Products for phi and chi given their current position-
// space values, per a fixed ModelParams.
type Builder struct {
	n      int
	proc   fft.Processor
	params *config.ModelParams
}

// NewBuilder creates a Builder for a grid of size n.
func NewBuilder(n int, proc fft.Processor, params *config.ModelParams) *Builder {
	return &Builder{n: n, proc: proc, params: params}
}

// BuildPhi computes phi's nonlinear products given the current phi and chi
// position-space values. Both fields must be in Position state on entry, per
// spec.md §4.2's precondition; chi may be nil in a single-field build.
func (b *Builder) BuildPhi(phi, chi *spectral.Field) (*Products, error) {
	return b.build(phi, chi, b.params.LambdaPhi, b.params.GammaPhi, b.params.MdEPhi)
}

// BuildChi computes chi's nonlinear products given the current phi and chi
// position-space values. Both fields must be in Position state on entry.
func (b *Builder) BuildChi(chi, phi *spectral.Field) (*Products, error) {
	return b.build(chi, phi, b.params.LambdaChi, b.params.GammaChi, b.params.MdEChi)
}

// build computes the products for "self" (phi when called from BuildPhi,
// chi when called from BuildChi), using "other" for the cross term.
func (b *Builder) build(self, other *spectral.Field, lambda, gamma, mdE float64) (*Products, error) {
	if self.State() != spectral.Position {
		return nil, spectreerr.New(spectreerr.Precondition, "nonlinear builder requires self field in position state")
	}
	if other != nil && other.State() != spectral.Position {
		return nil, spectreerr.New(spectreerr.Precondition, "nonlinear builder requires other field in position state")
	}

	products := &Products{}

	cross := spectral.NewField(b.n, b.proc)
	selfData := self.PositionData()
	crossData := cross.PositionData()
	if other != nil {
		otherData := other.PositionData()
		for i := range crossData {
			crossData[i] = otherData[i] * otherData[i] * selfData[i]
		}
	}
	if err := cross.SwitchState(spectral.Momentum); err != nil {
		return nil, spectreerr.Wrap(spectreerr.TransformFailure, "transforming cross term", err)
	}
	products.Cross = cross

	if lambda != 0 {
		cube := spectral.NewField(b.n, b.proc)
		cubeData := cube.PositionData()
		for i, v := range selfData {
			cubeData[i] = v * v * v
		}
		if err := cube.SwitchState(spectral.Momentum); err != nil {
			return nil, spectreerr.Wrap(spectreerr.TransformFailure, "transforming cubic term", err)
		}
		products.Cube = cube
	}

	if gamma != 0 {
		fifth := spectral.NewField(b.n, b.proc)
		fifthData := fifth.PositionData()
		for i, v := range selfData {
			v2 := v * v
			fifthData[i] = v2 * v2 * v
		}
		if err := fifth.SwitchState(spectral.Momentum); err != nil {
			return nil, spectreerr.Wrap(spectreerr.TransformFailure, "transforming quintic term", err)
		}
		products.Fifth = fifth
	}

	if mdE != 0 {
		md := spectral.NewField(b.n, b.proc)
		mdData := md.PositionData()
		for i, v := range selfData {
			mdData[i] = signedPower(v, mdE+1)
		}
		if err := md.SwitchState(spectral.Momentum); err != nil {
			return nil, spectreerr.Wrap(spectreerr.TransformFailure, "transforming mass-damping term", err)
		}
		products.Md = md
	}

	return products, nil
}

// signedPower computes sign(v)*|v|^p, the mass-damping monomial form from
// spec.md §4.2.
func signedPower(v, p float64) float64 {
	if v == 0 {
		return 0
	}
	mag := math.Pow(math.Abs(v), p)
	if v < 0 {
		return -mag
	}
	return mag
}
