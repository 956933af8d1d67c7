// Command spectre runs a reheating lattice simulation to completion,
// periodically writing field snapshots and a status log. It plays the role
// main.go played in the teacher: flag-driven setup followed by a tight
// update loop, but driving the staggered Verlet integrator over the
// lattice instead of an N-body step.
package main

import (
	"flag"
	"log"
	"math/rand"

	"spectre/internal/config"
	"spectre/internal/cosmology"
	"spectre/internal/initcond"
	"spectre/internal/integrator"
	"spectre/internal/nonlinear"
	"spectre/internal/snapshot"
	"spectre/internal/spectral"
	"spectre/pkg/fft"
)

func main() {
	n := flag.Int("n", 32, "lattice points per side")
	length := flag.Int("l", 0, "physical side length in units of 2*pi (0 uses a default of 1)")
	steps := flag.Int("steps", 1000, "number of integration steps to run")
	dt := flag.Float64("dt", 0.01, "timestep")
	mPhi := flag.Float64("mphi", 1.0, "phi mass")
	mChi := flag.Float64("mchi", 1.0, "chi mass (ignored in single-field builds)")
	lambdaPhi := flag.Float64("lambda_phi", 0, "phi^4 self-coupling")
	lambdaChi := flag.Float64("lambda_chi", 0, "chi^4 self-coupling")
	g := flag.Float64("g", 0, "phi^2*chi^2 cross-coupling")
	temperature := flag.Float64("temperature", 0, "thermal initial condition temperature (0 = vacuum)")
	seed := flag.Int64("seed", 1, "random seed for thermal initial conditions")
	snapshotEvery := flag.Int("snapshot_every", 50, "steps between snapshots")
	outDir := flag.String("out", "snapshots", "output directory for snapshots and the run log")
	flag.Parse()

	l := 2 * 3.141592653589793
	if *length > 0 {
		l = float64(*length) * 2 * 3.141592653589793
	}

	params := config.NewModelParams(*n, l)
	params.MPhi = *mPhi
	params.MChi = *mChi
	params.LambdaPhi = *lambdaPhi
	params.LambdaChi = *lambdaChi
	params.G = *g
	if err := params.Validate(); err != nil {
		log.Fatalf("invalid model parameters: %v", err)
	}

	proc := fft.NewProcessor()
	phi := spectral.NewField(params.N, proc)
	var chi *spectral.Field
	if config.TwoField {
		chi = spectral.NewField(params.N, proc)
	}

	rng := rand.New(rand.NewSource(*seed))
	if err := initcond.Thermal(phi, params.MPhi, params.Dp, *temperature, rng); err != nil {
		log.Fatalf("initializing phi: %v", err)
	}
	phidot0 := make([]complex128, len(phi.MomentumData()))
	if config.TwoField {
		if err := initcond.Thermal(chi, params.MChi, params.Dp, *temperature, rng); err != nil {
			log.Fatalf("initializing chi: %v", err)
		}
	}
	chidot0 := make([]complex128, len(phidot0))

	ts := &cosmology.TimeState{A: 1.0, Adot: 0, Dt: *dt}

	builder := nonlinear.NewBuilder(params.N, proc, params)
	integ := integrator.New(params, ts, phi, chi, builder)
	if err := integ.Initialize(phidot0, chidot0); err != nil {
		log.Fatalf("initializing integrator: %v", err)
	}

	sink, err := snapshot.NewSink(*outDir)
	if err != nil {
		log.Fatalf("creating snapshot sink: %v", err)
	}

	writeSnapshots := func(step int) {
		if err := phi.SwitchState(spectral.Position); err != nil {
			log.Fatalf("switching phi to position for snapshot: %v", err)
		}
		if err := sink.WriteField("phi", step, phi); err != nil {
			log.Printf("writing phi snapshot at step %d: %v", step, err)
		}
		if err := phi.SwitchState(spectral.Momentum); err != nil {
			log.Fatalf("switching phi back to momentum after snapshot: %v", err)
		}
		if config.TwoField {
			if err := chi.SwitchState(spectral.Position); err != nil {
				log.Fatalf("switching chi to position for snapshot: %v", err)
			}
			if err := sink.WriteField("chi", step, chi); err != nil {
				log.Printf("writing chi snapshot at step %d: %v", step, err)
			}
			if err := chi.SwitchState(spectral.Momentum); err != nil {
				log.Fatalf("switching chi back to momentum after snapshot: %v", err)
			}
		}
		if err := sink.LogStatus(step, ts, params.N); err != nil {
			log.Printf("writing status log at step %d: %v", step, err)
		}
	}

	writeSnapshots(0)
	for step := 1; step <= *steps; step++ {
		if err := integ.Step(); err != nil {
			log.Fatalf("step %d: %v", step, err)
		}
		if *snapshotEvery > 0 && step%*snapshotEvery == 0 {
			writeSnapshots(step)
		}
	}

	log.Printf("completed %d steps: a=%.6f t=%.6f physical_time=%.6f", *steps, ts.A, ts.T, ts.PhysicalTime)
}
