package sim

import (
	"fmt"
	"math"

	"github.com/san-kum/pendulum/internal/integrators"
	"github.com/san-kum/pendulum/internal/physics"
)

const (
	DefaultHorizon = 10.0
	DefaultStep    = 0.05

	// MinStep and MaxSamples bound the sampling grid a config may request.
	MinStep    = 1e-9
	MaxSamples = 1_000_000
)

// Config controls the sampling grid and solver tolerances of a run.
type Config struct {
	Horizon float64
	Step    float64
	RelTol  float64
	AbsTol  float64
}

func DefaultConfig() Config {
	return Config{
		Horizon: DefaultHorizon,
		Step:    DefaultStep,
		RelTol:  integrators.DefaultRelTol,
		AbsTol:  integrators.DefaultAbsTol,
	}
}

func (c Config) Validate() error {
	if !(c.Step > 0) {
		return fmt.Errorf("step must be positive, got %f", c.Step)
	}
	if !(c.Horizon > 0) || math.IsInf(c.Horizon, 1) {
		return fmt.Errorf("horizon must be positive and finite, got %f", c.Horizon)
	}
	if c.Step < MinStep {
		return fmt.Errorf("step %g below minimum %g", c.Step, MinStep)
	}
	if c.Step > c.Horizon {
		return fmt.Errorf("step %f exceeds horizon %f", c.Step, c.Horizon)
	}
	if n := c.samples(); n > MaxSamples {
		return fmt.Errorf("horizon %g at step %g needs %.0f samples, limit is %d", c.Horizon, c.Step, n, MaxSamples)
	}
	if c.RelTol <= 0 || c.AbsTol <= 0 {
		return fmt.Errorf("tolerances must be positive, got rel=%g abs=%g", c.RelTol, c.AbsTol)
	}
	return nil
}

// Times is the half-open grid [0, Horizon) spaced by Step.
func (c Config) Times() []float64 {
	n := int(c.samples())
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = float64(i) * c.Step
	}
	return ts
}

func (c Config) samples() float64 {
	return math.Ceil(c.Horizon/c.Step - 1e-9)
}

type Sample struct {
	T     float64
	Theta float64
	Omega float64
}

// Derived holds the kinematic quantities computed from one Sample.
type Derived struct {
	X        float64
	Y        float64
	Velocity float64
}

type TracePoint struct {
	Theta    float64
	Velocity float64
}

type Bounds struct {
	ThetaMin    float64
	ThetaMax    float64
	VelocityMax float64
}

// Trajectory is the full precomputed run. It is never modified after
// Simulate returns.
type Trajectory struct {
	Params  physics.Params
	Step    float64
	Samples []Sample
	Derived []Derived
	Bounds  Bounds

	trace []TracePoint
}

func (tr *Trajectory) Len() int { return len(tr.Samples) }

// Trace returns the (theta, velocity) points of frames 0..frame inclusive.
// The slice shares storage with the trajectory and must not be modified.
func (tr *Trajectory) Trace(frame int) []TracePoint {
	if frame < 0 || len(tr.trace) == 0 {
		return nil
	}
	if frame >= len(tr.trace) {
		frame = len(tr.trace) - 1
	}
	return tr.trace[:frame+1]
}

// Thetas returns the angle of every sample up to frame inclusive.
func (tr *Trajectory) Thetas(frame int) []float64 {
	pts := tr.Trace(frame)
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p.Theta
	}
	return out
}
