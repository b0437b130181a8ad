package sim

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/san-kum/pendulum/internal/integrators"
	"github.com/san-kum/pendulum/internal/physics"
)

type Simulator struct {
	cfg Config
	log *zap.Logger
}

func New(cfg Config, log *zap.Logger) *Simulator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Simulator{cfg: cfg, log: log}
}

// Run integrates the pendulum described by p over the configured grid and
// derives the kinematic quantities. Failures return no partial result.
func (s *Simulator) Run(ctx context.Context, p physics.Params) (*Trajectory, error) {
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dyn := physics.NewPendulum(p)
	solver := integrators.NewRK45()
	solver.RelTol = s.cfg.RelTol
	solver.AbsTol = s.cfg.AbsTol

	times := s.cfg.Times()
	states, err := solver.Solve(dyn, dyn.InitialState(), times)
	if err != nil {
		s.log.Warn("integration failed",
			zap.Any("params", p),
			zap.Int("steps_accepted", solver.Accepted),
			zap.Error(err),
		)
		return nil, err
	}

	tr := &Trajectory{
		Params:  p,
		Step:    s.cfg.Step,
		Samples: make([]Sample, len(states)),
		Derived: make([]Derived, len(states)),
		trace:   make([]TracePoint, len(states)),
	}

	for i, x := range states {
		theta, omega := x[0], x[1]
		px, py := dyn.Position(theta)
		v := math.Abs(omega) * p.L

		tr.Samples[i] = Sample{T: times[i], Theta: theta, Omega: omega}
		tr.Derived[i] = Derived{X: px, Y: py, Velocity: v}
		tr.trace[i] = TracePoint{Theta: theta, Velocity: v}
	}
	tr.Bounds = bounds(tr.trace)

	s.log.Info("simulation complete",
		zap.Int("samples", tr.Len()),
		zap.Int("steps_accepted", solver.Accepted),
		zap.Int("steps_rejected", solver.Rejected),
		zap.Float64("theta_min", tr.Bounds.ThetaMin),
		zap.Float64("theta_max", tr.Bounds.ThetaMax),
		zap.Float64("velocity_max", tr.Bounds.VelocityMax),
	)

	return tr, nil
}

func bounds(pts []TracePoint) Bounds {
	if len(pts) == 0 {
		return Bounds{}
	}
	b := Bounds{ThetaMin: pts[0].Theta, ThetaMax: pts[0].Theta}
	for _, p := range pts {
		b.ThetaMin = math.Min(b.ThetaMin, p.Theta)
		b.ThetaMax = math.Max(b.ThetaMax, p.Theta)
		b.VelocityMax = math.Max(b.VelocityMax, p.Velocity)
	}
	return b
}
