package integrators

import (
	"fmt"
	"math"

	"github.com/san-kum/pendulum/internal/dynamo"
)

// Solve integrates dyn from x0 at times[0] and reports the state at every
// requested time. Internal steps are chosen adaptively and clipped so each
// output time is hit exactly. times must be strictly increasing.
func (r *RK45) Solve(dyn dynamo.System, x0 dynamo.State, times []float64) ([]dynamo.State, error) {
	if len(x0) != dyn.StateDim() {
		return nil, fmt.Errorf("initial state has %d entries, system wants %d: %w", len(x0), dyn.StateDim(), dynamo.ErrDimensionMismatch)
	}
	if len(times) == 0 {
		return nil, nil
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return nil, fmt.Errorf("output times not increasing at index %d (%.6g <= %.6g)", i, times[i], times[i-1])
		}
	}

	t := times[0]
	x := x0.Clone()
	if !x.IsValid() {
		return nil, &dynamo.SimulationError{Time: t, State: x.Clone(), Wrapped: dynamo.ErrInvalidState}
	}

	out := make([]dynamo.State, 0, len(times))
	out = append(out, x.Clone())

	k1 := dyn.Derive(x, t)
	if !k1.IsValid() {
		return nil, &dynamo.SimulationError{Time: t, State: x.Clone(), Wrapped: dynamo.ErrInvalidState}
	}

	dt := 0.1
	if len(times) > 1 {
		dt = times[1] - times[0]
	}

	r.Accepted, r.Rejected = 0, 0
	steps := 0
	for _, target := range times[1:] {
		for t < target {
			h, clipped := r.clip(t, dt, target)
			if h < r.minStepAt(t) {
				return nil, &dynamo.SimulationError{Step: steps, Time: t, State: x.Clone(), Wrapped: dynamo.ErrStepTooSmall}
			}

			xNew, k7, errNorm := r.step(dyn, x, k1, t, h)
			steps++
			if !xNew.IsValid() || !k7.IsValid() {
				return nil, &dynamo.SimulationError{Step: steps, Time: t + h, State: xNew, Wrapped: dynamo.ErrInvalidState}
			}

			next := r.rescale(h, errNorm)
			if errNorm > 1 {
				r.Rejected++
				dt = next
				continue
			}
			r.Accepted++

			if clipped {
				t = target
				// a clip is not a tolerance-driven choice, keep the larger proposal
				dt = math.Max(dt, next)
			} else {
				t += h
				dt = next
			}
			x = xNew
			k1 = k7
		}
		out = append(out, x.Clone())
	}

	return out, nil
}

// clip shortens h so a step from t ends exactly on target. A step that
// would stop short of target by less than the minimum step is stretched
// to reach it.
func (r *RK45) clip(t, h, target float64) (float64, bool) {
	if t+h >= target-r.minStepAt(t) {
		return target - t, true
	}
	return h, false
}

func (r *RK45) minStepAt(t float64) float64 {
	return math.Max(r.MinStep, 10*math.Abs(math.Nextafter(t, math.Inf(1))-t))
}
