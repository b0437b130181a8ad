package physics

import (
	"math"
	"testing"

	"github.com/san-kum/pendulum/internal/dynamo"
)

func TestPendulumEquilibrium(t *testing.T) {
	p := NewPendulum(DefaultParams())

	dx := p.Derive(dynamo.State{0, 0}, 0)

	if math.Abs(dx[0]) > 1e-10 {
		t.Errorf("expected zero velocity at equilibrium, got %f", dx[0])
	}
	if math.Abs(dx[1]) > 1e-10 {
		t.Errorf("expected zero acceleration at equilibrium, got %f", dx[1])
	}
}

func TestPendulumDimensions(t *testing.T) {
	p := NewPendulum(DefaultParams())

	if p.StateDim() != 2 {
		t.Errorf("expected state dim 2, got %d", p.StateDim())
	}
	if len(p.InitialState()) != p.StateDim() {
		t.Errorf("initial state has %d entries", len(p.InitialState()))
	}
}

func TestPendulumGravity(t *testing.T) {
	params := DefaultParams()
	params.B = 0
	params.Cd = 0
	p := NewPendulum(params)

	dx := p.Derive(dynamo.State{math.Pi / 2, 0}, 0)

	expected := -params.G / params.L
	if math.Abs(dx[1]-expected) > 1e-9 {
		t.Errorf("expected acceleration %f, got %f", expected, dx[1])
	}
}

func TestPendulumResistanceOpposesMotion(t *testing.T) {
	params := DefaultParams()
	params.G = 0

	tests := []struct {
		name  string
		omega float64
	}{
		{"positive", 2.0},
		{"negative", -2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx := NewPendulum(params).Derive(dynamo.State{0, tt.omega}, 0)
			if dx[1]*tt.omega >= 0 {
				t.Errorf("resistance %f does not oppose omega %f", dx[1], tt.omega)
			}
		})
	}
}

func TestPendulumDragTerm(t *testing.T) {
	params := Params{G: 0, L: 2, M: 4, B: 0, Cd: 1, Rho: 2, A: 0.5}
	omega := -3.0

	dx := NewPendulum(params).Derive(dynamo.State{0, omega}, 0)

	// 0.5*1*2*0.5*4/4 = 0.5, times -ω|ω| = 9
	expected := 4.5
	if math.Abs(dx[1]-expected) > 1e-12 {
		t.Errorf("expected drag acceleration %f, got %f", expected, dx[1])
	}
}

func TestPendulumDegenerateLength(t *testing.T) {
	params := DefaultParams()
	params.L = 0

	dx := NewPendulum(params).Derive(dynamo.State{0.3, 0}, 0)
	if dx.IsValid() {
		t.Errorf("expected non-finite derivative for zero length, got %v", dx)
	}
}

func TestPendulumPosition(t *testing.T) {
	p := NewPendulum(DefaultParams())

	x, y := p.Position(0)
	if math.Abs(x) > 1e-12 || math.Abs(y+5.0) > 1e-12 {
		t.Errorf("rest position should be (0,-5), got (%f,%f)", x, y)
	}

	x, y = p.Position(math.Pi / 2)
	if math.Abs(x-5.0) > 1e-12 || math.Abs(y) > 1e-12 {
		t.Errorf("horizontal position should be (5,0), got (%f,%f)", x, y)
	}
}

func TestSmallAnglePeriod(t *testing.T) {
	p := NewPendulum(Params{G: 9.81, L: 1})
	if math.Abs(p.SmallAnglePeriod()-2.006) > 1e-3 {
		t.Errorf("unexpected period %f", p.SmallAnglePeriod())
	}
}
