package physics

import (
	"math"

	"github.com/san-kum/pendulum/internal/dynamo"
)

// Params are the physical inputs of a single run. Theta0 is in radians.
type Params struct {
	G      float64 // gravitational acceleration, m/s²
	L      float64 // rod length, m
	M      float64 // bob mass, kg
	B      float64 // viscous friction coefficient
	Cd     float64 // drag coefficient
	Rho    float64 // air density, kg/m³
	A      float64 // frontal area, m²
	Theta0 float64
	Omega0 float64
}

func DefaultParams() Params {
	return Params{
		G:      9.81,
		L:      5.0,
		M:      70.0,
		B:      0.1,
		Cd:     0.6,
		Rho:    1.225,
		A:      0.01,
		Theta0: -80 * math.Pi / 180,
		Omega0: 0.0,
	}
}

// Pendulum is a rigid pendulum with linear viscous damping and quadratic
// air drag, both normalized by the moment of inertia m*L².
type Pendulum struct {
	p Params
}

func NewPendulum(p Params) *Pendulum {
	return &Pendulum{p: p}
}

func (p *Pendulum) StateDim() int {
	return 2
}

func (p *Pendulum) InitialState() dynamo.State {
	return dynamo.State{p.p.Theta0, p.p.Omega0}
}

func (p *Pendulum) Derive(x dynamo.State, t float64) dynamo.State {
	theta := x[0]
	omega := x[1]

	L := p.p.L
	damping := -(p.p.B / (p.p.M * L * L)) * omega
	air := -(0.5 * p.p.Cd * p.p.Rho * p.p.A * L * L / p.p.M) * omega * math.Abs(omega)
	alpha := -(p.p.G/L)*math.Sin(theta) + damping + air

	return dynamo.State{omega, alpha}
}

// Position returns the bob coordinates with the pivot at the origin and
// the rest position straight down.
func (p *Pendulum) Position(theta float64) (x, y float64) {
	return p.p.L * math.Sin(theta), -p.p.L * math.Cos(theta)
}

// SmallAnglePeriod is 2π√(L/g).
func (p *Pendulum) SmallAnglePeriod() float64 {
	return 2 * math.Pi * math.Sqrt(p.p.L/p.p.G)
}
