// Package dynamo provides the core primitives shared by the pendulum model
// and its integrator.
//
// The package defines:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [SimulationError]: failure context for a numerical run
//
// # Example
//
//	dyn := physics.NewPendulum(params)
//	solver := integrators.NewRK45()
//	states, err := solver.Solve(dyn, dyn.InitialState(), times)
package dynamo
