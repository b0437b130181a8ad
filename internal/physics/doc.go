// Package physics holds the damped pendulum model.
//
// [Pendulum] implements [dynamo.System] for the state [θ, ω]:
//
//	dθ/dt = ω
//	dω/dt = -(g/L)·sin θ - (b/(m·L²))·ω - (½·Cd·ρ·A·L²/m)·ω·|ω|
//
// The drag term keeps the sign of ω through ω·|ω|, so it always opposes
// the motion.
package physics
