// Package viz renders a precomputed pendulum run as terminal panels.
//
//   - [SwingView]: rod and bob at the current frame with a velocity readout
//   - [TraceView]: velocity against angle, accumulated up to the frame
//   - [AngleStrip]: angle over time, drawn with asciigraph
//
// Panels are drawn on a braille [Canvas] and never advance the
// simulation themselves; the caller owns the frame index.
package viz
