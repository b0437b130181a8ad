package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/pendulum/internal/sim"
)

const (
	minCells    = 16
	stripHeight = 4
	// rows used by titles, readouts, borders and the angle strip
	chromeRows = 16
)

// axis maps a world interval onto pixel indices [0, pixels).
type axis struct {
	min, max float64
	pixels   int
}

func newAxis(min, max float64, pixels int) axis {
	if min > max {
		min, max = max, min
	}
	if max-min < 1e-12 {
		pad := 0.5 * math.Max(math.Abs(min), 1)
		min -= pad
		max += pad
	}
	return axis{min: min, max: max, pixels: pixels}
}

func (a axis) pos(v float64) int {
	return int(math.Round((v - a.min) / (a.max - a.min) * float64(a.pixels-1)))
}

// Layout is the size of both panels in terminal cells.
type Layout struct {
	Cols int
	Rows int
}

// LayoutFor fits two side-by-side panels into a terminal. Rows is half of
// Cols so the swing panel has as many sub-pixels across as down.
func LayoutFor(termWidth, termHeight int) Layout {
	cols := (termWidth - 8) / 2
	if maxCols := 2 * (termHeight - chromeRows); maxCols < cols {
		cols = maxCols
	}
	if cols < minCells {
		cols = minCells
	}
	cols -= cols % 2
	return Layout{Cols: cols, Rows: cols / 2}
}

// SwingView draws the rod and bob at frame with the linear velocity readout.
// Both axes span [-L-0.1, L+0.1].
func SwingView(tr *sim.Trajectory, frame int, lay Layout) string {
	c := NewCanvas(lay.Cols, lay.Rows)
	extent := tr.Params.L + 0.1
	ax := newAxis(-extent, extent, c.PixelWidth())
	ay := newAxis(-extent, extent, c.PixelHeight())

	d := tr.Derived[frame]
	px, py := ax.pos(0), ay.pixels-1-ay.pos(0)
	bx, by := ax.pos(d.X), ay.pixels-1-ay.pos(d.Y)

	c.DrawLine(px, py, bx, by)
	c.FillCircle(bx, by, max(1, c.PixelWidth()/40))

	var b strings.Builder
	b.WriteString(Title.Render("Pendulum with Air Resistance") + "\n")
	b.WriteString(Rod.Render(c.String()) + "\n")
	b.WriteString(Velocity.Render(fmt.Sprintf("Linear Velocity: %.2f m/s", d.Velocity)))
	return b.String()
}

// TraceView draws the (theta, velocity) polyline for frames 0..frame. The
// axes are fixed from the bounds of the whole run.
func TraceView(tr *sim.Trajectory, frame int, lay Layout) string {
	c := NewCanvas(lay.Cols, lay.Rows)
	ax := newAxis(tr.Bounds.ThetaMin, tr.Bounds.ThetaMax, c.PixelWidth())
	ay := newAxis(0, 1.1*tr.Bounds.VelocityMax, c.PixelHeight())

	pts := tr.Trace(frame)
	prevX, prevY := 0, 0
	for i, p := range pts {
		x, y := ax.pos(p.Theta), ay.pixels-1-ay.pos(p.Velocity)
		if i == 0 {
			c.Set(x, y)
		} else {
			c.DrawLine(prevX, prevY, x, y)
		}
		prevX, prevY = x, y
	}

	var b strings.Builder
	b.WriteString(Title.Render("Linear Velocity as a Function of Angle") + "\n")
	b.WriteString(Trace.Render(c.String()) + "\n")
	b.WriteString(Subtle.Render(fmt.Sprintf("θ %.2f … %.2f rad   v 0 … %.2f m/s", ax.min, ax.max, ay.max)))
	return b.String()
}

// AngleStrip plots theta against time for frames 0..frame. The time axis is
// scaled to the whole run so the curve grows left to right.
func AngleStrip(tr *sim.Trajectory, frame, width int) string {
	cols := width - 12
	if cols < 10 {
		cols = 10
	}
	stride := (tr.Len() + cols - 1) / cols
	if stride < 1 {
		stride = 1
	}

	thetas := tr.Thetas(frame)
	data := make([]float64, 0, len(thetas)/stride+2)
	for i := 0; i < len(thetas); i += stride {
		data = append(data, thetas[i])
	}
	if len(data) == 0 {
		return ""
	}
	if len(data) == 1 {
		data = append(data, data[0])
	}

	lo, hi := tr.Bounds.ThetaMin, tr.Bounds.ThetaMax
	if hi-lo < 1e-9 {
		lo, hi = lo-1, hi+1
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(stripHeight),
		asciigraph.LowerBound(lo),
		asciigraph.UpperBound(hi),
		asciigraph.Precision(2),
		asciigraph.Caption("θ (rad) over time"),
	)
	return Strip.Render(graph)
}

// Frame renders both panels side by side with the angle strip below.
func Frame(tr *sim.Trajectory, frame int, termWidth, termHeight int) string {
	lay := LayoutFor(termWidth, termHeight)
	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		Panel.Render(SwingView(tr, frame, lay)),
		Panel.Render(TraceView(tr, frame, lay)),
	)
	return panels + "\n" + AngleStrip(tr, frame, lipgloss.Width(panels))
}
