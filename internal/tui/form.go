package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/pendulum/internal/config"
	"github.com/san-kum/pendulum/internal/physics"
)

const (
	fieldGravity = iota
	fieldLength
	fieldMass
	fieldDamping
	fieldDrag
	fieldDensity
	fieldArea
	fieldAngle
	fieldOmega
	numFields
)

var fieldLabels = [numFields]string{
	"Gravity (m/s²)",
	"Length (m)",
	"Mass (kg)",
	"Viscous Friction (b)",
	"Drag Coefficient (Cd)",
	"Air Density (kg/m³)",
	"Frontal Area (m²)",
	"Initial Angle (°)",
	"Initial Angular Velocity (rad/s)",
}

// ParseError reports a form field that is not a number.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q is not a number", e.Field, e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseParams converts the nine raw field values, in form order, into
// simulation parameters. The angle field is in degrees.
func ParseParams(values []string) (physics.Params, error) {
	if len(values) != numFields {
		return physics.Params{}, fmt.Errorf("expected %d values, got %d", numFields, len(values))
	}

	var v [numFields]float64
	for i, raw := range values {
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return physics.Params{}, &ParseError{Field: fieldLabels[i], Value: raw, Err: err}
		}
		v[i] = f
	}

	return physics.Params{
		G:      v[fieldGravity],
		L:      v[fieldLength],
		M:      v[fieldMass],
		B:      v[fieldDamping],
		Cd:     v[fieldDrag],
		Rho:    v[fieldDensity],
		A:      v[fieldArea],
		Theta0: v[fieldAngle] * math.Pi / 180,
		Omega0: v[fieldOmega],
	}, nil
}

type submitMsg struct {
	params physics.Params
}

// Form is the parameter entry screen. Focus index numFields is the start
// button.
type Form struct {
	inputs [numFields]textinput.Model
	focus  int
	err    error
}

func NewForm(def config.FormConfig) Form {
	defaults := [numFields]float64{
		def.Gravity, def.Length, def.Mass, def.Damping, def.Drag,
		def.Density, def.Area, def.AngleDeg, def.Omega,
	}

	var f Form
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 32
		ti.Width = 14
		ti.SetValue(formatDefault(defaults[i]))
		f.inputs[i] = ti
	}
	f.inputs[0].Focus()
	return f
}

func formatDefault(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (f Form) Values() []string {
	out := make([]string, numFields)
	for i, in := range f.inputs {
		out[i] = in.Value()
	}
	return out
}

func (f Form) Err() error { return f.err }

func (f *Form) SetError(err error) { f.err = err }

func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "shift+tab":
			return f.moveFocus(-1), nil
		case "down", "tab":
			return f.moveFocus(1), nil
		case "ctrl+s":
			return f.submit()
		case "enter":
			if f.focus >= numFields-1 {
				return f.submit()
			}
			return f.moveFocus(1), nil
		}
	}

	if f.focus >= numFields {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f Form) moveFocus(delta int) Form {
	next := f.focus + delta
	if next < 0 || next > numFields {
		return f
	}
	if f.focus < numFields {
		f.inputs[f.focus].Blur()
	}
	f.focus = next
	if f.focus < numFields {
		f.inputs[f.focus].Focus()
	}
	return f
}

func (f Form) submit() (Form, tea.Cmd) {
	params, err := ParseParams(f.Values())
	if err != nil {
		f.err = err
		return f, nil
	}
	f.err = nil
	return f, func() tea.Msg { return submitMsg{params: params} }
}

func (f Form) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("    " + cyan.Render("Pendulum Simulation - Parameters") + "\n")
	b.WriteString(dimmer.Render("    "+strings.Repeat("─", 50)) + "\n\n")

	for i, label := range fieldLabels {
		if i == f.focus {
			b.WriteString("  " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-34s", label)) + magenta.Render(f.inputs[i].View()) + "\n")
		} else {
			b.WriteString("    " + dim.Render(fmt.Sprintf("%-34s", label)) + dim.Render(f.inputs[i].View()) + "\n")
		}
	}

	b.WriteString("\n")
	button := "[ Start Simulation ]"
	if f.focus == numFields {
		b.WriteString("  " + cyan.Render("▸ ") + green.Render(button) + "\n")
	} else {
		b.WriteString("    " + dim.Render(button) + "\n")
	}

	if f.err != nil {
		b.WriteString("\n    " + red.Render(f.err.Error()) + "\n")
	}

	b.WriteString("\n" + dim.Render("    ↑↓ field  enter next/start  ctrl+s start  esc quit") + "\n")
	return b.String()
}
