package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/san-kum/pendulum/internal/config"
	"github.com/san-kum/pendulum/internal/sim"
)

type State int

const (
	StateIdle State = iota
	StateRunning
	StateLooping
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateLooping:
		return "looping"
	default:
		return "idle"
	}
}

// App switches between the parameter form and the animation. While the
// animation is open the form does not receive input, so only one run is
// ever shown at a time.
type App struct {
	form   Form
	player *Player
	sim    *sim.Simulator
	log    *zap.Logger
	runs   int
	width  int
	height int
}

func NewApp(cfg *config.Config, log *zap.Logger) App {
	if log == nil {
		log = zap.NewNop()
	}
	return App{
		form:   NewForm(cfg.Form),
		sim:    sim.New(cfg.SimConfig(), log),
		log:    log,
		width:  80,
		height: 24,
	}
}

func (a App) State() State {
	switch {
	case a.player == nil:
		return StateIdle
	case a.player.Looping():
		return StateLooping
	default:
		return StateRunning
	}
}

func (a App) Init() tea.Cmd {
	return tea.SetWindowTitle("Pendulum Simulation - Parameters")
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "esc":
			if a.player == nil {
				return a, tea.Quit
			}
		}
	case submitMsg:
		return a.start(msg)
	case closeMsg:
		if a.player == nil {
			return a, nil
		}
		a.log.Info("animation closed", zap.Int("run", a.runs), zap.Int("frame", a.player.Frame()))
		a.player = nil
		return a, tea.Batch(tea.ClearScreen, tea.SetWindowTitle("Pendulum Simulation - Parameters"))
	}

	if a.player != nil {
		p, cmd := a.player.Update(msg)
		a.player = &p
		return a, cmd
	}

	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)
	return a, cmd
}

func (a App) start(msg submitMsg) (tea.Model, tea.Cmd) {
	tr, err := a.sim.Run(context.Background(), msg.params)
	if err != nil {
		a.log.Error("simulation failed", zap.Error(err))
		a.form.SetError(err)
		return a, nil
	}

	a.runs++
	a.log.Info("simulation started", zap.Int("run", a.runs), zap.Int("frames", tr.Len()))
	p := NewPlayer(tr, a.runs, a.width, a.height)
	a.player = &p
	return a, tea.Batch(tea.ClearScreen, tea.SetWindowTitle("Pendulum Simulation"), p.Init())
}

func (a App) View() string {
	if a.player != nil {
		return a.player.View()
	}
	return a.form.View()
}

func Run(cfg *config.Config, log *zap.Logger) error {
	p := tea.NewProgram(NewApp(cfg, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
