package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/pendulum/internal/sim"
	"github.com/san-kum/pendulum/internal/viz"
)

type frameMsg struct {
	run int
}

type closeMsg struct{}

// Player replays a precomputed trajectory, one frame per sample step,
// starting over after the last frame until it is closed.
type Player struct {
	tr       *sim.Trajectory
	run      int
	frame    int
	looping  bool
	interval time.Duration
	width    int
	height   int
}

func NewPlayer(tr *sim.Trajectory, run, width, height int) Player {
	return Player{
		tr:       tr,
		run:      run,
		interval: time.Duration(tr.Step * float64(time.Second)),
		width:    width,
		height:   height,
	}
}

func (p Player) Frame() int                  { return p.frame }
func (p Player) Looping() bool               { return p.looping }
func (p Player) Trajectory() *sim.Trajectory { return p.tr }

func (p Player) tick() tea.Cmd {
	run := p.run
	return tea.Tick(p.interval, func(time.Time) tea.Msg { return frameMsg{run: run} })
}

func (p Player) Init() tea.Cmd { return p.tick() }

func (p Player) Update(msg tea.Msg) (Player, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.run != p.run {
			return p, nil
		}
		p.frame++
		if p.frame >= p.tr.Len() {
			p.frame = 0
			p.looping = true
		}
		return p, p.tick()
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return p, func() tea.Msg { return closeMsg{} }
		}
	}
	return p, nil
}

func (p Player) View() string {
	var b strings.Builder

	status := viz.StatusRunning.Render("● running")
	if p.looping {
		status = viz.StatusLooping.Render("↻ looping")
	}
	s := p.tr.Samples[p.frame]
	b.WriteString(fmt.Sprintf("\n  %s  %s\n\n", status,
		dim.Render(fmt.Sprintf("t=%.2fs  frame %d/%d", s.T, p.frame+1, p.tr.Len()))))

	b.WriteString(viz.Frame(p.tr, p.frame, p.width, p.height))
	b.WriteString("\n" + viz.KeyHint.Render("  q close  ctrl+c quit") + "\n")
	return b.String()
}
