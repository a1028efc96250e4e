// Package viz renders the running sandbox in the terminal: an ascii canvas
// of atom positions plus a kinetic energy graph.
package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/atomica/internal/engine"
)

const (
	canvasWidth     = 72
	canvasHeight    = 22
	historyCapacity = 600
	ticksPerFrame   = 50
)

type TickMsg time.Time

// Model drives the live terminal view. Each frame advances the engine by a
// batch of ticks and projects nuclei onto the xy plane.
type Model struct {
	eng           *engine.Engine
	dt            float64
	sceneName     string
	canvas        *Canvas
	scale         float64
	running       bool
	showHelp      bool
	energyHistory []float64
	frame         string
}

func NewModel(eng *engine.Engine, dt float64, sceneName string) Model {
	return Model{
		eng:           eng,
		dt:            dt,
		sceneName:     sceneName,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		scale:         1.0,
		running:       true,
		energyHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "+", "=":
			m.scale *= 1.25
		case "-", "_":
			m.scale /= 1.25
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		m.draw()
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) step() {
	for i := 0; i < ticksPerFrame; i++ {
		if err := m.eng.Tick(m.dt); err != nil {
			return
		}
	}

	snap := m.eng.Snapshot()
	m.energyHistory = append(m.energyHistory, snap.KineticEnergy)
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
}

// draw projects every atom onto the canvas, autoscaled to the scene extent.
func (m *Model) draw() {
	m.canvas.Clear()

	atoms := m.eng.Atoms()
	if len(atoms) == 0 {
		m.frame = m.canvas.String()
		return
	}

	extent := 1.0
	for _, a := range atoms {
		p := a.Position()
		extent = math.Max(extent, math.Max(math.Abs(p.X()), math.Abs(p.Y())))
	}
	extent /= m.scale

	for _, a := range atoms {
		p := a.Position()
		x := int((p.X()/extent + 1) / 2 * float64(canvasWidth-1))
		y := int((1 - (p.Y()/extent+1)/2) * float64(canvasHeight-1))
		m.canvas.Set(x, y, symbolFor(a.AtomicNumber()))

		for _, e := range a.Electrons() {
			ex := int((e.Position.X()/extent + 1) / 2 * float64(canvasWidth-1))
			ey := int((1 - (e.Position.Y()/extent+1)/2) * float64(canvasHeight-1))
			m.canvas.Set(ex, ey, '.')
		}
	}

	m.frame = m.canvas.String()
}

func (m Model) View() string {
	snap := m.eng.Snapshot()

	var stats strings.Builder
	stats.WriteString(headerStyle.Render("atomica: "+m.sceneName) + "\n")
	stats.WriteString(statLine("time", fmt.Sprintf("%.3e s", snap.Time)))
	stats.WriteString(statLine("atoms", fmt.Sprintf("%d", len(m.eng.Atoms()))))
	stats.WriteString(statLine("molecules", fmt.Sprintf("%d", len(m.eng.Molecules()))))
	stats.WriteString(statLine("particles", fmt.Sprintf("%d", len(snap.Particles))))
	stats.WriteString(statLine("kinetic", fmt.Sprintf("%.3e J", snap.KineticEnergy)))
	stats.WriteString(statLine("zoom", fmt.Sprintf("%.2fx", m.scale)))

	state := "running"
	if !m.running {
		state = "paused"
	}
	stats.WriteString(statLine("state", state))

	if len(m.energyHistory) > 2 {
		graph := asciigraph.Plot(m.energyHistory,
			asciigraph.Height(6), asciigraph.Width(36),
			asciigraph.Caption("kinetic energy"))
		stats.WriteString(graphStyle.Render(graph))
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.frame),
		statsStyle.Render(stats.String()))

	if m.showHelp {
		main += helpStyle.Render("\nspace pause  +/- zoom  ? help  q quit")
	}
	return main
}

func statLine(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}

// Run starts the live view and blocks until the user quits.
func Run(eng *engine.Engine, dt float64, sceneName string) error {
	p := tea.NewProgram(NewModel(eng, dt, sceneName), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
