package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/chaoslab/internal/dynamo"
)

const (
	liveWidth  = 72
	liveHeight = 22
	trailCap   = 4000
	stepsFrame = 8
)

type TickMsg time.Time

type trailPoint struct{ x, y float64 }

// Model is the bubbletea model for the live attractor view. It integrates
// a few steps per frame and draws the projected trajectory with a trail.
type Model struct {
	sys     dynamo.System
	stepper dynamo.Stepper
	state   dynamo.State
	initial dynamo.State
	t, dt   float64

	xIdx, yIdx int
	trail      []trailPoint
	canvas     *Canvas

	running  bool
	showHelp bool

	params   map[string]float64
	keys     []string
	selected int
}

func NewModel(sys dynamo.System, stepper dynamo.Stepper, initState []float64, dt float64) Model {
	params := make(map[string]float64)
	if tunable, ok := sys.(dynamo.Configurable); ok {
		for k, v := range tunable.Params() {
			params[k] = v
		}
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	yIdx := 1
	if sys.Dim() >= 3 {
		yIdx = 2 // x-z projection shows the Lorenz wings
	}

	return Model{
		sys:     sys,
		stepper: stepper,
		state:   dynamo.State(initState).Clone(),
		initial: dynamo.State(initState).Clone(),
		dt:      dt,
		xIdx:    0,
		yIdx:    yIdx,
		trail:   make([]trailPoint, 0, trailCap),
		canvas:  NewCanvas(liveWidth, liveHeight),
		running: true,
		params:  params,
		keys:    keys,
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.running {
			for i := 0; i < stepsFrame; i++ {
				m.state = m.stepper.Step(m.sys, m.state, m.t, m.dt)
				m.t += m.dt
				if !m.state.IsValid() {
					m.running = false
					break
				}
				m.trail = append(m.trail, trailPoint{m.state[m.xIdx], m.state[m.yIdx]})
			}
			if len(m.trail) > trailCap {
				m.trail = m.trail[len(m.trail)-trailCap:]
			}
		}
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.state = m.initial.Clone()
			m.t = 0
			m.trail = m.trail[:0]
			m.running = true
		case "tab":
			if len(m.keys) > 0 {
				m.selected = (m.selected + 1) % len(m.keys)
			}
		case "up", "+":
			m.nudgeParam(1.05)
		case "down", "-":
			m.nudgeParam(1 / 1.05)
		case "h", "?":
			m.showHelp = !m.showHelp
		}
	}
	return m, nil
}

func (m *Model) nudgeParam(factor float64) {
	if len(m.keys) == 0 {
		return
	}
	tunable, ok := m.sys.(dynamo.Configurable)
	if !ok {
		return
	}
	key := m.keys[m.selected]
	v := m.params[key] * factor
	if v == 0 {
		v = 0.01
	}
	if err := tunable.SetParam(key, v); err == nil {
		m.params[key] = v
	}
}

func (m Model) View() string {
	m.canvas.Clear()

	if len(m.trail) > 1 {
		b := newBounds(m.trail[0].x, m.trail[0].y)
		for _, p := range m.trail {
			b.add(p.x, p.y)
		}
		b.pad(0.05)

		prev := m.trail[0]
		for _, p := range m.trail[1:] {
			m.canvas.plotSegment(b, prev.x, prev.y, p.x, p.y)
			prev = p
		}
	}

	var stats strings.Builder
	stats.WriteString(HeaderStyle.Render(m.sys.Name()) + "\n")
	stats.WriteString(LabelStyle.Render("t") + ValueStyle.Render(fmt.Sprintf("%.2f", m.t)) + "\n")
	for i, v := range m.state {
		stats.WriteString(LabelStyle.Render(fmt.Sprintf("x%d", i)) + ValueStyle.Render(fmt.Sprintf("%+.4f", v)) + "\n")
	}
	stats.WriteString("\n")
	for i, key := range m.keys {
		line := fmt.Sprintf("%-8s %.4f", key, m.params[key])
		if i == m.selected {
			stats.WriteString(ActiveParamStyle.Render("> "+line) + "\n")
		} else {
			stats.WriteString(ValueStyle.Render("  "+line) + "\n")
		}
	}
	status := "running"
	if !m.running {
		status = "paused"
	}
	stats.WriteString("\n" + LabelStyle.Render("status") + ValueStyle.Render(status))

	view := lipgloss.JoinHorizontal(lipgloss.Top,
		CanvasStyle.Render(m.canvas.String()),
		stats.String(),
	)

	help := "space pause · r reset · tab param · +/- nudge · q quit"
	if m.showHelp {
		help += "\nthe view projects the trajectory onto the x" +
			fmt.Sprintf("%d-x%d plane; nudging a parameter takes effect immediately", m.xIdx, m.yIdx)
	}

	return view + "\n" + HelpStyle.Render(help)
}
