package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/odelab"
)

type liveModel struct {
	problem string
	f       odelab.Func
	method  odelab.Method
	grid    []float64
	h       float64

	xs     []float64
	filled int

	paused bool
	done   bool

	stepsPerTick int
	width        int
	height       int
}

func newLiveModel(problem string, f odelab.Func, m odelab.Method, n int, xi, ti, tf float64) (liveModel, error) {
	grid, err := odelab.Grid(n, ti, tf)
	if err != nil {
		return liveModel{}, err
	}

	xs := make([]float64, n)
	xs[0] = xi

	// Spread the march over roughly four seconds of animation.
	stepsPerTick := n/240 + 1

	return liveModel{
		problem:      problem,
		f:            f,
		method:       m,
		grid:         grid,
		h:            odelab.StepSize(n, ti, tf),
		xs:           xs,
		filled:       1,
		stepsPerTick: stepsPerTick,
		width:        80,
		height:       24,
	}, nil
}

// RunLive animates a solve step by step in the terminal.
func RunLive(problem string, f odelab.Func, m odelab.Method, n int, xi, ti, tf float64) error {
	model, err := newLiveModel(problem, f, m, n, xi, ti, tf)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m liveModel) Init() tea.Cmd { return tick() }

func (m liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.filled = 1
			m.done = false
			m.paused = false
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if !m.paused && !m.done {
			for i := 0; i < m.stepsPerTick && m.filled < len(m.xs); i++ {
				prev := m.filled - 1
				m.xs[m.filled] = m.method.Advance(m.f, m.xs[prev], m.grid[prev], m.h)
				m.filled++
			}
			if m.filled == len(m.xs) {
				m.done = true
			}
		}
		return m, tick()
	}

	return m, nil
}

func (m liveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s · %s", m.problem, m.method.Name())))
	b.WriteString("\n\n")

	if m.filled >= 2 {
		graphWidth := m.width - 12
		if graphWidth < 20 {
			graphWidth = 20
		}
		graphHeight := m.height - 8
		if graphHeight < 5 {
			graphHeight = 5
		}
		b.WriteString(asciigraph.Plot(m.xs[:m.filled],
			asciigraph.Width(graphWidth),
			asciigraph.Height(graphHeight),
		))
		b.WriteString("\n\n")
	}

	last := m.filled - 1
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s\n",
		labelStyle.Render("step"),
		valueStyle.Render(fmt.Sprintf("%d/%d", m.filled, len(m.xs))),
		labelStyle.Render("t"),
		valueStyle.Render(fmt.Sprintf("%.4f", m.grid[last])),
		labelStyle.Render("x"),
		valueStyle.Render(fmt.Sprintf("%.6f", m.xs[last])),
	))

	switch {
	case m.done:
		b.WriteString(doneStyle.Render("done"))
	case m.paused:
		b.WriteString(pausedStyle.Render("paused"))
	default:
		b.WriteString(runningStyle.Render("running"))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space pause · r restart · q quit"))

	return b.String()
}
