package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cplxtris/internal/cnum"
	"github.com/vovakirdan/cplxtris/internal/core"
	"github.com/vovakirdan/cplxtris/internal/visualizer"
)

const (
	minRange  = 0.5
	maxRange  = 12
	rangeStep = 0.5
)

// VisualizerKeyMap defines the key bindings of the function visualizer.
type VisualizerKeyMap struct {
	Funcs     [4]key.Binding
	Replay    key.Binding
	Magnitude key.Binding
	Phase     key.Binding
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	Help      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k VisualizerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Funcs[0], k.Funcs[1], k.Funcs[2], k.Funcs[3], k.Replay, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k VisualizerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Funcs[:],
		{k.Replay, k.Magnitude, k.Phase},
		{k.ZoomIn, k.ZoomOut, k.Help, k.Back, k.Quit},
	}
}

// DefaultVisualizerKeyMap returns the default visualizer bindings.
func DefaultVisualizerKeyMap() VisualizerKeyMap {
	var funcs [4]key.Binding
	for i, f := range cnum.Funcs {
		n := fmt.Sprint(i + 1)
		funcs[i] = key.NewBinding(key.WithKeys(n), key.WithHelp(n, f.Symbol()))
	}
	return VisualizerKeyMap{
		Funcs:     funcs,
		Replay:    key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "replay")),
		Magnitude: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "magnitude")),
		Phase:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "phase")),
		ZoomIn:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "zoom out")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Back:      key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// VisualizerModel animates z → f(z) over a grid of the complex plane.
type VisualizerModel struct {
	fn       cnum.Func
	opts     visualizer.Options
	anim     *visualizer.Animation
	screen   *core.Screen
	keys     VisualizerKeyMap
	help     help.Model
	tickRate int
	quitting bool
	back     bool
}

// NewVisualizerModel creates a visualizer showing f. frames is the length
// of the morph animation in ticks.
func NewVisualizerModel(f cnum.Func, opts visualizer.Options, frames int, cfg core.RuntimeConfig) VisualizerModel {
	anim := visualizer.NewAnimation(frames)
	anim.Start()
	return VisualizerModel{
		fn:       f,
		opts:     opts,
		anim:     anim,
		screen:   core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		keys:     DefaultVisualizerKeyMap(),
		help:     help.New(),
		tickRate: cfg.TickRate,
	}
}

// Init starts the animation clock.
func (m VisualizerModel) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages for the visualizer.
func (m VisualizerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(1, msg.Height-1))
		m.help.Width = msg.Width

	case TickMsg:
		m.anim.Tick()
		return m, tickCmd(m.tickRate)
	}
	return m, nil
}

func (m VisualizerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.back = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Replay):
		m.anim.Start()
	case key.Matches(msg, m.keys.Magnitude):
		m.opts.ShowMagnitude = !m.opts.ShowMagnitude
	case key.Matches(msg, m.keys.Phase):
		m.opts.ShowPhase = !m.opts.ShowPhase
	case key.Matches(msg, m.keys.ZoomIn):
		m.opts.Range = max(minRange, m.opts.Range-rangeStep)
	case key.Matches(msg, m.keys.ZoomOut):
		m.opts.Range = min(maxRange, m.opts.Range+rangeStep)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		for i, b := range m.keys.Funcs {
			if key.Matches(msg, b) {
				m.fn = cnum.Funcs[i]
				m.anim.Start()
			}
		}
	}
	return m, nil
}

// Func returns the function being shown.
func (m VisualizerModel) Func() cnum.Func {
	return m.fn
}

// Options returns the current plot options.
func (m VisualizerModel) Options() visualizer.Options {
	return m.opts
}

// View draws the plot with a status line on top and the help bar below.
func (m VisualizerModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	s := m.screen
	s.Clear()
	status := fmt.Sprintf(" f(z) = %s   t = %.2f   range = ±%g", m.fn.Symbol(), m.anim.Progress(), m.opts.Range)
	s.DrawTextColor(0, 0, status, core.ColorBrightWhite)
	toggles := toggleText("magnitude", m.opts.ShowMagnitude) + "  " + toggleText("phase", m.opts.ShowPhase)
	s.DrawTextColor(s.Width()-len(toggles)-1, 0, toggles, core.ColorGray)

	visualizer.Render(s, core.NewRect(0, 1, s.Width(), s.Height()-1), m.fn, m.opts, m.anim.Progress())

	var b strings.Builder
	b.WriteString(RenderScreen(s))
	b.WriteByte('\n')
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func toggleText(name string, on bool) string {
	if on {
		return "[x] " + name
	}
	return "[ ] " + name
}

// RunVisualizer shows the visualizer until the player leaves.
// It returns true when the player asked to go back.
func RunVisualizer(f cnum.Func, opts visualizer.Options, frames int, cfg core.RuntimeConfig) (goBack bool, err error) {
	p := tea.NewProgram(
		NewVisualizerModel(f, opts, frames, cfg),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(VisualizerModel)
	return ok && m.back, nil
}
