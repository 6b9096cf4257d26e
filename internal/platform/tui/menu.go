package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cplxtris/internal/config"
	"github.com/vovakirdan/cplxtris/internal/core"
	"github.com/vovakirdan/cplxtris/internal/registry"
	"github.com/vovakirdan/cplxtris/internal/storage"
)

const menuHint = "↑/↓ mode · ←/→ difficulty · enter play · tab scores · v visualizer · q quit"

// MenuItem is one playable mode with the best score recorded for it.
type MenuItem struct {
	registry.GameInfo
	Best int
}

// MenuModel lets the player pick a mode and a difficulty preset, or open
// the scoreboard or the function visualizer.
type MenuModel struct {
	items  []MenuItem
	cursor int
	preset int // index into config.Presets
	config core.RuntimeConfig
	keys   *KeyMapper

	done   bool
	result MenuResult
}

// MenuResult is what the player chose. Exactly one of GameID,
// WantsScoreboard, WantsVisualizer and Quit is set.
type MenuResult struct {
	GameID          string
	Preset          config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	WantsVisualizer bool
	Quit            bool
}

// NewMenuModel lists every registered mode with its best score. store may
// be nil, in which case no best scores are shown.
func NewMenuModel(store storage.ScoreStore, cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	m := MenuModel{
		config: cfg,
		keys:   NewKeyMapper(),
	}
	for _, info := range registry.List() {
		m.items = append(m.items, MenuItem{GameInfo: info, Best: bestScore(store, info.ID)})
	}
	for i, p := range config.Presets {
		if p == preset {
			m.preset = i
		}
	}
	return m
}

func bestScore(store storage.ScoreStore, gameID string) int {
	if store == nil {
		return 0
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	best, err := store.HighScore(ctx, gameID)
	if err != nil {
		return 0
	}
	return best
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(config.Presets)
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, max(len(m.items)-1, 0))
	case MenuActionLeft:
		m.preset = (m.preset + n - 1) % n
	case MenuActionRight:
		m.preset = (m.preset + 1) % n
	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		return m.finish(MenuResult{GameID: m.items[m.cursor].ID})
	case MenuActionScoreboard:
		return m.finish(MenuResult{WantsScoreboard: true})
	case MenuActionVisualizer:
		return m.finish(MenuResult{WantsVisualizer: true})
	case MenuActionQuit, MenuActionBack:
		return m.finish(MenuResult{Quit: true})
	}
	return m, nil
}

func (m MenuModel) finish(r MenuResult) (tea.Model, tea.Cmd) {
	r.Preset = m.Preset()
	r.Config = m.config
	m.done, m.result = true, r
	return m, tea.Quit
}

// View renders the title, the mode list and the difficulty selector.
func (m MenuModel) View() string {
	if m.done {
		return ""
	}
	width := m.config.ScreenW

	var modes strings.Builder
	for i, item := range m.items {
		if i > 0 {
			modes.WriteByte('\n')
		}
		line := fmt.Sprintf("  %-16s best %6d", item.Title, item.Best)
		if i == m.cursor {
			line = activeStyle.Render("> " + line[2:])
		}
		modes.WriteString(line)
	}

	preset := m.Preset()
	difficulty := fmt.Sprintf("Difficulty  < %s >\n%s", activeStyle.Render(string(preset)), dimStyle.Render(preset.Describe()))

	body := lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Render(modes.String()),
		"",
		difficulty,
	)

	lines := []string{
		"",
		titleStyle.Render("C P L X T R I S"),
		dimStyle.Render("tetris on the complex plane"),
		"",
	}
	lines = append(lines, strings.Split(body, "\n")...)
	if len(m.items) > 0 {
		if c := m.items[m.cursor].Controls; c != "" {
			lines = append(lines, "", dimStyle.Render(c))
		}
	}
	lines = append(lines, "", dimStyle.Render(menuHint))

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(centerText(l, width))
		b.WriteByte('\n')
	}
	return b.String()
}

// Preset returns the difficulty currently shown.
func (m MenuModel) Preset() config.DifficultyPreset {
	return config.Presets[m.preset]
}

// Result returns the player's choice. A menu that was never completed
// reports Quit.
func (m MenuModel) Result() MenuResult {
	if !m.done {
		return MenuResult{Preset: m.Preset(), Config: m.config, Quit: true}
	}
	return m.result
}

// RunMenu shows the menu and returns the player's choice.
func RunMenu(store storage.ScoreStore, cfg core.RuntimeConfig, preset config.DifficultyPreset) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg, preset), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
