package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cplxtris/internal/core"
	"github.com/vovakirdan/cplxtris/internal/registry"
	"github.com/vovakirdan/cplxtris/internal/storage"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      storage.ScoreStore
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	back       bool // return to the menu instead of exiting
	scoreSaved bool // score already saved for the current game over
}

// Options configures a game model. Store and Logger may be nil.
type Options struct {
	Store  storage.ScoreStore
	Logger *log.Logger
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg = cfg.Normalized()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	logger.Info("game started", "game", game.ID(), "seed", cfg.Seed, "tick_rate", cfg.TickRate)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	quit, back := m.keys.MapKeyToFrame(msg, &m.inputFrame)
	switch {
	case quit:
		m.quitting = true
		return m, tea.Quit
	case back:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize keeps the running game when it can adapt to a new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	m.gameState = m.game.State()
	return m, nil
}

// handleTick runs one simulation step with the actions queued since the last one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	switch {
	case wasOver && !m.gameState.GameOver:
		m.scoreSaved = false
		m.logger.Info("game restarted", "game", m.game.ID())
	case m.gameState.GameOver && !m.scoreSaved:
		m.finish()
	}

	return m, tickCmd(m.config.TickRate)
}

// finish logs the result and saves it once. Saving is best-effort.
func (m *Model) finish() {
	m.scoreSaved = true
	st := m.gameState
	m.logger.Info("game over", "game", m.game.ID(), "score", st.Score, "lines", st.Lines, "level", st.Level)

	if m.store == nil || st.Score <= 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := m.store.SaveScore(ctx, storage.ScoreEntry{
		GameID: m.game.ID(),
		Score:  st.Score,
		Lines:  st.Lines,
		Level:  st.Level,
	})
	if err != nil {
		m.logger.Error("cannot save score", "game", m.game.ID(), "err", err)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".cplxtris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// WantsMenu reports whether the player asked to go back to the menu.
func (m Model) WantsMenu() bool {
	return m.back
}

// Run plays game until the player quits or goes back.
// It returns true when the player asked for the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.WantsMenu(), nil
}
