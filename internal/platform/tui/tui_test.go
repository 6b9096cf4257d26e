package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/cplxtris/internal/cnum"
	"github.com/vovakirdan/cplxtris/internal/config"
	"github.com/vovakirdan/cplxtris/internal/core"
	"github.com/vovakirdan/cplxtris/internal/games/cplxtris"
	"github.com/vovakirdan/cplxtris/internal/storage"
	storagemock "github.com/vovakirdan/cplxtris/internal/storage/mock"
	"github.com/vovakirdan/cplxtris/internal/visualizer"
)

type memStore struct {
	saved []storage.ScoreEntry
}

func (s *memStore) SaveScore(_ context.Context, e storage.ScoreEntry) (int64, error) {
	s.saved = append(s.saved, e)
	return int64(len(s.saved)), nil
}

func (s *memStore) TopScores(_ context.Context, gameID string, _ int) ([]storage.ScoreEntry, error) {
	var out []storage.ScoreEntry
	for _, e := range s.saved {
		if e.GameID == gameID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *memStore) HighScore(_ context.Context, gameID string) (int, error) {
	best := 0
	for _, e := range s.saved {
		if e.GameID == gameID {
			best = max(best, e.Score)
		}
	}
	return best, nil
}

func (s *memStore) Stats(ctx context.Context, gameID string) (storage.GameStats, error) {
	best, _ := s.HighScore(ctx, gameID)
	return storage.GameStats{GameID: gameID, HighScore: best}, nil
}

func (s *memStore) ClearScores(context.Context, string) error { return nil }
func (s *memStore) Close() error                              { return nil }

func keyRunes(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{keyRunes("d"), core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionRotate, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionHardDrop, false},
		{keyRunes("3"), core.ActionSlot3, false},
		{keyRunes("p"), core.ActionPause, false},
		{keyRunes("r"), core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{keyRunes("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{keyRunes("z"), core.ActionNone, false},
	}
	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			assert.Equal(t, tc.action, action)
			assert.Equal(t, tc.quit, quit)
		})
	}
}

func TestMapKeyToFrameKeepsOrder(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyUp}, &frame)
	quit, back := km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEsc}, &frame)
	assert.False(t, quit)
	assert.True(t, back)

	assert.Equal(t, []core.Action{core.ActionLeft, core.ActionRotate}, frame.Actions)
}

func TestMenuActions(t *testing.T) {
	km := NewKeyMapper()
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionVisualizer, km.MapKeyToMenuAction(keyRunes("v")))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionRight, km.MapKeyToMenuAction(keyRunes("l")))
}

// play feeds msg then one tick through the model.
func play(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func TestModelSavesScoreOnce(t *testing.T) {
	store := &memStore{}
	var logs bytes.Buffer
	m := NewModel(cplxtris.NewClassic(), testRuntime(), Options{
		Store:  store,
		Logger: log.New(&logs),
	})

	for range 200 {
		if m.State().GameOver {
			break
		}
		m = play(m, tea.KeyMsg{Type: tea.KeyEnter})
	}
	require.True(t, m.State().GameOver)

	for range 10 {
		m = play(m)
	}
	assert.Contains(t, logs.String(), "game over")
	if m.State().Score > 0 {
		require.Len(t, store.saved, 1)
		assert.Equal(t, cplxtris.IDClassic, store.saved[0].GameID)
		assert.Equal(t, m.State().Score, store.saved[0].Score)
	} else {
		assert.Empty(t, store.saved, "zero scores are not recorded")
	}

	m = play(m, keyRunes("r"))
	assert.False(t, m.State().GameOver)
	assert.Contains(t, logs.String(), "game restarted")
}

func TestModelFinishSavesEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storagemock.NewMockScoreStore(ctrl)
	var logs bytes.Buffer

	m := NewModel(cplxtris.NewComplex(), testRuntime(), Options{Store: store, Logger: log.New(&logs)})
	m.gameState = core.GameState{Score: 500, Lines: 5, Level: 0, GameOver: true}

	store.EXPECT().
		SaveScore(gomock.Any(), storage.ScoreEntry{GameID: cplxtris.IDComplex, Score: 500, Lines: 5}).
		Return(int64(0), errors.New("disk full"))

	m.finish()
	assert.True(t, m.scoreSaved)
	assert.Contains(t, logs.String(), "cannot save score")
	assert.Contains(t, logs.String(), "disk full")
}

func TestModelFinishSkipsZeroScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storagemock.NewMockScoreStore(ctrl)

	m := NewModel(cplxtris.NewClassic(), testRuntime(), Options{Store: store})
	m.gameState = core.GameState{GameOver: true}
	m.finish()
	assert.True(t, m.scoreSaved)
}

func TestModelQuitAndBack(t *testing.T) {
	m := NewModel(cplxtris.NewComplex(), testRuntime(), Options{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.True(t, next.(Model).WantsMenu())
	assert.Empty(t, next.(Model).View())

	next, cmd = m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.False(t, next.(Model).WantsMenu())
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := NewModel(cplxtris.NewClassic(), testRuntime(), Options{})
	m = play(m, tea.KeyMsg{Type: tea.KeyEnter})
	before := m.View()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	m = next.(Model)
	assert.True(t, m.State().Paused)

	next, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)
	assert.False(t, m.State().Paused)
	assert.Equal(t, before, m.View(), "the board survives a resize")
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.SetColor(2, 0, 'x', core.ColorRed)
	s.SetColor(3, 1, 'y', core.Color(200))

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ab"))
	assert.Contains(t, lines[0], "x")
	assert.Contains(t, lines[1], "y", "unknown colors fall back to the default style")
}

func TestMenuModel(t *testing.T) {
	store := &memStore{}
	_, _ = store.SaveScore(context.Background(), storage.ScoreEntry{GameID: cplxtris.IDClassic, Score: 900})

	m := NewMenuModel(store, testRuntime(), config.DifficultyHard)
	assert.Equal(t, config.DifficultyHard, m.Preset())
	assert.Contains(t, m.View(), "900")
	assert.Contains(t, m.View(), "Rotate", "the selected mode shows its controls")

	next, _ := m.Update(keyRunes("l"))
	m = next.(MenuModel)
	assert.Equal(t, config.DifficultyFixed, m.Preset())
	assert.Contains(t, m.View(), "constant speed")
	next, _ = m.Update(keyRunes("l"))
	m = next.(MenuModel)
	assert.Equal(t, config.DifficultyEasy, m.Preset(), "presets wrap around")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	res := next.(MenuModel).Result()
	assert.False(t, res.Quit)
	assert.NotEmpty(t, res.GameID)
	assert.Equal(t, config.DifficultyEasy, res.Preset)

	next, _ = m.Update(keyRunes("v"))
	assert.True(t, next.(MenuModel).Result().WantsVisualizer)

	next, _ = m.Update(keyRunes("q"))
	assert.True(t, next.(MenuModel).Result().Quit)
}

func TestScoreboardModel(t *testing.T) {
	store := &memStore{}
	_, _ = store.SaveScore(context.Background(), storage.ScoreEntry{GameID: cplxtris.IDClassic, Score: 1200, Lines: 12, Level: 1})

	m := NewScoreboardModel(store, 100, 30)
	view := m.View()
	assert.Contains(t, view, "HIGH SCORES")

	for range len(m.games) {
		if m.games[m.gameCursor].ID == cplxtris.IDClassic {
			break
		}
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
	}
	require.Len(t, m.scores, 1)
	view = m.View()
	assert.Contains(t, view, "1200")
	assert.Contains(t, view, "Summary")

	next, _ := m.Update(keyRunes("b"))
	assert.True(t, next.(ScoreboardModel).WantsMenu())

	empty := NewScoreboardModel(nil, 60, 20)
	assert.Contains(t, empty.View(), "No scores recorded yet")
}

func TestScoreboardShowsLoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storagemock.NewMockScoreStore(ctrl)
	store.EXPECT().
		TopScores(gomock.Any(), gomock.Any(), storage.DefaultLimit).
		Return(nil, errors.New("connection refused")).
		AnyTimes()

	m := NewScoreboardModel(store, 100, 30)
	view := m.View()
	assert.Contains(t, view, "Cannot load scores")
	assert.Contains(t, view, "connection refused")
}

func TestVisualizerModel(t *testing.T) {
	m := NewVisualizerModel(cnum.FuncRotation, visualizer.DefaultOptions(), 4, testRuntime())
	assert.Contains(t, m.View(), "f(z) = i·z")

	step := func(msg tea.Msg) {
		next, _ := m.Update(msg)
		m = next.(VisualizerModel)
	}

	step(keyRunes("2"))
	assert.Equal(t, cnum.FuncSquare, m.Func())
	assert.Contains(t, m.View(), "t = 0.00")

	for range 4 {
		step(TickMsg{})
	}
	assert.Contains(t, m.View(), "t = 1.00")

	step(keyRunes("m"))
	assert.False(t, m.Options().ShowMagnitude)
	step(keyRunes("p"))
	assert.False(t, m.Options().ShowPhase)

	step(keyRunes("-"))
	assert.Equal(t, 3.5, m.Options().Range)
	for range 20 {
		step(keyRunes("+"))
	}
	assert.Equal(t, minRange, m.Options().Range)
}
