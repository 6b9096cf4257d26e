package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cplxtris/internal/registry"
	"github.com/vovakirdan/cplxtris/internal/storage"
)

const (
	// statsPanelWidth is the width of the summary panel next to the table.
	statsPanelWidth = 24
	// wideLayoutWidth is the narrowest terminal that fits table and panel side by side.
	wideLayoutWidth = 76
	dateLayout      = "Jan 02 15:04"
	loadTimeout     = 2 * time.Second
)

// ScoreboardKeyMap defines the key bindings of the high score screen.
type ScoreboardKeyMap struct {
	Scroll   key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Reload   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextMode, k.PrevMode, k.Scroll, k.Reload, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns the default scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Scroll:   key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev mode")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best scores of each registered mode, one mode at
// a time, next to a summary of every game played in that mode.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      storage.ScoreStore
	scores     []storage.ScoreEntry
	stats      storage.GameStats
	loadErr    error
	table      table.Model
	keys       ScoreboardKeyMap
	help       help.Model
	width      int
	height     int
	quitting   bool
	back       bool
}

// NewScoreboardModel creates a scoreboard for a width×height terminal.
// store may be nil, in which case every mode shows as empty.
func NewScoreboardModel(store storage.ScoreStore, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = newScoreTable(width, height)
	m.reload()
	return m
}

func newScoreTable(width, height int) table.Model {
	dateW := 12
	if width >= wideLayoutWidth+8 {
		dateW += 4
	}
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Score", Width: 8},
		{Title: "Lines", Width: 6},
		{Title: "Level", Width: 6},
		{Title: "Played", Width: dateW},
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(accentColor).
		Background(lipgloss.Color("57")).
		Bold(false)

	return table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(min(storage.DefaultLimit, max(3, height-10))),
		table.WithStyles(styles),
	)
}

// current returns the mode being shown.
func (m ScoreboardModel) current() (registry.GameInfo, bool) {
	if len(m.games) == 0 {
		return registry.GameInfo{}, false
	}
	return m.games[m.gameCursor], true
}

// reload fetches the top scores and totals of the current mode.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats, m.loadErr = nil, storage.GameStats{}, nil

	game, ok := m.current()
	if ok && m.store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		m.scores, m.loadErr = m.store.TopScores(ctx, game.ID, storage.DefaultLimit)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.Stats(ctx, game.ID)
		}
	}

	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Lines),
			strconv.Itoa(s.Level),
			s.CreatedAt.Local().Format(dateLayout),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) cycle(step int) {
	if n := len(m.games); n > 0 {
		m.gameCursor = (m.gameCursor + step + n) % n
		m.reload()
	}
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.cycle(-1)
			return m, nil
		case key.Matches(msg, m.keys.Reload):
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newScoreTable(msg.Width, msg.Height)
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the mode tabs, the score table and the summary panel.
func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	scores := panelStyle.Render(m.renderScores())
	summary := panelStyle.Width(statsPanelWidth).Render(m.renderSummary())
	if m.width >= wideLayoutWidth {
		b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, scores, " ", summary), m.width))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, scores, summary))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(g.Title)
		}
	}
	line := strings.Join(tabs, " ")
	if game, ok := m.current(); ok && lipgloss.Width(line) > m.width {
		return fmt.Sprintf("< %s >", game.Title)
	}
	return line
}

func (m ScoreboardModel) renderScores() string {
	switch {
	case m.loadErr != nil:
		return errorStyle.Padding(1, 2).Render("Cannot load scores:\n" + m.loadErr.Error())
	case len(m.scores) == 0:
		return dimStyle.Italic(true).Padding(2, 4).
			Render("No scores recorded yet.\nFinish a game to get on the board.")
	}
	return m.table.View()
}

func (m ScoreboardModel) renderSummary() string {
	s := m.stats
	last := "never"
	if s.GamesCount > 0 {
		last = s.LastPlayed.Local().Format(dateLayout)
	}
	rows := [][2]string{
		{"Games", strconv.Itoa(s.GamesCount)},
		{"Best", strconv.Itoa(s.HighScore)},
		{"Average", fmt.Sprintf("%.0f", s.AvgScore)},
		{"Total", strconv.FormatInt(s.TotalScore, 10)},
		{"Last", last},
	}

	var b strings.Builder
	b.WriteString(activeStyle.Render("Summary"))
	for _, r := range rows {
		fmt.Fprintf(&b, "\n%-8s %s", r[0], r[1])
	}
	return b.String()
}

// WantsMenu reports whether the player left with back rather than quit.
func (m ScoreboardModel) WantsMenu() bool {
	return m.back
}

// RunScoreboard shows the scoreboard until the player leaves.
// It returns true when the player asked to go back to the menu.
func RunScoreboard(store storage.ScoreStore, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.WantsMenu(), nil
}
