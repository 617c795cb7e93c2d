package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/astrohop/internal/storage"
)

const (
	minWidthForSidebar = 80 // narrower terminals get player tabs instead
	sidebarWidth       = 20
	maxScores          = 100

	// allPlayers is the first filter entry; it shows every run.
	allPlayers = "All players"
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle    = boardActiveStyle.Background(lipgloss.Color("57")).Padding(0, 1)
	boardEmptyStyle  = boardDimStyle.Italic(true).Padding(2, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Next, k.Prev}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next player")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev player")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists saved runs for one game, filtered by player.
type ScoreboardModel struct {
	store  *storage.Store
	gameID string
	title  string

	players []string // allPlayers first, then everyone with a saved run
	cursor  int
	scores  []storage.ScoreEntry
	stats   *storage.GameStats

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard for one game. A nil store shows
// an empty board.
func NewScoreboardModel(store *storage.Store, gameID, title string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:   store,
		gameID:  gameID,
		title:   title,
		players: []string{allPlayers},
		help:    help.New(),
		keys:    DefaultScoreboardKeyMap(),
		width:   width,
		height:  height,
	}

	if store != nil {
		if players, err := store.Players(gameID); err == nil {
			m.players = append(m.players, players...)
		}
		if stats, err := store.GetGameStats(gameID); err == nil {
			m.stats = stats
		}
	}

	m.table = m.newTable()
	m.loadScores()
	return m
}

func (m ScoreboardModel) sidebar() bool {
	return m.width >= minWidthForSidebar
}

func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 12},
		{Title: "Gems", Width: 6},
		{Title: "Round", Width: 6},
		{Title: "Date", Width: 14},
	}

	avail := m.width - 4
	if m.sidebar() {
		avail -= sidebarWidth + 3
	}
	if avail > 60 {
		columns[1].Width = min(avail-46, 20)
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	return table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
		table.WithStyles(styles),
	)
}

func (m *ScoreboardModel) loadScores() {
	m.scores = nil
	if m.store != nil {
		var err error
		if m.cursor == 0 {
			m.scores, err = m.store.TopScores(m.gameID, maxScores)
		} else {
			m.scores, err = m.store.TopScoresFor(m.gameID, m.players[m.cursor], maxScores)
		}
		if err != nil {
			m.scores = nil
		}
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			"#" + strconv.Itoa(i+1),
			s.Player,
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Round),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// selectPlayer moves the player filter by delta, wrapping around.
func (m *ScoreboardModel) selectPlayer(delta int) {
	n := len(m.players)
	m.cursor = ((m.cursor+delta)%n + n) % n
	m.loadScores()
}

// Init initializes the scoreboard model.
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
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.selectPlayer(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.selectPlayer(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = m.newTable()
		m.fillRows()
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES - " + m.title
	if m.cursor > 0 {
		title += " - " + m.players[m.cursor]
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")
	if m.sidebar() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.playerList(), "  ", m.scorePanel()))
	} else {
		b.WriteString(centerText(m.playerTabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(m.scorePanel(), m.width))
	}
	b.WriteString("\n")
	if line := m.statsLine(); line != "" {
		b.WriteString(boardDimStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) playerList() string {
	var b strings.Builder
	b.WriteString("Players\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	for i, name := range m.players {
		b.WriteString("\n")
		name = shorten(name, sidebarWidth-6)
		if i == m.cursor {
			b.WriteString(boardActiveStyle.Render("> " + name))
		} else {
			b.WriteString("  " + name)
		}
	}
	return boardPanelStyle.Width(sidebarWidth).Render(b.String())
}

func (m ScoreboardModel) playerTabs() string {
	tabs := make([]string, len(m.players))
	for i, name := range m.players {
		name = shorten(name, 10)
		if i == m.cursor {
			tabs[i] = boardTabStyle.Render(name)
		} else {
			tabs[i] = boardDimStyle.Render(" " + name + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< %s >", m.players[m.cursor])
	}
	return line
}

func (m ScoreboardModel) scorePanel() string {
	if len(m.scores) == 0 {
		return boardPanelStyle.Render(boardEmptyStyle.Render("No runs recorded yet.\nCollect a gem to set a high score!"))
	}
	return boardPanelStyle.Render(m.table.View())
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d runs  best %d gems  furthest round %d  avg %.1f",
		m.stats.GamesCount, m.stats.HighScore, m.stats.BestRound, m.stats.AvgScore)
}

// shorten cuts s to at most n runes, marking the cut with a dot.
func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack reports whether the board was closed with back rather than quit.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard for one game until the user leaves.
// It reports whether the user went back rather than quit.
func RunScoreboard(store *storage.Store, gameID, title string, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, gameID, title, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if lipgloss.Width(text) >= width {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
