package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// scoreboardLimit caps how many runs one list loads.
const scoreboardLimit = 50

// listMode selects which runs the scoreboard lists.
type listMode int

const (
	listBest listMode = iota
	listRecent
)

func (l listMode) String() string {
	if l == listRecent {
		return "Recent Runs"
	}
	return "Best Runs"
}

type scoreboardKeys struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Leave  key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding  { return []key.Binding{k.Up, k.Down, k.Switch, k.Leave} }
func (k scoreboardKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var boardKeys = scoreboardKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Switch: key.NewBinding(key.WithKeys("tab", "left", "right"), key.WithHelp("tab", "best/recent")),
	Leave:  key.NewBinding(key.WithKeys("esc", "b", "q", "ctrl+c"), key.WithHelp("esc/q", "leave")),
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7FDBFF"))
	boardModeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFDC00"))
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#39CCCC")).Padding(0, 1)
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Scoreboard browses the stored runs of one game, toggling between
// the best and the most recent runs.
type Scoreboard struct {
	store  *storage.Store
	gameID string
	title  string
	mode   listMode
	runs   []storage.RunEntry
	stats  *storage.GameStats
	err    error
	table  table.Model
	help   help.Model
	width  int
	height int
}

// NewScoreboard loads the best runs of gameID.
func NewScoreboard(store *storage.Store, gameID, title string, width, height int) Scoreboard {
	m := Scoreboard{
		store:  store,
		gameID: gameID,
		title:  title,
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

func (m *Scoreboard) reload() {
	load := m.store.TopRuns
	if m.mode == listRecent {
		load = m.store.RecentRuns
	}
	m.runs, m.err = load(m.gameID, scoreboardLimit)
	if m.err == nil {
		m.stats, m.err = m.store.GetGameStats(m.gameID)
	}
	m.layout()
}

// layout rebuilds the table for the current size and runs.
func (m *Scoreboard) layout() {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 6},
		{Title: "Height", Width: 7},
		{Title: "Landed", Width: 7},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: 12},
	}
	if m.width < 60 {
		columns = []table.Column{columns[0], columns[1], columns[2], columns[5]}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = RunRow(i+1, r, len(columns))
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("#7FDBFF"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("#111111")).Background(lipgloss.Color("#FFDC00"))

	m.table = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-9)),
		table.WithStyles(styles),
	)
	m.help.Width = m.width
}

// RunRow formats a run for a table with the given number of columns.
func RunRow(rank int, r storage.RunEntry, columns int) table.Row {
	row := table.Row{
		fmt.Sprintf("%d", rank),
		fmt.Sprintf("%d", r.Stats.Score),
		fmt.Sprintf("%d", r.Stats.MaxHeight),
		fmt.Sprintf("%d", r.Stats.PlatformsLanded),
		fmt.Sprintf("%d:%02d", r.Stats.ElapsedSeconds/60, r.Stats.ElapsedSeconds%60),
		r.CreatedAt.Format("Jan 02 15:04"),
	}
	if columns == 4 {
		return table.Row{row[0], row[1], row[2], row[5]}
	}
	return row
}

func (m Scoreboard) Init() tea.Cmd { return nil }

func (m Scoreboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, boardKeys.Leave):
			return m, tea.Quit
		case key.Matches(msg, boardKeys.Switch):
			m.mode = 1 - m.mode
			m.reload()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Scoreboard) View() string {
	var b strings.Builder

	header := boardTitleStyle.Render(strings.ToUpper(m.title)) + "  " + boardModeStyle.Render(m.mode.String())
	b.WriteString(centerText(header, m.width))
	b.WriteString("\n\n")

	var body string
	switch {
	case m.err != nil:
		body = boardDimStyle.Render("Cannot read runs: " + m.err.Error())
	case len(m.runs) == 0:
		body = boardDimStyle.Italic(true).Render("No runs recorded yet.")
	default:
		body = m.table.View()
	}
	b.WriteString(centerText(boardFrameStyle.Render(body), m.width))
	b.WriteString("\n")

	if m.stats != nil && m.stats.RunsCount > 0 {
		b.WriteString(centerText(boardDimStyle.Render(statsLine(m.stats)), m.width))
		b.WriteString("\n")
	}
	b.WriteString(boardDimStyle.Render(m.help.View(boardKeys)))
	return b.String()
}

// statsLine summarises every run of the game in one line.
func statsLine(s *storage.GameStats) string {
	return fmt.Sprintf("%d runs  best %d  top height %d  avg %.1f  landed %d  played %d:%02d",
		s.RunsCount, s.HighScore, s.BestHeight, s.AvgScore, s.TotalLandings,
		s.TotalSeconds/60, s.TotalSeconds%60)
}

// RunScoreboard shows the scoreboard of gameID until the user leaves it.
func RunScoreboard(store *storage.Store, gameID, title string, width, height int) error {
	_, err := tea.NewProgram(NewScoreboard(store, gameID, title, width, height), tea.WithAltScreen()).Run()
	return err
}
