package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tadpole-arcade/internal/registry"
	"github.com/vovakirdan/tadpole-arcade/internal/storage"
)

const (
	statsPanelMinWidth = 84  // terminal width that fits table and stats side by side
	statsPanelWidth    = 26
	playerColumnWidth  = 56  // table width below which the player column is dropped
	maxRuns            = 100 // rows loaded per variant
)

// boardMode selects which runs the scoreboard lists.
type boardMode int

const (
	boardBest boardMode = iota
	boardRecent
)

func (b boardMode) String() string {
	if b == boardRecent {
		return "RECENT RUNS"
	}
	return "BEST RUNS"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Recent key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Recent, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Next, k.Prev, k.Recent},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next variant"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev variant"),
		),
		Recent: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "best/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists stored runs per variant with their aggregate stats.
type ScoreboardModel struct {
	variants  []registry.GameInfo
	current   int
	mode      boardMode
	store     *storage.Store
	runs      []storage.Run
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		keys:     DefaultScoreboardKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) sidePanel() bool {
	return m.width >= statsPanelMinWidth
}

// newTable builds the runs table sized for the current terminal.
func (m *ScoreboardModel) newTable() table.Model {
	avail := m.width - 6
	if m.sidePanel() {
		avail -= statsPanelWidth + 2
	}

	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Stage", Width: 5},
		{Title: "Coins", Width: 5},
		{Title: "Time", Width: 7},
	}
	if avail >= playerColumnWidth {
		columns = append(columns, table.Column{Title: "Player", Width: 10})
	}
	columns = append(columns, table.Column{Title: "When", Width: 12})

	height := m.height - 9
	if !m.sidePanel() {
		height -= 3
	}
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload fetches runs and stats of the current variant in the current mode.
func (m *ScoreboardModel) reload() {
	m.runs = nil
	m.stats = nil
	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.current].ID
		var (
			runs []storage.Run
			err  error
		)
		if m.mode == boardRecent {
			runs, err = m.store.RecentRuns(id, maxRuns)
		} else {
			runs, err = m.store.TopRuns(id, maxRuns)
		}
		if err == nil {
			m.runs = runs
		}
		if stats, statsErr := m.store.GetGameStats(id); statsErr == nil {
			m.stats = stats
		}
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	withPlayer := len(m.table.Columns()) == 7
	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		row := table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Stage),
			fmt.Sprintf("%d", r.Coins),
			formatRunTime(r.Duration),
		}
		if withPlayer {
			player := r.Player
			if player == "" {
				player = "-"
			}
			row = append(row, player)
		}
		rows = append(rows, append(row, r.CreatedAt.Format("Jan 02 15:04")))
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatRunTime renders a run length as m:ss.
func formatRunTime(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

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
			if len(m.variants) > 0 {
				m.current = (m.current + 1) % len(m.variants)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			if len(m.variants) > 0 {
				m.current = (m.current + len(m.variants) - 1) % len(m.variants)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.Recent):
			m.mode = 1 - m.mode
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillRows()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("30")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(centerText(title.Render("∿ "+m.mode.String()+" ∿"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.variantTabs(), m.width))
	b.WriteString("\n\n")

	body := frame.Render(m.tableView())
	if m.sidePanel() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", frame.Width(statsPanelWidth).Render(m.statsPanel()))
	} else if m.stats != nil && m.stats.RunsCount > 0 {
		body = lipgloss.JoinVertical(lipgloss.Center, body, m.statsLine())
	}
	for _, line := range strings.Split(body, "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys)))

	return b.String()
}

// variantTabs shows every registered variant with the current one highlighted.
func (m ScoreboardModel) variantTabs() string {
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("22")).Padding(0, 1)
	idle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)

	tabs := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.current {
			tabs[i] = active.Render(v.Title)
		} else {
			tabs[i] = idle.Render(v.Title)
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 && len(m.variants) > 0 {
		line = active.Render("< " + m.variants[m.current].Title + " >")
	}
	return line
}

func (m ScoreboardModel) tableView() string {
	if len(m.runs) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4).
			Render("No runs recorded yet.\nSwim a few laps to set a record!")
	}
	return m.table.View()
}

// statsPanel lists the aggregate stats of the current variant.
func (m ScoreboardModel) statsPanel() string {
	if m.stats == nil || m.stats.RunsCount == 0 {
		return "No stats yet"
	}
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	rows := []struct {
		name  string
		value string
	}{
		{"Runs", fmt.Sprintf("%d", m.stats.RunsCount)},
		{"Best", fmt.Sprintf("%d", m.stats.HighScore)},
		{"Best stage", fmt.Sprintf("%d", m.stats.BestStage)},
		{"Average", fmt.Sprintf("%.0f", m.stats.AvgScore)},
		{"Coins", fmt.Sprintf("%d", m.stats.TotalCoins)},
		{"Swum", m.stats.PlayTime.Round(time.Second).String()},
	}
	if !m.stats.LastPlayed.IsZero() {
		rows = append(rows, struct {
			name  string
			value string
		}{"Last", m.stats.LastPlayed.Format("Jan 02 15:04")})
	}

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s", label.Render(fmt.Sprintf("%-11s", r.name)), r.value)
	}
	return b.String()
}

// statsLine is the one-line stats summary used on narrow terminals.
func (m ScoreboardModel) statsLine() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	return style.Render(fmt.Sprintf("%d runs · best stage %d · avg %.0f · %d coins",
		m.stats.RunsCount, m.stats.BestStage, m.stats.AvgScore, m.stats.TotalCoins))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
