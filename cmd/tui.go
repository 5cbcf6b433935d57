package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bravoman80000/Country-Sim-Bot/internal/command"
	"github.com/bravoman80000/Country-Sim-Bot/internal/engine"
	"github.com/bravoman80000/Country-Sim-Bot/internal/registry"
	"github.com/bravoman80000/Country-Sim-Bot/internal/session"
)

const welcome = "📜 The Archivist opens the ledger.\nType /help for commands, 'exit' to quit."

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			MarginBottom(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	whisperStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#777777")).
			Italic(true)

	stateBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2)

	logBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1)

	autocompleteStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#F25D94"))
)

// refreshInterval re-reads the world so changes made over Telegram show up.
const refreshInterval = 5 * time.Second

type refreshMsg time.Time

type suggestion string

func (s suggestion) Title() string       { return string(s) }
func (s suggestion) Description() string { return "" }
func (s suggestion) FilterValue() string { return string(s) }

type replModel struct {
	ctx         context.Context
	app         *session.Session
	actor       session.Actor
	snapshot    session.Snapshot
	textInput   textinput.Model
	viewport    viewport.Model
	suggestions list.Model
	history     []string
	historyIdx  int
	logContent  string
	width       int
	height      int
	source      string
	showList    bool
}

func newREPLModel(ctx context.Context, app *session.Session, actor session.Actor, source string) replModel {
	ti := textinput.New()
	ti.Placeholder = "Enter command (e.g., /warbar war_name: Italian Wars)..."
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 60

	vp := viewport.New(0, 0)
	vp.SetContent(welcome)

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetHeight(1)
	delegate.SetSpacing(0)
	sugList := list.New([]list.Item{}, delegate, 50, 7)
	sugList.SetShowTitle(false)
	sugList.SetShowStatusBar(false)
	sugList.SetFilteringEnabled(false)
	sugList.SetShowHelp(false)

	m := replModel{
		ctx:         ctx,
		app:         app,
		actor:       actor,
		textInput:   ti,
		viewport:    vp,
		suggestions: sugList,
		historyIdx:  -1,
		logContent:  welcome,
		source:      source,
	}
	m.refresh()
	return m
}

func (m *replModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return refreshMsg(t) })
}

func (m *replModel) refresh() {
	snap, err := m.app.Snapshot()
	if err != nil {
		slog.Warn("snapshot failed", "error", err)
		return
	}
	m.snapshot = snap
}

// argCompletions maps argument keys to the names they accept.
func argCompletions(snap session.Snapshot) map[string][]string {
	wars := make([]string, 0, len(snap.ActiveWars))
	for _, w := range snap.ActiveWars {
		wars = append(wars, w.Name)
	}
	return map[string][]string{
		"country:":  snap.Countries,
		"name:":     wars,
		"war_name:": wars,
		"war:":      wars,
	}
}

// suggest completes a command name, or the value of the last argument key
// when it names a country or a war.
func suggest(val string, defs []*command.Definition, snap session.Snapshot) []string {
	if val == "" {
		return nil
	}
	lower := strings.ToLower(val)

	var out []string
	if !strings.Contains(val, " ") {
		for _, d := range defs {
			c := "/" + d.Name + " "
			if strings.HasPrefix(c, lower) || strings.HasPrefix(d.Name+" ", lower) {
				out = append(out, c)
			}
		}
		return out
	}

	for key, names := range argCompletions(snap) {
		idx := strings.LastIndex(lower, " "+key+" ")
		if idx < 0 {
			continue
		}
		start := idx + len(key) + 2
		prefix := strings.ToLower(val[start:])
		if strings.Contains(prefix, ":") {
			continue
		}
		for _, n := range names {
			if strings.HasPrefix(strings.ToLower(n), prefix) && !strings.EqualFold(n, prefix) {
				out = append(out, val[:start]+n+" ")
			}
		}
	}
	sort.Strings(out)
	return out
}

func (m *replModel) updateSuggestions() {
	items := []list.Item{}
	for _, s := range suggest(m.textInput.Value(), command.Definitions(), m.snapshot) {
		items = append(items, suggestion(s))
	}
	m.suggestions.SetItems(items)
	m.showList = len(items) > 0
	if m.showList {
		h := min(len(items), 10)
		m.suggestions.SetHeight(max(h, 4))
		m.suggestions.ResetSelected()
	}
}

func (m *replModel) run(val string) {
	m.logContent += fmt.Sprintf("\n\n> %s\n", val)
	res, err := m.app.Execute(m.ctx, m.actor, val)
	if res != nil {
		for _, msg := range res.Messages {
			m.logContent += msg + "\n"
		}
		for _, w := range res.Whispers {
			m.logContent += whisperStyle.Render(w) + "\n"
		}
	}
	if err != nil {
		slog.Debug("console command failed", "input", val, "error", err)
	}
	m.refresh()
	m.viewport.SetContent(m.logContent)
	m.viewport.GotoBottom()
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		lsCmd tea.Cmd
		tkCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case refreshMsg:
		m.refresh()
		tkCmd = tick()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyUp:
			if m.showList {
				m.suggestions, lsCmd = m.suggestions.Update(msg)
			} else if len(m.history) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.history) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.history[m.historyIdx])
				m.updateSuggestions()
			}

		case tea.KeyDown:
			if m.showList {
				m.suggestions, lsCmd = m.suggestions.Update(msg)
			} else if len(m.history) > 0 && m.historyIdx != -1 {
				if m.historyIdx < len(m.history)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.history[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.updateSuggestions()
			}

		case tea.KeyTab:
			if m.showList {
				if i, ok := m.suggestions.SelectedItem().(suggestion); ok {
					m.textInput.SetValue(string(i))
					m.textInput.SetCursor(len(string(i)))
					m.updateSuggestions()
				}
			}

		case tea.KeyEnter:
			val := strings.TrimSpace(m.textInput.Value())
			if val == "exit" || val == "quit" {
				return m, tea.Quit
			}
			if val != "" {
				if len(m.history) == 0 || m.history[len(m.history)-1] != val {
					m.history = append(m.history, val)
				}
				m.historyIdx = -1
				m.textInput.SetValue("")
				m.updateSuggestions()
				m.run(val)
			}

		default:
			m.textInput, tiCmd = m.textInput.Update(msg)
			m.updateSuggestions()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.suggestions.SetWidth(msg.Width - 6)
	}

	m.viewport, vpCmd = m.viewport.Update(msg)

	titleH := lipgloss.Height(titleStyle.Render("Dummy"))
	stateH := lipgloss.Height(m.renderState())
	listAreaHeight := 0
	if m.showList {
		listAreaHeight = m.suggestions.Height() + 2
	}
	infoH := lipgloss.Height(infoStyle.Render("Dummy"))
	overhead := titleH + stateH + 1 + listAreaHeight + infoH + 11

	m.viewport.Height = max(m.height-overhead, 4)

	return m, tea.Batch(tiCmd, vpCmd, lsCmd, tkCmd)
}

func (m *replModel) renderState() string {
	var b strings.Builder
	cal := m.snapshot.Calendar
	fmt.Fprintf(&b, "📅 Year %d, Turn %d    🏛️ %d countries\n\n", cal.Year, cal.Turn, len(m.snapshot.Countries))

	if len(m.snapshot.ActiveWars) == 0 {
		b.WriteString("No active wars.")
	}
	for i, w := range m.snapshot.ActiveWars {
		if i > 0 {
			b.WriteString("\n")
		}
		bar := engine.RenderBar(registry.BarIntensity(w), w.Momentum, w.AttackerEmoji, w.DefenderEmoji)
		fmt.Fprintf(&b, "%s: %s vs %s\n  %s  %+d", w.Name, w.Attacker, w.Defender, bar, bar.Momentum)
	}

	return stateBoxStyle.Width(max(m.width-4, 0)).Render(b.String())
}

func (m *replModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	title := titleStyle.Render(fmt.Sprintf(" The Archivist | %s ", m.source))
	logBox := logBoxStyle.Width(m.width - 4).Render(m.viewport.View())

	inputArea := m.textInput.View()
	if m.showList {
		inputArea = fmt.Sprintf("%s\n%s", inputArea, autocompleteStyle.Render(m.suggestions.View()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.renderState(),
		logBox,
		"\n",
		inputArea,
		infoStyle.Render("(esc to quit, tab to complete, up/down history)"),
	)
}

// RunTUI runs the operator console until the user quits.
func RunTUI(ctx context.Context, app *session.Session, actor session.Actor, source string) error {
	m := newREPLModel(ctx, app, actor, source)
	p := tea.NewProgram(&m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
