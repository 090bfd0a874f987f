package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// RunStatus is the state of one watch-triggered pipeline run.
type RunStatus uint8

const (
	RunStarted RunStatus = iota
	RunUpdated           // artifacts rewritten
	RunUnchanged         // artifacts already matched the source
	RunFailed
)

func (s RunStatus) String() string {
	switch s {
	case RunStarted:
		return "running"
	case RunUpdated:
		return "updated"
	case RunUnchanged:
		return "unchanged"
	case RunFailed:
		return "error"
	default:
		return ""
	}
}

// RunEvent is sent by the watcher for every run start and finish.
type RunEvent struct {
	Time    time.Time
	Trigger string // path whose change caused the run
	Status  RunStatus
	Detail  string // error text or a short summary
}

// maxHistory bounds the runs shown by the watch view.
const maxHistory = 12

type watchModel struct {
	title   string
	events  <-chan RunEvent
	spinner spinner.Model
	runs    []RunEvent
	running bool
	width   int
	done    bool
}

type runMsg RunEvent
type closedMsg struct{}

// NewWatchModel returns a Bubble Tea model that renders watch-mode runs.
// The program quits when events is closed or on q / ctrl+c.
func NewWatchModel(title string, events <-chan RunEvent) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	return &watchModel{
		title:   title,
		events:  events,
		spinner: sp,
		width:   80,
	}
}

func (m *watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listen())
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case runMsg:
		m.apply(RunEvent(msg))
		return m, m.listen()
	case closedMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.done = true
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	}
	return m, nil
}

func (m *watchModel) apply(ev RunEvent) {
	if ev.Status == RunStarted {
		m.running = true
		return
	}
	m.running = false
	m.runs = append(m.runs, ev)
	if len(m.runs) > maxHistory {
		m.runs = m.runs[len(m.runs)-maxHistory:]
	}
}

func (m *watchModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	header := m.title
	switch {
	case m.done:
		header = "stopped: " + header
	case m.running:
		header = fmt.Sprintf("%s %s (running)", m.spinner.View(), header)
	default:
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")
	if len(m.runs) == 0 {
		b.WriteString(hint.Render("  waiting for changes..."))
		b.WriteString("\n")
	}
	for _, run := range m.runs {
		b.WriteString(m.runLine(run))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(hint.Render("  q to quit"))
	b.WriteString("\n")
	return b.String()
}

// runLine renders "  15:04:05   updated  trigger  detail" fitted to the width.
func (m *watchModel) runLine(run RunEvent) string {
	const statusWidth = 10
	stamp := run.Time.Format("15:04:05")
	status := styleStatus(run.Status).Render(fmt.Sprintf("%*s", statusWidth, run.Status))
	text := run.Trigger
	if run.Detail != "" {
		text += "  " + run.Detail
	}
	room := m.width - len(stamp) - statusWidth - 6
	if room < 20 {
		room = 20
	}
	return fmt.Sprintf("  %s %s  %s", stamp, status, truncate(text, room))
}

func (m *watchModel) listen() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return closedMsg{}
		}
		return runMsg(ev)
	}
}

func styleStatus(status RunStatus) lipgloss.Style {
	switch status {
	case RunUpdated:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case RunFailed:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case RunStarted:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
