package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xmremote/xmouse/internal/mouse"
)

// Locator is the one pointer operation the watcher needs.
type Locator interface {
	Location(ctx context.Context) (mouse.Point, error)
}

type tickMsg time.Time

type locationMsg struct {
	loc mouse.Point
	err error
}

// WatchModel is an inline bubbletea model that polls the pointer
// position at a fixed interval until the user quits.
type WatchModel struct {
	locator  Locator
	interval time.Duration

	spinner spinner.Model
	loc     mouse.Point
	err     error
	sampled bool
	quit    bool
}

// NewWatchModel creates a watcher polling the locator every interval.
func NewWatchModel(locator Locator, interval time.Duration) *WatchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return &WatchModel{
		locator:  locator,
		interval: interval,
		spinner:  s,
	}
}

// Init starts the spinner and the first location poll.
func (m *WatchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.poll())
}

// Update handles key presses, poll results and timer ticks.
func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quit = true
			return m, tea.Quit
		}

	case locationMsg:
		m.sampled = true
		m.loc = msg.loc
		m.err = msg.err
		return m, m.tick()

	case tickMsg:
		return m, m.poll()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the current pointer readout.
func (m *WatchModel) View() string {
	if m.quit {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("xmouse watch"))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("✗ %v", m.err)))
	case !m.sampled:
		b.WriteString(m.spinner.View())
		b.WriteString(SubtleStyle.Render(" waiting for first sample..."))
	default:
		b.WriteString(TextStyle.Render("pointer "))
		b.WriteString(CoordStyle.Render(m.loc.String()))
	}

	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render(FormatControl("q", "quit")))
	b.WriteString("\n")
	return BoxStyle.Render(b.String())
}

func (m *WatchModel) poll() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.interval)
		defer cancel()
		loc, err := m.locator.Location(ctx)
		return locationMsg{loc: loc, err: err}
	}
}

func (m *WatchModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
