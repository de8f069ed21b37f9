package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xmremote/xmouse/internal/mouse"
)

type stubLocator struct {
	loc mouse.Point
	err error
}

func (s *stubLocator) Location(ctx context.Context) (mouse.Point, error) {
	return s.loc, s.err
}

func TestWatchModelShowsLocation(t *testing.T) {
	model := NewWatchModel(&stubLocator{loc: mouse.Point{X: 12, Y: 34}}, 100*time.Millisecond)

	updated, cmd := model.Update(locationMsg{loc: mouse.Point{X: 12, Y: 34}})
	m := updated.(*WatchModel)

	require.NotNil(t, cmd, "a location sample should schedule the next tick")
	assert.True(t, m.sampled)
	assert.Contains(t, m.View(), "(12, 34)")
}

func TestWatchModelShowsError(t *testing.T) {
	model := NewWatchModel(&stubLocator{}, 100*time.Millisecond)

	updated, _ := model.Update(locationMsg{err: errors.New("display gone")})
	m := updated.(*WatchModel)

	assert.Contains(t, m.View(), "display gone")
}

func TestWatchModelSpinsBeforeFirstSample(t *testing.T) {
	model := NewWatchModel(&stubLocator{}, 100*time.Millisecond)

	assert.Contains(t, model.View(), "waiting for first sample")
}

func TestWatchModelQuits(t *testing.T) {
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m := NewWatchModel(&stubLocator{}, 100*time.Millisecond)
			msg := keyMsg(key)

			updated, cmd := m.Update(msg)
			require.NotNil(t, cmd)
			_, isQuit := cmd().(tea.QuitMsg)
			assert.True(t, isQuit, "expected quit command for %q", key)
			assert.Empty(t, strings.TrimSpace(updated.View()))
		})
	}
}

func TestWatchModelPollsOnTick(t *testing.T) {
	locator := &stubLocator{loc: mouse.Point{X: 1, Y: 2}}
	model := NewWatchModel(locator, time.Millisecond)

	_, cmd := model.Update(tickMsg(time.Now()))
	require.NotNil(t, cmd)

	msg := cmd()
	loc, ok := msg.(locationMsg)
	require.True(t, ok, "tick should produce a location sample")
	assert.Equal(t, mouse.Point{X: 1, Y: 2}, loc.loc)
}

func keyMsg(name string) tea.KeyMsg {
	switch name {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
	}
}
