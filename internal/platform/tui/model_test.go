package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/find-luigi/internal/core"
	"github.com/vovakirdan/find-luigi/internal/games/findluigi"
)

func newTestModel(t *testing.T) (Model, *findluigi.Game) {
	t.Helper()
	g := findluigi.New()
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 21})
	m.Init()
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

// cellOf returns a cell that maps inside the given sprite.
func cellOf(t *testing.T, m Model, sp core.SpriteView) (int, int) {
	t.Helper()
	r := m.board.SpriteCells(sp)
	for row := r.Y; row < r.Bottom(); row++ {
		for col := r.X; col < r.Right(); col++ {
			x, y, ok := m.board.ToArena(col, row)
			if ok && x >= sp.X && x < sp.X+findluigi.SpriteSize && y >= sp.Y && y < sp.Y+findluigi.SpriteSize {
				return col, row
			}
		}
	}
	t.Fatalf("no cell maps into sprite %+v", sp)
	return 0, 0
}

func TestModelClickRecordsPress(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if len(m.inputFrame.Presses) != 1 {
		t.Fatalf("presses = %v", m.inputFrame.Presses)
	}

	// Releases, other buttons and clicks on the HUD are ignored
	m = update(t, m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	m = update(t, m, tea.MouseMsg{X: 10, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if len(m.inputFrame.Presses) != 1 {
		t.Errorf("presses = %v", m.inputFrame.Presses)
	}
}

func TestModelClickTarget(t *testing.T) {
	m, g := newTestModel(t)

	target, _ := g.Snapshot().Target()
	col, row := cellOf(t, m, target)

	m = update(t, m, tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg(time.Now()))

	if g.Snapshot().Score != 1 {
		t.Errorf("score = %d, expected 1", g.Snapshot().Score)
	}
	if len(m.inputFrame.Presses) != 0 {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestModelTickUsesWallTime(t *testing.T) {
	m, g := newTestModel(t)

	start := time.Now()
	m = update(t, m, TickMsg(start))
	m = update(t, m, TickMsg(start.Add(2500*time.Millisecond)))

	if got := g.Snapshot().TimeRemaining; got != 28 {
		t.Errorf("time = %d, expected 28", got)
	}
}

func TestModelPause(t *testing.T) {
	m, g := newTestModel(t)

	start := time.Now()
	m = update(t, m, TickMsg(start))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	if !m.paused {
		t.Fatal("expected paused")
	}

	m = update(t, m, TickMsg(start.Add(5*time.Second)))
	if got := g.Snapshot().TimeRemaining; got != 30 {
		t.Errorf("time = %d while paused, expected 30", got)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = update(t, m, TickMsg(start.Add(6*time.Second)))
	if got := g.Snapshot().TimeRemaining; got != 29 {
		t.Errorf("time = %d after resume, expected 29", got)
	}
}

func TestModelRestartKey(t *testing.T) {
	m, g := newTestModel(t)

	start := time.Now()
	m = update(t, m, TickMsg(start))
	m = update(t, m, TickMsg(start.Add(time.Minute)))
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = update(t, m, TickMsg(start.Add(time.Minute+time.Millisecond)))
	if g.State().GameOver {
		t.Error("r should restart after game over")
	}
	if g.Snapshot().TimeRemaining != 30 {
		t.Errorf("time = %d after restart", g.Snapshot().TimeRemaining)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !next.(Model).quitting {
		t.Error("esc should quit")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m, g := newTestModel(t)
	before := g.Session()

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if g.Session() != before {
		t.Error("resize must not restart the session")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40-helpRows {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
	if m.View() == "" {
		t.Error("empty view")
	}
}
