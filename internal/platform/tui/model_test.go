package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/astrohop/internal/core"
	"github.com/vovakirdan/astrohop/internal/storage"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	state   core.GameState
	frames  []core.InputFrame
	resets  int
	resized [2]int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func (g *fakeGame) last() core.InputFrame { return g.frames[len(g.frames)-1] }

func newTestModel(g *fakeGame, store *storage.Store) Model {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	return NewModel(g, store, cfg, Options{Player: "tester"})
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tick(t *testing.T, m Model, now time.Time) Model {
	t.Helper()
	next, cmd := m.handleTick(now)
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	return next.(Model)
}

func press(t *testing.T, m Model, k string, now time.Time) Model {
	t.Helper()
	next, _ := m.handleKey(keyMsg(k), now)
	return next.(Model)
}

func TestModelHeldKeySpansTicks(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)
	t0 := time.Unix(1000, 0)

	m = press(t, m, "left", t0)
	m = tick(t, m, t0.Add(16*time.Millisecond))
	if !g.last().Has(core.ActionLeft) {
		t.Fatal("first tick after a key event should see the press")
	}

	m = tick(t, m, t0.Add(50*time.Millisecond))
	if g.last().Has(core.ActionLeft) {
		t.Error("a press must only reach one tick")
	}
	if !g.last().Down(core.ActionLeft) {
		t.Error("key should still count as held")
	}

	tick(t, m, t0.Add(keyHoldDuration+time.Millisecond))
	if g.last().Down(core.ActionLeft) {
		t.Error("hold should lapse without repeats")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)

	next, cmd := m.handleKey(keyMsg("q"), time.Now())
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if v := next.(Model).View(); v != "" {
		t.Errorf("View after quit = %q, want empty", v)
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	if g.resets != 0 {
		t.Errorf("resize reset the game %d times", g.resets)
	}
	if g.resized != [2]int{120, 40} {
		t.Errorf("game saw size %v", g.resized)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelSavesScoreOncePerDeath(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{}
	m := newTestModel(g, store)
	now := time.Unix(1000, 0)

	g.state = core.GameState{Score: 4, Round: 2, GameOver: true}
	for range 5 {
		now = now.Add(16 * time.Millisecond)
		m = tick(t, m, now)
	}

	g.state = core.GameState{Score: 0, Round: 1}
	m = tick(t, m, now.Add(time.Second))

	g.state = core.GameState{Score: 6, Round: 3, GameOver: true}
	tick(t, m, now.Add(2*time.Second))

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("saved %d runs, want 2: %+v", len(scores), scores)
	}
	if scores[0].Score != 6 || scores[0].Round != 3 || scores[0].Player != "tester" {
		t.Errorf("best run = %+v", scores[0])
	}
	if scores[1].Score != 4 || scores[1].Round != 2 {
		t.Errorf("first run = %+v", scores[1])
	}
}

func TestModelSkipsEmptyRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{state: core.GameState{Score: 0, Round: 1, GameOver: true}}
	tick(t, newTestModel(g, store), time.Now())

	if high, _ := store.HighScore("fake"); high != 0 {
		t.Errorf("a run without gems should not be saved, high = %d", high)
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(&fakeGame{}, nil, core.RuntimeConfig{ScreenW: 10, ScreenH: 2, TickRate: 60, Seed: 1},
		Options{ScreenshotDir: dir})

	m.saveScreenshot()

	files, err := filepath.Glob(filepath.Join(dir, "fake_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("screenshots = %v (err %v)", files, err)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)
	if v := m.View(); !strings.Contains(v, "fake") {
		t.Errorf("View() = %q, want the rendered game", v)
	}
}
