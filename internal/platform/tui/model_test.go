package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tadpole-arcade/internal/core"
	"github.com/vovakirdan/tadpole-arcade/internal/registry"
	"github.com/vovakirdan/tadpole-arcade/internal/storage"
)

const stubID = "tui_stub"

// stubGame scores one point per tick and ends when over is set.
type stubGame struct {
	resets int
	steps  int
	over   bool
	state  core.GameState
}

func (g *stubGame) ID() string    { return stubID }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.over = false
	g.state = core.GameState{Stage: 1}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	if g.state.GameOver && in.Has(core.ActionRestart) {
		g.over = false
		g.state = core.GameState{Stage: 1}
	}
	var cues []core.Cue
	if !g.state.GameOver {
		g.state.Score++
		g.state.Coins++
		cues = append(cues, core.CueCoin)
		if g.over {
			g.state.GameOver = true
			cues = append(cues, core.CueGameOver)
		}
	}
	return core.StepResult{State: g.state, Cues: cues}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }

var lastStub *stubGame

func init() {
	registry.Register(stubID, func() registry.Game {
		lastStub = &stubGame{}
		return lastStub
	})
}

type cueRecorder struct {
	cues []core.Cue
}

func (r *cueRecorder) Play(c core.Cue) {
	r.cues = append(r.cues, c)
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return mm
}

func TestModelForwardsCues(t *testing.T) {
	game := &stubGame{}
	rec := &cueRecorder{}
	m := NewModel(game, testConfig(), Options{Cues: rec})
	m.Init()

	for i := 0; i < 3; i++ {
		m = tick(t, m)
	}

	if len(rec.cues) != 3 {
		t.Fatalf("got %d cues, want 3", len(rec.cues))
	}
	for _, c := range rec.cues {
		if c != core.CueCoin {
			t.Errorf("cue = %v, want Coin", c)
		}
	}
}

func TestModelSavesRunOnceOnGameOver(t *testing.T) {
	store := openTestStore(t)
	game := &stubGame{}
	m := NewModel(game, testConfig(), Options{Store: store, Player: "ada"})
	m.Init()

	for i := 0; i < 4; i++ {
		m = tick(t, m)
	}
	game.over = true
	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}

	runs, err := store.TopRuns(stubID, 10)
	if err != nil {
		t.Fatalf("TopRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].Score != 5 || runs[0].Player != "ada" || runs[0].Coins != 5 {
		t.Errorf("run = %+v, want score 5 coins 5 player ada", runs[0])
	}
	if runs[0].Duration <= 0 {
		t.Errorf("Duration = %v, want positive", runs[0].Duration)
	}
}

func TestModelRestartAllowsNewSave(t *testing.T) {
	store := openTestStore(t)
	game := &stubGame{}
	m := NewModel(game, testConfig(), Options{Store: store})
	m.Init()

	game.over = true
	m = tick(t, m)
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	next, _ := m.Update(runeKey('r'))
	m = next.(Model)
	m = tick(t, m)
	if m.State().GameOver {
		t.Fatal("restart did not resume the run")
	}
	game.over = true
	m = tick(t, m)

	runs, err := store.RecentRuns(stubID, 10)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("got %d runs, want 2", len(runs))
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, testConfig(), Options{})
	m.Init()
	m = tick(t, m)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if game.resets != 1 {
		t.Errorf("resets = %d, want 1", game.resets)
	}
	if m.State().Score != 1 {
		t.Errorf("Score = %d, want 1", m.State().Score)
	}
}

func TestModelBackToMenu(t *testing.T) {
	store := openTestStore(t)
	game := &stubGame{}
	m := NewModel(game, testConfig(), Options{Store: store})
	m.Init()
	m = tick(t, m)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)

	if !m.BackToMenu() || m.Quitting() {
		t.Errorf("BackToMenu = %v, Quitting = %v", m.BackToMenu(), m.Quitting())
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
	if m.View() != "" {
		t.Error("View should be empty after leaving")
	}
	if high, _ := store.HighScore(stubID); high != 1 {
		t.Errorf("HighScore = %d, want run saved on back", high)
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	s := NewSessionModel(nil, testConfig(), "ada", nil)
	s.menu = NewMenuModel(nil, testConfig(), stubID)

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.screen != screenGame {
		t.Fatalf("screen = %v, want game", s.screen)
	}
	if lastStub == nil || lastStub.resets != 1 {
		t.Fatal("selected game was not started")
	}

	next, _ = s.Update(TickMsg{})
	s = next.(SessionModel)
	if lastStub.steps != 1 {
		t.Errorf("steps = %d, want 1", lastStub.steps)
	}

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.screen != screenMenu {
		t.Errorf("screen = %v, want menu", s.screen)
	}
	if cmd != nil {
		t.Error("leaving a game must not end the session")
	}

	// A tick still in flight from the finished run is dropped.
	next, _ = s.Update(TickMsg{})
	s = next.(SessionModel)
	if lastStub.steps != 1 {
		t.Errorf("stale tick stepped the game")
	}

	next, cmd = s.Update(runeKey('q'))
	s = next.(SessionModel)
	if !s.quitting || cmd == nil {
		t.Error("q in menu should end the session")
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	s := NewSessionModel(openTestStore(t), testConfig(), "ada", nil)

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if s.screen != screenScoreboard {
		t.Fatalf("screen = %v, want scoreboard", s.screen)
	}
	if s.View() == "" {
		t.Error("scoreboard view is empty")
	}

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.screen != screenMenu || cmd != nil {
		t.Errorf("screen = %v, cmd nil = %v, want menu and no quit", s.screen, cmd == nil)
	}
}

func TestScoreboardModes(t *testing.T) {
	store := openTestStore(t)
	for _, score := range []int{30, 90, 60} {
		if _, err := store.SaveRun(storage.Run{GameID: stubID, Score: score, Stage: 1}); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if len(m.runs) != 3 || m.runs[0].Score != 90 {
		t.Fatalf("best runs = %+v, want 90 first", m.runs)
	}
	if m.stats == nil || m.stats.RunsCount != 3 {
		t.Errorf("stats = %+v, want 3 runs", m.stats)
	}

	next, _ := m.Update(runeKey('r'))
	m = next.(ScoreboardModel)
	if m.mode != boardRecent || m.runs[0].Score != 60 {
		t.Errorf("recent runs = %+v, want 60 first", m.runs)
	}
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("view does not show the recent mode")
	}
}

func TestFormatRunTime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{61500 * time.Millisecond, "1:02"},
	}
	for _, tt := range tests {
		if got := formatRunTime(tt.d); got != tt.want {
			t.Errorf("formatRunTime(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
