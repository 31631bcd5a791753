package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hamexam/internal/bank"
	"github.com/abhisek/hamexam/internal/router"
	"github.com/abhisek/hamexam/internal/session"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	b, err := bank.New([]bank.Question{
		{ID: "T1A01", Text: "q1", Options: []string{"A. si", "B. no"}, CorrectAnswer: "A"},
		{ID: "T2A01", Text: "q2", Options: []string{"A. si", "B. no"}, CorrectAnswer: "B"},
	})
	if err != nil {
		t.Fatalf("bank.New: %v", err)
	}
	return Options{Engine: session.NewEngine(b, session.Options{}), BankName: "test.json", SkipSplash: true}
}

func sized(t *testing.T, m AppModel, w, h int) AppModel {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(AppModel)
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(testOptions(t))
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected QuitMsg")
	}
}

func TestEscAtRootDoesNothing(t *testing.T) {
	m := newAppModel(testOptions(t))
	if _, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape}); cmd != nil {
		t.Fatal("esc on the root screen returned a command")
	}
}

func TestEscPopsPushedScreen(t *testing.T) {
	m := newAppModel(testOptions(t))
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command")
	}
	m.Update(cmd())
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg")
	}
}

func TestViewTooSmall(t *testing.T) {
	m := sized(t, newAppModel(testOptions(t)), 40, 10)
	if v := m.render(); !strings.Contains(v, "too small") {
		t.Errorf("expected minimum size message, got %q", v)
	}
}

func TestViewShowsModeAndScreen(t *testing.T) {
	m := sized(t, newAppModel(testOptions(t)), 120, 40)
	v := m.render()
	for _, want := range []string{"Home", "Study", "STUDY"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestRunRequiresEngine(t *testing.T) {
	if err := Run(t.Context(), Options{}); err == nil {
		t.Fatal("expected error without an engine")
	}
}

func TestStatusShowsExamClock(t *testing.T) {
	opts := testOptions(t)
	m := newAppModel(opts)
	if got := m.status(); !strings.Contains(got, "Study") {
		t.Errorf("status = %q, want Study", got)
	}

	opts.Engine.SetMode(session.ModeExam)
	if _, _, err := opts.Engine.StartExam(); err != nil {
		t.Fatalf("StartExam: %v", err)
	}
	if got := m.status(); !strings.Contains(got, "Exam") || !strings.Contains(got, ":") {
		t.Errorf("status = %q, want mode and clock", got)
	}
}

func TestSplashReplacedByHome(t *testing.T) {
	opts := testOptions(t)
	opts.SkipSplash = false
	m := newAppModel(opts)
	if m.Init() == nil {
		t.Fatal("splash should start its animation")
	}
	if title := m.router.Active().Title(); title != "" {
		t.Fatalf("root title = %q, want the splash", title)
	}

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd == nil {
		t.Fatal("expected replace command")
	}
	m.Update(cmd())
	if title := m.router.Active().Title(); title != "Home" {
		t.Errorf("active title = %q, want Home", title)
	}
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
}
