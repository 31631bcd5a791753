package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hamexam/internal/router"
	"github.com/abhisek/hamexam/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "home" }
func (s *stubScreen) Title() string                          { return "Home" }

func newTestWelcome() (*WelcomeScreen, *int) {
	calls := 0
	return New(func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

func sendTicks(w *WelcomeScreen, n int) {
	for range n {
		w.Update(tickMsg(time.Now()))
	}
}

func TestBannerAppearsAfterDelay(t *testing.T) {
	w, _ := newTestWelcome()
	if strings.Contains(w.View(100, 30), "Study. Practice. Pass.") {
		t.Error("tagline visible before the banner delay")
	}

	sendTicks(w, int(bannerAfter/tickInterval))
	if !strings.Contains(w.View(100, 30), "Study. Practice. Pass.") {
		t.Error("tagline missing after the banner delay")
	}
	if strings.Contains(w.View(100, 30), "press any key") {
		t.Error("key hint shown before the animation finished")
	}

	sendTicks(w, 20)
	if w.elapsed != totalDur {
		t.Errorf("elapsed = %v, want capped at %v", w.elapsed, totalDur)
	}
	if !strings.Contains(w.View(100, 30), "press any key") {
		t.Error("key hint missing after the animation")
	}
}

func TestCompactBanner(t *testing.T) {
	if !strings.Contains(RenderBanner(40), "H A M E X A M") {
		t.Error("narrow terminals should get the compact banner")
	}
	if strings.Contains(RenderBanner(100), "H A M E X A M") {
		t.Error("wide terminals should get the block banner")
	}
}

func TestKeypressSkipsAnimation(t *testing.T) {
	w, calls := newTestWelcome()
	sendTicks(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	if cmd == nil {
		t.Fatal("expected a transition command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if *calls != 1 {
		t.Errorf("next called %d times, want 1", *calls)
	}
}

func TestNoAutoTransition(t *testing.T) {
	w, calls := newTestWelcome()
	sendTicks(w, 40)
	if *calls != 0 {
		t.Errorf("next called %d times without a key press", *calls)
	}
}

func TestTransitionOnce(t *testing.T) {
	w, calls := newTestWelcome()
	w.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if _, cmd := w.Update(tea.KeyPressMsg{Code: 'b', Text: "b"}); cmd != nil {
		t.Error("second key press produced a command")
	}
	if _, cmd := w.Update(tickMsg(time.Now())); cmd != nil {
		t.Error("ticks continue after the transition")
	}
	if *calls != 1 {
		t.Errorf("next called %d times, want 1", *calls)
	}
}
