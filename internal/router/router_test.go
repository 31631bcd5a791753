package router

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hamexam/internal/screen"
)

// fakeScreen counts Init calls and records the keys it receives.
type fakeScreen struct {
	name  string
	inits int
	keys  []string
}

func (f *fakeScreen) Init() tea.Cmd { f.inits++; return nil }

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok {
		f.keys = append(f.keys, k.String())
	}
	return f, nil
}

func (f *fakeScreen) View(w, h int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

func titles(r *Router) string {
	names := make([]string, len(r.stack))
	for i, s := range r.stack {
		names[i] = s.Title()
	}
	return strings.Join(names, ">")
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		name string
		msgs func(exam, results *fakeScreen) []tea.Msg
		want string
	}{
		{
			name: "push",
			msgs: func(exam, _ *fakeScreen) []tea.Msg { return []tea.Msg{PushScreenMsg{Screen: exam}} },
			want: "Home>Exam",
		},
		{
			name: "push then pop",
			msgs: func(exam, _ *fakeScreen) []tea.Msg {
				return []tea.Msg{PushScreenMsg{Screen: exam}, PopScreenMsg{}}
			},
			want: "Home",
		},
		{
			name: "pop at bottom is ignored",
			msgs: func(_, _ *fakeScreen) []tea.Msg { return []tea.Msg{PopScreenMsg{}, PopScreenMsg{}} },
			want: "Home",
		},
		{
			name: "replace keeps depth",
			msgs: func(exam, results *fakeScreen) []tea.Msg {
				return []tea.Msg{PushScreenMsg{Screen: exam}, ReplaceScreenMsg{Screen: results}}
			},
			want: "Home>Results",
		},
		{
			name: "results over exam",
			msgs: func(exam, results *fakeScreen) []tea.Msg {
				return []tea.Msg{PushScreenMsg{Screen: exam}, PushScreenMsg{Screen: results}}
			},
			want: "Home>Exam>Results",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&fakeScreen{name: "Home"})
			for _, msg := range tt.msgs(&fakeScreen{name: "Exam"}, &fakeScreen{name: "Results"}) {
				r.Update(msg)
			}
			if got := titles(r); got != tt.want {
				t.Errorf("stack = %s, want %s", got, tt.want)
			}
			if r.Depth() != len(r.stack) {
				t.Errorf("Depth() = %d, want %d", r.Depth(), len(r.stack))
			}
		})
	}
}

func TestInitRunsOnEveryReveal(t *testing.T) {
	home := &fakeScreen{name: "Home"}
	exam := &fakeScreen{name: "Exam"}
	r := New(home)

	r.Push(exam)
	if exam.inits != 1 {
		t.Errorf("exam inits = %d after push, want 1", exam.inits)
	}

	r.Push(&fakeScreen{name: "Results"})
	r.Pop()
	if exam.inits != 2 {
		t.Errorf("exam inits = %d after results popped, want 2", exam.inits)
	}

	r.Pop()
	if home.inits != 1 {
		t.Errorf("home inits = %d after exam popped, want 1", home.inits)
	}

	results := &fakeScreen{name: "Results"}
	r.Replace(results)
	if results.inits != 1 {
		t.Errorf("results inits = %d after replace, want 1", results.inits)
	}
}

func TestKeysReachOnlyTheActiveScreen(t *testing.T) {
	home := &fakeScreen{name: "Home"}
	exam := &fakeScreen{name: "Exam"}
	r := New(home)
	r.Push(exam)

	r.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	r.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})

	if got := strings.Join(exam.keys, ","); got != "s,y" {
		t.Errorf("exam keys = %q, want s,y", got)
	}
	if len(home.keys) != 0 {
		t.Errorf("home received %v", home.keys)
	}
	if got := r.View(80, 24); got != "Exam" {
		t.Errorf("View = %q, want Exam", got)
	}
}
