package timer

import (
	"testing"
	"time"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func TestNotStarted(t *testing.T) {
	tm := New(newFakeClock().Now)
	if tm.Started() {
		t.Error("new timer should not be started")
	}
	if got := tm.Remaining(); got != 0 {
		t.Errorf("Remaining() = %v, want 0", got)
	}
	if tm.Expired() {
		t.Error("unstarted timer should not be expired")
	}
	if got := tm.Format(); got != "00:00" {
		t.Errorf("Format() = %q, want 00:00", got)
	}
}

func TestStartAndRemaining(t *testing.T) {
	clk := newFakeClock()
	tm := New(clk.Now)

	deadline := tm.Start(DefaultExamDuration)
	if want := clk.now.Add(600 * time.Second); !deadline.Equal(want) {
		t.Errorf("deadline = %v, want %v", deadline, want)
	}
	if !tm.StartTime().Equal(clk.now) {
		t.Errorf("StartTime() = %v, want %v", tm.StartTime(), clk.now)
	}
	if got := tm.Remaining(); got != 600*time.Second {
		t.Errorf("Remaining() = %v, want 10m", got)
	}
	if got := tm.Format(); got != "10:00" {
		t.Errorf("Format() = %q, want 10:00", got)
	}

	clk.Advance(61500 * time.Millisecond)
	if got := tm.Format(); got != "08:58" {
		t.Errorf("Format() after 61.5s = %q, want 08:58", got)
	}
	if got := tm.Elapsed(); got != 61500*time.Millisecond {
		t.Errorf("Elapsed() = %v", got)
	}
}

func TestRemainingMonotonic(t *testing.T) {
	clk := newFakeClock()
	tm := New(clk.Now)
	tm.Start(10 * time.Second)

	prev := tm.Remaining()
	for range 15 {
		clk.Advance(time.Second)
		got := tm.Remaining()
		if got > prev {
			t.Fatalf("Remaining increased: %v -> %v", prev, got)
		}
		if got < 0 {
			t.Fatalf("Remaining negative: %v", got)
		}
		prev = got
	}
	if !tm.Expired() {
		t.Error("timer should be expired")
	}
	if got := tm.Format(); got != "00:00" {
		t.Errorf("Format() = %q, want 00:00", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{-5 * time.Second, "00:00"},
		{999 * time.Millisecond, "00:00"},
		{59 * time.Second, "00:59"},
		{90 * time.Second, "01:30"},
		{600 * time.Second, "10:00"},
		{3599 * time.Second, "59:59"},
		{3600 * time.Second, "60:00"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestRestart(t *testing.T) {
	clk := newFakeClock()
	tm := New(clk.Now)
	tm.Start(time.Minute)
	clk.Advance(2 * time.Minute)
	if !tm.Expired() {
		t.Fatal("expected expiry")
	}
	tm.Start(time.Minute)
	if tm.Expired() || tm.Remaining() != time.Minute {
		t.Errorf("restart: Expired=%v Remaining=%v", tm.Expired(), tm.Remaining())
	}
}
