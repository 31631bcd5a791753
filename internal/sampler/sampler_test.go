package sampler

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/abhisek/hamexam/internal/bank"
)

// makePool builds n questions per section, ids like "T1A00".
func makePool(counts map[string]int, order ...string) []bank.Question {
	var qs []bank.Question
	for _, sec := range order {
		for i := range counts[sec] {
			qs = append(qs, bank.Question{
				ID:            fmt.Sprintf("%sA%02d", sec, i),
				Text:          "q",
				Options:       []string{"A. x", "B. y"},
				CorrectAnswer: "A",
			})
		}
	}
	return qs
}

func ids(qs []bank.Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}

func TestAll(t *testing.T) {
	qs := makePool(map[string]int{"T1": 2, "T2": 1}, "T1", "T2")
	got := All(qs)
	if fmt.Sprint(ids(got)) != fmt.Sprint(ids(qs)) {
		t.Errorf("All = %v, want %v", ids(got), ids(qs))
	}
}

func TestBoundedSubset(t *testing.T) {
	qs := makePool(map[string]int{"T1": 5}, "T1")

	tests := []struct {
		n, want int
	}{
		{0, 0},
		{-3, 0},
		{1, 1},
		{3, 3},
		{5, 5},
		{50, 5},
	}
	for _, tt := range tests {
		got := BoundedSubset(qs, tt.n)
		if len(got) != tt.want {
			t.Errorf("BoundedSubset(n=%d) len = %d, want %d", tt.n, len(got), tt.want)
			continue
		}
		for i := range got {
			if got[i].ID != qs[i].ID {
				t.Errorf("BoundedSubset(n=%d)[%d] = %s, want prefix element %s", tt.n, i, got[i].ID, qs[i].ID)
			}
		}
	}
}

func TestBoundedSubsetPrefixStable(t *testing.T) {
	qs := makePool(map[string]int{"T1": 8}, "T1")
	small := BoundedSubset(qs, 3)
	large := BoundedSubset(qs, 6)
	for i := range small {
		if small[i].ID != large[i].ID {
			t.Errorf("prefix mismatch at %d: %s vs %s", i, small[i].ID, large[i].ID)
		}
	}
}

func TestStratifiedDrawCounts(t *testing.T) {
	counts := map[string]int{
		"T1": 60, "T2": 30, "T3": 30, "T4": 20, "T5": 50,
		"T6": 40, "T7": 40, "T8": 40, "T9": 20, "T0": 30,
	}
	qs := makePool(counts, "T0", "T1", "T2", "T3", "T4", "T5", "T6", "T7", "T8", "T9")
	r := rand.New(rand.NewPCG(1, 2))

	got := StratifiedDraw(r, qs, DefaultExamQuotas)
	if len(got) != 35 {
		t.Fatalf("len = %d, want 35", len(got))
	}

	perSection := make(map[string]int)
	seen := make(map[string]bool)
	for _, q := range got {
		perSection[q.Section()]++
		if seen[q.ID] {
			t.Errorf("duplicate question %s", q.ID)
		}
		seen[q.ID] = true
	}
	for _, quota := range DefaultExamQuotas {
		if perSection[quota.Section] != quota.Count {
			t.Errorf("section %s: drew %d, want %d", quota.Section, perSection[quota.Section], quota.Count)
		}
	}
}

func TestStratifiedDrawTableOrder(t *testing.T) {
	qs := makePool(map[string]int{"T1": 10, "T2": 10, "T0": 10}, "T0", "T1", "T2")
	quotas := QuotaTable{{"T2", 2}, {"T0", 1}, {"T1", 3}}

	got := StratifiedDraw(rand.New(rand.NewPCG(7, 7)), qs, quotas)
	var order []string
	for _, q := range got {
		order = append(order, q.Section())
	}
	want := []string{"T2", "T2", "T0", "T1", "T1", "T1"}
	if fmt.Sprint(order) != fmt.Sprint(want) {
		t.Errorf("section order = %v, want %v", order, want)
	}
}

func TestStratifiedDrawShortfall(t *testing.T) {
	qs := makePool(map[string]int{"T1": 2, "T2": 5}, "T1", "T2")
	quotas := QuotaTable{{"T1", 6}, {"T2", 3}, {"T9", 3}}

	got := StratifiedDraw(rand.New(rand.NewPCG(3, 4)), qs, quotas)
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5 (2 from T1 shortfall, 3 from T2, 0 from T9)", len(got))
	}
}

func TestStratifiedDrawDeterministicWithSeed(t *testing.T) {
	qs := makePool(map[string]int{"T1": 40, "T2": 40}, "T1", "T2")
	quotas := QuotaTable{{"T1", 6}, {"T2", 3}}

	a := StratifiedDraw(rand.New(rand.NewPCG(42, 0)), qs, quotas)
	b := StratifiedDraw(rand.New(rand.NewPCG(42, 0)), qs, quotas)
	if fmt.Sprint(ids(a)) != fmt.Sprint(ids(b)) {
		t.Errorf("same seed gave %v and %v", ids(a), ids(b))
	}
}

func TestStratifiedDrawDoesNotMutateInput(t *testing.T) {
	qs := makePool(map[string]int{"T1": 10}, "T1")
	before := fmt.Sprint(ids(qs))
	StratifiedDraw(rand.New(rand.NewPCG(1, 1)), qs, QuotaTable{{"T1", 5}})
	if after := fmt.Sprint(ids(qs)); after != before {
		t.Errorf("input reordered: %s", after)
	}
}

func TestDefaultExamQuotasTotal(t *testing.T) {
	if got := DefaultExamQuotas.Total(); got != 35 {
		t.Errorf("Total() = %d, want 35", got)
	}
	if err := DefaultExamQuotas.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestParseQuotaTable(t *testing.T) {
	got, err := ParseQuotaTable(" T1:6, T2:3 ,T0:2")
	if err != nil {
		t.Fatalf("ParseQuotaTable: %v", err)
	}
	if got.String() != "T1:6,T2:3,T0:2" {
		t.Errorf("String() = %q", got.String())
	}

	roundTrip, err := ParseQuotaTable(DefaultExamQuotas.String())
	if err != nil || roundTrip.Total() != 35 {
		t.Errorf("round trip = %v, %v", roundTrip, err)
	}

	tests := []struct {
		in   string
		want error
	}{
		{"", ErrMalformedQuota},
		{"T1", ErrMalformedQuota},
		{"T1:x", ErrMalformedQuota},
		{"T1:6,T1:2", ErrDuplicateSection},
		{"T1:-1", ErrNegativeQuota},
	}
	for _, tt := range tests {
		_, err := ParseQuotaTable(tt.in)
		if !errors.Is(err, tt.want) {
			t.Errorf("ParseQuotaTable(%q) err = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	if n, ok := DefaultExamQuotas.Lookup("T5"); !ok || n != 4 {
		t.Errorf("Lookup(T5) = %d, %v", n, ok)
	}
	if _, ok := DefaultExamQuotas.Lookup("G1"); ok {
		t.Error("Lookup(G1) should miss")
	}
}

func TestCoverageOf(t *testing.T) {
	counts := map[string]int{"T1": 10, "T2": 1, "T9": 4}
	table := QuotaTable{{"T2", 3}, {"T1", 6}, {"T5", 2}}

	got := CoverageOf(table, []string{"T9", "T1", "T2"}, func(s string) int { return counts[s] })

	want := []Coverage{
		{Section: "T2", Available: 1, Quota: 3, InTable: true},
		{Section: "T1", Available: 10, Quota: 6, InTable: true},
		{Section: "T5", Available: 0, Quota: 2, InTable: true},
		{Section: "T9", Available: 4},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if got[0].Shortfall() != 2 || got[1].Shortfall() != 0 || got[2].Shortfall() != 2 {
		t.Errorf("unexpected shortfalls: %d %d %d", got[0].Shortfall(), got[1].Shortfall(), got[2].Shortfall())
	}
}
