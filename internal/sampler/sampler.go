// Package sampler selects the working set of questions for a session.
//
// All and BoundedSubset are deterministic. StratifiedDraw draws from each
// section according to a quota table using an injected random source, so a
// seeded source gives reproducible exams.
package sampler

import (
	"math/rand/v2"

	"github.com/abhisek/hamexam/internal/bank"
)

// All returns every question unchanged, in order.
func All(qs []bank.Question) []bank.Question {
	out := make([]bank.Question, len(qs))
	copy(out, qs)
	return out
}

// BoundedSubset returns the first min(n, len(qs)) questions. A negative n is
// treated as zero.
func BoundedSubset(qs []bank.Question, n int) []bank.Question {
	n = max(0, min(n, len(qs)))
	out := make([]bank.Question, n)
	copy(out, qs[:n])
	return out
}

// StratifiedDraw draws, for each quota entry in table order, up to Count
// distinct questions uniformly at random from that section. Sections with
// fewer questions than their quota contribute all they have. The result is
// grouped by section in table order.
func StratifiedDraw(r *rand.Rand, qs []bank.Question, quotas QuotaTable) []bank.Question {
	bySection := make(map[string][]bank.Question)
	for _, q := range qs {
		sec := q.Section()
		bySection[sec] = append(bySection[sec], q)
	}

	out := make([]bank.Question, 0, quotas.Total())
	for _, quota := range quotas {
		pool := bySection[quota.Section]
		k := min(quota.Count, len(pool))
		if k <= 0 {
			continue
		}
		out = append(out, sample(r, pool, k)...)
	}
	return out
}

// sample returns k distinct elements of pool chosen uniformly at random,
// using a partial Fisher-Yates shuffle over a copy.
func sample(r *rand.Rand, pool []bank.Question, k int) []bank.Question {
	work := make([]bank.Question, len(pool))
	copy(work, pool)
	for i := 0; i < k; i++ {
		j := i + r.IntN(len(work)-i)
		work[i], work[j] = work[j], work[i]
	}
	return work[:k:k]
}
