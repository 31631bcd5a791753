package sampler

import "sort"

// Coverage compares one section's available questions with its quota.
type Coverage struct {
	Section   string
	Available int
	Quota     int
	InTable   bool
}

// Shortfall returns how many questions the section is short of its quota.
func (c Coverage) Shortfall() int {
	return max(0, c.Quota-c.Available)
}

// CoverageOf reports every section of the table, in table order, followed
// by the sections of sections that the table does not mention, sorted.
// count returns the number of available questions of a section.
func CoverageOf(t QuotaTable, sections []string, count func(section string) int) []Coverage {
	out := make([]Coverage, 0, len(t)+len(sections))
	seen := make(map[string]bool, len(t))
	for _, q := range t {
		seen[q.Section] = true
		out = append(out, Coverage{Section: q.Section, Available: count(q.Section), Quota: q.Count, InTable: true})
	}

	var extra []string
	for _, s := range sections {
		if !seen[s] {
			seen[s] = true
			extra = append(extra, s)
		}
	}
	sort.Strings(extra)
	for _, s := range extra {
		out = append(out, Coverage{Section: s, Available: count(s)})
	}
	return out
}
