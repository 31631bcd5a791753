package sampler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrDuplicateSection is returned when a quota table lists a section twice.
	ErrDuplicateSection = errors.New("duplicate section in quota table")

	// ErrNegativeQuota is returned for a quota below zero.
	ErrNegativeQuota = errors.New("negative quota")

	// ErrMalformedQuota is returned when a quota string cannot be parsed.
	ErrMalformedQuota = errors.New("malformed quota")
)

// Quota is the number of questions to draw from one section.
type Quota struct {
	Section string
	Count   int
}

// QuotaTable is an ordered list of per-section quotas. The order of the
// table is the order of sections in a drawn exam.
type QuotaTable []Quota

// DefaultExamQuotas mirrors the section weighting of the 35-question
// Technician (Element 2) exam.
var DefaultExamQuotas = QuotaTable{
	{"T1", 6},
	{"T2", 3},
	{"T3", 3},
	{"T4", 3},
	{"T5", 4},
	{"T6", 4},
	{"T7", 4},
	{"T8", 3},
	{"T9", 3},
	{"T0", 2},
}

// Total returns the sum of all quotas.
func (t QuotaTable) Total() int {
	n := 0
	for _, q := range t {
		n += max(0, q.Count)
	}
	return n
}

// Sections returns the section codes in table order.
func (t QuotaTable) Sections() []string {
	out := make([]string, len(t))
	for i, q := range t {
		out[i] = q.Section
	}
	return out
}

// Lookup returns the quota for section.
func (t QuotaTable) Lookup(section string) (int, bool) {
	for _, q := range t {
		if q.Section == section {
			return q.Count, true
		}
	}
	return 0, false
}

// Validate reports duplicate sections and negative counts.
func (t QuotaTable) Validate() error {
	seen := make(map[string]bool, len(t))
	var errs []error
	for _, q := range t {
		if q.Section == "" {
			errs = append(errs, fmt.Errorf("%w: empty section", ErrMalformedQuota))
		}
		if seen[q.Section] {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateSection, q.Section))
		}
		seen[q.Section] = true
		if q.Count < 0 {
			errs = append(errs, fmt.Errorf("%w: %s=%d", ErrNegativeQuota, q.Section, q.Count))
		}
	}
	return errors.Join(errs...)
}

// String formats the table as "T1:6,T2:3,...", the form ParseQuotaTable reads.
func (t QuotaTable) String() string {
	parts := make([]string, len(t))
	for i, q := range t {
		parts[i] = fmt.Sprintf("%s:%d", q.Section, q.Count)
	}
	return strings.Join(parts, ",")
}

// ParseQuotaTable parses "T1:6,T2:3" into a validated QuotaTable. Whitespace
// around entries is ignored.
func ParseQuotaTable(s string) (QuotaTable, error) {
	var t QuotaTable
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		section, count, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedQuota, entry)
		}
		n, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedQuota, entry, err)
		}
		t = append(t, Quota{Section: strings.TrimSpace(section), Count: n})
	}
	if len(t) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrMalformedQuota)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
