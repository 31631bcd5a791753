package session

// SectionProgress tallies graded answers for one section.
type SectionProgress struct {
	Section   string
	Attempted int
	Correct   int
	Accuracy  float64 // Correct / Attempted (computed)
}

// Record adds a graded answer to the tally.
func (sp *SectionProgress) Record(correct bool) {
	sp.Attempted++
	if correct {
		sp.Correct++
	}
	if sp.Attempted > 0 {
		sp.Accuracy = float64(sp.Correct) / float64(sp.Attempted)
	}
}

// Misses returns the number of incorrect answers.
func (sp *SectionProgress) Misses() int {
	return sp.Attempted - sp.Correct
}
