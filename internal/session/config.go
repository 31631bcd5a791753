package session

import (
	"time"

	"github.com/abhisek/hamexam/internal/grader"
	"github.com/abhisek/hamexam/internal/sampler"
	"github.com/abhisek/hamexam/internal/timer"
)

// DefaultPracticeCount is the practice subset size on mode entry.
const DefaultPracticeCount = 10

// Config holds the tunable session parameters.
type Config struct {
	// PracticeCount is the requested practice size on mode entry.
	PracticeCount int

	// ExamDuration is the exam time limit.
	ExamDuration time.Duration

	// ExamQuotas is the per-section draw table for the exam.
	ExamQuotas sampler.QuotaTable

	// PassMark is the minimum exam score that passes.
	PassMark int
}

// DefaultConfig returns the standard Technician exam parameters.
func DefaultConfig() Config {
	return Config{
		PracticeCount: DefaultPracticeCount,
		ExamDuration:  timer.DefaultExamDuration,
		ExamQuotas:    sampler.DefaultExamQuotas,
		PassMark:      grader.DefaultPassMark,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.PracticeCount <= 0 {
		c.PracticeCount = def.PracticeCount
	}
	if c.ExamDuration <= 0 {
		c.ExamDuration = def.ExamDuration
	}
	if len(c.ExamQuotas) == 0 {
		c.ExamQuotas = def.ExamQuotas
	}
	if c.PassMark <= 0 {
		c.PassMark = def.PassMark
	}
	return c
}
