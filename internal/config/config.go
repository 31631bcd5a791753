// Package config loads hamexam settings from a .env file and HAMEXAM_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/abhisek/hamexam/internal/grader"
	"github.com/abhisek/hamexam/internal/sampler"
	"github.com/abhisek/hamexam/internal/session"
	"github.com/abhisek/hamexam/internal/timer"
)

// DefaultBankPath is the bank file looked up in the working directory.
const DefaultBankPath = "Elemento-2-2022-2026.json"

// Config holds the application settings.
type Config struct {
	BankPath      string
	ExamDuration  time.Duration
	ExamQuotas    sampler.QuotaTable
	PracticeCount int
	PassMark      int

	// Seed fixes the exam draw when HasSeed is set.
	Seed    uint64
	HasSeed bool

	LogLevel  string
	LogFormat string
	LogFile   string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		BankPath:      DefaultBankPath,
		ExamDuration:  timer.DefaultExamDuration,
		ExamQuotas:    sampler.DefaultExamQuotas,
		PracticeCount: session.DefaultPracticeCount,
		PassMark:      grader.DefaultPassMark,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// Load reads the given .env files (default ".env"), then builds a Config
// from the environment. Missing .env files are not an error; variables
// already set in the environment take precedence over file values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from HAMEXAM_* variables over Default.
func FromEnv() (*Config, error) {
	cfg := Default()
	var errs []error

	cfg.BankPath = getEnv("HAMEXAM_BANK", cfg.BankPath)
	cfg.LogLevel = getEnv("HAMEXAM_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("HAMEXAM_LOG_FORMAT", cfg.LogFormat)
	cfg.LogFile = getEnv("HAMEXAM_LOG_FILE", cfg.LogFile)

	if v := os.Getenv("HAMEXAM_EXAM_DURATION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			errs = append(errs, fmt.Errorf("HAMEXAM_EXAM_DURATION: invalid duration %q", v))
		} else {
			cfg.ExamDuration = d
		}
	}

	if v := os.Getenv("HAMEXAM_EXAM_QUOTAS"); v != "" {
		t, err := sampler.ParseQuotaTable(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("HAMEXAM_EXAM_QUOTAS: %w", err))
		} else {
			cfg.ExamQuotas = t
		}
	}

	if v := os.Getenv("HAMEXAM_PRACTICE_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			errs = append(errs, fmt.Errorf("HAMEXAM_PRACTICE_COUNT: must be a positive integer, got %q", v))
		} else {
			cfg.PracticeCount = n
		}
	}

	if v := os.Getenv("HAMEXAM_PASS_MARK"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			errs = append(errs, fmt.Errorf("HAMEXAM_PASS_MARK: must be a positive integer, got %q", v))
		} else {
			cfg.PassMark = n
		}
	}

	if v := os.Getenv("HAMEXAM_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("HAMEXAM_SEED: %w", err))
		} else {
			cfg.Seed = n
			cfg.HasSeed = true
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Session returns the engine parameters.
func (c *Config) Session() session.Config {
	return session.Config{
		PracticeCount: c.PracticeCount,
		ExamDuration:  c.ExamDuration,
		ExamQuotas:    c.ExamQuotas,
		PassMark:      c.PassMark,
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
