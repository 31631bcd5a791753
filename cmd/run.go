package cmd

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/hamexam/internal/app"
	"github.com/abhisek/hamexam/internal/llm"
	"github.com/abhisek/hamexam/internal/logging"
	"github.com/abhisek/hamexam/internal/session"
	"github.com/abhisek/hamexam/internal/tutor"
)

// runApp loads the bank, builds the engine and the optional tutor, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	noSplash, _ := cmd.Flags().GetBool("no-splash")
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closer.Close()

	b, err := loadBank(ctx, cfg, logger)
	if err != nil {
		return err
	}

	opts := session.Options{Config: cfg.Session(), Logger: logger}
	if cfg.HasSeed {
		opts.Rand = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}
	engine := session.NewEngine(b, opts)

	var tut *tutor.Service
	provider, err := llm.NewProviderFromEnv(ctx, logger)
	switch {
	case errors.Is(err, llm.ErrDisabled):
		logger.Info("tutor disabled: no LLM provider configured")
	case err != nil:
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Tutor explanations will be unavailable.")
	default:
		tut = tutor.NewService(provider, tutor.DefaultConfig())
	}

	return app.Run(ctx, app.Options{
		Engine:     engine,
		Tutor:      tut,
		BankName:   filepath.Base(cfg.BankPath),
		SkipSplash: noSplash,
		Logger:     logger,
	})
}
