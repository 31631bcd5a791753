package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/hamexam/internal/bank"
	"github.com/abhisek/hamexam/internal/config"
	"github.com/abhisek/hamexam/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "hamexam",
	Short: "Amateur radio licence exam trainer",
	Long: "hamexam drills the amateur radio licence question pool in the terminal:\n" +
		"study with answers shown, graded practice over chosen sections, and a timed\n" +
		"exam drawn by section quota.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().String("bank", "", "Path to the question bank: .json, .xlsx or .db (overrides HAMEXAM_BANK)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides HAMEXAM_LOG_LEVEL)")

	rootCmd.Flags().Bool("no-splash", false, "Skip the splash screen")

	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(examCmd)
	rootCmd.AddCommand(tutorCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads .env and HAMEXAM_* variables, then applies the
// persistent flags, which take precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		cfg.BankPath = p
	}
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		cfg.LogLevel = l
	}
	return cfg, nil
}

// cliLogger builds a logger on stderr for subcommands. The TUI logs to a
// file instead.
func cliLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	return logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Writer: os.Stderr,
	})
}

// loadBank loads the configured bank and logs its size.
func loadBank(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*bank.Bank, error) {
	b, err := bank.Load(ctx, cfg.BankPath)
	if err != nil {
		return nil, fmt.Errorf("load bank: %w", err)
	}
	logger.Debug("bank loaded", "path", cfg.BankPath, "questions", b.Len(), "sections", len(b.Sections()))
	return b, nil
}
