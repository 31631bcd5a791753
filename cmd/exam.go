package cmd

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/hamexam/internal/sampler"
)

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Print a stratified exam draw without running the TUI",
	Long: "Exam draws one exam the way the TUI does and prints the question IDs\n" +
		"grouped by section. Pass --seed to reproduce a draw.",
	RunE: func(cmd *cobra.Command, args []string) error {
		showAnswers, _ := cmd.Flags().GetBool("answers")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, closer, err := cliLogger(cfg)
		if err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		defer closer.Close()

		seed := cfg.Seed
		if cmd.Flags().Changed("seed") {
			seed, _ = cmd.Flags().GetUint64("seed")
		} else if !cfg.HasSeed {
			seed = rand.Uint64()
		}

		b, err := loadBank(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		r := rand.New(rand.NewPCG(seed, seed))
		drawn := sampler.StratifiedDraw(r, b.Questions(), cfg.ExamQuotas)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Seed %d: %d of %d questions\n", seed, len(drawn), cfg.ExamQuotas.Total())
		fmt.Fprintln(out, strings.Repeat("─", 40))
		for i, q := range drawn {
			if i == 0 || q.Section() != drawn[i-1].Section() {
				fmt.Fprintf(out, "%s\n", q.Section())
			}
			if !showAnswers {
				fmt.Fprintf(out, "  %s\n", q.ID)
				continue
			}
			correct, _ := q.CorrectOption()
			fmt.Fprintf(out, "  %s  %s\n", q.ID, correct)
		}
		return nil
	},
}

func init() {
	examCmd.Flags().Uint64("seed", 0, "Random seed for the draw (overrides HAMEXAM_SEED)")
	examCmd.Flags().Bool("answers", false, "Print the correct option next to each question")
}
