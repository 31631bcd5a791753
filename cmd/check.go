package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/hamexam/internal/sampler"
)

var errShortfall = errors.New("bank cannot fill the exam quotas")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the bank and report sections short of their exam quota",
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, closer, err := cliLogger(cfg)
		if err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		defer closer.Close()

		if err := cfg.ExamQuotas.Validate(); err != nil {
			return fmt.Errorf("exam quotas: %w", err)
		}
		b, err := loadBank(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d questions in %d sections, all valid.\n", cfg.BankPath, b.Len(), len(b.Sections()))

		short := 0
		for _, c := range sampler.CoverageOf(cfg.ExamQuotas, b.Sections(), b.Count) {
			switch {
			case c.Shortfall() > 0:
				short += c.Shortfall()
				fmt.Fprintf(out, "  %s: %d available, quota %d (short by %d)\n", c.Section, c.Available, c.Quota, c.Shortfall())
			case !c.InTable:
				fmt.Fprintf(out, "  %s: %d available, not drawn in exams\n", c.Section, c.Available)
			}
		}
		if short == 0 {
			fmt.Fprintf(out, "Exam quotas met: %d questions per exam.\n", cfg.ExamQuotas.Total())
			return nil
		}

		fmt.Fprintf(out, "Exams will have %d of %d questions.\n", cfg.ExamQuotas.Total()-short, cfg.ExamQuotas.Total())
		if strict {
			return fmt.Errorf("%w: short by %d", errShortfall, short)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().Bool("strict", false, "Fail when a section is short of its quota")
}
