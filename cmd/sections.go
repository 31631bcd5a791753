package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/hamexam/internal/sampler"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the bank's sections with question counts and exam quotas",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, closer, err := cliLogger(cfg)
		if err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		defer closer.Close()

		b, err := loadBank(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-8s  %9s  %5s\n", "Section", "Questions", "Quota")
		fmt.Fprintln(out, strings.Repeat("─", 26))
		for _, c := range sampler.CoverageOf(cfg.ExamQuotas, b.Sections(), b.Count) {
			quota := "-"
			if c.InTable {
				quota = fmt.Sprintf("%d", c.Quota)
			}
			fmt.Fprintf(out, "%-8s  %9d  %5s\n", c.Section, c.Available, quota)
		}
		fmt.Fprintln(out, strings.Repeat("─", 26))
		fmt.Fprintf(out, "%-8s  %9d  %5d\n", "TOTAL", b.Len(), cfg.ExamQuotas.Total())
		return nil
	},
}
