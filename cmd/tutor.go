package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/hamexam/internal/bank"
	"github.com/abhisek/hamexam/internal/grader"
	"github.com/abhisek/hamexam/internal/llm"
	"github.com/abhisek/hamexam/internal/tutor"
)

var tutorCmd = &cobra.Command{
	Use:   "tutor",
	Short: "Use the LLM tutor outside the TUI",
}

var tutorExplainCmd = &cobra.Command{
	Use:   "explain <question-id>",
	Short: "Explain one question, optionally against a wrong answer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		answer, _ := cmd.Flags().GetString("answer")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, closer, err := cliLogger(cfg)
		if err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		defer closer.Close()

		b, err := loadBank(ctx, cfg, logger)
		if err != nil {
			return err
		}
		q, ok := b.Get(strings.ToUpper(args[0]))
		if !ok {
			return fmt.Errorf("question %s not found in %s", args[0], cfg.BankPath)
		}

		provider, err := llm.NewProviderFromEnv(ctx, logger)
		if err != nil {
			if errors.Is(err, llm.ErrDisabled) {
				return fmt.Errorf("%w: set ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY or OPENROUTER_API_KEY", err)
			}
			return err
		}
		svc := tutor.NewService(provider, tutor.DefaultConfig())

		chosen := ""
		if answer != "" {
			if chosen, ok = optionByLabel(q, answer); !ok {
				return fmt.Errorf("question %s has no option %q", q.ID, answer)
			}
		}
		outcome := grader.Grade([]bank.Question{q}, map[string]string{q.ID: chosen}).Outcomes[0]
		exp, err := svc.Explain(ctx, outcome)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		sep := strings.Repeat("─", 60)
		fmt.Fprintln(out, q.ID, exp.Summary)
		fmt.Fprintln(out, sep)
		fmt.Fprintln(out, exp.WhyCorrect)
		if exp.WhyWrong != "" {
			fmt.Fprintln(out)
			fmt.Fprintln(out, exp.WhyWrong)
		}
		if exp.Tip != "" {
			fmt.Fprintln(out, sep)
			fmt.Fprintln(out, "Tip:", exp.Tip)
		}
		return nil
	},
}

var tutorPricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Show the per-model token prices used for cost logging",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-32s  %12s  %12s\n", "Model", "Input/MTok", "Output/MTok")
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for _, id := range llm.PricedModels() {
			c := llm.LookupCost(id)
			fmt.Fprintf(out, "%-32s  %12s  %12s\n", truncate(id, 32), formatCost(c.InputPerMTok), formatCost(c.OutputPerMTok))
		}
	},
}

// optionByLabel finds the option whose label is label, case-insensitively.
func optionByLabel(q bank.Question, label string) (string, bool) {
	for _, o := range q.Options {
		if strings.EqualFold(strings.TrimSpace(grader.OptionLabel(o)), strings.TrimSpace(label)) {
			return o, true
		}
	}
	return "", false
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	tutorExplainCmd.Flags().StringP("answer", "a", "", "The answer given, e.g. B")

	tutorCmd.AddCommand(tutorExplainCmd)
	tutorCmd.AddCommand(tutorPricingCmd)
}
