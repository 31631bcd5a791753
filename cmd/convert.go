package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/hamexam/internal/bank"
)

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a bank between .json, .xlsx and .db/.sqlite",
	Long: "Convert loads and validates <in>, then writes every question and the\n" +
		"bank metadata to <out>. Formats are chosen by file extension.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		in, out := args[0], args[1]

		if _, err := bank.FormatOf(out); err != nil {
			return err
		}
		b, err := bank.Load(ctx, in)
		if err != nil {
			return fmt.Errorf("load %s: %w", in, err)
		}
		if err := bank.Write(ctx, out, b); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d questions to %s.\n", b.Len(), out)
		return nil
	},
}
