package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func nthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nth <n>",
		Short: "Print the n-th prime, 1-indexed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			p, err := appCtx.NthPrime(cmd.Context(), n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
}
