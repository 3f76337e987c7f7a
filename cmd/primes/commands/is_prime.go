package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"primemath/internal/primes"
)

func isPrimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "is-prime [--] <value>...",
		Short: "Report whether each value is prime",
		Long:  "Report whether each value is prime. Put -- before negative values so they are not read as flags.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]int, 0, len(args))
			for _, arg := range args {
				v, err := parseInt(arg)
				if err != nil {
					return err
				}
				values = append(values, v)
			}
			for _, v := range values {
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %t\n", v, primes.IsPrime(v))
			}
			return nil
		},
	}
}
