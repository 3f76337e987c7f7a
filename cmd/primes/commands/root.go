package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"primemath/internal/app"
)

var (
	verbose bool
	timeout time.Duration
	appCtx  *app.App
)

// Execute runs the CLI. Cancelling ctx abandons any search in progress.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "primes",
		Short:        "Primality testing and n-th prime lookup",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if timeout < 0 {
				return fmt.Errorf("--timeout must not be negative")
			}
			appCtx = app.New(app.Config{
				Verbose:   verbose,
				Timeout:   timeout,
				LogOutput: cmd.ErrOrStderr(),
			})
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 0, "give up on a search after this long (0 = no limit)")

	root.AddCommand(isPrimeCmd(), nthCmd(), compareCmd(), checkCmd())
	return root
}

// parseInt parses a base-10 machine integer argument.
func parseInt(arg string) (int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", arg, err)
	}
	return v, nil
}
