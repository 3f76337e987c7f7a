package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"primemath/internal/primes"
	"primemath/internal/reference"
)

// compare: time the trial-division search against the math/big one.
func compareCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Time trial division against a math/big reference search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			trial, trialTime, err := timed(primes.NthPrime, n)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "trial division: %d\nTime: %.7f [s]\n", trial, trialTime.Seconds())

			ref, refTime, err := timed(reference.NthPrime, n)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "math/big: %d\nTime: %.7f [s]\n", ref, refTime.Seconds())

			if trial != ref {
				return fmt.Errorf("results differ for n=%d: trial division %d, math/big %d", n, trial, ref)
			}
			fmt.Fprintf(out, "Factor: %.2fx\n", refTime.Seconds()/trialTime.Seconds())

			appCtx.Log.Debug().
				Int("n", n).
				Dur("trial", trialTime).
				Dur("reference", refTime).
				Msg("compare finished")
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 1000, "ordinal of the prime to compute")
	return cmd
}

// timed runs search(n) and reports how long it took. The duration is never
// zero so it can be used as a divisor.
func timed(search func(int) (int, error), n int) (int, time.Duration, error) {
	start := time.Now()
	p, err := search(n)
	elapsed := time.Since(start)
	if elapsed <= 0 {
		elapsed = time.Nanosecond
	}
	return p, elapsed, err
}
