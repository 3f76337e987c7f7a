package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"primemath/internal/fingerprint"
	"primemath/internal/primes"
	"primemath/internal/reference"
)

// maxCheckLimit bounds the sieve and trial tables (two bools per value).
const maxCheckLimit = 1 << 30

// check: verify trial division against the sieve and the ordinal search
// against both.
func checkCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Cross-check trial division against a sieve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 2 {
				return fmt.Errorf("--limit must be >= 2, got %d", limit)
			}
			if limit > maxCheckLimit {
				return fmt.Errorf("--limit must be <= %d, got %d", maxCheckLimit, limit)
			}
			sieve := reference.Sieve(limit)
			low := -limit / 10

			for v := low; v < 0; v++ {
				if primes.IsPrime(v) {
					return fmt.Errorf("IsPrime(%d) = true for a negative value", v)
				}
			}
			trial := make([]bool, limit+1)
			for v := range trial {
				trial[v] = primes.IsPrime(v)
				if trial[v] != sieve[v] {
					return fmt.Errorf("IsPrime(%d) = %t, sieve says %t", v, trial[v], sieve[v])
				}
			}
			appCtx.Log.Debug().Int("low", low).Int("limit", limit).Msg("primality agrees with sieve")

			count, prev := 0, 0
			for v, ok := range sieve {
				if !ok {
					continue
				}
				count++
				p, err := primes.NthPrime(count)
				if err != nil {
					return err
				}
				if p != v {
					return fmt.Errorf("NthPrime(%d) = %d, sieve has %d", count, p, v)
				}
				if p <= prev || !primes.IsPrime(p) {
					return fmt.Errorf("NthPrime(%d) = %d breaks ordering or primality", count, p)
				}
				prev = p
			}
			appCtx.Log.Debug().Int("ordinals", count).Msg("ordinal search agrees with sieve")

			fmt.Fprintf(cmd.OutOrStdout(), "checked [%d, %d]: %d primes, fingerprint %s\n",
				low, limit, count, fingerprint.Primes(trial))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10000, "largest value to check")
	return cmd
}
