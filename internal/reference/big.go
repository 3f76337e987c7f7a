package reference

import (
	"fmt"
	"math/big"

	"primemath/internal/primes"
)

// millerRabinRounds is the number of Miller-Rabin rounds ProbablyPrime runs
// in addition to its Baillie-PSW test. BPSW alone has no known
// counterexample below 2^64.
const millerRabinRounds = 20

var two = big.NewInt(2)

// NthPrime returns the n-th prime, 1-indexed, using big.Int.ProbablyPrime as
// the primality test. It shares no code with primes.NthPrime.
func NthPrime(n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: n must be >= 1, got %d", primes.ErrInvalidArgument, n)
	}
	candidate := big.NewInt(2)
	for count := 0; ; {
		if candidate.ProbablyPrime(millerRabinRounds) {
			count++
			if count == n {
				return int(candidate.Int64()), nil
			}
		}
		if candidate.Cmp(two) == 0 {
			candidate.SetInt64(3)
			continue
		}
		candidate.Add(candidate, two)
	}
}
