package primes

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidArgument is returned when an argument is outside the domain of
	// the operation.
	ErrInvalidArgument = errors.New("invalid argument")
)

// IsPrime reports whether value is prime. It is false for every value below 2.
func IsPrime(value int) bool {
	if value < 2 {
		return false
	}
	if value == 2 {
		return true
	}
	if value%2 == 0 {
		return false
	}

	limit := isqrt(value)
	for divisor := 3; divisor <= limit; divisor += 2 {
		if value%divisor == 0 {
			return false
		}
	}
	return true
}

// NthPrime returns the n-th prime, 1-indexed (NthPrime(1) == 2).
//
// It returns ErrInvalidArgument when n < 1.
func NthPrime(n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: n must be >= 1, got %d", ErrInvalidArgument, n)
	}
	if n == 1 {
		return 2, nil
	}

	count := 1 // 2 is already counted
	candidate := 1
	for count < n {
		candidate += 2
		if IsPrime(candidate) {
			count++
		}
	}
	return candidate, nil
}

// isqrt returns floor(sqrt(v)) for v >= 0.
//
// math.Sqrt works on float64, which cannot represent every int64 exactly, so
// the estimate is corrected in integer arithmetic. Comparisons divide rather
// than multiply to stay clear of overflow near math.MaxInt64.
func isqrt(v int) int {
	r := int(math.Sqrt(float64(v)))
	for r > 0 && r > v/r {
		r--
	}
	for r+1 <= v/(r+1) {
		r++
	}
	return r
}
