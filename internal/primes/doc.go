// Package primes provides primality testing and ordinal prime lookup by
// trial division.
//
// Both functions are pure: they keep no state between calls and are safe to
// call from any number of goroutines. NthPrime restarts its search on every
// call; callers that need a bound on latency must impose their own deadline.
package primes
