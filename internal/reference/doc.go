// Package reference holds independent prime computations used to check the
// trial-division code in package primes.
//
//   - Sieve         sieve of Eratosthenes over [0, limit]
//   - NthPrime      ordinal search driven by math/big's probabilistic test
//
// Nothing in package primes depends on this package; it backs tests and the
// check and compare commands only.
package reference
