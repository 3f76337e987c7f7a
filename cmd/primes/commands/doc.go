// Package commands defines the primes CLI and wires dependencies for subcommands.
//
// Commands
//
//   - is-prime   Report whether each argument is prime
//   - nth        Print the n-th prime (1 -> 2)
//   - compare    Time trial division against a math/big search
//   - check      Cross-check trial division against a sieve
//
// # Implementation
//
// The root command builds the app context (logger, search deadline) before
// any subcommand runs. Results go to stdout; structured logs go to stderr.
package commands
