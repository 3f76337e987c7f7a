// Package app wires runtime dependencies for the CLI.
//
// It builds the logger from Config and exposes the prime search behind a
// caller-supplied deadline, which package primes deliberately does not
// offer.
package app
