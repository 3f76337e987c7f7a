// Package fingerprint produces short digests of prime tables so that two
// runs, or two implementations, can be compared at a glance.
package fingerprint
