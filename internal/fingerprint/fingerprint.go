package fingerprint

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// size is the number of digest bytes kept (20 hex chars).
const size = 10

// Primes returns a short hex fingerprint of the primes marked in table,
// where table[v] reports whether v is prime.
//
// Primes are encoded in ascending order as 8 little-endian bytes each,
// hashed with BLAKE2b-256, and the sum is truncated to 10 bytes.
func Primes(table []bool) string {
	var b []byte
	for v, ok := range table {
		if ok {
			b = binary.LittleEndian.AppendUint64(b, uint64(v))
		}
	}
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:size])
}
