package reference

// Sieve returns a table s of length limit+1 where s[v] reports whether v is
// prime. A negative limit yields an empty table.
func Sieve(limit int) []bool {
	if limit < 0 {
		return []bool{}
	}
	s := make([]bool, limit+1)
	for v := 2; v <= limit; v++ {
		s[v] = true
	}
	for p := 2; p <= limit/p; p++ {
		if !s[p] {
			continue
		}
		for m := p * p; m <= limit; m += p {
			s[m] = false
		}
	}
	return s
}
