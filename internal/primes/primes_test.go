package primes_test

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"primemath/internal/primes"
	"primemath/internal/reference"
)

func TestIsPrime_Known(t *testing.T) {
	cases := []struct {
		value int
		want  bool
	}{
		{math.MinInt, false},
		{-7, false},
		{-5, false},
		{-2, false},
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{9, false},
		{17, true},
		{18, false},
		{25, false},
		{541, true},
		{7919, true},
		{7921, false}, // 89^2
		{2147483647, true},
		{1000000007, true},
		{1000000007 * 3, false},
	}
	for _, tc := range cases {
		if got := primes.IsPrime(tc.value); got != tc.want {
			t.Errorf("IsPrime(%d) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestIsPrime_MatchesSieve(t *testing.T) {
	const limit = 20000
	sieve := reference.Sieve(limit)
	for v := -100; v <= limit; v++ {
		want := v >= 0 && sieve[v]
		if got := primes.IsPrime(v); got != want {
			t.Fatalf("IsPrime(%d) = %v, sieve says %v", v, got, want)
		}
	}
}

func TestIsPrime_SquaresOfPrimes(t *testing.T) {
	// The largest divisor checked is exactly floor(sqrt(v)).
	for _, p := range []int{3, 5, 7, 11, 13, 101, 65521} {
		if primes.IsPrime(p * p) {
			t.Errorf("IsPrime(%d) = true for %d^2", p*p, p)
		}
	}
}

func TestNthPrime_Known(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{1, 2},
		{2, 3},
		{3, 5},
		{4, 7},
		{6, 13},
		{100, 541},
		{1000, 7919},
	}
	for _, tc := range cases {
		got, err := primes.NthPrime(tc.n)
		if err != nil {
			t.Fatalf("NthPrime(%d): %v", tc.n, err)
		}
		if got != tc.want {
			t.Errorf("NthPrime(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestNthPrime_InvalidArgument(t *testing.T) {
	for _, n := range []int{0, -1, math.MinInt} {
		got, err := primes.NthPrime(n)
		if !errors.Is(err, primes.ErrInvalidArgument) {
			t.Fatalf("NthPrime(%d): want ErrInvalidArgument, got %v", n, err)
		}
		if got != 0 {
			t.Fatalf("NthPrime(%d) returned %d alongside an error", n, got)
		}
	}
}

func TestNthPrime_MonotonicAndPrime(t *testing.T) {
	prev := 0
	for n := 1; n <= 300; n++ {
		p, err := primes.NthPrime(n)
		if err != nil {
			t.Fatalf("NthPrime(%d): %v", n, err)
		}
		if p <= prev {
			t.Fatalf("NthPrime(%d) = %d, not above NthPrime(%d) = %d", n, p, n-1, prev)
		}
		if !primes.IsPrime(p) {
			t.Fatalf("NthPrime(%d) = %d is not prime", n, p)
		}
		prev = p
	}
}

func TestNthPrime_NoPrimeSkipped(t *testing.T) {
	sieve := reference.Sieve(3000)
	n := 0
	for v, isPrime := range sieve {
		if !isPrime {
			continue
		}
		n++
		got, err := primes.NthPrime(n)
		if err != nil {
			t.Fatalf("NthPrime(%d): %v", n, err)
		}
		if got != v {
			t.Fatalf("NthPrime(%d) = %d, sieve has %d", n, got, v)
		}
	}
}

func TestConcurrentCallsAgree(t *testing.T) {
	const workers = 8
	const ordinals = 200

	want := make([]int, ordinals+1)
	for n := 1; n <= ordinals; n++ {
		p, err := primes.NthPrime(n)
		if err != nil {
			t.Fatalf("NthPrime(%d): %v", n, err)
		}
		want[n] = p
	}

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for i := 1; i <= ordinals; i++ {
				n := (i+offset)%ordinals + 1
				p, err := primes.NthPrime(n)
				if err != nil {
					errs <- fmt.Errorf("NthPrime(%d): %w", n, err)
					return
				}
				if p != want[n] {
					errs <- fmt.Errorf("NthPrime(%d) = %d, want %d", n, p, want[n])
					return
				}
				if !primes.IsPrime(p) {
					errs <- fmt.Errorf("IsPrime(%d) = false for NthPrime(%d)", p, n)
					return
				}
			}
		}(w * 25)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func BenchmarkNthPrime1000(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := primes.NthPrime(1000); err != nil {
			b.Fatal(err)
		}
	}
}
