package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"primemath/internal/primes"
)

// SearchFunc returns the n-th prime.
type SearchFunc func(n int) (int, error)

type App struct {
	Log     zerolog.Logger
	Timeout time.Duration
	Search  SearchFunc
}

func New(cfg Config) *App {
	out := cfg.LogOutput
	if out == nil {
		out = os.Stderr
	}
	return &App{
		Log:     NewLogger(out, cfg.Verbose),
		Timeout: cfg.Timeout,
		Search:  primes.NthPrime,
	}
}

type searchResult struct {
	prime int
	err   error
}

// NthPrime runs a.Search(n) until it returns or ctx is done, whichever
// comes first. A positive a.Timeout further bounds ctx.
//
// The search itself cannot be interrupted; on cancellation its goroutine is
// left to finish and its result is discarded.
func (a *App) NthPrime(ctx context.Context, n int) (int, error) {
	if a.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Timeout)
		defer cancel()
	}

	start := time.Now()
	done := make(chan searchResult, 1)
	go func() {
		p, err := a.Search(n)
		done <- searchResult{prime: p, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return 0, r.err
		}
		a.Log.Debug().Int("n", n).Int("prime", r.prime).Dur("elapsed", time.Since(start)).Msg("search finished")
		return r.prime, nil
	case <-ctx.Done():
		a.Log.Debug().Int("n", n).Dur("elapsed", time.Since(start)).Msg("search abandoned")
		return 0, fmt.Errorf("nth prime %d: %w", n, ctx.Err())
	}
}
