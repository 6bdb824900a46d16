// Package survey runs one pattern under many seeds in parallel and reports
// how each run ended.
package survey

import (
	"context"
	"runtime"
	"sort"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"squarevolution/internal/core"
	"squarevolution/internal/patterns"
	"squarevolution/pkg/life"
)

// checkEvery is how many generations run between cancellation checks.
const checkEvery = 64

// Options describes a sweep.
type Options struct {
	Pattern     string
	Config      map[string]string
	Seeds       []int64
	Generations uint64
	Workers     int
}

// Result summarises one seeded run.
type Result struct {
	Seed           int64
	Population     int
	PeakPopulation int
	PeakGeneration uint64
	ActiveChunks   int
	Bounds         life.Rect
	Extinct        bool
	ExtinctAt      uint64
	Elapsed        time.Duration
}

// Seeds returns n consecutive seeds starting at first.
func Seeds(first int64, n int) []int64 {
	out := make([]int64, max(n, 0))
	for i := range out {
		out[i] = first + int64(i)
	}
	return out
}

// Run simulates every seed for opts.Generations on at most opts.Workers
// goroutines. Results come back in seed order.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if _, ok := core.Patterns()[opts.Pattern]; !ok {
		return nil, errors.Errorf("[survey.Run] unknown pattern %q", opts.Pattern)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(opts.Seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range opts.Seeds {
		i, seed := i, seed
		g.Go(func() error {
			res, err := runSeed(ctx, opts, seed)
			if err != nil {
				return errors.Wrapf(err, "[survey.Run] seed %d", seed)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runSeed(ctx context.Context, opts Options, seed int64) (Result, error) {
	start := time.Now()
	g := life.New()
	patterns.Place(g, opts.Pattern, opts.Config, life.C(0, 0), seed)

	res := Result{Seed: seed, PeakPopulation: g.Len()}
	for gen := uint64(1); gen <= opts.Generations; gen++ {
		if gen%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		g.Step()
		if n := g.Len(); n > res.PeakPopulation {
			res.PeakPopulation = n
			res.PeakGeneration = gen
		}
		if g.Len() == 0 {
			res.Extinct = true
			res.ExtinctAt = gen
			break
		}
	}
	if g.Len() == 0 {
		res.Extinct = true
	}

	res.Population = g.Len()
	res.ActiveChunks = g.ChunkCount()
	res.Bounds, _ = g.Bounds()
	res.Elapsed = time.Since(start)
	return res, nil
}

// Rank orders results by final population, largest first, breaking ties by
// seed.
func Rank(results []Result) []Result {
	out := append([]Result(nil), results...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Population != out[j].Population {
			return out[i].Population > out[j].Population
		}
		return out[i].Seed < out[j].Seed
	})
	return out
}
