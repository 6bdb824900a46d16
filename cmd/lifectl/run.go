package main

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"

	"squarevolution/internal/app"
	"squarevolution/internal/survey"
)

type runOptions struct {
	generations uint64
	show        bool
	maxShow     int
}

type sweepOptions struct {
	generations uint64
	count       int
	workers     int
	top         int
}

func runRun(w io.Writer, cfg *app.Config, opts runOptions) error {
	sb := app.NewSandbox(cfg)
	start := time.Now()
	sb.Advance(opts.generations)
	elapsed := time.Since(start)

	printRunReport(w, cfg, sb, elapsed)
	if opts.show {
		bounds, ok := sb.Grid().Bounds()
		if !ok {
			return nil
		}
		if bounds.Width() > int64(opts.maxShow) || bounds.Height() > int64(opts.maxShow) {
			return errors.Errorf("[run] bounding box %v is larger than --max-show %d", bounds, opts.maxShow)
		}
		renderCells(w, sb.Grid(), bounds)
	}
	return nil
}

func runSweep(ctx context.Context, w io.Writer, cfg *app.Config, opts sweepOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.count <= 0 {
		return errors.Errorf("[sweep] --count must be positive, got %d", opts.count)
	}

	start := time.Now()
	results, err := survey.Run(ctx, survey.Options{
		Pattern:     cfg.Pattern,
		Config:      cfg.PatternConfig(),
		Seeds:       survey.Seeds(cfg.Seed, opts.count),
		Generations: opts.generations,
		Workers:     opts.workers,
	})
	if err != nil {
		return err
	}
	printSweepReport(w, cfg.Pattern, opts, survey.Rank(results), time.Since(start))
	return nil
}
