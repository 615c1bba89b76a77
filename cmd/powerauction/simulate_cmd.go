package main

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lox/powerauction/auction"
	"github.com/lox/powerauction/cmd/powerauction/shared"
	"github.com/lox/powerauction/internal/randutil"
	"github.com/lox/powerauction/internal/stats"
)

// SimulateCmd exercises a generator repeatedly and reports the
// distribution of the totals it produces, to sanity-check a round's
// rules before bids open.
type SimulateCmd struct {
	Config    string `short:"c" default:"powerauction.hcl" help:"Round settings file"`
	Runs      int    `default:"1000" help:"Number of generation runs"`
	Generator string `default:"random" enum:"random,even" help:"Generator to exercise: random or even"`
	Workers   int    `default:"4" help:"Parallel workers"`
	Seed      int64  `default:"0" help:"Base RNG seed (0 for wall clock)"`
	Debug     bool   `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := loadAuctionConfig(c.Config, logger)
	if err != nil {
		return err
	}
	if c.Runs < 1 {
		return fmt.Errorf("runs must be positive")
	}
	if c.Workers < 1 {
		c.Workers = 1
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting simulation",
		"generator", c.Generator, "runs", c.Runs, "workers", c.Workers, "seed", seed)

	start := time.Now()

	// Each worker owns its bid set and RNG; only the per-worker
	// accumulators are merged at the end.
	results := make([]stats.Totals, c.Workers)
	var g errgroup.Group
	for w := 0; w < c.Workers; w++ {
		runs := c.Runs / c.Workers
		if w < c.Runs%c.Workers {
			runs++
		}
		g.Go(c.worker(cfg, seed+int64(w), runs, &results[w]))
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var totals stats.Totals
	for w := range results {
		totals.Merge(&results[w])
	}
	printReport(&totals, time.Since(start))
	return nil
}

// worker returns the generation loop for one goroutine.
func (c *SimulateCmd) worker(cfg *auction.Config, seed int64, runs int, out *stats.Totals) func() error {
	return func() error {
		rng := randutil.New(seed)
		bids := cfg.NewBidSet()
		for i := 0; i < runs; i++ {
			var err error
			switch c.Generator {
			case "even":
				err = bids.MakeEven(rng)
			default:
				err = bids.MakeRandom(rng)
			}

			if err != nil {
				if !errors.Is(err, auction.ErrInfeasible) {
					return err
				}
				out.Add(stats.RunResult{Seed: seed, Infeasible: true})
				continue
			}
			out.Add(stats.RunResult{
				Total: bids.Total(),
				Seed:  seed,
				Valid: bids.Validate(),
			})
		}
		return nil
	}
}

func printReport(totals *stats.Totals, elapsed time.Duration) {
	fmt.Println(titleStyle.Render(" Simulation report "))
	fmt.Printf("Runs:        %d in %.2fs\n", totals.Runs, elapsed.Seconds())
	fmt.Printf("Generated:   %d (valid %d, invalid %d, infeasible %d)\n",
		totals.Generated(), totals.Valid, totals.Invalid, totals.Infeasible)
	if totals.Generated() == 0 {
		return
	}

	lo, hi := totals.ConfidenceInterval95()
	fmt.Printf("Total mean:  %.2f ± %.2f (95%% CI %.2f..%.2f)\n",
		totals.Mean(), 1.96*totals.StdError(), lo, hi)
	fmt.Printf("Std dev:     %.2f\n", totals.StdDev())
	fmt.Printf("Median:      %.1f\n", totals.Median())
	fmt.Printf("Range:       %d..%d (p5 %.1f, p95 %.1f)\n",
		totals.MinTotal, totals.MaxTotal, totals.Percentile(0.05), totals.Percentile(0.95))
}
