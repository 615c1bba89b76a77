package main

import (
	"fmt"

	"github.com/lox/powerauction/cmd/powerauction/shared"
)

// RandomCmd generates a rule-constrained random bid set.
type RandomCmd struct {
	Config string `short:"c" default:"powerauction.hcl" help:"Round settings file"`
	Seed   *int64 `help:"Deterministic RNG seed (optional)"`
	Budget *int   `help:"Preview with a different point budget"`
	Debug  bool   `help:"Enable debug logging"`
}

func (c *RandomCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := loadAuctionConfig(c.Config, logger)
	if err != nil {
		return err
	}
	if c.Budget != nil {
		// Work on a copy so the preview budget never leaks into the
		// round's real rules.
		cfg = cfg.Duplicate()
		cfg.MaxTotal = *c.Budget
	}

	rng := resolveRNG(c.Seed, logger)
	bids := cfg.NewBidSet()
	if err := bids.MakeRandom(rng); err != nil {
		return fmt.Errorf("random generation: %w", err)
	}

	fmt.Println(titleStyle.Render(" Random bids "))
	printBids(bids)
	if !bids.Validate() {
		// MakeRandom honours bounds and duplicates but not
		// use-all-points; tell the player what still needs fixing.
		printViolations(bids)
	}
	return nil
}

// EvenCmd generates the maximally balanced bid set.
type EvenCmd struct {
	Config string `short:"c" default:"powerauction.hcl" help:"Round settings file"`
	Seed   *int64 `help:"Deterministic RNG seed (optional)"`
	Debug  bool   `help:"Enable debug logging"`
}

func (c *EvenCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := loadAuctionConfig(c.Config, logger)
	if err != nil {
		return err
	}

	rng := resolveRNG(c.Seed, logger)
	bids := cfg.NewBidSet()
	if err := bids.MakeEven(rng); err != nil {
		return fmt.Errorf("even generation: %w", err)
	}

	fmt.Println(titleStyle.Render(" Even bids "))
	printBids(bids)
	if !bids.Validate() {
		printViolations(bids)
	}
	return nil
}
