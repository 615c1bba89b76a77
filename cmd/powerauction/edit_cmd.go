package main

import (
	"fmt"

	"github.com/lox/powerauction/cmd/powerauction/shared"
	"github.com/lox/powerauction/internal/tui"
)

// EditCmd opens the interactive bid entry form.
type EditCmd struct {
	Config string `short:"c" default:"powerauction.hcl" help:"Round settings file"`
	Seed   *int64 `help:"Deterministic RNG seed for the random/even shortcuts"`
	Even   bool   `help:"Prefill the form with the balanced bid set"`
	Debug  bool   `help:"Enable debug logging"`
}

func (c *EditCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := loadAuctionConfig(c.Config, logger)
	if err != nil {
		return err
	}

	rng := resolveRNG(c.Seed, logger)
	bids := cfg.NewBidSet()
	if c.Even {
		if err := bids.MakeEven(rng); err != nil {
			return fmt.Errorf("even generation: %w", err)
		}
	}

	accepted, err := tui.Run(bids, rng)
	if err != nil {
		return err
	}
	if !accepted {
		logger.Info("edit abandoned, bids discarded")
		return nil
	}

	fmt.Println(titleStyle.Render(" Accepted bids "))
	printBids(bids)
	if !bids.Validate() {
		printViolations(bids)
		return fmt.Errorf("bid set has %d violation(s)", len(bids.Messages()))
	}
	return nil
}
