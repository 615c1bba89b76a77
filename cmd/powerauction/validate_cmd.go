package main

import (
	"fmt"
	"strings"

	"github.com/lox/powerauction/cmd/powerauction/shared"
)

// ValidateCmd checks a bid set entered on the command line.
type ValidateCmd struct {
	Config string   `short:"c" default:"powerauction.hcl" help:"Round settings file"`
	Debug  bool     `help:"Enable debug logging"`
	Bids   []string `arg:"" optional:"" name:"power=bid" help:"Bids as POWER=BID pairs; unlisted powers count as 0"`
}

func (c *ValidateCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := loadAuctionConfig(c.Config, logger)
	if err != nil {
		return err
	}

	bids := cfg.NewBidSet()
	for _, pair := range c.Bids {
		power, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("expected POWER=BID, got %q", pair)
		}
		// Free-form input goes straight in; a bad number becomes a
		// validation message rather than a parse failure here.
		if err := bids.SetText(strings.TrimSpace(power), value); err != nil {
			return err
		}
	}

	printBids(bids)
	if bids.Validate() {
		fmt.Println("Bids are legal.")
		return nil
	}
	printViolations(bids)
	return fmt.Errorf("bid set has %d violation(s)", len(bids.Messages()))
}
