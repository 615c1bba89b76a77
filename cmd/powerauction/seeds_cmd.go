package main

import (
	"fmt"

	"github.com/lox/powerauction/cmd/powerauction/shared"
)

// SeedsCmd prints the seed table the external seeding process uses to
// map settled draft positions onto boards and powers.
type SeedsCmd struct {
	Config string `short:"c" default:"powerauction.hcl" help:"Round settings file"`
	Debug  bool   `help:"Enable debug logging"`
}

func (c *SeedsCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := loadAuctionConfig(c.Config, logger)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(" Seed table "))
	fmt.Printf("%4s  %5s  %s\n", "Seed", "Board", "Power")
	for _, seed := range cfg.Seeds() {
		board, power, ok := cfg.PowerForSeed(seed)
		if !ok {
			return fmt.Errorf("seed %d out of range", seed)
		}
		fmt.Printf("%4d  %5d  %s\n", seed, board, power)
	}
	logger.Debug("seed table printed", "boards", cfg.Boards, "seeds", len(cfg.Seeds()))
	return nil
}
