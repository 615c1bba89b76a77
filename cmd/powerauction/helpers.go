package main

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/powerauction/auction"
	"github.com/lox/powerauction/internal/randutil"
	"github.com/lox/powerauction/internal/tournament"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	powerColStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	totalRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	violationRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF6B6B"))
)

// loadAuctionConfig reads and validates the round settings and converts
// them to the engine configuration.
func loadAuctionConfig(path string, logger *log.Logger) (*auction.Config, error) {
	round, err := tournament.LoadRoundConfig(path)
	if err != nil {
		return nil, err
	}
	if err := round.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("loaded round settings",
		"round", round.Name,
		"powers", len(round.Powers),
		"boards", round.Boards,
		"budget", round.PointBudget)
	return round.ToAuction(), nil
}

// resolveRNG turns an optional --seed flag into a random source,
// logging the seed so any run can be replayed.
func resolveRNG(flag *int64, logger *log.Logger) *rand.Rand {
	if flag != nil {
		logger.Debug("using deterministic seed", "seed", *flag)
		return randutil.New(*flag)
	}
	rng, seed := randutil.FromTime()
	logger.Info("generated seed", "seed", seed)
	return rng
}

// printBids renders the bid table with the running total.
func printBids(bids *auction.BidSet) {
	cfg := bids.Config()

	nameWidth := 0
	for _, power := range cfg.Powers {
		if len(power) > nameWidth {
			nameWidth = len(power)
		}
	}
	for _, power := range cfg.Powers {
		bid, _ := bids.Bid(power)
		fmt.Printf("%s  %s\n",
			powerColStyle.Render(fmt.Sprintf("%-*s", nameWidth, power)),
			bid.String())
	}
	fmt.Println(totalRowStyle.Render(
		fmt.Sprintf("%-*s  %d / %d", nameWidth, "Total", bids.Total(), cfg.MaxTotal)))
}

// printViolations lists the validator's messages.
func printViolations(bids *auction.BidSet) {
	for _, msg := range bids.Messages() {
		fmt.Println(violationRowStyle.Render("• " + msg))
	}
}
