// Package tournament loads round settings for the power auction from an
// HCL file. The hosting tournament system is the source of truth for
// these values; the file stands in for them when running the CLI.
package tournament

import (
	"fmt"
	"os"
	"slices"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/powerauction/auction"
)

// DefaultPowers are the seven Great Powers of the standard map.
var DefaultPowers = []string{
	"Austria-Hungary",
	"England",
	"France",
	"Germany",
	"Italy",
	"Russia",
	"Turkey",
}

// File is the top-level structure of a settings file.
type File struct {
	Round RoundConfig `hcl:"round,block"`
}

// RoundConfig defines the auction rules for one tournament round.
type RoundConfig struct {
	Name         string   `hcl:"name,label"`
	Powers       []string `hcl:"powers,optional"`
	Boards       int      `hcl:"boards,optional"`
	MinBid       int      `hcl:"min_bid,optional"`
	MaxBid       int      `hcl:"max_bid,optional"`
	PointBudget  int      `hcl:"point_budget,optional"`
	DistinctBids bool     `hcl:"distinct_bids,optional"`
	UseAllPoints bool     `hcl:"use_all_points,optional"`
}

// DefaultRoundConfig returns the standard seven-power round with a
// 100-point budget.
func DefaultRoundConfig() *RoundConfig {
	return &RoundConfig{
		Name:        "default",
		Powers:      slices.Clone(DefaultPowers),
		Boards:      1,
		MinBid:      0,
		MaxBid:      100,
		PointBudget: 100,
	}
}

// LoadRoundConfig loads round settings from an HCL file, falling back
// to the defaults when the file does not exist.
func LoadRoundConfig(filename string) (*RoundConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultRoundConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var f File
	diags = gohcl.DecodeBody(file.Body, nil, &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := &f.Round

	// Apply defaults for missing values
	if len(cfg.Powers) == 0 {
		cfg.Powers = slices.Clone(DefaultPowers)
	}
	if cfg.Boards == 0 {
		cfg.Boards = 1
	}
	if cfg.PointBudget == 0 {
		cfg.PointBudget = 100
	}
	if cfg.MaxBid == 0 {
		cfg.MaxBid = cfg.PointBudget
	}

	return cfg, nil
}

// Validate checks the round settings for internal consistency.
func (c *RoundConfig) Validate() error {
	if len(c.Powers) < 2 {
		return fmt.Errorf("round %s: at least two powers are required", c.Name)
	}
	seen := make(map[string]bool, len(c.Powers))
	for _, power := range c.Powers {
		if power == "" {
			return fmt.Errorf("round %s: empty power name", c.Name)
		}
		if seen[power] {
			return fmt.Errorf("round %s: duplicate power %q", c.Name, power)
		}
		seen[power] = true
	}
	if c.Boards < 1 {
		return fmt.Errorf("round %s: boards must be positive", c.Name)
	}
	if c.MinBid > c.MaxBid {
		return fmt.Errorf("round %s: min_bid %d exceeds max_bid %d", c.Name, c.MinBid, c.MaxBid)
	}
	if c.PointBudget < len(c.Powers)*c.MinBid {
		return fmt.Errorf("round %s: point_budget %d cannot cover %d powers at min_bid %d",
			c.Name, c.PointBudget, len(c.Powers), c.MinBid)
	}
	return nil
}

// ToAuction converts the round settings into the engine configuration.
func (c *RoundConfig) ToAuction() *auction.Config {
	return &auction.Config{
		Powers:           slices.Clone(c.Powers),
		Boards:           c.Boards,
		MinBid:           c.MinBid,
		MaxBid:           c.MaxBid,
		MaxTotal:         c.PointBudget,
		NoIdenticalBids:  c.DistinctBids,
		MustUseAllPoints: c.UseAllPoints,
	}
}
