package auction

import "slices"

// Config describes the auction rules for one tournament round. It is
// built once by the hosting application from round settings and treated
// as immutable while any BidSet derived from it is live.
type Config struct {
	// Powers lists the biddable powers in display order. Names must be
	// unique and at least two are required.
	Powers []string

	// Boards is the number of concurrent boards being seeded.
	Boards int

	// MinBid and MaxBid bound each individual bid, inclusive.
	MinBid int
	MaxBid int

	// MaxTotal is the point budget: the sum of all bids may not exceed it.
	MaxTotal int

	// NoIdenticalBids forbids two powers from receiving equal bids.
	NoIdenticalBids bool

	// MustUseAllPoints requires the total to equal MaxTotal exactly.
	MustUseAllPoints bool
}

// Duplicate returns an independent deep copy of the configuration, so
// callers can explore variant rules (say a different MaxTotal for a
// preview) without touching the original.
func (c *Config) Duplicate() *Config {
	dup := *c
	dup.Powers = slices.Clone(c.Powers)
	return &dup
}

// NewBidSet returns a BidSet bound to c with every power's bid at zero.
func (c *Config) NewBidSet() *BidSet {
	b := &BidSet{
		cfg:  c,
		bids: make(map[string]Bid, len(c.Powers)),
	}
	b.Clear()
	return b
}

// BoardNumbers returns the board numbers 1..Boards.
func (c *Config) BoardNumbers() []int {
	nums := make([]int, 0, c.Boards)
	for b := 1; b <= c.Boards; b++ {
		nums = append(nums, b)
	}
	return nums
}
