package auction

import (
	"errors"
	"fmt"
)

// ErrUnknownPower reports an attempt to bid on a power the round's
// configuration does not know about.
var ErrUnknownPower = errors.New("unknown power")

// BidSet holds one player's bids for a round, bound to the Config that
// defines the rules. The bid map always carries exactly one entry per
// configured power; a fresh BidSet starts with every bid at zero.
//
// A BidSet is owned by a single edit or generation session and is not
// safe for concurrent mutation.
type BidSet struct {
	cfg      *Config
	bids     map[string]Bid
	messages []string
}

// Config returns the configuration the bid set is bound to.
func (b *BidSet) Config() *Config {
	return b.cfg
}

// Clear resets every power's bid to zero, discarding prior state and
// any cached validation messages.
func (b *BidSet) Clear() {
	for _, power := range b.cfg.Powers {
		b.bids[power] = BidOf(0)
	}
	b.messages = nil
}

// Set assigns an integer bid to a power.
func (b *BidSet) Set(power string, points int) error {
	if _, ok := b.bids[power]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPower, power)
	}
	b.bids[power] = BidOf(points)
	return nil
}

// SetText assigns free-form field input to a power. Non-numeric input
// is accepted here and surfaces later as a validation message.
func (b *BidSet) SetText(power, text string) error {
	if _, ok := b.bids[power]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPower, power)
	}
	b.bids[power] = ParseBid(text)
	return nil
}

// Bid returns the current bid for a power.
func (b *BidSet) Bid(power string) (Bid, bool) {
	bid, ok := b.bids[power]
	return bid, ok
}

// Total returns the sum of all parseable bids, recomputed from the
// current state on every call. Non-numeric entries contribute nothing;
// Validate reports them separately.
func (b *BidSet) Total() int {
	total := 0
	for _, bid := range b.bids {
		if v, err := bid.Points(); err == nil {
			total += v
		}
	}
	return total
}
