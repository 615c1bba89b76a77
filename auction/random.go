package auction

import (
	"errors"
	rand "math/rand/v2"
	"slices"
)

// ErrInfeasible reports a configuration whose rules admit no bid set
// the generator can produce.
var ErrInfeasible = errors.New("configuration admits no legal bid set")

// MakeRandom fills the bid set with a rule-constrained random
// assignment: every bid lands in [MinBid, MaxBid], the running total
// never exceeds MaxTotal, and with NoIdenticalBids set no value is used
// twice. MustUseAllPoints is not guaranteed; callers still Validate.
//
// Powers resolve in random order, each drawing uniformly from an option
// pool that shrinks as headroom is consumed. The last power to resolve
// takes the largest option still open to it, spending as much of the
// remaining budget as the rules allow. A nil rng uses the process-wide
// random source.
func (b *BidSet) MakeRandom(rng *rand.Rand) error {
	b.Clear()

	options := make([]int, 0, b.cfg.MaxBid-b.cfg.MinBid+1)
	for v := b.cfg.MinBid; v <= b.cfg.MaxBid; v++ {
		options = append(options, v)
	}

	pending := slices.Clone(b.cfg.Powers)
	total := 0

	for len(pending) > 0 {
		i := intN(rng, len(pending))
		power := pending[i]
		pending = slices.Delete(pending, i, i+1)

		if len(options) == 0 {
			return ErrInfeasible
		}

		var bid int
		if len(pending) == 0 {
			// Final power: take the largest option still within
			// budget rather than leaving headroom on the table.
			bid = options[len(options)-1]
		} else {
			bid = options[intN(rng, len(options))]
		}
		b.bids[power] = BidOf(bid)
		total += bid

		// Lower bound on what the powers after the next pick must
		// consume: the smallest len(pending)-1 options still open.
		minrest := 0
		for j := 0; j < len(pending)-1 && j < len(options); j++ {
			minrest += options[j]
		}

		// Drop options that would make the total unreachable, and the
		// just-used value when identical bids are prohibited.
		kept := options[:0]
		for _, v := range options {
			if v > b.cfg.MaxTotal-total-minrest {
				continue
			}
			if b.cfg.NoIdenticalBids && v == bid {
				continue
			}
			kept = append(kept, v)
		}
		options = kept
	}
	return nil
}

// intN draws a uniform int in [0, n) from rng, falling back to the
// global source when rng is nil.
func intN(rng *rand.Rand, n int) int {
	if rng != nil {
		return rng.IntN(n)
	}
	return rand.IntN(n)
}
