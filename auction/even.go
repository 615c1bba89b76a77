package auction

import (
	rand "math/rand/v2"
	"slices"
)

// MakeEven fills the bid set with the maximally balanced legal
// assignment: consecutive values chosen so the total lands on (or just
// under) MaxTotal, with the mapping of power to value randomized but
// the value multiset fixed.
//
// The starting value is the smallest iMin >= MinBid whose run of n
// consecutive integers sums to at least MaxTotal; the run is then
// decremented one slot at a time from the low end until the total fits.
// If the overshoot cannot be absorbed with a single decrement per slot
// the configuration is infeasible and MakeEven reports ErrInfeasible.
// A nil rng uses the process-wide random source.
func (b *BidSet) MakeEven(rng *rand.Rand) error {
	b.Clear()
	n := len(b.cfg.Powers)
	if n == 0 {
		return ErrInfeasible
	}

	// Smallest iMin >= MinBid with iMin + (iMin+1) + ... + (iMin+n-1)
	// reaching MaxTotal.
	iMin := b.cfg.MinBid
	for iMin*n+n*(n-1)/2 < b.cfg.MaxTotal {
		iMin++
	}

	options := make([]int, n)
	sum := 0
	for i := range options {
		options[i] = iMin + i
		sum += options[i]
	}

	for i := 0; sum > b.cfg.MaxTotal; i++ {
		if i >= n {
			return ErrInfeasible
		}
		options[i]--
		sum--
	}

	// Values stay in ascending order; the powers drawing them do not.
	pending := slices.Clone(b.cfg.Powers)
	for _, v := range options {
		i := intN(rng, len(pending))
		b.bids[pending[i]] = BidOf(v)
		pending = slices.Delete(pending, i, i+1)
	}
	return nil
}
