// Package auction implements the bid engine for a blind power auction:
// players allocate points across the powers of a multi-board tournament
// round, and the resulting bids are later compared across players to
// settle board and power assignments.
//
// The main types are Config, which describes the rules for one round,
// and BidSet, which holds a single player's bids and owns validation
// and the two automatic generators.
//
// # Basic Usage
//
//	cfg := &auction.Config{
//		Powers:   []string{"Austria-Hungary", "England", "France"},
//		Boards:   1,
//		MinBid:   0,
//		MaxBid:   50,
//		MaxTotal: 100,
//	}
//	bids := cfg.NewBidSet()
//	if err := bids.MakeRandom(nil); err != nil {
//		// the rules admit no legal bid set
//	}
//	if !bids.Validate() {
//		for _, msg := range bids.Messages() {
//			fmt.Println(msg)
//		}
//	}
//
// # Deterministic Generation
//
// Both generators accept a *rand.Rand so results are replayable under
// test:
//
//	rng := rand.New(rand.NewPCG(42, 42))
//	bids.MakeEven(rng)
//
// Rule violations are never errors: Validate accumulates human-readable
// messages, including non-numeric input entered through SetText. Errors
// are reserved for infeasible configurations and unknown power names.
package auction
