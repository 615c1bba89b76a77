package auction

// Seed numbering is boards-major: board 1 carries seeds 1..n in power
// order, board 2 carries n+1..2n, and so on. External seeding logic
// maps a player's position in the settled order onto these ordinals.

// Seeds returns every seed ordinal for the round, Boards*len(Powers)
// in total.
func (c *Config) Seeds() []int {
	seeds := make([]int, 0, c.Boards*len(c.Powers))
	for _, board := range c.BoardNumbers() {
		for p := range c.Powers {
			seeds = append(seeds, c.SeedFor(board, p))
		}
	}
	return seeds
}

// SeedFor returns the seed ordinal for a 1-based board number and a
// 0-based power index.
func (c *Config) SeedFor(board, powerIndex int) int {
	return (board-1)*len(c.Powers) + powerIndex + 1
}

// PowerForSeed resolves a seed ordinal back to its board number and
// power name. ok is false when the seed is out of range for the round.
func (c *Config) PowerForSeed(seed int) (board int, power string, ok bool) {
	n := len(c.Powers)
	if n == 0 || seed < 1 || seed > c.Boards*n {
		return 0, "", false
	}
	idx := seed - 1
	return idx/n + 1, c.Powers[idx%n], true
}

// PlayerAssignment records the outcome of settling one player's bids:
// the seed they drew and the board and power it resolves to. It is
// produced and consumed by the external settlement process; the engine
// only carries it.
type PlayerAssignment struct {
	Seed  int
	Board int
	Power string
	Bids  *BidSet
}
