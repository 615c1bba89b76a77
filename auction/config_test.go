package auction

import (
	"slices"
	"testing"
)

func testConfig() *Config {
	return &Config{
		Powers: []string{
			"Austria-Hungary", "England", "France", "Germany",
			"Italy", "Russia", "Turkey",
		},
		Boards:   2,
		MinBid:   0,
		MaxBid:   33,
		MaxTotal: 100,
	}
}

func TestDuplicateIsIndependent(t *testing.T) {
	cfg := testConfig()
	dup := cfg.Duplicate()

	dup.Powers[0] = "Atlantis"
	dup.MaxTotal = 50

	if cfg.Powers[0] != "Austria-Hungary" {
		t.Errorf("mutating the duplicate changed the original powers: %v", cfg.Powers)
	}
	if cfg.MaxTotal != 100 {
		t.Errorf("mutating the duplicate changed the original MaxTotal: %d", cfg.MaxTotal)
	}
}

func TestNewBidSetStartsZeroed(t *testing.T) {
	cfg := testConfig()
	bids := cfg.NewBidSet()

	if bids.Total() != 0 {
		t.Errorf("fresh bid set total = %d, want 0", bids.Total())
	}
	for _, power := range cfg.Powers {
		bid, ok := bids.Bid(power)
		if !ok {
			t.Fatalf("fresh bid set is missing %s", power)
		}
		if v, err := bid.Points(); err != nil || v != 0 {
			t.Errorf("%s = %v (err %v), want 0", power, v, err)
		}
	}
}

func TestBoardNumbers(t *testing.T) {
	cfg := testConfig()
	got := cfg.BoardNumbers()
	want := []int{1, 2}
	if !slices.Equal(got, want) {
		t.Errorf("BoardNumbers() = %v, want %v", got, want)
	}
}

func TestSeedsAreBoardsMajor(t *testing.T) {
	cfg := testConfig()
	seeds := cfg.Seeds()

	if len(seeds) != cfg.Boards*len(cfg.Powers) {
		t.Fatalf("len(Seeds()) = %d, want %d", len(seeds), cfg.Boards*len(cfg.Powers))
	}
	for i, seed := range seeds {
		if seed != i+1 {
			t.Fatalf("Seeds()[%d] = %d, want %d", i, seed, i+1)
		}
	}

	// Board 2, first power picks up where board 1 left off.
	if got := cfg.SeedFor(2, 0); got != 8 {
		t.Errorf("SeedFor(2, 0) = %d, want 8", got)
	}
	if got := cfg.SeedFor(1, 6); got != 7 {
		t.Errorf("SeedFor(1, 6) = %d, want 7", got)
	}
}

func TestPowerForSeed(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		seed      int
		wantBoard int
		wantPower string
		wantOK    bool
	}{
		{1, 1, "Austria-Hungary", true},
		{7, 1, "Turkey", true},
		{8, 2, "Austria-Hungary", true},
		{14, 2, "Turkey", true},
		{0, 0, "", false},
		{15, 0, "", false},
	}

	for _, tt := range tests {
		board, power, ok := cfg.PowerForSeed(tt.seed)
		if board != tt.wantBoard || power != tt.wantPower || ok != tt.wantOK {
			t.Errorf("PowerForSeed(%d) = (%d, %q, %v), want (%d, %q, %v)",
				tt.seed, board, power, ok, tt.wantBoard, tt.wantPower, tt.wantOK)
		}
	}
}
