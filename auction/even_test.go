package auction

import (
	"errors"
	rand "math/rand/v2"
	"sort"
	"testing"
)

func sortedValues(t *testing.T, bids *BidSet) []int {
	t.Helper()
	var values []int
	for _, power := range bids.Config().Powers {
		bid, _ := bids.Bid(power)
		v, err := bid.Points()
		if err != nil {
			t.Fatalf("%s is not numeric: %v", power, err)
		}
		values = append(values, v)
	}
	sort.Ints(values)
	return values
}

func TestMakeEvenSevenPowerBudget(t *testing.T) {
	// Seven powers, budget 100: the smallest run start is 12
	// (12*7+21 = 105), and five decrements at the low end bring the
	// total down to exactly 100.
	cfg := auctionScenario()
	bids := cfg.NewBidSet()
	rng := rand.New(rand.NewPCG(5, 6))

	if err := bids.MakeEven(rng); err != nil {
		t.Fatalf("MakeEven failed: %v", err)
	}

	want := []int{11, 12, 13, 14, 15, 17, 18}
	got := sortedValues(t, bids)
	if len(got) != len(want) {
		t.Fatalf("got %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("value multiset = %v, want %v", got, want)
		}
	}
	if total := bids.Total(); total != 100 {
		t.Errorf("total = %d, want 100", total)
	}
	if !bids.Validate() {
		t.Errorf("even bids fail validation: %v", bids.Messages())
	}
}

func TestMakeEvenExactBudgetNeedsNoDecrements(t *testing.T) {
	cfg := &Config{
		Powers:   []string{"A", "B", "C", "D"},
		Boards:   1,
		MinBid:   0,
		MaxBid:   10,
		MaxTotal: 10,
	}
	bids := cfg.NewBidSet()

	if err := bids.MakeEven(rand.New(rand.NewPCG(9, 9))); err != nil {
		t.Fatalf("MakeEven failed: %v", err)
	}
	want := []int{1, 2, 3, 4}
	got := sortedValues(t, bids)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("value multiset = %v, want %v", got, want)
		}
	}
}

func TestMakeEvenValueMultisetIsSeedIndependent(t *testing.T) {
	cfg := auctionScenario()

	first := cfg.NewBidSet()
	second := cfg.NewBidSet()
	if err := first.MakeEven(rand.New(rand.NewPCG(1, 1))); err != nil {
		t.Fatal(err)
	}
	if err := second.MakeEven(rand.New(rand.NewPCG(999, 999))); err != nil {
		t.Fatal(err)
	}

	a, b := sortedValues(t, first), sortedValues(t, second)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("value multiset depends on the seed: %v vs %v", a, b)
		}
	}
}

func TestMakeEvenReportsInfeasibleRules(t *testing.T) {
	// Even all-minimum bids overshoot the budget by more than one
	// decrement per power can absorb.
	cfg := &Config{
		Powers:   []string{"A", "B"},
		Boards:   1,
		MinBid:   5,
		MaxBid:   10,
		MaxTotal: 3,
	}
	bids := cfg.NewBidSet()

	if err := bids.MakeEven(rand.New(rand.NewPCG(2, 2))); !errors.Is(err, ErrInfeasible) {
		t.Errorf("MakeEven error = %v, want ErrInfeasible", err)
	}
}

func TestMakeEvenSatisfiesMustUseAllPoints(t *testing.T) {
	cfg := auctionScenario()
	cfg.MustUseAllPoints = true
	bids := cfg.NewBidSet()

	if err := bids.MakeEven(rand.New(rand.NewPCG(8, 8))); err != nil {
		t.Fatal(err)
	}
	if !bids.Validate() {
		t.Errorf("even bids should spend the full budget: %v", bids.Messages())
	}
}
