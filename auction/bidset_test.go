package auction

import (
	"errors"
	"testing"
)

func TestClearResetsEverything(t *testing.T) {
	cfg := testConfig()
	bids := cfg.NewBidSet()

	for i, power := range cfg.Powers {
		if err := bids.Set(power, 10+i); err != nil {
			t.Fatalf("Set(%s) failed: %v", power, err)
		}
	}
	if bids.Total() == 0 {
		t.Fatal("expected a non-zero total before Clear")
	}

	bids.Clear()

	if bids.Total() != 0 {
		t.Errorf("total after Clear = %d, want 0", bids.Total())
	}
	for _, power := range cfg.Powers {
		bid, _ := bids.Bid(power)
		if v, err := bid.Points(); err != nil || v != 0 {
			t.Errorf("%s after Clear = %v (err %v), want 0", power, v, err)
		}
	}
}

func TestTotalSkipsNonNumericInput(t *testing.T) {
	cfg := testConfig()
	bids := cfg.NewBidSet()

	if err := bids.Set("France", 30); err != nil {
		t.Fatal(err)
	}
	if err := bids.SetText("England", "lots"); err != nil {
		t.Fatal(err)
	}

	if got := bids.Total(); got != 30 {
		t.Errorf("Total() = %d, want 30", got)
	}
}

func TestSetRejectsUnknownPower(t *testing.T) {
	cfg := testConfig()
	bids := cfg.NewBidSet()

	if err := bids.Set("Poland", 5); !errors.Is(err, ErrUnknownPower) {
		t.Errorf("Set(Poland) error = %v, want ErrUnknownPower", err)
	}
	if err := bids.SetText("Poland", "5"); !errors.Is(err, ErrUnknownPower) {
		t.Errorf("SetText(Poland) error = %v, want ErrUnknownPower", err)
	}
}

func TestBidKeepsRawInput(t *testing.T) {
	cfg := testConfig()
	bids := cfg.NewBidSet()

	if err := bids.SetText("Italy", " 12 "); err != nil {
		t.Fatal(err)
	}
	bid, _ := bids.Bid("Italy")
	if bid.String() != "12" {
		t.Errorf("raw input = %q, want %q", bid.String(), "12")
	}
	if v, err := bid.Points(); err != nil || v != 12 {
		t.Errorf("Points() = %d, %v, want 12, nil", v, err)
	}

	if err := bids.SetText("Italy", "twelve"); err != nil {
		t.Fatal(err)
	}
	bid, _ = bids.Bid("Italy")
	if _, err := bid.Points(); !errors.Is(err, ErrNotANumber) {
		t.Errorf("Points() error = %v, want ErrNotANumber", err)
	}
}
