package auction

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotANumber reports a bid whose raw input could not be parsed as an
// integer.
var ErrNotANumber = errors.New("bid is not a number")

// Bid is a single power's point allocation, kept exactly as the player
// entered it. Free-form field input is stored verbatim so validation
// can report a non-numeric entry as one more rule violation instead of
// failing the whole edit.
type Bid struct {
	text string
}

// BidOf returns a Bid holding a known-good integer value.
func BidOf(points int) Bid {
	return Bid{text: strconv.Itoa(points)}
}

// ParseBid wraps free-form field input in a Bid. The input is not
// checked here; Points reports ErrNotANumber on access.
func ParseBid(text string) Bid {
	return Bid{text: strings.TrimSpace(text)}
}

// Points returns the integer value of the bid, or ErrNotANumber if the
// underlying input is not a valid integer.
func (b Bid) Points() (int, error) {
	v, err := strconv.Atoi(b.text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, b.text)
	}
	return v, nil
}

// String returns the raw input the bid was built from.
func (b Bid) String() string {
	return b.text
}
