package auction

import (
	"fmt"
	"sort"
	"strings"
)

// Validate checks the bid set against its configuration and caches the
// resulting violation messages. It returns true iff there are none.
//
// Checks run per power in configuration order (non-numeric input, then
// bounds), then duplicate groups, then the total rules. Validation is
// deterministic and idempotent: repeated calls without mutation yield
// identical messages.
func (b *BidSet) Validate() bool {
	var msgs []string
	total := 0
	byValue := make(map[int][]string)

	for _, power := range b.cfg.Powers {
		v, err := b.bids[power].Points()
		if err != nil {
			msgs = append(msgs, fmt.Sprintf("%s is not a number.", power))
			continue
		}
		total += v
		byValue[v] = append(byValue[v], power)
		if v < b.cfg.MinBid {
			msgs = append(msgs, fmt.Sprintf("%s is below the minimum (%d).", power, b.cfg.MinBid))
		}
		if v > b.cfg.MaxBid {
			msgs = append(msgs, fmt.Sprintf("%s is above the maximum (%d).", power, b.cfg.MaxBid))
		}
	}

	if b.cfg.NoIdenticalBids {
		// Emit groups in ascending bid value so output is stable.
		values := make([]int, 0, len(byValue))
		for v, powers := range byValue {
			if len(powers) > 1 {
				values = append(values, v)
			}
		}
		sort.Ints(values)
		for _, v := range values {
			msgs = append(msgs, fmt.Sprintf("%s have identical bids.", joinWithAnd(byValue[v])))
		}
	}

	if b.cfg.MustUseAllPoints && total != b.cfg.MaxTotal {
		msgs = append(msgs, fmt.Sprintf("The total must equal %d.", b.cfg.MaxTotal))
	}
	if total > b.cfg.MaxTotal {
		msgs = append(msgs, fmt.Sprintf("The total is above the maximum (%d).", b.cfg.MaxTotal))
	}

	b.messages = msgs
	return len(msgs) == 0
}

// Messages returns the violation messages cached by the last Validate
// call. The slice is empty for a valid bid set.
func (b *BidSet) Messages() []string {
	return b.messages
}

// joinWithAnd renders a name list the way the violation messages want
// it: "A and B", "A, B and C".
func joinWithAnd(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
