package blackjack

import (
	"fmt"
	"strconv"
)

// blackjack is played to 21
const targetScore = 21

// Score returns the best total for a hand summarized by its base rank (every
// ace counted as 1) and whether the hand holds at least one ace. One ace may
// be promoted to 11 when that does not bust the hand; promoting a second ace
// would always bust, so a single +10 check is exact.
func Score(baseRank int, hasAce bool) int {
	if hasAce && baseRank+10 <= targetScore {
		return baseRank + 10
	}

	return baseRank
}

// DescribeRank formats a hand total for display. A hand with a usable ace
// shows both possible totals (e.g. "6 OR 16").
func DescribeRank(baseRank int, hasAce bool) string {
	if hasAce && baseRank+10 <= targetScore {
		return fmt.Sprintf("%d OR %d", baseRank, baseRank+10)
	}

	return strconv.Itoa(baseRank)
}
