package blackjack

import "fmt"

// InvalidBidError is an error on the bid text entered by the player.
// The round is left untouched when it is returned.
type InvalidBidError struct {
	Bid    string
	Reason string
}

func (e InvalidBidError) Error() string {
	return fmt.Sprintf("invalid bid %q: %s", e.Bid, e.Reason)
}

// IllegalActionError is an error when an action is attempted outside its
// legal state. The snapshot's action set should prevent these, but the game
// rejects them rather than corrupt state.
type IllegalActionError struct {
	Action Action
	State  State
}

func (e IllegalActionError) Error() string {
	return fmt.Sprintf("cannot %s from state: %s", e.Action.Slug(), e.State)
}
