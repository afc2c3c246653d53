package blackjack

// State is the state of the current round.
// Dealing and the dealer's turn complete within a single transition, so the
// machine only ever rests in one of these states between player intents.
type State string

// State constants
const (
	// StateAwaitingBid is before a bid has been locked and cards dealt
	StateAwaitingBid State = "awaiting-bid"

	// StateInsuranceOffered means the initial deal is complete and the player
	// must buy insurance, surrender, or proceed
	StateInsuranceOffered State = "insurance-offered"

	// StateMainGame means the player may double down, hit, or stay
	StateMainGame State = "main-game"

	// StateSettled means the round is over and only a restart is possible
	StateSettled State = "settled"
)
