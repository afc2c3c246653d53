package blackjack

// Outcome is how a round settled
type Outcome string

// Outcome constants
const (
	// OutcomeInProgress means the round has not settled yet
	OutcomeInProgress Outcome = "in-progress"

	// OutcomePlayerBlackjack is a natural 21 on the initial deal, paying double
	OutcomePlayerBlackjack Outcome = "player-blackjack"

	// OutcomeInsuredDealerBlackjack means insurance was bought and the dealer
	// held a natural 21
	OutcomeInsuredDealerBlackjack Outcome = "insured-dealer-blackjack"

	// OutcomeSurrendered means the player gave up half the bid
	OutcomeSurrendered Outcome = "surrendered"

	// OutcomePlayerBust means the player went over 21
	OutcomePlayerBust Outcome = "player-bust"

	// OutcomeDealerBust means the dealer went over 21
	OutcomeDealerBust Outcome = "dealer-bust"

	// OutcomePush means equal scores and no money moved
	OutcomePush Outcome = "push"

	// OutcomePlayerWins means the player outscored the dealer
	OutcomePlayerWins Outcome = "player-wins"

	// OutcomeDealerWins means the dealer outscored the player
	OutcomeDealerWins Outcome = "dealer-wins"
)
