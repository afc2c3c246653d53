package blackjack

import (
	"blackjack-server/pkg/deck"
)

// SnapshotCard is a single dealt card as seen by the presentation layer.
// Card is nil while the card is face-down so a client can never learn the
// hole card early.
type SnapshotCard struct {
	Card   *deck.Card `json:"card,omitempty"`
	FaceUp bool       `json:"faceUp"`
}

// RoundSnapshot is the full state of the round for the presentation layer.
// The adapter renders it and forwards the next legal intent; it performs no
// game logic itself.
type RoundSnapshot struct {
	State       State           `json:"state"`
	Outcome     Outcome         `json:"outcome"`
	PlayerCards []*SnapshotCard `json:"playerCards"`
	DealerCards []*SnapshotCard `json:"dealerCards"`
	PlayerRank  string          `json:"playerRank"`
	DealerRank  string          `json:"dealerRank"`
	Actions     []Action        `json:"actions"`

	Bid        int  `json:"bid"`
	DefaultBid int  `json:"defaultBid"`
	Insured    bool `json:"insured"`

	ServingCount int        `json:"servingCount"`
	DiscardCount int        `json:"discardCount"`
	LastDiscard  *deck.Card `json:"lastDiscard,omitempty"`

	Earnings Ledger `json:"earnings"`
}

// Snapshot returns the current state of the round
func (g *Game) Snapshot() *RoundSnapshot {
	playerCards := make([]*SnapshotCard, g.player.size())
	for i, card := range g.player.cards {
		playerCards[i] = &SnapshotCard{Card: card, FaceUp: true}
	}

	dealerCards := make([]*SnapshotCard, g.dealer.size())
	for i, card := range g.dealer.cards {
		// the second dealt card is the hole card
		if i == 1 && !g.holeRevealed {
			dealerCards[i] = &SnapshotCard{FaceUp: false}
			continue
		}

		dealerCards[i] = &SnapshotCard{Card: card, FaceUp: true}
	}

	var playerRank, dealerRank string
	if g.player.size() > 0 {
		playerRank = g.player.describeRank()
	}

	// the dealer's rank is only displayed once the hole card is face-up
	if g.holeRevealed {
		dealerRank = g.dealer.describeRank()
	}

	return &RoundSnapshot{
		State:        g.state,
		Outcome:      g.outcome,
		PlayerCards:  playerCards,
		DealerCards:  dealerCards,
		PlayerRank:   playerRank,
		DealerRank:   dealerRank,
		Actions:      g.Actions(),
		Bid:          g.bid,
		DefaultBid:   g.options.DefaultBid,
		Insured:      g.insured,
		ServingCount: g.deck.ServingCount(),
		DiscardCount: g.deck.DiscardCount(),
		LastDiscard:  g.deck.PeekDiscard(),
		Earnings:     g.ledger,
	}
}
