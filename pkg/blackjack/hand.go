package blackjack

import (
	"blackjack-server/pkg/deck"
)

// hand tracks a side's cards along with the running base rank (aces counted
// as 1) and whether an ace has been seen
type hand struct {
	cards    deck.Hand
	baseRank int
	hasAce   bool
}

func (h *hand) addCard(card *deck.Card) {
	h.cards.AddCard(card)
	h.baseRank += card.BaseValue()
	if card.IsAce() {
		h.hasAce = true
	}
}

func (h *hand) score() int {
	return Score(h.baseRank, h.hasAce)
}

func (h *hand) describeRank() string {
	return DescribeRank(h.baseRank, h.hasAce)
}

func (h *hand) size() int {
	return len(h.cards)
}

// clear empties the hand and returns the cards it held
func (h *hand) clear() []*deck.Card {
	cards := h.cards
	h.cards = nil
	h.baseRank = 0
	h.hasAce = false

	return cards
}
