package deck

import (
	"errors"

	"blackjack-server/internal/rng"
)

// ErrEmptyDeck is an error when Draw() is attempted and both the serving
// and discard piles are empty
var ErrEmptyDeck = errors.New("serving and discard piles are both empty")

// Deck represents a playing deck split into a serving pile and a discard pile.
// Cards are drawn off the top of the serving pile; played cards are given back
// with Return() and sit in the discard pile until the serving pile runs dry.
type Deck struct {
	Cards    []*Card `json:"cards"`
	Discards []*Card `json:"discards"`

	rng rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		rng: rng.Crypto{},
	}

	d.buildDeck()
	return d
}

// SetRandomSource overrides the random source used for shuffling.
// This should only be used by tests.
func (d *Deck) SetRandomSource(g rng.Generator) {
	d.rng = g
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range []Suit{Clubs, Diamonds, Hearts, Spades} {
		for rank := 2; rank <= 14; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the serving pile
func (d *Deck) Shuffle() {
	d.shuffle(d.Cards)
}

func (d *Deck) shuffle(cards []*Card) {
	for j := len(cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Draw will draw the next card from the serving pile.
// If the serving pile is empty, the discard pile is reshuffled into the
// serving pile first. ErrEmptyDeck is returned only when both piles are empty.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) == 0 {
		if len(d.Discards) == 0 {
			return nil, ErrEmptyDeck
		}

		d.recycleDiscards()
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// recycleDiscards moves the discard pile into the serving pile and shuffles it
func (d *Deck) recycleDiscards() {
	cards := make([]*Card, len(d.Discards))
	copy(cards, d.Discards)
	d.shuffle(cards)

	d.Cards = cards
	d.Discards = nil
}

// Return appends the cards to the discard pile
func (d *Deck) Return(cards []*Card) {
	d.Discards = append(d.Discards, cards...)
}

// CanDraw returns true if there are {want} cards left across both piles
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards)+len(d.Discards) >= want
}

// ServingCount returns the number of cards left in the serving pile
func (d *Deck) ServingCount() int {
	return len(d.Cards)
}

// DiscardCount returns the number of cards in the discard pile
func (d *Deck) DiscardCount() int {
	return len(d.Discards)
}

// PeekDiscard returns the most recently returned card without removing it,
// or nil if the discard pile is empty
func (d *Deck) PeekDiscard() *Card {
	n := len(d.Discards)
	if n == 0 {
		return nil
	}

	return d.Discards[n-1]
}
