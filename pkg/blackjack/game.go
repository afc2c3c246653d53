package blackjack

import (
	"strconv"
	"strings"

	"blackjack-server/pkg/deck"
	"blackjack-server/pkg/playable"
	"github.com/sirupsen/logrus"
)

// maxHandSize caps each hand at eleven cards. Four aces, four 2's, and three
// 3's is the largest hand that can still total 21; a twelfth card always busts.
const maxHandSize = 11

// dealerStandsAt is the lowest soft total the dealer stands on. For the
// stand/hit check only, a held ace is always counted as 11.
const dealerStandsAt = 17

// Game is a single-player round of casino blackjack. Each exported method is
// one atomic transition: it either fully applies or leaves the round as-is.
// The deck and the earnings ledger outlive rounds; everything else is reset
// by Restart.
type Game struct {
	options Options
	deck    *deck.Deck
	ledger  Ledger

	state   State
	outcome Outcome
	bid     int
	insured bool

	// holeRevealed controls display only; the dealer's score is computable
	// internally as soon as the offer stage is past
	holeRevealed bool

	// hasHit makes double down permanently illegal for the rest of the round
	hasHit bool

	player hand
	dealer hand

	logger  logrus.FieldLogger
	logChan chan []*playable.LogMessage
}

// NewGame returns a new blackjack game with a freshly shuffled deck
func NewGame(logger logrus.FieldLogger, options Options) (*Game, error) {
	if err := validateBid(options.DefaultBid, strconv.Itoa(options.DefaultBid)); err != nil {
		return nil, err
	}

	d := deck.New()
	d.Shuffle()

	g := &Game{
		options: options,
		deck:    d,
		state:   StateAwaitingBid,
		outcome: OutcomeInProgress,
		logger:  logger,
		logChan: make(chan []*playable.LogMessage, 256),
	}

	return g, nil
}

// Name returns the name of the game
func (g *Game) Name() string {
	return "blackjack"
}

// State returns the current round state
func (g *Game) State() State {
	return g.state
}

// Earnings returns the cumulative earnings ledger
func (g *Game) Earnings() Ledger {
	return g.ledger
}

// LogChan returns a channel the game sends log messages to
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// Deal locks the bid and deals two cards to each side. The dealer's second
// card is the hole card and stays hidden. A natural 21 settles the round
// immediately; otherwise insurance is offered.
func (g *Game) Deal(bidText string) (*RoundSnapshot, error) {
	if !g.isLegal(ActionDeal) {
		return nil, IllegalActionError{Action: ActionDeal, State: g.state}
	}

	bid, err := parseBid(bidText)
	if err != nil {
		return nil, err
	}

	// both piles together always hold enough for the initial deal; checking
	// up front keeps the transition all-or-nothing
	if !g.deck.CanDraw(4) {
		return nil, deck.ErrEmptyDeck
	}

	g.bid = bid
	g.sendLogMessages(playable.SimpleLogMessage("Player bid %d", bid))

	for i := 0; i < 2; i++ {
		if err := g.drawTo(&g.player); err != nil {
			return nil, err
		}

		if err := g.drawTo(&g.dealer); err != nil {
			return nil, err
		}
	}

	if g.player.score() == targetScore {
		g.revealHoleCard()
		if g.dealer.score() == targetScore {
			g.settle(OutcomePush)
		} else {
			// a natural pays double
			g.ledger.playerWins(2 * g.bid)
			g.settle(OutcomePlayerBlackjack)
		}

		return g.Snapshot(), nil
	}

	g.state = StateInsuranceOffered
	return g.Snapshot(), nil
}

// Insurance doubles the effective settlement bid for the rest of the round.
// If the dealer holds a natural 21 the round settles immediately with the
// original, un-doubled bid changing hands.
func (g *Game) Insurance() (*RoundSnapshot, error) {
	if !g.isLegal(ActionInsurance) {
		return nil, IllegalActionError{Action: ActionInsurance, State: g.state}
	}

	g.insured = true
	g.sendLogMessages(playable.SimpleLogMessage("Player bought insurance"))

	if g.dealer.score() == targetScore {
		g.revealHoleCard()
		g.ledger.dealerWins(g.bid)
		g.settle(OutcomeInsuredDealerBlackjack)

		return g.Snapshot(), nil
	}

	// the hole card stays face-down on the table even though the dealer's
	// score is now known internally
	g.state = StateMainGame
	return g.Snapshot(), nil
}

// Surrender gives up half the bid and settles the round
func (g *Game) Surrender() (*RoundSnapshot, error) {
	if !g.isLegal(ActionSurrender) {
		return nil, IllegalActionError{Action: ActionSurrender, State: g.state}
	}

	// bids are always even, so the halves are exact
	g.ledger.dealerWins(g.bid / 2)
	g.revealHoleCard()
	g.settle(OutcomeSurrendered)

	return g.Snapshot(), nil
}

// Proceed declines insurance and surrender. If the dealer holds a natural 21
// the round settles by the standard winner rule; otherwise play continues.
func (g *Game) Proceed() (*RoundSnapshot, error) {
	if !g.isLegal(ActionProceed) {
		return nil, IllegalActionError{Action: ActionProceed, State: g.state}
	}

	if g.dealer.score() == targetScore {
		g.revealHoleCard()
		g.determineWinner()

		return g.Snapshot(), nil
	}

	g.state = StateMainGame
	return g.Snapshot(), nil
}

// DoubleDown doubles the bid, draws exactly one card to the player, then
// runs the dealer's turn and settles. It is only legal before the first hit.
func (g *Game) DoubleDown() (*RoundSnapshot, error) {
	if !g.isLegal(ActionDoubleDown) {
		return nil, IllegalActionError{Action: ActionDoubleDown, State: g.state}
	}

	g.bid *= 2
	g.sendLogMessages(playable.SimpleLogMessage("Player doubled down to %d", g.bid))

	if err := g.drawTo(&g.player); err != nil {
		return nil, err
	}

	if err := g.dealerTurn(); err != nil {
		return nil, err
	}

	g.determineWinner()
	return g.Snapshot(), nil
}

// Hit draws one card to the player. A bust settles the round immediately
// with no dealer drawing; otherwise the round stays in the main game and
// double down is no longer available.
func (g *Game) Hit() (*RoundSnapshot, error) {
	if !g.isLegal(ActionHit) {
		return nil, IllegalActionError{Action: ActionHit, State: g.state}
	}

	if err := g.drawTo(&g.player); err != nil {
		return nil, err
	}

	g.hasHit = true

	if g.player.score() > targetScore {
		g.revealHoleCard()
		g.determineWinner()
	}

	return g.Snapshot(), nil
}

// Stay ends the player's turn, runs the dealer's turn, and settles
func (g *Game) Stay() (*RoundSnapshot, error) {
	if !g.isLegal(ActionStay) {
		return nil, IllegalActionError{Action: ActionStay, State: g.state}
	}

	if err := g.dealerTurn(); err != nil {
		return nil, err
	}

	g.determineWinner()
	return g.Snapshot(), nil
}

// Restart moves all cards to the discard pile and resets the round.
// Cumulative earnings are preserved.
func (g *Game) Restart() (*RoundSnapshot, error) {
	if !g.isLegal(ActionRestart) {
		return nil, IllegalActionError{Action: ActionRestart, State: g.state}
	}

	g.deck.Return(g.player.clear())
	g.deck.Return(g.dealer.clear())

	g.bid = 0
	g.insured = false
	g.holeRevealed = false
	g.hasHit = false
	g.outcome = OutcomeInProgress
	g.state = StateAwaitingBid

	g.sendLogMessages(playable.SimpleLogMessage("New round"))
	return g.Snapshot(), nil
}

// drawTo draws the next card into the given hand
func (g *Game) drawTo(h *hand) error {
	if h.size() >= maxHandSize {
		panic("draw attempted on a full hand")
	}

	card, err := g.deck.Draw()
	if err != nil {
		// unreachable with a 52-card deck and the hand cap; treat as a
		// fatal invariant violation
		g.logger.WithError(err).Error("deck exhausted mid-round")
		return err
	}

	h.addCard(card)
	return nil
}

// dealerTurn reveals the hole card and runs the fixed dealer policy: keep
// drawing on a soft total of 16 or less, stand on 17 and up. For the
// threshold check a held ace always counts as 11; settlement scoring still
// demotes it when 11 would bust.
func (g *Game) dealerTurn() error {
	g.revealHoleCard()

	softTotal := g.dealer.baseRank
	if g.dealer.hasAce {
		softTotal += 10
	}

	for softTotal < dealerStandsAt && g.dealer.size() < maxHandSize {
		firstAce := !g.dealer.hasAce

		card, err := g.deck.Draw()
		if err != nil {
			g.logger.WithError(err).Error("deck exhausted during dealer turn")
			return err
		}

		g.dealer.addCard(card)
		g.sendLogMessages(playable.CardLogMessage(card, "Dealer draws %s", card.String()))

		if card.IsAce() && firstAce {
			softTotal += 10
		}
		softTotal += card.BaseValue()
	}

	return nil
}

// determineWinner settles the round by comparing scores. Insurance doubles
// the amount that changes hands.
func (g *Game) determineWinner() {
	effectiveBid := g.bid
	if g.insured {
		effectiveBid *= 2
	}

	playerScore := g.player.score()
	dealerScore := g.dealer.score()

	switch {
	case playerScore > targetScore:
		g.ledger.dealerWins(effectiveBid)
		g.settle(OutcomePlayerBust)
	case dealerScore > targetScore:
		g.ledger.playerWins(effectiveBid)
		g.settle(OutcomeDealerBust)
	case playerScore == dealerScore:
		g.settle(OutcomePush)
	case playerScore > dealerScore:
		g.ledger.playerWins(effectiveBid)
		g.settle(OutcomePlayerWins)
	default:
		g.ledger.dealerWins(effectiveBid)
		g.settle(OutcomeDealerWins)
	}
}

func (g *Game) settle(outcome Outcome) {
	g.outcome = outcome
	g.state = StateSettled

	g.logger.WithFields(logrus.Fields{
		"outcome": outcome,
		"player":  g.ledger.Player,
		"dealer":  g.ledger.Dealer,
	}).Debug("round settled")

	g.sendLogMessages(playable.SimpleLogMessage("Round settled: %s", outcome))
}

func (g *Game) revealHoleCard() {
	g.holeRevealed = true
}

func (g *Game) sendLogMessages(msg ...*playable.LogMessage) {
	if g.logChan != nil {
		select {
		case g.logChan <- msg:
		default:
		}
	}
}

// parseBid validates the bid text from the presentation layer
func parseBid(bidText string) (int, error) {
	bid, err := strconv.Atoi(strings.TrimSpace(bidText))
	if err != nil {
		return 0, InvalidBidError{Bid: bidText, Reason: "the bid must be a whole number"}
	}

	if err := validateBid(bid, bidText); err != nil {
		return 0, err
	}

	return bid, nil
}

func validateBid(bid int, bidText string) error {
	switch {
	case bid == 0:
		return InvalidBidError{Bid: bidText, Reason: "a zero bid is not allowed"}
	case bid < 0:
		return InvalidBidError{Bid: bidText, Reason: "a negative bid is not allowed"}
	case bid%2 != 0:
		return InvalidBidError{Bid: bidText, Reason: "the bid must be even"}
	}

	return nil
}
