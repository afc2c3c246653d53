package blackjack

import (
	"encoding/json"
	"fmt"
)

// Action is an action the player can take
type Action int

// Action constants
const (
	ActionDeal Action = iota
	ActionInsurance
	ActionSurrender
	ActionProceed
	ActionDoubleDown
	ActionHit
	ActionStay
	ActionRestart
)

// MarshalJSON encodes the JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   a.Slug(),
		Name: a.String(),
	})
}

func (a Action) String() string {
	switch a {
	case ActionDeal:
		return "Deal"
	case ActionInsurance:
		return "Buy Insurance"
	case ActionSurrender:
		return "Surrender"
	case ActionProceed:
		return "Proceed"
	case ActionDoubleDown:
		return "Double Down"
	case ActionHit:
		return "Hit"
	case ActionStay:
		return "Stay"
	case ActionRestart:
		return "Restart"
	}

	panic(fmt.Sprintf("invalid action: %d", a))
}

// Slug returns the URL-safe identifier for the action
func (a Action) Slug() string {
	switch a {
	case ActionDeal:
		return "deal"
	case ActionInsurance:
		return "insurance"
	case ActionSurrender:
		return "surrender"
	case ActionProceed:
		return "proceed"
	case ActionDoubleDown:
		return "double-down"
	case ActionHit:
		return "hit"
	case ActionStay:
		return "stay"
	case ActionRestart:
		return "restart"
	}

	panic(fmt.Sprintf("invalid action: %d", a))
}

// ActionFromString returns an action from its slug
func ActionFromString(action string) (Action, error) {
	for a := ActionDeal; a <= ActionRestart; a++ {
		if a.Slug() == action {
			return a, nil
		}
	}

	return -1, fmt.Errorf("invalid action: %s", action)
}

// Actions returns the legal action set for the current state.
// The snapshot carries this set so the presentation layer never duplicates
// enable/disable logic, but every transition still checks it defensively.
func (g *Game) Actions() []Action {
	switch g.state {
	case StateAwaitingBid:
		return []Action{ActionDeal}
	case StateInsuranceOffered:
		return []Action{ActionInsurance, ActionSurrender, ActionProceed}
	case StateMainGame:
		// the only non-busting 11-card hand totals exactly 21; a full hand
		// must never draw again
		if g.player.size() >= maxHandSize {
			return []Action{ActionStay}
		}

		if g.hasHit {
			return []Action{ActionHit, ActionStay}
		}

		return []Action{ActionDoubleDown, ActionHit, ActionStay}
	case StateSettled:
		return []Action{ActionRestart}
	}

	return nil
}

func (g *Game) isLegal(action Action) bool {
	for _, legal := range g.Actions() {
		if action == legal {
			return true
		}
	}

	return false
}
