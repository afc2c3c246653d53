package blackjack

// Ledger tracks the cumulative earnings for the player and the dealer.
// It survives restarts and is reset only when the process starts.
type Ledger struct {
	Player int `json:"player"`
	Dealer int `json:"dealer"`
}

func (l *Ledger) playerWins(amount int) {
	l.Player += amount
	l.Dealer -= amount
}

func (l *Ledger) dealerWins(amount int) {
	l.Dealer += amount
	l.Player -= amount
}
