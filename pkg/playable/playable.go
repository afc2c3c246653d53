package playable

import (
	"fmt"
	"time"

	"blackjack-server/pkg/deck"
	"github.com/google/uuid"
)

// LogMessage is the format a game should send log messages in
type LogMessage struct {
	UUID    string       `json:"uuid"`
	Cards   []*deck.Card `json:"cards,omitempty"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
}

// Response is a message envelope sent to connected clients
type Response struct {
	Key  string      `json:"key"`
	Data interface{} `json:"data"`
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:    uuid.New().String(),
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

// CardLogMessage returns a new LogMessage referencing a card
func CardLogMessage(card *deck.Card, format string, a ...interface{}) *LogMessage {
	msg := SimpleLogMessage(format, a...)
	msg.Cards = []*deck.Card{card}

	return msg
}
