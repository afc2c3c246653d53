package room

import (
	"sync"

	"blackjack-server/internal/util"
	"blackjack-server/pkg/blackjack"
	"blackjack-server/pkg/playable"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Table is a single blackjack game plus its connected clients.
// The game itself is strictly synchronous; the table serializes intents from
// concurrent HTTP requests so the game never sees two at once.
type Table struct {
	UUID string
	Name string

	mu      sync.Mutex
	game    *blackjack.Game
	clients map[*Client]bool
	logger  logrus.FieldLogger
	done    chan struct{}
}

// NewTable returns a new table with a fresh game
func NewTable(logger logrus.FieldLogger, options blackjack.Options) (*Table, error) {
	game, err := blackjack.NewGame(logger, options)
	if err != nil {
		return nil, err
	}

	t := &Table{
		UUID:    uuid.New().String(),
		Name:    util.GetRandomName(),
		game:    game,
		clients: make(map[*Client]bool),
		logger:  logger,
		done:    make(chan struct{}),
	}

	go t.forwardLogs()
	return t, nil
}

// Snapshot returns the current round snapshot
func (t *Table) Snapshot() *blackjack.RoundSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.game.Snapshot()
}

// Execute performs one player intent. On success the new snapshot is
// broadcast to all connected clients and returned to the caller.
func (t *Table) Execute(action blackjack.Action, bid string) (*blackjack.RoundSnapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var snapshot *blackjack.RoundSnapshot
	var err error

	switch action {
	case blackjack.ActionDeal:
		snapshot, err = t.game.Deal(bid)
	case blackjack.ActionInsurance:
		snapshot, err = t.game.Insurance()
	case blackjack.ActionSurrender:
		snapshot, err = t.game.Surrender()
	case blackjack.ActionProceed:
		snapshot, err = t.game.Proceed()
	case blackjack.ActionDoubleDown:
		snapshot, err = t.game.DoubleDown()
	case blackjack.ActionHit:
		snapshot, err = t.game.Hit()
	case blackjack.ActionStay:
		snapshot, err = t.game.Stay()
	case blackjack.ActionRestart:
		snapshot, err = t.game.Restart()
	default:
		panic("unknown action: " + action.Slug())
	}

	if err != nil {
		return nil, err
	}

	t.broadcast(&playable.Response{Key: "snapshot", Data: snapshot})
	return snapshot, nil
}

// AddClient registers a connected client and primes it with the current state
func (t *Table) AddClient(c *Client) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.clients[c] = true
	c.Send(&playable.Response{Key: "snapshot", Data: t.game.Snapshot()})
}

// RemoveClient removes a disconnected client
func (t *Table) RemoveClient(c *Client) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.clients, c)
}

// broadcast must be called with the lock held
func (t *Table) broadcast(msg interface{}) {
	for client := range t.clients {
		if !client.Send(msg) {
			t.logger.WithField("client", client.String()).Warn("client send buffer full")
		}
	}
}

func (t *Table) forwardLogs() {
	for {
		select {
		case messages := <-t.game.LogChan():
			t.mu.Lock()
			t.broadcast(&playable.Response{Key: "logs", Data: messages})
			t.mu.Unlock()
		case <-t.done:
			return
		}
	}
}

// Close shuts the table down: the log forwarder exits and connected clients
// are told to disconnect. Close is idempotent.
func (t *Table) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	select {
	case <-t.done:
		return
	default:
	}

	close(t.done)

	for client := range t.clients {
		select {
		case client.Close <- "table closed":
		default:
		}

		delete(t.clients, client)
	}
}
