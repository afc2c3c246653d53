package room

import (
	"errors"
	"sync"

	"blackjack-server/pkg/blackjack"
	"github.com/sirupsen/logrus"
)

// ErrTableNotFound is an error when a table UUID is unknown
var ErrTableNotFound = errors.New("table not found")

// Manager keeps track of the active tables.
// Tables are independent: each has its own deck, ledger, and round.
type Manager struct {
	mu     sync.RWMutex
	tables map[string]*Table
	logger logrus.FieldLogger
}

// NewManager returns a new manager
func NewManager(logger logrus.FieldLogger) *Manager {
	return &Manager{
		tables: make(map[string]*Table),
		logger: logger,
	}
}

// CreateTable creates a new table and registers it
func (m *Manager) CreateTable(options blackjack.Options) (*Table, error) {
	table, err := NewTable(m.logger, options)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.tables[table.UUID] = table
	m.mu.Unlock()

	m.logger.WithFields(logrus.Fields{
		"uuid": table.UUID,
		"name": table.Name,
	}).Info("table created")

	return table, nil
}

// RemoveTable unregisters the table with the given UUID and closes it
func (m *Manager) RemoveTable(uuid string) error {
	m.mu.Lock()
	table, ok := m.tables[uuid]
	if ok {
		delete(m.tables, uuid)
	}
	m.mu.Unlock()

	if !ok {
		return ErrTableNotFound
	}

	table.Close()
	m.logger.WithField("uuid", uuid).Info("table removed")
	return nil
}

// Table returns the table with the given UUID
func (m *Manager) Table(uuid string) (*Table, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	table, ok := m.tables[uuid]
	if !ok {
		return nil, ErrTableNotFound
	}

	return table, nil
}
