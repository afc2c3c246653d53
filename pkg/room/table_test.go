package room

import (
	"testing"

	"blackjack-server/pkg/blackjack"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewTable(t *testing.T) {
	a := assert.New(t)

	table, err := NewTable(logrus.StandardLogger(), blackjack.DefaultOptions())
	a.NoError(err)
	a.NotEmpty(table.UUID)
	a.NotEmpty(table.Name)

	snapshot := table.Snapshot()
	a.Equal(blackjack.StateAwaitingBid, snapshot.State)
	a.Equal(52, snapshot.ServingCount)

	_, err = NewTable(logrus.StandardLogger(), blackjack.Options{DefaultBid: -2})
	a.Error(err)
}

func TestTable_Execute(t *testing.T) {
	a := assert.New(t)

	table, err := NewTable(logrus.StandardLogger(), blackjack.DefaultOptions())
	a.NoError(err)

	snapshot, err := table.Execute(blackjack.ActionDeal, "100")
	a.NoError(err)
	a.Equal(100, snapshot.Bid)
	a.Equal(2, len(snapshot.PlayerCards))

	// a second deal is illegal whether the round settled naturally or not
	_, err = table.Execute(blackjack.ActionDeal, "100")
	a.Error(err)
	a.IsType(blackjack.IllegalActionError{}, err)
	a.Equal(100, table.Snapshot().Bid)
}

func TestManager(t *testing.T) {
	a := assert.New(t)

	m := NewManager(logrus.StandardLogger())

	table, err := m.CreateTable(blackjack.DefaultOptions())
	a.NoError(err)

	got, err := m.Table(table.UUID)
	a.NoError(err)
	a.Equal(table, got)

	_, err = m.Table("bogus")
	a.Equal(ErrTableNotFound, err)

	// tables are independent games
	other, err := m.CreateTable(blackjack.DefaultOptions())
	a.NoError(err)

	_, err = table.Execute(blackjack.ActionDeal, "100")
	a.NoError(err)
	a.Equal(blackjack.StateAwaitingBid, other.Snapshot().State)
}

func TestManager_RemoveTable(t *testing.T) {
	a := assert.New(t)

	m := NewManager(logrus.StandardLogger())

	table, err := m.CreateTable(blackjack.DefaultOptions())
	a.NoError(err)

	a.NoError(m.RemoveTable(table.UUID))

	_, err = m.Table(table.UUID)
	a.Equal(ErrTableNotFound, err)

	a.Equal(ErrTableNotFound, m.RemoveTable(table.UUID))

	// closing an already-closed table must not panic
	table.Close()
}
