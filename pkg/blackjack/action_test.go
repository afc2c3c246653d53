package blackjack

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionFromString(t *testing.T) {
	a := assert.New(t)

	for action := ActionDeal; action <= ActionRestart; action++ {
		got, err := ActionFromString(action.Slug())
		a.NoError(err)
		a.Equal(action, got)
	}

	_, err := ActionFromString("split")
	a.EqualError(err, "invalid action: split")
}

func TestAction_MarshalJSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal(ActionDoubleDown)
	a.NoError(err)
	a.JSONEq(`{"id":"double-down","name":"Double Down"}`, string(b))
}
