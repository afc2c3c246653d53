package mux

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"blackjack-server/pkg/blackjack"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

// snapshots carry Action values which only marshal, so the tests decode
// just the fields they assert on
type testSnapshot struct {
	State        blackjack.State   `json:"state"`
	Outcome      blackjack.Outcome `json:"outcome"`
	Bid          int               `json:"bid"`
	DefaultBid   int               `json:"defaultBid"`
	ServingCount int               `json:"servingCount"`
}

type testTableResponse struct {
	UUID     string       `json:"uuid"`
	Name     string       `json:"name"`
	Snapshot testSnapshot `json:"snapshot"`
}

func TestTableLifecycle(t *testing.T) {
	a := assert.New(t)

	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var created testTableResponse
	assertPost(t, ts, "/table", nil, &created, 201)
	a.NotEmpty(created.UUID)
	a.NotEmpty(created.Name)
	a.Equal(blackjack.StateAwaitingBid, created.Snapshot.State)
	a.Equal(100, created.Snapshot.DefaultBid)
	a.Equal(52, created.Snapshot.ServingCount)

	var fetched testTableResponse
	assertGet(t, ts, "/table/"+created.UUID, &fetched, 200)
	a.Equal(created.UUID, fetched.UUID)
	a.Equal(created.Name, fetched.Name)

	var errObj errorResponse
	assertGet(t, ts, "/table/6a3cfd69-6779-4a11-98d2-fc6dc7e0056e", &errObj, 404)
	a.Equal("Not Found", errObj.Message)

	// a malformed UUID never reaches the table routes
	assertGet(t, ts, "/table/nope", nil, 404)

	// a deleted table is gone for good
	assertDelete(t, ts, "/table/"+created.UUID, 204)
	assertGet(t, ts, "/table/"+created.UUID, nil, 404)
	assertDelete(t, ts, "/table/"+created.UUID, 404)
}

func TestPostTableUUIDAction(t *testing.T) {
	a := assert.New(t)

	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var created testTableResponse
	assertPost(t, ts, "/table", nil, &created, 201)
	base := "/table/" + created.UUID

	var errObj errorResponse
	assertPost(t, ts, base+"/deal", `{"bid":"7"}`, &errObj, 400)
	a.Equal(`invalid bid "7": the bid must be even`, errObj.Message)

	// a deal payload without a JSON content type is rejected
	assertPost(t, ts, base+"/deal", nil, &errObj, 415)

	assertPost(t, ts, base+"/bad-action", `{}`, nil, 404)

	var dealt testTableResponse
	assertPost(t, ts, base+"/deal", `{"bid":"100"}`, &dealt, 200)
	a.Equal(100, dealt.Snapshot.Bid)
	a.Equal(48, dealt.Snapshot.ServingCount)

	// with a real shuffled deck the round may already be over
	a.Contains([]blackjack.State{
		blackjack.StateInsuranceOffered,
		blackjack.StateMainGame,
		blackjack.StateSettled,
	}, dealt.Snapshot.State)

	assertPost(t, ts, base+"/deal", `{"bid":"100"}`, &errObj, 409)
	a.Contains(errObj.Message, "cannot deal from state:")
}

func TestTableWebSocket(t *testing.T) {
	a := assert.New(t)

	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var created testTableResponse
	assertPost(t, ts, "/table", nil, &created, 201)

	wsURL := strings.Replace(ts.URL, "http", "ws", 1) + "/table/" + created.UUID + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if !a.NoError(err) {
		return
	}
	defer resp.Body.Close()
	defer conn.Close()

	// a new client is primed with the current snapshot
	var msg struct {
		Key  string `json:"key"`
		Data struct {
			State blackjack.State `json:"state"`
		} `json:"data"`
	}
	a.NoError(conn.ReadJSON(&msg))
	a.Equal("snapshot", msg.Key)
	a.Equal(blackjack.StateAwaitingBid, msg.Data.State)

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func TestSnapshotHidesHoleCard(t *testing.T) {
	a := assert.New(t)

	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var created testTableResponse
	assertPost(t, ts, "/table", nil, &created, 201)

	var dealt struct {
		Snapshot struct {
			State       blackjack.State `json:"state"`
			DealerCards []struct {
				Card   json.RawMessage `json:"card"`
				FaceUp bool            `json:"faceUp"`
			} `json:"dealerCards"`
			DealerRank string `json:"dealerRank"`
		} `json:"snapshot"`
	}
	assertPost(t, ts, "/table/"+created.UUID+"/deal", `{"bid":"100"}`, &dealt, 200)

	if dealt.Snapshot.State == blackjack.StateSettled {
		t.Skip("dealt a natural; the hole card is already revealed")
	}

	a.Len(dealt.Snapshot.DealerCards, 2)
	a.True(dealt.Snapshot.DealerCards[0].FaceUp)
	a.False(dealt.Snapshot.DealerCards[1].FaceUp)
	a.Nil(dealt.Snapshot.DealerCards[1].Card)
	a.Empty(dealt.Snapshot.DealerRank)
}
