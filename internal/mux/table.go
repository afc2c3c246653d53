package mux

import (
	"context"
	"net/http"

	"blackjack-server/internal/config"
	"blackjack-server/pkg/blackjack"
	"blackjack-server/pkg/room"
	gmux "github.com/gorilla/mux"
)

func withTable(ctx context.Context, table *room.Table) context.Context {
	return context.WithValue(ctx, ctxTableKey, table)
}

func tableFromContext(ctx context.Context) *room.Table {
	return ctx.Value(ctxTableKey).(*room.Table)
}

type tableResponse struct {
	UUID     string                   `json:"uuid"`
	Name     string                   `json:"name"`
	Snapshot *blackjack.RoundSnapshot `json:"snapshot"`
}

func (m *Mux) postTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options := blackjack.DefaultOptions()
		if bid := config.Instance().Game.DefaultBid; bid > 0 {
			options.DefaultBid = bid
		}

		table, err := m.manager.CreateTable(options)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, tableResponse{
			UUID:     table.UUID,
			Name:     table.Name,
			Snapshot: table.Snapshot(),
		})
	}
}

func (m *Mux) getTableUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table := tableFromContext(r.Context())
		writeJSON(w, http.StatusOK, tableResponse{
			UUID:     table.UUID,
			Name:     table.Name,
			Snapshot: table.Snapshot(),
		})
	}
}

func (m *Mux) deleteTableUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table := tableFromContext(r.Context())
		if err := m.manager.RemoveTable(table.UUID); err != nil {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

type actionPayload struct {
	Bid string `json:"bid"`
}

func (m *Mux) postTableUUIDAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		action, err := blackjack.ActionFromString(gmux.Vars(r)["action"])
		if err != nil {
			writeJSONError(w, http.StatusNotFound, err)
			return
		}

		var payload actionPayload
		if action == blackjack.ActionDeal {
			if !decodeRequest(w, r, &payload) {
				return
			}
		}

		table := tableFromContext(r.Context())
		snapshot, err := table.Execute(action, payload.Bid)
		if err != nil {
			switch err.(type) {
			case blackjack.InvalidBidError:
				writeJSONError(w, http.StatusBadRequest, err)
			case blackjack.IllegalActionError:
				writeJSONError(w, http.StatusConflict, err)
			default:
				// includes a drained deck, which is an invariant
				// violation rather than a user error
				writeJSONError(w, http.StatusInternalServerError, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, tableResponse{
			UUID:     table.UUID,
			Name:     table.Name,
			Snapshot: snapshot,
		})
	}
}
