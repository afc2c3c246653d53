package mux

import (
	"net/http"

	"blackjack-server/pkg/room"
	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type ctxKey int

const ctxTableKey ctxKey = iota

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	manager *room.Manager
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		manager: room.NewManager(logrus.StandardLogger()),
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/table").Handler(this.postTable())

	tr := r.PathPrefix("/table/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	tr.Use(this.tableMiddleware)

	tr.Methods(http.MethodGet).Path("").Handler(this.getTableUUID())
	tr.Methods(http.MethodDelete).Path("").Handler(this.deleteTableUUID())
	tr.Methods(http.MethodGet).Path("/ws").Handler(this.getTableUUIDWS())
	tr.Methods(http.MethodPost).Path("/{action:[a-z-]+}").Handler(this.postTableUUIDAction())

	return this
}

func (m *Mux) tableMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		table, err := m.manager.Table(gmux.Vars(r)["uuid"])
		if err != nil {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		next.ServeHTTP(w, r.WithContext(withTable(r.Context(), table)))
	})
}
