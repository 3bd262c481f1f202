package server

import (
	"encoding/json"
	"errors"
	"hunt/agent"
	"hunt/communication"
	"hunt/game"
	"net/http"

	"github.com/rs/zerolog/log"
)

type ServerCommunicator struct {
	dracula *agent.Dracula
}

// NewServerCommunicator serves decisions made by d.
func NewServerCommunicator(d *agent.Dracula) *ServerCommunicator {
	return &ServerCommunicator{dracula: d}
}

// Handler routes the decision endpoints on a local mux.
func (sc *ServerCommunicator) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/decide", sc.handleDecide)
	mux.HandleFunc("/health", sc.handleHealth)
	return mux
}

// Start serves the decision endpoints on addr until the server fails.
func (sc *ServerCommunicator) Start(addr string) error {
	log.Info().Msgf("starting decision server on %s ...", addr)
	return http.ListenAndServe(addr, sc.Handler())
}

func (sc *ServerCommunicator) handleDecide(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req communication.DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	state, err := game.NewView(req.Plays)
	if err != nil {
		var perr *game.ParseError
		if errors.As(err, &perr) {
			http.Error(w, "invalid plays: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	decision := communication.NewDecision(sc.dracula.Decide(state))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(decision); err != nil {
		log.Warn().Err(err).Msg("failed to encode decision")
	}
}

func (sc *ServerCommunicator) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
