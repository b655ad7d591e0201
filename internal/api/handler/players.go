package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hipolitesport/roster/internal/api/response"
	"github.com/hipolitesport/roster/internal/model"
	"github.com/hipolitesport/roster/internal/services/players"
)

// PlayersHandler handles the roster endpoints
type PlayersHandler struct {
	players *players.Service
}

// NewPlayersHandler creates a new players handler
func NewPlayersHandler(svc *players.Service) *PlayersHandler {
	return &PlayersHandler{players: svc}
}

// List handles GET /api/jugadores
func (h *PlayersHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.players.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, list)
}

// Create handles POST /api/admin
func (h *PlayersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p model.Player
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	created, err := h.players.Create(r.Context(), p)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, created)
}

// Update handles PUT /api/admin/{id}
func (h *PlayersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var p model.Player
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	updated, err := h.players.Update(r.Context(), id, p)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/admin/{id}
func (h *PlayersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.players.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageResponse{Mensaje: "Player deleted"})
}
