package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/IM-Mukesh/community-forum/internal/forum"
	"github.com/IM-Mukesh/community-forum/internal/repos"
)

type Handler struct {
	db    *sql.DB
	repos *repos.Repos
	svc   *forum.Service
	hub   *Hub
	log   *zap.Logger
}

func NewHandler(db *sql.DB, r *repos.Repos, svc *forum.Service, hub *Hub, log *zap.Logger) *Handler {
	return &Handler{db: db, repos: r, svc: svc, hub: hub, log: log}
}

// ServeWS proxies WebSocket requests to the hub.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	h.hub.ServeWS(w, r, h.db)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeFieldErrors reports per-field validation failures as a 400 with a
// field-to-message map.
func writeFieldErrors(w http.ResponseWriter, fields map[string]string) {
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":  "validation failed",
		"fields": fields,
	})
}

// writeServiceError maps domain errors to HTTP statuses.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, forum.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "not authenticated")
	case errors.Is(err, forum.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, forum.ErrNotFound), errors.Is(err, sql.ErrNoRows):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
