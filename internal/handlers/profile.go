package handlers

import (
	"net/http"
	"strings"

	"github.com/IM-Mukesh/community-forum/internal/middleware"
	"github.com/IM-Mukesh/community-forum/internal/models"
)

// GET /api/profile
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.CallerID(r)

	profile, err := h.repos.Profiles.ByID(userID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"profile":  profile,
		"forums":   h.svc.UserForums(userID),
		"comments": h.svc.UserComments(userID),
	})
}

// PUT /api/profile
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.CallerID(r)

	var req struct {
		Username  *string `json:"username"`
		AvatarURL *string `json:"avatar_url"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	if req.Username != nil {
		trimmed := strings.TrimSpace(*req.Username)
		if len(trimmed) < 3 {
			writeFieldErrors(w, map[string]string{"username": "Username must be at least 3 characters"})
			return
		}
		req.Username = &trimmed
	}

	if err := h.svc.UpdateProfile(userID, req.Username, req.AvatarURL); err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PUT /api/profile/notifications
func (h *Handler) UpdateNotifications(w http.ResponseWriter, r *http.Request) {
	userID := middleware.CallerID(r)

	var prefs models.NotificationPreferences
	if err := decodeBody(r, &prefs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	if err := h.svc.UpdateNotificationPreferences(userID, prefs); err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
