package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/IM-Mukesh/community-forum/internal/forms"
	"github.com/IM-Mukesh/community-forum/internal/middleware"
)

// GET /api/forums/{id}/comments
func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	forumID := mux.Vars(r)["id"]
	writeJSON(w, http.StatusOK, h.svc.GetComments(forumID))
}

// POST /api/forums/{id}/comments
func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	userID := middleware.CallerID(r)
	forumID := mux.Vars(r)["id"]

	var form forms.CommentForm
	if err := decodeBody(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	form.Trim()

	if fields := forms.Validate(&form); fields != nil {
		writeFieldErrors(w, fields)
		return
	}

	comment, notified, err := h.svc.CreateComment(userID, forumID, form.Content)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"comment":           comment,
		"notification_sent": notified,
	})
}

// DELETE /api/comments/{id}
func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID := middleware.CallerID(r)
	id := mux.Vars(r)["id"]

	forumID, err := h.svc.DeleteComment(userID, id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"redirect": "/forums/" + forumID})
}

// POST /api/comments/{id}/like
func (h *Handler) LikeComment(w http.ResponseWriter, r *http.Request) {
	userID := middleware.CallerID(r)
	id := mux.Vars(r)["id"]

	liked, err := h.svc.ToggleCommentLike(userID, id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"liked": liked})
}
