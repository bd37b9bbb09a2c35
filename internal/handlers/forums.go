package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/IM-Mukesh/community-forum/internal/forms"
	"github.com/IM-Mukesh/community-forum/internal/forum"
	"github.com/IM-Mukesh/community-forum/internal/middleware"
	"github.com/IM-Mukesh/community-forum/internal/models"
)

// GET /api/forums?q=...&tags=a,b&page=1&page_size=12
func (h *Handler) ListForums(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := models.ForumFilter{Query: strings.TrimSpace(q.Get("q"))}
	if raw := q.Get("tags"); raw != "" {
		filter.Tags = forms.ParseTags(raw)
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(q.Get("page_size")); err == nil {
		filter.PageSize = size
	}

	writeJSON(w, http.StatusOK, h.svc.ListForums(filter))
}

// GET /api/forums/{id}
func (h *Handler) GetForum(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	f := h.svc.GetForum(id)
	if f == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, f)
}

// GET /api/tags
func (h *Handler) GetTags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.AllTags())
}

// POST /api/forums
func (h *Handler) CreateForum(w http.ResponseWriter, r *http.Request) {
	userID := middleware.CallerID(r)

	var form forms.ForumForm
	if err := decodeBody(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	form.Trim()

	if fields := forms.Validate(&form); fields != nil {
		writeFieldErrors(w, fields)
		return
	}

	f, err := h.svc.CreateForum(userID, forum.ForumInput{
		Title:       form.Title,
		Description: form.Description,
		Tags:        forms.ParseTags(form.Tags),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"forum":    f,
		"redirect": "/forums/" + f.ID,
	})
}

// PUT /api/forums/{id}
func (h *Handler) UpdateForum(w http.ResponseWriter, r *http.Request) {
	userID := middleware.CallerID(r)
	id := mux.Vars(r)["id"]

	var form forms.ForumForm
	if err := decodeBody(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	form.Trim()

	if fields := forms.Validate(&form); fields != nil {
		writeFieldErrors(w, fields)
		return
	}

	err := h.svc.UpdateForum(userID, id, forum.ForumInput{
		Title:       form.Title,
		Description: form.Description,
		Tags:        forms.ParseTags(form.Tags),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"redirect": "/forums/" + id})
}

// DELETE /api/forums/{id}
func (h *Handler) DeleteForum(w http.ResponseWriter, r *http.Request) {
	userID := middleware.CallerID(r)
	id := mux.Vars(r)["id"]

	if err := h.svc.DeleteForum(userID, id); err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"redirect": "/"})
}

// POST /api/forums/{id}/like
func (h *Handler) LikeForum(w http.ResponseWriter, r *http.Request) {
	userID := middleware.CallerID(r)
	id := mux.Vars(r)["id"]

	liked, err := h.svc.ToggleForumLike(userID, id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"liked": liked})
}

// POST /api/seed
func (h *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	seeded, err := h.svc.SeedForums()
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	msg := "forums already exist, skipping seed"
	if seeded {
		msg = "sample forums created"
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"seeded": seeded, "message": msg})
}
