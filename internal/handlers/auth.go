package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/IM-Mukesh/community-forum/internal/forms"
	"github.com/IM-Mukesh/community-forum/internal/middleware"
	"github.com/IM-Mukesh/community-forum/internal/models"
	"github.com/IM-Mukesh/community-forum/internal/utils"
)

// POST /api/signup
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var form forms.SignupForm
	if err := decodeBody(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	form.Trim()

	if fields := forms.Validate(&form); fields != nil {
		writeFieldErrors(w, fields)
		return
	}

	if taken, err := h.repos.Users.EmailTaken(form.Email); err != nil {
		h.writeServiceError(w, err)
		return
	} else if taken {
		writeError(w, http.StatusConflict, "email already registered")
		return
	}

	hash, err := utils.HashPassword(form.Password)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(form.Email),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	username := form.Username
	profile := models.Profile{ID: user.ID, Username: &username}
	if err := h.repos.Users.CreateAccount(user, profile); err != nil {
		h.writeServiceError(w, err)
		return
	}

	if err := middleware.CreateSession(w, h.db, user.ID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"id":       user.ID,
		"email":    user.Email,
		"username": username,
	})
}

// POST /api/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var form forms.LoginForm
	if err := decodeBody(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	form.Trim()

	if fields := forms.Validate(&form); fields != nil {
		writeFieldErrors(w, fields)
		return
	}

	user, err := h.repos.Users.ByEmail(form.Email)
	if err != nil || utils.VerifyPassword(user.PasswordHash, form.Password) != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := middleware.CreateSession(w, h.db, user.ID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": user.ID, "email": user.Email})
}

// POST /api/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.LogoutUser(w, r, h.db)
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromSession(r, h.db)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	user, err := h.repos.Users.ByID(userID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	profile, _ := h.repos.Profiles.ByID(userID)
	resp := map[string]interface{}{"id": user.ID, "email": user.Email}
	if profile != nil {
		resp["username"] = profile.Username
		resp["avatar_url"] = profile.AvatarURL
	}
	writeJSON(w, http.StatusOK, resp)
}
