package middleware

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

type contextKey string

// UserIDKey holds the authenticated caller's user id in the request
// context.
const UserIDKey contextKey = "userID"

const sessionCookie = "session_id"

// SessionTTL is how long a login session stays valid.
var SessionTTL = 24 * time.Hour

var errNoSession = errors.New("no session")

// GetUserIDFromSession resolves the caller's user id from the session
// cookie. Expired sessions are removed on sight.
func GetUserIDFromSession(r *http.Request, db *sql.DB) (string, error) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return "", errNoSession
	}

	var userID string
	var expiresAt time.Time
	err = db.QueryRow(
		"SELECT user_id, expires_at FROM sessions WHERE id = ?",
		cookie.Value,
	).Scan(&userID, &expiresAt)
	if err != nil {
		return "", errNoSession
	}

	if time.Now().After(expiresAt) {
		db.Exec("DELETE FROM sessions WHERE id = ?", cookie.Value)
		return "", errNoSession
	}

	return userID, nil
}

// CallerID returns the user id placed in the context by RequireAuth, or
// the empty string.
func CallerID(r *http.Request) string {
	if v := r.Context().Value(UserIDKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// RequireAuth gates an API handler: unauthenticated requests get 401 and
// authenticated ones proceed with the user id in the context.
func RequireAuth(next http.HandlerFunc, db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := GetUserIDFromSession(r, db)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// PageGuard is the route guard for the SPA page paths: unauthenticated
// visitors are redirected away from /forums pages to /login, and logged-in
// users are redirected away from /login and /signup to the home page.
func PageGuard(next http.Handler, db *sql.DB) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := GetUserIDFromSession(r, db)
		authed := err == nil
		path := r.URL.Path

		if !authed && isProtectedPage(path) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if authed && (path == "/login" || path == "/signup") {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// isProtectedPage reports whether a page path requires a login. Forum
// pages and the profile are members-only; the home page stays public.
func isProtectedPage(path string) bool {
	return path == "/forums" ||
		strings.HasPrefix(path, "/forums/") ||
		path == "/profile"
}

// CreateSession starts a fresh session for the user, replacing any
// existing ones, and sets the cookie.
func CreateSession(w http.ResponseWriter, db *sql.DB, userID string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %v", err)
	}
	defer tx.Rollback()

	// One active session per user.
	if _, err := tx.Exec("DELETE FROM sessions WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("failed to delete old sessions: %v", err)
	}

	sessionID := uuid.NewString()
	expiresAt := time.Now().Add(SessionTTL)

	_, err = tx.Exec(
		"INSERT INTO sessions (id, user_id, expires_at, created_at) VALUES (?, ?, ?, datetime('now'))",
		sessionID, userID, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sessionID,
		Expires:  expiresAt,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// LogoutUser deletes the current session and clears the cookie.
func LogoutUser(w http.ResponseWriter, r *http.Request, db *sql.DB) error {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return errNoSession
	}

	// Clear the cookie even if the DB delete fails.
	db.Exec("DELETE FROM sessions WHERE id = ?", cookie.Value)

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
	return nil
}

// CleanupExpiredSessions removes every expired session row.
func CleanupExpiredSessions(db *sql.DB) error {
	_, err := db.Exec("DELETE FROM sessions WHERE datetime(expires_at) <= datetime('now')")
	return err
}
