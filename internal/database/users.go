package database

import (
	"database/sql"
	"fmt"

	"github.com/IM-Mukesh/community-forum/internal/models"
)

// InsertUser stores a new auth identity.
func InsertUser(db *sql.DB, u models.User) error {
	_, err := db.Exec(`
		INSERT INTO users (id, email, password_hash, created_at)
		VALUES (?, ?, ?, datetime('now'))`,
		u.ID, u.Email, u.PasswordHash,
	)
	return err
}

// InsertUserWithProfile stores a new auth identity and its profile row in
// one transaction, so a failed profile insert never leaves a user behind.
func InsertUserWithProfile(db *sql.DB, u models.User, p models.Profile) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO users (id, email, password_hash, created_at)
		VALUES (?, ?, ?, datetime('now'))`,
		u.ID, u.Email, u.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %v", err)
	}

	_, err = tx.Exec(`
		INSERT INTO profiles (id, username, avatar_url, notification_preferences, updated_at)
		VALUES (?, ?, ?, ?, datetime('now'))`,
		p.ID, p.Username, p.AvatarURL, encodePreferences(p.NotificationPreferences),
	)
	if err != nil {
		return fmt.Errorf("failed to create profile: %v", err)
	}

	return tx.Commit()
}

// GetUserByID retrieves a user by id. The notification path uses this as
// the lookup-by-id of the auth sub-contract to resolve a recipient email.
func GetUserByID(db *sql.DB, id string) (*models.User, error) {
	var u models.User
	err := db.QueryRow(`
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE id = ?`, id,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByEmail retrieves a user by email, case-insensitively.
func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	var u models.User
	err := db.QueryRow(`
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE LOWER(email) = LOWER(?)`, email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// EmailExists reports whether an account already uses the email.
func EmailExists(db *sql.DB, email string) (bool, error) {
	var count int
	err := db.QueryRow(
		"SELECT COUNT(*) FROM users WHERE LOWER(email) = LOWER(?)",
		email,
	).Scan(&count)
	return count > 0, err
}
