package database

import (
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/IM-Mukesh/community-forum/internal/models"
)

// InsertProfile stores the profile row created at sign-up.
func InsertProfile(db *sql.DB, p models.Profile) error {
	_, err := db.Exec(`
		INSERT INTO profiles (id, username, avatar_url, notification_preferences, updated_at)
		VALUES (?, ?, ?, ?, datetime('now'))`,
		p.ID, p.Username, p.AvatarURL, encodePreferences(p.NotificationPreferences),
	)
	return err
}

// GetProfileByID retrieves a single profile row.
func GetProfileByID(db *sql.DB, id string) (*models.Profile, error) {
	row := db.QueryRow(`
		SELECT id, username, avatar_url, notification_preferences, updated_at
		FROM profiles
		WHERE id = ?`, id)

	p, err := scanProfile(row)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetProfilesByIDs retrieves all profiles for the given user ids.
func GetProfilesByIDs(db *sql.DB, ids []string) ([]models.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(ids)-1) + "?"
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := db.Query(`
		SELECT id, username, avatar_url, notification_preferences, updated_at
		FROM profiles
		WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

// UpdateProfile rewrites username and avatar for a profile. A nil field is
// left untouched so partial update bodies cannot clear stored values.
func UpdateProfile(db *sql.DB, id string, username, avatarURL *string) error {
	_, err := db.Exec(`
		UPDATE profiles
		SET username = COALESCE(?, username),
		    avatar_url = COALESCE(?, avatar_url),
		    updated_at = datetime('now')
		WHERE id = ?`,
		username, avatarURL, id,
	)
	return err
}

// UpdateNotificationPreferences replaces the preference blob for a profile.
func UpdateNotificationPreferences(db *sql.DB, id string, prefs models.NotificationPreferences) error {
	_, err := db.Exec(`
		UPDATE profiles SET notification_preferences = ?, updated_at = datetime('now')
		WHERE id = ?`,
		encodePreferences(&prefs), id,
	)
	return err
}

// GetAnyProfileID returns an arbitrary existing profile id, or sql.ErrNoRows
// when the table is empty. Used by seeding to reuse an existing account.
func GetAnyProfileID(db *sql.DB) (string, error) {
	var id string
	err := db.QueryRow("SELECT id FROM profiles LIMIT 1").Scan(&id)
	return id, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(row rowScanner) (*models.Profile, error) {
	var p models.Profile
	var prefsJSON sql.NullString
	if err := row.Scan(&p.ID, &p.Username, &p.AvatarURL, &prefsJSON, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if prefsJSON.Valid && prefsJSON.String != "" {
		var prefs models.NotificationPreferences
		if err := json.Unmarshal([]byte(prefsJSON.String), &prefs); err == nil {
			p.NotificationPreferences = &prefs
		}
	}
	return &p, nil
}

// encodePreferences serializes the preference blob, keeping NULL for the
// "never set" state that defaults to enabled.
func encodePreferences(prefs *models.NotificationPreferences) interface{} {
	if prefs == nil {
		return nil
	}
	b, err := json.Marshal(prefs)
	if err != nil {
		return nil
	}
	return string(b)
}
