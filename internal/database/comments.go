package database

import (
	"database/sql"
	"strings"

	"github.com/IM-Mukesh/community-forum/internal/models"
)

// InsertComment stores a new comment row.
func InsertComment(db *sql.DB, c models.Comment) error {
	_, err := db.Exec(`
		INSERT INTO comments (id, content, forum_id, user_id, created_at)
		VALUES (?, ?, ?, ?, datetime('now'))`,
		c.ID, c.Content, c.ForumID, c.UserID,
	)
	return err
}

// GetCommentsByForumID retrieves all comments for a forum, oldest first.
func GetCommentsByForumID(db *sql.DB, forumID string) ([]models.Comment, error) {
	rows, err := db.Query(`
		SELECT id, content, forum_id, user_id, created_at
		FROM comments
		WHERE forum_id = ?
		ORDER BY created_at ASC, id ASC`, forumID)
	if err != nil {
		return nil, err
	}
	return scanComments(rows)
}

// GetCommentForumIDs returns the forum_id of every comment belonging to the
// given forums, one entry per comment row. Callers count occurrences in
// memory instead of asking the store to aggregate.
func GetCommentForumIDs(db *sql.DB, forumIDs []string) ([]string, error) {
	return collectIDs(db, "SELECT forum_id FROM comments WHERE forum_id IN", forumIDs)
}

// GetCommentOwner returns the owning user id and parent forum id of a
// comment.
func GetCommentOwner(db *sql.DB, id string) (ownerID, forumID string, err error) {
	err = db.QueryRow("SELECT user_id, forum_id FROM comments WHERE id = ?", id).Scan(&ownerID, &forumID)
	return
}

// DeleteComment removes a comment; its likes cascade.
func DeleteComment(db *sql.DB, id string) error {
	_, err := db.Exec("DELETE FROM comments WHERE id = ?", id)
	return err
}

// GetCommentsByUserID retrieves all comments authored by a user, newest
// first.
func GetCommentsByUserID(db *sql.DB, userID string) ([]models.Comment, error) {
	rows, err := db.Query(`
		SELECT id, content, forum_id, user_id, created_at
		FROM comments
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	return scanComments(rows)
}

// collectIDs runs "<queryPrefix> (?, ...)" and returns the single string
// column of every row.
func collectIDs(db *sql.DB, queryPrefix string, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(ids)-1) + "?"
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := db.Query(queryPrefix+" ("+placeholders+")", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
