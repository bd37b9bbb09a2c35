package database

import (
	"database/sql"
	"strings"

	"github.com/IM-Mukesh/community-forum/internal/models"
)

// InsertForum stores a new forum row.
func InsertForum(db *sql.DB, f models.Forum) error {
	_, err := db.Exec(`
		INSERT INTO forums (id, title, description, tags, user_id, created_at)
		VALUES (?, ?, ?, ?, ?, datetime('now'))`,
		f.ID, f.Title, f.Description, encodeTags(f.Tags), f.UserID,
	)
	return err
}

// GetForumByID retrieves a single forum row.
func GetForumByID(db *sql.DB, id string) (*models.Forum, error) {
	var f models.Forum
	var tagsJSON string
	err := db.QueryRow(`
		SELECT id, title, description, tags, user_id, created_at
		FROM forums
		WHERE id = ?`, id,
	).Scan(&f.ID, &f.Title, &f.Description, &tagsJSON, &f.UserID, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	f.Tags = decodeTags(tagsJSON)
	return &f, nil
}

// GetForumOwner returns the owning user id of a forum. Mutations fetch only
// this column before deciding whether the caller may write.
func GetForumOwner(db *sql.DB, id string) (string, error) {
	var owner string
	err := db.QueryRow("SELECT user_id FROM forums WHERE id = ?", id).Scan(&owner)
	return owner, err
}

// UpdateForum rewrites the mutable fields of a forum. The owner column is
// never touched.
func UpdateForum(db *sql.DB, id, title, description string, tags []string) error {
	_, err := db.Exec(`
		UPDATE forums SET title = ?, description = ?, tags = ?
		WHERE id = ?`,
		title, description, encodeTags(tags), id,
	)
	return err
}

// DeleteForum removes a forum; comments and likes cascade.
func DeleteForum(db *sql.DB, id string) error {
	_, err := db.Exec("DELETE FROM forums WHERE id = ?", id)
	return err
}

// GetForumsPage returns one page of forums matching the filter, newest
// first. Text search is a case-insensitive substring match on title or
// description; tag filtering requires every requested tag to be present
// (exact, case-sensitive match against the JSON array).
func GetForumsPage(db *sql.DB, filter models.ForumFilter) ([]models.Forum, error) {
	var (
		conds []string
		args  []interface{}
	)

	if q := strings.TrimSpace(filter.Query); q != "" {
		conds = append(conds, "(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)")
		pattern := "%" + strings.ToLower(q) + "%"
		args = append(args, pattern, pattern)
	}

	for _, tag := range filter.Tags {
		conds = append(conds, "EXISTS (SELECT 1 FROM json_each(forums.tags) WHERE json_each.value = ?)")
		args = append(args, tag)
	}

	query := "SELECT id, title, description, tags, user_id, created_at FROM forums"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	return scanForums(rows)
}

// GetAllForumTags returns the raw tag list of every forum row.
func GetAllForumTags(db *sql.DB) ([][]string, error) {
	rows, err := db.Query("SELECT tags FROM forums")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		var tagsJSON string
		if err := rows.Scan(&tagsJSON); err != nil {
			return nil, err
		}
		out = append(out, decodeTags(tagsJSON))
	}
	return out, rows.Err()
}

// GetForumsByUserID retrieves all forums owned by a user, newest first.
func GetForumsByUserID(db *sql.DB, userID string) ([]models.Forum, error) {
	rows, err := db.Query(`
		SELECT id, title, description, tags, user_id, created_at
		FROM forums
		WHERE user_id = ?
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return scanForums(rows)
}

// GetForumTitles maps forum id to title for the given ids.
func GetForumTitles(db *sql.DB, ids []string) (map[string]string, error) {
	titles := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return titles, nil
	}

	placeholders := strings.Repeat("?,", len(ids)-1) + "?"
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := db.Query("SELECT id, title FROM forums WHERE id IN ("+placeholders+")", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, title string
		if err := rows.Scan(&id, &title); err != nil {
			return nil, err
		}
		titles[id] = title
	}
	return titles, rows.Err()
}

// ForumsExist reports whether any forum row exists.
func ForumsExist(db *sql.DB) (bool, error) {
	var id string
	err := db.QueryRow("SELECT id FROM forums LIMIT 1").Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
