package database

import (
	"database/sql"
	"encoding/json"

	"github.com/IM-Mukesh/community-forum/internal/models"
)

// scanForums scans rows into []models.Forum given a query that returns
// columns: id, title, description, tags, user_id, created_at
func scanForums(rows *sql.Rows) ([]models.Forum, error) {
	defer rows.Close()
	var forums []models.Forum
	for rows.Next() {
		var f models.Forum
		var tagsJSON string
		if err := rows.Scan(&f.ID, &f.Title, &f.Description, &tagsJSON, &f.UserID, &f.CreatedAt); err != nil {
			return nil, err
		}
		f.Tags = decodeTags(tagsJSON)
		forums = append(forums, f)
	}
	return forums, rows.Err()
}

// scanComments scans rows into []models.Comment expecting columns:
// id, content, forum_id, user_id, created_at
func scanComments(rows *sql.Rows) ([]models.Comment, error) {
	defer rows.Close()
	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.Content, &c.ForumID, &c.UserID, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// encodeTags serializes a tag list for the forums.tags column. Order is
// preserved; a nil slice is stored as an empty array.
func encodeTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeTags(raw string) []string {
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil || tags == nil {
		return []string{}
	}
	return tags
}
