package database

import (
	"database/sql"

	"github.com/IM-Mukesh/community-forum/internal/models"
)

// FindForumLike looks up the like row for a (forum, user) pair. It returns
// (nil, nil) when no row exists so the toggle path can branch without
// treating absence as a failure.
func FindForumLike(db *sql.DB, forumID, userID string) (*models.ForumLike, error) {
	var l models.ForumLike
	err := db.QueryRow(`
		SELECT id, forum_id, user_id, created_at
		FROM forum_likes
		WHERE forum_id = ? AND user_id = ?`,
		forumID, userID,
	).Scan(&l.ID, &l.ForumID, &l.UserID, &l.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// InsertForumLike stores a new forum like row.
func InsertForumLike(db *sql.DB, l models.ForumLike) error {
	_, err := db.Exec(`
		INSERT INTO forum_likes (id, forum_id, user_id, created_at)
		VALUES (?, ?, ?, datetime('now'))`,
		l.ID, l.ForumID, l.UserID,
	)
	return err
}

// DeleteForumLike removes a forum like row by id.
func DeleteForumLike(db *sql.DB, id string) error {
	_, err := db.Exec("DELETE FROM forum_likes WHERE id = ?", id)
	return err
}

// GetForumLikeForumIDs returns the forum_id of every like belonging to the
// given forums, one entry per like row.
func GetForumLikeForumIDs(db *sql.DB, forumIDs []string) ([]string, error) {
	return collectIDs(db, "SELECT forum_id FROM forum_likes WHERE forum_id IN", forumIDs)
}

// FindCommentLike mirrors FindForumLike for comments.
func FindCommentLike(db *sql.DB, commentID, userID string) (*models.CommentLike, error) {
	var l models.CommentLike
	err := db.QueryRow(`
		SELECT id, comment_id, user_id, created_at
		FROM comment_likes
		WHERE comment_id = ? AND user_id = ?`,
		commentID, userID,
	).Scan(&l.ID, &l.CommentID, &l.UserID, &l.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// InsertCommentLike stores a new comment like row.
func InsertCommentLike(db *sql.DB, l models.CommentLike) error {
	_, err := db.Exec(`
		INSERT INTO comment_likes (id, comment_id, user_id, created_at)
		VALUES (?, ?, ?, datetime('now'))`,
		l.ID, l.CommentID, l.UserID,
	)
	return err
}

// DeleteCommentLike removes a comment like row by id.
func DeleteCommentLike(db *sql.DB, id string) error {
	_, err := db.Exec("DELETE FROM comment_likes WHERE id = ?", id)
	return err
}

// GetCommentLikeCommentIDs returns the comment_id of every like belonging
// to the given comments, one entry per like row.
func GetCommentLikeCommentIDs(db *sql.DB, commentIDs []string) ([]string, error) {
	return collectIDs(db, "SELECT comment_id FROM comment_likes WHERE comment_id IN", commentIDs)
}
