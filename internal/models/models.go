package models

import "time"

// User is the auth identity behind a profile. The email is only exposed to
// the account owner and to the notification path.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NotificationPreferences is stored as a JSON blob on the profile row.
// A missing blob means every notification kind is enabled.
type NotificationPreferences struct {
	EmailNotifications bool `json:"email_notifications"`
}

// Profile holds the public part of an account. Username and avatar are
// optional and filled in after sign-up.
type Profile struct {
	ID                      string                   `json:"id"`
	Username                *string                  `json:"username"`
	AvatarURL               *string                  `json:"avatar_url"`
	NotificationPreferences *NotificationPreferences `json:"notification_preferences,omitempty"`
	UpdatedAt               *time.Time               `json:"updated_at,omitempty"`
}

// EmailNotificationsEnabled reports whether the owner wants comment emails.
// Absent preferences default to enabled.
func (p *Profile) EmailNotificationsEnabled() bool {
	if p == nil || p.NotificationPreferences == nil {
		return true
	}
	return p.NotificationPreferences.EmailNotifications
}

// DisplayName returns the username or a fallback for anonymous rendering.
func (p *Profile) DisplayName() string {
	if p != nil && p.Username != nil && *p.Username != "" {
		return *p.Username
	}
	return "A user"
}

// Forum is a discussion thread.
type Forum struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Comment belongs to a forum.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	ForumID   string    `json:"forum_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ForumLike is a (forum, user) membership row. At most one per pair,
// maintained by toggle semantics rather than a unique constraint.
type ForumLike struct {
	ID        string    `json:"id"`
	ForumID   string    `json:"forum_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentLike mirrors ForumLike for comments.
type CommentLike struct {
	ID        string    `json:"id"`
	CommentID string    `json:"comment_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is a server-side login session referenced by the cookie token.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// ForumCounts carries the derived counters attached to a forum view.
type ForumCounts struct {
	Comments int `json:"comments"`
	Likes    int `json:"likes"`
}

// CommentCounts carries the derived counters attached to a comment view.
type CommentCounts struct {
	Likes int `json:"likes"`
}

// ForumWithAuthor is the read-model view of a forum: the stored row plus a
// resolved author profile (nil when the lookup fails) and in-memory counts.
type ForumWithAuthor struct {
	Forum
	Author *Profile    `json:"author"`
	Count  ForumCounts `json:"_count"`
}

// CommentWithAuthor is the read-model view of a comment.
type CommentWithAuthor struct {
	Comment
	Author *Profile      `json:"author"`
	Count  CommentCounts `json:"_count"`
}

// CommentWithForum annotates a user's own comment with its forum title for
// the profile page listing.
type CommentWithForum struct {
	Comment
	ForumTitle string `json:"forum_title"`
}

// ForumFilter describes the forum list query: optional free-text search,
// tag containment (every tag must be present) and offset pagination.
type ForumFilter struct {
	Query    string
	Tags     []string
	Page     int
	PageSize int
}
