package repos

import (
	"github.com/IM-Mukesh/community-forum/internal/models"
)

// ForumStore defines the table-scoped forum operations the service layer
// depends on. Fetches return raw rows; all enrichment happens in memory in
// the caller.
type ForumStore interface {
	Page(filter models.ForumFilter) ([]models.Forum, error)
	ByID(id string) (*models.Forum, error)
	Owner(id string) (string, error)
	Insert(f models.Forum) error
	Update(id, title, description string, tags []string) error
	Delete(id string) error
	AllTags() ([][]string, error)
	ByUser(userID string) ([]models.Forum, error)
	Titles(ids []string) (map[string]string, error)
	Any() (bool, error)
}

// CommentStore defines table-scoped comment operations.
type CommentStore interface {
	ByForum(forumID string) ([]models.Comment, error)
	ForumIDs(forumIDs []string) ([]string, error)
	Insert(c models.Comment) error
	Owner(id string) (ownerID, forumID string, err error)
	Delete(id string) error
	ByUser(userID string) ([]models.Comment, error)
}

// LikeStore covers both like tables. Find methods return (nil, nil) when no
// row exists.
type LikeStore interface {
	FindForumLike(forumID, userID string) (*models.ForumLike, error)
	InsertForumLike(l models.ForumLike) error
	DeleteForumLike(id string) error
	ForumIDs(forumIDs []string) ([]string, error)

	FindCommentLike(commentID, userID string) (*models.CommentLike, error)
	InsertCommentLike(l models.CommentLike) error
	DeleteCommentLike(id string) error
	CommentIDs(commentIDs []string) ([]string, error)
}

// ProfileStore defines profile operations.
type ProfileStore interface {
	ByID(id string) (*models.Profile, error)
	ByIDs(ids []string) ([]models.Profile, error)
	Insert(p models.Profile) error
	Update(id string, username, avatarURL *string) error
	UpdatePreferences(id string, prefs models.NotificationPreferences) error
	AnyID() (string, error)
}

// UserStore is the auth sub-contract: identity lookup and creation. Session
// handling lives in the middleware package.
type UserStore interface {
	ByID(id string) (*models.User, error)
	ByEmail(email string) (*models.User, error)
	Insert(u models.User) error
	// CreateAccount stores the user and its profile atomically; sign-up
	// must never leave a user row without a profile.
	CreateAccount(u models.User, p models.Profile) error
	EmailTaken(email string) (bool, error)
}

// Repos groups the store interfaces for convenience.
type Repos struct {
	Forums   ForumStore
	Comments CommentStore
	Likes    LikeStore
	Profiles ProfileStore
	Users    UserStore
}
