package repos

import (
	"database/sql"

	"github.com/IM-Mukesh/community-forum/internal/database"
	"github.com/IM-Mukesh/community-forum/internal/models"
)

// NewSQLiteRepos wires every store interface to the database package over a
// shared connection.
func NewSQLiteRepos(db *sql.DB) *Repos {
	return &Repos{
		Forums:   &forumSQLite{db},
		Comments: &commentSQLite{db},
		Likes:    &likeSQLite{db},
		Profiles: &profileSQLite{db},
		Users:    &userSQLite{db},
	}
}

type forumSQLite struct{ db *sql.DB }

func (s *forumSQLite) Page(filter models.ForumFilter) ([]models.Forum, error) {
	return database.GetForumsPage(s.db, filter)
}

func (s *forumSQLite) ByID(id string) (*models.Forum, error) {
	return database.GetForumByID(s.db, id)
}

func (s *forumSQLite) Owner(id string) (string, error) {
	return database.GetForumOwner(s.db, id)
}

func (s *forumSQLite) Insert(f models.Forum) error {
	return database.InsertForum(s.db, f)
}

func (s *forumSQLite) Update(id, title, description string, tags []string) error {
	return database.UpdateForum(s.db, id, title, description, tags)
}

func (s *forumSQLite) Delete(id string) error {
	return database.DeleteForum(s.db, id)
}

func (s *forumSQLite) AllTags() ([][]string, error) {
	return database.GetAllForumTags(s.db)
}

func (s *forumSQLite) ByUser(userID string) ([]models.Forum, error) {
	return database.GetForumsByUserID(s.db, userID)
}

func (s *forumSQLite) Titles(ids []string) (map[string]string, error) {
	return database.GetForumTitles(s.db, ids)
}

func (s *forumSQLite) Any() (bool, error) {
	return database.ForumsExist(s.db)
}

type commentSQLite struct{ db *sql.DB }

func (s *commentSQLite) ByForum(forumID string) ([]models.Comment, error) {
	return database.GetCommentsByForumID(s.db, forumID)
}

func (s *commentSQLite) ForumIDs(forumIDs []string) ([]string, error) {
	return database.GetCommentForumIDs(s.db, forumIDs)
}

func (s *commentSQLite) Insert(c models.Comment) error {
	return database.InsertComment(s.db, c)
}

func (s *commentSQLite) Owner(id string) (string, string, error) {
	return database.GetCommentOwner(s.db, id)
}

func (s *commentSQLite) Delete(id string) error {
	return database.DeleteComment(s.db, id)
}

func (s *commentSQLite) ByUser(userID string) ([]models.Comment, error) {
	return database.GetCommentsByUserID(s.db, userID)
}

type likeSQLite struct{ db *sql.DB }

func (s *likeSQLite) FindForumLike(forumID, userID string) (*models.ForumLike, error) {
	return database.FindForumLike(s.db, forumID, userID)
}

func (s *likeSQLite) InsertForumLike(l models.ForumLike) error {
	return database.InsertForumLike(s.db, l)
}

func (s *likeSQLite) DeleteForumLike(id string) error {
	return database.DeleteForumLike(s.db, id)
}

func (s *likeSQLite) ForumIDs(forumIDs []string) ([]string, error) {
	return database.GetForumLikeForumIDs(s.db, forumIDs)
}

func (s *likeSQLite) FindCommentLike(commentID, userID string) (*models.CommentLike, error) {
	return database.FindCommentLike(s.db, commentID, userID)
}

func (s *likeSQLite) InsertCommentLike(l models.CommentLike) error {
	return database.InsertCommentLike(s.db, l)
}

func (s *likeSQLite) DeleteCommentLike(id string) error {
	return database.DeleteCommentLike(s.db, id)
}

func (s *likeSQLite) CommentIDs(commentIDs []string) ([]string, error) {
	return database.GetCommentLikeCommentIDs(s.db, commentIDs)
}

type profileSQLite struct{ db *sql.DB }

func (s *profileSQLite) ByID(id string) (*models.Profile, error) {
	return database.GetProfileByID(s.db, id)
}

func (s *profileSQLite) ByIDs(ids []string) ([]models.Profile, error) {
	return database.GetProfilesByIDs(s.db, ids)
}

func (s *profileSQLite) Insert(p models.Profile) error {
	return database.InsertProfile(s.db, p)
}

func (s *profileSQLite) Update(id string, username, avatarURL *string) error {
	return database.UpdateProfile(s.db, id, username, avatarURL)
}

func (s *profileSQLite) UpdatePreferences(id string, prefs models.NotificationPreferences) error {
	return database.UpdateNotificationPreferences(s.db, id, prefs)
}

func (s *profileSQLite) AnyID() (string, error) {
	return database.GetAnyProfileID(s.db)
}

type userSQLite struct{ db *sql.DB }

func (s *userSQLite) ByID(id string) (*models.User, error) {
	return database.GetUserByID(s.db, id)
}

func (s *userSQLite) ByEmail(email string) (*models.User, error) {
	return database.GetUserByEmail(s.db, email)
}

func (s *userSQLite) Insert(u models.User) error {
	return database.InsertUser(s.db, u)
}

func (s *userSQLite) CreateAccount(u models.User, p models.Profile) error {
	return database.InsertUserWithProfile(s.db, u, p)
}

func (s *userSQLite) EmailTaken(email string) (bool, error) {
	return database.EmailExists(s.db, email)
}
