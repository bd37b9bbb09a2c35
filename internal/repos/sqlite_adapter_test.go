package repos

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/IM-Mukesh/community-forum/internal/database"
	"github.com/IM-Mukesh/community-forum/internal/models"
)

func TestSQLiteReposWiring(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, database.RunMigrations(db))

	r := NewSQLiteRepos(db)

	require.NoError(t, r.Users.Insert(models.User{ID: "u1", Email: "a@example.com", PasswordHash: "x"}))
	require.NoError(t, r.Profiles.Insert(models.Profile{ID: "u1"}))
	require.NoError(t, r.Forums.Insert(models.Forum{
		ID: "f1", Title: "Wired", Description: "adapter round trip", UserID: "u1",
	}))
	require.NoError(t, r.Comments.Insert(models.Comment{ID: "c1", Content: "hi", ForumID: "f1", UserID: "u1"}))
	require.NoError(t, r.Likes.InsertForumLike(models.ForumLike{ID: "l1", ForumID: "f1", UserID: "u1"}))

	f, err := r.Forums.ByID("f1")
	require.NoError(t, err)
	require.Equal(t, "Wired", f.Title)

	owner, forumID, err := r.Comments.Owner("c1")
	require.NoError(t, err)
	require.Equal(t, "u1", owner)
	require.Equal(t, "f1", forumID)

	like, err := r.Likes.FindForumLike("f1", "u1")
	require.NoError(t, err)
	require.NotNil(t, like)

	taken, err := r.Users.EmailTaken("A@EXAMPLE.COM")
	require.NoError(t, err)
	require.True(t, taken)

	id, err := r.Profiles.AnyID()
	require.NoError(t, err)
	require.Equal(t, "u1", id)
}
