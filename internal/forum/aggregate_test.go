package forum

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IM-Mukesh/community-forum/internal/models"
)

const (
	forumA = "11111111-1111-1111-1111-111111111111"
	forumB = "22222222-2222-2222-2222-222222222222"
	userA  = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	userB  = "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
)

func strPtr(s string) *string { return &s }

func TestListForumsEnrichesAuthorsAndCounts(t *testing.T) {
	f := newFixture()
	f.forums = []models.Forum{
		{ID: forumA, Title: "First", UserID: userA},
		{ID: forumB, Title: "Second", UserID: userB},
	}
	f.profiles[userA] = models.Profile{ID: userA, Username: strPtr("alice")}
	// userB has no profile row
	f.comments = []models.Comment{
		{ID: "c1", ForumID: forumA, UserID: userB},
		{ID: "c2", ForumID: forumA, UserID: userB},
	}
	f.forumLikes = []models.ForumLike{
		{ID: "l1", ForumID: forumA, UserID: userB},
	}

	out := f.service().ListForums(models.ForumFilter{})
	require.Len(t, out, 2)

	require.NotNil(t, out[0].Author)
	assert.Equal(t, "alice", *out[0].Author.Username)
	assert.Equal(t, 2, out[0].Count.Comments)
	assert.Equal(t, 1, out[0].Count.Likes)

	assert.Nil(t, out[1].Author)
	assert.Equal(t, 0, out[1].Count.Comments)
	assert.Equal(t, 0, out[1].Count.Likes)
}

func TestListForumsFailsOpen(t *testing.T) {
	f := newFixture()
	f.fail("forums.page", errors.New("disk on fire"))

	out := f.service().ListForums(models.ForumFilter{})
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestListForumsSurvivesCountFailures(t *testing.T) {
	f := newFixture()
	f.forums = []models.Forum{{ID: forumA, Title: "First", UserID: userA}}
	f.comments = []models.Comment{{ID: "c1", ForumID: forumA, UserID: userA}}
	f.fail("comments.forumIDs", errors.New("timeout"))
	f.fail("profiles.byIDs", errors.New("timeout"))

	out := f.service().ListForums(models.ForumFilter{})
	require.Len(t, out, 1)
	assert.Nil(t, out[0].Author)
	assert.Equal(t, 0, out[0].Count.Comments)
}

func TestAllTagsDedupesAndSorts(t *testing.T) {
	f := newFixture()
	f.forums = []models.Forum{
		{ID: forumA, UserID: userA, Tags: []string{"web", "go"}},
		{ID: forumB, UserID: userA, Tags: []string{"go", "sqlite"}},
	}

	tags := f.service().AllTags()
	assert.Equal(t, []string{"go", "sqlite", "web"}, tags)
}

func TestAllTagsFailsOpen(t *testing.T) {
	f := newFixture()
	f.fail("forums.allTags", errors.New("no table"))

	tags := f.service().AllTags()
	require.NotNil(t, tags)
	assert.Empty(t, tags)
}

func TestGetForumRejectsMalformedID(t *testing.T) {
	f := newFixture()
	f.forums = []models.Forum{{ID: forumA, UserID: userA}}
	svc := f.service()

	for _, id := range []string{"", "not-a-uuid", "1234", forumA + "x", "11111111-1111-1111-1111-11111111111g"} {
		assert.Nil(t, svc.GetForum(id), "id %q", id)
	}
	// malformed ids never reach the store
	assert.Equal(t, 0, f.forumByIDCalls)
}

func TestGetForumEnriched(t *testing.T) {
	f := newFixture()
	f.forums = []models.Forum{{ID: forumA, Title: "First", UserID: userA}}
	f.profiles[userA] = models.Profile{ID: userA, Username: strPtr("alice")}
	f.comments = []models.Comment{{ID: "c1", ForumID: forumA, UserID: userB}}
	f.forumLikes = []models.ForumLike{
		{ID: "l1", ForumID: forumA, UserID: userA},
		{ID: "l2", ForumID: forumA, UserID: userB},
	}

	got := f.service().GetForum(forumA)
	require.NotNil(t, got)
	assert.Equal(t, "First", got.Title)
	require.NotNil(t, got.Author)
	assert.Equal(t, "alice", *got.Author.Username)
	assert.Equal(t, 1, got.Count.Comments)
	assert.Equal(t, 2, got.Count.Likes)
}

func TestGetForumMissingRow(t *testing.T) {
	f := newFixture()
	assert.Nil(t, f.service().GetForum(forumA))
}

func TestGetCommentsEnriched(t *testing.T) {
	f := newFixture()
	f.comments = []models.Comment{
		{ID: "c1", Content: "first", ForumID: forumA, UserID: userA},
		{ID: "c2", Content: "second", ForumID: forumA, UserID: userB},
	}
	f.profiles[userA] = models.Profile{ID: userA, Username: strPtr("alice")}
	f.commentLikes = []models.CommentLike{
		{ID: "cl1", CommentID: "c2", UserID: userA},
	}

	out := f.service().GetComments(forumA)
	require.Len(t, out, 2)
	require.NotNil(t, out[0].Author)
	assert.Equal(t, 0, out[0].Count.Likes)
	assert.Nil(t, out[1].Author)
	assert.Equal(t, 1, out[1].Count.Likes)
}

func TestGetCommentsFailsOpen(t *testing.T) {
	f := newFixture()
	f.fail("comments.byForum", errors.New("gone"))

	out := f.service().GetComments(forumA)
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestUserCommentsLabelsMissingForums(t *testing.T) {
	f := newFixture()
	f.forums = []models.Forum{{ID: forumA, Title: "Still here", UserID: userA}}
	f.comments = []models.Comment{
		{ID: "c1", Content: "kept", ForumID: forumA, UserID: userB},
		{ID: "c2", Content: "orphaned", ForumID: forumB, UserID: userB},
	}

	out := f.service().UserComments(userB)
	require.Len(t, out, 2)
	assert.Equal(t, "Still here", out[0].ForumTitle)
	assert.Equal(t, "Unknown Forum", out[1].ForumTitle)
}

func TestUserForumsFailsOpen(t *testing.T) {
	f := newFixture()
	f.fail("forums.byUser", errors.New("gone"))

	out := f.service().UserForums(userA)
	require.NotNil(t, out)
	assert.Empty(t, out)
}
