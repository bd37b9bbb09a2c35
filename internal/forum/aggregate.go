package forum

import (
	"sort"

	"github.com/IM-Mukesh/community-forum/internal/models"
	"go.uber.org/zap"
)

const defaultPageSize = 12

// ListForums returns one page of forums enriched with author profiles and
// comment/like counts. Every read failure degrades instead of propagating:
// a failed page fetch yields an empty list, a failed auxiliary fetch yields
// nil authors or zero counts.
func (s *Service) ListForums(filter models.ForumFilter) []models.ForumWithAuthor {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}

	forums, err := s.store.Forums.Page(filter)
	if err != nil {
		s.log.Warn("failed to fetch forums", zap.Error(err))
		return []models.ForumWithAuthor{}
	}
	if len(forums) == 0 {
		return []models.ForumWithAuthor{}
	}

	userIDs := make([]string, 0, len(forums))
	seen := make(map[string]bool, len(forums))
	forumIDs := make([]string, 0, len(forums))
	for _, f := range forums {
		forumIDs = append(forumIDs, f.ID)
		if !seen[f.UserID] {
			seen[f.UserID] = true
			userIDs = append(userIDs, f.UserID)
		}
	}

	authors := s.profilesByID(userIDs)

	commentRows, err := s.store.Comments.ForumIDs(forumIDs)
	if err != nil {
		s.log.Warn("failed to fetch comment counts", zap.Error(err))
	}
	likeRows, err := s.store.Likes.ForumIDs(forumIDs)
	if err != nil {
		s.log.Warn("failed to fetch like counts", zap.Error(err))
	}

	commentCounts := countOccurrences(commentRows)
	likeCounts := countOccurrences(likeRows)

	out := make([]models.ForumWithAuthor, 0, len(forums))
	for _, f := range forums {
		out = append(out, models.ForumWithAuthor{
			Forum:  f,
			Author: authors[f.UserID],
			Count: models.ForumCounts{
				Comments: commentCounts[f.ID],
				Likes:    likeCounts[f.ID],
			},
		})
	}
	return out
}

// AllTags returns every distinct tag across all forums, sorted. The scan is
// unbounded; acceptable while the forum table stays small.
func (s *Service) AllTags() []string {
	tagLists, err := s.store.Forums.AllTags()
	if err != nil {
		s.log.Warn("failed to fetch tags", zap.Error(err))
		return []string{}
	}

	seen := make(map[string]bool)
	var tags []string
	for _, list := range tagLists {
		for _, tag := range list {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	if tags == nil {
		tags = []string{}
	}
	return tags
}

// GetForum returns one enriched forum, or nil when the id is malformed, the
// row is missing, or the fetch fails. A malformed id never reaches the
// store.
func (s *Service) GetForum(id string) *models.ForumWithAuthor {
	if !validID(id) {
		s.log.Warn("invalid forum id", zap.String("id", id))
		return nil
	}

	f, err := s.store.Forums.ByID(id)
	if err != nil {
		s.log.Warn("failed to fetch forum", zap.String("id", id), zap.Error(err))
		return nil
	}

	var author *models.Profile
	if p, err := s.store.Profiles.ByID(f.UserID); err != nil {
		s.log.Warn("failed to fetch author", zap.String("user_id", f.UserID), zap.Error(err))
	} else {
		author = p
	}

	commentRows, err := s.store.Comments.ForumIDs([]string{id})
	if err != nil {
		s.log.Warn("failed to fetch comment count", zap.Error(err))
	}
	likeRows, err := s.store.Likes.ForumIDs([]string{id})
	if err != nil {
		s.log.Warn("failed to fetch like count", zap.Error(err))
	}

	return &models.ForumWithAuthor{
		Forum:  *f,
		Author: author,
		Count: models.ForumCounts{
			Comments: len(commentRows),
			Likes:    len(likeRows),
		},
	}
}

// GetComments returns all comments of a forum, oldest first, enriched with
// authors and like counts.
func (s *Service) GetComments(forumID string) []models.CommentWithAuthor {
	comments, err := s.store.Comments.ByForum(forumID)
	if err != nil {
		s.log.Warn("failed to fetch comments", zap.String("forum_id", forumID), zap.Error(err))
		return []models.CommentWithAuthor{}
	}
	if len(comments) == 0 {
		return []models.CommentWithAuthor{}
	}

	userIDs := make([]string, 0, len(comments))
	seen := make(map[string]bool, len(comments))
	commentIDs := make([]string, 0, len(comments))
	for _, c := range comments {
		commentIDs = append(commentIDs, c.ID)
		if !seen[c.UserID] {
			seen[c.UserID] = true
			userIDs = append(userIDs, c.UserID)
		}
	}

	authors := s.profilesByID(userIDs)

	likeRows, err := s.store.Likes.CommentIDs(commentIDs)
	if err != nil {
		s.log.Warn("failed to fetch comment likes", zap.Error(err))
	}
	likeCounts := countOccurrences(likeRows)

	out := make([]models.CommentWithAuthor, 0, len(comments))
	for _, c := range comments {
		out = append(out, models.CommentWithAuthor{
			Comment: c,
			Author:  authors[c.UserID],
			Count:   models.CommentCounts{Likes: likeCounts[c.ID]},
		})
	}
	return out
}

// UserForums lists the caller's own forums, newest first.
func (s *Service) UserForums(userID string) []models.Forum {
	forums, err := s.store.Forums.ByUser(userID)
	if err != nil {
		s.log.Warn("failed to fetch user forums", zap.String("user_id", userID), zap.Error(err))
		return []models.Forum{}
	}
	if forums == nil {
		forums = []models.Forum{}
	}
	return forums
}

// UserComments lists the caller's own comments annotated with forum titles.
// A comment whose forum title cannot be resolved is labeled "Unknown Forum".
func (s *Service) UserComments(userID string) []models.CommentWithForum {
	comments, err := s.store.Comments.ByUser(userID)
	if err != nil {
		s.log.Warn("failed to fetch user comments", zap.String("user_id", userID), zap.Error(err))
		return []models.CommentWithForum{}
	}
	if len(comments) == 0 {
		return []models.CommentWithForum{}
	}

	forumIDs := make([]string, 0, len(comments))
	seen := make(map[string]bool, len(comments))
	for _, c := range comments {
		if !seen[c.ForumID] {
			seen[c.ForumID] = true
			forumIDs = append(forumIDs, c.ForumID)
		}
	}

	titles, err := s.store.Forums.Titles(forumIDs)
	if err != nil {
		s.log.Warn("failed to fetch forum titles", zap.Error(err))
	}

	out := make([]models.CommentWithForum, 0, len(comments))
	for _, c := range comments {
		title, ok := titles[c.ForumID]
		if !ok {
			title = "Unknown Forum"
		}
		out = append(out, models.CommentWithForum{Comment: c, ForumTitle: title})
	}
	return out
}

// profilesByID fetches profiles and keys them by id. A failed fetch yields
// an empty map so callers fall back to nil authors.
func (s *Service) profilesByID(userIDs []string) map[string]*models.Profile {
	byID := make(map[string]*models.Profile, len(userIDs))
	profiles, err := s.store.Profiles.ByIDs(userIDs)
	if err != nil {
		s.log.Warn("failed to fetch profiles", zap.Error(err))
		return byID
	}
	for i := range profiles {
		byID[profiles[i].ID] = &profiles[i]
	}
	return byID
}

func countOccurrences(ids []string) map[string]int {
	counts := make(map[string]int, len(ids))
	for _, id := range ids {
		counts[id]++
	}
	return counts
}
