package forum

import (
	"database/sql"
	"fmt"

	"github.com/IM-Mukesh/community-forum/internal/mailer"
	"github.com/IM-Mukesh/community-forum/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ForumInput carries the validated fields of a forum create/update.
type ForumInput struct {
	Title       string
	Description string
	Tags        []string
}

// CreateForum stores a new forum owned by the caller.
func (s *Service) CreateForum(callerID string, in ForumInput) (*models.Forum, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}

	f := models.Forum{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Tags:        in.Tags,
		UserID:      callerID,
	}
	if err := s.store.Forums.Insert(f); err != nil {
		return nil, fmt.Errorf("create forum: %w", err)
	}

	s.rev.Revalidate("/")
	return &f, nil
}

// UpdateForum rewrites a forum's mutable fields. Only the owner may call
// it.
func (s *Service) UpdateForum(callerID, id string, in ForumInput) error {
	if callerID == "" {
		return ErrUnauthenticated
	}
	if err := s.requireForumOwner(callerID, id); err != nil {
		return err
	}

	if err := s.store.Forums.Update(id, in.Title, in.Description, in.Tags); err != nil {
		return fmt.Errorf("update forum: %w", err)
	}

	s.rev.Revalidate("/forums/" + id)
	return nil
}

// DeleteForum removes a forum and everything under it. Only the owner may
// call it.
func (s *Service) DeleteForum(callerID, id string) error {
	if callerID == "" {
		return ErrUnauthenticated
	}
	if err := s.requireForumOwner(callerID, id); err != nil {
		return err
	}

	if err := s.store.Forums.Delete(id); err != nil {
		return fmt.Errorf("delete forum: %w", err)
	}

	s.rev.Revalidate("/")
	return nil
}

// ToggleForumLike flips the caller's like membership on a forum: one
// existing row is removed, or one new row is created. The returned bool is
// the resulting membership.
func (s *Service) ToggleForumLike(callerID, forumID string) (bool, error) {
	if callerID == "" {
		return false, ErrUnauthenticated
	}
	if !validID(forumID) {
		return false, ErrNotFound
	}
	if _, err := s.store.Forums.Owner(forumID); err != nil {
		if err == sql.ErrNoRows {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("check forum: %w", err)
	}

	existing, err := s.store.Likes.FindForumLike(forumID, callerID)
	if err != nil {
		return false, fmt.Errorf("check forum like: %w", err)
	}

	liked := false
	if existing != nil {
		if err := s.store.Likes.DeleteForumLike(existing.ID); err != nil {
			return false, fmt.Errorf("unlike forum: %w", err)
		}
	} else {
		like := models.ForumLike{ID: uuid.NewString(), ForumID: forumID, UserID: callerID}
		if err := s.store.Likes.InsertForumLike(like); err != nil {
			return false, fmt.Errorf("like forum: %w", err)
		}
		liked = true
	}

	s.rev.Revalidate("/forums/" + forumID)
	return liked, nil
}

// CreateComment stores a new comment and, when the commenter is not the
// forum owner and the owner has email notifications enabled, makes exactly
// one notification attempt. The second return value reports whether a
// notification went out; notification failures never fail the comment.
func (s *Service) CreateComment(callerID, forumID, content string) (*models.Comment, bool, error) {
	if callerID == "" {
		return nil, false, ErrUnauthenticated
	}
	if !validID(forumID) {
		return nil, false, ErrNotFound
	}

	c := models.Comment{
		ID:      uuid.NewString(),
		Content: content,
		ForumID: forumID,
		UserID:  callerID,
	}
	if err := s.store.Comments.Insert(c); err != nil {
		return nil, false, fmt.Errorf("create comment: %w", err)
	}

	notified := s.notifyForumOwner(forumID, callerID, content)

	s.rev.Revalidate("/forums/" + forumID)
	return &c, notified, nil
}

// DeleteComment removes a comment. Only the comment's author may call it.
// The parent forum id is returned so the handler can answer with the path
// to return to.
func (s *Service) DeleteComment(callerID, commentID string) (string, error) {
	if callerID == "" {
		return "", ErrUnauthenticated
	}

	owner, forumID, err := s.store.Comments.Owner(commentID)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("fetch comment: %w", err)
	}
	if owner != callerID {
		return "", ErrForbidden
	}

	if err := s.store.Comments.Delete(commentID); err != nil {
		return "", fmt.Errorf("delete comment: %w", err)
	}

	s.rev.Revalidate("/forums/" + forumID)
	return forumID, nil
}

// ToggleCommentLike mirrors ToggleForumLike for comments.
func (s *Service) ToggleCommentLike(callerID, commentID string) (bool, error) {
	if callerID == "" {
		return false, ErrUnauthenticated
	}

	_, forumID, err := s.store.Comments.Owner(commentID)
	if err == sql.ErrNoRows {
		return false, ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("check comment: %w", err)
	}

	existing, err := s.store.Likes.FindCommentLike(commentID, callerID)
	if err != nil {
		return false, fmt.Errorf("check comment like: %w", err)
	}

	liked := false
	if existing != nil {
		if err := s.store.Likes.DeleteCommentLike(existing.ID); err != nil {
			return false, fmt.Errorf("unlike comment: %w", err)
		}
	} else {
		like := models.CommentLike{ID: uuid.NewString(), CommentID: commentID, UserID: callerID}
		if err := s.store.Likes.InsertCommentLike(like); err != nil {
			return false, fmt.Errorf("like comment: %w", err)
		}
		liked = true
	}

	s.rev.Revalidate("/forums/" + forumID)
	return liked, nil
}

// UpdateProfile rewrites the caller's own username and avatar.
func (s *Service) UpdateProfile(callerID string, username, avatarURL *string) error {
	if callerID == "" {
		return ErrUnauthenticated
	}
	if err := s.store.Profiles.Update(callerID, username, avatarURL); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	s.rev.Revalidate("/profile")
	return nil
}

// UpdateNotificationPreferences replaces the caller's preference blob.
func (s *Service) UpdateNotificationPreferences(callerID string, prefs models.NotificationPreferences) error {
	if callerID == "" {
		return ErrUnauthenticated
	}
	if err := s.store.Profiles.UpdatePreferences(callerID, prefs); err != nil {
		return fmt.Errorf("update notification preferences: %w", err)
	}
	s.rev.Revalidate("/profile")
	return nil
}

func (s *Service) requireForumOwner(callerID, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	owner, err := s.store.Forums.Owner(id)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("fetch forum: %w", err)
	}
	if owner != callerID {
		return ErrForbidden
	}
	return nil
}

// notifyForumOwner resolves the forum owner's email and preference and
// makes at most one send attempt. Every failure along the way is logged and
// swallowed.
func (s *Service) notifyForumOwner(forumID, commenterID, content string) bool {
	f, err := s.store.Forums.ByID(forumID)
	if err != nil {
		s.log.Warn("failed to fetch forum for notification", zap.String("forum_id", forumID), zap.Error(err))
		return false
	}
	if f.UserID == commenterID {
		return false
	}

	owner, err := s.store.Users.ByID(f.UserID)
	if err != nil || owner.Email == "" {
		s.log.Warn("failed to resolve forum owner email", zap.String("user_id", f.UserID), zap.Error(err))
		return false
	}

	ownerProfile, err := s.store.Profiles.ByID(f.UserID)
	if err != nil {
		// Missing profile defaults to notifications enabled.
		s.log.Warn("failed to fetch owner profile", zap.String("user_id", f.UserID), zap.Error(err))
		ownerProfile = nil
	}
	if !ownerProfile.EmailNotificationsEnabled() {
		return false
	}

	commenterName := "A user"
	if p, err := s.store.Profiles.ByID(commenterID); err == nil {
		commenterName = p.DisplayName()
	}

	email := mailer.CommentNotification(mailer.CommentNotificationInput{
		AppURL:         s.appURL,
		ForumID:        forumID,
		ForumTitle:     f.Title,
		CommentAuthor:  commenterName,
		CommentContent: content,
		RecipientEmail: owner.Email,
	})
	if err := s.mailer.Send(email); err != nil {
		s.log.Warn("failed to send comment notification", zap.String("to", owner.Email), zap.Error(err))
		return false
	}
	return true
}
