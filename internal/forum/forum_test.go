package forum

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/IM-Mukesh/community-forum/internal/mailer"
	"github.com/IM-Mukesh/community-forum/internal/models"
	"github.com/IM-Mukesh/community-forum/internal/repos"
)

// fixture is an in-memory store shared by the per-interface fakes. Any
// operation can be forced to fail by name via the failing map.
type fixture struct {
	forums       []models.Forum
	comments     []models.Comment
	forumLikes   []models.ForumLike
	commentLikes []models.CommentLike
	profiles     map[string]models.Profile
	users        map[string]models.User

	failing map[string]error

	forumByIDCalls int

	sent    []mailer.Email
	sendErr error

	revalidated []string
}

func newFixture() *fixture {
	return &fixture{
		profiles: make(map[string]models.Profile),
		users:    make(map[string]models.User),
		failing:  make(map[string]error),
	}
}

func (f *fixture) fail(op string, err error) { f.failing[op] = err }

func (f *fixture) service() *Service {
	store := &repos.Repos{
		Forums:   &fakeForums{f},
		Comments: &fakeComments{f},
		Likes:    &fakeLikes{f},
		Profiles: &fakeProfiles{f},
		Users:    &fakeUsers{f},
	}
	return NewService(store, &fakeMailer{f}, &recorderRev{f}, zap.NewNop(), "http://app.test")
}

type fakeForums struct{ f *fixture }

func (s *fakeForums) Page(models.ForumFilter) ([]models.Forum, error) {
	if err := s.f.failing["forums.page"]; err != nil {
		return nil, err
	}
	return s.f.forums, nil
}

func (s *fakeForums) ByID(id string) (*models.Forum, error) {
	s.f.forumByIDCalls++
	if err := s.f.failing["forums.byID"]; err != nil {
		return nil, err
	}
	for i := range s.f.forums {
		if s.f.forums[i].ID == id {
			return &s.f.forums[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *fakeForums) Owner(id string) (string, error) {
	if err := s.f.failing["forums.owner"]; err != nil {
		return "", err
	}
	for _, fo := range s.f.forums {
		if fo.ID == id {
			return fo.UserID, nil
		}
	}
	return "", sql.ErrNoRows
}

func (s *fakeForums) Insert(fo models.Forum) error {
	if err := s.f.failing["forums.insert"]; err != nil {
		return err
	}
	s.f.forums = append(s.f.forums, fo)
	return nil
}

func (s *fakeForums) Update(id, title, description string, tags []string) error {
	for i := range s.f.forums {
		if s.f.forums[i].ID == id {
			s.f.forums[i].Title = title
			s.f.forums[i].Description = description
			s.f.forums[i].Tags = tags
		}
	}
	return nil
}

func (s *fakeForums) Delete(id string) error {
	out := s.f.forums[:0]
	for _, fo := range s.f.forums {
		if fo.ID != id {
			out = append(out, fo)
		}
	}
	s.f.forums = out
	return nil
}

func (s *fakeForums) AllTags() ([][]string, error) {
	if err := s.f.failing["forums.allTags"]; err != nil {
		return nil, err
	}
	var out [][]string
	for _, fo := range s.f.forums {
		out = append(out, fo.Tags)
	}
	return out, nil
}

func (s *fakeForums) ByUser(userID string) ([]models.Forum, error) {
	if err := s.f.failing["forums.byUser"]; err != nil {
		return nil, err
	}
	var out []models.Forum
	for _, fo := range s.f.forums {
		if fo.UserID == userID {
			out = append(out, fo)
		}
	}
	return out, nil
}

func (s *fakeForums) Titles(ids []string) (map[string]string, error) {
	if err := s.f.failing["forums.titles"]; err != nil {
		return nil, err
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	titles := make(map[string]string)
	for _, fo := range s.f.forums {
		if want[fo.ID] {
			titles[fo.ID] = fo.Title
		}
	}
	return titles, nil
}

func (s *fakeForums) Any() (bool, error) {
	if err := s.f.failing["forums.any"]; err != nil {
		return false, err
	}
	return len(s.f.forums) > 0, nil
}

type fakeComments struct{ f *fixture }

func (s *fakeComments) ByForum(forumID string) ([]models.Comment, error) {
	if err := s.f.failing["comments.byForum"]; err != nil {
		return nil, err
	}
	var out []models.Comment
	for _, c := range s.f.comments {
		if c.ForumID == forumID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *fakeComments) ForumIDs(forumIDs []string) ([]string, error) {
	if err := s.f.failing["comments.forumIDs"]; err != nil {
		return nil, err
	}
	want := make(map[string]bool, len(forumIDs))
	for _, id := range forumIDs {
		want[id] = true
	}
	var out []string
	for _, c := range s.f.comments {
		if want[c.ForumID] {
			out = append(out, c.ForumID)
		}
	}
	return out, nil
}

func (s *fakeComments) Insert(c models.Comment) error {
	if err := s.f.failing["comments.insert"]; err != nil {
		return err
	}
	s.f.comments = append(s.f.comments, c)
	return nil
}

func (s *fakeComments) Owner(id string) (string, string, error) {
	for _, c := range s.f.comments {
		if c.ID == id {
			return c.UserID, c.ForumID, nil
		}
	}
	return "", "", sql.ErrNoRows
}

func (s *fakeComments) Delete(id string) error {
	out := s.f.comments[:0]
	for _, c := range s.f.comments {
		if c.ID != id {
			out = append(out, c)
		}
	}
	s.f.comments = out
	return nil
}

func (s *fakeComments) ByUser(userID string) ([]models.Comment, error) {
	if err := s.f.failing["comments.byUser"]; err != nil {
		return nil, err
	}
	var out []models.Comment
	for _, c := range s.f.comments {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeLikes struct{ f *fixture }

func (s *fakeLikes) FindForumLike(forumID, userID string) (*models.ForumLike, error) {
	if err := s.f.failing["likes.findForum"]; err != nil {
		return nil, err
	}
	for i := range s.f.forumLikes {
		l := s.f.forumLikes[i]
		if l.ForumID == forumID && l.UserID == userID {
			return &l, nil
		}
	}
	return nil, nil
}

func (s *fakeLikes) InsertForumLike(l models.ForumLike) error {
	s.f.forumLikes = append(s.f.forumLikes, l)
	return nil
}

func (s *fakeLikes) DeleteForumLike(id string) error {
	out := s.f.forumLikes[:0]
	for _, l := range s.f.forumLikes {
		if l.ID != id {
			out = append(out, l)
		}
	}
	s.f.forumLikes = out
	return nil
}

func (s *fakeLikes) ForumIDs(forumIDs []string) ([]string, error) {
	if err := s.f.failing["likes.forumIDs"]; err != nil {
		return nil, err
	}
	want := make(map[string]bool, len(forumIDs))
	for _, id := range forumIDs {
		want[id] = true
	}
	var out []string
	for _, l := range s.f.forumLikes {
		if want[l.ForumID] {
			out = append(out, l.ForumID)
		}
	}
	return out, nil
}

func (s *fakeLikes) FindCommentLike(commentID, userID string) (*models.CommentLike, error) {
	if err := s.f.failing["likes.findComment"]; err != nil {
		return nil, err
	}
	for i := range s.f.commentLikes {
		l := s.f.commentLikes[i]
		if l.CommentID == commentID && l.UserID == userID {
			return &l, nil
		}
	}
	return nil, nil
}

func (s *fakeLikes) InsertCommentLike(l models.CommentLike) error {
	s.f.commentLikes = append(s.f.commentLikes, l)
	return nil
}

func (s *fakeLikes) DeleteCommentLike(id string) error {
	out := s.f.commentLikes[:0]
	for _, l := range s.f.commentLikes {
		if l.ID != id {
			out = append(out, l)
		}
	}
	s.f.commentLikes = out
	return nil
}

func (s *fakeLikes) CommentIDs(commentIDs []string) ([]string, error) {
	if err := s.f.failing["likes.commentIDs"]; err != nil {
		return nil, err
	}
	want := make(map[string]bool, len(commentIDs))
	for _, id := range commentIDs {
		want[id] = true
	}
	var out []string
	for _, l := range s.f.commentLikes {
		if want[l.CommentID] {
			out = append(out, l.CommentID)
		}
	}
	return out, nil
}

type fakeProfiles struct{ f *fixture }

func (s *fakeProfiles) ByID(id string) (*models.Profile, error) {
	if err := s.f.failing["profiles.byID"]; err != nil {
		return nil, err
	}
	p, ok := s.f.profiles[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &p, nil
}

func (s *fakeProfiles) ByIDs(ids []string) ([]models.Profile, error) {
	if err := s.f.failing["profiles.byIDs"]; err != nil {
		return nil, err
	}
	var out []models.Profile
	for _, id := range ids {
		if p, ok := s.f.profiles[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakeProfiles) Insert(p models.Profile) error {
	s.f.profiles[p.ID] = p
	return nil
}

func (s *fakeProfiles) Update(id string, username, avatarURL *string) error {
	p := s.f.profiles[id]
	p.ID = id
	if username != nil {
		p.Username = username
	}
	if avatarURL != nil {
		p.AvatarURL = avatarURL
	}
	s.f.profiles[id] = p
	return nil
}

func (s *fakeProfiles) UpdatePreferences(id string, prefs models.NotificationPreferences) error {
	p := s.f.profiles[id]
	p.ID = id
	p.NotificationPreferences = &prefs
	s.f.profiles[id] = p
	return nil
}

func (s *fakeProfiles) AnyID() (string, error) {
	for id := range s.f.profiles {
		return id, nil
	}
	return "", sql.ErrNoRows
}

type fakeUsers struct{ f *fixture }

func (s *fakeUsers) ByID(id string) (*models.User, error) {
	if err := s.f.failing["users.byID"]; err != nil {
		return nil, err
	}
	u, ok := s.f.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &u, nil
}

func (s *fakeUsers) ByEmail(email string) (*models.User, error) {
	for _, u := range s.f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *fakeUsers) Insert(u models.User) error {
	s.f.users[u.ID] = u
	return nil
}

func (s *fakeUsers) CreateAccount(u models.User, p models.Profile) error {
	s.f.users[u.ID] = u
	s.f.profiles[p.ID] = p
	return nil
}

func (s *fakeUsers) EmailTaken(email string) (bool, error) {
	_, err := s.ByEmail(email)
	return err == nil, nil
}

type fakeMailer struct{ f *fixture }

func (m *fakeMailer) Send(e mailer.Email) error {
	if m.f.sendErr != nil {
		return m.f.sendErr
	}
	m.f.sent = append(m.f.sent, e)
	return nil
}

type recorderRev struct{ f *fixture }

func (r *recorderRev) Revalidate(path string) {
	r.f.revalidated = append(r.f.revalidated, path)
}
