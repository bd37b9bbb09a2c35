package forum

import (
	"database/sql"
	"fmt"

	"github.com/IM-Mukesh/community-forum/internal/models"
	"github.com/IM-Mukesh/community-forum/internal/utils"
	"github.com/google/uuid"
)

var sampleForums = []ForumInput{
	{
		Title:       "Welcome to Forum App",
		Description: "This is the first forum post in our application. Feel free to explore the features and start discussions!",
		Tags:        []string{"welcome", "introduction", "getting-started"},
	},
	{
		Title:       "How to use Markdown in comments",
		Description: "Did you know you can use Markdown formatting in your comments? This post explains the basics of Markdown syntax.",
		Tags:        []string{"markdown", "formatting", "tips"},
	},
	{
		Title:       "Feature Request: Dark Mode",
		Description: "I think it would be great if the app had a dark mode option. What do you think? Would you use dark mode if it was available?",
		Tags:        []string{"feature-request", "dark-mode", "ui"},
	},
	{
		Title:       "Introducing yourself",
		Description: "Use this thread to introduce yourself to the community. Tell us about your interests and background!",
		Tags:        []string{"introductions", "community"},
	},
	{
		Title:       "Bug Report: Mobile Navigation",
		Description: "I've noticed some issues with the mobile navigation menu. Sometimes it doesn't close properly after selecting an option.",
		Tags:        []string{"bug", "mobile", "navigation"},
	},
}

// SeedForums inserts the sample forums when the forums table is empty. An
// existing profile is reused as the author; otherwise a test account is
// created. Returns true when seeding actually ran.
func (s *Service) SeedForums() (bool, error) {
	exists, err := s.store.Forums.Any()
	if err != nil {
		return false, fmt.Errorf("check existing forums: %w", err)
	}
	if exists {
		return false, nil
	}

	userID, err := s.store.Profiles.AnyID()
	if err == sql.ErrNoRows {
		userID, err = s.createSeedUser()
	}
	if err != nil {
		return false, fmt.Errorf("resolve seed user: %w", err)
	}

	for _, in := range sampleForums {
		f := models.Forum{
			ID:          uuid.NewString(),
			Title:       in.Title,
			Description: in.Description,
			Tags:        in.Tags,
			UserID:      userID,
		}
		if err := s.store.Forums.Insert(f); err != nil {
			return false, fmt.Errorf("seed forums: %w", err)
		}
	}

	s.rev.Revalidate("/")
	return true, nil
}

func (s *Service) createSeedUser() (string, error) {
	hash, err := utils.HashPassword("password123")
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	if err := s.store.Users.Insert(models.User{
		ID:           id,
		Email:        "test@example.com",
		PasswordHash: hash,
	}); err != nil {
		return "", err
	}

	username := "TestUser"
	avatar := "https://ui-avatars.com/api/?name=TestUser&background=random"
	if err := s.store.Profiles.Insert(models.Profile{
		ID:        id,
		Username:  &username,
		AvatarURL: &avatar,
	}); err != nil {
		return "", err
	}
	return id, nil
}
