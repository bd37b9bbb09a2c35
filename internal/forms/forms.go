package forms

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// SignupForm is the sign-up request body.
type SignupForm struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

func (f *SignupForm) Trim() {
	f.Email = strings.TrimSpace(f.Email)
	f.Username = strings.TrimSpace(f.Username)
}

// LoginForm is the login request body.
type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (f *LoginForm) Trim() {
	f.Email = strings.TrimSpace(f.Email)
}

// ForumForm is the forum create/update request body. Tags arrive as a
// comma-separated string and are parsed with ParseTags.
type ForumForm struct {
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"required,min=10"`
	Tags        string `json:"tags"`
}

func (f *ForumForm) Trim() {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
}

// CommentForm is the comment create request body.
type CommentForm struct {
	Content string `json:"content" validate:"required,min=3,max=1000"`
}

func (f *CommentForm) Trim() {
	f.Content = strings.TrimSpace(f.Content)
}

// fieldMessages maps struct field + failed rule to the message shown next
// to the field.
var fieldMessages = map[string]string{
	"Email.required":       "Email is required",
	"Email.email":          "Enter a valid email address",
	"Username.required":    "Username is required",
	"Username.min":         "Username must be at least 3 characters",
	"Password.required":    "Password is required",
	"Password.min":         "Password must be at least 6 characters",
	"Title.required":       "Title is required",
	"Title.min":            "Title must be at least 3 characters",
	"Title.max":            "Title must be less than 100 characters",
	"Description.required": "Description is required",
	"Description.min":      "Description must be at least 10 characters",
	"Content.required":     "Comment content is required",
	"Content.min":          "Comment must be at least 3 characters",
	"Content.max":          "Comment cannot exceed 1000 characters",
}

// Validate checks a trimmed form and returns field-keyed messages, or nil
// when the form is valid. Keys are lowercased field names matching the
// JSON body.
func Validate(form interface{}) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"form": "Invalid input"}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		msg, ok := fieldMessages[field+"."+fe.Tag()]
		if !ok {
			msg = "Invalid value"
		}
		out[strings.ToLower(field)] = msg
	}
	return out
}

// ParseTags splits a comma-separated tag string, trims each entry, and
// drops empties. Order is preserved.
func ParseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
