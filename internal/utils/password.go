package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt rejects inputs longer than 72 bytes.
const maxPasswordLen = 72

// HashPassword hashes a password with bcrypt at the default cost.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	if len(password) > maxPasswordLen {
		return "", errors.New("password too long (max 72 characters)")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether a password matches the stored hash.
// Returns nil on a match.
func VerifyPassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return errors.New("password cannot be empty")
	}
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
