package forum

import "errors"

var (
	// ErrUnauthenticated means no caller identity was supplied.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrForbidden means the caller is not the owner of the target.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound means the target row is missing or the id is malformed.
	ErrNotFound = errors.New("not found")
)
