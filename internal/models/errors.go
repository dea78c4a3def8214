package models

import "errors"

// Storage errors returned by repositories when a unique constraint rejects a write.
var (
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateUsername = errors.New("username already exists")
)
