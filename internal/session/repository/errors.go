package repository

import "errors"

// ErrDuplicateID is returned by Create when a session with the same id already exists.
var ErrDuplicateID = errors.New("session id already exists")
