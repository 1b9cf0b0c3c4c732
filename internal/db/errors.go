package db

import "errors"

// ErrNotFound is returned when a document lookup by ID misses. Repositories
// wrap it with entity context so callers can match with errors.Is.
var ErrNotFound = errors.New("document not found")
