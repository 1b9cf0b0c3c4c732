package core

import "errors"

// ErrValidation is the base error for request payloads rejected before any
// write is attempted. Services wrap it with the offending field so handlers
// can match with errors.Is and return 400.
var ErrValidation = errors.New("validation failed")

// ErrAliadoNotFound is returned when an ally referenced by aliadoId does
// not exist.
var ErrAliadoNotFound = errors.New("aliado not found")
