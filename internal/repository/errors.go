package repository

import "errors"

// ErrNotFound is returned when a requested row does not exist. Callers
// check with errors.Is; implementations wrap it with the entity name.
var ErrNotFound = errors.New("not found")
