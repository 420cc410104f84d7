package ratingsdb

import "errors"

// ErrInvalidEntry is returned when an entry that bypassed validation reaches the store.
var ErrInvalidEntry = errors.New("entry violates store invariants")
