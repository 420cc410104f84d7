package supportersdb

import "errors"

// ErrInvalidSupporter wraps the validation failure of a rejected record.
var ErrInvalidSupporter = errors.New("invalid supporter")
