package user

import "errors"

// ErrDuplicateEmail is returned when the store's uniqueness constraint on
// the lead email rejects an insert. Surfacing the constraint instead of
// pre-checking avoids check-then-act races.
var ErrDuplicateEmail = errors.New("email already exists")

// ErrInvalidBeacon is returned when a tracking beacon is missing its session
// id or page path.
var ErrInvalidBeacon = errors.New("invalid tracking beacon")
