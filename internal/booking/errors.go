package booking

import "errors"

// Sentinel errors surfaced to the presentation layer. Match with errors.Is;
// none of them are fatal, the session returns to its previous screen.
var (
	ErrValidation         = errors.New("all fields are required")
	ErrDuplicateAccount   = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmptyOrder         = errors.New("no tickets added to the order")
	ErrNotFound           = errors.New("not found")
	ErrNoSession          = errors.New("no customer is logged in")
)
