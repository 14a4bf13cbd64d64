package domain

import "errors"

// Sentinel errors shared across services and repositories. The HTTP error
// handler owns the mapping to status codes.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login responses never reveal which field was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken covers every token verification failure: bad signature,
	// malformed payload, or expired.
	ErrInvalidToken = errors.New("invalid token")

	ErrDuplicateEmail = errors.New("email already exists")

	ErrUserNotFound      = errors.New("user not found")
	ErrDonorNotFound     = errors.New("donor not found")
	ErrBranchNotFound    = errors.New("branch not found")
	ErrProvinceNotFound  = errors.New("province not found")
	ErrBloodTypeNotFound = errors.New("blood type not found")
	ErrCampaignNotFound  = errors.New("no campaigns found")

	ErrForbidden = errors.New("access forbidden")
)
