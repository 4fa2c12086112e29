package booking

import "errors"

var (
	ErrValidation                 = errors.New("validation error")
	ErrNotAuthenticated           = errors.New("booking requires an authenticated end user")
	ErrSitterUnavailable          = errors.New("sitter missing or inactive")
	ErrServiceNotOffered          = errors.New("service not offered by sitter")
	ErrInvalidDuration            = errors.New("duration must be a positive whole number of hours")
	ErrPastDate                   = errors.New("booking date is in the past")
	ErrInvalidPaymentVerification = errors.New("invalid payment verification number")
	ErrForbidden                  = errors.New("forbidden")
	ErrNotFound                   = errors.New("booking not found")
	ErrInvalidTransition          = errors.New("invalid status transition")
)
