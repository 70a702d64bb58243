package common

import "errors"

// Failure taxonomy shared by all services. Handlers translate these into HTTP
// statuses in one place; nothing below the delivery layer knows about HTTP.
var (
	ErrValidation          = errors.New("validation failed")
	ErrDuplicateUser       = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrUpstreamUnavailable = errors.New("upstream job api unavailable")
	ErrMisconfigured       = errors.New("server misconfigured")
	ErrInternal            = errors.New("internal error")
)
