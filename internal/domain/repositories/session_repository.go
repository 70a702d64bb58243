package repositories

import "context"

// SessionRepository is the narrow session-registry contract: opaque token in,
// authenticated email out. Implementations are interchangeable (in-memory for
// a single process, Redis when the deployment is scaled out).
type SessionRepository interface {
	// Create mints an unguessable token bound to the given email.
	Create(ctx context.Context, email string) (string, error)
	// Resolve returns the email behind a token, or "" with a nil error when the
	// token is unknown or expired.
	Resolve(ctx context.Context, token string) (string, error)
	// Destroy is idempotent; destroying an unknown token is not an error.
	Destroy(ctx context.Context, token string) error
}
