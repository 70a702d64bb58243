package interfaces

import (
	"context"

	"quickhire/internal/application/command"
	"quickhire/internal/application/query"
)

type AuthService interface {
	Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	// Logout destroys the session behind the token; unknown tokens are a no-op.
	Logout(ctx context.Context, sessionToken string) error
	// ResolveSession maps a session token back to the owning email.
	// Returns common.ErrUnauthorized when the token is unknown or expired.
	ResolveSession(ctx context.Context, sessionToken string) (string, error)
	// Profile loads the stored user behind a session email. A session whose
	// user no longer exists resolves to common.ErrUnauthorized.
	Profile(ctx context.Context, email string) (*query.UserQueryResult, error)
}
