package services

import (
	"context"
	"fmt"
	"strings"

	"quickhire/internal/application/command"
	"quickhire/internal/application/common"
	"quickhire/internal/application/interfaces"
	"quickhire/internal/application/mapper"
	"quickhire/internal/application/query"
	"quickhire/internal/domain/entities"
	"quickhire/internal/domain/repositories"
	"quickhire/internal/infrastructure"
)

// dummyPasswordHash is well formed but matches no password. Login verifies
// against it when the email is unknown.
var dummyPasswordHash = strings.Repeat("0", 32) + ":" + strings.Repeat("0", 128)

type AuthService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	hasher      *infrastructure.PasswordHasher
}

func NewAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	hasher *infrastructure.PasswordHasher,
) interfaces.AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
	}
}

func (s *AuthService) Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	if registerCommand.Email == "" || registerCommand.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	passwordHash, err := s.hasher.Hash(registerCommand.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: hashing password: %v", common.ErrInternal, err)
	}

	newUser := entities.NewUser(registerCommand.Email, passwordHash)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	// No duplicate pre-check here: the store's unique constraint is the only
	// authority, so two racing registrations cannot both get through.
	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	return &command.RegisterUserCommandResult{
		Result:      mapper.NewUserResultFromEntity(createdUser),
		RedirectUrl: "/login",
	}, nil
}

func (s *AuthService) Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	if loginCommand.Email == "" || loginCommand.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	user, err := s.userRepo.FindByEmail(ctx, loginCommand.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: looking up user: %v", common.ErrInternal, err)
	}
	// Unknown email and wrong password must be indistinguishable to the
	// caller, otherwise login becomes a user-enumeration oracle. That holds
	// for response time too, so a miss still pays for a full derivation.
	if user == nil {
		s.hasher.Verify(loginCommand.Password, dummyPasswordHash)
		return nil, common.ErrInvalidCredentials
	}
	if !s.hasher.Verify(loginCommand.Password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.sessionRepo.Create(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: creating session: %v", common.ErrInternal, err)
	}

	return &command.LoginUserCommandResult{
		SessionToken: token,
		RedirectUrl:  "/dashboard",
		User:         mapper.NewUserResultFromEntity(user),
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionToken string) error {
	if sessionToken == "" {
		return nil
	}
	return s.sessionRepo.Destroy(ctx, sessionToken)
}

func (s *AuthService) ResolveSession(ctx context.Context, sessionToken string) (string, error) {
	if sessionToken == "" {
		return "", common.ErrUnauthorized
	}
	email, err := s.sessionRepo.Resolve(ctx, sessionToken)
	if err != nil {
		return "", fmt.Errorf("%w: resolving session: %v", common.ErrInternal, err)
	}
	if email == "" {
		return "", common.ErrUnauthorized
	}
	return email, nil
}

func (s *AuthService) Profile(ctx context.Context, email string) (*query.UserQueryResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: looking up user: %v", common.ErrInternal, err)
	}
	if user == nil {
		return nil, common.ErrUnauthorized
	}
	return &query.UserQueryResult{Result: mapper.NewUserResultFromEntity(user)}, nil
}
