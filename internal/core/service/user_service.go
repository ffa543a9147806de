package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/whiskers/catgraph/internal/core/domain"
	"github.com/whiskers/catgraph/internal/core/ports"
)

// UserService forwards every user operation to the auth service. The only
// local decision is the role check on admin operations, made before any
// request leaves the process.
type UserService struct {
	directory ports.UserDirectory
	logger    zerolog.Logger
}

func NewUserService(directory ports.UserDirectory, logger zerolog.Logger) *UserService {
	return &UserService{directory: directory, logger: logger}
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.directory.ListUsers(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.directory.GetUser(ctx, id)
}

func (s *UserService) CheckToken(ctx context.Context, token string) (*domain.TokenMessage, error) {
	return s.directory.CheckToken(ctx, token)
}

func (s *UserService) Login(ctx context.Context, creds domain.Credentials) (*domain.TokenMessage, error) {
	msg, err := s.directory.Login(ctx, creds)
	if err != nil {
		s.logger.Info().Err(err).Str("username", creds.Username).Msg("login rejected")
		return nil, err
	}
	return msg, nil
}

func (s *UserService) Register(ctx context.Context, in domain.UserInput) (*domain.UserMessage, error) {
	return s.directory.Register(ctx, in)
}

// UpdateUser lets the auth service derive the target account from the token.
func (s *UserService) UpdateUser(ctx context.Context, p domain.Principal, in domain.UserInput) (*domain.UserMessage, error) {
	if p.Anonymous() {
		return nil, domain.ErrNotAuthorized
	}
	return s.directory.UpdateUser(ctx, p.Token, in)
}

func (s *UserService) DeleteUser(ctx context.Context, p domain.Principal) (*domain.UserMessage, error) {
	if p.Anonymous() {
		return nil, domain.ErrNotAuthorized
	}
	return s.directory.DeleteUser(ctx, p.Token, "")
}

func (s *UserService) UpdateUserAsAdmin(ctx context.Context, p domain.Principal, in domain.UserInput) (*domain.UserMessage, error) {
	if !p.IsAdmin() {
		return nil, domain.ErrNotAuthorized
	}
	msg, err := s.directory.UpdateUser(ctx, p.Token, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("admin", p.ID).Msg("user updated by admin")
	return msg, nil
}

// DeleteUserAsAdmin names the target in the request body since the token
// belongs to the admin, not to the account being removed.
func (s *UserService) DeleteUserAsAdmin(ctx context.Context, p domain.Principal, id string) (*domain.UserMessage, error) {
	if !p.IsAdmin() {
		return nil, domain.ErrNotAuthorized
	}
	msg, err := s.directory.DeleteUser(ctx, p.Token, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("admin", p.ID).Str("user_id", id).Msg("user deleted by admin")
	return msg, nil
}
