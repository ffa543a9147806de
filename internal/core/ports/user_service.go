package ports

import (
	"context"

	"github.com/whiskers/catgraph/internal/core/domain"
)

// UserService defines the use cases behind the User resolvers.
type UserService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	CheckToken(ctx context.Context, token string) (*domain.TokenMessage, error)
	Login(ctx context.Context, creds domain.Credentials) (*domain.TokenMessage, error)
	Register(ctx context.Context, in domain.UserInput) (*domain.UserMessage, error)

	UpdateUser(ctx context.Context, p domain.Principal, in domain.UserInput) (*domain.UserMessage, error)
	DeleteUser(ctx context.Context, p domain.Principal) (*domain.UserMessage, error)
	UpdateUserAsAdmin(ctx context.Context, p domain.Principal, in domain.UserInput) (*domain.UserMessage, error)
	DeleteUserAsAdmin(ctx context.Context, p domain.Principal, id string) (*domain.UserMessage, error)
}
