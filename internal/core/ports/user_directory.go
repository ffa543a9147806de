package ports

import (
	"context"

	"github.com/whiskers/catgraph/internal/core/domain"
)

// UserDirectory is the remote auth/user service. Implementations return
// domain.ErrUpstreamFetch for unsuccessful responses, except Register which
// forwards whatever the service answered.
type UserDirectory interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	CheckToken(ctx context.Context, token string) (*domain.TokenMessage, error)
	Login(ctx context.Context, creds domain.Credentials) (*domain.TokenMessage, error)
	Register(ctx context.Context, in domain.UserInput) (*domain.UserMessage, error)
	// UpdateUser modifies the account identified by token.
	UpdateUser(ctx context.Context, token string, in domain.UserInput) (*domain.UserMessage, error)
	// DeleteUser removes the account identified by token, or targetID when it
	// is non-empty and the token belongs to an admin.
	DeleteUser(ctx context.Context, token, targetID string) (*domain.UserMessage, error)
}
