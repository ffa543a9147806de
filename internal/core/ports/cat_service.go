package ports

import (
	"context"
	"time"

	"github.com/whiskers/catgraph/internal/core/domain"
)

// CreateCatInput carries the fields of a new cat. Owner is accepted so the
// transport can pass everything it received, but the service never uses it.
type CreateCatInput struct {
	Name      string
	Weight    float64
	Birthdate time.Time
	Location  domain.Point
	Filename  string
	Owner     string
}

// UpdateCatInput targets one cat; nil fields are left unchanged.
type UpdateCatInput struct {
	ID    string
	Patch domain.CatPatch
}

// CatService defines the use cases behind the Cat resolvers.
type CatService interface {
	Owner(ctx context.Context, owner domain.Owner) (*domain.User, error)

	ListCats(ctx context.Context) ([]*domain.Cat, error)
	// GetCat returns nil without error when the cat does not exist.
	GetCat(ctx context.Context, id string) (*domain.Cat, error)
	ListCatsByOwner(ctx context.Context, ownerID string) ([]*domain.Cat, error)
	ListCatsByArea(ctx context.Context, area domain.Area) ([]*domain.Cat, error)

	CreateCat(ctx context.Context, p domain.Principal, in CreateCatInput) (*domain.Cat, error)
	UpdateCat(ctx context.Context, p domain.Principal, in UpdateCatInput) (*domain.Cat, error)
	DeleteCat(ctx context.Context, p domain.Principal, id string) (*domain.Cat, error)
	UpdateCatAsAdmin(ctx context.Context, p domain.Principal, in UpdateCatInput) (*domain.Cat, error)
	DeleteCatAsAdmin(ctx context.Context, p domain.Principal, id string) (*domain.Cat, error)
}
