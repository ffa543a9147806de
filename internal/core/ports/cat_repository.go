package ports

import (
	"context"

	"github.com/whiskers/catgraph/internal/core/domain"
)

// CatRepository defines persistence operations for cats.
type CatRepository interface {
	FindAll(ctx context.Context) ([]*domain.Cat, error)
	// FindByID returns domain.ErrCatNotFound when no cat has the id.
	FindByID(ctx context.Context, id string) (*domain.Cat, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Cat, error)
	// FindWithin returns the cats whose location lies inside area, border
	// included. area.Contains gives the planar semantics; stores with native
	// geo queries may use geodesic edges instead.
	FindWithin(ctx context.Context, area domain.Area) ([]*domain.Cat, error)
	// Insert stores c and returns it with its generated id.
	Insert(ctx context.Context, c *domain.Cat) (*domain.Cat, error)
	// Update applies patch and returns the updated cat, or nil when no cat
	// has the id.
	Update(ctx context.Context, id string, patch domain.CatPatch) (*domain.Cat, error)
	// Delete removes the cat and returns it as it was, or nil when no cat
	// has the id.
	Delete(ctx context.Context, id string) (*domain.Cat, error)
}
