package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/whiskers/catgraph/internal/core/domain"
	"github.com/whiskers/catgraph/internal/core/ports"
	"github.com/whiskers/catgraph/internal/pkg/metrics"
)

type CatService struct {
	repo   ports.CatRepository
	users  ports.UserDirectory
	logger zerolog.Logger
}

func NewCatService(repo ports.CatRepository, users ports.UserDirectory, logger zerolog.Logger) *CatService {
	return &CatService{repo: repo, users: users, logger: logger}
}

// Owner returns the embedded user when present, otherwise asks the auth
// service for it. Lookups are not cached.
func (s *CatService) Owner(ctx context.Context, owner domain.Owner) (*domain.User, error) {
	if u, ok := owner.Resolved(); ok {
		return u, nil
	}
	u, err := s.users.GetUser(ctx, owner.ID())
	if err != nil {
		return nil, fmt.Errorf("resolve owner %s: %w", owner.ID(), err)
	}
	return u, nil
}

func (s *CatService) ListCats(ctx context.Context) ([]*domain.Cat, error) {
	return s.repo.FindAll(ctx)
}

func (s *CatService) GetCat(ctx context.Context, id string) (*domain.Cat, error) {
	cat, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrCatNotFound) {
		return nil, nil
	}
	return cat, err
}

func (s *CatService) ListCatsByOwner(ctx context.Context, ownerID string) ([]*domain.Cat, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

func (s *CatService) ListCatsByArea(ctx context.Context, area domain.Area) ([]*domain.Cat, error) {
	return s.repo.FindWithin(ctx, area)
}

// CreateCat stores a new cat owned by the caller. Any owner in the input is
// discarded.
func (s *CatService) CreateCat(ctx context.Context, p domain.Principal, in ports.CreateCatInput) (*domain.Cat, error) {
	if p.Anonymous() {
		return nil, domain.ErrNotAuthorized
	}
	if in.Owner != "" && in.Owner != p.ID {
		s.logger.Warn().Str("caller", p.ID).Str("requested_owner", in.Owner).Msg("ignoring owner supplied in createCat")
	}

	cat, err := s.repo.Insert(ctx, &domain.Cat{
		Name:      in.Name,
		Weight:    in.Weight,
		Birthdate: in.Birthdate,
		Location:  in.Location,
		Filename:  in.Filename,
		Owner:     domain.OwnerRef(p.ID),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("owner", p.ID).Msg("failed to create cat")
		return nil, err
	}

	metrics.CatsCreatedTotal.Inc()
	s.logger.Info().Str("cat_id", cat.ID).Str("owner", p.ID).Msg("cat created")
	return cat, nil
}

func (s *CatService) UpdateCat(ctx context.Context, p domain.Principal, in ports.UpdateCatInput) (*domain.Cat, error) {
	if err := s.authorizeOwner(ctx, p, in.ID); err != nil {
		return nil, err
	}
	cat, err := s.repo.Update(ctx, in.ID, in.Patch)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		// removed between the ownership check and the update
		return nil, domain.ErrCatNotFound
	}
	s.logger.Info().Str("cat_id", in.ID).Str("caller", p.ID).Msg("cat updated")
	return cat, nil
}

func (s *CatService) DeleteCat(ctx context.Context, p domain.Principal, id string) (*domain.Cat, error) {
	if err := s.authorizeOwner(ctx, p, id); err != nil {
		return nil, err
	}
	cat, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrCatNotFound
	}
	s.logger.Info().Str("cat_id", id).Str("caller", p.ID).Msg("cat deleted")
	return cat, nil
}

// UpdateCatAsAdmin skips the existence check; a missing cat yields nil.
func (s *CatService) UpdateCatAsAdmin(ctx context.Context, p domain.Principal, in ports.UpdateCatInput) (*domain.Cat, error) {
	if !p.IsAdmin() {
		return nil, domain.ErrNotAuthorized
	}
	cat, err := s.repo.Update(ctx, in.ID, in.Patch)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("cat_id", in.ID).Str("admin", p.ID).Bool("found", cat != nil).Msg("cat updated by admin")
	return cat, nil
}

func (s *CatService) DeleteCatAsAdmin(ctx context.Context, p domain.Principal, id string) (*domain.Cat, error) {
	if !p.IsAdmin() {
		return nil, domain.ErrNotAuthorized
	}
	cat, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("cat_id", id).Str("admin", p.ID).Bool("found", cat != nil).Msg("cat deleted by admin")
	return cat, nil
}

// authorizeOwner loads the cat and checks that p owns it.
func (s *CatService) authorizeOwner(ctx context.Context, p domain.Principal, id string) error {
	cat, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !p.Owns(cat) {
		s.logger.Warn().Str("cat_id", id).Str("caller", p.ID).Msg("ownership check failed")
		return domain.ErrNotAuthorized
	}
	return nil
}
