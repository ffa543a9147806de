package graphql

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/whiskers/catgraph/internal/api/middleware"
	"github.com/whiskers/catgraph/internal/core/domain"
	"github.com/whiskers/catgraph/internal/core/ports"
)

// Resolver is the root of both Query and Mutation. Its methods are matched to
// schema fields by name.
type Resolver struct {
	cats     ports.CatService
	users    ports.UserService
	validate *argValidator
	log      zerolog.Logger
}

func NewResolver(cats ports.CatService, users ports.UserService, log zerolog.Logger) *Resolver {
	return &Resolver{
		cats:     cats,
		users:    users,
		validate: newArgValidator(),
		log:      log,
	}
}

// principal reads the caller placed on the request by the auth middleware.
// Resolvers pass it on explicitly; services never look at the context for it.
func principal(ctx context.Context) domain.Principal {
	return middleware.PrincipalFromContext(ctx)
}
