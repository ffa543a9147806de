// Package graphql binds the cat and user use cases to the GraphQL schema and
// serves it over HTTP.
package graphql

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/graph-gophers/graphql-go"
	"github.com/rs/zerolog"

	"github.com/whiskers/catgraph/internal/core/ports"
	"github.com/whiskers/catgraph/pkg/logger"
)

//go:embed schema.graphql
var schemaSDL string

// Options tunes schema execution.
type Options struct {
	// MaxDepth limits query nesting; 0 disables the limit.
	MaxDepth int
	Logger   zerolog.Logger
}

// NewSchema parses the embedded SDL and binds it to the resolvers.
func NewSchema(cats ports.CatService, users ports.UserService, opts Options) (*graphql.Schema, error) {
	root := NewResolver(cats, users, opts.Logger)
	schema, err := graphql.ParseSchema(schemaSDL, root,
		graphql.MaxDepth(opts.MaxDepth),
		graphql.Logger(panicLogger{log: opts.Logger}),
	)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return schema, nil
}

// panicLogger reports resolver panics recovered by the engine.
type panicLogger struct {
	log zerolog.Logger
}

func (l panicLogger) LogPanic(ctx context.Context, value interface{}) {
	log := logger.FromContext(ctx)
	if log.GetLevel() == zerolog.Disabled {
		log = &l.log
	}
	log.Error().Interface("panic", value).Msg("graphql resolver panicked")
}
