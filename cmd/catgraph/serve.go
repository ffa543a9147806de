package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/whiskers/catgraph/internal/api"
	"github.com/whiskers/catgraph/internal/api/graphql"
	"github.com/whiskers/catgraph/internal/api/handler"
	"github.com/whiskers/catgraph/internal/core/service"
	"github.com/whiskers/catgraph/internal/infrastructure/authclient"
	mongostore "github.com/whiskers/catgraph/internal/infrastructure/db/mongo"
	redisstore "github.com/whiskers/catgraph/internal/infrastructure/db/redis"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var ensureIndexes bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, ensureIndexes)
		},
	}
	cmd.Flags().BoolVar(&ensureIndexes, "ensure-indexes", true, "create the cats collection indexes before serving")
	return cmd
}

func (a *app) serve(ctx context.Context, ensureIndexes bool) error {
	cfg, log := a.cfg, a.log

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	repo := mongostore.NewCatRepository(db)
	if ensureIndexes {
		if err := repo.EnsureIndexes(ctx); err != nil {
			return err
		}
	}

	directory := authclient.New(authclient.Config{
		BaseURL: cfg.Auth.URL,
		Timeout: cfg.Auth.Timeout,
	}, log)

	cats := service.NewCatService(repo, directory, log)
	users := service.NewUserService(directory, log)

	schema, err := graphql.NewSchema(cats, users, graphql.Options{
		MaxDepth: cfg.GraphQL.MaxDepth,
		Logger:   log,
	})
	if err != nil {
		return err
	}

	e := api.NewRouter(api.Dependencies{
		Schema:  schema,
		Queries: redisstore.NewPersistedQueryStore(rdb, cfg.Redis.PersistedQueryTTL),
		Probes: map[string]handler.Probe{
			"mongodb": handler.MongoProbe(db),
			"redis":   handler.RedisProbe(rdb),
		},
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("auth_url", cfg.Auth.URL).Msg("catgraph listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
