package main

import (
	"github.com/spf13/cobra"

	mongostore "github.com/whiskers/catgraph/internal/infrastructure/db/mongo"
)

func newEnsureIndexesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ensure-indexes",
		Short: "Create the 2dsphere and owner indexes on the cats collection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			client, db, err := mongostore.Connect(ctx, mongostore.Config{
				URI:      a.cfg.Mongo.URI,
				Database: a.cfg.Mongo.Database,
			})
			if err != nil {
				return err
			}
			defer client.Disconnect(ctx)

			if err := mongostore.NewCatRepository(db).EnsureIndexes(ctx); err != nil {
				return err
			}
			a.log.Info().Str("database", a.cfg.Mongo.Database).Msg("indexes ensured")
			return nil
		},
	}
}
