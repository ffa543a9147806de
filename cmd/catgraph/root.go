package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"github.com/whiskers/catgraph/internal/pkg/config"
	"github.com/whiskers/catgraph/pkg/logger"
)

// app is the state shared by every subcommand once configuration is loaded.
type app struct {
	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "catgraph",
		Short:         "GraphQL API for cats and their owners",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadWith(cmd.Context(), envconfig.OsLookuper())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			a.cfg = cfg
			a.log = logger.Init(logger.Options{
				Level:   cfg.LogLevel,
				Pretty:  cfg.Development(),
				Service: "catgraph",
			})
			return nil
		},
	}

	root.AddCommand(newServeCmd(a), newEnsureIndexesCmd(a))
	return root
}
