package main

import (
	"catalog/internal/config"
	"catalog/internal/seed"
	"catalog/pkg/logger"
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedCommand constructs the 'seed' subcommand that loads domains and grants
// from a YAML file.
func seedCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Loads domains and privilege grants from a YAML file",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			path, _ := cmd.Flags().GetString("file")

			f, err := seed.Load(path)
			if err != nil {
				logger.Fatal(ctx, "could not load seed file", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if _, err := f.Apply(ctx, strg); err != nil {
				logger.Fatal(ctx, "could not apply seed file", zap.Error(err))
			}
		},
	}

	cmd.Flags().StringP("file", "f", "seed.yml", "Seed file path")

	return cmd
}
