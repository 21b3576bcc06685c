package main

import (
	"catalog/internal/config"
	"catalog/pkg/domain"
	"catalog/pkg/logger"
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// grantCommand constructs the 'grant' subcommand that grants platform
// privileges to an actor.
func grantCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grant",
		Short: "Grants platform privileges to an actor",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			actor, _ := cmd.Flags().GetString("actor")
			names, _ := cmd.Flags().GetStringSlice("privilege")

			urn, entityType, err := domain.ParseUrn(actor)
			if err != nil || entityType != domain.EntityTypeCorpUser {
				logger.Fatal(ctx, "actor must be a corpuser URN", zap.String("actor", actor), zap.Error(err))
			}

			privileges := make([]domain.Privilege, 0, len(names))
			for _, n := range names {
				privileges = append(privileges, domain.Privilege(n))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if err := strg.GrantPrivileges(ctx, urn, privileges...); err != nil {
				logger.Fatal(ctx, "could not grant privileges", zap.Error(err))
			}
			logger.Info(ctx, "privileges granted", zap.Stringer("actor", urn), zap.Strings("privileges", names))
		},
	}

	cmd.Flags().String("actor", "", "Actor URN (e.g., urn:li:corpuser:alice)")
	cmd.Flags().StringSlice("privilege", []string{string(domain.PrivilegeManageDomains)}, "Privileges to grant")
	_ = cmd.MarkFlagRequired("actor")

	return cmd
}
