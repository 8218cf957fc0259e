package main

import (
	"context"

	"github.com/aboldguess/Nichifier/internal/auth"
	"github.com/aboldguess/Nichifier/internal/config"
	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/aboldguess/Nichifier/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// promoteCommand constructs the 'promote' subcommand that changes the role of
// an existing account, typically used to bootstrap the first admin.
func promoteCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Changes the role of an existing account",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			email, _ := cmd.Flags().GetString("email")
			role, _ := cmd.Flags().GetString("role")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			authSvc, err := auth.New(strg, auth.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create auth service", zap.Error(err))
			}

			user, err := authSvc.Promote(ctx, email, domain.UserRole(role))
			if err != nil {
				logger.Fatal(ctx, "could not promote account", zap.Error(err))
			}

			logger.Info(ctx, "account role updated",
				zap.String("email", user.Email),
				zap.String("role", string(user.Role)))
		},
	}

	cmd.Flags().String("email", "", "Email of the account to promote")
	cmd.Flags().String("role", string(domain.RoleAdmin), "Target role (admin, niche_admin, subscriber)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
