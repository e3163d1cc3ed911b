package main

import (
	"context"
	"log/slog"

	"marketplace/internal/infra/persistence/postgres"
	"marketplace/internal/usecase"
	"marketplace/internal/usecase/impl"

	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

func sessionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "sessions",
		Usage: "Manage refresh token sessions",
		Commands: []*cli.Command{
			{
				Name:  "prune",
				Usage: "Delete expired refresh tokens",
				Action: func(ctx context.Context, _ *cli.Command) error {
					var (
						sessions usecase.SessionUsecase
						logger   *slog.Logger
					)

					return withApp(ctx, func() error {
						n, err := sessions.PruneExpiredSessions(ctx)
						if err != nil {
							return err
						}
						logger.Info("Pruned expired sessions", slog.Int64("deleted", n))

						return nil
					}, []fx.Option{
						fx.Provide(
							postgres.NewRefreshTokenRepository,
							impl.NewSessionService,
						),
					}, &sessions, &logger)
				},
			},
		},
	}
}
