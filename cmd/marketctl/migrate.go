package main

import (
	"context"
	"log/slog"

	"marketplace/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create or update every table",
		Action: func(ctx context.Context, _ *cli.Command) error {
			var (
				db     *gorm.DB
				logger *slog.Logger
			)

			return withApp(ctx, func() error {
				if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
					return errors.Wrap(err, "auto migrate failed")
				}
				logger.Info("Migration complete", slog.Int("tables", len(model.All())))

				return nil
			}, nil, &db, &logger)
		},
	}
}
