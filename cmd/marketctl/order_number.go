package main

import (
	"context"
	"fmt"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	"marketplace/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"
)

func orderNumberCommand() *cli.Command {
	return &cli.Command{
		Name:  "order-number",
		Usage: "Preview the next order number of a day without consuming it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "date",
				Usage: "calendar day as YYYY-MM-DD, defaults to today (UTC)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			day := time.Now().UTC()
			if raw := cmd.String("date"); raw != "" {
				parsed, err := time.Parse(time.DateOnly, raw)
				if err != nil {
					return errors.Wrapf(err, "invalid --date %q", raw)
				}
				day = parsed
			}

			var (
				db  *gorm.DB
				cfg *config.Config
			)

			return withApp(ctx, func() error {
				current, err := currentSequence(ctx, db, day)
				if err != nil {
					return err
				}
				fmt.Println(entity.FormatOrderNumber(cfg.Shop.OrderNumberPrefix, day, current+1))

				return nil
			}, nil, &db, &cfg)
		},
	}
}

// currentSequence reads the day's counter, zero when no order was placed yet.
func currentSequence(ctx context.Context, db *gorm.DB, day time.Time) (int64, error) {
	var rows []model.OrderSequenceModel
	if err := db.WithContext(ctx).
		Where("day = ?", day.Format(time.DateOnly)).
		Limit(1).
		Find(&rows).Error; err != nil {
		return 0, errors.Wrap(err, "failed to read order sequence")
	}
	if len(rows) == 0 {
		return 0, nil
	}

	return rows[0].Value, nil
}
