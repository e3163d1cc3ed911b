// Command marketctl runs one-off operator tasks against the marketplace database.
package main

import (
	"context"
	"fmt"
	"os"

	"marketplace/config"
	"marketplace/internal/domain/lifecycle"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

func main() {
	cmd := &cli.Command{
		Name:  "marketctl",
		Usage: "Marketplace operator tools",
		Commands: []*cli.Command{
			migrateCommand(),
			seedCommand(),
			orderNumberCommand(),
			sessionsCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// withApp builds the persistence graph, populates targets and runs fn
// between start and stop.
func withApp(ctx context.Context, fn func() error, options []fx.Option, targets ...any) error {
	opts := append([]fx.Option{
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Populate(targets...),
	}, options...)

	app := fx.New(opts...)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	runErr := fn()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop application")
	}

	return runErr
}
