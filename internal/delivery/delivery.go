// Package delivery holds the process entry points (HTTP API, push worker).
package delivery

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"
)

const group = `group:"deliveries"`

// Delivery is a long-running server started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}

// As registers a server constructor with the deliveries Launch starts.
func As(constructor any) fx.Option {
	return fx.Provide(fx.Annotate(constructor, fx.ResultTags(group)))
}

type LaunchParams struct {
	fx.In

	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Deliveries []Delivery `group:"deliveries"`
}

// Launch serves every delivery in the background. The first one that fails
// shuts the application down with exit code 1 so the stop hooks still run.
func Launch(ctx context.Context, params LaunchParams) {
	for _, d := range params.Deliveries {
		go func() {
			err := d.Serve(ctx)
			if err == nil {
				return
			}
			params.Logger.Error("Server exited", slog.Any("error", err))

			if err := params.Shutdowner.Shutdown(fx.ExitCode(1)); err != nil {
				params.Logger.Error("Graceful shutdown failed", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
