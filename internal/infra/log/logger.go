// Package logs builds the process-wide slog logger from config.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"marketplace/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
	// Output defaults to stdout.
	Output io.Writer `name:"logOutput" optional:"true"`
}

// New returns a JSON logger, or a text logger when env.log.pretty is set.
// Every record carries the service name and environment so logs from the
// API, the worker and marketctl can share one sink.
func New(params Params) (*slog.Logger, error) {
	level, err := parseLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	out := params.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: level <= slog.LevelDebug}
	var handler slog.Handler = slog.NewJSONHandler(out, opts)
	if params.Config.Env.Log.Pretty {
		handler = slog.NewTextHandler(out, opts)
	}

	attrs := []slog.Attr{}
	if name := params.Config.Env.ServiceName; name != "" {
		attrs = append(attrs, slog.String("service", name))
	}
	if env := params.Config.Env.Env; env != "" {
		attrs = append(attrs, slog.String("env", env))
	}

	return slog.New(handler.WithAttrs(attrs)), nil
}

// parseLevel accepts the slog level names in any case, including offsets
// such as "warn+2". Empty means info.
func parseLevel(raw string) (slog.Level, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return slog.LevelInfo, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo, errors.Wrapf(err, "invalid env.log.level %q", raw)
	}

	return level, nil
}
