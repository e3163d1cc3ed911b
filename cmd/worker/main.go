// Command worker receives order events from Pub/Sub and pushes them to the
// buyer's devices.
package main

import (
	"context"

	"marketplace/config"
	"marketplace/internal/delivery"
	"marketplace/internal/delivery/worker"
	"marketplace/internal/delivery/worker/handler"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/metrics"
	"marketplace/internal/infra/notification"
	"marketplace/internal/infra/persistence/postgres"
	"marketplace/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(app()).Run()
}

// app is everything the worker needs: devices are the only table it reads.
func app() fx.Option {
	return fx.Options(
		fx.Provide(
			context.Background,
			config.New,
			logs.New,
			metrics.NewRegistry,
			postgres.New,
			postgres.NewDeviceRepository,
			notification.NewPushService,
			impl.NewOrderNotificationService,
			handler.NewPushHandler,
		),
		delivery.As(worker.NewServer),
		fx.Invoke(delivery.Launch),
	)
}
