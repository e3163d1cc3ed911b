package main

import (
	"context"

	"marketplace/config"
	"marketplace/internal/delivery"
	"marketplace/internal/delivery/api"
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"
	deliverymiddleware "marketplace/internal/delivery/middleware"
	"marketplace/internal/infra/auth"
	"marketplace/internal/infra/cache"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/metrics"
	"marketplace/internal/infra/notification"
	"marketplace/internal/infra/persistence/postgres"
	"marketplace/internal/infra/pubsub"
	"marketplace/internal/infra/qrcode"
	"marketplace/internal/infra/storage"
	"marketplace/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(delivery.Launch),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		newDBPinger,
		metrics.NewRegistry,
	)
}

// newDBPinger exposes the primary connection pool to the health check.
func newDBPinger(db *gorm.DB) (handler.Pinger, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	return sqlDB, nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRoleRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewAddressRepository,
			postgres.NewDeviceRepository,
			postgres.NewCategoryRepository,
			postgres.NewBrandRepository,
			postgres.NewProductRepository,
			postgres.NewVariantRepository,
			postgres.NewListingRepository,
			postgres.NewCartRepository,
			postgres.NewOrderRepository,
			postgres.NewReviewRepository,
			postgres.NewSellerRepository,
			postgres.NewWishlistRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			notification.NewMailer,
			qrcode.NewQRCodeService,
			pubsub.NewEventPublisher,
			storage.NewImageStorage,
			cache.NewProductCache,
			metrics.NewOrderMetrics,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewSessionService,
			impl.NewUserService,
			impl.NewCategoryService,
			impl.NewBrandService,
			impl.NewProductService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewReviewService,
			impl.NewSellerService,
			impl.NewAddressService,
			impl.NewWishlistService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			deliverymiddleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewProductHandler,
			handler.NewCategoryHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewReviewHandler,
			handler.NewSellerHandler,
			handler.NewAddressHandler,
			handler.NewWishlistHandler,
			handler.NewDeviceHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return delivery.As(api.NewServer)
}
