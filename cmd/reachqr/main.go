package main

import (
	"context"
	"log/slog"
	"os"

	"reachqr/config"
	"reachqr/internal/delivery"
	"reachqr/internal/delivery/http"
	"reachqr/internal/delivery/http/middleware"
	"reachqr/internal/delivery/http/router/handler"
	"reachqr/internal/domain/service"
	logs "reachqr/internal/infra/log"
	"reachqr/internal/infra/mail"
	"reachqr/internal/infra/persistence/postgres"
	"reachqr/internal/infra/qrcode"
	"reachqr/internal/infra/ratelimit"
	"reachqr/internal/infra/storage"
	"reachqr/internal/infra/token"
	"reachqr/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			token.NewCodec,
			mail.NewSMTPMailer,
			storage.NewBlobLogoStorage,
			newRateLimiter,
			newQRCodeService,
		),
	)
}

// newRateLimiter creates the per-client limiter from config, falling back to
// the built-in defaults when the section is absent.
func newRateLimiter(cfg *config.Config) service.RateLimiter {
	if cfg.RateLimit == nil {
		return ratelimit.NewMemoryLimiter(0, 0)
	}

	return ratelimit.NewMemoryLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(cfg.App.BaseURL, 256, "M")
	}

	return qrcode.NewQRCodeService(cfg.App.BaseURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewRecoveryService,
			impl.NewAdminService,
			impl.NewMediaService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewAdminMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProfileHandler,
			handler.NewRecoveryHandler,
			handler.NewAdminHandler,
			handler.NewMediaHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
