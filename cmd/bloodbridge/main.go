package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"bloodbridge/config"
	"bloodbridge/internal/delivery"
	"bloodbridge/internal/delivery/http"
	"bloodbridge/internal/delivery/http/middleware"
	"bloodbridge/internal/delivery/http/router/handler"
	"bloodbridge/internal/domain/entity"
	"bloodbridge/internal/domain/repository"
	"bloodbridge/internal/domain/service"
	"bloodbridge/internal/infra/geocode"
	logs "bloodbridge/internal/infra/log"
	"bloodbridge/internal/infra/persistence/postgres"
	"bloodbridge/internal/infra/pubsub"
	"bloodbridge/internal/infra/sms"
	"bloodbridge/internal/usecase/impl"

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
			seedStockLedger,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewStockRepository,
			postgres.NewRequestRepository,
			postgres.NewDonationRepository,
			postgres.NewDonorRepository,
			postgres.NewPatientRepository,
			postgres.NewAlertRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newSMSService,
			newGeocoder,
		),
	)
}

// newSMSService selects the SNS-backed SMS channel, with a log-only
// fallback for environments without AWS credentials
func newSMSService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.SMSService, error) {
	if cfg.SNS == nil || !cfg.SNS.Enabled {
		return sms.NewLogSMSService(logger), nil
	}

	svc, err := sms.NewSNSService(ctx, cfg.SNS, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create SNS service: %w", err)
	}

	return svc, nil
}

// newGeocoder selects the Nominatim geocoder used to resolve addresses
// before submissions and registrations reach the core
func newGeocoder(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	if cfg.Geocoder == nil || !cfg.Geocoder.Enabled {
		return geocode.NewNoopGeocoder()
	}

	return geocode.NewNominatimGeocoder(cfg.Geocoder, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewStockService,
			impl.NewRequestService,
			impl.NewDonationService,
			impl.NewDonorService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRequestHandler,
			handler.NewDonationHandler,
			handler.NewDonorHandler,
			handler.NewStockHandler,
			handler.NewDashboardHandler,
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

// seedStockLedger ensures every blood group has a ledger row before the
// API starts taking adjustments
func seedStockLedger(ctx context.Context, stockRepo repository.StockRepository) error {
	return stockRepo.EnsureEntries(ctx, entity.AllBloodGroups())
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
