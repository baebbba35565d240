package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"bloodbridge/config"
	"bloodbridge/internal/delivery"
	"bloodbridge/internal/delivery/worker"
	"bloodbridge/internal/delivery/worker/handler"
	"bloodbridge/internal/domain/repository"
	"bloodbridge/internal/domain/service"
	logs "bloodbridge/internal/infra/log"
	"bloodbridge/internal/infra/persistence/postgres"
	"bloodbridge/internal/infra/push"
	"bloodbridge/internal/infra/sms"
	"bloodbridge/internal/usecase"
	"bloodbridge/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
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
			newPushService,
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

// newPushService selects the Firebase push channel, with a log-only
// fallback when no credentials are configured
func newPushService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		return push.NewLogPushService(logger), nil
	}

	svc, err := push.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newMatcherService builds the donor matcher with the configured
// recipient cap and the exact-group compatibility policy
func newMatcherService(donorRepo repository.DonorRepository, cfg *config.Config) usecase.MatcherUsecase {
	maxRecipients := 0
	if cfg.Alert != nil {
		maxRecipients = cfg.Alert.MaxRecipients
	}

	return impl.NewMatcherService(donorRepo, usecase.ExactGroupPolicy, maxRecipients)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newMatcherService,
			impl.NewDispatchService,
			impl.NewAlertService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAlertHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
