package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	"getlife/config"
	"getlife/internal/delivery"
	"getlife/internal/delivery/http"
	"getlife/internal/delivery/http/middleware"
	"getlife/internal/delivery/http/router/handler"
	"getlife/internal/domain/repository"
	"getlife/internal/infra/log"
	"getlife/internal/infra/persistence/failover"
	"getlife/internal/infra/persistence/local"
	"getlife/internal/infra/persistence/remote"
	"getlife/internal/infra/session"
	"getlife/internal/usecase"
	"getlife/internal/usecase/impl"
	"getlife/internal/view"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectStore(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			bootstrap,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		local.NewBucket,
	)
}

func injectStore() fx.Option {
	return fx.Options(
		fx.Provide(
			newFacade,
			func(facade *failover.Facade) repository.Store { return facade },
			func(bucket *blob.Bucket) repository.SessionStore { return session.New(bucket) },
		),
	)
}

// newFacade assembles the storage facade: the local bucket store is
// always there, the remote store only when configured and reachable.
// A failed remote init degrades to local instead of aborting startup.
func newFacade(ctx context.Context, cfg *config.Config, bucket *blob.Bucket, logger *slog.Logger) *failover.Facade {
	localStore := local.New(bucket)

	var remoteStore repository.Store
	client, err := remote.NewClient(ctx, cfg)
	switch {
	case err != nil:
		logger.Warn("remote store init failed, using local store", slog.Any("error", err))
	case client != nil:
		remoteStore = remote.New(client)
	}

	return failover.New(remoteStore, localStore, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewPartnerService,
			impl.NewProfileService,
			impl.NewWalletService,
			impl.NewOrderService,
			impl.NewChatService,
			view.NewRouter,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewShellHandler,
			handler.NewAuthHandler,
			handler.NewPartnerHandler,
			handler.NewProfileHandler,
			handler.NewWalletHandler,
			handler.NewOrderHandler,
			handler.NewChatHandler,
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

type bootstrapParams struct {
	fx.In

	Facade *failover.Facade
	Auth   usecase.AuthUsecase
}

// bootstrap probes the remote backend and seeds the admin account
// before any request is served.
func bootstrap(ctx context.Context, params bootstrapParams) error {
	params.Facade.Probe(ctx)

	return params.Auth.EnsureAdmin(ctx)
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
