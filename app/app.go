package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/XdrBOBX/rating-widget/app/adapters"
	"github.com/XdrBOBX/rating-widget/app/eventbus"
	"github.com/XdrBOBX/rating-widget/app/modules/identity"
	"github.com/XdrBOBX/rating-widget/app/modules/ratings"
	ratingsservice "github.com/XdrBOBX/rating-widget/app/modules/ratings/application"
	ratingsdb "github.com/XdrBOBX/rating-widget/app/modules/ratings/infrastructure/repositories"
	"github.com/XdrBOBX/rating-widget/app/modules/supporters"
	supportersdb "github.com/XdrBOBX/rating-widget/app/modules/supporters/infrastructure/repositories"
	"github.com/XdrBOBX/rating-widget/app/observability"
	"github.com/XdrBOBX/rating-widget/app/shared/metrics"
	"github.com/XdrBOBX/rating-widget/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// App wires configuration, telemetry, storage and the feature modules.
type App struct {
	Config        *config.Config
	Observability *observability.Observability
	Logger        *slog.Logger
	DB            *bun.DB
	EventBus      *eventbus.EventBus
	Router        *message.Router

	RatingsModule    *ratings.Module
	SupportersModule *supporters.Module
	IdentityModule   *identity.Module

	handler http.Handler
}

// NewApp builds every component from cfg. Logs are written to logOutput.
func NewApp(ctx context.Context, cfg *config.Config, logOutput io.Writer) (*App, error) {
	obs, err := observability.New(ctx, cfg.Observability, logOutput)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize observability: %w", err)
	}

	app := &App{Config: cfg, Observability: obs, Logger: obs.Logger}

	if err := app.initialize(ctx); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

func (app *App) initialize(ctx context.Context) error {
	cfg := app.Config
	logger := app.Logger
	o := app.Observability

	bus, err := eventbus.NewEventBus(cfg.NATS.URL, logger)
	if err != nil {
		return fmt.Errorf("failed to create event bus: %w", err)
	}
	app.EventBus = bus

	router, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create message router: %w", err)
	}
	router.AddMiddleware(middleware.CorrelationID, middleware.Recoverer)
	app.Router = router

	var (
		ratingRepo ratingsdb.Repository   = ratingsdb.NewMemoryRepository()
		directory  supportersdb.Directory = supportersdb.NewMemoryDirectory()
	)
	if cfg.Postgres.DSN != "" {
		db := openDB(cfg.Postgres.DSN)
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		ratingRepo = ratingsdb.NewRepository(db)
		directory = supportersdb.NewDirectory(db)
		logger.InfoContext(ctx, "Using Postgres storage")
	} else {
		logger.InfoContext(ctx, "Postgres DSN not set, using in-memory storage")
	}

	collector := metrics.NewCollector(o.Registry)
	httpRouter := NewHTTPRouter(cfg.HTTP, logger, o.Registry, cfg.Observability.MetricsAddress == "")

	app.IdentityModule = identity.NewModule(ctx, identity.Dependencies{
		Logger:  logger,
		Tracer:  o.Tracer("identity"),
		Metrics: collector,
		Discord: cfg.Discord,
		HTTP:    httpRouter.API,
	})

	var authors ratingsservice.AuthorResolver = ratingsservice.PlaceholderResolver{}
	if app.IdentityModule.Profiles != nil {
		authors = adapters.NewProfileAuthorResolver(app.IdentityModule.Profiles)
	}

	app.RatingsModule = ratings.NewModule(ctx, ratings.Dependencies{
		Logger:     logger,
		Tracer:     o.Tracer("ratings"),
		Metrics:    collector,
		Registry:   o.Registry,
		Repository: ratingRepo,
		Authors:    authors,
		Publisher:  bus,
		Subscriber: bus,
		Messages:   router,
		HTTP:       httpRouter.API,
	})

	app.SupportersModule, err = supporters.NewModule(ctx, supporters.Dependencies{
		Logger:     logger,
		Tracer:     o.Tracer("supporters"),
		Metrics:    collector,
		Directory:  directory,
		Seeds:      cfg.Supporters,
		Subscriber: bus,
		Messages:   router,
		HTTP:       httpRouter.API,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize supporters module: %w", err)
	}

	app.handler = httpRouter.Root
	return nil
}

func openDB(dsn string) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New())
}

// Handler returns the root HTTP handler.
func (app *App) Handler() http.Handler {
	return app.handler
}

// Run starts the message router and the HTTP listeners and blocks until ctx
// is cancelled or a component fails. Listeners are drained before returning.
func (app *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := app.Router.Run(ctx); err != nil {
			return fmt.Errorf("message router stopped: %w", err)
		}
		return nil
	})

	// The in-process bus drops messages published before a subscription exists.
	select {
	case <-app.Router.Running():
	case <-ctx.Done():
		return g.Wait()
	}

	servers := []*http.Server{{
		Addr:         app.Config.HTTP.Address,
		Handler:      app.handler,
		ReadTimeout:  app.Config.HTTP.ReadTimeout,
		WriteTimeout: app.Config.HTTP.WriteTimeout,
	}}
	if addr := app.Config.Observability.MetricsAddress; addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(app.Observability.Registry, promhttp.HandlerOpts{}))
		servers = append(servers, &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: app.Config.HTTP.ReadTimeout})
	}

	for _, srv := range servers {
		g.Go(func() error {
			app.Logger.InfoContext(ctx, "HTTP server listening", slog.String("address", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http server on %s: %w", srv.Addr, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		app.Logger.Info("Shutting down HTTP servers")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				app.Logger.Error("HTTP server shutdown failed", slog.String("address", srv.Addr), slog.Any("error", err))
			}
		}
		return nil
	})

	return g.Wait()
}

// Close releases the bus, the database and the tracer provider.
func (app *App) Close() {
	if app.Router != nil {
		if err := app.Router.Close(); err != nil {
			app.Logger.Error("Error closing message router", slog.Any("error", err))
		}
	}
	if app.EventBus != nil {
		if err := app.EventBus.Close(); err != nil {
			app.Logger.Error("Error closing event bus", slog.Any("error", err))
		}
	}
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Error closing database", slog.Any("error", err))
		}
	}
	if app.Observability != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.Observability.Shutdown(ctx); err != nil {
			app.Logger.Error("Error shutting down tracing", slog.Any("error", err))
		}
	}
}
