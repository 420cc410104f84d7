package identity

import (
	"context"
	"log/slog"

	identityservice "github.com/XdrBOBX/rating-widget/app/modules/identity/application"
	"github.com/XdrBOBX/rating-widget/app/modules/identity/infrastructure/discord"
	identityhandlers "github.com/XdrBOBX/rating-widget/app/modules/identity/infrastructure/handlers"
	"github.com/XdrBOBX/rating-widget/app/shared/metrics"
	"github.com/XdrBOBX/rating-widget/config"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// Dependencies the identity module is built from.
type Dependencies struct {
	Logger  *slog.Logger
	Tracer  trace.Tracer
	Metrics *metrics.Collector
	Discord config.DiscordConfig
	HTTP    chi.Router
}

// Module represents the identity module.
type Module struct {
	Service identityservice.Service

	// Profiles is nil in demo mode.
	Profiles *identityservice.ProfileCache
}

// NewModule picks the Discord exchanger when credentials are configured and
// the demo exchanger otherwise, then mounts the callback route.
func NewModule(ctx context.Context, deps Dependencies) *Module {
	logger := deps.Logger.With(slog.String("module", "identity"))

	var (
		exchanger identityservice.Exchanger = identityservice.DemoExchanger{}
		profiles  *identityservice.ProfileCache
	)
	if deps.Discord.Enabled() {
		exchanger = discord.NewExchanger(deps.Discord.ClientID, deps.Discord.ClientSecret, deps.Discord.APIBaseURL, nil)
		profiles = identityservice.NewProfileCache(0)
		logger.InfoContext(ctx, "Discord login enabled")
	} else {
		logger.InfoContext(ctx, "Discord credentials not set, login runs in demo mode")
	}

	service := identityservice.NewIdentityService(
		exchanger,
		profiles,
		deps.Discord.RedirectURI,
		logger,
		deps.Metrics.Service("identity"),
		deps.Tracer,
	)
	handlers := identityhandlers.NewIdentityHandlers(service, logger)

	if deps.HTTP != nil {
		deps.HTTP.Post("/api/discord/oauth/callback", handlers.HandleCallback)
	}

	return &Module{Service: service, Profiles: profiles}
}
