package identityservice

import (
	"context"
	"log/slog"

	identitydomain "github.com/XdrBOBX/rating-widget/app/modules/identity/domain"
	"github.com/XdrBOBX/rating-widget/app/shared/metrics"
	"github.com/XdrBOBX/rating-widget/app/shared/operation"
	"go.opentelemetry.io/otel/trace"
)

// IdentityService implements the Service interface.
type IdentityService struct {
	exchanger       Exchanger
	cache           *ProfileCache
	allowedRedirect string
	telemetry       operation.Telemetry
}

// NewIdentityService creates a new IdentityService. When allowedRedirect is
// set, only that redirect URI is accepted. A nil cache disables profile
// caching.
func NewIdentityService(
	exchanger Exchanger,
	cache *ProfileCache,
	allowedRedirect string,
	logger *slog.Logger,
	opMetrics metrics.OperationMetrics,
	tracer trace.Tracer,
) *IdentityService {
	return &IdentityService{
		exchanger:       exchanger,
		cache:           cache,
		allowedRedirect: allowedRedirect,
		telemetry: operation.Telemetry{
			Service:  "identity",
			Logger:   logger,
			Tracer:   tracer,
			Metrics:  opMetrics,
			Expected: IsClientError,
		},
	}
}

// CompleteLogin exchanges the code and records the resulting profile.
func (s *IdentityService) CompleteLogin(ctx context.Context, code, redirectURI string) (identitydomain.Profile, error) {
	return operation.Run(ctx, s.telemetry, "CompleteLogin", "",
		func(ctx context.Context) (identitydomain.Profile, error) {
			if code == "" || redirectURI == "" {
				return identitydomain.Profile{}, ErrMissingParams
			}
			if s.allowedRedirect != "" && redirectURI != s.allowedRedirect {
				return identitydomain.Profile{}, ErrRedirectNotAllowed
			}

			profile, err := s.exchanger.Exchange(ctx, code, redirectURI)
			if err != nil {
				return identitydomain.Profile{}, err
			}

			if s.cache != nil && profile.ID != identitydomain.DemoProfile.ID {
				s.cache.Store(profile)
			}
			return profile, nil
		})
}

var _ Service = (*IdentityService)(nil)
