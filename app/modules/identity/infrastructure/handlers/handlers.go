package identityhandlers

import (
	"errors"
	"log/slog"
	"net/http"

	identityservice "github.com/XdrBOBX/rating-widget/app/modules/identity/application"
	identitydomain "github.com/XdrBOBX/rating-widget/app/modules/identity/domain"
	"github.com/XdrBOBX/rating-widget/app/shared/httpx"
)

const errOAuthInternal = "oauth_internal_error"

// IdentityHandlers serves the OAuth callback endpoint.
type IdentityHandlers struct {
	service identityservice.Service
	logger  *slog.Logger
}

func NewIdentityHandlers(service identityservice.Service, logger *slog.Logger) *IdentityHandlers {
	return &IdentityHandlers{service: service, logger: logger}
}

type callbackRequest struct {
	Code        string `json:"code"`
	RedirectURI string `json:"redirectUri"`
}

type callbackResponse struct {
	User identitydomain.Profile `json:"user"`
}

// HandleCallback serves POST /api/discord/oauth/callback.
func (h *IdentityHandlers) HandleCallback(w http.ResponseWriter, r *http.Request) {
	// An unreadable body is treated as one without code or redirectUri.
	var req callbackRequest
	_ = httpx.DecodeJSON(r, &req)

	profile, err := h.service.CompleteLogin(r.Context(), req.Code, req.RedirectURI)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, callbackResponse{User: profile})
}

func (h *IdentityHandlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var upstream *identityservice.UpstreamError
	switch {
	case errors.Is(err, identityservice.ErrMissingParams):
		httpx.Error(w, http.StatusBadRequest, identityservice.ErrMissingParams.Error())
	case errors.Is(err, identityservice.ErrRedirectNotAllowed):
		httpx.Error(w, http.StatusBadRequest, identityservice.ErrRedirectNotAllowed.Error())
	case errors.As(err, &upstream):
		httpx.JSON(w, http.StatusBadRequest, httpx.ErrorBody{Error: upstream.Code, Detail: upstream.Detail})
	default:
		h.logger.ErrorContext(r.Context(), "OAuth callback failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, errOAuthInternal)
	}
}
