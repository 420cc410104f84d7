package identityservice

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingParams is returned when the callback lacks code or redirectUri.
	ErrMissingParams = errors.New("code and redirectUri required")

	// ErrRedirectNotAllowed is returned when a redirect URI is configured and
	// the request names a different one.
	ErrRedirectNotAllowed = errors.New("redirect_uri_not_allowed")
)

// Upstream failure codes.
const (
	CodeTokenExchangeFailed = "token_exchange_failed"
	CodeUserFetchFailed     = "user_fetch_failed"
)

// UpstreamError reports a rejection by the identity provider. Detail is the
// provider's response body, passed through opaque.
type UpstreamError struct {
	Code   string
	Detail string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

// IsClientError reports whether err is caused by the login request rather
// than by this service.
func IsClientError(err error) bool {
	var upstream *UpstreamError
	return errors.Is(err, ErrMissingParams) ||
		errors.Is(err, ErrRedirectNotAllowed) ||
		errors.As(err, &upstream)
}
