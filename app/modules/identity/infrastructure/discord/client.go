// Package discord exchanges OAuth2 authorization codes with Discord.
package discord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	identityservice "github.com/XdrBOBX/rating-widget/app/modules/identity/application"
	identitydomain "github.com/XdrBOBX/rating-widget/app/modules/identity/domain"
	"golang.org/x/oauth2"
)

const (
	DefaultAPIBaseURL = "https://discord.com/api"

	requestTimeout = 10 * time.Second
	maxDetailBytes = 4 << 10
)

var scopes = []string{"identify"}

// Exchanger implements identityservice.Exchanger against the Discord API.
type Exchanger struct {
	clientID     string
	clientSecret string
	apiBaseURL   string
	httpClient   *http.Client
}

// NewExchanger creates an Exchanger. An empty base URL targets discord.com;
// a nil client uses one with a bounded timeout.
func NewExchanger(clientID, clientSecret, apiBaseURL string, httpClient *http.Client) *Exchanger {
	if apiBaseURL == "" {
		apiBaseURL = DefaultAPIBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	return &Exchanger{
		clientID:     clientID,
		clientSecret: clientSecret,
		apiBaseURL:   strings.TrimRight(apiBaseURL, "/"),
		httpClient:   httpClient,
	}
}

func (e *Exchanger) config(redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     e.clientID,
		ClientSecret: e.clientSecret,
		RedirectURL:  redirectURI,
		Scopes:       scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   e.apiBaseURL + "/oauth2/authorize",
			TokenURL:  e.apiBaseURL + "/oauth2/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

type discordUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// Exchange trades the code for a token and fetches the user it belongs to.
// Provider rejections come back as *identityservice.UpstreamError.
func (e *Exchanger) Exchange(ctx context.Context, code, redirectURI string) (identitydomain.Profile, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, e.httpClient)
	cfg := e.config(redirectURI)

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		var rerr *oauth2.RetrieveError
		if errors.As(err, &rerr) {
			return identitydomain.Profile{}, &identityservice.UpstreamError{
				Code:   identityservice.CodeTokenExchangeFailed,
				Detail: truncate(string(rerr.Body)),
			}
		}
		return identitydomain.Profile{}, fmt.Errorf("token exchange: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.apiBaseURL+"/users/@me", nil)
	if err != nil {
		return identitydomain.Profile{}, fmt.Errorf("build user request: %w", err)
	}
	resp, err := cfg.Client(ctx, token).Do(req)
	if err != nil {
		return identitydomain.Profile{}, fmt.Errorf("user fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return identitydomain.Profile{}, fmt.Errorf("read user response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return identitydomain.Profile{}, &identityservice.UpstreamError{
			Code:   identityservice.CodeUserFetchFailed,
			Detail: truncate(string(body)),
		}
	}

	var u discordUser
	if err := json.Unmarshal(body, &u); err != nil {
		return identitydomain.Profile{}, fmt.Errorf("decode user: %w", err)
	}
	return identitydomain.Profile{
		ID:     u.ID,
		Name:   u.Username,
		Avatar: identitydomain.AvatarURL(u.ID, u.Avatar),
	}, nil
}

func truncate(s string) string {
	if len(s) > maxDetailBytes {
		return s[:maxDetailBytes]
	}
	return s
}

var _ identityservice.Exchanger = (*Exchanger)(nil)
