package identityservice

import (
	"context"

	identitydomain "github.com/XdrBOBX/rating-widget/app/modules/identity/domain"
)

// Service completes Discord logins.
type Service interface {
	CompleteLogin(ctx context.Context, code, redirectURI string) (identitydomain.Profile, error)
}

// Exchanger turns an authorization code into a profile.
type Exchanger interface {
	Exchange(ctx context.Context, code, redirectURI string) (identitydomain.Profile, error)
}

// DemoExchanger accepts any code and returns the demo profile.
type DemoExchanger struct{}

func (DemoExchanger) Exchange(context.Context, string, string) (identitydomain.Profile, error) {
	return identitydomain.DemoProfile, nil
}
