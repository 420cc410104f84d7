package identityservice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	identitydomain "github.com/XdrBOBX/rating-widget/app/modules/identity/domain"
	"github.com/XdrBOBX/rating-widget/app/shared/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

type FakeExchanger struct {
	trace        []string
	ExchangeFunc func(ctx context.Context, code, redirectURI string) (identitydomain.Profile, error)
}

func (f *FakeExchanger) Exchange(ctx context.Context, code, redirectURI string) (identitydomain.Profile, error) {
	f.trace = append(f.trace, "Exchange")
	if f.ExchangeFunc != nil {
		return f.ExchangeFunc(ctx, code, redirectURI)
	}
	return identitydomain.Profile{}, nil
}

func newTestService(ex Exchanger, cache *ProfileCache, allowed string) *IdentityService {
	return NewIdentityService(ex, cache, allowed, slog.New(slog.NewTextHandler(io.Discard, nil)), metrics.NoOp{}, noop.NewTracerProvider().Tracer("test"))
}

func TestIdentityService_CompleteLogin(t *testing.T) {
	ctx := context.Background()
	nelly := identitydomain.Profile{ID: "42", Name: "nelly"}

	tests := []struct {
		name        string
		code        string
		redirect    string
		allowed     string
		exchangeErr error
		wantErr     error
		wantTrace   []string
		wantCached  bool
	}{
		{name: "success", code: "c", redirect: "r", wantTrace: []string{"Exchange"}, wantCached: true},
		{name: "missing code", redirect: "r", wantErr: ErrMissingParams},
		{name: "missing redirect", code: "c", wantErr: ErrMissingParams},
		{name: "redirect mismatch", code: "c", redirect: "https://evil.example", allowed: "https://widget.example/cb", wantErr: ErrRedirectNotAllowed},
		{name: "redirect match", code: "c", redirect: "https://widget.example/cb", allowed: "https://widget.example/cb", wantTrace: []string{"Exchange"}, wantCached: true},
		{name: "upstream rejection", code: "c", redirect: "r", exchangeErr: &UpstreamError{Code: CodeTokenExchangeFailed}, wantTrace: []string{"Exchange"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := &FakeExchanger{ExchangeFunc: func(context.Context, string, string) (identitydomain.Profile, error) {
				if tt.exchangeErr != nil {
					return identitydomain.Profile{}, tt.exchangeErr
				}
				return nelly, nil
			}}
			cache := NewProfileCache(0)
			svc := newTestService(ex, cache, tt.allowed)

			got, err := svc.CompleteLogin(ctx, tt.code, tt.redirect)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.exchangeErr != nil:
				require.Error(t, err)
				assert.True(t, IsClientError(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, nelly, got)
			}
			assert.Equal(t, tt.wantTrace, ex.trace)

			_, cached := cache.Lookup("42")
			assert.Equal(t, tt.wantCached, cached)
		})
	}
}

func TestIdentityService_DemoProfileNotCached(t *testing.T) {
	cache := NewProfileCache(0)
	got, err := newTestService(DemoExchanger{}, cache, "").CompleteLogin(context.Background(), "c", "r")
	require.NoError(t, err)
	assert.Equal(t, identitydomain.DemoProfile, got)
	assert.Zero(t, cache.Len())
}

func TestIdentityService_InternalErrorIsWrapped(t *testing.T) {
	ex := &FakeExchanger{ExchangeFunc: func(context.Context, string, string) (identitydomain.Profile, error) {
		return identitydomain.Profile{}, errors.New("connection refused")
	}}
	_, err := newTestService(ex, nil, "").CompleteLogin(context.Background(), "c", "r")
	require.Error(t, err)
	assert.False(t, IsClientError(err))
	assert.Contains(t, err.Error(), "CompleteLogin")
}

func TestProfileCache_Bounded(t *testing.T) {
	cache := NewProfileCache(3)
	for i := 0; i < 10; i++ {
		cache.Store(identitydomain.Profile{ID: fmt.Sprintf("u%d", i)})
	}
	assert.Equal(t, 3, cache.Len())

	cache.Store(identitydomain.Profile{ID: "u9", Name: "renamed"})
	p, ok := cache.Lookup("u9")
	require.True(t, ok)
	assert.Equal(t, "renamed", p.Name)
	assert.Equal(t, 3, cache.Len())

	cache.Store(identitydomain.Profile{})
	assert.Equal(t, 3, cache.Len())
}
