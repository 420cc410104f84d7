package adapters

import (
	"context"
	"testing"

	identityservice "github.com/XdrBOBX/rating-widget/app/modules/identity/application"
	identitydomain "github.com/XdrBOBX/rating-widget/app/modules/identity/domain"
	ratingsdomain "github.com/XdrBOBX/rating-widget/app/modules/ratings/domain"
	"github.com/stretchr/testify/assert"
)

func TestProfileAuthorResolver(t *testing.T) {
	cache := identityservice.NewProfileCache(0)
	cache.Store(identitydomain.Profile{ID: "80351110224678912", Name: "nelly", Avatar: "https://cdn.example/n.png"})
	cache.Store(identitydomain.Profile{ID: "nameless"})

	r := NewProfileAuthorResolver(cache)
	ctx := context.Background()

	assert.Equal(t, ratingsdomain.Author{Name: "nelly", Avatar: "https://cdn.example/n.png"}, r.ResolveAuthor(ctx, "80351110224678912"))
	assert.Equal(t, ratingsdomain.Author{Name: "User 5678"}, r.ResolveAuthor(ctx, "unknown-5678"))
	assert.Equal(t, ratingsdomain.Author{Name: "User less"}, r.ResolveAuthor(ctx, "nameless"))
}
