// Package adapters connects modules that must not import each other.
package adapters

import (
	"context"

	identitydomain "github.com/XdrBOBX/rating-widget/app/modules/identity/domain"
	ratingsservice "github.com/XdrBOBX/rating-widget/app/modules/ratings/application"
	ratingsdomain "github.com/XdrBOBX/rating-widget/app/modules/ratings/domain"
)

// ProfileLookup is satisfied by the identity profile cache.
type ProfileLookup interface {
	Lookup(id string) (identitydomain.Profile, bool)
}

// ProfileAuthorResolver shows a cached login profile as the rating author
// and falls back to the placeholder for users it has not seen.
type ProfileAuthorResolver struct {
	profiles ProfileLookup
}

func NewProfileAuthorResolver(profiles ProfileLookup) *ProfileAuthorResolver {
	return &ProfileAuthorResolver{profiles: profiles}
}

func (r *ProfileAuthorResolver) ResolveAuthor(_ context.Context, userID string) ratingsdomain.Author {
	if p, ok := r.profiles.Lookup(userID); ok && p.Name != "" {
		return ratingsdomain.Author{Name: p.Name, Avatar: p.Avatar}
	}
	return ratingsdomain.PlaceholderAuthor(userID)
}

var _ ratingsservice.AuthorResolver = (*ProfileAuthorResolver)(nil)
