package ratingshandlers

import (
	"context"

	ratingsservice "github.com/XdrBOBX/rating-widget/app/modules/ratings/application"
	ratingsdomain "github.com/XdrBOBX/rating-widget/app/modules/ratings/domain"
)

// FakeService is a programmable stub for ratingsservice.Service.
type FakeService struct {
	trace []string

	SubmitRatingFunc func(ctx context.Context, c ratingsdomain.Candidate) (ratingsdomain.Entry, error)
	GetSummaryFunc   func(ctx context.Context, guildID string) (ratingsdomain.Summary, error)
	GetRecentFunc    func(ctx context.Context, guildID string, limit int) ([]ratingsdomain.FeedItem, error)
}

func (f *FakeService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeService) SubmitRating(ctx context.Context, c ratingsdomain.Candidate) (ratingsdomain.Entry, error) {
	f.record("SubmitRating")
	if f.SubmitRatingFunc != nil {
		return f.SubmitRatingFunc(ctx, c)
	}
	return ratingsdomain.Entry{}, nil
}

func (f *FakeService) GetSummary(ctx context.Context, guildID string) (ratingsdomain.Summary, error) {
	f.record("GetSummary")
	if f.GetSummaryFunc != nil {
		return f.GetSummaryFunc(ctx, guildID)
	}
	return ratingsdomain.Summary{}, nil
}

func (f *FakeService) GetRecent(ctx context.Context, guildID string, limit int) ([]ratingsdomain.FeedItem, error) {
	f.record("GetRecent")
	if f.GetRecentFunc != nil {
		return f.GetRecentFunc(ctx, guildID, limit)
	}
	return []ratingsdomain.FeedItem{}, nil
}

var _ ratingsservice.Service = (*FakeService)(nil)
