package ratingsservice

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	ratingsdomain "github.com/XdrBOBX/rating-widget/app/modules/ratings/domain"
	ratingsdb "github.com/XdrBOBX/rating-widget/app/modules/ratings/infrastructure/repositories"
)

// ------------------------
// Fake Rating Repository
// ------------------------

// FakeRatingRepository provides a programmable stub for ratingsdb.Repository.
type FakeRatingRepository struct {
	trace []string

	AppendFunc      func(ctx context.Context, entry ratingsdomain.Entry) error
	ListByGuildFunc func(ctx context.Context, guildID string) ([]ratingsdomain.Entry, error)
	CountFunc       func(ctx context.Context) (int, error)
}

func NewFakeRatingRepository() *FakeRatingRepository {
	return &FakeRatingRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeRatingRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeRatingRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeRatingRepository) Append(ctx context.Context, entry ratingsdomain.Entry) error {
	f.record("Append")
	if f.AppendFunc != nil {
		return f.AppendFunc(ctx, entry)
	}
	return nil
}

func (f *FakeRatingRepository) ListByGuild(ctx context.Context, guildID string) ([]ratingsdomain.Entry, error) {
	f.record("ListByGuild")
	if f.ListByGuildFunc != nil {
		return f.ListByGuildFunc(ctx, guildID)
	}
	return nil, nil
}

func (f *FakeRatingRepository) Count(ctx context.Context) (int, error) {
	f.record("Count")
	if f.CountFunc != nil {
		return f.CountFunc(ctx)
	}
	return 0, nil
}

var _ ratingsdb.Repository = (*FakeRatingRepository)(nil)

// ------------------------
// Fake Author Resolver
// ------------------------

type FakeAuthorResolver struct {
	calls   []string
	authors map[string]ratingsdomain.Author
}

func (f *FakeAuthorResolver) ResolveAuthor(_ context.Context, userID string) ratingsdomain.Author {
	f.calls = append(f.calls, userID)
	if a, ok := f.authors[userID]; ok {
		return a
	}
	return ratingsdomain.PlaceholderAuthor(userID)
}

// ------------------------
// Fake Publisher
// ------------------------

type published struct {
	topic string
	msg   *message.Message
}

type FakePublisher struct {
	published []published
	err       error
}

func (f *FakePublisher) Publish(topic string, messages ...*message.Message) error {
	if f.err != nil {
		return f.err
	}
	for _, m := range messages {
		f.published = append(f.published, published{topic: topic, msg: m})
	}
	return nil
}

func (f *FakePublisher) Close() error { return nil }
