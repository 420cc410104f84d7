package supportersservice

import (
	"context"

	supportersdomain "github.com/XdrBOBX/rating-widget/app/modules/supporters/domain"
)

// FakeDirectory provides a programmable stub for supportersdb.Directory.
type FakeDirectory struct {
	trace []string

	ListByGuildFunc func(ctx context.Context, guildID string) ([]supportersdomain.Supporter, error)
	UpsertFunc      func(ctx context.Context, s supportersdomain.Supporter) error
}

func (f *FakeDirectory) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeDirectory) ListByGuild(ctx context.Context, guildID string) ([]supportersdomain.Supporter, error) {
	f.record("ListByGuild")
	if f.ListByGuildFunc != nil {
		return f.ListByGuildFunc(ctx, guildID)
	}
	return nil, nil
}

func (f *FakeDirectory) Upsert(ctx context.Context, s supportersdomain.Supporter) error {
	f.record("Upsert")
	if f.UpsertFunc != nil {
		return f.UpsertFunc(ctx, s)
	}
	return nil
}
