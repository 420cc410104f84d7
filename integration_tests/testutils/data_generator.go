package testutils

import (
	"time"

	ratingsdomain "github.com/XdrBOBX/rating-widget/app/modules/ratings/domain"
	supportersdomain "github.com/XdrBOBX/rating-widget/app/modules/supporters/domain"
	"github.com/brianvoe/gofakeit/v7"
)

// TestDataGenerator creates valid ratings and supporters.
type TestDataGenerator struct {
	faker *gofakeit.Faker
}

// NewTestDataGenerator returns a generator; a seed of 0 picks one from the clock.
func NewTestDataGenerator(seed int64) *TestDataGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &TestDataGenerator{faker: gofakeit.New(uint64(seed))}
}

// GuildID returns a snowflake-like guild id.
func (g *TestDataGenerator) GuildID() string {
	return g.faker.Numerify("1###############")
}

// RatingEntry returns a valid entry for guildID. Roughly half carry a user id.
func (g *TestDataGenerator) RatingEntry(guildID string) ratingsdomain.Entry {
	entry := ratingsdomain.Entry{
		GuildID:   guildID,
		Category:  ratingsdomain.Categories[g.faker.Number(0, len(ratingsdomain.Categories)-1)],
		Score:     g.faker.Number(ratingsdomain.MinScore, ratingsdomain.MaxScore),
		Comment:   g.faker.Sentence(8),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	if g.faker.Bool() {
		id := g.faker.Numerify("2###############")
		entry.UserID = &id
	}
	return entry
}

// Supporter returns a valid supporter of guildID.
func (g *TestDataGenerator) Supporter(guildID string) supportersdomain.Supporter {
	return supportersdomain.Supporter{
		GuildID:   guildID,
		ID:        g.faker.UUID(),
		Name:      g.faker.FirstName(),
		AvatarURL: g.faker.URL(),
		Points:    float64(g.faker.Number(1, 500)),
	}
}
