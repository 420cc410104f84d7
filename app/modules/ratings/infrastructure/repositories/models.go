package ratingsdb

import (
	"context"
	"time"

	ratingsdomain "github.com/XdrBOBX/rating-widget/app/modules/ratings/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RatingEntry is the persisted form of a rating. ID orders entries by insertion.
type RatingEntry struct {
	bun.BaseModel `bun:"table:rating_entries,alias:re"`

	ID        int64     `bun:"id,pk,autoincrement"`
	PublicID  uuid.UUID `bun:"public_id,type:uuid,notnull,unique"`
	GuildID   string    `bun:"guild_id,notnull"`
	UserID    *string   `bun:"user_id"`
	Category  string    `bun:"category,notnull"`
	Score     int       `bun:"score,notnull"`
	Comment   string    `bun:"comment,notnull,default:''"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

var _ bun.BeforeAppendModelHook = (*RatingEntry)(nil)

// BeforeAppendModel assigns a public id on insert.
func (m *RatingEntry) BeforeAppendModel(_ context.Context, query bun.Query) error {
	if _, ok := query.(*bun.InsertQuery); ok && m.PublicID == uuid.Nil {
		m.PublicID = uuid.New()
	}
	return nil
}

func toModel(e ratingsdomain.Entry) *RatingEntry {
	e = e.Clone()
	return &RatingEntry{
		GuildID:   e.GuildID,
		UserID:    e.UserID,
		Category:  string(e.Category),
		Score:     e.Score,
		Comment:   e.Comment,
		CreatedAt: e.CreatedAt.UTC(),
	}
}

func (m *RatingEntry) toDomain() ratingsdomain.Entry {
	return ratingsdomain.Entry{
		GuildID:   m.GuildID,
		UserID:    m.UserID,
		Category:  ratingsdomain.Category(m.Category),
		Score:     m.Score,
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt.UTC(),
	}
}
