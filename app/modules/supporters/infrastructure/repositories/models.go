package supportersdb

import (
	"time"

	supportersdomain "github.com/XdrBOBX/rating-widget/app/modules/supporters/domain"
	"github.com/uptrace/bun"
)

// SupporterRecord is the persisted form of a supporter. ID preserves the
// first insertion order across upserts.
type SupporterRecord struct {
	bun.BaseModel `bun:"table:supporters,alias:s"`

	ID          int64     `bun:"id,pk,autoincrement"`
	GuildID     string    `bun:"guild_id,notnull,unique:supporters_guild_supporter"`
	SupporterID string    `bun:"supporter_id,notnull,unique:supporters_guild_supporter"`
	Name        string    `bun:"name,notnull,default:''"`
	AvatarURL   string    `bun:"avatar_url,notnull,default:''"`
	Points      float64   `bun:"points,notnull"`
	Rank        int       `bun:"rank,notnull,default:0"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

func toRecord(s supportersdomain.Supporter) *SupporterRecord {
	return &SupporterRecord{
		GuildID:     s.GuildID,
		SupporterID: s.ID,
		Name:        s.Name,
		AvatarURL:   s.AvatarURL,
		Points:      s.Points,
		Rank:        s.Rank,
		UpdatedAt:   time.Now().UTC(),
	}
}

func (r *SupporterRecord) toDomain() supportersdomain.Supporter {
	return supportersdomain.Supporter{
		GuildID:   r.GuildID,
		ID:        r.SupporterID,
		Name:      r.Name,
		AvatarURL: r.AvatarURL,
		Points:    r.Points,
		Rank:      r.Rank,
	}
}
