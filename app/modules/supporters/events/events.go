package supportersevents

import supportersdomain "github.com/XdrBOBX/rating-widget/app/modules/supporters/domain"

// SupporterUpsertedV1 carries a supporter record from the system that tracks
// points. Records are keyed by guild and id.
const SupporterUpsertedV1 = "supporters.upserted.v1"

// SupporterUpsertedPayloadV1 is the wire form of SupporterUpsertedV1.
type SupporterUpsertedPayloadV1 struct {
	GuildID string  `json:"guild_id"`
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Avatar  string  `json:"avatar,omitempty"`
	Points  float64 `json:"points"`
	Rank    int     `json:"rank,omitempty"`
}

// Supporter converts the payload to a directory record.
func (p SupporterUpsertedPayloadV1) Supporter() supportersdomain.Supporter {
	return supportersdomain.Supporter{
		GuildID:   p.GuildID,
		ID:        p.ID,
		Name:      p.Name,
		AvatarURL: p.Avatar,
		Points:    p.Points,
		Rank:      p.Rank,
	}
}
