package supportersdomain

import (
	"errors"
	"math"
)

// Supporter is one leaderboard entrant as held by the directory.
// Rank is zero when the directory does not assign one.
type Supporter struct {
	GuildID   string
	ID        string
	Name      string
	AvatarURL string
	Points    float64
	Rank      int
}

var (
	ErrMissingGuild = errors.New("guild id required")
	ErrMissingID    = errors.New("supporter id required")
	ErrInvalidPoint = errors.New("points must be a finite number")
	ErrInvalidRank  = errors.New("rank must not be negative")
)

// Validate checks the record before it enters the directory.
func (s Supporter) Validate() error {
	switch {
	case s.GuildID == "":
		return ErrMissingGuild
	case s.ID == "":
		return ErrMissingID
	case math.IsNaN(s.Points) || math.IsInf(s.Points, 0):
		return ErrInvalidPoint
	case s.Rank < 0:
		return ErrInvalidRank
	}
	return nil
}

// Ranked is the public projection returned by the leaderboard.
type Ranked struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Avatar string  `json:"avatar,omitempty"`
	Points float64 `json:"points"`
	Rank   int     `json:"rank"`
}
