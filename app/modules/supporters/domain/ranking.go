package supportersdomain

import "sort"

const (
	DefaultTopLimit = 5
	MinTopLimit     = 1
	MaxTopLimit     = 20
)

// ClampTopLimit forces a leaderboard limit into [MinTopLimit, MaxTopLimit].
func ClampTopLimit(limit int) int {
	if limit < MinTopLimit {
		return MinTopLimit
	}
	if limit > MaxTopLimit {
		return MaxTopLimit
	}
	return limit
}

// RankTop filters the directory by guild, orders by points descending and
// keeps the first limit records. Equal points keep directory order. Records
// without an explicit rank get their 1-based post-sort position. An empty
// result is replaced by the fallback list.
func RankTop(guildID string, directory []Supporter, limit int) []Ranked {
	limit = ClampTopLimit(limit)

	selected := make([]Supporter, 0, len(directory))
	for _, s := range directory {
		if s.GuildID == guildID {
			selected = append(selected, s)
		}
	}
	if len(selected) == 0 {
		return Fallback()
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Points > selected[j].Points
	})
	if len(selected) > limit {
		selected = selected[:limit]
	}

	out := make([]Ranked, len(selected))
	for i, s := range selected {
		rank := s.Rank
		if rank <= 0 {
			rank = i + 1
		}
		out[i] = Ranked{ID: s.ID, Name: s.Name, Avatar: s.AvatarURL, Points: s.Points, Rank: rank}
	}
	return out
}

// Fallback is the demo leaderboard shown for guilds without supporters.
// It is returned whole regardless of the requested limit.
func Fallback() []Ranked {
	return []Ranked{
		{ID: "1", Name: "Sage", Points: 128, Rank: 1},
		{ID: "2", Name: "Nova", Points: 97, Rank: 2},
		{ID: "3", Name: "Orion", Points: 76, Rank: 3},
		{ID: "4", Name: "Kira", Points: 55, Rank: 4},
		{ID: "5", Name: "Ash", Points: 33, Rank: 5},
	}
}
