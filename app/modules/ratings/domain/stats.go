package ratingsdomain

// CategoryStats aggregates one category within one guild.
// Dist[i] counts entries with score i+1.
type CategoryStats struct {
	Avg   float64 `json:"avg"`
	Count int     `json:"count"`
	Dist  [5]int  `json:"dist"`
}

// Summary holds stats for both categories.
type Summary struct {
	Game    CategoryStats `json:"game"`
	Support CategoryStats `json:"support"`
}

// Summarize aggregates the given entries. Entries belonging to another guild
// are ignored, as are entries that would violate the store invariants.
func Summarize(guildID string, entries []Entry) Summary {
	var (
		sums    [2]int
		summary Summary
	)
	for _, e := range entries {
		if e.GuildID != guildID || e.Score < MinScore || e.Score > MaxScore {
			continue
		}
		var stats *CategoryStats
		var slot int
		switch e.Category {
		case CategoryGame:
			stats, slot = &summary.Game, 0
		case CategorySupport:
			stats, slot = &summary.Support, 1
		default:
			continue
		}
		stats.Count++
		stats.Dist[e.Score-1]++
		sums[slot] += e.Score
	}

	summary.Game.Avg = mean(sums[0], summary.Game.Count)
	summary.Support.Avg = mean(sums[1], summary.Support.Count)
	return summary
}

// For returns the stats of one category.
func (s Summary) For(c Category) CategoryStats {
	if c == CategorySupport {
		return s.Support
	}
	return s.Game
}

func mean(sum, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}
