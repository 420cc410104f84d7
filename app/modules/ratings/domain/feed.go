package ratingsdomain

import (
	"sort"
	"time"
)

const (
	DefaultFeedLimit = 20
	MinFeedLimit     = 1
	MaxFeedLimit     = 100
)

// Author is the public projection of a rating's identity.
type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// FeedItem is one entry of the recent reviews feed.
type FeedItem struct {
	Category  Category  `json:"category"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	Author    *Author   `json:"author"`
}

// ClampFeedLimit forces a feed limit into [MinFeedLimit, MaxFeedLimit].
func ClampFeedLimit(limit int) int {
	return clamp(limit, MinFeedLimit, MaxFeedLimit)
}

// SelectRecent returns up to limit entries of the guild, newest first.
// Entries must be given in insertion order; equal timestamps resolve to the
// most recently inserted entry first. The limit is clamped.
func SelectRecent(guildID string, entries []Entry, limit int) []Entry {
	limit = ClampFeedLimit(limit)

	selected := make([]Entry, 0, min(limit, len(entries)))
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].GuildID == guildID {
			selected = append(selected, entries[i])
		}
	}

	// selected is in reverse insertion order, so a stable sort keeps the
	// newest insert first among equal timestamps.
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].CreatedAt.After(selected[j].CreatedAt)
	})

	if len(selected) > limit {
		selected = selected[:limit]
	}
	return selected
}

// PlaceholderAuthor derives a display name from the last four characters of
// the identity when no identity service can describe the user.
func PlaceholderAuthor(userID string) Author {
	r := []rune(userID)
	if len(r) > 4 {
		r = r[len(r)-4:]
	}
	return Author{Name: "User " + string(r), Avatar: ""}
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
