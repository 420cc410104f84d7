package ratingsdb

import (
	"context"
	"fmt"
	"sync"
	"time"

	ratingsdomain "github.com/XdrBOBX/rating-widget/app/modules/ratings/domain"
)

// MemoryRepository keeps entries in process memory. It starts empty and is
// never persisted.
type MemoryRepository struct {
	mu      sync.RWMutex
	byGuild map[string][]ratingsdomain.Entry
	total   int
	last    time.Time
}

// NewMemoryRepository creates an empty in-memory store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byGuild: make(map[string][]ratingsdomain.Entry),
	}
}

// Append stores the entry. CreatedAt is raised to the previous entry's
// timestamp when needed so the sequence stays non-decreasing.
func (r *MemoryRepository) Append(_ context.Context, entry ratingsdomain.Entry) error {
	if err := checkInvariants(entry); err != nil {
		return err
	}
	entry = entry.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.CreatedAt.Before(r.last) {
		entry.CreatedAt = r.last
	}
	r.last = entry.CreatedAt
	r.byGuild[entry.GuildID] = append(r.byGuild[entry.GuildID], entry)
	r.total++
	return nil
}

// ListByGuild returns a copy of the guild's entries.
func (r *MemoryRepository) ListByGuild(_ context.Context, guildID string) ([]ratingsdomain.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src := r.byGuild[guildID]
	out := make([]ratingsdomain.Entry, len(src))
	for i, e := range src {
		out[i] = e.Clone()
	}
	return out, nil
}

// Count returns the total number of stored entries.
func (r *MemoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.total, nil
}

func checkInvariants(e ratingsdomain.Entry) error {
	if e.GuildID == "" {
		return fmt.Errorf("%w: empty guild", ErrInvalidEntry)
	}
	if _, ok := ratingsdomain.ParseCategory(string(e.Category)); !ok {
		return fmt.Errorf("%w: category %q", ErrInvalidEntry, e.Category)
	}
	if e.Score < ratingsdomain.MinScore || e.Score > ratingsdomain.MaxScore {
		return fmt.Errorf("%w: score %d", ErrInvalidEntry, e.Score)
	}
	return nil
}

var _ Repository = (*MemoryRepository)(nil)
