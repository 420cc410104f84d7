package supportersdb

import (
	"context"
	"fmt"
	"sync"

	supportersdomain "github.com/XdrBOBX/rating-widget/app/modules/supporters/domain"
)

// MemoryDirectory holds supporters in process memory.
type MemoryDirectory struct {
	mu      sync.RWMutex
	byGuild map[string][]supportersdomain.Supporter
	index   map[string]map[string]int
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		byGuild: make(map[string][]supportersdomain.Supporter),
		index:   make(map[string]map[string]int),
	}
}

func (d *MemoryDirectory) ListByGuild(_ context.Context, guildID string) ([]supportersdomain.Supporter, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	src := d.byGuild[guildID]
	out := make([]supportersdomain.Supporter, len(src))
	copy(out, src)
	return out, nil
}

func (d *MemoryDirectory) Upsert(_ context.Context, s supportersdomain.Supporter) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSupporter, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	idx, ok := d.index[s.GuildID]
	if !ok {
		idx = make(map[string]int)
		d.index[s.GuildID] = idx
	}
	if pos, exists := idx[s.ID]; exists {
		d.byGuild[s.GuildID][pos] = s
		return nil
	}
	idx[s.ID] = len(d.byGuild[s.GuildID])
	d.byGuild[s.GuildID] = append(d.byGuild[s.GuildID], s)
	return nil
}

var _ Directory = (*MemoryDirectory)(nil)
