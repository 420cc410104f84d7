package ratingsdb

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	ratingsdomain "github.com/XdrBOBX/rating-widget/app/modules/ratings/domain"
)

var base = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func newEntry(guild string, score int, at time.Time) ratingsdomain.Entry {
	return ratingsdomain.Entry{
		GuildID:   guild,
		Category:  ratingsdomain.CategoryGame,
		Score:     score,
		CreatedAt: at,
	}
}

func TestMemoryRepository_AppendAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	if err := repo.Append(ctx, newEntry("g1", 3, base)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := repo.Append(ctx, newEntry("g2", 5, base.Add(time.Second))); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := repo.Append(ctx, newEntry("g1", 4, base.Add(2*time.Second))); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := repo.ListByGuild(ctx, "g1")
	if err != nil {
		t.Fatalf("ListByGuild: %v", err)
	}
	if len(got) != 2 || got[0].Score != 3 || got[1].Score != 4 {
		t.Fatalf("ListByGuild(g1) = %+v, want scores [3 4] in insertion order", got)
	}

	n, _ := repo.Count(ctx)
	if n != 3 {
		t.Errorf("Count = %d, want 3", n)
	}

	empty, _ := repo.ListByGuild(ctx, "missing")
	if len(empty) != 0 {
		t.Errorf("ListByGuild(missing) = %+v, want empty", empty)
	}
}

func TestMemoryRepository_RejectsInvalid(t *testing.T) {
	repo := NewMemoryRepository()
	tests := []ratingsdomain.Entry{
		newEntry("", 3, base),
		newEntry("g1", 0, base),
		newEntry("g1", 6, base),
		{GuildID: "g1", Category: "games", Score: 3},
	}
	for i, e := range tests {
		if err := repo.Append(context.Background(), e); !errors.Is(err, ErrInvalidEntry) {
			t.Errorf("case %d: err = %v, want ErrInvalidEntry", i, err)
		}
	}
	if n, _ := repo.Count(context.Background()); n != 0 {
		t.Errorf("Count = %d, want 0", n)
	}
}

func TestMemoryRepository_CreatedAtNeverDecreases(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_ = repo.Append(ctx, newEntry("g1", 3, base))
	_ = repo.Append(ctx, newEntry("g1", 4, base.Add(-time.Minute)))

	got, _ := repo.ListByGuild(ctx, "g1")
	if !got[1].CreatedAt.Equal(base) {
		t.Errorf("second CreatedAt = %v, want %v", got[1].CreatedAt, base)
	}
}

func TestMemoryRepository_SnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	uid := "user-1234"
	e := newEntry("g1", 3, base)
	e.UserID = &uid
	_ = repo.Append(ctx, e)
	uid = "mutated"

	got, _ := repo.ListByGuild(ctx, "g1")
	*got[0].UserID = "changed"
	got[0].Score = 1

	again, _ := repo.ListByGuild(ctx, "g1")
	if *again[0].UserID != "user-1234" || again[0].Score != 3 {
		t.Errorf("stored entry was mutated through a snapshot: %+v", again[0])
	}
}

func TestMemoryRepository_ConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	const writers, perWriter = 8, 50
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				guild := fmt.Sprintf("g%d", w%2)
				if err := repo.Append(ctx, newEntry(guild, 1+i%5, time.Now())); err != nil {
					t.Errorf("Append: %v", err)
				}
				_, _ = repo.ListByGuild(ctx, guild)
			}
		}(w)
	}
	wg.Wait()

	n, _ := repo.Count(ctx)
	if n != writers*perWriter {
		t.Fatalf("Count = %d, want %d", n, writers*perWriter)
	}
	for _, g := range []string{"g0", "g1"} {
		entries, _ := repo.ListByGuild(ctx, g)
		for i := 1; i < len(entries); i++ {
			if entries[i].CreatedAt.Before(entries[i-1].CreatedAt) {
				t.Fatalf("%s: CreatedAt decreased at index %d", g, i)
			}
		}
	}
}
