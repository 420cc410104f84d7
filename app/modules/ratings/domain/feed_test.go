package ratingsdomain

import (
	"testing"
	"time"
)

func TestClampFeedLimit(t *testing.T) {
	cases := map[int]int{-5: 1, 0: 1, 1: 1, 20: 20, 100: 100, 101: 100, 5000: 100}
	for in, want := range cases {
		if got := ClampFeedLimit(in); got != want {
			t.Fatalf("ClampFeedLimit(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestSelectRecentOrdering(t *testing.T) {
	t0 := fixedNow
	entries := []Entry{
		{GuildID: "g1", Category: CategoryGame, Score: 1, Comment: "a", CreatedAt: t0},
		{GuildID: "g1", Category: CategorySupport, Score: 2, Comment: "b", CreatedAt: t0.Add(time.Second)},
		{GuildID: "g2", Category: CategoryGame, Score: 3, Comment: "other guild", CreatedAt: t0.Add(2 * time.Second)},
		{GuildID: "g1", Category: CategoryGame, Score: 4, Comment: "c", CreatedAt: t0.Add(time.Second)},
		{GuildID: "g1", Category: CategorySupport, Score: 5, Comment: "d", CreatedAt: t0.Add(3 * time.Second)},
	}

	got := SelectRecent("g1", entries, 10)

	want := []string{"d", "c", "b", "a"}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i, c := range want {
		if got[i].Comment != c {
			t.Fatalf("position %d: expected %q, got %q", i, c, got[i].Comment)
		}
		if got[i].GuildID != "g1" {
			t.Fatalf("leaked entry from guild %s", got[i].GuildID)
		}
	}
}

func TestSelectRecentLimitAndNoPadding(t *testing.T) {
	var entries []Entry
	for i := 0; i < 150; i++ {
		entries = append(entries, Entry{GuildID: "g1", Category: CategoryGame, Score: 3, CreatedAt: fixedNow.Add(time.Duration(i) * time.Millisecond)})
	}

	if got := SelectRecent("g1", entries, 2); len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got := SelectRecent("g1", entries, 0); len(got) != 1 {
		t.Fatalf("expected limit clamped to 1, got %d", len(got))
	}
	if got := SelectRecent("g1", entries, 1000); len(got) != MaxFeedLimit {
		t.Fatalf("expected limit clamped to %d, got %d", MaxFeedLimit, len(got))
	}
	if got := SelectRecent("g1", entries[:3], 20); len(got) != 3 {
		t.Fatalf("expected 3 items without padding, got %d", len(got))
	}
	if got := SelectRecent("missing", entries, 20); len(got) != 0 {
		t.Fatalf("expected no items, got %d", len(got))
	}
}

func TestPlaceholderAuthor(t *testing.T) {
	if got := PlaceholderAuthor("123456789"); got.Name != "User 6789" || got.Avatar != "" {
		t.Fatalf("unexpected author %+v", got)
	}
	if got := PlaceholderAuthor("ab"); got.Name != "User ab" {
		t.Fatalf("unexpected author %+v", got)
	}
}
