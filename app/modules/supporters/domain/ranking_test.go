package supportersdomain

import (
	"math"
	"reflect"
	"testing"
)

func TestClampTopLimit(t *testing.T) {
	tests := []struct{ in, want int }{
		{-4, 1}, {0, 1}, {1, 1}, {5, 5}, {20, 20}, {21, 20}, {1000, 20},
	}
	for _, tt := range tests {
		if got := ClampTopLimit(tt.in); got != tt.want {
			t.Errorf("ClampTopLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRankTop_FallbackWhenEmpty(t *testing.T) {
	want := []Ranked{
		{ID: "1", Name: "Sage", Points: 128, Rank: 1},
		{ID: "2", Name: "Nova", Points: 97, Rank: 2},
		{ID: "3", Name: "Orion", Points: 76, Rank: 3},
		{ID: "4", Name: "Kira", Points: 55, Rank: 4},
		{ID: "5", Name: "Ash", Points: 33, Rank: 5},
	}
	for _, limit := range []int{1, 5, 20} {
		got := RankTop("g1", []Supporter{{GuildID: "other", ID: "x", Points: 1}}, limit)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("RankTop(limit=%d) = %+v, want fallback", limit, got)
		}
	}
}

func TestRankTop_OrderingAndRanks(t *testing.T) {
	dir := []Supporter{
		{GuildID: "g1", ID: "a", Name: "A", Points: 10},
		{GuildID: "g1", ID: "b", Name: "B", Points: 30, AvatarURL: "https://cdn.example/b.png"},
		{GuildID: "g2", ID: "z", Name: "Z", Points: 99},
		{GuildID: "g1", ID: "c", Name: "C", Points: 20, Rank: 2},
		{GuildID: "g1", ID: "d", Name: "D", Points: 10},
	}

	got := RankTop("g1", dir, 5)
	want := []Ranked{
		{ID: "b", Name: "B", Avatar: "https://cdn.example/b.png", Points: 30, Rank: 1},
		{ID: "c", Name: "C", Points: 20, Rank: 2},
		{ID: "a", Name: "A", Points: 10, Rank: 3},
		{ID: "d", Name: "D", Points: 10, Rank: 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("RankTop = %+v, want %+v", got, want)
	}

	top := RankTop("g1", dir, 2)
	if len(top) != 2 || top[0].ID != "b" || top[1].ID != "c" {
		t.Errorf("RankTop(limit=2) = %+v", top)
	}

	if again := RankTop("g1", dir, 5); !reflect.DeepEqual(again, got) {
		t.Errorf("RankTop is not deterministic: %+v vs %+v", again, got)
	}
}

func TestRankTop_DoesNotReorderInput(t *testing.T) {
	dir := []Supporter{
		{GuildID: "g1", ID: "a", Points: 1},
		{GuildID: "g1", ID: "b", Points: 2},
	}
	_ = RankTop("g1", dir, 5)
	if dir[0].ID != "a" || dir[1].ID != "b" {
		t.Errorf("input was reordered: %+v", dir)
	}
}

func TestSupporter_Validate(t *testing.T) {
	tests := []struct {
		name string
		s    Supporter
		want error
	}{
		{name: "valid", s: Supporter{GuildID: "g", ID: "1", Points: 3}},
		{name: "no guild", s: Supporter{ID: "1"}, want: ErrMissingGuild},
		{name: "no id", s: Supporter{GuildID: "g"}, want: ErrMissingID},
		{name: "nan", s: Supporter{GuildID: "g", ID: "1", Points: math.NaN()}, want: ErrInvalidPoint},
		{name: "negative rank", s: Supporter{GuildID: "g", ID: "1", Rank: -1}, want: ErrInvalidRank},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Validate(); got != tt.want {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}
