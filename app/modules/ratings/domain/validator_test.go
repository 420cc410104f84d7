package ratingsdomain

import (
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestValidatorValidate(t *testing.T) {
	v := NewValidator(func() time.Time { return fixedNow })

	tests := []struct {
		name      string
		candidate Candidate
		wantErr   error
		wantScore int
	}{
		{name: "valid game", candidate: Candidate{GuildID: "g1", Category: "game", Score: "5"}, wantScore: 5},
		{name: "valid support with float form", candidate: Candidate{GuildID: "g1", Category: "support", Score: "3.0"}, wantScore: 3},
		{name: "padded number", candidate: Candidate{GuildID: "g1", Category: "game", Score: " 1 "}, wantScore: 1},
		{name: "missing guild", candidate: Candidate{Category: "game", Score: "4"}, wantErr: ErrMissingGuild},
		{name: "missing category", candidate: Candidate{GuildID: "g1", Score: "4"}, wantErr: ErrInvalidCategory},
		{name: "unknown category", candidate: Candidate{GuildID: "g1", Category: "music", Score: "4"}, wantErr: ErrInvalidCategory},
		{name: "category is case sensitive", candidate: Candidate{GuildID: "g1", Category: "Game", Score: "4"}, wantErr: ErrInvalidCategory},
		{name: "zero score", candidate: Candidate{GuildID: "g1", Category: "game", Score: "0"}, wantErr: ErrInvalidScore},
		{name: "above range", candidate: Candidate{GuildID: "g1", Category: "game", Score: "6"}, wantErr: ErrInvalidScore},
		{name: "negative", candidate: Candidate{GuildID: "g1", Category: "game", Score: "-2"}, wantErr: ErrInvalidScore},
		{name: "fractional", candidate: Candidate{GuildID: "g1", Category: "game", Score: "4.5"}, wantErr: ErrInvalidScore},
		{name: "non numeric", candidate: Candidate{GuildID: "g1", Category: "game", Score: "abc"}, wantErr: ErrInvalidScore},
		{name: "empty score", candidate: Candidate{GuildID: "g1", Category: "game"}, wantErr: ErrInvalidScore},
		{name: "infinite", candidate: Candidate{GuildID: "g1", Category: "game", Score: "Inf"}, wantErr: ErrInvalidScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := v.Validate(tt.candidate)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected *ValidationError, got %T", err)
				}
				if verr.Reason() != tt.wantErr.Error() {
					t.Fatalf("unexpected reason %q", verr.Reason())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if entry.Score != tt.wantScore {
				t.Fatalf("expected score %d, got %d", tt.wantScore, entry.Score)
			}
			if !entry.CreatedAt.Equal(fixedNow) {
				t.Fatalf("expected createdAt %v, got %v", fixedNow, entry.CreatedAt)
			}
		})
	}
}

func TestValidatorUserID(t *testing.T) {
	v := NewValidator(nil)

	anon, err := v.Validate(Candidate{GuildID: "g1", Category: "game", Score: "2"})
	if err != nil {
		t.Fatal(err)
	}
	if !anon.Anonymous() {
		t.Fatalf("expected anonymous entry, got user %q", *anon.UserID)
	}

	named, err := v.Validate(Candidate{GuildID: "g1", UserID: "123456789", Category: "game", Score: "2"})
	if err != nil {
		t.Fatal(err)
	}
	if named.UserID == nil || *named.UserID != "123456789" {
		t.Fatalf("expected user id to be kept, got %v", named.UserID)
	}
}

func TestTruncateCommentCountsRunes(t *testing.T) {
	short := "great"
	if got := TruncateComment(short); got != short {
		t.Fatalf("expected short comment unchanged, got %q", got)
	}

	long := strings.Repeat("ü", MaxCommentLength+25)
	got := TruncateComment(long)
	if n := utf8.RuneCountInString(got); n != MaxCommentLength {
		t.Fatalf("expected %d runes, got %d", MaxCommentLength, n)
	}
	if !utf8.ValidString(got) {
		t.Fatal("truncation split a multi-byte rune")
	}

	exact := strings.Repeat("a", MaxCommentLength)
	if got := TruncateComment(exact); got != exact {
		t.Fatal("expected comment at the limit to be kept whole")
	}
}
