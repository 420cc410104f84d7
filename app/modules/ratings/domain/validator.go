package ratingsdomain

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Candidate is an unvalidated submission. Score holds the raw client value
// in textual form so that coercion happens in one place.
type Candidate struct {
	GuildID  string
	UserID   string
	Category string
	Score    string
	Comment  string
}

// Validator turns candidates into entries. It has no side effects.
type Validator struct {
	now func() time.Time
}

// NewValidator creates a Validator. A nil clock defaults to time.Now.
func NewValidator(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{now: now}
}

// Validate checks the candidate and builds the entry to store.
func (v *Validator) Validate(c Candidate) (Entry, error) {
	if c.GuildID == "" {
		return Entry{}, reject("guildId", ErrMissingGuild)
	}

	category, ok := ParseCategory(c.Category)
	if !ok {
		return Entry{}, reject("category", ErrInvalidCategory)
	}

	score, ok := ParseScore(c.Score)
	if !ok {
		return Entry{}, reject("score", ErrInvalidScore)
	}

	entry := Entry{
		GuildID:   c.GuildID,
		Category:  category,
		Score:     score,
		Comment:   TruncateComment(c.Comment),
		CreatedAt: v.now().UTC(),
	}
	if c.UserID != "" {
		id := c.UserID
		entry.UserID = &id
	}
	return entry, nil
}

// ParseScore coerces the raw value to a number and accepts it only when it
// is an integer within [MinScore, MaxScore]. Out-of-range values are never
// clamped.
func ParseScore(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f != math.Trunc(f) || f < MinScore || f > MaxScore {
		return 0, false
	}
	return int(f), true
}

// TruncateComment keeps at most MaxCommentLength runes.
func TruncateComment(s string) string {
	if utf8.RuneCountInString(s) <= MaxCommentLength {
		return s
	}
	n := 0
	for i := range s {
		if n == MaxCommentLength {
			return s[:i]
		}
		n++
	}
	return s
}
