package ratingsdomain

import "time"

// Category is one of the two fixed rating dimensions.
type Category string

const (
	CategoryGame    Category = "game"
	CategorySupport Category = "support"
)

// Categories lists every accepted category in display order.
var Categories = []Category{CategoryGame, CategorySupport}

// ParseCategory accepts only the exact lowercase category names.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryGame, CategorySupport:
		return Category(s), true
	}
	return "", false
}

const (
	MinScore         = 1
	MaxScore         = 5
	MaxCommentLength = 800
)

// Entry is one admitted rating. Entries are immutable once stored.
type Entry struct {
	GuildID   string    `json:"guildId"`
	UserID    *string   `json:"userId"`
	Category  Category  `json:"category"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// Anonymous reports whether the entry carries no identity.
func (e Entry) Anonymous() bool {
	return e.UserID == nil
}

// Clone returns a copy that shares no pointers with e.
func (e Entry) Clone() Entry {
	if e.UserID != nil {
		id := *e.UserID
		e.UserID = &id
	}
	return e
}
