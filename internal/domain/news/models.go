package news

import (
	"errors"
	"strings"
)

// ErrTitleRequired is returned for an item whose title is blank.
var ErrTitleRequired = errors.New("title is required")

// Category classifies a news item. The contract accepts any string, but the
// site only ever renders the three known categories.
type Category string

const (
	CategoryAnnouncement Category = "Announcement"
	CategoryAchievement  Category = "Achievement"
	CategoryOpportunity  Category = "Opportunity"
)

// Known reports whether c is one of the categories the site renders.
func (c Category) Known() bool {
	switch c {
	case CategoryAnnouncement, CategoryAchievement, CategoryOpportunity:
		return true
	default:
		return false
	}
}

// Item is a single announcement. Items are immutable once created.
type Item struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Date     string   `json:"date"`
	Category Category `json:"category"`
	Author   string   `json:"author"`
}

// IDs returns the identifiers of items in order.
func IDs(items []Item) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

// CloneAll copies a slice of items; Item has no reference fields so a shallow copy is enough.
func CloneAll(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// Normalize trims the id and rejects a blank title. Every backend applies it
// before storing an item.
func Normalize(item Item) (Item, error) {
	item.ID = strings.TrimSpace(item.ID)
	if strings.TrimSpace(item.Title) == "" {
		return Item{}, ErrTitleRequired
	}
	return item, nil
}
