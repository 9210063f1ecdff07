package testutil

import (
	"github.com/preston-bernstein/nexus-data-service/internal/domain/clubs"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/news"
)

// SampleClub returns a minimal club fixture with the provided id.
func SampleClub(id string) clubs.Club {
	return clubs.Club{
		ID:       id,
		Name:     "Club " + id,
		Tagline:  "Tagline " + id,
		Features: []string{"one", "two"},
		Leadership: []clubs.Leader{
			{Name: "Lead", Role: "President"},
		},
		UpcomingEvent: clubs.Event{Title: "Kickoff", Date: "Oct 24, 2024 • 6:00 PM"},
		Stats:         []clubs.Stat{{Label: "Members", Value: "10"}},
	}
}

// SampleNews returns a news item in the Announcement category.
func SampleNews(id, title string) news.Item {
	return news.Item{
		ID:       id,
		Title:    title,
		Summary:  "summary",
		Date:     "Oct 10, 2024",
		Category: news.CategoryAnnouncement,
		Author:   "Test",
	}
}
