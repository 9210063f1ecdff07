package store

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/preston-bernstein/nexus-data-service/internal/domain/clubs"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/news"
	"github.com/preston-bernstein/nexus-data-service/internal/fixtures"
)

var (
	// ErrClubNotFound is returned when updating a club id that is not stored.
	ErrClubNotFound = errors.New("club not found")
	// ErrDuplicateID is returned when a news id has already been issued, even if since deleted.
	ErrDuplicateID = errors.New("news id already used")
)

// MemoryStore keeps the canonical club and news collections in memory.
// Every read returns a deep copy; every write happens under the lock.
type MemoryStore struct {
	mu     sync.RWMutex
	clubs  []clubs.Club
	news   []news.Item
	issued map[string]struct{}
	lastID int64
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		clubs:  []clubs.Club{},
		news:   []news.Item{},
		issued: make(map[string]struct{}),
	}
}

// NewSeededStore constructs a MemoryStore holding the fixture data.
func NewSeededStore() *MemoryStore {
	s := NewMemoryStore()
	s.SetClubs(fixtures.Clubs())
	s.SetNews(fixtures.News())
	return s
}

// ListClubs returns a copy of every club in seed order.
func (s *MemoryStore) ListClubs() []clubs.Club {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return clubs.CloneAll(s.clubs)
}

// GetClub retrieves a club by ID.
func (s *MemoryStore) GetClub(id string) (clubs.Club, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.clubIndex(id); idx >= 0 {
		return s.clubs[idx].Clone(), true
	}
	return clubs.Club{}, false
}

// UpdateClub merges patch into the stored club and returns the result.
func (s *MemoryStore) UpdateClub(id string, patch clubs.Patch) (clubs.Club, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.clubIndex(id)
	if idx < 0 {
		return clubs.Club{}, ErrClubNotFound
	}
	s.clubs[idx] = patch.Apply(s.clubs[idx])
	return s.clubs[idx].Clone(), nil
}

// SetClubs replaces the club collection. Later duplicates of an id are dropped.
func (s *MemoryStore) SetClubs(items []clubs.Club) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(items))
	s.clubs = make([]clubs.Club, 0, len(items))
	for _, c := range items {
		if _, dup := seen[c.ID]; dup || c.ID == "" {
			continue
		}
		seen[c.ID] = struct{}{}
		s.clubs = append(s.clubs, c.Clone())
	}
}

// ListNews returns a copy of the news collection, newest first.
func (s *MemoryStore) ListNews() []news.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return news.CloneAll(s.news)
}

// PrependNews inserts item ahead of every existing item. An empty ID is
// replaced with a timestamp-derived one based on now.
func (s *MemoryStore) PrependNews(item news.Item, now time.Time) (news.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == "" {
		item.ID = s.nextID(now)
	}
	if _, used := s.issued[item.ID]; used {
		return news.Item{}, ErrDuplicateID
	}
	s.issued[item.ID] = struct{}{}

	next := make([]news.Item, 0, len(s.news)+1)
	next = append(next, item)
	s.news = append(next, s.news...)
	return item, nil
}

// DeleteNews removes the item with id and reports whether one was removed.
func (s *MemoryStore) DeleteNews(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, it := range s.news {
		if it.ID == id {
			s.news = append(s.news[:i:i], s.news[i+1:]...)
			return true
		}
	}
	return false
}

// SetNews replaces the news collection, keeping the given order.
func (s *MemoryStore) SetNews(items []news.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.news = make([]news.Item, 0, len(items))
	for _, it := range items {
		if _, used := s.issued[it.ID]; used || it.ID == "" {
			continue
		}
		s.issued[it.ID] = struct{}{}
		s.news = append(s.news, it)
	}
}

func (s *MemoryStore) clubIndex(id string) int {
	for i, c := range s.clubs {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// nextID must be called with the write lock held.
func (s *MemoryStore) nextID(now time.Time) string {
	candidate := now.UnixMilli()
	if candidate <= s.lastID {
		candidate = s.lastID + 1
	}
	for {
		id := strconv.FormatInt(candidate, 10)
		if _, used := s.issued[id]; !used {
			s.lastID = candidate
			return id
		}
		candidate++
	}
}
