package clubs

// NotFoundMessage is the error text the REST API sends for an unknown club id.
const NotFoundMessage = "club not found"

// Leader is a member of a club's leadership team.
type Leader struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Email    string `json:"email,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// Speaker is a guest presenting at a club event.
type Speaker struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Event describes the next event a club is hosting.
// Date is a human-readable string (e.g. "Oct 24, 2024 • 6:00 PM") and is never parsed.
type Event struct {
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Speakers    []Speaker `json:"speakers"`
}

// Stat is a labelled metric shown on a club profile.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Club is the canonical club profile. ID is the only required attribute;
// icon, gradient and accent are opaque theme tokens.
type Club struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Tagline       string   `json:"tagline"`
	Description   string   `json:"description"`
	Icon          string   `json:"icon"`
	Gradient      string   `json:"gradient"`
	Accent        string   `json:"accent"`
	Features      []string `json:"features"`
	Leadership    []Leader `json:"leadership"`
	UpcomingEvent Event    `json:"upcomingEvent"`
	Stats         []Stat   `json:"stats"`
}

// Clone returns a deep copy so callers never share slices with the owner.
func (c Club) Clone() Club {
	out := c
	out.Features = cloneSlice(c.Features)
	out.Leadership = cloneSlice(c.Leadership)
	out.Stats = cloneSlice(c.Stats)
	out.UpcomingEvent = c.UpcomingEvent.Clone()
	return out
}

// Clone returns a deep copy of the event.
func (e Event) Clone() Event {
	out := e
	out.Speakers = cloneSlice(e.Speakers)
	return out
}

// CloneAll deep-copies a slice of clubs.
func CloneAll(items []Club) []Club {
	if items == nil {
		return []Club{}
	}
	out := make([]Club, len(items))
	for i, c := range items {
		out[i] = c.Clone()
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
