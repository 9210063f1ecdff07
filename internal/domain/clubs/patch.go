package clubs

// Patch is a shallow merge patch for a Club. Nil fields are left untouched;
// there is deliberately no ID field, so the identifier cannot be rewritten.
type Patch struct {
	Name          *string   `json:"name,omitempty"`
	Tagline       *string   `json:"tagline,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Icon          *string   `json:"icon,omitempty"`
	Gradient      *string   `json:"gradient,omitempty"`
	Accent        *string   `json:"accent,omitempty"`
	Features      *[]string `json:"features,omitempty"`
	Leadership    *[]Leader `json:"leadership,omitempty"`
	UpcomingEvent *Event    `json:"upcomingEvent,omitempty"`
	Stats         *[]Stat   `json:"stats,omitempty"`
}

// Apply returns a copy of c with every present patch field overwritten.
func (p Patch) Apply(c Club) Club {
	out := c.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Tagline != nil {
		out.Tagline = *p.Tagline
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Icon != nil {
		out.Icon = *p.Icon
	}
	if p.Gradient != nil {
		out.Gradient = *p.Gradient
	}
	if p.Accent != nil {
		out.Accent = *p.Accent
	}
	if p.Features != nil {
		out.Features = cloneSlice(*p.Features)
	}
	if p.Leadership != nil {
		out.Leadership = cloneSlice(*p.Leadership)
	}
	if p.UpcomingEvent != nil {
		out.UpcomingEvent = p.UpcomingEvent.Clone()
	}
	if p.Stats != nil {
		out.Stats = cloneSlice(*p.Stats)
	}
	return out
}

// IsEmpty reports whether the patch carries no fields.
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// String returns a pointer to v; handy when building patches.
func String(v string) *string {
	return &v
}
