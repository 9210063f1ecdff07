package features

// Feature is a static content pillar shown on the landing page. It is read-only.
type Feature struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Gradient    string `json:"gradient"`
	Variant     string `json:"variant"`
}
