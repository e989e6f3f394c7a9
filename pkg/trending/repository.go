package trending

// Origin is the absolute origin prepended to the relative hrefs on the page.
const Origin = "https://github.com"

// Repository is one ranked row of a trending page.
//
// Counts are kept exactly as rendered (e.g. "12,345") since the page
// formats them for display and the format is not ours to rely on.
type Repository struct {
	Name        string `json:"name"`                  // owner/name with all whitespace removed
	URL         string `json:"url"`                   // Origin + relative href
	Description string `json:"description"`           // Trimmed; may be empty
	Stars       string `json:"stars"`                 // Total stars as displayed
	Language    string `json:"language,omitempty"`    // Primary language label
	Forks       string `json:"forks,omitempty"`       // Forks as displayed
	StarsToday  string `json:"stars_today,omitempty"` // e.g. "1,024 stars today"
}
