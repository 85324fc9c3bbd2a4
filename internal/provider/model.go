package provider

// Model describes a chat model a provider serves
type Model struct {
	ID          string // e.g. "gpt-4o-mini"
	Name        string // display name
	Description string
	Vision      bool // accepts image_url content parts
	DocsURL     string
}

func (m Model) String() string {
	if m.Vision {
		return m.Name + " (vision)"
	}
	return m.Name
}
