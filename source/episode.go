package source

import "fmt"

// Episode is one episode of a title.
type Episode struct {
	// ID is the canonical episode page URL.
	ID string `json:"id"`
	// URL of the episode page, equal to ID.
	URL string `json:"url"`
	// Number is at least 1; the scan position is used when the page gives none.
	Number int `json:"number"`
	// Name is a display label.
	Name string `json:"name"`
}

// NewEpisode builds an episode whose identifier is its page URL.
func NewEpisode(pageURL string, number int) *Episode {
	return &Episode{
		ID:     pageURL,
		URL:    pageURL,
		Number: number,
		Name:   fmt.Sprintf("Episode %d", number),
	}
}

// String returns the display name of the episode.
func (e *Episode) String() string {
	return e.Name
}
