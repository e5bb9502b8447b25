package source

import "fmt"

// MaxResults caps the number of search results.
const MaxResults = 10

// Sub or dub intent recorded on search results.
const (
	Sub = "sub"
	Dub = "dub"
)

// Candidate is a catalogue entry before scoring.
type Candidate struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Result is a scored catalogue entry.
type Result struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	// SubOrDub records what the caller asked for, not what the site offers.
	SubOrDub string  `json:"subOrDub"`
	Score    float64 `json:"score"`
}

func (r *Result) String() string {
	return r.Title
}

// NewResult ranks a candidate. The candidate URL doubles as the result identifier.
func NewResult(c Candidate, score float64, dub bool) *Result {
	return &Result{
		ID:       c.URL,
		Title:    c.Title,
		URL:      c.URL,
		SubOrDub: SubOrDub(dub),
		Score:    score,
	}
}

// SubOrDub maps the dub preference to its label.
func SubOrDub(dub bool) string {
	if dub {
		return Dub
	}
	return Sub
}

// Describe is the line shown in pickers.
func (r *Result) Describe() string {
	return fmt.Sprintf("%s (%.2f)", r.Title, r.Score)
}
