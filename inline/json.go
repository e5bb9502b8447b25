package inline

import (
	"encoding/json"

	"github.com/mugiwara-cli/mugiwara/source"
)

// Title is a selected search result with its episodes.
type Title struct {
	// Site is the name of the hosting site.
	Site     string          `json:"site"`
	Title    *source.Result  `json:"title"`
	Episodes []*Episode      `json:"episodes"`
	Settings source.Settings `json:"settings"`
}

// Episode is an episode with the servers it was resolved on, if any.
type Episode struct {
	Episode *source.Episode  `json:"episode"`
	Servers []*source.Server `json:"servers,omitempty"`
}

type Output struct {
	Query  string   `json:"query"`
	Dub    bool     `json:"dub"`
	Result []*Title `json:"result"`
}

func asJson(titles []*Title, options *Options) ([]byte, error) {
	if titles == nil {
		titles = []*Title{}
	}

	return json.Marshal(&Output{
		Query:  options.Query,
		Dub:    options.Dub,
		Result: titles,
	})
}
