package source

import "fmt"

// Kind is the container of a stream.
type Kind string

const (
	HLS Kind = "hls"
	MP4 Kind = "mp4"
)

// Embed is a third-party player page discovered for a server.
type Embed struct {
	URL    string `json:"url"`
	Server string `json:"server"`
}

// Video is a directly playable stream.
type Video struct {
	URL     string `json:"url"`
	Kind    Kind   `json:"type"`
	Quality string `json:"quality"`
	// Subtitles are never extracted.
	Subtitles []string `json:"subtitles"`
}

// NewVideo labels a stream with the server it came from, e.g. "voe - 720p".
func NewVideo(url string, kind Kind, server, quality string) *Video {
	return &Video{
		URL:       url,
		Kind:      kind,
		Quality:   fmt.Sprintf("%s - %s", server, quality),
		Subtitles: []string{},
	}
}

// String returns the quality or URL for display.
func (v *Video) String() string {
	if v.Quality != "" {
		return v.Quality
	}
	return v.URL
}
