// Package player hands resolved streams to an external media player.
package player

import (
	"context"

	"github.com/mugiwara-cli/mugiwara/source"
)

// Player plays a stream and blocks until playback ends.
type Player interface {
	Play(ctx context.Context, stream Stream) error
}

// Stream is a resolved video together with the headers its server requires.
type Stream struct {
	URL     string
	Title   string
	Headers map[string]string
}

// NewStream pairs a video with the headers of the server it was resolved on.
func NewStream(server *source.Server, video *source.Video, title string) Stream {
	return Stream{
		URL:     video.URL,
		Title:   title,
		Headers: server.Headers,
	}
}
