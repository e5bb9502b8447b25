// Package source defines the domain models and interfaces for stream resolution.
package source

import "context"

// Source resolves streams from one hosting site.
//
// Every operation is stateless and total: failures surface as empty results,
// never as errors, so callers only ever see "nothing found".
type Source interface {
	// Name returns the display name of the site.
	Name() string

	// ID returns the unique identifier of the source.
	ID() string

	// Settings declares the servers the site fronts and whether dubs are offered.
	Settings() Settings

	// Search ranks catalogue titles against query. At most MaxResults are returned.
	Search(ctx context.Context, query string, dub bool) []*Result

	// Episodes lists the episodes found on a title page in ascending order.
	Episodes(ctx context.Context, titleURL string) []*Episode

	// Resolve extracts the playable streams of episode on the named server.
	Resolve(ctx context.Context, episode *Episode, server string) *Server
}

// Settings is the capability declaration of a site.
type Settings struct {
	Servers     []string `json:"episodeServers"`
	SupportsDub bool     `json:"supportsDub"`
}
