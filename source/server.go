package source

import (
	"context"
	"sync"
)

// unavailableSuffix marks servers that produced no streams.
const unavailableSuffix = " (unavailable)"

// Server is the outcome of resolving one episode on one server.
type Server struct {
	Name    string            `json:"server"`
	Headers map[string]string `json:"headers"`
	Videos  []*Video          `json:"videoSources"`
}

// Unavailable is the result returned when a server yields nothing.
func Unavailable(server string) *Server {
	return &Server{
		Name:    server + unavailableSuffix,
		Headers: map[string]string{},
		Videos:  []*Video{},
	}
}

// Available reports whether at least one stream was resolved.
func (s *Server) Available() bool {
	return len(s.Videos) > 0
}

// ResolveAll resolves episode on every server concurrently.
// Results follow the order of servers.
func ResolveAll(ctx context.Context, src Source, episode *Episode, servers []string) []*Server {
	resolved := make([]*Server, len(servers))

	var wg sync.WaitGroup
	for i, server := range servers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resolved[i] = src.Resolve(ctx, episode, server)
		}()
	}
	wg.Wait()

	return resolved
}
