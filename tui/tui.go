// Package tui is the full screen picker driving search, episodes and servers.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mugiwara-cli/mugiwara/player"
	"github.com/mugiwara-cli/mugiwara/source"
)

// Options configures a picking session.
type Options struct {
	Source source.Source
	// Query skips the search screen when set.
	Query string
	Dub   bool
	// Player plays the chosen stream inside the session.
	// When nil, the session ends on the first chosen stream.
	Player player.Player
}

// Run starts the interface and returns the last chosen stream, if any.
func Run(ctx context.Context, options *Options) (*player.Stream, error) {
	bubble := newBubble(ctx, options)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return nil, err
	}

	return bubble.stream, nil
}
