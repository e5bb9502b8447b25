package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mugiwara-cli/mugiwara/log"
	"github.com/mugiwara-cli/mugiwara/player"
	"github.com/mugiwara-cli/mugiwara/query"
	"github.com/mugiwara-cli/mugiwara/source"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// playedMsg is sent once the player exits cleanly.
type playedMsg struct{}

func (b *statefulBubble) startLoading(status string) tea.Cmd {
	b.progressStatus = status
	b.newState(loadingState)
	return b.spinnerC.Tick
}

func (b *statefulBubble) startSearch(q string) tea.Cmd {
	b.searchSuggestion = mo.None[string]()
	return tea.Batch(
		b.startLoading(fmt.Sprintf("Searching for %s on %s...", q, b.options.Source.Name())),
		b.searchTitles(q),
	)
}

func (b *statefulBubble) searchTitles(q string) tea.Cmd {
	src, ctx, dub := b.options.Source, b.ctx, b.options.Dub
	return func() tea.Msg {
		results := src.Search(ctx, q, dub)
		if err := query.Remember(q, 1); err != nil {
			log.Warn(err)
		}

		if len(results) == 0 {
			return fmt.Errorf("nothing found for %q on %s", q, src.Name())
		}

		return results
	}
}

func (b *statefulBubble) fetchEpisodes(title *source.Result) tea.Cmd {
	src, ctx := b.options.Source, b.ctx
	return func() tea.Msg {
		episodes := src.Episodes(ctx, title.URL)
		if len(episodes) == 0 {
			return fmt.Errorf("no episode found for %s", title.Title)
		}

		return episodes
	}
}

func (b *statefulBubble) resolveServers(episode *source.Episode) tea.Cmd {
	src, ctx := b.options.Source, b.ctx
	return func() tea.Msg {
		servers := source.ResolveAll(ctx, src, episode, src.Settings().Servers)
		if !lo.SomeBy(servers, (*source.Server).Available) {
			return fmt.Errorf("no server has %s", episode.Name)
		}

		return servers
	}
}

func (b *statefulBubble) play(stream player.Stream) tea.Cmd {
	p, ctx := b.options.Player, b.ctx
	return func() tea.Msg {
		if err := p.Play(ctx, stream); err != nil {
			return err
		}

		return playedMsg{}
	}
}
