package mini

import (
	"fmt"

	"github.com/mugiwara-cli/mugiwara/icon"
	"github.com/mugiwara-cli/mugiwara/log"
	"github.com/mugiwara-cli/mugiwara/player"
	"github.com/mugiwara-cli/mugiwara/query"
	"github.com/mugiwara-cli/mugiwara/source"
	"github.com/samber/lo"
)

type state int

const (
	searchState state = iota + 1
	titleSelectState
	episodeSelectState
	serverSelectState
	qualitySelectState
	playState
	quitState
)

func (m *mini) handleSearchState() error {
	q := m.query
	m.query = ""

	if q == "" {
		var err error
		q, err = m.prompt.Input("Search", query.SuggestMany)
		if err != nil {
			return err
		}
	}

	m.progress("Searching for %s on %s", q, m.options.Source.Name())
	results := m.options.Source.Search(m.ctx, q, m.options.Dub)
	if err := query.Remember(q, 1); err != nil {
		log.Warn(err)
	}

	if len(results) == 0 {
		m.fail("nothing found for %q on %s", q, m.options.Source.Name())
		return nil
	}

	m.results = results
	m.newState(titleSelectState)
	return nil
}

func (m *mini) handleTitleSelectState() error {
	title, ok, err := menu(m, "Title", m.results, (*source.Result).Describe)
	if err != nil {
		return err
	}

	if !ok {
		m.previousState()
		return nil
	}

	m.selectedTitle = title
	m.newState(episodeSelectState)
	return nil
}

func (m *mini) handleEpisodeSelectState() error {
	episodes, cached := m.cachedEpisodes[m.selectedTitle.URL]
	if !cached {
		m.progress("Fetching episodes of %s", m.selectedTitle.Title)
		episodes = m.options.Source.Episodes(m.ctx, m.selectedTitle.URL)
		m.cachedEpisodes[m.selectedTitle.URL] = episodes
	}

	if len(episodes) == 0 {
		m.fail("no episode found for %s", m.selectedTitle.Title)
		m.previousState()
		return nil
	}

	episode, ok, err := menu(m, "Episode", episodes, (*source.Episode).String)
	if err != nil {
		return err
	}

	if !ok {
		m.previousState()
		return nil
	}

	m.selectedEpisode = episode
	m.newState(serverSelectState)
	return nil
}

// handleServerSelectState resolves only the picked server, dropping those that yield nothing.
func (m *mini) handleServerSelectState() error {
	remaining := m.options.Source.Settings().Servers

	for {
		if len(remaining) == 0 {
			m.fail("no server has %s", m.selectedEpisode.Name)
			m.previousState()
			return nil
		}

		name, ok, err := menu(m, "Server", remaining, func(name string) string { return name })
		if err != nil {
			return err
		}

		if !ok {
			m.previousState()
			return nil
		}

		resolved := m.options.Source.Resolve(m.ctx, m.selectedEpisode, name)
		if resolved.Available() {
			m.selectedServer = resolved
			m.newState(qualitySelectState)
			return nil
		}

		fmt.Fprintf(m.out, "%s %s\n", icon.Get(icon.Unavailable), resolved.Name)
		remaining = lo.Without(remaining, name)
	}
}

func (m *mini) handleQualitySelectState() error {
	video, ok, err := menu(m, "Quality", m.selectedServer.Videos, (*source.Video).String)
	if err != nil {
		return err
	}

	if !ok {
		m.previousState()
		return nil
	}

	stream := player.NewStream(m.selectedServer, video, fmt.Sprintf("%s - %s", m.selectedTitle.Title, m.selectedEpisode.Name))
	m.stream = &stream

	if m.options.Player == nil {
		m.setState(quitState)
		return nil
	}

	m.newState(playState)
	return nil
}

func (m *mini) handlePlayState() error {
	m.progress("playing %s", m.stream.Title)
	if err := m.options.Player.Play(m.ctx, *m.stream); err != nil {
		return err
	}

	m.previousState()
	return nil
}
