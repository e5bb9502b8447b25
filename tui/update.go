package tui

import (
	"fmt"
	"strings"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mugiwara-cli/mugiwara/color"
	"github.com/mugiwara-cli/mugiwara/icon"
	"github.com/mugiwara-cli/mugiwara/player"
	"github.com/mugiwara-cli/mugiwara/query"
	"github.com/mugiwara-cli/mugiwara/source"
	"github.com/mugiwara-cli/mugiwara/style"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	case error:
		// errors only come from commands started in these states
		if b.state == loadingState || b.state == playState {
			b.raiseError(msg)
		}
		return b, nil
	}

	switch b.state {
	case loadingState:
		return b.updateLoading(msg)
	case searchState:
		return b.updateSearch(msg)
	case titlesState:
		return b.updateList(&b.titlesC, msg, b.onTitle)
	case episodesState:
		return b.updateList(&b.episodesC, msg, b.onEpisode)
	case serversState:
		return b.updateList(&b.serversC, msg, b.onServer)
	case qualitiesState:
		return b.updateList(&b.qualitiesC, msg, b.onQuality)
	case playState:
		return b.updatePlay(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case spinner.TickMsg:
		b.spinnerC, cmd = b.spinnerC.Update(msg)
	case []*source.Result:
		cmd = b.fill(&b.titlesC, toListItems(msg), 0)
		b.newState(titlesState)
	case []*source.Episode:
		cmd = b.fill(&b.episodesC, toListItems(msg), 0)
		b.newState(episodesState)
	case []*source.Server:
		_, first, _ := lo.FindIndexOf(msg, (*source.Server).Available)
		cmd = b.fill(&b.serversC, toListItems(msg), first)
		b.newState(serversState)
	}

	return b, cmd
}

func (b *statefulBubble) fill(l *list.Model, items []list.Item, index int) tea.Cmd {
	cmd := l.SetItems(items)
	l.ResetFilter()
	l.Select(index)
	return cmd
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			q := strings.TrimSpace(b.inputC.Value())
			if q == "" {
				return b, nil
			}
			return b, b.startSearch(q)
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion) && b.searchSuggestion.IsPresent():
			b.inputC.SetValue(b.searchSuggestion.MustGet())
			b.searchSuggestion = mo.None[string]()
			b.inputC.CursorEnd()
			return b, nil
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)

	if value := b.inputC.Value(); value != "" {
		if suggestion, ok := query.Suggest(value).Get(); ok && suggestion != value {
			b.searchSuggestion = mo.Some(suggestion)
		} else {
			b.searchSuggestion = mo.None[string]()
		}
	} else {
		b.searchSuggestion = mo.None[string]()
	}

	return b, cmd
}

// updateList handles the shared list keys. Cursor moves wrap around.
func (b *statefulBubble) updateList(l *list.Model, msg tea.Msg, onConfirm func() tea.Cmd) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		n := len(l.Items())

		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			return b, onConfirm()
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.up):
			if n > 0 && l.Index() == 0 {
				l.Select(n - 1)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n > 0 && l.Index() == n-1 {
				l.Select(0)
				return b, nil
			}
		}
	}

	*l, cmd = l.Update(msg)
	return b, cmd
}

func (b *statefulBubble) onTitle() tea.Cmd {
	title, ok := selected[*source.Result](&b.titlesC)
	if !ok {
		return nil
	}

	b.selectedTitle = title
	b.episodesC.Title = title.Title
	return tea.Batch(
		b.startLoading(fmt.Sprintf("Fetching episodes of %s...", title.Title)),
		b.fetchEpisodes(title),
	)
}

func (b *statefulBubble) onEpisode() tea.Cmd {
	episode, ok := selected[*source.Episode](&b.episodesC)
	if !ok {
		return nil
	}

	b.selectedEpisode = episode
	return tea.Batch(
		b.startLoading(fmt.Sprintf("Resolving %s on every server...", episode.Name)),
		b.resolveServers(episode),
	)
}

func (b *statefulBubble) onServer() tea.Cmd {
	server, ok := selected[*source.Server](&b.serversC)
	if !ok {
		return nil
	}

	if !server.Available() {
		return b.serversC.NewStatusMessage(style.Fg(color.Red)(icon.Get(icon.Unavailable) + " no streams"))
	}

	b.selectedServer = server
	b.qualitiesC.Title = server.Name
	cmd := b.fill(&b.qualitiesC, toListItems(server.Videos), 0)
	b.newState(qualitiesState)
	return cmd
}

func (b *statefulBubble) onQuality() tea.Cmd {
	video, ok := selected[*source.Video](&b.qualitiesC)
	if !ok || b.selectedServer == nil {
		return nil
	}

	var title string
	if b.selectedTitle != nil && b.selectedEpisode != nil {
		title = fmt.Sprintf("%s - %s", b.selectedTitle.Title, b.selectedEpisode.Name)
	}

	stream := player.NewStream(b.selectedServer, video, title)
	b.stream = &stream

	if b.options.Player == nil {
		return tea.Quit
	}

	b.progressStatus = video.String()
	b.newState(playState)
	return tea.Batch(b.spinnerC.Tick, b.play(stream))
}

func (b *statefulBubble) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case spinner.TickMsg:
		b.spinnerC, cmd = b.spinnerC.Update(msg)
	case playedMsg:
		b.previousState()
	}

	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.lastError = nil
			b.previousState()
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	return b, nil
}
