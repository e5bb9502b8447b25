// Package mini is the plain prompt picker, for terminals where the full screen interface does not fit.
package mini

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mugiwara-cli/mugiwara/player"
	"github.com/mugiwara-cli/mugiwara/source"
	"github.com/mugiwara-cli/mugiwara/util"
	"github.com/samber/lo"
)

// Options configures a picking session.
type Options struct {
	Source source.Source
	// Query skips the first search prompt when set.
	Query string
	Dub   bool
	// Player plays the chosen stream inside the session.
	// When nil, the session ends on the first chosen stream.
	Player player.Player
	// Out receives progress and failure lines. Defaults to stdout.
	Out io.Writer
}

type mini struct {
	ctx     context.Context
	options *Options
	prompt  prompter
	out     io.Writer

	state         state
	statesHistory util.Stack[state]

	query           string
	results         []*source.Result
	cachedEpisodes  map[string][]*source.Episode
	selectedTitle   *source.Result
	selectedEpisode *source.Episode
	selectedServer  *source.Server
	stream          *player.Stream
}

func newMini(ctx context.Context, options *Options, prompt prompter) *mini {
	out := options.Out
	if out == nil {
		out = os.Stdout
	}

	return &mini{
		ctx:            ctx,
		options:        options,
		prompt:         prompt,
		out:            out,
		state:          searchState,
		statesHistory:  util.Stack[state]{},
		query:          options.Query,
		cachedEpisodes: make(map[string][]*source.Episode),
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	if !lo.Contains([]state{playState}, m.state) {
		m.statesHistory.Push(m.state)
	}

	m.setState(s)
}

// Run walks the prompts until a stream is chosen without a player, or the user interrupts.
func Run(ctx context.Context, options *Options) (*player.Stream, error) {
	return newMini(ctx, options, surveyPrompter{}).run()
}

func (m *mini) run() (*player.Stream, error) {
	for m.state != quitState {
		if err := m.handleState(); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return m.stream, nil
			}
			return nil, err
		}
	}

	return m.stream, nil
}

func (m *mini) handleState() error {
	switch m.state {
	case searchState:
		return m.handleSearchState()
	case titleSelectState:
		return m.handleTitleSelectState()
	case episodeSelectState:
		return m.handleEpisodeSelectState()
	case serverSelectState:
		return m.handleServerSelectState()
	case qualitySelectState:
		return m.handleQualitySelectState()
	case playState:
		return m.handlePlayState()
	}

	return nil
}
