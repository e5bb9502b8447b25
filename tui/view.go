package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/mugiwara-cli/mugiwara/color"
	"github.com/mugiwara-cli/mugiwara/icon"
	"github.com/mugiwara-cli/mugiwara/style"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	switch b.state {
	case loadingState:
		return b.viewLoading()
	case searchState:
		return b.viewSearch()
	case titlesState:
		return listExtraPaddingStyle.Render(b.titlesC.View())
	case episodesState:
		return listExtraPaddingStyle.Render(b.episodesC.View())
	case serversState:
		return listExtraPaddingStyle.Render(b.serversC.View())
	case qualitiesState:
		return listExtraPaddingStyle.Render(b.qualitiesC.View())
	case playState:
		return b.viewPlay()
	case errorState:
		return b.viewError()
	default:
		return "Unknown state"
	}
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.progressStatus,
		},
	)
}

func (b *statefulBubble) viewSearch() string {
	lines := []string{
		style.Title(b.options.Source.Name()),
		"",
		b.inputC.View(),
	}

	if suggestion, ok := b.searchSuggestion.Get(); ok {
		lines = append(lines, "", style.Faint(fmt.Sprintf("%s %s", b.keymap.acceptSearchSuggestion.Help().Key, suggestion)))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewPlay() string {
	var title string
	if b.stream != nil {
		title = b.stream.Title
	}

	return b.renderLines(
		true,
		[]string{
			style.Title("Now Playing"),
			"",
			style.Truncate(b.width)(fmt.Sprintf("%s %s", icon.Get(icon.Progress), style.Fg(color.Purple)(title))),
			"",
			style.Truncate(b.width)(b.spinnerC.View() + " " + b.progressStatus),
		},
	)
}

func (b *statefulBubble) viewError() string {
	var message string
	if b.lastError != nil {
		message = b.lastError.Error()
	}

	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " " + wrap.String(style.Fg(color.Red)(message), b.width),
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
