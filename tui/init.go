package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Init() tea.Cmd {
	if b.options.Query != "" {
		b.inputC.SetValue(b.options.Query)
		return b.startSearch(b.options.Query)
	}

	return textinput.Blink
}
