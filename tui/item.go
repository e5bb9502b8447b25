package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/mugiwara-cli/mugiwara/icon"
	"github.com/mugiwara-cli/mugiwara/key"
	"github.com/mugiwara-cli/mugiwara/source"
	"github.com/mugiwara-cli/mugiwara/style"
	"github.com/mugiwara-cli/mugiwara/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// listItem wraps a domain value for the list component.
type listItem struct {
	internal any
}

func (t *listItem) Title() string {
	switch e := t.internal.(type) {
	case *source.Server:
		if !e.Available() {
			return style.Faint(icon.Get(icon.Unavailable) + " " + e.Name)
		}
		return icon.Get(icon.Server) + " " + e.Name
	default:
		return t.FilterValue()
	}
}

func (t *listItem) Description() string {
	var parts []string

	showURLs := viper.GetBool(key.TUIShowURLs)

	switch e := t.internal.(type) {
	case *source.Result:
		parts = append(parts, e.SubOrDub, fmt.Sprintf("%.2f", e.Score))
		if showURLs {
			parts = append(parts, e.URL)
		}
	case *source.Episode:
		parts = append(parts, fmt.Sprintf("#%d", e.Number))
		if showURLs {
			parts = append(parts, e.URL)
		}
	case *source.Server:
		parts = append(parts, util.Quantify(len(e.Videos), "stream", "streams"))
	case *source.Video:
		parts = append(parts, strings.ToUpper(string(e.Kind)))
		if showURLs {
			parts = append(parts, e.URL)
		}
	}

	return strings.Join(parts, " ")
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *source.Result:
		return e.Title
	case *source.Episode:
		return e.String()
	case *source.Server:
		return e.Name
	case *source.Video:
		return e.String()
	default:
		return ""
	}
}

func toListItems[T any](items []T) []list.Item {
	return lo.Map(items, func(item T, _ int) list.Item {
		return &listItem{internal: item}
	})
}

// selected returns the value behind the highlighted item of l.
func selected[T any](l *list.Model) (T, bool) {
	item, ok := l.SelectedItem().(*listItem)
	if !ok {
		var zero T
		return zero, false
	}

	value, ok := item.internal.(T)
	return value, ok
}
