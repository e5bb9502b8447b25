// Package icon renders the symbols printed by the CLI.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/mugiwara-cli/mugiwara/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns every icon style identifier.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Site
	Episode
	Server
	Unavailable
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Success:     {emoji: "🎉", nerd: "", plain: "+", kaomoji: "(ᵔ◡ᵔ)", squares: "🟩"},
	Fail:        {emoji: "💀", nerd: "", plain: "x", kaomoji: "(╥﹏╥)", squares: "🟥"},
	Progress:    {emoji: "⏳", nerd: "", plain: "~", kaomoji: "(・_・)ノ", squares: "🟦"},
	Site:        {emoji: "🌐", nerd: "", plain: "@", kaomoji: "(⌐■_■)", squares: "🟪"},
	Episode:     {emoji: "🎞️", nerd: "", plain: "#", kaomoji: "(￣▽￣)", squares: "🟨"},
	Server:      {emoji: "📡", nerd: "", plain: ">", kaomoji: "(•̀ᴗ•́)", squares: "🟧"},
	Unavailable: {emoji: "🚫", nerd: "", plain: "-", kaomoji: "(¬_¬)", squares: "⬛"},
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the rendered icon for the configured variant.
func Get(i Icon) string {
	return icons[i].Get()
}
