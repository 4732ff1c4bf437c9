// Package icon renders feedback symbols in the variant chosen by the user.
package icon

import (
	"github.com/safeplay-cli/safeplay/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns all supported icon variants.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Video
	Audio
	Lock
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", nerd: "\uf00c", plain: "✓", squares: "🟩"},
	Fail:     {emoji: "❌", nerd: "\uf00d", plain: "✗", squares: "🟥"},
	Progress: {emoji: "⏳", nerd: "\uf110", plain: "…", squares: "🟦"},
	Video:    {emoji: "🎬", nerd: "\uf03d", plain: "▶", squares: "🟪"},
	Audio:    {emoji: "🎧", nerd: "\uf025", plain: "♪", squares: "🟨"},
	Lock:     {emoji: "🔒", nerd: "\uf023", plain: "#", squares: "⬛"},
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the rendered symbol for i in the configured variant.
func Get(i Icon) string {
	if d, ok := icons[i]; ok {
		return d.Get()
	}
	return ""
}

