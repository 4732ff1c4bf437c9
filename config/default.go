package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/safeplay-cli/safeplay/color"
	"github.com/safeplay-cli/safeplay/constant"
	"github.com/safeplay-cli/safeplay/icon"
	"github.com/safeplay-cli/safeplay/key"
	"github.com/safeplay-cli/safeplay/stream"
	"github.com/safeplay-cli/safeplay/style"
	"github.com/spf13/viper"
)

// Field is a configuration key with its default value and help text.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable that overrides the field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.App + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Pretty renders the field for `config info`.
func (f *Field) Pretty() string {
	label := style.Fg(color.Blue)
	rows := [][2]string{
		{"Key:", style.Fg(color.Purple)(f.Key)},
		{"Env:", f.Env()},
		{"Value:", highlight(viper.Get(f.Key))},
		{"Default:", highlight(f.Value)},
		{"Type:", f.typeName()},
	}

	var b strings.Builder
	b.WriteString(style.Faint(f.Description))
	for _, row := range rows {
		fmt.Fprintf(&b, "\n%s %s", label(fmt.Sprintf("%-8s", row[0])), row[1])
	}

	return b.String()
}

// MarshalJSON reports the current value next to the default.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"key":         f.Key,
		"env":         f.Env(),
		"value":       viper.Get(f.Key),
		"default":     f.Value,
		"description": f.Description,
		"type":        f.typeName(),
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return fmt.Sprintf("%T", f.Value)
	}
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)("true")
		}
		return style.Fg(color.Red)("false")
	case string:
		if value == "" {
			return style.Faint(`""`)
		}
		return style.Fg(color.Yellow)(value)
	default:
		return fmt.Sprint(value)
	}
}

// Default maps every configuration key to its field.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to environment variables.
var EnvExposed []string

func register(k string, v any, description string) {
	if _, exists := Default[k]; exists {
		panic("duplicate config key: " + k)
	}

	Default[k] = Field{Key: k, Value: v, Description: description}
	EnvExposed = append(EnvExposed, k)
}

func init() {
	register(
		key.ParentalMaxQuality,
		"",
		"Highest video quality children may watch.\nAvailable options are: "+strings.Join(stream.QualityLabels(), ", ")+"\nEmpty means no limit",
	)
	register(key.PlaybackLanguages, []string{stream.DefaultLanguage}, "Preferred audio languages, most preferred first")
	register(key.SourcesLocalPath, "", "Directory holding catalogue documents.\nEmpty means the catalogues directory inside the config directory")
	register(key.HistorySaveOnSelect, true, "Remember the last selection made for each catalogue")
	register(key.Player, "mpv", "Media player used by select --play.\nAvailable options are: iina, mpv")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: "+strings.Join(icon.AvailableVariants(), ", "))
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, false, "Check for a newer release when showing help or version")
}
