package cmd

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/safeplay-cli/safeplay/icon"
	"github.com/safeplay-cli/safeplay/key"
	"github.com/safeplay-cli/safeplay/style"
	"github.com/safeplay-cli/safeplay/util"
)

// checkPlayerErr prints install instructions when err means the player binary is missing.
func checkPlayerErr(name string, err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		printMissingDependencyError(name)
	}

	return err
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case "darwin":
		installCmd = "brew install " + dep
	case "linux":
		installCmd = "sudo apt install " + dep
	case "windows":
		installCmd = "scoop install " + dep
	}

	title := style.New().Bold(true).Foreground(style.ErrorColor).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(
		wrap.String(fmt.Sprintf("The player '%s' was not found in your PATH. Install it or choose another one with 'config set %s'.", dep, key.Player), util.TerminalWidth(60)-6),
	)

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Println(style.Box(style.ErrorColor, lipgloss.JoinVertical(lipgloss.Left, title, "", body, suggestion)))
}
