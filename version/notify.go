package version

import (
	"context"
	"fmt"

	"github.com/safeplay-cli/safeplay/color"
	"github.com/safeplay-cli/safeplay/constant"
	"github.com/safeplay-cli/safeplay/icon"
	"github.com/safeplay-cli/safeplay/key"
	"github.com/safeplay-cli/safeplay/log"
	"github.com/safeplay-cli/safeplay/style"
	"github.com/safeplay-cli/safeplay/util"
	"github.com/spf13/viper"
)

// Notify prints a notice when a newer release is available.
// Does nothing unless cli.version_check is enabled.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	latest, err := Latest(context.Background())
	erase()

	if err != nil {
		log.Warnf("version check: %v", err)
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/safeplay-cli/safeplay/releases/tag/v"+latest),
	)
}
