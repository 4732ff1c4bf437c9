package cmd

import (
	"os"
	"runtime"
	"strings"

	"github.com/safeplay-cli/safeplay/color"
	"github.com/safeplay-cli/safeplay/constant"
	"github.com/safeplay-cli/safeplay/style"
	"github.com/safeplay-cli/safeplay/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version number")
	versionCmd.SetOut(os.Stdout)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		defer version.Notify()

		rows := []lo.Tuple2[string, string]{
			{A: "Version", B: constant.Version},
			{A: "Git Commit", B: constant.Revision},
			{A: "Build Date", B: strings.TrimSpace(constant.BuiltAt)},
			{A: "Built By", B: constant.BuiltBy},
			{A: "Platform", B: runtime.GOOS + "/" + runtime.GOARCH},
		}

		label := style.New().Faint(true).Width(lo.Max(lo.Map(rows, func(r lo.Tuple2[string, string], _ int) int {
			return len(r.A)
		})) + 2).Render

		cmd.Printf("%s %s\n\n", style.Fg(color.Purple)("▇▇▇"), style.Fg(color.Purple)(constant.App))
		for _, r := range rows {
			cmd.Printf("  %s%s\n", label(r.A), style.Bold(lo.Ternary(r.B == "", "unknown", r.B)))
		}
	},
}
