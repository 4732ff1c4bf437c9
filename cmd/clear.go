package cmd

import (
	"fmt"
	"os"

	"github.com/safeplay-cli/safeplay/icon"
	"github.com/safeplay-cli/safeplay/util"
	"github.com/safeplay-cli/safeplay/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// clearTarget is a file or directory that clear can remove.
type clearTarget struct {
	name     string
	argLong  string
	argShort string
	location func() string
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", "c", where.Cache},
	{"history file", "history", "s", where.History},
	{"log files", "logs", "l", where.Logs},
	{"temporary files", "temp", "t", where.Temp},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, t := range clearTargets {
		clearCmd.Flags().BoolP(t.argLong, t.argShort, false, "clear "+t.name)
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached and temporary files",
	Run: func(cmd *cobra.Command, args []string) {
		selected := lo.Filter(clearTargets, func(t clearTarget, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(t.argLong))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, t := range selected {
			name := util.Capitalize(t.name)
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), name))
			err := util.Delete(t.location())
			erase()

			if !os.IsNotExist(err) {
				handleErr(err)
			}
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), name)
		}
	},
}
