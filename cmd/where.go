package cmd

import (
	"os"

	"github.com/safeplay-cli/safeplay/color"
	"github.com/safeplay-cli/safeplay/open"
	"github.com/safeplay-cli/safeplay/style"
	"github.com/safeplay-cli/safeplay/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// whereTarget is a printable application path.
type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort mo.Option[string]
	hidden   bool
}

var wherePaths = []*whereTarget{
	{"Config", where.Config, "config", mo.Some("c"), false},
	{"Catalogues", where.Catalogues, "catalogues", mo.Some("s"), false},
	{"Logs", where.Logs, "logs", mo.Some("l"), false},
	{"History", where.History, "history", mo.None[string](), true},
	{"Cache", where.Cache, "cache", mo.None[string](), true},
	{"Temp", where.Temp, "temp", mo.None[string](), true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, t := range wherePaths {
		whereCmd.Flags().BoolP(t.argLong, t.argShort.OrEmpty(), false, t.name+" path")
		if t.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(t.argLong))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t *whereTarget, _ int) string {
		return t.argLong
	})...)

	whereCmd.Flags().BoolP("open", "o", false, "Open the selected path with the default file manager")
	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show paths used by the application",
	Run: func(cmd *cobra.Command, args []string) {
		target, ok := lo.Find(wherePaths, func(t *whereTarget) bool {
			return lo.Must(cmd.Flags().GetBool(t.argLong))
		})

		if ok {
			if lo.Must(cmd.Flags().GetBool("open")) {
				handleErr(open.Start(target.where()))
				return
			}

			cmd.Println(target.where())
			return
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		visible := lo.Reject(wherePaths, func(t *whereTarget, _ int) bool {
			return t.hidden
		})

		for i, t := range visible {
			if i > 0 {
				cmd.Println()
			}
			cmd.Printf("%s %s\n", header(t.name+"?"), style.Fg(color.Yellow)("--"+t.argLong))
			cmd.Println(t.where())
		}
	},
}
