package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/safeplay-cli/safeplay/color"
	"github.com/safeplay-cli/safeplay/history"
	"github.com/safeplay-cli/safeplay/icon"
	"github.com/safeplay-cli/safeplay/style"
	"github.com/safeplay-cli/safeplay/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringP("filter", "f", "", "Show only entries fuzzily matching the query")
	historyCmd.Flags().StringP("remove", "r", "", "Forget the selection saved for a catalogue id")
	historyCmd.Flags().Bool("clear", false, "Forget every saved selection")
	historyCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	historyCmd.Flags().BoolP("json", "j", false, "Print entries as JSON")
	historyCmd.MarkFlagsMutuallyExclusive("filter", "remove", "clear")

	historyCmd.SetOut(os.Stdout)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previously selected streams",
	Run: func(cmd *cobra.Command, args []string) {
		success := style.Fg(color.Green)(icon.Get(icon.Success))

		if lo.Must(cmd.Flags().GetBool("clear")) {
			if !lo.Must(cmd.Flags().GetBool("yes")) && util.IsInteractive() {
				confirm := survey.Confirm{
					Message: "Forget every saved selection?",
					Default: false,
				}
				var response bool
				handleErr(survey.AskOne(&confirm, &response))

				if !response {
					return
				}
			}

			handleErr(history.Clear())
			cmd.Printf("%s history cleared\n", success)
			return
		}

		if id := lo.Must(cmd.Flags().GetString("remove")); id != "" {
			removed, err := history.Remove(id)
			handleErr(err)
			if !removed {
				handleErr(fmt.Errorf("no history for %s", id))
			}
			cmd.Printf("%s removed %s\n", success, style.Fg(color.Purple)(id))
			return
		}

		selections, err := history.List(lo.Must(cmd.Flags().GetString("filter")))
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(selections))
			return
		}

		if len(selections) == 0 {
			cmd.Println(style.Faint("No history"))
			return
		}

		for _, s := range selections {
			cmd.Printf(
				"%s %s %s\n",
				style.Faint(s.SelectedAt.Format("2006-01-02 15:04")),
				style.Bold(s.String()),
				style.Faint("["+s.Tier+"]"),
			)
		}
	},
}
