package cmd

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/safeplay-cli/safeplay/log"
	"github.com/safeplay-cli/safeplay/source"
	"github.com/safeplay-cli/safeplay/style"
	"github.com/safeplay-cli/safeplay/util"
	"github.com/safeplay-cli/safeplay/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("raw", "r", false, "Print catalogue ids only")
	listCmd.Flags().BoolP("json", "j", false, "Print catalogues as JSON")
	listCmd.MarkFlagsMutuallyExclusive("raw", "json")

	listCmd.SetOut(os.Stdout)
}

type listedCatalogue struct {
	Source   string `json:"source"`
	ID       string `json:"id"`
	Title    string `json:"title,omitempty"`
	Origin   string `json:"origin,omitempty"`
	Duration int    `json:"duration"`
	Videos   int    `json:"videos"`
	Audios   int    `json:"audios"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalogues available to select from",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			raw    = lo.Must(cmd.Flags().GetBool("raw"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			listed []listedCatalogue
		)

		for _, src := range source.Builtins() {
			catalogues, err := src.List()
			handleErr(err)

			listed = append(listed, lo.Map(catalogues, func(c *source.Catalogue, _ int) listedCatalogue {
				return listedCatalogue{
					Source:   src.ID(),
					ID:       c.ID,
					Title:    c.Title,
					Origin:   c.Origin,
					Duration: c.Seconds(),
					Videos:   len(c.Videos),
					Audios:   len(c.Audios),
				}
			})...)

			log.Infof("%s: %s", src.Name(), util.Quantify(len(catalogues), "catalogue", "catalogues"))
		}

		switch {
		case asJson:
			encoder := json.NewEncoder(cmd.OutOrStdout())
			handleErr(encoder.Encode(listed))
		case raw:
			for _, l := range listed {
				cmd.Println(l.ID)
			}
		case len(listed) == 0:
			cmd.Println(style.Faint("No catalogues found in " + where.Catalogues()))
		default:
			cmd.Println(renderTable(
				[]column{
					textColumn("ID"),
					textColumn("Title"),
					textColumn("Origin"),
					numberColumn("Duration"),
					numberColumn("Videos"),
					numberColumn("Audios"),
				},
				lo.Map(listed, func(l listedCatalogue, _ int) []string {
					return []string{
						l.ID,
						l.Title,
						l.Origin,
						util.FormatSeconds(l.Duration),
						strconv.Itoa(l.Videos),
						strconv.Itoa(l.Audios),
					}
				}),
			))
		}
	},
}
