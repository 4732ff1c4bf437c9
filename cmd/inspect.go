package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/safeplay-cli/safeplay/color"
	"github.com/safeplay-cli/safeplay/source"
	"github.com/safeplay-cli/safeplay/stream"
	"github.com/safeplay-cli/safeplay/style"
	"github.com/safeplay-cli/safeplay/util"
	"github.com/safeplay-cli/safeplay/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().BoolP("id", "i", false, "Treat the argument as a catalogue id in the local catalogue directory")
	inspectCmd.SetOut(os.Stdout)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show every candidate of a catalogue and how it is classified",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			c   *source.Catalogue
			err error
		)

		if lo.Must(cmd.Flags().GetBool("id")) {
			c, err = source.NewLocal(where.Catalogues()).Catalogue(args[0])
		} else {
			c, err = source.Open(args[0])
		}
		handleErr(err)

		heading := style.New().Bold(true).Foreground(color.HiPurple).Render
		cmd.Printf("%s %s\n\n", heading(c.String()), style.Faint(util.FormatSeconds(c.Seconds())))

		cmd.Println(heading("Video"))
		cmd.Println(renderTable(
			[]column{
				numberColumn("#"),
				textColumn("Quality"),
				numberColumn("Resolution"),
				numberColumn("FPS"),
				textColumn("Container"),
				textColumn("Format"),
				numberColumn("Bitrate"),
			},
			lo.Map(c.Videos, func(v stream.VideoCandidate, i int) []string {
				return []string{
					strconv.Itoa(i + 1),
					v.QualityLabel,
					fmt.Sprintf("%dx%d", v.Width, v.Height),
					strconv.Itoa(v.FrameRate),
					v.Container,
					stream.ClassifyVideo(v).String(),
					kbpsString(v.Bitrate),
				}
			}),
		))

		cmd.Println()
		cmd.Println(heading("Audio"))
		cmd.Println(renderTable(
			[]column{
				numberColumn("#"),
				textColumn("Language"),
				textColumn("Container"),
				textColumn("Format"),
				numberColumn("Bitrate"),
			},
			lo.Map(c.Audios, func(a stream.AudioCandidate, i int) []string {
				return []string{
					strconv.Itoa(i + 1),
					a.Language,
					a.Container,
					stream.ClassifyAudio(a).String(),
					kbpsString(a.Bitrate),
				}
			}),
		))
	},
}

func kbpsString(bps int) string {
	if bps <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d kbps", bps/1000)
}
