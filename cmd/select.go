package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/AlecAivazis/survey/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/safeplay-cli/safeplay/color"
	"github.com/safeplay-cli/safeplay/history"
	"github.com/safeplay-cli/safeplay/icon"
	"github.com/safeplay-cli/safeplay/key"
	"github.com/safeplay-cli/safeplay/log"
	"github.com/safeplay-cli/safeplay/player"
	"github.com/safeplay-cli/safeplay/source"
	"github.com/safeplay-cli/safeplay/stream"
	"github.com/safeplay-cli/safeplay/style"
	"github.com/safeplay-cli/safeplay/util"
	"github.com/safeplay-cli/safeplay/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(selectCmd)

	selectCmd.Flags().StringSliceP("id", "i", []string{}, "Catalogue ids to load from the local catalogue directory")
	selectCmd.Flags().BoolP("all", "a", false, "Select for every catalogue in the local catalogue directory")
	selectCmd.MarkFlagsMutuallyExclusive("id", "all")

	selectCmd.Flags().StringP("max-quality", "q", "", "Parental quality ceiling, e.g. 720p")
	lo.Must0(selectCmd.RegisterFlagCompletionFunc("max-quality", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return stream.QualityLabels(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.ParentalMaxQuality, selectCmd.Flags().Lookup("max-quality")))

	selectCmd.Flags().StringSliceP("lang", "l", []string{}, "Preferred audio languages, most preferred first")
	lo.Must0(viper.BindPFlag(key.PlaybackLanguages, selectCmd.Flags().Lookup("lang")))

	selectCmd.Flags().BoolP("json", "j", false, "Print selections as JSON")
	selectCmd.Flags().BoolP("play", "p", false, "Play each selection after choosing it")

	selectCmd.Flags().StringP("player", "P", "", "Player used with --play")
	lo.Must0(selectCmd.RegisterFlagCompletionFunc("player", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return player.Available(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.Player, selectCmd.Flags().Lookup("player")))

	selectCmd.SetOut(os.Stdout)
}

// selection is one catalogue's outcome as printed by select.
type selection struct {
	ID     string         `json:"id"`
	Title  string         `json:"title,omitempty"`
	Result *stream.Result `json:"result"`
	Error  string         `json:"error,omitempty"`

	catalogue *source.Catalogue
}

var selectCmd = &cobra.Command{
	Use:   "select [file...]",
	Short: "Choose the best stream for each catalogue",
	Long: `Choose the best playable video and audio pair for each catalogue.

Catalogues are JSON documents, either in safeplay's own format or as dumped by "yt-dlp -J".
They are read from the given files, or from the local catalogue directory with --id or --all.`,
	Example: `  safeplay select dump.json --max-quality 720p --lang de,en
  safeplay select --id dQw4w9WgXcQ --json`,
	Run: func(cmd *cobra.Command, args []string) {
		catalogues, err := loadCatalogues(cmd, args)
		handleErr(err)

		var (
			maxQuality = viper.GetString(key.ParentalMaxQuality)
			languages  = viper.GetStringSlice(key.PlaybackLanguages)
			asJson     = lo.Must(cmd.Flags().GetBool("json"))
			play       = lo.Must(cmd.Flags().GetBool("play"))
		)

		log.WithFields(log.Fields{
			"catalogues": len(catalogues),
			"ceiling":    stream.ParseMaxQuality(maxQuality),
			"languages":  languages,
		}).Info("selecting streams")

		selections := lo.Map(catalogues, func(c *source.Catalogue, _ int) *selection {
			return selectFor(c, languages, maxQuality)
		})

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(selections))
		} else {
			for i, s := range selections {
				if i > 0 {
					cmd.Println()
				}
				cmd.Println(renderSelection(s))
			}
		}

		if play {
			handleErr(playSelections(cmd.Context(), selections))
		}

		failed := lo.CountBy(selections, func(s *selection) bool {
			return s.Result == nil
		})
		if failed > 0 {
			handleErr(fmt.Errorf("no stream selected for %s", util.Quantify(failed, "catalogue", "catalogues")))
		}
	},
}

func loadCatalogues(cmd *cobra.Command, args []string) ([]*source.Catalogue, error) {
	var (
		ids   = lo.Must(cmd.Flags().GetStringSlice("id"))
		all   = lo.Must(cmd.Flags().GetBool("all"))
		local = source.NewLocal(where.Catalogues())
	)

	if len(args) == 0 && len(ids) == 0 && !all {
		if !util.IsInteractive() {
			return nil, errors.New("no catalogues given, pass files, --id or --all")
		}

		c, err := pickCatalogue(local)
		if err != nil {
			return nil, err
		}
		return []*source.Catalogue{c}, nil
	}

	var catalogues []*source.Catalogue

	if all {
		listed, err := local.List()
		if err != nil {
			return nil, err
		}
		catalogues = append(catalogues, listed...)
	}

	for _, id := range ids {
		c, err := local.Catalogue(id)
		if err != nil {
			return nil, err
		}
		catalogues = append(catalogues, c)
	}

	for _, path := range args {
		c, err := source.Open(path)
		if err != nil {
			return nil, err
		}
		catalogues = append(catalogues, c)
	}

	return catalogues, nil
}

// pickCatalogue asks which local catalogue to select for.
func pickCatalogue(local *source.Local) (*source.Catalogue, error) {
	catalogues, err := local.List()
	if err != nil {
		return nil, err
	}

	if len(catalogues) == 0 {
		return nil, fmt.Errorf("no catalogues found in %s", local.Dir())
	}

	var index int
	prompt := &survey.Select{
		Message: "Select a catalogue",
		Options: lo.Map(catalogues, func(c *source.Catalogue, _ int) string {
			return c.String()
		}),
		Description: func(_ string, i int) string {
			return util.FormatSeconds(catalogues[i].Seconds())
		},
	}
	if err := survey.AskOne(prompt, &index); err != nil {
		return nil, err
	}

	return catalogues[index], nil
}

func selectFor(c *source.Catalogue, languages []string, maxQuality string) *selection {
	s := &selection{ID: c.ID, Title: c.Title, catalogue: c}

	result, err := c.Select(languages, maxQuality)
	if err != nil {
		if errors.Is(err, stream.ErrNoSuitableStream) {
			log.Warnf("%v", err)
		} else {
			log.Error(err)
		}
		s.Error = err.Error()
		return s
	}

	s.Result = &result
	log.WithFields(log.Fields{
		"id":      c.ID,
		"tier":    result.Tier,
		"quality": result.QualityLabel,
	}).Info("stream selected")

	if viper.GetBool(key.HistorySaveOnSelect) {
		if err := history.Save(c, result, maxQuality); err != nil {
			log.Warnf("saving history for %s: %v", c.ID, err)
		}
	}

	return s
}

func renderSelection(s *selection) string {
	var (
		width = util.TerminalWidth(80)
		clip  = func(s string) string { return truncate.StringWithTail(s, uint(width), "…") }
		title = style.New().Bold(true).Foreground(color.HiPurple).Render(s.catalogue.String())
	)

	if s.Result == nil {
		return fmt.Sprintf("%s\n%s %s", title, style.Fg(color.Red)(icon.Get(icon.Fail)), s.Error)
	}

	r := s.Result
	lines := []string{
		fmt.Sprintf("%s %s", title, style.Tag(style.Surface, style.AccentColor)(string(r.Tier))),
		fmt.Sprintf("%s %s", style.Fg(color.Green)(icon.Get(icon.Success)), r.String()),
		clip(fmt.Sprintf("%s %s", icon.Get(icon.Video), style.Faint(r.VideoURL))),
	}

	if audio, ok := r.AudioURL.Get(); ok {
		lines = append(lines, clip(fmt.Sprintf("%s %s", icon.Get(icon.Audio), style.Faint(audio))))
	}

	if ceiling := viper.GetString(key.ParentalMaxQuality); ceiling != "" {
		lines = append(lines, style.Faint(fmt.Sprintf("%s limited to %dp", icon.Get(icon.Lock), stream.ParseMaxQuality(ceiling))))
	}

	return strings.Join(lines, "\n")
}

// playSelections plays results one after another. An interrupt closes the
// running player and skips the rest.
func playSelections(ctx context.Context, selections []*selection) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	for _, s := range selections {
		if s.Result == nil {
			continue
		}

		p, err := player.Default()
		if err != nil {
			return err
		}

		if err := p.Play(*s.Result, s.catalogue.String()); err != nil {
			return checkPlayerErr(p.Name(), err)
		}

		if err := player.Watch(ctx, p); err != nil {
			if errors.Is(err, context.Canceled) {
				log.Info("playback interrupted")
				return nil
			}
			return err
		}
	}

	return nil
}
