// Package cmd implements the safeplay command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/safeplay-cli/safeplay/color"
	"github.com/safeplay-cli/safeplay/constant"
	"github.com/safeplay-cli/safeplay/icon"
	"github.com/safeplay-cli/safeplay/key"
	"github.com/safeplay-cli/safeplay/log"
	"github.com/safeplay-cli/safeplay/style"
	"github.com/safeplay-cli/safeplay/util"
	"github.com/safeplay-cli/safeplay/version"
	"github.com/safeplay-cli/safeplay/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Remember selections in the local history")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnSelect, rootCmd.PersistentFlags().Lookup("write-history")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Pick the best playable stream for a parental-controls player",
	Long: style.Title(constant.App) + "\n\n" +
		style.New().Italic(true).Foreground(color.HiCyan).Render("Chooses one video and audio pair per catalogue within a quality ceiling and language preference"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
