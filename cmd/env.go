package cmd

import (
	"os"
	"strings"

	"github.com/safeplay-cli/safeplay/color"
	"github.com/safeplay-cli/safeplay/config"
	"github.com/safeplay-cli/safeplay/constant"
	"github.com/safeplay-cli/safeplay/style"
	"github.com/safeplay-cli/safeplay/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are not set")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
	envCmd.SetOut(os.Stdout)
}

// envNames lists every environment variable the application reads.
func envNames() []string {
	names := lo.Map(config.EnvExposed, func(k string, _ int) string {
		return strings.ToUpper(constant.App + "_" + config.EnvKeyReplacer.Replace(k))
	})
	names = append(names, where.EnvConfigPath)
	slices.Sort(names)
	return names
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the environment variables the application reads",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			setOnly   = lo.Must(cmd.Flags().GetBool("set-only"))
			unsetOnly = lo.Must(cmd.Flags().GetBool("unset-only"))
			name      = style.New().Bold(true).Foreground(color.Purple).Render
		)

		for _, env := range envNames() {
			value, present := os.LookupEnv(env)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(name(env), "=")
			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
