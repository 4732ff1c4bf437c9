package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/safeplay-cli/safeplay/color"
	"github.com/safeplay-cli/safeplay/config"
	"github.com/safeplay-cli/safeplay/constant"
	"github.com/safeplay-cli/safeplay/filesystem"
	"github.com/safeplay-cli/safeplay/icon"
	"github.com/safeplay-cli/safeplay/key"
	"github.com/safeplay-cli/safeplay/player"
	"github.com/safeplay-cli/safeplay/stream"
	"github.com/safeplay-cli/safeplay/style"
	"github.com/safeplay-cli/safeplay/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

func errUnknownKey(k string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a string, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})

	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(k),
		style.Fg(color.Yellow)(closest),
	)
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

func configFilePath() string {
	return filepath.Join(where.Config(), constant.App+".toml")
}

// configKey takes the key from the first argument or the --key flag.
func configKey(cmd *cobra.Command, args []string) (string, error) {
	k := lo.Must(cmd.Flags().GetString("key"))
	if len(args) > 0 {
		k = args[0]
	}

	if k == "" {
		return "", errors.New("key is required as an argument or --key flag")
	}

	if _, ok := config.Default[k]; !ok {
		return "", errUnknownKey(k)
	}

	return k, nil
}

// writeConfig saves viper's state, creating the file when there is none yet.
func writeConfig() error {
	err := viper.WriteConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return viper.SafeWriteConfig()
	}

	return err
}

// validateValue rejects values the selection engine would silently replace with a default.
func validateValue(k string, value []string) error {
	switch k {
	case key.ParentalMaxQuality:
		label := strings.ToLower(strings.TrimSpace(value[0]))
		if label != "" && !slices.Contains(stream.QualityLabels(), label) {
			return fmt.Errorf("invalid quality %s, expected one of %s", label, strings.Join(stream.QualityLabels(), ", "))
		}
	case key.Player:
		if _, err := player.New(value[0]); err != nil {
			return err
		}
	case key.IconsVariant:
		if !slices.Contains(icon.AvailableVariants(), value[0]) {
			return fmt.Errorf("invalid icon variant %s, expected one of %s", value[0], strings.Join(icon.AvailableVariants(), ", "))
		}
	}

	return nil
}

// parseValue converts raw command line values to the type of the key's default.
func parseValue(k string, value []string) (any, error) {
	switch config.Default[k].Value.(type) {
	case string:
		return value[0], nil
	case int:
		parsed, err := strconv.Atoi(value[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", value[0])
		}
		return parsed, nil
	case bool:
		parsed, err := strconv.ParseBool(value[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", value[0])
		}
		return parsed, nil
	case []string:
		return lo.FlatMap(value, func(v string, _ int) []string {
			return strings.Split(v, ",")
		}), nil
	default:
		return nil, fmt.Errorf("unsupported type for %s", k)
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Only describe these keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "Print as JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configInfoCmd.SetOut(os.Stdout)
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe configuration keys with their current and default values",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			keys   = lo.Must(cmd.Flags().GetStringSlice("key"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			fields = lo.Values(config.Default)
		)

		if len(keys) > 0 {
			fields = lo.Map(keys, func(k string, _ int) config.Field {
				field, ok := config.Default[k]
				if !ok {
					handleErr(errUnknownKey(k))
				}
				return field
			})
		}

		slices.SortFunc(fields, func(a, b config.Field) int {
			return strings.Compare(a.Key, b.Key)
		})

		if asJson {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(lo.ToSlicePtr(fields)))
			return
		}

		cmd.Println(strings.Join(lo.Map(fields, func(f config.Field, _ int) string {
			return f.Pretty()
		}), "\n\n"))
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().StringP("key", "k", "", "The key to update")
	configSetCmd.Flags().StringSliceP("value", "v", []string{}, "The new value")
	_ = configSetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configSetCmd = &cobra.Command{
	Use:               "set [key] [value...]",
	Short:             "Update a configuration key",
	Example:           "  safeplay config set parental.max_quality 480p\n  safeplay config set playback.languages de en",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		k, err := configKey(cmd, args)
		handleErr(err)

		value := lo.Must(cmd.Flags().GetStringSlice("value"))
		if len(args) > 1 {
			value = args[1:]
		}
		if len(value) == 0 {
			handleErr(errors.New("value is required as an argument or --value flag"))
		}

		handleErr(validateValue(k, value))

		v, err := parseValue(k, value)
		handleErr(err)

		viper.Set(k, v)
		handleErr(writeConfig())

		fmt.Printf(
			"%s set %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(k),
			style.Fg(color.Yellow)(fmt.Sprintf("%v", v)),
		)
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.Flags().StringP("key", "k", "", "The key to read")
	_ = configGetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print the current value of a configuration key",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		k, err := configKey(cmd, args)
		handleErr(err)

		fmt.Println(viper.Get(k))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := configFilePath()

		if lo.Must(cmd.Flags().GetBool("force")) {
			err := filesystem.API().Remove(path)
			if !os.IsNotExist(err) {
				handleErr(err)
			}
		}

		handleErr(viper.SafeWriteConfig())
		fmt.Printf("%s wrote config to %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), path)
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(configFilePath()))
		fmt.Printf("%s deleted config\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)

	configResetCmd.Flags().StringP("key", "k", "", "The key to reset")
	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configResetCmd = &cobra.Command{
	Use:               "reset [key]",
	Short:             "Restore configuration keys to their defaults",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		success := style.Fg(color.Green)(icon.Get(icon.Success))

		if lo.Must(cmd.Flags().GetBool("all")) {
			for k, field := range config.Default {
				viper.Set(k, field.Value)
			}
			handleErr(writeConfig())
			fmt.Printf("%s reset all config values\n", success)
			return
		}

		k, err := configKey(cmd, args)
		handleErr(err)

		viper.Set(k, config.Default[k].Value)
		handleErr(writeConfig())

		fmt.Printf(
			"%s reset %s to default value %s\n",
			success,
			style.Fg(color.Purple)(k),
			style.Fg(color.Yellow)(fmt.Sprintf("%v", config.Default[k].Value)),
		)
	},
}
