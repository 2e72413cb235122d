// Package cmd implements the command-line interface of boomerplus.
package cmd

import (
	"os"
	"strings"

	"github.com/boomerplus/boomerplus/color"
	"github.com/boomerplus/boomerplus/config"
	"github.com/boomerplus/boomerplus/constant"
	"github.com/boomerplus/boomerplus/style"
	"github.com/boomerplus/boomerplus/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only list variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only list variables that are unset")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
	envCmd.SetOut(os.Stdout)
}

// envName is the environment variable that overrides the config key.
func envName(key string) string {
	return strings.ToUpper(constant.App + "_" + config.EnvKeyReplacer.Replace(key))
}

// envCmd lists the BOOMERPLUS_* variables and whether they are set.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the supported environment variables and their values",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			setOnly   = lo.Must(cmd.Flags().GetBool("set-only"))
			unsetOnly = lo.Must(cmd.Flags().GetBool("unset-only"))
			name      = style.New().Bold(true).Foreground(color.Purple).Render
		)

		names := append(lo.Map(config.EnvExposed, func(key string, _ int) string {
			return envName(key)
		}), where.EnvConfigPath)
		slices.Sort(names)

		for _, env := range names {
			value, set := os.LookupEnv(env)
			if (setOnly && !set) || (unsetOnly && set) {
				continue
			}

			cmd.Print(name(env), "=")
			if set {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
