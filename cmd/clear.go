// Package cmd implements the command-line interface of boomerplus.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/boomerplus/boomerplus/color"
	"github.com/boomerplus/boomerplus/icon"
	"github.com/boomerplus/boomerplus/style"
	"github.com/boomerplus/boomerplus/util"
	"github.com/boomerplus/boomerplus/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"downloaded datasets", "datasets", mo.Some("d"), where.Datasets},
	{"remembered queries", "queries", mo.Some("q"), where.Queries},
	{"play history", "history", mo.Some("s"), where.History},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := "clear " + target.name
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd deletes the selected caches and history files.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached datasets and remembered queries",
	Run: func(cmd *cobra.Command, args []string) {
		targets := lo.Filter(clearTargets, func(t clearTarget, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(t.argLong))
		})
		if len(targets) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, target := range targets {
			erase := util.PrintErasable(fmt.Sprintf("Clearing %s...", target.name))
			err := util.Delete(target.location())
			erase()
			if !errors.Is(err, fs.ErrNotExist) {
				handleErr(err)
			}

			fmt.Printf("%s %s cleared\n", style.Fg(color.Green)(icon.Get(icon.Check)), util.Capitalize(target.name))
		}
	},
}
