// Package cmd implements the command-line interface of boomerplus.
package cmd

import (
	"os"
	"strings"

	"github.com/boomerplus/boomerplus/color"
	"github.com/boomerplus/boomerplus/loader"
	"github.com/boomerplus/boomerplus/media"
	"github.com/boomerplus/boomerplus/style"
	"github.com/boomerplus/boomerplus/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort mo.Option[string]
	hidden   bool
}

var wherePaths = []*whereTarget{
	{"Config", where.Config, "config", mo.Some("c"), false},
	{"Data", dataAddresses, "data", mo.None[string](), false},
	{"Datasets", where.Datasets, "datasets", mo.Some("d"), false},
	{"Logs", where.Logs, "logs", mo.Some("l"), false},
	{"Cache", where.Cache, "cache", mo.None[string](), true},
	{"Queries", where.Queries, "queries", mo.None[string](), true},
	{"History", where.History, "history", mo.None[string](), true},
}

// dataAddresses lists where each category dataset is read from.
func dataAddresses() string {
	l := loader.FromConfig()
	return strings.Join(lo.Map(media.Categories(), func(c media.Category, _ int) string {
		return l.Describe(c)
	}), "\n")
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, n := range wherePaths {
		if short, ok := n.argShort.Get(); ok {
			whereCmd.Flags().BoolP(n.argLong, short, false, n.name+" path")
		} else {
			whereCmd.Flags().Bool(n.argLong, false, n.name+" path")
		}

		if n.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(n.argLong))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t *whereTarget, _ int) string {
		return t.argLong
	})...)

	whereCmd.SetOut(os.Stdout)
}

// whereCmd prints application paths, or a single one when a flag is given.
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show the paths of config, datasets and logs",
	Run: func(cmd *cobra.Command, args []string) {
		header := style.New().Bold(true).Foreground(color.Purple).Render

		for _, n := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(n.argLong)) {
				cmd.Println(n.where())
				return
			}
		}

		visible := lo.Reject(wherePaths, func(t *whereTarget, _ int) bool { return t.hidden })
		for i, n := range visible {
			cmd.Printf("%s %s\n", header(n.name+"?"), style.Fg(color.Yellow)("--"+n.argLong))
			cmd.Println(n.where())

			if i < len(visible)-1 {
				cmd.Println()
			}
		}
	},
}
