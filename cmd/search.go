// Package cmd implements the command-line interface of boomerplus.
package cmd

import (
	"context"
	"strings"

	"github.com/boomerplus/boomerplus/inline"
	"github.com/boomerplus/boomerplus/log"
	"github.com/boomerplus/boomerplus/query"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
	addQueryFlags(searchCmd)
	_ = searchCmd.Flags().MarkHidden("query")
}

// searchCmd searches every category at once.
var searchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search titles and tags across every category",
	Args:  cobra.MinimumNArgs(1),
	ValidArgsFunction: func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		options := inlineOptions(cmd)
		options.State.Text = strings.Join(args, " ")

		handleErr(inline.Run(context.Background(), newCatalog(), options))
		if err := query.Remember(options.State.Text, 1); err != nil {
			log.Warnf("search not remembered: %s", err)
		}
	},
}
