// Package cmd implements the command-line interface of boomerplus.
package cmd

import (
	"context"

	"github.com/boomerplus/boomerplus/inline"
	"github.com/boomerplus/boomerplus/key"
	"github.com/boomerplus/boomerplus/media"
	"github.com/boomerplus/boomerplus/query"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(listCmd)
	addQueryFlags(listCmd)
}

// addQueryFlags registers the flags shared by list and search.
func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("query", "q", "", "Only items whose title or tags contain this text")
	cmd.Flags().StringSliceP("tag", "t", []string{}, "Only items carrying any of these tags")
	cmd.Flags().StringP("sort", "s", "", "Sort order: title-asc, title-desc, year-desc, year-asc")
	cmd.Flags().StringP("pick", "p", "", "Item selector: first, last, all, N, A-B or @text@")
	cmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	cmd.Flags().BoolP("urls", "u", false, "Print the primary source URL of each item")

	lo.Must0(cmd.RegisterFlagCompletionFunc("sort", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(query.SortKeys(), func(k query.SortKey, _ int) string { return string(k) }), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(cmd.RegisterFlagCompletionFunc("query", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
	cmd.MarkFlagsMutuallyExclusive("json", "urls")
}

// inlineOptions reads the query flags of cmd.
func inlineOptions(cmd *cobra.Command) *inline.Options {
	sort := lo.Must(cmd.Flags().GetString("sort"))
	if sort == "" {
		sort = viper.GetString(key.BrowseDefaultSort)
	}
	sortKey, err := query.ParseSortKey(sort)
	handleErr(err)

	options := &inline.Options{
		Out: cmd.OutOrStdout(),
		State: query.State{
			Text: lo.Must(cmd.Flags().GetString("query")),
			Tags: lo.Must(cmd.Flags().GetStringSlice("tag")),
			Sort: sortKey,
		},
		Json: lo.Must(cmd.Flags().GetBool("json")),
		URLs: lo.Must(cmd.Flags().GetBool("urls")),
	}

	if pick := lo.Must(cmd.Flags().GetString("pick")); pick != "" {
		picker, err := inline.ParsePicker(pick)
		handleErr(err)
		options.Picker = mo.Some(picker)
	}

	return options
}

// listCmd prints the items of one category.
var listCmd = &cobra.Command{
	Use:               "list [category]",
	Short:             "List the items of a category",
	Example:           "  boomerplus list movies --tag noir --sort year-desc",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionCategories,
	Run: func(cmd *cobra.Command, args []string) {
		category, err := media.ParseCategory(args[0])
		handleErr(err)

		options := inlineOptions(cmd)
		options.Category = mo.Some(category)

		handleErr(inline.Run(context.Background(), newCatalog(), options))
	},
}
