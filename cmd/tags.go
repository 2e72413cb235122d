// Package cmd implements the command-line interface of boomerplus.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/boomerplus/boomerplus/color"
	"github.com/boomerplus/boomerplus/media"
	"github.com/boomerplus/boomerplus/query"
	"github.com/boomerplus/boomerplus/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	tagsCmd.SetOut(os.Stdout)
}

type tagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// tagsCmd prints the tag vocabulary of a category.
var tagsCmd = &cobra.Command{
	Use:               "tags [category]",
	Short:             "List the tags of a category with their item counts",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionCategories,
	Run: func(cmd *cobra.Command, args []string) {
		category, err := media.ParseCategory(args[0])
		handleErr(err)

		ds, ok := newCatalog().Dataset(context.Background(), category).Get()
		if !ok {
			handleErr(fmt.Errorf("%s are unavailable", category.Label()))
		}

		counts := lo.Map(query.AllTags(ds.Items), func(tag string, _ int) tagCount {
			return tagCount{Tag: tag, Count: lo.CountBy(ds.Items, func(item *media.Item) bool {
				return item.HasTag(tag)
			})}
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(counts))
			return
		}

		for _, c := range counts {
			cmd.Printf("%s %s\n", style.Fg(color.Purple)(c.Tag), style.Faint(fmt.Sprintf("(%d)", c.Count)))
		}
	},
}
