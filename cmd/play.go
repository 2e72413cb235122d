// Package cmd implements the command-line interface of boomerplus.
package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/boomerplus/boomerplus/catalog"
	"github.com/boomerplus/boomerplus/color"
	"github.com/boomerplus/boomerplus/history"
	"github.com/boomerplus/boomerplus/icon"
	"github.com/boomerplus/boomerplus/key"
	"github.com/boomerplus/boomerplus/log"
	"github.com/boomerplus/boomerplus/media"
	"github.com/boomerplus/boomerplus/player"
	"github.com/boomerplus/boomerplus/present"
	"github.com/boomerplus/boomerplus/query"
	"github.com/boomerplus/boomerplus/resolve"
	"github.com/boomerplus/boomerplus/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolP("backup", "b", false, "Play the backup source instead of the primary one")
	playCmd.Flags().StringP("player", "P", "", "Media player for direct files")
	lo.Must0(viper.BindPFlag(key.Player, playCmd.Flags().Lookup("player")))
}

// playCmd plays an item by slug, or by title when the slug is unknown.
var playCmd = &cobra.Command{
	Use:               "play [category] [slug or title]",
	Short:             "Play an item",
	Long:              "Play an item by slug. When no slug matches, the argument is searched in titles and, if several items match, you are asked to pick one.",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completionCategories,
	Run: func(cmd *cobra.Command, args []string) {
		category, err := media.ParseCategory(args[0])
		handleErr(err)

		ctx := context.Background()
		c := newCatalog()

		item, err := findItem(ctx, c, category, args[1])
		handleErr(err)

		playback := catalog.PlaybackOf(item)
		r := playback.Primary
		if lo.Must(cmd.Flags().GetBool("backup")) {
			r = playback.Backup
		}

		if r.Kind == resolve.DirectVideo || r.Kind == resolve.DirectAudio {
			checkPlayer()
		}

		err = player.Play(r, item.Title)
		if errors.Is(err, player.ErrNoSource) {
			handleErr(fmt.Errorf("%s has no playable source", item.Title))
		}
		handleErr(err)

		if err := history.Save(item); err != nil {
			log.Warn(err)
		}

		fmt.Printf("%s %s: %s\n",
			style.Fg(color.Green)(icon.Get(icon.Play)),
			style.Bold(item.Title),
			player.Describe(r, viper.GetString(key.Player)),
		)
	},
}

// findItem resolves arg as a slug, then as a title search.
func findItem(ctx context.Context, c *catalog.Catalog, category media.Category, arg string) (*media.Item, error) {
	result := c.Item(ctx, category, arg)
	switch result.Status {
	case catalog.Found:
		return result.Item, nil
	case catalog.Unavailable:
		return nil, lookupErr(result)
	}

	view, _ := c.Browse(ctx, category, query.State{Text: arg, Sort: query.TitleAsc})
	switch len(view.Items) {
	case 0:
		return nil, lookupErr(result)
	case 1:
		return view.Items[0], nil
	}

	options := lo.Map(view.Items, func(item *media.Item, _ int) string {
		return fmt.Sprintf("%s (%s)", item.Title, present.YearLabel(item))
	})

	var index int
	prompt := &survey.Select{
		Message: fmt.Sprintf("%d items match %q", len(view.Items), arg),
		Options: options,
	}
	if err := survey.AskOne(prompt, &index); err != nil {
		return nil, err
	}

	return view.Items[index], nil
}
