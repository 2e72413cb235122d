// Package cmd implements the command-line interface of boomerplus.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/boomerplus/boomerplus/catalog"
	"github.com/boomerplus/boomerplus/color"
	"github.com/boomerplus/boomerplus/key"
	"github.com/boomerplus/boomerplus/media"
	"github.com/boomerplus/boomerplus/player"
	"github.com/boomerplus/boomerplus/present"
	"github.com/boomerplus/boomerplus/resolve"
	"github.com/boomerplus/boomerplus/style"
	"github.com/boomerplus/boomerplus/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	showCmd.SetOut(os.Stdout)
}

// showCmd prints an item page.
var showCmd = &cobra.Command{
	Use:               "show [category] [slug]",
	Short:             "Show the details and playback of an item",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completionCategories,
	Run: func(cmd *cobra.Command, args []string) {
		category, err := media.ParseCategory(args[0])
		handleErr(err)

		result := newCatalog().Item(context.Background(), category, args[1])

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(result))
			return
		}

		handleErr(lookupErr(result))
		printItem(cmd, result.Item, result.Playback)
	},
}

// lookupErr explains a failed lookup, with suggestions when there are any.
func lookupErr(result catalog.ItemResult) error {
	switch result.Status {
	case catalog.Found:
		return nil
	case catalog.NotFound:
		msg := fmt.Sprintf("item %q not found in %s", result.Slug, result.Category.Label())
		if len(result.Suggestions) > 0 {
			msg += ", did you mean " + strings.Join(lo.Map(result.Suggestions, func(item *media.Item, _ int) string {
				return style.Fg(color.Yellow)(item.Slug)
			}), ", ") + "?"
		}
		return fmt.Errorf("%s", msg)
	default:
		return fmt.Errorf("%s are unavailable", result.Category.Label())
	}
}

func printItem(cmd *cobra.Command, item *media.Item, playback catalog.Playback) {
	width := util.TerminalWidth()
	label := style.New().Bold(true).Foreground(color.Purple).Render

	cmd.Println(style.CategoryTitle(item.Category)(item.Title))
	cmd.Println()

	for _, d := range present.Details(item) {
		cmd.Printf("%s %s\n", label(d.Label), d.Value)
	}
	if len(item.Tags) > 0 {
		cmd.Printf("%s %s\n", label("Tags"), strings.Join(item.Tags, ", "))
	}
	if license := present.LicenseLabel(item); license != "" {
		cmd.Printf("%s %s\n", label("License"), license)
	}
	if item.Description != "" {
		cmd.Println()
		cmd.Println(util.Wrap(item.Description, width))
	}

	cmd.Println()
	name := viper.GetString(key.Player)
	cmd.Printf("%s %s\n", label("Play"), player.Describe(playback.Primary, name))
	if playback.Primary.URL != "" {
		cmd.Println(style.Faint(playback.Primary.URL))
	}
	if playback.Backup.Kind != resolve.None {
		cmd.Printf("%s %s\n", label("Backup"), player.Describe(playback.Backup, name))
		cmd.Println(style.Faint(playback.Backup.URL))
	}
}
