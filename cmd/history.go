// Package cmd implements the command-line interface of boomerplus.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/boomerplus/boomerplus/color"
	"github.com/boomerplus/boomerplus/history"
	"github.com/boomerplus/boomerplus/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	historyCmd.Flags().IntP("limit", "n", 0, "Only show the n most recent plays")
	historyCmd.SetOut(os.Stdout)
}

// historyCmd lists remembered plays, most recent first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently played items",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		plays, err := history.Get()
		handleErr(err)

		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 && limit < len(plays) {
			plays = plays[:limit]
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(plays))
			return
		}

		if len(plays) == 0 {
			cmd.Println(style.Faint("Nothing played yet"))
			return
		}

		for _, p := range plays {
			cmd.Printf("%s %s %s\n",
				style.Fg(color.Yellow)(p.Category.String()+"/"+p.Slug),
				p.Title,
				style.Faint(p.LastAt.Local().Format("Jan 2 15:04")),
			)
		}
	},
}
