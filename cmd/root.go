// Package cmd implements the command-line interface of boomerplus.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/boomerplus/boomerplus/catalog"
	"github.com/boomerplus/boomerplus/color"
	"github.com/boomerplus/boomerplus/constant"
	"github.com/boomerplus/boomerplus/icon"
	"github.com/boomerplus/boomerplus/key"
	"github.com/boomerplus/boomerplus/loader"
	"github.com/boomerplus/boomerplus/log"
	"github.com/boomerplus/boomerplus/media"
	"github.com/boomerplus/boomerplus/style"
	"github.com/boomerplus/boomerplus/tui"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("data", "D", "", "Directory or URL the category datasets are read from")
	lo.Must0(viper.BindPFlag(key.DataBase, rootCmd.PersistentFlags().Lookup("data")))

	rootCmd.Flags().StringP("category", "C", "", "Open straight into a category")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("category", completionCategories))
}

// rootCmd opens the interactive browser.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Browse and play a catalog of public-domain classics",
	Long: constant.Banner + "\n" +
		style.New().Italic(true).Foreground(color.Orange).Render("    - Browse and play a catalog of public-domain classics"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{Catalog: newCatalog()}
		if name := lo.Must(cmd.Flags().GetString("category")); name != "" {
			c, err := media.ParseCategory(name)
			handleErr(err)
			options.Category = mo.Some(c)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		handleErr(tui.Run(ctx, &options))
	},
}

// Execute runs the command tree.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newCatalog() *catalog.Catalog {
	return catalog.New(loader.FromConfig())
}

func completionCategories(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return media.Names(), cobra.ShellCompDirectiveNoFileComp
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Cross), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
