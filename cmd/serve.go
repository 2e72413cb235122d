// Package cmd implements the command-line interface of boomerplus.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/boomerplus/boomerplus/color"
	"github.com/boomerplus/boomerplus/key"
	"github.com/boomerplus/boomerplus/style"
	"github.com/boomerplus/boomerplus/web"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Address to listen on")
	lo.Must0(viper.BindPFlag(key.ServeAddr, serveCmd.Flags().Lookup("addr")))
	serveCmd.Flags().Bool("debug", false, "Run gin in debug mode")
}

// serveCmd runs the web front-end until interrupted.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		if !lo.Must(cmd.Flags().GetBool("debug")) {
			gin.SetMode(gin.ReleaseMode)
		}

		router := web.NewRouter(web.Options{
			Catalog: newCatalog(),
			Origins: viper.GetStringSlice(key.ServeCORSOrigins),
			Latest:  viper.GetInt(key.BrowseLatestCount),
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		addr := viper.GetString(key.ServeAddr)
		fmt.Printf("%s listening on %s\n", style.Fg(color.Green)("●"), style.Bold(addr))
		handleErr(web.Serve(ctx, addr, router))
	},
}
