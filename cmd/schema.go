// Package cmd implements the command-line interface of boomerplus.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/boomerplus/boomerplus/constant"
	"github.com/boomerplus/boomerplus/media"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
}

// schemaCmd prints the JSON schema category datasets are validated against.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of a category dataset",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := &jsonschema.Reflector{Anonymous: true}
		schema := reflector.Reflect(&media.Dataset{})
		schema.Title = constant.App + " dataset"

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}
