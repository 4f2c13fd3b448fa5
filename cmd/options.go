package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"setup-forge/internal/builder"
	"setup-forge/internal/catalog"
	"setup-forge/internal/logger"
)

// optionsCatalogPath is the catalog file the options are enumerated from.
var optionsCatalogPath string

// optionsFormat selects the output encoding: "yaml" (default) or "json".
var optionsFormat string

// optionsCmd enumerates every selectable option in the catalog, for
// building a selection file or driving an external UI.
var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List every selectable option in the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		cat := catalog.LoadCatalog(optionsCatalogPath)
		opts := builder.GenerateOptions(cat)

		var out []byte
		var err error
		if optionsFormat == "json" {
			out, err = json.MarshalIndent(opts, "", "  ")
		} else {
			out, err = yaml.Marshal(opts)
		}
		if err != nil {
			logger.Error("Failed to encode options: %v\n", err)
			os.Exit(1)
		}
		if optionsFormat == "json" {
			out = append(out, '\n')
		}

		_, _ = os.Stdout.Write(out)
	},
}

// init sets up CLI flags and registers the command with the root command.
func init() {
	optionsCmd.Flags().StringVarP(&optionsCatalogPath, "catalog", "c", "catalog.yaml", "Path to the catalog file (YAML or JSON)")
	optionsCmd.Flags().StringVar(&optionsFormat, "format", "yaml", "Output format: yaml or json")

	rootCmd.AddCommand(optionsCmd)
}
