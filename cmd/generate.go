package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"setup-forge/internal/builder"
	"setup-forge/internal/catalog"
	"setup-forge/internal/logger"
)

// catalogPath holds the path to the catalog file (YAML or JSON).
// It's passed via the `--catalog` or `-c` flag.
var catalogPath string

// selectionPath is the path to the user selection file mirroring the
// catalog's shape.
var selectionPath string

// outputPath is where the generated script is written; "-" means stdout.
var outputPath string

// quiet toggles Quiet output mode for the generated script.
var quiet bool

// hostname, when set, replaces the {hostname} placeholder in the generated
// script. When empty the placeholder is left in place for a later
// templating step.
var hostname string

// scriptHeader starts every generated script.
const scriptHeader = "#!/bin/bash\n\n"

// generateCmd expands the selection against the catalog and writes the
// resulting setup script.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the setup script from a catalog and a selection",
	Run: func(cmd *cobra.Command, args []string) {
		// Load the catalog and selection. Load failures degrade to empty
		// structures inside the loaders, so generation always proceeds.
		cat := catalog.LoadCatalog(catalogPath)
		sel := catalog.LoadSelection(selectionPath)

		mode := catalog.ModeNormal
		if quiet {
			mode = catalog.ModeQuiet
		}

		script := buildScript(cat, sel, mode)

		// Hostname substitution is a templating step on the finished text,
		// separate from the emitters.
		if hostname != "" {
			script = strings.ReplaceAll(script, builder.Placeholders["hostname"], hostname)
		}

		if outputPath == "-" {
			_, _ = os.Stdout.WriteString(script)
			return
		}
		if err := os.WriteFile(outputPath, []byte(script), 0755); err != nil {
			logger.Error("Failed to write script %s: %v\n", outputPath, err)
			os.Exit(1)
		}
		logger.Info("Wrote %s\n", outputPath)
	},
}

// buildScript assembles the emitter blocks in the canonical order:
// upgrade, config, install, custom. Non-empty blocks are separated by a
// blank line; empty blocks disappear from the output.
func buildScript(cat *catalog.Catalog, sel *catalog.Selection, mode catalog.OutputMode) string {
	sections := []string{
		builder.BuildSystemUpgrade(mode),
		builder.BuildSystemConfig(cat, sel, mode),
		builder.BuildAppInstall(cat, sel, mode),
		builder.BuildCustomScript(sel),
	}

	var parts []string
	for _, section := range sections {
		if section != "" {
			parts = append(parts, section)
		}
	}

	return scriptHeader + strings.Join(parts, "\n")
}

// init sets up CLI flags and registers the command with the root command.
func init() {
	generateCmd.Flags().StringVarP(&catalogPath, "catalog", "c", "catalog.yaml", "Path to the catalog file (YAML or JSON)")
	generateCmd.Flags().StringVarP(&selectionPath, "selection", "s", "selection.yaml", "Path to the selection file (YAML or JSON)")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "setup.sh", "Path for the generated script, or - for stdout")
	generateCmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress command output in the generated script where safe")
	generateCmd.Flags().StringVar(&hostname, "hostname", "", "Value substituted for the {hostname} placeholder")

	rootCmd.AddCommand(generateCmd)
}
