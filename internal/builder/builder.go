// Package builder turns a catalog and a user selection into ordered blocks
// of shell command text. Every Build function is a pure function of
// (Catalog, Selection, OutputMode); the caller concatenates the blocks in
// the canonical order: upgrade, config, install, custom.
package builder

import (
	"fmt"
	"strings"

	"setup-forge/internal/catalog"
)

// Placeholders maps placeholder names to the literal tokens emitted into
// the script. Tokens are substituted by a later templating stage, never by
// the emitters themselves.
var Placeholders = map[string]string{
	"hostname": "{hostname}",
}

const (
	// hostnameOption is the reserved system_config key whose commands carry
	// the hostname placeholder.
	hostnameOption = "set_hostname"

	// hostnameCommand marks the command line the placeholder is appended to.
	hostnameCommand = "hostnamectl set-hostname"
)

// BuildSystemUpgrade emits the fixed system-upgrade block: a user-facing
// status message (never redirected), the package-manager upgrade command
// (redirected in Quiet mode), and a blank separator line. It does not
// depend on the selection.
func BuildSystemUpgrade(mode catalog.OutputMode) string {
	upgrade := "dnf upgrade -y"
	if mode.Quiet() {
		upgrade += quietRedirect
	}

	lines := []string{
		`log_message "Performing system upgrade... This may take a while..."`,
		upgrade,
		"", // empty line for readability
	}

	return strings.Join(lines, "\n")
}

// BuildSystemConfig emits one block per enabled system-config option, in
// the catalog's declared key order. Each block is a comment with the
// option's description followed by the option's commands. Options enabled
// in the selection but absent from the catalog are silently skipped; the
// selection may be stale relative to the catalog.
func BuildSystemConfig(cat *catalog.Catalog, sel *catalog.Selection, mode catalog.OutputMode) string {
	// Implied prerequisites are resolved before anything is emitted, so an
	// option pulled in by a rule is emitted exactly like one the user chose.
	resolved := ResolveDependencies(sel.SystemConfig)

	var lines []string
	for _, key := range cat.SystemConfig.Options.Keys() {
		if !resolved[key] {
			continue
		}
		option, _ := cat.SystemConfig.Options.Get(key)

		lines = append(lines, "# "+option.Description)
		for _, cmd := range option.Command {
			if key == hostnameOption && strings.Contains(cmd, hostnameCommand) {
				cmd = cmd + " " + Placeholders["hostname"]
			}
			lines = append(lines, redirectIfQuiet(cmd, mode))
		}
		lines = append(lines, "") // empty line for readability
	}

	return strings.Join(lines, "\n")
}

// BuildAppInstall emits the application installation blocks: the essential
// apps first as one combined install command, then each standard category
// in the fixed StandardCategories order. Within a category, subcategories
// and apps follow the selection file's own order.
func BuildAppInstall(cat *catalog.Catalog, sel *catalog.Selection, mode catalog.OutputMode) string {
	var lines []string

	// Essential apps are a flat list installed with a single combined
	// command. The combined command is an ordinary package-manager call, so
	// it is redirected as a whole in Quiet mode.
	var names []string
	for _, app := range cat.EssentialApps.Apps {
		if sel.EssentialApps[app.Name] {
			names = append(names, app.Name)
		}
	}
	if len(names) > 0 {
		install := "dnf install -y " + strings.Join(names, " ")
		if mode.Quiet() {
			install += quietRedirect
		}
		lines = append(lines,
			"# Install essential applications",
			`log_message "Installing essential applications..."`,
			install,
			`log_message "Essential applications installed successfully."`,
			"",
		)
	}

	for _, category := range catalog.StandardCategories {
		lines = appendCategoryInstalls(lines, cat, sel, category, mode)
	}

	return strings.Join(lines, "\n")
}

// appendCategoryInstalls emits the install blocks of one standard category.
// The "installing" and "installed successfully" status lines around each
// app are user-facing and never redirected; the install commands between
// them follow the redirection policy.
func appendCategoryInstalls(lines []string, cat *catalog.Catalog, sel *catalog.Selection, category string, mode catalog.OutputMode) []string {
	catData, ok := cat.Categories.Get(category)
	if !ok {
		return lines
	}
	selCat, ok := sel.Categories.Get(category)
	if !ok {
		return lines
	}

	for _, subName := range selCat.Keys() {
		appSels, _ := selCat.Get(subName)

		var selected []string
		for _, appID := range appSels.Keys() {
			if appSel, _ := appSels.Get(appID); appSel.Selected {
				selected = append(selected, appID)
			}
		}
		if len(selected) == 0 {
			continue
		}

		sub, ok := catData.Subcategories.Get(subName)
		if !ok {
			// Stale selection: the catalog no longer has this subcategory.
			continue
		}

		lines = append(lines, fmt.Sprintf("# Install %s applications", sub.Name))
		for _, appID := range selected {
			app, ok := sub.Apps.Get(appID)
			if !ok {
				// Stale selection: the catalog no longer has this app.
				continue
			}
			appSel, _ := appSels.Get(appID)

			lines = append(lines, fmt.Sprintf("log_message \"Installing %s...\"", app.Name))
			for _, cmd := range installCommands(app, appSel) {
				lines = append(lines, redirectIfQuiet(cmd, mode))
			}
			lines = append(lines, fmt.Sprintf("log_message \"%s installed successfully.\"", app.Name))
		}
		lines = append(lines, "") // empty line for readability
	}

	return lines
}

// installCommands picks the command list for an app. When the app declares
// installation types and the selection names a valid one, that variant
// wins; otherwise the app's default command is the fallback, not an error.
func installCommands(app catalog.App, sel catalog.AppSelection) catalog.CommandList {
	if len(app.InstallationTypes) > 0 && sel.InstallationType != "" {
		if variant, ok := app.InstallationTypes[sel.InstallationType]; ok {
			return variant.Command
		}
	}
	return app.Command
}

// BuildCustomScript returns the user-provided free-text script trimmed of
// surrounding whitespace with a single trailing newline, or an empty string
// when absent. The text is trusted shell; nothing is escaped or validated.
func BuildCustomScript(sel *catalog.Selection) string {
	script := strings.TrimSpace(sel.CustomScript)
	if script == "" {
		return ""
	}
	return script + "\n"
}
