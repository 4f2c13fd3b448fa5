package main

import (
	"setup-forge/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI commands.
//
// The setup-forge project is an unattended system setup script generator that:
//   - Reads a declarative catalog (YAML or JSON) describing configurable system options,
//     installable applications grouped by category, and the shell commands behind each
//   - Reads a user selection file mirroring the catalog's shape with boolean/variant markers
//   - Expands the selection into an ordered, human-readable shell script:
//     system upgrade, system configuration, application installs, then a user-supplied
//     custom script block
//   - Derives implicit dependencies between options (e.g., selecting codec installation
//     force-enables the repository that provides the codecs)
//   - Supports a quiet output mode that appends an output-suppressing redirection to
//     commands where that is safe to do
//
// Error handling strategy:
//   - Catalog and selection load failures degrade to empty structures and are logged,
//     so a bad input yields an empty (or partial) script rather than a crash
//   - The generated script is never executed by this tool; it is plain text handed
//     to the user
//
// Integration points:
//   - The emitted script references a log_message helper the surrounding shell
//     environment is expected to provide
//   - The set_hostname option carries a {hostname} placeholder which the generate
//     command substitutes when --hostname is given
func main() {
	cmd.Execute()
}
