package builder

import (
	"strings"

	"setup-forge/internal/catalog"
)

// quietRedirect is the suffix appended to a command line to suppress its
// output in Quiet mode.
const quietRedirect = " > /dev/null 2>&1"

// noRedirectPrefixes lists command prefixes that must keep their output:
// they either talk to the user or read from them.
var noRedirectPrefixes = []string{
	"log_message",
	"echo",
	"printf",
	"read",
	"prompt_",
}

// ShouldQuietRedirect reports whether appending an output-suppressing
// redirection to cmd is safe. The decision is made per command line, not
// per block; a block may mix redirected and non-redirected lines.
func ShouldQuietRedirect(cmd string) bool {
	// A heredoc body must be preserved verbatim, and appending a redirection
	// to the opening line would corrupt the heredoc. The delimiter is
	// matched anywhere in the line, not just as a prefix.
	if strings.Contains(cmd, "EOF") {
		return false
	}
	for _, prefix := range noRedirectPrefixes {
		if strings.HasPrefix(cmd, prefix) {
			return false
		}
	}
	return true
}

// redirectIfQuiet applies the redirection policy to a single command line.
// It is a no-op under Normal mode.
func redirectIfQuiet(cmd string, mode catalog.OutputMode) string {
	if mode.Quiet() && ShouldQuietRedirect(cmd) {
		return cmd + quietRedirect
	}
	return cmd
}
