package builder

// ImplicationRule force-enables Target when any key in Triggers is enabled
// in the selection. Rules are data so new implications are table entries,
// not new conditionals.
type ImplicationRule struct {
	Triggers []string
	Target   string
}

// implicationRules holds every known trigger→target implication. Installing
// any codec set requires the RPM Fusion repositories to be enabled first.
var implicationRules = []ImplicationRule{
	{
		Triggers: []string{
			"install_multimedia_codecs",
			"install_intel_codecs",
			"install_amd_codecs",
		},
		Target: "enable_rpmfusion",
	},
}

// ResolveDependencies returns a copy of the system_config selection with
// every implication rule applied. Each rule is evaluated against the
// caller's original selection, never against another rule's output, so a
// rule's target cannot trigger further rules.
func ResolveDependencies(systemConfig map[string]bool) map[string]bool {
	resolved := make(map[string]bool, len(systemConfig))
	for key, enabled := range systemConfig {
		resolved[key] = enabled
	}

	for _, rule := range implicationRules {
		for _, trigger := range rule.Triggers {
			if systemConfig[trigger] {
				resolved[rule.Target] = true
				break
			}
		}
	}

	return resolved
}
