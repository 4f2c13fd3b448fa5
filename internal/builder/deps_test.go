package builder

import (
	"maps"
	"testing"
)

func TestResolveDependencies_TriggersForceTarget(t *testing.T) {
	triggers := []string{
		"install_multimedia_codecs",
		"install_intel_codecs",
		"install_amd_codecs",
	}

	for _, trigger := range triggers {
		t.Run(trigger, func(t *testing.T) {
			sel := map[string]bool{
				trigger:            true,
				"enable_rpmfusion": false,
			}
			resolved := ResolveDependencies(sel)
			if !resolved["enable_rpmfusion"] {
				t.Errorf("enable_rpmfusion = false, want true when %s is enabled", trigger)
			}
		})
	}
}

func TestResolveDependencies_NoTriggersUnchanged(t *testing.T) {
	sel := map[string]bool{
		"set_hostname":              true,
		"enable_rpmfusion":          false,
		"install_multimedia_codecs": false,
	}
	resolved := ResolveDependencies(sel)
	if !maps.Equal(resolved, sel) {
		t.Errorf("ResolveDependencies = %v, want unchanged %v", resolved, sel)
	}
}

func TestResolveDependencies_OriginalNotMutated(t *testing.T) {
	sel := map[string]bool{"install_amd_codecs": true}
	_ = ResolveDependencies(sel)
	if _, ok := sel["enable_rpmfusion"]; ok {
		t.Errorf("caller's selection was mutated: %v", sel)
	}
}

func TestResolveDependencies_TargetDoesNotTrigger(t *testing.T) {
	// Enabling the target on its own must not pull in anything else.
	sel := map[string]bool{"enable_rpmfusion": true}
	resolved := ResolveDependencies(sel)
	if !maps.Equal(resolved, sel) {
		t.Errorf("ResolveDependencies = %v, want unchanged %v", resolved, sel)
	}
}
