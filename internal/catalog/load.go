package catalog

import (
	"os"

	"gopkg.in/yaml.v3"

	"setup-forge/internal/logger"
)

// LoadCatalog reads the catalog file at path. YAML and JSON documents are
// both accepted (yaml.v3 parses JSON as a subset of YAML). If the file
// cannot be read or parsed, the error is logged and an empty Catalog is
// returned; load failures never propagate past this boundary.
func LoadCatalog(path string) *Catalog {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Catalog %s not found: %v\n", path, err)
		return &Catalog{}
	}

	var cat Catalog
	if err := yaml.Unmarshal(raw, &cat); err != nil {
		logger.Error("Catalog %s is not a valid YAML or JSON file: %v\n", path, err)
		return &Catalog{}
	}

	return &cat
}

// LoadSelection reads the selection file at path, with the same
// degrade-to-empty behavior as LoadCatalog. The boolean maps are always
// non-nil on return so callers can index them without nil checks.
func LoadSelection(path string) *Selection {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Selection %s not found: %v\n", path, err)
		return emptySelection()
	}

	var sel Selection
	if err := yaml.Unmarshal(raw, &sel); err != nil {
		logger.Error("Selection %s is not a valid YAML or JSON file: %v\n", path, err)
		return emptySelection()
	}

	// Defensive: ensure maps are initialized if the document omitted them.
	if sel.SystemConfig == nil {
		sel.SystemConfig = make(map[string]bool)
	}
	if sel.EssentialApps == nil {
		sel.EssentialApps = make(map[string]bool)
	}

	return &sel
}

// emptySelection returns a Selection with initialized maps.
func emptySelection() *Selection {
	return &Selection{
		SystemConfig:  make(map[string]bool),
		EssentialApps: make(map[string]bool),
	}
}
