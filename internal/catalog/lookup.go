package catalog

import (
	"fmt"

	"setup-forge/internal/logger"
)

// OptionName returns the display name of an option or app within a
// category. Unlike the emitters, these lookups are programmer-facing:
// an unknown category or option is an error, not something to skip.
func OptionName(cat *Catalog, category, option string) (string, error) {
	logger.Debug("OptionName - category: %s, option: %s\n", category, option)
	entry, err := lookupEntry(cat, category, option)
	if err != nil {
		return "", err
	}
	return entry.name, nil
}

// OptionDescription returns the description of an option or app within a
// category, with the same error behavior as OptionName.
func OptionDescription(cat *Catalog, category, option string) (string, error) {
	logger.Debug("OptionDescription - category: %s, option: %s\n", category, option)
	entry, err := lookupEntry(cat, category, option)
	if err != nil {
		return "", err
	}
	return entry.description, nil
}

// entryInfo is the name/description pair shared by every catalog entry
// shape.
type entryInfo struct {
	name        string
	description string
}

// lookupEntry resolves an option key against the category's shape. Standard
// app categories are searched subcategory by subcategory in declared order.
func lookupEntry(cat *Catalog, category, option string) (entryInfo, error) {
	switch KindOf(category) {
	case KindSystemConfig:
		opt, ok := cat.SystemConfig.Options.Get(option)
		if !ok {
			return entryInfo{}, fmt.Errorf("unknown option %q in category %q", option, category)
		}
		return entryInfo{name: opt.Name, description: opt.Description}, nil

	case KindEssentialApps:
		for _, app := range cat.EssentialApps.Apps {
			if app.Name == option {
				return entryInfo{name: app.Name, description: app.Description}, nil
			}
		}
		return entryInfo{}, fmt.Errorf("unknown option %q in category %q", option, category)

	case KindStandardApps:
		if appCat, ok := cat.Categories.Get(category); ok {
			for _, subName := range appCat.Subcategories.Keys() {
				sub, _ := appCat.Subcategories.Get(subName)
				if app, ok := sub.Apps.Get(option); ok {
					return entryInfo{name: app.Name, description: app.Description}, nil
				}
			}
		}
		return entryInfo{}, fmt.Errorf("unknown option %q in category %q", option, category)

	default:
		return entryInfo{}, fmt.Errorf("unknown category: %s", category)
	}
}
