package builder

import (
	"setup-forge/internal/catalog"
	"setup-forge/internal/logger"
)

// Options lists every selectable key per catalog category, suitable for
// presenting choices to a user. It depends only on the catalog, never on a
// selection.
type Options struct {
	SystemConfig  []string                   `yaml:"system_config" json:"system_config"`
	EssentialApps []string                   `yaml:"essential_apps" json:"essential_apps"`
	Categories    map[string]CategoryOptions `yaml:"categories" json:"categories"`
}

// CategoryOptions is the selectable surface of one standard app category:
// its display name and its subcategory names.
type CategoryOptions struct {
	Name string   `yaml:"name" json:"name"`
	Apps []string `yaml:"apps" json:"apps"`
}

// GenerateOptions enumerates the selectable options of the catalog. An
// empty or malformed catalog yields the zero Options value; missing
// categories get empty defaults rather than an error.
func GenerateOptions(cat *catalog.Catalog) Options {
	if cat.Empty() {
		logger.Error("No catalog data is available!\n")
		return Options{}
	}

	opts := Options{
		// System-config keys come straight from the catalog; the reserved
		// "description" key is already split off at decode time.
		SystemConfig: cat.SystemConfig.Options.Keys(),
		Categories:   make(map[string]CategoryOptions, len(catalog.StandardCategories)),
	}

	for _, app := range cat.EssentialApps.Apps {
		opts.EssentialApps = append(opts.EssentialApps, app.Name)
	}

	for _, name := range catalog.StandardCategories {
		category, _ := cat.Categories.Get(name)
		opts.Categories[name] = CategoryOptions{
			Name: category.Name,
			Apps: category.Subcategories.Keys(),
		}
	}

	logger.Debug("GenerateOptions - options: %+v\n", opts)
	return opts
}
