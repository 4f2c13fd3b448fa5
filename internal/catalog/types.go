package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// OutputMode controls whether the generated script suppresses command
// output. Exactly one label, ModeQuiet, enables suppression; any other
// value behaves as ModeNormal, without validation or error.
type OutputMode string

const (
	ModeNormal OutputMode = "Normal"
	ModeQuiet  OutputMode = "Quiet"
)

// Quiet reports whether output-suppressing redirection applies.
func (m OutputMode) Quiet() bool {
	return m == ModeQuiet
}

// CategoryKind is the closed set of catalog category shapes. Category names
// resolve to a kind exactly once, here, so the rest of the code switches on
// the kind instead of comparing strings against a list.
type CategoryKind int

const (
	KindUnknown CategoryKind = iota
	KindSystemConfig
	KindEssentialApps
	KindStandardApps
)

// StandardCategories is the fixed, authoritative emission order for the
// standard app categories.
var StandardCategories = []string{
	"internet_apps",
	"productivity_apps",
	"multimedia_apps",
	"gaming_apps",
	"management_apps",
	"customization",
}

// KindOf resolves a category name to its kind. Unknown names resolve to
// KindUnknown; callers decide whether that is an error (lookup helpers) or
// something to skip (loaders).
func KindOf(category string) CategoryKind {
	switch category {
	case "system_config":
		return KindSystemConfig
	case "essential_apps":
		return KindEssentialApps
	case "internet_apps", "productivity_apps", "multimedia_apps",
		"gaming_apps", "management_apps", "customization":
		return KindStandardApps
	default:
		return KindUnknown
	}
}

// CommandList holds the shell command(s) of a catalog entry. The source
// document may use either a single scalar or a sequence of strings; both
// decode to an ordered list.
type CommandList []string

// UnmarshalYAML accepts a scalar command or a sequence of commands.
func (c *CommandList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var commands []string
		if err := node.Decode(&commands); err != nil {
			return err
		}
		*c = commands
		return nil
	}
	var command string
	if err := node.Decode(&command); err != nil {
		return err
	}
	*c = CommandList{command}
	return nil
}

// ConfigOption is a single system-config catalog entry.
type ConfigOption struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Command     CommandList `yaml:"command"`
}

// SystemConfig is the system_config category: an ordered map of option keys,
// plus a reserved "description" key at the category root which is not an
// option.
type SystemConfig struct {
	Description string
	Options     OrderedMap[ConfigOption]
}

// UnmarshalYAML splits the reserved "description" key off from the option
// entries, preserving the declared option order.
func (s *SystemConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("system_config: expected a mapping, got %s node", nodeKind(node))
	}
	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if key == "description" {
			if err := node.Content[i+1].Decode(&s.Description); err != nil {
				return err
			}
			continue
		}
		var option ConfigOption
		if err := node.Content[i+1].Decode(&option); err != nil {
			return fmt.Errorf("system_config option %q: %w", key, err)
		}
		s.Options.Set(key, option)
	}
	return nil
}

// EssentialApp is one entry of the flat essential-apps list.
type EssentialApp struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Command     CommandList `yaml:"command"`
}

// EssentialApps is the essential_apps category: a display name and a flat
// sequence of apps, with no subcategory level.
type EssentialApps struct {
	Name string         `yaml:"name"`
	Apps []EssentialApp `yaml:"apps"`
}

// InstallType is one alternative installation method for an app.
type InstallType struct {
	Command CommandList `yaml:"command"`
}

// App is an installable application entry. When InstallationTypes is
// present, its variants are mutually exclusive alternatives to Command,
// which remains the default when no valid variant is selected.
type App struct {
	Name              string                 `yaml:"name"`
	Description       string                 `yaml:"description"`
	Command           CommandList            `yaml:"command"`
	InstallationTypes map[string]InstallType `yaml:"installation_types"`
}

// Subcategory groups related apps within a standard category.
type Subcategory struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Apps        OrderedMap[App] `yaml:"apps"`
}

// AppCategory is a standard app category: an ordered map of subcategories,
// plus a reserved "name" key at the category root which is not a
// subcategory.
type AppCategory struct {
	Name          string
	Subcategories OrderedMap[Subcategory]
}

// UnmarshalYAML splits the reserved "name" key off from the subcategory
// entries, preserving the declared subcategory order.
func (a *AppCategory) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("app category: expected a mapping, got %s node", nodeKind(node))
	}
	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if key == "name" {
			if err := node.Content[i+1].Decode(&a.Name); err != nil {
				return err
			}
			continue
		}
		var sub Subcategory
		if err := node.Content[i+1].Decode(&sub); err != nil {
			return fmt.Errorf("subcategory %q: %w", key, err)
		}
		a.Subcategories.Set(key, sub)
	}
	return nil
}

// Catalog is the full, read-only distribution data: every configurable
// option, category, and install command. It is loaded once per run and
// never mutated.
type Catalog struct {
	SystemConfig  SystemConfig
	EssentialApps EssentialApps
	Categories    OrderedMap[AppCategory]
}

// UnmarshalYAML dispatches each top-level category to its shape by kind.
// Unknown top-level keys are ignored.
func (c *Catalog) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("catalog: expected a mapping, got %s node", nodeKind(node))
	}
	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i].Value
		switch KindOf(key) {
		case KindSystemConfig:
			if err := node.Content[i+1].Decode(&c.SystemConfig); err != nil {
				return err
			}
		case KindEssentialApps:
			if err := node.Content[i+1].Decode(&c.EssentialApps); err != nil {
				return err
			}
		case KindStandardApps:
			var category AppCategory
			if err := node.Content[i+1].Decode(&category); err != nil {
				return fmt.Errorf("category %q: %w", key, err)
			}
			c.Categories.Set(key, category)
		case KindUnknown:
			// Not a recognized category; skip.
		}
	}
	return nil
}

// Empty reports whether the catalog carries no data at all, which is how
// load failures surface to the rest of the program.
func (c *Catalog) Empty() bool {
	if c == nil {
		return true
	}
	return c.SystemConfig.Options.Len() == 0 &&
		len(c.EssentialApps.Apps) == 0 &&
		c.Categories.Len() == 0
}

// AppSelection is the selection state of a single app. The selection file
// may use a bare boolean as shorthand for {selected: <bool>}.
type AppSelection struct {
	Selected         bool   `yaml:"selected"`
	InstallationType string `yaml:"installation_type"`
}

// UnmarshalYAML accepts either a boolean scalar or the full mapping form.
func (a *AppSelection) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&a.Selected)
	}
	type plain AppSelection
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*a = AppSelection(p)
	return nil
}

// AppSelections maps app-id to selection state, in selection file order.
type AppSelections = OrderedMap[AppSelection]

// CategorySelection maps subcategory name to its app selections, in
// selection file order.
type CategorySelection = OrderedMap[AppSelections]

// Selection is the user's chosen subset of the catalog. It mirrors the
// catalog's shape with boolean/variant markers and may be stale relative to
// the catalog; emitters silently skip entries the catalog no longer has.
type Selection struct {
	SystemConfig  map[string]bool
	EssentialApps map[string]bool
	Categories    OrderedMap[CategorySelection]
	CustomScript  string
}

// UnmarshalYAML dispatches top-level selection keys by category kind.
// Unknown keys are ignored, so stale selections keep loading.
func (s *Selection) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("selection: expected a mapping, got %s node", nodeKind(node))
	}
	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if key == "custom_script" {
			if err := node.Content[i+1].Decode(&s.CustomScript); err != nil {
				return err
			}
			continue
		}
		switch KindOf(key) {
		case KindSystemConfig:
			if err := node.Content[i+1].Decode(&s.SystemConfig); err != nil {
				return err
			}
		case KindEssentialApps:
			if err := node.Content[i+1].Decode(&s.EssentialApps); err != nil {
				return err
			}
		case KindStandardApps:
			var category CategorySelection
			if err := node.Content[i+1].Decode(&category); err != nil {
				return fmt.Errorf("selection category %q: %w", key, err)
			}
			s.Categories.Set(key, category)
		case KindUnknown:
			// Not a recognized category; skip.
		}
	}
	return nil
}
