package land

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/landsim/internal/game/mana"
)

// Definition is the YAML form of a custom variant. Exactly one of Color or
// Parents must be set.
type Definition struct {
	ID       string   `yaml:"id"`
	Category Category `yaml:"category"`
	Color    string   `yaml:"color"`
	Parents  []string `yaml:"parents"`
}

type definitionFile struct {
	Lands []Definition `yaml:"lands"`
}

// LoadDefinitions reads a YAML file of the form
//
//	lands:
//	  - id: SnowCoveredForest
//	    color: G
//	  - id: DarkboreGrove
//	    parents: [Forest, Swamp]
//
// Postcondition: Returns the parsed definitions or a non-nil error.
func LoadDefinitions(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var f definitionFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing land file %s: %w", path, err)
	}
	return f.Lands, nil
}

// Apply registers defs in order. A definition with no category is tagged
// CategoryCustom.
//
// Postcondition: Returns nil with every definition registered, or the first
// error. Definitions before the failing one stay registered.
func (r *Registry) Apply(defs []Definition) error {
	for _, d := range defs {
		cat := d.Category
		if cat == CategoryNone {
			cat = CategoryCustom
		}
		switch {
		case d.Color != "" && len(d.Parents) == 0:
			c, err := mana.ParseColor(d.Color)
			if err != nil {
				return fmt.Errorf("land: %q: %w: %w", d.ID, ErrMalformedVariant, err)
			}
			if _, err := r.RegisterBasic(d.ID, c, cat); err != nil {
				return err
			}
		case d.Color == "" && len(d.Parents) == 2:
			if _, err := r.RegisterDual(d.ID, d.Parents[0], d.Parents[1], cat); err != nil {
				return err
			}
		default:
			return fmt.Errorf("land: %q: need either one color or two parents (color=%q parents=%v): %w",
				d.ID, d.Color, d.Parents, ErrMalformedVariant)
		}
	}
	return nil
}

// LoadInto reads the definitions at path and registers them in r.
//
// Postcondition: Returns nil, or an error from reading, parsing or registering.
func LoadInto(r *Registry, path string) error {
	defs, err := LoadDefinitions(path)
	if err != nil {
		return err
	}
	if err := r.Apply(defs); err != nil {
		return fmt.Errorf("applying %s: %w", path, err)
	}
	return r.Validate()
}
