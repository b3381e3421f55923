package deck

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/landsim/internal/game/land"
)

// File is the YAML form of a deck.
type File struct {
	Name  string      `yaml:"name"`
	Size  int         `yaml:"size"`
	Lands []FileEntry `yaml:"lands"`
}

// FileEntry is one line of a deck file.
type FileEntry struct {
	Land  string `yaml:"land"`
	Count int    `yaml:"count"`
}

// LoadFile reads a deck file such as
//
//	name: Azorius Control
//	size: 60
//	lands:
//	  - land: Plains
//	    count: 8
//	  - land: GlacialFortress
//	    count: 4
//
// Size is optional (0 means "use the configured deck size").
//
// Postcondition: Returns the parsed File or a non-nil error.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing deck file %s: %w", path, err)
	}
	return f, nil
}

// Build resolves every entry against reg.
//
// Postcondition: Returns a Deck with entries in file order, or an error naming
// the first unknown land or bad count.
func (f File) Build(reg *land.Registry) (*Deck, error) {
	d := New(f.Name)
	for _, e := range f.Lands {
		v, err := reg.Lookup(e.Land)
		if err != nil {
			return nil, fmt.Errorf("deck %q: %w", f.Name, err)
		}
		if err := d.Add(v, e.Count); err != nil {
			return nil, fmt.Errorf("deck %q: %w", f.Name, err)
		}
	}
	return d, nil
}

// ParseEntry parses "ID=N" as used on the command line.
//
// Postcondition: Returns the entry or an error describing the malformed input.
func ParseEntry(s string) (FileEntry, error) {
	id, n, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(id) == "" {
		return FileEntry{}, fmt.Errorf("deck: %q: expected LAND=COUNT", s)
	}
	count, err := strconv.Atoi(strings.TrimSpace(n))
	if err != nil {
		return FileEntry{}, fmt.Errorf("deck: %q: invalid count: %w", s, err)
	}
	return FileEntry{Land: strings.TrimSpace(id), Count: count}, nil
}
