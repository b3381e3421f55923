// Package deck holds a deck's land composition and turns it into the flat card
// sequence the simulator shuffles.
package deck

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cory-johannsen/landsim/internal/game/land"
	"github.com/cory-johannsen/landsim/internal/game/mana"
)

// MaxCopies is the per-variant copy limit for non-basic lands.
const MaxCopies = 4

var (
	// ErrDeckTooLarge is returned when the land count exceeds the deck size.
	ErrDeckTooLarge = errors.New("deck has more lands than slots")
	// ErrInvalidCount is returned for negative counts or copy-limit violations.
	ErrInvalidCount = errors.New("invalid land count")
)

// Entry is one variant and how many copies the deck runs.
type Entry struct {
	Variant *land.Variant
	Count   int
}

// Deck maps land variants to copy counts, preserving the order in which
// variants were first added. Slots up to the deck size not covered by entries
// are non-resource cards.
type Deck struct {
	Name    string
	entries []Entry
	index   map[string]int
}

// New returns an empty Deck.
func New(name string) *Deck {
	return &Deck{Name: name, index: make(map[string]int)}
}

// Add adds n copies of v. Adding a variant already present increases its count
// without changing its position.
//
// Precondition: v must be a resource variant.
// Postcondition: Count(v) grows by n, or an error is returned and the deck is
// unchanged.
func (d *Deck) Add(v *land.Variant, n int) error {
	if !v.IsResource() {
		return fmt.Errorf("deck: %s is not a land: %w", v.ID, ErrInvalidCount)
	}
	if n < 0 {
		return fmt.Errorf("deck: %s: count %d is negative: %w", v.ID, n, ErrInvalidCount)
	}
	if i, ok := d.index[v.ID]; ok {
		d.entries[i].Count += n
		return nil
	}
	d.index[v.ID] = len(d.entries)
	d.entries = append(d.entries, Entry{Variant: v, Count: n})
	return nil
}

// Count returns the number of copies of v in the deck.
func (d *Deck) Count(v *land.Variant) int {
	if i, ok := d.index[v.ID]; ok {
		return d.entries[i].Count
	}
	return 0
}

// Entries returns the deck's entries in insertion order, including zero counts.
func (d *Deck) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Lands returns the total number of land cards.
func (d *Deck) Lands() int {
	total := 0
	for _, e := range d.entries {
		total += e.Count
	}
	return total
}

// Validate checks the deck against a deck size.
//
// Postcondition: Returns nil iff every count is non-negative and the land
// total does not exceed deckSize.
func (d *Deck) Validate(deckSize int) error {
	for _, e := range d.entries {
		if e.Count < 0 {
			return fmt.Errorf("deck: %s: count %d is negative: %w", e.Variant.ID, e.Count, ErrInvalidCount)
		}
	}
	if lands := d.Lands(); lands > deckSize {
		return fmt.Errorf("deck: %d lands in a %d-card deck: %w", lands, deckSize, ErrDeckTooLarge)
	}
	return nil
}

// CheckCopyLimit reports every non-basic variant with more than MaxCopies
// copies.
func (d *Deck) CheckCopyLimit() error {
	var over []string
	for _, e := range d.entries {
		if e.Variant.Category != land.CategoryBasic && e.Count > MaxCopies {
			over = append(over, fmt.Sprintf("%s x%d", e.Variant.ID, e.Count))
		}
	}
	if len(over) > 0 {
		return fmt.Errorf("deck: more than %d copies of %s: %w", MaxCopies, strings.Join(over, ", "), ErrInvalidCount)
	}
	return nil
}

// Flatten expands the deck into one element per land card, in entry order.
//
// Postcondition: len(result) == d.Lands().
func (d *Deck) Flatten() []*land.Variant {
	out := make([]*land.Variant, 0, d.Lands())
	for _, e := range d.entries {
		for i := 0; i < e.Count; i++ {
			out = append(out, e.Variant)
		}
	}
	return out
}

// Library returns deckSize cards: the flattened lands followed by
// land.NonResource filler.
//
// Precondition: d.Validate(deckSize) returns nil.
// Postcondition: len(result) == deckSize.
func (d *Deck) Library(deckSize int) []*land.Variant {
	lib := make([]*land.Variant, deckSize)
	n := copy(lib, d.Flatten())
	for i := n; i < deckSize; i++ {
		lib[i] = land.NonResource
	}
	return lib
}

// Colors returns the colors produced by variants with a non-zero count, sorted
// by rank.
func (d *Deck) Colors() []mana.Color {
	var set mana.ColorSet
	for _, e := range d.entries {
		if e.Count > 0 {
			set = set.Union(e.Variant.Colors)
		}
	}
	colors := set.Colors()
	sort.Slice(colors, func(i, j int) bool { return colors[i] < colors[j] })
	return colors
}
