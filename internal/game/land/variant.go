// Package land defines the resource-card taxonomy: land variants, the colors
// each produces, and the registry that validates dual lands against their
// parent basics.
package land

import (
	"regexp"

	"github.com/cory-johannsen/landsim/internal/game/mana"
)

// Category groups variants the way players know them.
type Category string

const (
	CategoryNone      Category = ""
	CategoryBasic     Category = "basic"
	CategoryCheckland Category = "checkland"
	CategoryShockland Category = "shockland"
	CategoryGateland  Category = "gateland"
	CategoryTapland   Category = "tapland"
	CategoryCustom    Category = "custom"
)

// Categories lists the known categories in display order.
var Categories = []Category{
	CategoryBasic,
	CategoryCheckland,
	CategoryShockland,
	CategoryGateland,
	CategoryTapland,
	CategoryCustom,
}

// Variant is an immutable card type. Dual variants record the IDs of their two
// parents; their Colors is the union of the parents' colors, computed once at
// registration.
//
// Invariant: Colors.Len() is 0 (NonResource only), 1 or 2.
type Variant struct {
	ID       string
	Colors   mana.ColorSet
	Category Category
	Parents  []string
}

// NonResource fills every deck slot not taken by a land. It produces no mana.
var NonResource = &Variant{ID: "NonResourceCard"}

// IsResource reports whether v produces mana.
func (v *Variant) IsResource() bool {
	return v != nil && !v.Colors.IsEmpty()
}

// IsDual reports whether v produces exactly two colors.
func (v *Variant) IsDual() bool {
	return v != nil && v.Colors.Len() == 2
}

// Produces reports whether v can produce c.
func (v *Variant) Produces(c mana.Color) bool {
	return v != nil && v.Colors.Has(c)
}

var wordBoundary = regexp.MustCompile(`(\w)([A-Z])`)

// DisplayName inserts a space before each inner capital of the ID, so
// "GlacialFortress" becomes "Glacial Fortress".
func (v *Variant) DisplayName() string {
	return wordBoundary.ReplaceAllString(v.ID, "${1} ${2}")
}

// String returns the display name.
func (v *Variant) String() string {
	return v.DisplayName()
}

// ColorsOf returns the colors v produces.
func ColorsOf(v *Variant) mana.ColorSet {
	if v == nil {
		return 0
	}
	return v.Colors
}

// IsResourceCard reports whether v is a land.
func IsResourceCard(v *Variant) bool {
	return v.IsResource()
}
