// Package mana models color symbols, mana costs, the enumeration of costs worth
// testing for a deck, and the heuristic that decides whether a set of lands can
// pay a cost.
package mana

import (
	"fmt"
	"strings"
)

// Color is one mana symbol. The numeric value is the fixed sort rank:
// Colorless sorts lowest, followed by the five colors in WUBRG order.
type Color uint8

const (
	Colorless Color = iota
	White
	Blue
	Black
	Red
	Green
)

// AllColors lists every real color in rank order. Colorless is excluded.
var AllColors = []Color{White, Blue, Black, Red, Green}

var symbols = [...]string{"x", "W", "U", "B", "R", "G"}

// String returns the single-letter symbol, "x" for Colorless.
func (c Color) String() string {
	if int(c) < len(symbols) {
		return symbols[c]
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Rank returns the 1-based sort rank of c.
func (c Color) Rank() int {
	return int(c) + 1
}

// ParseColor converts a symbol letter into a Color. Parsing is case-sensitive
// except for the colorless symbol, which accepts "x" or "X".
//
// Postcondition: Returns the matching Color or a non-nil error.
func ParseColor(s string) (Color, error) {
	if s == "X" {
		return Colorless, nil
	}
	for i, sym := range symbols {
		if sym == s {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("mana: unknown color symbol %q", s)
}

// ColorSet is a set of real colors stored as a bit mask. Colorless is never a
// member.
type ColorSet uint8

// NewColorSet builds a ColorSet from cs, ignoring Colorless.
func NewColorSet(cs ...Color) ColorSet {
	var s ColorSet
	for _, c := range cs {
		s = s.Add(c)
	}
	return s
}

// ParseColorSet parses a run of symbol letters such as "WU".
//
// Postcondition: Returns the set or a non-nil error naming the bad symbol.
func ParseColorSet(s string) (ColorSet, error) {
	var set ColorSet
	for _, r := range s {
		c, err := ParseColor(string(r))
		if err != nil {
			return 0, err
		}
		if c == Colorless {
			return 0, fmt.Errorf("mana: colorless symbol not allowed in color set %q", s)
		}
		set = set.Add(c)
	}
	return set, nil
}

// Add returns s with c included. Adding Colorless is a no-op.
func (s ColorSet) Add(c Color) ColorSet {
	if c == Colorless || c > Green {
		return s
	}
	return s | 1<<c
}

// Has reports whether c is a member of s.
func (s ColorSet) Has(c Color) bool {
	if c == Colorless || c > Green {
		return false
	}
	return s&(1<<c) != 0
}

// Union returns s ∪ o.
func (s ColorSet) Union(o ColorSet) ColorSet {
	return s | o
}

// Len returns the number of colors in s.
func (s ColorSet) Len() int {
	n := 0
	for _, c := range AllColors {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// IsEmpty reports whether s has no colors.
func (s ColorSet) IsEmpty() bool {
	return s == 0
}

// Colors returns the members of s sorted by rank.
func (s ColorSet) Colors() []Color {
	out := make([]Color, 0, 2)
	for _, c := range AllColors {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// String returns the members of s as symbol letters in rank order, e.g. "WU".
func (s ColorSet) String() string {
	var b strings.Builder
	for _, c := range s.Colors() {
		b.WriteString(c.String())
	}
	return b.String()
}
