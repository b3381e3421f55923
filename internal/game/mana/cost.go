package mana

import (
	"fmt"
	"strings"
)

// Cost is an ordered sequence of color symbols. Its length is the mana value of
// the hypothetical spell. Costs produced by Combinations are always sorted by
// rank, so the String form is canonical.
type Cost []Color

// ParseCost parses a string such as "xxWU" into a Cost. The symbols are kept in
// the given order.
//
// Postcondition: Returns the Cost or a non-nil error naming the bad symbol.
func ParseCost(s string) (Cost, error) {
	out := make(Cost, 0, len(s))
	for _, r := range s {
		c, err := ParseColor(string(r))
		if err != nil {
			return nil, fmt.Errorf("parsing cost %q: %w", s, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// MustParseCost parses s and panics on error. Intended for tests and fixed tables.
func MustParseCost(s string) Cost {
	c, err := ParseCost(s)
	if err != nil {
		panic("mana: MustParseCost: " + err.Error())
	}
	return c
}

// String joins the symbols of c, e.g. "xWU".
func (c Cost) String() string {
	var b strings.Builder
	b.Grow(len(c))
	for _, sym := range c {
		b.WriteString(sym.String())
	}
	return b.String()
}

// ManaValue returns the total number of symbols in c.
func (c Cost) ManaValue() int {
	return len(c)
}

// ColorSet returns the distinct real colors demanded by c.
func (c Cost) ColorSet() ColorSet {
	var s ColorSet
	for _, sym := range c {
		s = s.Add(sym)
	}
	return s
}

// Pips counts the colored symbols of c per color. Colorless symbols are not
// counted.
func (c Cost) Pips() map[Color]int {
	pips := make(map[Color]int, 2)
	for _, sym := range c {
		if sym != Colorless {
			pips[sym]++
		}
	}
	return pips
}

// Less orders costs by length first, then symbol by symbol on rank. For the
// digit-concatenation key (each rank is a single non-zero digit) this is the
// same order as comparing the keys numerically.
func (c Cost) Less(o Cost) bool {
	if len(c) != len(o) {
		return len(c) < len(o)
	}
	for i := range c {
		if c[i] != o[i] {
			return c[i] < o[i]
		}
	}
	return false
}

// SortKey returns the concatenated decimal ranks of c, e.g. "134" for "xUB".
func (c Cost) SortKey() string {
	var b strings.Builder
	b.Grow(len(c))
	for _, sym := range c {
		b.WriteByte(byte('0' + sym.Rank()))
	}
	return b.String()
}
