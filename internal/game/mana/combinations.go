package mana

import (
	"fmt"
	"sort"
)

// Combinations enumerates every cost of length minLen..maxLen that uses at most
// two distinct colors from colors, each optionally padded with Colorless.
// Symbol order inside a cost does not matter, so each multiset appears once in
// rank-sorted form.
//
// With fewer than two colors the single color (if any) is used alone, so a
// mono-color deck never yields a two-color cost and an empty palette yields
// no costs at all.
//
// Precondition: colors holds no duplicates and no Colorless.
// Postcondition: the result is duplicate-free, sorted by Cost.Less, and
// identical for identical inputs.
func Combinations(colors []Color, minLen, maxLen int) []Cost {
	if minLen < 1 {
		minLen = 1
	}
	palette := sortedColors(colors)

	var groups [][]Color
	for i := 0; i < len(palette); i++ {
		for j := i + 1; j < len(palette); j++ {
			groups = append(groups, []Color{palette[i], palette[j]})
		}
	}
	if len(groups) == 0 {
		for _, c := range palette {
			groups = append(groups, []Color{c})
		}
	}

	seen := make(map[string]struct{})
	var out []Cost
	for n := minLen; n <= maxLen; n++ {
		for _, g := range groups {
			alphabet := append([]Color{Colorless}, g...)
			multisets(alphabet, n, func(c Cost) {
				key := c.String()
				if _, dup := seen[key]; dup {
					return
				}
				seen[key] = struct{}{}
				out = append(out, c)
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// CombinationsByLength groups the output of Combinations(colors, 1, maxLen) by
// mana value. Index 0 is unused.
//
// Postcondition: len(result) == maxLen+1 and result[n] holds exactly the costs
// of length n, in Combinations order.
func CombinationsByLength(colors []Color, maxLen int) [][]Cost {
	out := make([][]Cost, maxLen+1)
	for _, c := range Combinations(colors, 1, maxLen) {
		out[len(c)] = append(out[len(c)], c)
	}
	return out
}

// multisets calls emit for every non-decreasing sequence of length n drawn from
// alphabet. alphabet must already be sorted by rank.
func multisets(alphabet []Color, n int, emit func(Cost)) {
	idx := make([]int, n)
	for {
		c := make(Cost, n)
		for i, k := range idx {
			c[i] = alphabet[k]
		}
		emit(c)

		// Advance to the next non-decreasing index tuple.
		i := n - 1
		for i >= 0 && idx[i] == len(alphabet)-1 {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for k := i + 1; k < n; k++ {
			idx[k] = idx[i]
		}
	}
}

func sortedColors(colors []Color) []Color {
	out := make([]Color, 0, len(colors))
	seen := NewColorSet()
	for _, c := range colors {
		if c == Colorless {
			panic(fmt.Sprintf("mana: Combinations precondition violated: palette contains %s", c))
		}
		if seen.Has(c) {
			continue
		}
		seen = seen.Add(c)
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
