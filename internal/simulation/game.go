package simulation

import (
	"fmt"

	"github.com/cory-johannsen/landsim/internal/game/land"
	"github.com/cory-johannsen/landsim/internal/game/mana"
	"github.com/cory-johannsen/landsim/internal/game/rng"
)

// game is the private per-run state: the library (index 0 is the top) and the
// hand. A worker reuses one game across its runs.
type game struct {
	src     rng.Source
	buf     []*land.Variant
	library []*land.Variant
	hand    []*land.Variant
	lands   []mana.ColorSet
	scratch []*land.Variant
}

func newGame(deckSize int) *game {
	return &game{
		buf:     make([]*land.Variant, deckSize),
		hand:    make([]*land.Variant, 0, deckSize),
		lands:   make([]mana.ColorSet, 0, deckSize),
		scratch: make([]*land.Variant, 0, deckSize),
	}
}

// reset reunites every card into the library in base order and installs src.
func (g *game) reset(base []*land.Variant, src rng.Source) {
	g.src = src
	g.library = g.buf[:len(base)]
	copy(g.library, base)
	g.hand = g.hand[:0]
}

func (g *game) shuffle() {
	lib := g.library
	rng.Shuffle(g.src, len(lib), func(i, j int) { lib[i], lib[j] = lib[j], lib[i] })
}

// draw moves n cards from the top of the library into the hand.
func (g *game) draw(n int) error {
	if n > len(g.library) {
		return fmt.Errorf("%w: drawing %d from %d cards", ErrInsufficientLibrary, n, len(g.library))
	}
	g.hand = append(g.hand, g.library[:n]...)
	g.library = g.library[n:]
	return nil
}

// redraw puts the hand on top of the library, shuffles and draws n.
func (g *game) redraw(n int) error {
	g.scratch = append(append(g.scratch[:0], g.hand...), g.library...)
	g.library = g.buf[:len(g.scratch)]
	copy(g.library, g.scratch)
	g.hand = g.hand[:0]
	g.shuffle()
	return g.draw(n)
}

func (g *game) landsInHand() int {
	n := 0
	for _, c := range g.hand {
		if land.IsResourceCard(c) {
			n++
		}
	}
	return n
}

// handLands returns the color sets of the resource cards in hand. The slice is
// reused by the next call.
func (g *game) handLands() []mana.ColorSet {
	g.lands = g.lands[:0]
	for _, c := range g.hand {
		if land.IsResourceCard(c) {
			g.lands = append(g.lands, c.Colors)
		}
	}
	return g.lands
}

func between(n, lo, hi int) bool {
	return lo < n && n < hi
}

// mulligan applies the fixed keep-or-redraw ladder 7 → 6 → 5 → 4:
// keep 7 with 2-5 lands, keep 6 with 2-4, keep 5 with 1-4, otherwise go to 4.
// After any mulligan a non-land on top of the library goes to the bottom.
//
// Precondition: the opening seven has been drawn.
func (g *game) mulligan() error {
	if between(g.landsInHand(), 1, 6) {
		return nil
	}
	if err := g.redraw(6); err != nil {
		return err
	}
	if !between(g.landsInHand(), 1, 5) {
		if err := g.redraw(5); err != nil {
			return err
		}
		if !between(g.landsInHand(), 0, 5) {
			if err := g.redraw(4); err != nil {
				return err
			}
		}
	}
	if len(g.library) > 0 && !land.IsResourceCard(g.library[0]) {
		top := g.library[0]
		copy(g.library, g.library[1:])
		g.library[len(g.library)-1] = top
	}
	return nil
}
