package mana

// CanPay reports whether lands, given as the color sets they produce, can pay
// cost.
//
// A land whose color set equals exactly the set of symbols in cost is a "duo":
// it may cover one unit of whatever colored pips the other lands leave
// uncovered. A cost with a Colorless symbol has no duos, since no land
// produces Colorless. Every other land counts fully toward each of its colors. The cost
// is payable when the uncovered pips fit into the duos and there are at least
// as many lands as symbols in the cost. This is a conservative approximation,
// not an exact assignment solver.
//
// Postcondition: CanPay(cost, nil) is false for any non-empty cost; adding a
// land never turns true into false.
func CanPay(cost Cost, lands []ColorSet) bool {
	if len(cost) > len(lands) {
		return false
	}
	demanded := cost.ColorSet()
	generic := cost.hasColorless()

	duos := 0
	var nonduos []ColorSet
	for _, l := range lands {
		if !generic && l == demanded {
			duos++
			continue
		}
		nonduos = append(nonduos, l)
	}

	deficit := 0
	for color, need := range cost.Pips() {
		have := 0
		for _, l := range nonduos {
			if l.Has(color) {
				have++
			}
		}
		if need > have {
			deficit += need - have
		}
	}
	return deficit <= duos
}

func (c Cost) hasColorless() bool {
	for _, sym := range c {
		if sym == Colorless {
			return true
		}
	}
	return false
}
