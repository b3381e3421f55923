package simulation

import (
	"github.com/google/uuid"

	"github.com/cory-johannsen/landsim/internal/game/mana"
)

// Result holds the raw per-run outcome of one Simulate call. It is fully
// populated before Simulate returns and must be treated as read-only.
type Result struct {
	// ID identifies the call in logs.
	ID uuid.UUID
	// Seed is the base seed actually used; rerunning with it reproduces the
	// result exactly.
	Seed uint64
	// Runs is the number of completed runs.
	Runs int
	// Costs lists every tested cost in generation order.
	Costs []mana.Cost
	// Payable maps a cost's string form to one entry per run: whether the cost
	// was payable on the turn equal to its mana value.
	Payable map[string][]bool
	// HandSizes records each run's opening-hand size after mulligans.
	HandSizes []int
}

func newResult(costs []mana.Cost, runs int, seed uint64) *Result {
	r := &Result{
		ID:        uuid.New(),
		Seed:      seed,
		Runs:      runs,
		Costs:     costs,
		Payable:   make(map[string][]bool, len(costs)),
		HandSizes: make([]int, runs),
	}
	for _, c := range costs {
		r.Payable[c.String()] = make([]bool, runs)
	}
	return r
}

// Keys returns the cost keys in generation order.
func (r *Result) Keys() []string {
	keys := make([]string, len(r.Costs))
	for i, c := range r.Costs {
		keys[i] = c.String()
	}
	return keys
}
