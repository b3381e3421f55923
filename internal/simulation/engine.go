// Package simulation runs the Monte Carlo game loop: shuffle, mulligan, draw a
// card per turn and record which mana costs the lands in hand could pay.
package simulation

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cory-johannsen/landsim/internal/game/deck"
	"github.com/cory-johannsen/landsim/internal/game/land"
	"github.com/cory-johannsen/landsim/internal/game/mana"
	"github.com/cory-johannsen/landsim/internal/game/rng"
)

// Engine executes simulations. It holds no per-call state and may be shared.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates an Engine that logs to logger.
//
// Precondition: logger must be non-nil.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		panic("simulation.NewEngine: precondition violated: logger must be non-nil")
	}
	return &Engine{logger: logger}
}

// check is one cost tested on one turn and the series it writes to.
type check struct {
	cost   mana.Cost
	series []bool
}

// plan is the immutable, shared description of a Simulate call.
type plan struct {
	cfg    Config
	base   []*land.Variant
	byTurn [][]check
	result *Result
	seed   uint64
}

// Simulate runs cfg.Runs independent games of d and returns the raw per-run
// outcomes.
//
// Runs may execute on several goroutines. Each run owns its library and hand,
// draws from a source seeded by (base seed, run index) and writes only to its
// own index of every series, so a fixed Seed yields identical results for any
// worker count. ctx is checked once before each run.
//
// Postcondition: Returns a fully populated Result, or a nil Result and an error
// wrapping ErrInvalidConfiguration, ErrInsufficientLibrary or ctx.Err().
func (e *Engine) Simulate(ctx context.Context, d *deck.Deck, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("%w: deck must be non-nil", ErrInvalidConfiguration)
	}
	if err := d.Validate(cfg.DeckSize); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	if err := cfg.checkLibrary(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rng.CryptoSeed()
	}
	colors := d.Colors()
	byLen := mana.CombinationsByLength(colors, cfg.Turns)
	var costs []mana.Cost
	for _, cs := range byLen {
		costs = append(costs, cs...)
	}
	res := newResult(costs, cfg.Runs, seed)

	p := &plan{
		cfg:    cfg,
		base:   d.Library(cfg.DeckSize),
		byTurn: make([][]check, cfg.Turns+1),
		result: res,
		seed:   seed,
	}
	for turn := 1; turn <= cfg.Turns; turn++ {
		for _, c := range byLen[turn] {
			p.byTurn[turn] = append(p.byTurn[turn], check{cost: c, series: res.Payable[c.String()]})
		}
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.Runs {
		workers = cfg.Runs
	}

	logger := e.logger.With(zap.String("simulation_id", res.ID.String()))
	logger.Info("simulation started",
		zap.String("deck", d.Name),
		zap.Int("lands", d.Lands()),
		zap.Int("deck_size", cfg.DeckSize),
		zap.Int("turns", cfg.Turns),
		zap.Int("runs", cfg.Runs),
		zap.Int("workers", workers),
		zap.Int("costs", len(costs)),
		zap.String("colors", mana.NewColorSet(colors...).String()),
		zap.Uint64("seed", seed),
	)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			return p.work(gctx, w, workers)
		})
	}
	if err := g.Wait(); err != nil {
		logger.Warn("simulation aborted", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return nil, err
	}

	logger.Info("simulation finished", zap.Duration("elapsed", time.Since(start)))
	return res, nil
}

// work executes runs first, first+stride, ... on a private game.
func (p *plan) work(ctx context.Context, first, stride int) error {
	g := newGame(p.cfg.DeckSize)
	for run := first; run < p.cfg.Runs; run += stride {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("simulation cancelled at run %d: %w", run, err)
		}
		if err := p.play(g, run); err != nil {
			return fmt.Errorf("run %d: %w", run, err)
		}
	}
	return nil
}

// play executes one full game and records it at index run.
func (p *plan) play(g *game, run int) error {
	g.reset(p.base, rng.NewSeededSource(rng.SeedFor(p.seed, run)))
	g.shuffle()
	if err := g.draw(OpeningHandSize); err != nil {
		return err
	}
	if err := g.mulligan(); err != nil {
		return err
	}
	p.result.HandSizes[run] = len(g.hand)

	for turn := 1; turn <= p.cfg.Turns; turn++ {
		lands := g.handLands()
		for _, c := range p.byTurn[turn] {
			c.series[run] = mana.CanPay(c.cost, lands)
		}
		if err := g.draw(1); err != nil {
			return err
		}
	}
	return nil
}
