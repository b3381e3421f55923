// Package main provides the landsim command: it simulates a deck's opening
// turns many times and reports how often each mana cost is castable on curve.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/landsim/internal/config"
	"github.com/cory-johannsen/landsim/internal/game/deck"
	"github.com/cory-johannsen/landsim/internal/game/land"
	"github.com/cory-johannsen/landsim/internal/observability"
	"github.com/cory-johannsen/landsim/internal/report"
	"github.com/cory-johannsen/landsim/internal/simulation"
)

// landFlags collects repeated -land ID=N flags.
type landFlags []deck.FileEntry

func (l *landFlags) String() string {
	parts := make([]string, len(*l))
	for i, e := range *l {
		parts[i] = fmt.Sprintf("%s=%d", e.Land, e.Count)
	}
	return strings.Join(parts, ",")
}

func (l *landFlags) Set(s string) error {
	e, err := deck.ParseEntry(s)
	if err != nil {
		return err
	}
	*l = append(*l, e)
	return nil
}

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file (optional)")
	runs := flag.Int("runs", 0, "number of simulated games (overrides config)")
	turns := flag.Int("turns", 0, "number of turns per game (overrides config)")
	deckSize := flag.Int("deck-size", 0, "total cards in the deck (overrides config and deck file)")
	seed := flag.Uint64("seed", 0, "base random seed; 0 = random (overrides config)")
	workers := flag.Int("workers", -1, "goroutines running games; 0 = one per CPU (overrides config)")
	deckFile := flag.String("deck", "", "path to a YAML deck file (overrides config)")
	landsFile := flag.String("lands", "", "path to a YAML file of extra land definitions (overrides config)")
	format := flag.String("format", "", "output format: table, yaml or json (overrides config)")
	listLands := flag.Bool("list-lands", false, "print every known land and exit")
	var lands landFlags
	flag.Var(&lands, "land", "add lands as ID=COUNT, e.g. -land Forest=10 (repeatable)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["runs"] {
		cfg.Simulation.Runs = *runs
	}
	if set["turns"] {
		cfg.Simulation.Turns = *turns
	}
	if set["deck-size"] {
		cfg.Simulation.DeckSize = *deckSize
	}
	if set["seed"] {
		cfg.Simulation.Seed = *seed
	}
	if set["workers"] {
		cfg.Simulation.Workers = *workers
	}
	if set["deck"] {
		cfg.Content.DeckFile = *deckFile
	}
	if set["lands"] {
		cfg.Content.LandsFile = *landsFile
	}
	if set["format"] {
		cfg.Output.Format = *format
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	reg := land.DefaultRegistry()
	if cfg.Content.LandsFile != "" {
		if err := land.LoadInto(reg, cfg.Content.LandsFile); err != nil {
			logger.Fatal("loading land definitions", zap.Error(err))
		}
	}
	logger.Debug("land registry ready", zap.Int("variants", reg.Len()))

	if *listLands {
		if err := writeLands(os.Stdout, reg); err != nil {
			logger.Fatal("listing lands", zap.Error(err))
		}
		return
	}

	d := deck.New("")
	if cfg.Content.DeckFile != "" {
		f, err := deck.LoadFile(cfg.Content.DeckFile)
		if err != nil {
			logger.Fatal("loading deck", zap.Error(err))
		}
		if d, err = f.Build(reg); err != nil {
			logger.Fatal("building deck", zap.Error(err))
		}
		if f.Size > 0 && !set["deck-size"] {
			cfg.Simulation.DeckSize = f.Size
		}
	}
	for _, e := range lands {
		v, err := reg.Lookup(e.Land)
		if err != nil {
			logger.Fatal("resolving -land flag", zap.Error(err))
		}
		if err := d.Add(v, e.Count); err != nil {
			logger.Fatal("resolving -land flag", zap.Error(err))
		}
	}
	if d.Lands() == 0 && cfg.Content.DeckFile == "" {
		fmt.Fprintln(os.Stderr, "usage: landsim [-config <file>] (-deck <file> | -land ID=N ...) [-runs N] [-turns N] [-deck-size N]")
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	if err := d.CheckCopyLimit(); err != nil {
		logger.Warn("deck is not constructed-legal", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eng := simulation.NewEngine(logger)
	res, err := eng.Simulate(ctx, d, simulation.Config{
		Turns:    cfg.Simulation.Turns,
		DeckSize: cfg.Simulation.DeckSize,
		Runs:     cfg.Simulation.Runs,
		Seed:     cfg.Simulation.Seed,
		Workers:  cfg.Simulation.Workers,
	})
	if err != nil {
		logger.Fatal("simulation failed", zap.Error(err))
	}

	if err := report.Write(os.Stdout, cfg.Output.Format, report.Summarize(d.Name, res)); err != nil {
		logger.Fatal("writing report", zap.Error(err))
	}
	logger.Info("done", zap.Duration("elapsed", time.Since(start)))
}

// writeLands prints the registry grouped by category.
func writeLands(w io.Writer, reg *land.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, cat := range land.Categories {
		vs := reg.ByCategory(cat)
		if len(vs) == 0 {
			continue
		}
		fmt.Fprintf(tw, "%s\t\t\n", strings.ToUpper(string(cat)))
		for _, v := range vs {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", v.ID, v.DisplayName(), v.Colors)
		}
	}
	return tw.Flush()
}
