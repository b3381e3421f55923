// Package report reduces raw simulation results to the percentages and
// averages a player reads, and renders them.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/landsim/internal/simulation"
)

// Formats lists the supported output formats.
var Formats = []string{"table", "yaml", "json"}

// Row is the castability of one cost on the turn equal to its mana value.
type Row struct {
	Cost    string  `yaml:"cost" json:"cost"`
	Turn    int     `yaml:"turn" json:"turn"`
	Payable int     `yaml:"payable" json:"payable"`
	Percent float64 `yaml:"percent" json:"percent"`
}

// HandBucket counts runs that kept a given opening-hand size.
type HandBucket struct {
	Size int `yaml:"size" json:"size"`
	Runs int `yaml:"runs" json:"runs"`
}

// Summary is the presentation view of a simulation.Result.
type Summary struct {
	ID          string       `yaml:"id" json:"id"`
	Deck        string       `yaml:"deck,omitempty" json:"deck,omitempty"`
	Seed        uint64       `yaml:"seed" json:"seed"`
	Runs        int          `yaml:"runs" json:"runs"`
	Rows        []Row        `yaml:"costs" json:"costs"`
	AverageHand float64      `yaml:"average_hand" json:"average_hand"`
	Hands       []HandBucket `yaml:"hands" json:"hands"`
}

// Summarize computes 100 × payable / runs for every cost in generation order,
// the mean opening-hand size and the hand-size histogram.
//
// Precondition: res must be non-nil with res.Runs > 0.
// Postcondition: len(result.Rows) == len(res.Costs); Hands is sorted by size
// descending.
func Summarize(deckName string, res *simulation.Result) Summary {
	s := Summary{
		ID:   res.ID.String(),
		Deck: deckName,
		Seed: res.Seed,
		Runs: res.Runs,
		Rows: make([]Row, 0, len(res.Costs)),
	}
	for _, c := range res.Costs {
		key := c.String()
		n := 0
		for _, ok := range res.Payable[key] {
			if ok {
				n++
			}
		}
		s.Rows = append(s.Rows, Row{
			Cost:    key,
			Turn:    c.ManaValue(),
			Payable: n,
			Percent: 100 * float64(n) / float64(res.Runs),
		})
	}

	counts := make(map[int]int)
	total := 0
	for _, h := range res.HandSizes {
		counts[h]++
		total += h
	}
	if res.Runs > 0 {
		s.AverageHand = float64(total) / float64(res.Runs)
	}
	for size, n := range counts {
		s.Hands = append(s.Hands, HandBucket{Size: size, Runs: n})
	}
	sort.Slice(s.Hands, func(i, j int) bool { return s.Hands[i].Size > s.Hands[j].Size })
	return s
}

// Write renders s in format.
//
// Postcondition: Returns an error for an unknown format or a failed write.
func Write(w io.Writer, format string, s Summary) error {
	switch format {
	case "table":
		return WriteTable(w, s)
	case "yaml":
		return WriteYAML(w, s)
	case "json":
		return WriteJSON(w, s)
	default:
		return fmt.Errorf("report: unknown format %q, want one of [%s]", format, strings.Join(Formats, ", "))
	}
}

// WriteTable renders one line per cost grouped by turn, then the average hand.
func WriteTable(w io.Writer, s Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	if s.Deck != "" {
		fmt.Fprintf(tw, "deck:\t%s\t\n", s.Deck)
	}
	fmt.Fprintf(tw, "runs:\t%d\t\n", s.Runs)
	fmt.Fprintf(tw, "seed:\t%d\t\n\n", s.Seed)
	fmt.Fprintln(tw, "TURN\tCOST\tPAYABLE\t")
	for _, r := range s.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%.2f%%\t\n", r.Turn, r.Cost, r.Percent)
	}
	fmt.Fprintf(tw, "\t%s\t%.3f\t\n", "Hand", s.AverageHand)
	return tw.Flush()
}

// WriteYAML renders s as a YAML document.
func WriteYAML(w io.Writer, s Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("report: encoding yaml: %w", err)
	}
	return enc.Close()
}

// WriteJSON renders s as indented JSON.
func WriteJSON(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("report: encoding json: %w", err)
	}
	return nil
}
