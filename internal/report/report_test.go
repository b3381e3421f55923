package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/landsim/internal/game/mana"
	"github.com/cory-johannsen/landsim/internal/report"
	"github.com/cory-johannsen/landsim/internal/simulation"
)

func sampleResult() *simulation.Result {
	return &simulation.Result{
		ID:    uuid.MustParse("6f1c8c1e-6c2b-4a3e-9d7a-2f2d3c4b5a69"),
		Seed:  42,
		Runs:  4,
		Costs: []mana.Cost{mana.MustParseCost("x"), mana.MustParseCost("G"), mana.MustParseCost("GG")},
		Payable: map[string][]bool{
			"x":  {true, true, true, false},
			"G":  {true, false, true, false},
			"GG": {false, false, false, false},
		},
		HandSizes: []int{7, 7, 6, 4},
	}
}

func TestSummarize(t *testing.T) {
	s := report.Summarize("Mono Green", sampleResult())
	assert.Equal(t, "Mono Green", s.Deck)
	assert.Equal(t, uint64(42), s.Seed)
	require.Len(t, s.Rows, 3)
	assert.Equal(t, report.Row{Cost: "x", Turn: 1, Payable: 3, Percent: 75}, s.Rows[0])
	assert.Equal(t, report.Row{Cost: "G", Turn: 1, Payable: 2, Percent: 50}, s.Rows[1])
	assert.Equal(t, report.Row{Cost: "GG", Turn: 2, Payable: 0, Percent: 0}, s.Rows[2])
	assert.InDelta(t, 6.0, s.AverageHand, 1e-9)
	assert.Equal(t, []report.HandBucket{{Size: 7, Runs: 2}, {Size: 6, Runs: 1}, {Size: 4, Runs: 1}}, s.Hands)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, "table", report.Summarize("Mono Green", sampleResult())))
	out := buf.String()
	assert.Contains(t, out, "Mono Green")
	assert.Contains(t, out, "75.00%")
	assert.Contains(t, out, "Hand")
	assert.Contains(t, out, "6.000")
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, "yaml", report.Summarize("", sampleResult())))

	var back report.Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, 4, back.Runs)
	assert.Len(t, back.Rows, 3)
	assert.NotContains(t, buf.String(), "deck:", "empty deck name is omitted")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, "json", report.Summarize("d", sampleResult())))

	var back map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, "6f1c8c1e-6c2b-4a3e-9d7a-2f2d3c4b5a69", back["id"])
	assert.InDelta(t, 6.0, back["average_hand"], 1e-9)
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, report.Write(&buf, "xml", report.Summarize("", sampleResult())))
}
