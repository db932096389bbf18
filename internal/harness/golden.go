package harness

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/cogroid/o-atomspace/internal/cli"
)

// Snapshot captures a scenario's accepted groundings for golden file
// comparison. Groundings are already canonical and sorted when the
// snapshot is built, and encoding/json sorts map keys, so the encoded
// form is deterministic.
type Snapshot struct {
	ScenarioName string              `json:"scenario_name"`
	Pattern      string              `json:"pattern"`
	Matched      bool                `json:"matched"`
	Groundings   []cli.GroundingView `json:"groundings"`
}

// RunWithGolden executes a scenario and compares its groundings against
// a golden file in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(context.Background(), scenario)
	if err != nil {
		return err
	}

	snapshot := Snapshot{
		ScenarioName: scenario.Name,
		Pattern:      scenario.Pattern,
		Matched:      result.Matched,
		Groundings:   result.Groundings,
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, append(data, '\n'))
	return nil
}
