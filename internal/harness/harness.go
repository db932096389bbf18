package harness

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cogroid/o-atomspace/internal/cli"
	"github.com/cogroid/o-atomspace/internal/driver"
	"github.com/cogroid/o-atomspace/internal/engine"
)

// Result holds the outcome of running a scenario.
type Result struct {
	// Pass is whether every expectation held.
	Pass bool

	// Matched is whether at least one grounding was accepted.
	Matched bool

	// Groundings are the accepted groundings in canonical sorted order.
	Groundings []cli.GroundingView

	// Errors lists every failed expectation, one message each.
	Errors []string
}

// Run executes a scenario and returns the result.
//
// Each scenario compiles its KB into a fresh space for isolation.
// Accepted groundings are rendered in canonical form and sorted, so
// the result is deterministic regardless of enumeration order.
func Run(ctx context.Context, scenario *Scenario) (*Result, error) {
	space, kb, err := cli.LoadKB(scenario.KB)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	pat, ok := kb.Patterns[scenario.Pattern]
	if !ok {
		return nil, fmt.Errorf("scenario %s: pattern %q not found", scenario.Name, scenario.Pattern)
	}

	d := driver.New(space, pat)
	result := &Result{}
	matched, err := d.MatchAll(ctx, func(g *engine.Grounding) bool {
		result.Groundings = append(result.Groundings, cli.ViewGrounding(g))
		return false
	})
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	result.Matched = matched
	cli.SortViews(result.Groundings)

	result.Errors = checkExpectations(scenario, result)
	result.Pass = len(result.Errors) == 0

	slog.Debug("scenario finished",
		"scenario", scenario.Name,
		"pass", result.Pass,
		"groundings", len(result.Groundings))
	return result, nil
}
