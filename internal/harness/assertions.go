package harness

import (
	"fmt"

	"github.com/cogroid/o-atomspace/internal/cli"
)

// checkExpectations validates the scenario's expectations against the
// run result and returns one message per failure.
func checkExpectations(scenario *Scenario, result *Result) []string {
	var errs []string
	expect := scenario.Expect

	if expect.Matched != result.Matched {
		errs = append(errs, fmt.Sprintf("expected matched=%v, got %v", expect.Matched, result.Matched))
	}

	if expect.Groundings != nil && *expect.Groundings != len(result.Groundings) {
		errs = append(errs, fmt.Sprintf("expected %d groundings, got %d",
			*expect.Groundings, len(result.Groundings)))
	}

	for i, want := range expect.Bindings {
		if !someGroundingMatches(result.Groundings, want) {
			errs = append(errs, fmt.Sprintf("bindings[%d]: no accepted grounding contains %v", i, want))
		}
	}
	return errs
}

// someGroundingMatches reports whether any grounding contains every
// binding in want. Subset match: extra bindings in the grounding are
// allowed.
func someGroundingMatches(groundings []cli.GroundingView, want map[string]string) bool {
	for _, g := range groundings {
		if subsetOf(want, g) {
			return true
		}
	}
	return false
}

func subsetOf(want, have map[string]string) bool {
	for k, v := range want {
		if have[k] != v {
			return false
		}
	}
	return true
}
