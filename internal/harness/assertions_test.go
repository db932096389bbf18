package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cogroid/o-atomspace/internal/cli"
)

func TestCheckExpectationsMatchedMismatch(t *testing.T) {
	s := &Scenario{Expect: Expectation{Matched: true}}
	errs := checkExpectations(s, &Result{Matched: false})
	assert.Equal(t, []string{"expected matched=true, got false"}, errs)
}

func TestCheckExpectationsBindingsSubset(t *testing.T) {
	groundings := []cli.GroundingView{
		{`(Variable "$x")`: `(Concept "dog")`, `(Variable "$n")`: `(Number "4")`},
		{`(Variable "$x")`: `(Concept "snake")`, `(Variable "$n")`: `(Number "0")`},
	}

	s := &Scenario{Expect: Expectation{
		Matched: true,
		Bindings: []map[string]string{
			{`(Variable "$x")`: `(Concept "dog")`},
			{`(Variable "$x")`: `(Concept "snake")`, `(Variable "$n")`: `(Number "0")`},
		},
	}}
	errs := checkExpectations(s, &Result{Matched: true, Groundings: groundings})
	assert.Empty(t, errs)

	s.Expect.Bindings = append(s.Expect.Bindings,
		map[string]string{`(Variable "$x")`: `(Concept "cat")`})
	errs = checkExpectations(s, &Result{Matched: true, Groundings: groundings})
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "no accepted grounding contains")
}

func TestCheckExpectationsCount(t *testing.T) {
	two := 2
	s := &Scenario{Expect: Expectation{Matched: true, Groundings: &two}}
	errs := checkExpectations(s, &Result{Matched: true, Groundings: []cli.GroundingView{{}}})
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "expected 2 groundings, got 1")
}
