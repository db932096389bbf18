package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cogroid/o-atomspace/internal/atom"
)

// ClauseEvaluator produces candidate grounding extensions for a clause
// that cannot be grounded structurally. Implementations typically
// re-enter the whole matching machinery on a sub-pattern.
//
// Evaluate must be deterministic for a fixed graph state and must not
// mutate seed. An empty result set means the clause is unsatisfiable
// under seed; that is a normal outcome, not an error.
type ClauseEvaluator interface {
	Evaluate(ctx context.Context, clause atom.Atom, seed *Grounding) ([]*Grounding, error)
}

// AcceptFunc receives each surviving full grounding. Returning true
// signals the combinator to stop searching (single-answer mode);
// returning false continues enumeration (all-answers mode). The policy
// belongs to the caller, not the engine.
type AcceptFunc func(g *Grounding) bool

// Satisfier merges groundings from independently-evaluated virtual
// clauses, checks global binding consistency, and rejects combinations
// defeated by absent clauses.
type Satisfier struct {
	eval   ClauseEvaluator
	accept AcceptFunc
}

// NewSatisfier creates a Satisfier. accept must be non-nil. eval may be
// nil only if Satisfy is never called with virtual or absent clauses.
func NewSatisfier(eval ClauseEvaluator, accept AcceptFunc) (*Satisfier, error) {
	if accept == nil {
		return nil, fmt.Errorf("satisfier: accept callback is required")
	}
	return &Satisfier{eval: eval, accept: accept}, nil
}

// Satisfy reports whether at least one combination of per-clause
// extensions merges cleanly into base, survives every absent clause,
// and is accepted.
//
// Each virtual clause is evaluated once against base. A clause with no
// extensions fails the whole call immediately. Combinations are formed
// by an incremental clause-by-clause fold: a partial combination is
// abandoned the moment a merge conflicts, and every surviving full
// combination is checked against the absent clauses before being
// reported to accept.
//
// Cancellation is caller-driven: ctx is checked between combinations,
// and accept returning true ends the search early. With no virtual or
// absent clauses, base alone is offered to accept.
func (s *Satisfier) Satisfy(ctx context.Context, base *Grounding, virtuals, absents []atom.Atom) (bool, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if base == nil {
		base = NewGrounding()
	}
	if s.eval == nil && (len(virtuals) > 0 || len(absents) > 0) {
		return false, fmt.Errorf("satisfier: clauses present but no evaluator configured")
	}

	exts := make([][]*Grounding, len(virtuals))
	for i, vc := range virtuals {
		alts, err := s.eval.Evaluate(ctx, vc, base)
		if err != nil {
			return false, fmt.Errorf("evaluate virtual clause %s: %w", atom.CanonicalString(vc), err)
		}
		if len(alts) == 0 {
			slog.Debug("virtual clause unsatisfiable",
				"clause", atom.CanonicalString(vc))
			return false, nil
		}
		exts[i] = alts
	}

	accepted := false
	_, err := s.combine(ctx, exts, 0, base, absents, &accepted)
	if err != nil {
		return false, err
	}
	return accepted, nil
}

// combine folds the per-clause extension lists depth-first. Returns
// stop=true when the search should end (acceptance in single-answer
// mode, or cancellation).
func (s *Satisfier) combine(ctx context.Context, exts [][]*Grounding, idx int, merged *Grounding, absents []atom.Atom, accepted *bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return true, err
	}

	if idx == len(exts) {
		for _, ac := range absents {
			alts, err := s.eval.Evaluate(ctx, ac, merged)
			if err != nil {
				return true, fmt.Errorf("evaluate absent clause %s: %w", atom.CanonicalString(ac), err)
			}
			if len(alts) > 0 {
				// Negation violated: the absent clause is satisfiable
				// under this grounding. Discard, keep searching.
				return false, nil
			}
		}
		*accepted = true
		return s.accept(merged), nil
	}

	for _, ext := range exts[idx] {
		next, ok := merged.Merge(ext)
		if !ok {
			// Conflict prunes the whole branch: a partial combination
			// that rebinds a variable cannot be completed.
			continue
		}
		stop, err := s.combine(ctx, exts, idx+1, next, absents, accepted)
		if stop || err != nil {
			return stop, err
		}
	}
	return false, nil
}
