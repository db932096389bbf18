package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cogroid/o-atomspace/internal/atom"
)

// SaveSpace writes every atom in the space to the snapshot. Atoms
// already present (by content ID) are left untouched, so saving the
// same space twice is a no-op. Children are written before their
// parents because Space.Atoms returns insertion order.
func (s *Store) SaveSpace(ctx context.Context, space *atom.Space) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot: %w", err)
	}
	defer tx.Rollback()

	insert, err := tx.PrepareContext(ctx,
		"INSERT OR IGNORE INTO atoms (id, kind, type, name, outgoing) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer insert.Close()

	for _, a := range space.Atoms() {
		switch v := a.(type) {
		case *atom.Node:
			if _, err := insert.ExecContext(ctx, v.ID(), "node", string(v.Type()), v.Name(), nil); err != nil {
				return fmt.Errorf("write node %s: %w", atom.CanonicalString(v), err)
			}
		case *atom.Link:
			ids := make([]string, v.Arity())
			for i, child := range v.Outgoing() {
				ids[i] = child.ID()
			}
			outgoing, err := json.Marshal(ids)
			if err != nil {
				return fmt.Errorf("marshal outgoing of %s: %w", atom.CanonicalString(v), err)
			}
			if _, err := insert.ExecContext(ctx, v.ID(), "link", string(v.Type()), nil, string(outgoing)); err != nil {
				return fmt.Errorf("write link %s: %w", atom.CanonicalString(v), err)
			}
		}
	}

	return tx.Commit()
}
