package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/cogroid/o-atomspace/internal/atom"
)

// LoadSpace re-interns every snapshotted atom into space. Rows are read
// in write order, so children are always interned before the links that
// reference them; a row referencing a missing child means the snapshot
// is corrupt and fails the load.
//
// Returns the number of atoms loaded.
func (s *Store) LoadSpace(ctx context.Context, space *atom.Space) (int, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, kind, type, name, outgoing FROM atoms ORDER BY rowid")
	if err != nil {
		return 0, fmt.Errorf("query atoms: %w", err)
	}
	defer rows.Close()

	// Stored IDs map to interned instances locally, so a load stays
	// correct even if the hash algorithm version changed since the
	// snapshot was written.
	byID := make(map[string]atom.Atom)
	count := 0

	for rows.Next() {
		var id, kind, typeName string
		var name, outgoing sql.NullString
		if err := rows.Scan(&id, &kind, &typeName, &name, &outgoing); err != nil {
			return count, fmt.Errorf("scan atom row: %w", err)
		}

		switch kind {
		case "node":
			n, err := space.Node(atom.Type(typeName), name.String)
			if err != nil {
				return count, fmt.Errorf("restore node %s: %w", id, err)
			}
			byID[id] = n
		case "link":
			var childIDs []string
			if outgoing.Valid {
				if err := json.Unmarshal([]byte(outgoing.String), &childIDs); err != nil {
					return count, fmt.Errorf("restore link %s: bad outgoing: %w", id, err)
				}
			}
			children := make([]atom.Atom, len(childIDs))
			for i, cid := range childIDs {
				child, ok := byID[cid]
				if !ok {
					return count, fmt.Errorf("restore link %s: missing child %s (corrupt snapshot)", id, cid)
				}
				children[i] = child
			}
			l, err := space.Link(atom.Type(typeName), children...)
			if err != nil {
				return count, fmt.Errorf("restore link %s: %w", id, err)
			}
			byID[id] = l
		default:
			return count, fmt.Errorf("unknown atom kind %q", kind)
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return count, fmt.Errorf("iterate atoms: %w", err)
	}
	return count, nil
}

// Count returns the number of snapshotted atoms.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM atoms").Scan(&n); err != nil {
		return 0, fmt.Errorf("count atoms: %w", err)
	}
	return n, nil
}
