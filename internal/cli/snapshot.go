package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cogroid/o-atomspace/internal/store"
)

// NewSnapshotCommand creates the snapshot command: compile a KB
// directory and persist every interned atom to a SQLite snapshot.
func NewSnapshotCommand(opts *RootOptions) *cobra.Command {
	var (
		specsDir string
		dbPath   string
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Persist the knowledge base to a snapshot database",
		RunE: func(cmd *cobra.Command, args []string) error {
			space, _, err := LoadKB(specsDir)
			if err != nil {
				return err
			}

			st, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.SaveSpace(cmd.Context(), space); err != nil {
				return err
			}

			n, err := st.Count(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "snapshot written: %d atoms in %s\n", n, dbPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&specsDir, "specs", "kb", "KB directory containing CUE documents")
	cmd.Flags().StringVar(&dbPath, "db", "atomspace.db", "snapshot database path")
	return cmd
}
