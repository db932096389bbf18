package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cogroid/o-atomspace/internal/atom"
	"github.com/cogroid/o-atomspace/internal/store"
)

// NewRestoreCommand creates the restore command: re-intern every
// snapshotted atom into a fresh space and report what came back.
func NewRestoreCommand(opts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Load a snapshot database back into an atom space",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			space := atom.NewSpace(nil)
			n, err := st.LoadSpace(cmd.Context(), space)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "restored %d atoms from %s\n", n, dbPath)
			if opts.Verbose {
				for _, a := range space.Atoms() {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", atom.CanonicalString(a))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "atomspace.db", "snapshot database path")
	return cmd
}
