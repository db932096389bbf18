package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command: load and compile a
// KB directory, report what it contains, fail on the first problem.
func NewValidateCommand(opts *RootOptions) *cobra.Command {
	var specsDir string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a knowledge-base directory",
		Long:  "Loads the CUE documents in a directory, compiles every atom and pattern, and reports problems.",
		RunE: func(cmd *cobra.Command, args []string) error {
			space, kb, err := LoadKB(specsDir)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d atoms interned, %d declared, %d patterns\n",
				space.Len(), len(kb.Atoms), len(kb.Patterns))
			if opts.Verbose {
				names := make([]string, 0, len(kb.Patterns))
				for name := range kb.Patterns {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					p := kb.Patterns[name]
					fmt.Fprintf(cmd.OutOrStdout(), "  pattern %s: %d vars, %d structural, %d virtual, %d absent\n",
						name, len(p.Variables()),
						len(p.StructuralClauses()), len(p.VirtualClauses()), len(p.AbsentClauses()))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&specsDir, "specs", "kb", "KB directory containing CUE documents")
	return cmd
}
