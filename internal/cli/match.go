package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cogroid/o-atomspace/internal/driver"
	"github.com/cogroid/o-atomspace/internal/engine"
)

// NewMatchCommand creates the match command: run one named pattern
// against the loaded KB and print every accepted grounding.
func NewMatchCommand(opts *RootOptions) *cobra.Command {
	var (
		specsDir    string
		patternName string
		first       bool
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Ground a pattern against the knowledge base",
		RunE: func(cmd *cobra.Command, args []string) error {
			space, kb, err := LoadKB(specsDir)
			if err != nil {
				return err
			}

			pat, ok := kb.Patterns[patternName]
			if !ok {
				names := make([]string, 0, len(kb.Patterns))
				for name := range kb.Patterns {
					names = append(names, name)
				}
				sort.Strings(names)
				return &LoadError{
					Code:    ErrCodeGeneric,
					Message: fmt.Sprintf("pattern %q not found (have %v)", patternName, names),
				}
			}

			d := driver.New(space, pat)
			var views []GroundingView
			if _, err := d.MatchAll(cmd.Context(), func(g *engine.Grounding) bool {
				views = append(views, ViewGrounding(g))
				return first
			}); err != nil {
				return err
			}

			SortViews(views)
			return WriteGroundings(cmd.OutOrStdout(), opts.Format, views)
		},
	}

	cmd.Flags().StringVar(&specsDir, "specs", "kb", "KB directory containing CUE documents")
	cmd.Flags().StringVar(&patternName, "pattern", "", "name of the pattern to ground")
	cmd.Flags().BoolVar(&first, "first", false, "stop after the first accepted grounding")
	cmd.MarkFlagRequired("pattern")
	return cmd
}
