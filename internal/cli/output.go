package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/cogroid/o-atomspace/internal/atom"
	"github.com/cogroid/o-atomspace/internal/engine"
)

// GroundingView is the serializable form of one grounding: variable
// canonical form to bound-value canonical form.
type GroundingView map[string]string

// ViewGrounding renders a grounding deterministically.
func ViewGrounding(g *engine.Grounding) GroundingView {
	view := make(GroundingView, g.Len())
	g.Each(func(v atom.Atom, val atom.Value) bool {
		view[atom.CanonicalString(v)] = atom.CanonicalString(val)
		return true
	})
	return view
}

// SortViews orders grounding views deterministically for output: by
// their flattened text form.
func SortViews(views []GroundingView) {
	sort.Slice(views, func(i, j int) bool {
		return flatten(views[i]) < flatten(views[j])
	})
}

func flatten(v GroundingView) string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := ""
	for _, k := range keys {
		out += k + "=>" + v[k] + ";"
	}
	return out
}

// WriteGroundings prints grounding views in the requested format.
func WriteGroundings(w io.Writer, format string, views []GroundingView) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	default:
		if len(views) == 0 {
			fmt.Fprintln(w, "no groundings")
			return nil
		}
		for i, view := range views {
			fmt.Fprintf(w, "grounding %d:\n", i+1)
			keys := make([]string, 0, len(view))
			for k := range view {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(w, "  %s => %s\n", k, view[k])
			}
		}
		return nil
	}
}
