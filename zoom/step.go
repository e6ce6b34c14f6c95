package zoom

import "github.com/graph-genome/pangraph/core"

// Step builds the zoom level one above from, out of from's paths and a
// map of replacements keyed by accession. For every accession at from,
// Step either reuses the existing path unchanged (no entry in changed) or
// attaches the replacement from changed, backfilling its SummarizedBy to
// point at the path it replaces if the caller did not already set one.
// Any accession present only in changed (a path with no counterpart at
// from, e.g. one forked by split_groups) is attached as-is.
//
// Every path in changed must already have been created at from.Zoom+1
// (typically via g.CreatePath(accession, from.Zoom+1)); Step returns
// ErrZoomOrder if one was not. A level that such a CreatePath call already
// created is reused, and a replacement already registered there is not
// attached a second time.
func Step(g *core.GraphGenome, from *core.ZoomLevel, changed map[string]*core.Path) (*core.ZoomLevel, error) {
	target := from.Zoom + 1
	for _, repl := range changed {
		if repl.Zoom() != target {
			return nil, ErrZoomOrder
		}
	}

	to := g.ZoomLevel(target)
	if to == nil {
		var err error
		if to, err = g.NewZoomLevel(target); err != nil {
			return nil, err
		}
	}

	for accession, parent := range from.Paths {
		repl, ok := changed[accession]
		if !ok {
			if err := to.Attach(parent); err != nil {
				return nil, err
			}
			continue
		}
		if repl.SummarizedBy == nil {
			repl.SummarizedBy = parent
		}
		if to.Paths[repl.Accession] == repl {
			continue
		}
		if err := to.Attach(repl); err != nil {
			return nil, err
		}
	}

	for accession, repl := range changed {
		if _, ok := from.Paths[accession]; ok || to.Paths[repl.Accession] == repl {
			continue
		}
		if err := to.Attach(repl); err != nil {
			return nil, err
		}
	}

	return to, nil
}
