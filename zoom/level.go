package zoom

import "github.com/graph-genome/pangraph/core"

// NewLevel returns the zoom level numbered zoom on g, creating an empty
// one if it does not already exist. Zoom 0 is created implicitly by
// core.CreateGraph, so calling NewLevel(g, 0) simply retrieves it; any
// higher zoom is normally built by Step rather than started empty here,
// but NewLevel is exposed for callers that need to seed a level directly.
func NewLevel(g *core.GraphGenome, zoom int) (*core.ZoomLevel, error) {
	if zl := g.ZoomLevel(zoom); zl != nil {
		return zl, nil
	}
	return g.NewZoomLevel(zoom)
}
