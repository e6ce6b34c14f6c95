package core

// CreatePath creates a new path named accession at the given zoom level,
// creating the zoom level if needed (zoom 0 always exists already). It
// fails with ErrPathExists if the accession is already present at that
// zoom level (invariant I4).
//
// Complexity: O(1)
func (g *GraphGenome) CreatePath(accession string, zoom int) (*Path, error) {
	zl := g.ensureZoomLevel(zoom)
	if _, exists := zl.Paths[accession]; exists {
		return nil, ErrPathExists
	}
	p := &Path{Accession: accession, graph: g, zoom: zoom}
	zl.Paths[accession] = p
	return p, nil
}

// GetPath returns the path named accession at the given zoom level, or
// ErrPathMissing if absent.
func (g *GraphGenome) GetPath(accession string, zoom int) (*Path, error) {
	zl, ok := g.zoomLevels[zoom]
	if !ok {
		return nil, ErrPathMissing
	}
	p, ok := zl.Paths[accession]
	if !ok {
		return nil, ErrPathMissing
	}
	return p, nil
}

// AppendTraversal appends a traversal of node on the given strand to path,
// at order = (max order currently on path) + 1, or 0 for the first
// traversal. It fails with ErrNothingImmutable if node is the NOTHING
// sentinel: paths never traverse NOTHING, it only appears in upstream and
// downstream bookkeeping.
//
// Complexity: O(1)
func (p *Path) AppendTraversal(node *Node, strand Strand) (*NodeTraversal, error) {
	if node.IsNothing() {
		return nil, ErrNothingImmutable
	}
	order := 0
	if n := len(p.Traversals); n > 0 {
		order = p.Traversals[n-1].Order + 1
	}
	t := &NodeTraversal{Node: node, Strand: strand, Order: order, path: p}
	p.Traversals = append(p.Traversals, t)
	return t, nil
}

// Len returns the number of traversals on the path.
func (p *Path) Len() int { return len(p.Traversals) }

// At returns the traversal at the given order, or nil if out of range.
func (p *Path) At(order int) *NodeTraversal {
	if order < 0 || order >= len(p.Traversals) {
		return nil
	}
	return p.Traversals[order]
}

// Neighbor returns the traversal on the same path at order+delta, or
// (nil, false) if that order does not exist.
//
// Complexity: O(1)
func Neighbor(t *NodeTraversal, delta int) (*NodeTraversal, bool) {
	if t == nil || t.path == nil {
		return nil, false
	}
	target := t.Order + delta
	if target < 0 || target >= len(t.path.Traversals) {
		return nil, false
	}
	return t.path.Traversals[target], true
}
