package core

// CreateGraph returns a new, empty GraphGenome with zoom level 0 attached
// and its NOTHING sentinel node created.
//
// Complexity: O(1)
func CreateGraph(name string) *GraphGenome {
	g := &GraphGenome{
		Name:       name,
		nodes:      make(map[string]*Node),
		zoomLevels: make(map[int]*ZoomLevel),
	}
	g.Nothing = &Node{Name: NothingName, graph: g}
	g.zoomLevels[0] = &ZoomLevel{Zoom: 0, Paths: make(map[string]*Path), graph: g}
	return g
}

// AddNode creates a node named name with sequence seq and attaches it to
// the graph. It fails with ErrNodeExists if a node with this name is
// already present, and ErrNothingImmutable if name is the reserved NOTHING
// name.
//
// Complexity: O(1)
func (g *GraphGenome) AddNode(name, seq string) (*Node, error) {
	if name == NothingName {
		return nil, ErrNothingImmutable
	}
	if _, exists := g.nodes[name]; exists {
		return nil, ErrNodeExists
	}
	n := &Node{
		Name:       name,
		Seq:        seq,
		Upstream:   make(map[*Node]int),
		Downstream: make(map[*Node]int),
		graph:      g,
	}
	g.nodes[name] = n
	return n, nil
}

// GetNode returns the node named name, or ErrNodeMissing if absent. The
// NOTHING sentinel is resolvable under its reserved name.
//
// Complexity: O(1)
func (g *GraphGenome) GetNode(name string) (*Node, error) {
	if name == NothingName {
		return g.Nothing, nil
	}
	n, ok := g.nodes[name]
	if !ok {
		return nil, ErrNodeMissing
	}
	return n, nil
}

// RemoveNode deletes the named node from the graph's node table without
// touching any neighbor's upstream/downstream bookkeeping; callers (the
// simplify package) are responsible for unlinking a node from its
// neighbors before removing it, since the correct unlinking behavior
// differs between simple_merge, neglect_nodes, and split_groups.
//
// Complexity: O(1)
func (g *GraphGenome) RemoveNode(name string) {
	delete(g.nodes, name)
}

// Nodes returns every node currently in the graph, in unspecified order
// (map iteration order, which can differ between calls): callers that need
// deterministic iteration order (the simplifier) maintain their own
// working list.
//
// Complexity: O(V)
func (g *GraphGenome) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	return out
}

// NodeCount returns the number of live, non-sentinel nodes.
func (g *GraphGenome) NodeCount() int {
	return len(g.nodes)
}

// ZoomLevel returns the zoom level numbered zoom, or nil if it does not
// exist yet.
func (g *GraphGenome) ZoomLevel(zoom int) *ZoomLevel {
	return g.zoomLevels[zoom]
}

// ensureZoomLevel returns the zoom level numbered zoom, creating it (and
// any structure needed to track it) if it does not exist.
func (g *GraphGenome) ensureZoomLevel(zoom int) *ZoomLevel {
	zl, ok := g.zoomLevels[zoom]
	if !ok {
		zl = &ZoomLevel{Zoom: zoom, Paths: make(map[string]*Path), graph: g}
		g.zoomLevels[zoom] = zl
	}
	return zl
}

// NewZoomLevel creates and attaches a new, empty zoom level numbered zoom.
// It fails with ErrZoomLevelExists if that zoom number is already present
// (including a level CreatePath created implicitly).
//
// Complexity: O(1)
func (g *GraphGenome) NewZoomLevel(zoom int) (*ZoomLevel, error) {
	if _, exists := g.zoomLevels[zoom]; exists {
		return nil, ErrZoomLevelExists
	}
	return g.ensureZoomLevel(zoom), nil
}

// Attach adds an existing path to this zoom level under its own
// accession, without allocating a new Path. This is how a zoom step
// reuses a path unchanged across levels (spec.md section 4.F): the same
// *Path is shared by reference rather than copied. It fails with
// ErrPathExists if the accession is already present at this level.
//
// Complexity: O(1)
func (zl *ZoomLevel) Attach(p *Path) error {
	if _, exists := zl.Paths[p.Accession]; exists {
		return ErrPathExists
	}
	zl.Paths[p.Accession] = p
	return nil
}
